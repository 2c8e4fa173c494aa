package handler

import (
	"github.com/gin-gonic/gin"

	"store-ratings/internal/service"
	"store-ratings/internal/transport/http/middleware"
	"store-ratings/internal/transport/http/response"
)

type OwnerHandler struct {
	stores    *service.StoreService
	dashboard *service.DashboardService
}

func NewOwnerHandler(stores *service.StoreService, dashboard *service.DashboardService) *OwnerHandler {
	return &OwnerHandler{stores: stores, dashboard: dashboard}
}

// Dashboard lists the caller's stores with aggregates and per-rater
// detail.
func (h *OwnerHandler) Dashboard(c *gin.Context) {
	claims := middleware.Claims(c)
	out, err := h.dashboard.OwnerDashboardFor(c.Request.Context(), claims)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, out)
}

// CreateStore creates a store owned by the caller; ownership comes from
// the token, never the payload.
func (h *OwnerHandler) CreateStore(c *gin.Context) {
	var in createStoreReq
	if !bindJSON(c, &in) {
		return
	}
	claims := middleware.Claims(c)
	store, err := h.stores.OwnerCreate(c.Request.Context(), claims.UserID, service.StoreInput{
		Name:    in.Name,
		Email:   in.Email,
		Address: in.Address,
	})
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Created(c, gin.H{
		"message": "Store created successfully",
		"store":   store,
	})
}
