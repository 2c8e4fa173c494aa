package handler

import (
	"github.com/gin-gonic/gin"

	"store-ratings/internal/repo"
	"store-ratings/internal/service"
	"store-ratings/internal/transport/http/middleware"
	"store-ratings/internal/transport/http/response"
)

type StoreHandler struct {
	stores *service.StoreService
}

func NewStoreHandler(stores *service.StoreService) *StoreHandler {
	return &StoreHandler{stores: stores}
}

// List returns every store with its aggregate and the caller's own rating,
// filtered and sorted per query parameters.
func (h *StoreHandler) List(c *gin.Context) {
	claims := middleware.Claims(c)
	rows, err := h.stores.List(c.Request.Context(), claims.UserID, repo.StoreFilter{
		Name:      c.Query("name"),
		Address:   c.Query("address"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	})
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, gin.H{"count": len(rows), "stores": rows})
}

type submitRatingReq struct {
	RatingValue *int `json:"rating_value" binding:"required"`
}

// SubmitRating upserts the caller's rating for a store and returns the
// refreshed aggregate.
func (h *StoreHandler) SubmitRating(c *gin.Context) {
	storeID, ok := paramID(c, "storeId", "store ID")
	if !ok {
		return
	}
	var in submitRatingReq
	if !bindJSON(c, &in) {
		return
	}
	claims := middleware.Claims(c)
	rating, agg, err := h.stores.SubmitRating(c.Request.Context(), claims.UserID, storeID, *in.RatingValue)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Created(c, gin.H{
		"message": "Rating submitted successfully",
		"rating":  rating,
		"store": gin.H{
			"id":             storeID,
			"average_rating": agg.AverageRating,
			"rating_count":   agg.RatingCount,
		},
	})
}
