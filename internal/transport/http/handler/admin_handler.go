package handler

import (
	"github.com/gin-gonic/gin"

	"store-ratings/internal/repo"
	"store-ratings/internal/service"
	"store-ratings/internal/transport/http/response"
)

type AdminHandler struct {
	users     *service.UserService
	stores    *service.StoreService
	dashboard *service.DashboardService
}

func NewAdminHandler(users *service.UserService, stores *service.StoreService, dashboard *service.DashboardService) *AdminHandler {
	return &AdminHandler{users: users, stores: stores, dashboard: dashboard}
}

type createUserReq struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required"`
	Password string  `json:"password" binding:"required"`
	Address  *string `json:"address"`
	Role     string  `json:"role" binding:"required"`
}

func (h *AdminHandler) CreateUser(c *gin.Context) {
	var in createUserReq
	if !bindJSON(c, &in) {
		return
	}
	u, err := h.users.AdminCreate(c.Request.Context(), service.AdminCreateUserInput{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		Address:  in.Address,
		Role:     in.Role,
	})
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Created(c, gin.H{
		"message": "User created successfully",
		"user": gin.H{
			"id":         u.ID,
			"name":       u.Name,
			"email":      u.Email,
			"role":       u.Role,
			"created_at": u.CreatedAt,
		},
	})
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.users.AdminList(c.Request.Context(), repo.UserFilter{
		Name:      c.Query("name"),
		Email:     c.Query("email"),
		Address:   c.Query("address"),
		Role:      c.Query("role"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	})
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, gin.H{"count": len(users), "users": users})
}

func (h *AdminHandler) GetUser(c *gin.Context) {
	userID, ok := paramID(c, "userId", "user ID")
	if !ok {
		return
	}
	detail, err := h.users.AdminGet(c.Request.Context(), userID)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, detail)
}

type createStoreReq struct {
	Name    string  `json:"name" binding:"required"`
	Email   *string `json:"email"`
	Address string  `json:"address"`
	OwnerID *uint   `json:"owner_id"`
}

func (h *AdminHandler) CreateStore(c *gin.Context) {
	var in createStoreReq
	if !bindJSON(c, &in) {
		return
	}
	store, err := h.stores.AdminCreate(c.Request.Context(), service.StoreInput{
		Name:    in.Name,
		Email:   in.Email,
		Address: in.Address,
		OwnerID: in.OwnerID,
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

func (h *AdminHandler) ListStores(c *gin.Context) {
	rows, err := h.stores.AdminList(c.Request.Context(), repo.StoreFilter{
		Name:      c.Query("name"),
		Email:     c.Query("email"),
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

func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.dashboard.AdminStats(c.Request.Context())
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, stats)
}
