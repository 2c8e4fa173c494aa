package handler

import (
	"github.com/gin-gonic/gin"

	"store-ratings/internal/repo"
	"store-ratings/internal/service"
	"store-ratings/internal/transport/http/middleware"
	"store-ratings/internal/transport/http/response"
)

type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Me returns the caller's profile together with their rating history.
func (h *UserHandler) Me(c *gin.Context) {
	claims := middleware.Claims(c)
	u, ratings, err := h.users.Profile(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, gin.H{"user": gin.H{
		"id":         u.ID,
		"name":       u.Name,
		"email":      u.Email,
		"address":    u.Address,
		"role":       u.Role,
		"created_at": u.CreatedAt,
		"ratings":    ratings,
	}})
}

type updateMeReq struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	var in updateMeReq
	if !bindJSON(c, &in) {
		return
	}
	claims := middleware.Claims(c)
	u, err := h.users.UpdateProfile(c.Request.Context(), claims.UserID, repo.ProfileUpdate{
		Name:    in.Name,
		Address: in.Address,
	})
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, gin.H{
		"message": "User profile updated successfully",
		"user":    u,
	})
}

type updatePasswordReq struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

func (h *UserHandler) UpdatePassword(c *gin.Context) {
	var in updatePasswordReq
	if !bindJSON(c, &in) {
		return
	}
	claims := middleware.Claims(c)
	if err := h.users.ChangePassword(c.Request.Context(), claims.UserID, in.CurrentPassword, in.NewPassword); err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, gin.H{"message": "Password updated successfully"})
}
