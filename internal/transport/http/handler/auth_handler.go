package handler

import (
	"github.com/gin-gonic/gin"

	"store-ratings/internal/service"
	"store-ratings/internal/transport/http/response"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type signupReq struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required"`
	Password string  `json:"password" binding:"required"`
	Address  *string `json:"address"`
}

// Signup registers a normal user and returns their first token.
func (h *AuthHandler) Signup(c *gin.Context) {
	var in signupReq
	if !bindJSON(c, &in) {
		return
	}
	u, tok, err := h.auth.Register(c.Request.Context(), service.RegisterInput{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		Address:  in.Address,
	})
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Created(c, gin.H{
		"message": "User registered successfully",
		"token":   tok,
		"user":    userPublic(u),
	})
}

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in loginReq
	if !bindJSON(c, &in) {
		return
	}
	u, tok, err := h.auth.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, gin.H{
		"message": "Login successful",
		"token":   tok,
		"user":    userPublic(u),
	})
}

// Logout is a client-side credential discard; the server only
// acknowledges. Tokens stay valid until expiry.
func (h *AuthHandler) Logout(c *gin.Context) {
	response.OK(c, gin.H{"message": "Logout successful"})
}
