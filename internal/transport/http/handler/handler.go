// Package handler contains the HTTP-facing adapters: bind the request,
// call a service, write the response. No business rules live here.
package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"store-ratings/internal/apperr"
	"store-ratings/internal/domain"
	"store-ratings/internal/transport/http/response"
)

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.Err(c, apperr.BadRequest(err.Error()))
		return false
	}
	return true
}

// paramID parses a numeric path parameter; non-numeric ids are a client
// error, not a lookup miss.
func paramID(c *gin.Context, name, label string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		response.Err(c, apperr.BadRequest("Invalid "+label))
		return 0, false
	}
	return uint(v), true
}

func userPublic(u *domain.User) gin.H {
	return gin.H{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
		"role":  u.Role,
	}
}
