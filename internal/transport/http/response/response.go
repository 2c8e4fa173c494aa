package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"store-ratings/internal/apperr"
)

// OK writes 200 with the given body.
func OK(c *gin.Context, body any) { c.JSON(http.StatusOK, body) }

// Created writes 201 with the given body.
func Created(c *gin.Context, body any) { c.JSON(http.StatusCreated, body) }

// Err is the single error responder: apperr carries its own status and
// field errors; anything else becomes an opaque 500. Internal causes go
// to the gin error stack so the access log picks them up.
func Err(c *gin.Context, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		if ae.Err != nil {
			_ = c.Error(ae.Err)
		}
		body := gin.H{"message": ae.Msg}
		if len(ae.Fields) > 0 {
			body["errors"] = ae.Fields
		}
		c.AbortWithStatusJSON(ae.Status, body)
		return
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
}
