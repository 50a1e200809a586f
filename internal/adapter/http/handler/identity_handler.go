package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todoapi/internal/adapter/http/middleware"
	"todoapi/internal/core/model/response"
)

// IdentityHandler echoes the authenticated caller back to itself.
type IdentityHandler struct{}

func NewIdentityHandler() *IdentityHandler {
	return &IdentityHandler{}
}

func (h *IdentityHandler) Me(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	claims := make([]response.ClaimResponse, 0, len(identity.Claims))

	for _, claim := range identity.Claims {
		claims = append(claims, response.ClaimResponse{
			Type:  claim.Type,
			Value: claim.Value,
		})
	}

	c.JSON(http.StatusOK, response.IdentityResponse{
		User:   identity.Name,
		Claims: claims,
	})
}
