package controllers

import (
	"net/http"

	"doppelx/helpers"

	"github.com/gin-gonic/gin"
)

// getUserID pulls the authenticated user's id out of the request context.
// Writes a 401 and returns "" when the claims are missing or malformed.
func getUserID(c *gin.Context) string {
	claimsVal, ok := c.Get("claims")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return ""
	}
	claims, ok := claimsVal.(*helpers.Claims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid claims"})
		return ""
	}
	return claims.UserID
}
