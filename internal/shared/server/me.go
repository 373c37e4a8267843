package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jd-backend/internal/shared/server/middleware"
	"jd-backend/internal/shared/server/respond"
)

func registerMeRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", me)
}

// me echoes the authenticated principal.
func me(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
		return
	}
	data := gin.H{
		"user_id":  userID,
		"is_guest": middleware.IsGuest(c),
	}
	if email := middleware.UserEmailFromContext(c); email != "" {
		data["email"] = email
	}
	if name := middleware.UserNameFromContext(c); name != "" {
		data["name"] = name
	}
	respond.Success(c, http.StatusOK, data)
}
