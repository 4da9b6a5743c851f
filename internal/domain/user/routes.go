package user

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	users := r.Group("/users")
	{
		users.POST("/check", h.Check)
		users.POST("/create", h.Create)
	}
}
