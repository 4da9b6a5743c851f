package file

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	files := r.Group("/files")
	{
		files.POST("/upload", h.Upload)
		files.GET("/list", h.List)
		files.DELETE("/delete", h.Delete)
		files.POST("/toggle-public", h.TogglePublic)
		files.GET("/public/:token", h.ResolvePublic)
	}
}
