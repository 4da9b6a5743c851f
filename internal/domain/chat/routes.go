package chat

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	chat := r.Group("/chat")
	{
		chat.GET("/messages", h.Messages)
		chat.POST("/send", h.Send)
		chat.GET("/ws", h.Stream)
	}
}
