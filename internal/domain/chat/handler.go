package chat

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bonkvault/internal/pkg/response"
	pkgvalidator "bonkvault/internal/pkg/validator"
)

type Handler struct {
	service *Service
	hub     *Hub
}

func NewHandler(service *Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

type sendRequest struct {
	Nickname  string `json:"nickname" validate:"required"`
	Message   string `json:"message" validate:"required"`
	PublicKey string `json:"userPublicKey" validate:"required"`
}

// Messages serves the polled window: newest 50, oldest first. Clients hit
// this on a fixed interval, so caching is disabled explicitly.
func (h *Handler) Messages(c *gin.Context) {
	c.Header("Cache-Control", "no-store, no-cache, must-revalidate")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")

	msgs, err := h.service.ListRecent(c.Request.Context())
	if err != nil {
		response.Internal(c, "failed to fetch messages")
		return
	}

	if msgs == nil {
		msgs = []*Message{}
	}
	response.OK(c, gin.H{
		"messages": msgs,
		"count":    len(msgs),
	})
}

func (h *Handler) Send(c *gin.Context) {
	var req sendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body")
		return
	}
	if errs := pkgvalidator.Validate(req); errs != nil {
		response.ValidationError(c, "Missing required fields")
		return
	}

	msg, err := h.service.Post(c.Request.Context(), req.Nickname, req.Message, req.PublicKey)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyMessage), errors.Is(err, ErrMessageTooLong):
			response.ValidationError(c, err.Error())
		case errors.Is(err, ErrVerificationFailed):
			response.Fail(c, http.StatusUnauthorized, response.CodeUserVerification, "User verification failed")
		default:
			response.Internal(c, "failed to send message")
		}
		return
	}

	response.OK(c, gin.H{"messageId": msg.ID})
}
