package user

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bonkvault/internal/pkg/response"
	pkgvalidator "bonkvault/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type checkRequest struct {
	PublicKey string `json:"publicKey" validate:"required"`
}

type createRequest struct {
	PublicKey string `json:"publicKey" validate:"required"`
	Nickname  string `json:"nickname" validate:"required,max=32"`
}

// Check returns whether a wallet public key is already registered and, when
// it is, the chosen nickname. Lookup only, no side effects.
func (h *Handler) Check(c *gin.Context) {
	var req checkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body")
		return
	}
	if errs := pkgvalidator.Validate(req); errs != nil {
		response.ValidationError(c, "public key required")
		return
	}

	u, err := h.service.Check(c.Request.Context(), req.PublicKey)
	if err != nil {
		response.Internal(c, "failed to check user")
		return
	}

	if u == nil {
		c.JSON(http.StatusOK, gin.H{"exists": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": true, "nickname": u.Nickname})
}

// Create registers a wallet public key with a unique nickname.
func (h *Handler) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body")
		return
	}
	// Validate the stored form: surrounding whitespace never counts against
	// required or the length cap.
	req.PublicKey = strings.TrimSpace(req.PublicKey)
	req.Nickname = strings.TrimSpace(req.Nickname)
	if errs := pkgvalidator.Validate(req); errs != nil {
		response.ValidationError(c, "public key and nickname required")
		return
	}

	_, err := h.service.Register(c.Request.Context(), req.PublicKey, req.Nickname)
	if err != nil {
		switch {
		case errors.Is(err, ErrNicknameTaken):
			response.Conflict(c, "Nickname already taken")
		case errors.Is(err, ErrUserExists):
			response.Conflict(c, "User already exists")
		default:
			response.Internal(c, "failed to create user")
		}
		return
	}

	response.OK(c, nil)
}
