package file

import (
	"errors"
	"net/http"

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

type uploadRequest struct {
	Filename   string `json:"filename" validate:"required"`
	Filesize   int64  `json:"filesize" validate:"required"`
	Filetype   string `json:"filetype" validate:"required"`
	Base64Data string `json:"base64data" validate:"required"`
	PublicKey  string `json:"userPublicKey" validate:"required"`
	IsPublic   bool   `json:"isPublic"`
}

type deleteRequest struct {
	FileID    int64  `json:"fileId" validate:"required"`
	PublicKey string `json:"userPublicKey" validate:"required"`
}

type toggleRequest struct {
	FileID    int64  `json:"fileId" validate:"required"`
	IsPublic  *bool  `json:"isPublic" validate:"required"`
	PublicKey string `json:"userPublicKey" validate:"required"`
}

func (h *Handler) Upload(c *gin.Context) {
	var req uploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body")
		return
	}
	if errs := pkgvalidator.Validate(req); errs != nil {
		response.ValidationError(c, "Missing required fields")
		return
	}

	f, err := h.service.Upload(c.Request.Context(), UploadInput{
		Filename:   req.Filename,
		Filesize:   req.Filesize,
		Filetype:   req.Filetype,
		Base64Data: req.Base64Data,
		PublicKey:  req.PublicKey,
		IsPublic:   req.IsPublic,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrOwnerNotFound):
			response.NotFound(c, "User not found")
		case errors.Is(err, ErrDataTooLarge):
			response.Fail(c, http.StatusRequestEntityTooLarge, response.CodePayloadTooLarge, err.Error())
		default:
			response.Internal(c, "upload failed")
		}
		return
	}

	response.OK(c, gin.H{
		"fileId":     f.ID,
		"publicLink": f.PublicLink,
		"isPublic":   f.IsPublic,
	})
}

func (h *Handler) List(c *gin.Context) {
	publicKey := c.Query("userPublicKey")
	if publicKey == "" {
		response.ValidationError(c, "User public key required")
		return
	}

	files, err := h.service.List(c.Request.Context(), publicKey)
	if err != nil {
		response.Internal(c, "failed to list files")
		return
	}

	if files == nil {
		files = []*File{}
	}
	response.OK(c, gin.H{"files": files})
}

func (h *Handler) Delete(c *gin.Context) {
	var req deleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body")
		return
	}
	if errs := pkgvalidator.Validate(req); errs != nil {
		response.ValidationError(c, "file id and public key required")
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.FileID, req.PublicKey); err != nil {
		if errors.Is(err, ErrFileNotFound) {
			response.NotFound(c, "File not found or access denied")
			return
		}
		response.Internal(c, "delete failed")
		return
	}

	response.OK(c, nil)
}

func (h *Handler) TogglePublic(c *gin.Context) {
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body")
		return
	}
	if errs := pkgvalidator.Validate(req); errs != nil {
		response.ValidationError(c, "file id, visibility and public key required")
		return
	}

	link, err := h.service.ToggleVisibility(c.Request.Context(), req.FileID, req.PublicKey, *req.IsPublic)
	if err != nil {
		if errors.Is(err, ErrAccessDenied) {
			response.AccessDenied(c, "File not found or access denied")
			return
		}
		response.Internal(c, "failed to update visibility")
		return
	}

	response.OK(c, gin.H{
		"isPublic":   *req.IsPublic,
		"publicLink": link,
	})
}

func (h *Handler) ResolvePublic(c *gin.Context) {
	link := c.Param("token")

	pf, err := h.service.ResolveLink(c.Request.Context(), link)
	if err != nil {
		if errors.Is(err, ErrFileNotFound) {
			response.NotFound(c, "File not found or not public")
			return
		}
		response.Internal(c, "failed to resolve link")
		return
	}

	response.OK(c, gin.H{"file": pf})
}
