package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes reported alongside the flat "error" message. The message keeps
// the original wire format; the code makes failures machine-readable.
const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeUserVerification = "USER_VERIFICATION_FAILED"
	CodeAccessDenied     = "ACCESS_DENIED"
	CodeNotFound         = "NOT_FOUND"
	CodeConflict         = "CONFLICT"
	CodePayloadTooLarge  = "PAYLOAD_TOO_LARGE"
	CodeInternal         = "INTERNAL"
)

// OK merges extra fields into the top level so handlers control the exact
// wire shape ({"success":true, "files":[...]}).
func OK(c *gin.Context, fields gin.H) {
	body := gin.H{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

func Fail(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   message,
		"code":    code,
	})
}

func ValidationError(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, CodeValidation, message)
}

func NotFound(c *gin.Context, message string) {
	Fail(c, http.StatusNotFound, CodeNotFound, message)
}

func AccessDenied(c *gin.Context, message string) {
	Fail(c, http.StatusForbidden, CodeAccessDenied, message)
}

func Conflict(c *gin.Context, message string) {
	Fail(c, http.StatusConflict, CodeConflict, message)
}

// Internal hides the underlying error from the client; the middleware logger
// already has the detail.
func Internal(c *gin.Context, message string) {
	Fail(c, http.StatusInternalServerError, CodeInternal, message)
}
