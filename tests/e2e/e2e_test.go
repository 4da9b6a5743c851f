package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bonkvault/internal/database"
	"bonkvault/internal/domain/chat"
	"bonkvault/internal/domain/file"
	"bonkvault/internal/domain/user"
	"bonkvault/internal/middleware"
)

type E2ETestSuite struct {
	router *gin.Engine
	db     *gorm.DB
}

func setupTestSuite(t *testing.T) *E2ETestSuite {
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:e2e_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, database.Migrate(db), "Failed to migrate test database")

	userRepo := user.NewRepository(db)
	fileRepo := file.NewRepository(db)
	chatRepo := chat.NewRepository(db)

	hub := chat.NewHub()

	userHandler := user.NewHandler(user.NewService(userRepo))
	fileHandler := file.NewHandler(file.NewService(fileRepo, userRepo, 0))
	chatHandler := chat.NewHandler(chat.NewService(chatRepo, userRepo, hub), hub)

	r := gin.New()
	r.Use(middleware.CORS())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorLogger())

	root := r.Group("/")
	user.RegisterRoutes(root, userHandler)
	file.RegisterRoutes(root, fileHandler)
	chat.RegisterRoutes(root, chatHandler)

	return &E2ETestSuite{router: r, db: db}
}

func (s *E2ETestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), "invalid JSON response: %s", rr.Body.String())
	return resp
}

func TestFullUserFileShareFlow(t *testing.T) {
	s := setupTestSuite(t)

	// Wallet connects: unknown key, then registers
	rr := s.do(http.MethodPost, "/users/check", map[string]any{"publicKey": "pk1"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, false, decode(t, rr)["exists"])

	rr = s.do(http.MethodPost, "/users/create", map[string]any{"publicKey": "pk1", "nickname": "alice"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	// Public upload returns a 32-hex link and positive id
	rr = s.do(http.MethodPost, "/files/upload", map[string]any{
		"filename":      "a.png",
		"filesize":      10,
		"filetype":      "image/png",
		"base64data":    "Zm9v",
		"userPublicKey": "pk1",
		"isPublic":      true,
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	upload := decode(t, rr)
	fileID := upload["fileId"].(float64)
	link, ok := upload["publicLink"].(string)
	require.True(t, ok, "expected publicLink string, got %v", upload["publicLink"])
	assert.Greater(t, fileID, float64(0))
	assert.Regexp(t, `^[0-9a-f]{32}$`, link)
	assert.Equal(t, true, upload["isPublic"])

	// Anonymous resolve serves the file with the uploader's nickname
	rr = s.do(http.MethodGet, "/files/public/"+link, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	resolved := decode(t, rr)["file"].(map[string]any)
	assert.Equal(t, fileID, resolved["id"])
	assert.Equal(t, "Zm9v", resolved["base64data"])
	assert.Equal(t, "alice", resolved["uploader_nickname"])

	// Owner listing shows the file, newest first
	rr = s.do(http.MethodGet, "/files/list?userPublicKey=pk1", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	files := decode(t, rr)["files"].([]any)
	require.Len(t, files, 1)

	// Toggling private revokes the link immediately
	rr = s.do(http.MethodPost, "/files/toggle-public", map[string]any{
		"fileId":        fileID,
		"isPublic":      false,
		"userPublicKey": "pk1",
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	toggled := decode(t, rr)
	assert.Equal(t, false, toggled["isPublic"])
	assert.Nil(t, toggled["publicLink"])

	rr = s.do(http.MethodGet, "/files/public/"+link, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	// Re-enabling mints a different link
	rr = s.do(http.MethodPost, "/files/toggle-public", map[string]any{
		"fileId":        fileID,
		"isPublic":      true,
		"userPublicKey": "pk1",
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	relink := decode(t, rr)["publicLink"].(string)
	assert.NotEqual(t, link, relink)

	rr = s.do(http.MethodGet, "/files/public/"+relink, nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	// Old link stays dead even while the file is public again
	rr = s.do(http.MethodGet, "/files/public/"+link, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	// Delete and verify the listing is empty
	rr = s.do(http.MethodDelete, "/files/delete", map[string]any{
		"fileId":        fileID,
		"userPublicKey": "pk1",
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = s.do(http.MethodGet, "/files/list?userPublicKey=pk1", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode(t, rr)["files"].([]any), 0)
}

func TestChatFlow(t *testing.T) {
	s := setupTestSuite(t)

	rr := s.do(http.MethodPost, "/users/create", map[string]any{"publicKey": "pk1", "nickname": "alice"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	// Unregistered senders are rejected
	rr = s.do(http.MethodPost, "/chat/send", map[string]any{
		"nickname":      "mallory",
		"message":       "hi",
		"userPublicKey": "pk_other",
	})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	for i := 0; i < 3; i++ {
		rr = s.do(http.MethodPost, "/chat/send", map[string]any{
			"nickname":      "alice",
			"message":       fmt.Sprintf("message %d", i),
			"userPublicKey": "pk1",
		})
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	}

	rr = s.do(http.MethodGet, "/chat/messages", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Cache-Control"), "no-store")
	resp := decode(t, rr)
	msgs := resp["messages"].([]any)
	require.Len(t, msgs, 3)
	assert.Equal(t, float64(3), resp["count"])
	first := msgs[0].(map[string]any)
	assert.Equal(t, "message 0", first["message"])
}
