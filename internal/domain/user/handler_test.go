package user

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:user_handler_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&User{}); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}

	h := NewHandler(NewService(NewRepository(db)))
	r := gin.New()
	RegisterRoutes(r.Group("/"), h)
	return r
}

func doJSONRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestCheckThenCreateFlow(t *testing.T) {
	r := setupTestRouter(t)

	rr := doJSONRequest(r, http.MethodPost, "/users/check", map[string]any{"publicKey": "pk1"})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 for check, got %d body=%s", rr.Code, rr.Body.String())
	}
	var checkResp map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &checkResp); err != nil {
		t.Fatalf("invalid check response: %v", err)
	}
	if checkResp["exists"].(bool) {
		t.Fatalf("expected exists=false before create")
	}

	rr = doJSONRequest(r, http.MethodPost, "/users/create", map[string]any{"publicKey": "pk1", "nickname": "alice"})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 for create, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSONRequest(r, http.MethodPost, "/users/check", map[string]any{"publicKey": "pk1"})
	checkResp = map[string]any{}
	if err := json.Unmarshal(rr.Body.Bytes(), &checkResp); err != nil {
		t.Fatalf("invalid check response: %v", err)
	}
	if !checkResp["exists"].(bool) || checkResp["nickname"] != "alice" {
		t.Fatalf("expected exists=true nickname=alice, got %v", checkResp)
	}
}

func TestCreateConflicts(t *testing.T) {
	r := setupTestRouter(t)

	rr := doJSONRequest(r, http.MethodPost, "/users/create", map[string]any{"publicKey": "pk1", "nickname": "alice"})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 for first create, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSONRequest(r, http.MethodPost, "/users/create", map[string]any{"publicKey": "pk2", "nickname": "alice"})
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate nickname, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSONRequest(r, http.MethodPost, "/users/create", map[string]any{"publicKey": "pk1", "nickname": "bob"})
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate public key, got %d body=%s", rr.Code, rr.Body.String())
	}
}

// The length cap applies to the stored nickname, not the padded input.
func TestCreatePaddedNickname(t *testing.T) {
	r := setupTestRouter(t)

	nickname := strings.Repeat("a", 31)
	rr := doJSONRequest(r, http.MethodPost, "/users/create", map[string]any{
		"publicKey": "pk1",
		"nickname":  "  " + nickname + "   ",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 for padded nickname within cap, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSONRequest(r, http.MethodPost, "/users/check", map[string]any{"publicKey": "pk1"})
	var checkResp map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &checkResp); err != nil {
		t.Fatalf("invalid check response: %v", err)
	}
	if checkResp["nickname"] != nickname {
		t.Fatalf("expected trimmed nickname %q, got %v", nickname, checkResp["nickname"])
	}

	// All-whitespace trims to empty and fails required
	rr = doJSONRequest(r, http.MethodPost, "/users/create", map[string]any{
		"publicKey": "pk2",
		"nickname":  "     ",
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for whitespace-only nickname, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestCreateValidation(t *testing.T) {
	r := setupTestRouter(t)

	rr := doJSONRequest(r, http.MethodPost, "/users/create", map[string]any{"publicKey": "pk1"})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing nickname, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSONRequest(r, http.MethodPost, "/users/check", map[string]any{})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing public key, got %d body=%s", rr.Code, rr.Body.String())
	}
}
