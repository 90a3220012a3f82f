package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"cglines/internal/db"
	"cglines/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "api.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(gdb))

	r := gin.New()
	r.POST("/user", RegisterHandler(gdb))
	r.GET("/user", LoginHandler(gdb, testSecret))
	r.GET("/me", middleware.JWTAuthMiddleware(testSecret), func(c *gin.Context) {
		userID, _ := c.Get("userID")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterAndLogin(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/user", gin.H{
		"name": "Alex", "email": "Alex@Example.com", "password": "secretpw1",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Email matching is case-insensitive because emails are stored lowercase
	w = doJSON(t, r, http.MethodGet, "/user", gin.H{
		"email": "alex@example.com", "password": "secretpw1",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	// The token authenticates protected routes
	w = doJSON(t, r, http.MethodGet, "/me", nil, map[string]string{
		"Authorization": "Bearer " + resp.Token,
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestRegisterValidation(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name string
		body gin.H
	}{
		{"missing fields", gin.H{"email": "a@b.com"}},
		{"bad email", gin.H{"name": "Alex", "email": "not-an-email", "password": "secretpw1"}},
		{"short password", gin.H{"name": "Alex", "email": "a@b.com", "password": "short"}},
		{"long password", gin.H{"name": "Alex", "email": "a@b.com", "password": "waytoolongpassword"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/user", tc.body, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := newTestRouter(t)

	body := gin.H{"name": "Alex", "email": "a@b.com", "password": "secretpw1"}
	w := doJSON(t, r, http.MethodPost, "/user", body, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/user", body, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/user", gin.H{
		"name": "Alex", "email": "a@b.com", "password": "secretpw1",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	// Wrong password
	w = doJSON(t, r, http.MethodGet, "/user", gin.H{"email": "a@b.com", "password": "wrongpass1"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Unknown user
	w = doJSON(t, r, http.MethodGet, "/user", gin.H{"email": "nobody@b.com", "password": "secretpw1"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRouteRejectsMissingToken(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/me", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/me", nil, map[string]string{"Authorization": "Bearer garbage"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
