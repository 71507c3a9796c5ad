package authapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	gormlog "gorm.io/gorm/logger"

	"github.com/mmotors/api/internal/auth"
	"github.com/mmotors/api/internal/gormw"
	"github.com/mmotors/api/testdata"
)

const testIssuer = "http://localhost:8080/auth"

func setupTestHandler(t *testing.T) (*Handler, *gormw.DB, *gin.Engine) {
	t.Helper()

	database, err := gormw.Open(&gormw.Config{
		LogLevel: gormlog.Silent,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate())

	config := &Config{
		Auth: auth.Config{
			PrivateKeyPEM: testdata.PrivateKeyPEM,
			Issuer:        testIssuer,
			// Keep hashing fast in tests.
			BcryptCost: bcrypt.MinCost,
		},
	}

	handler := NewHandler(config, database)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.RegisterHandlers(router.Group("/"))

	return handler, database, router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(http.MethodPost, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	body := map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func refreshCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == refreshTokenCookie {
			return cookie
		}
	}
	return nil
}
