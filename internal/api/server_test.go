package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"portfolio-backend/pkg/config"
	apperrors "portfolio-backend/pkg/errors"
)

func testServer() *Server {
	gin.SetMode(gin.TestMode)
	return &Server{
		cfg: &config.Config{AppVersion: "test", Env: "development"},
		log: zap.NewNop(),
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := testServer().Router()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "ok", response["status"])
	assert.Equal(t, "test", response["version"])
}

func TestRespondError_StatusMapping(t *testing.T) {
	s := testServer()

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", apperrors.NewNotFound("projet", "abc"), http.StatusNotFound},
		{"invalid id", apperrors.NewInvalidID("zzz"), http.StatusBadRequest},
		{"store failure", apperrors.NewStoreOperationFailed("projects", "find", assert.AnError), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request, _ = http.NewRequest("GET", "/test", nil)

			s.respondError(c, tc.err)

			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestRespondError_HidesInternalCause(t *testing.T) {
	s := testServer()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/test", nil)

	s.respondError(c, apperrors.NewStoreOperationFailed("projects", "find", assert.AnError))

	var body map[string]string
	json.Unmarshal(w.Body.Bytes(), &body)
	assert.Equal(t, "internal server error", body["error"])
}

func TestCreateProject_InvalidPayload(t *testing.T) {
	router := testServer().Router()

	// Missing the required "nom" fails binding before any store is touched.
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/projects", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitContact_InvalidEmail(t *testing.T) {
	router := testServer().Router()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/contact", strings.NewReader(`{"name":"Jane","email":"not-an-email","message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCORSHeaders(t *testing.T) {
	router := testServer().Router()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("OPTIONS", "/health", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "GET")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
