package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedRouter(tokens *Tokens) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireToken(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": UserIDFromContext(c)})
	})
	return r
}

func TestRequireToken(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)

	valid, err := tokens.Issue("user123")
	require.NoError(t, err)

	expired, err := NewTokens("test-secret", -time.Minute).Issue("user123")
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "no authorization header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"message":"Unauthorized"}`,
		},
		{
			name:       "header without token part",
			authHeader: "Bearer",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"message":"Unauthorized"}`,
		},
		{
			name:       "invalid token",
			authHeader: "Bearer invalidToken",
			wantStatus: http.StatusForbidden,
			wantBody:   `{"message":"Forbidden"}`,
		},
		{
			name:       "expired token",
			authHeader: "Bearer " + expired,
			wantStatus: http.StatusForbidden,
			wantBody:   `{"message":"Forbidden"}`,
		},
		{
			name:       "valid token",
			authHeader: "Bearer " + valid,
			wantStatus: http.StatusOK,
			wantBody:   `{"user_id":"user123"}`,
		},
	}

	r := newProtectedRouter(tokens)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestRequireTokenHaltsPipeline(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)
	gin.SetMode(gin.TestMode)

	handlerCalled := false
	r := gin.New()
	r.GET("/protected", RequireToken(tokens), func(c *gin.Context) {
		handlerCalled = true
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, handlerCalled, "downstream handler must not run without a token")
}
