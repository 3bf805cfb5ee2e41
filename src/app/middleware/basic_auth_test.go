package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"blogapi/src/core/domain"
)

type fakeAuthenticator struct {
	email    string
	password string
}

func (f fakeAuthenticator) Authenticate(_ context.Context, email, password string) (string, error) {
	if email == f.email && password == f.password {
		return f.email, nil
	}
	return "", domain.NewUnauthorizedError("invalid credentials")
}

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(BasicAuth(fakeAuthenticator{email: "erick@erick.com", password: "password"}))
	r.GET("/probe", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequesterEmail(c))
	})
	return r
}

func TestBasicAuthMissingCredentials(t *testing.T) {
	r := newAuthRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Header().Get("WWW-Authenticate"), "Basic")
}

func TestBasicAuthWrongPassword(t *testing.T) {
	r := newAuthRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.SetBasicAuth("erick@erick.com", "wrong")

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBasicAuthStoresRequesterEmail(t *testing.T) {
	r := newAuthRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.SetBasicAuth("erick@erick.com", "password")

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "erick@erick.com", w.Body.String())
}
