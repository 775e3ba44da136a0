package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(paths ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	for _, path := range paths {
		r.GET(path, RateLimit(1), func(ctx *gin.Context) {
			ctx.Status(http.StatusOK)
		})
	}
	return r
}

func hit(r *gin.Engine, path, ip string) int {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if ip != "" {
		req.RemoteAddr = ip + ":1234"
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimit_PerIP(t *testing.T) {
	r := newLimitedRouter("/limited")

	assert.Equal(t, http.StatusOK, hit(r, "/limited", "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, hit(r, "/limited", "10.0.0.1"))

	// Another client keeps its own budget.
	assert.Equal(t, http.StatusOK, hit(r, "/limited", "10.0.0.2"))
}

func TestRateLimit_InstancesAreIndependent(t *testing.T) {
	r := newLimitedRouter("/a", "/b")

	assert.Equal(t, http.StatusOK, hit(r, "/a", "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, hit(r, "/a", "10.0.0.1"))

	// Exhausting one group's bucket leaves the other group's untouched for
	// the same client.
	assert.Equal(t, http.StatusOK, hit(r, "/b", "10.0.0.1"))
}
