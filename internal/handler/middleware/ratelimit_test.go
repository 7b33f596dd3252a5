//go:build unit

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel-core/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewRateLimiter_PassThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		cfg  config.RateLimitConfig
	}{
		{name: "disabled", cfg: config.RateLimitConfig{Enabled: false, Capacity: 1}},
		{name: "enabled without redis", cfg: config.RateLimitConfig{Enabled: true, Capacity: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.POST("/api/reservations", NewRateLimiter(tt.cfg, nil), func(c *gin.Context) {
				c.Status(http.StatusCreated)
			})

			for range 3 {
				w := httptest.NewRecorder()
				router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/reservations", nil))
				assert.Equal(t, http.StatusCreated, w.Code)
				assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
			}
		})
	}
}

func TestRateKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	actorID := uuid.MustParse("0192f0c4-7b7e-7c3a-9d1e-3f5a6b7c8d9e")

	tests := []struct {
		strategy string
		withUser bool
		want     string
	}{
		{strategy: "ip", want: "rl:ip:192.0.2.10"},
		{strategy: "actor", want: "rl:actor:anon"},
		{strategy: "actor", withUser: true, want: "rl:actor:" + actorID.String()},
		{strategy: "actor_route", withUser: true, want: "rl:actor:" + actorID.String() + ":route:POST /api/reservations"},
		{strategy: "IP_ROUTE", want: "rl:ip:192.0.2.10:route:POST /api/reservations"},
		{strategy: "", want: "rl:ip:192.0.2.10:actor:anon:route:POST /api/reservations"},
	}

	for _, tt := range tests {
		t.Run(tt.strategy+"/"+tt.want, func(t *testing.T) {
			var got string
			router := gin.New()
			router.POST("/api/reservations", func(c *gin.Context) {
				if tt.withUser {
					c.Set(ctxActorIDKey, actorID)
				}
				got = rateKey(config.RateLimitConfig{Prefix: "rl", KeyStrategy: tt.strategy}, c)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/reservations", nil)
			req.RemoteAddr = "192.0.2.10:51234"
			router.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.want, got)
		})
	}
}
