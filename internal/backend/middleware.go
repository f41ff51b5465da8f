package backend

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/depositodopitty/pit/internal/logger"
)

// accessLog writes one zerolog line per request and stores a request scoped
// logger in the request context.
func accessLog(base zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		id := c.GetHeader("X-Request-ID")
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Header("X-Request-ID", id)
		l := base.With().Str("request_id", id).Str("component", "api").Logger()
		c.Request = c.Request.WithContext(logger.Into(c.Request.Context(), l))
		c.Next()

		status := c.Writer.Status()
		ev := l.Info()
		if status >= http.StatusInternalServerError {
			ev = l.Error()
		}
		ev.Str("method", c.Request.Method).Str("path", c.Request.URL.Path).Int("status", status).
			Dur("took", time.Since(start)).Msg("request")
	}
}

func recovery(l zerolog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, v any) {
		l.Error().Interface("panic", v).Str("path", c.Request.URL.Path).Msg("handler panicked")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Erro interno"})
	})
}
