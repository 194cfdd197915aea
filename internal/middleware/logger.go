package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"salonbooking/internal/pkg/response"
)

const (
	HeaderRequestID = "X-Request-ID"
	CtxRequestID    = "request_id"
)

// RequestID reuses the caller's X-Request-ID or mints one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(CtxRequestID, id)
		c.Writer.Header().Set(HeaderRequestID, id)
		c.Next()
	}
}

// RequestLogger logs one line per request plus every error handlers attached
// with c.Error, and turns panics into a 500.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				log.Error("panic recovered",
					append(requestFields(c, start),
						zap.Any("panic", recovered),
						zap.ByteString("stack", debug.Stack()),
					)...,
				)
				response.Error(c, http.StatusInternalServerError, "Internal server error")
				c.Abort()
				return
			}

			fields := requestFields(c, start)
			for _, e := range c.Errors {
				log.Error("request error", append(fields, zap.Error(e.Err), zap.String("type", fmt.Sprint(e.Type)))...)
			}

			status := c.Writer.Status()
			switch {
			case status >= http.StatusInternalServerError:
				log.Error("request", fields...)
			case status >= http.StatusBadRequest:
				log.Warn("request", fields...)
			default:
				log.Info("request", fields...)
			}
		}()

		c.Next()
	}
}

func requestFields(c *gin.Context, start time.Time) []zap.Field {
	fields := []zap.Field{
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.String("query", c.Request.URL.RawQuery),
		zap.Int("status", c.Writer.Status()),
		zap.Duration("latency", time.Since(start)),
		zap.String("client_ip", c.ClientIP()),
		zap.String("request_id", c.GetString(CtxRequestID)),
	}
	if userID := c.GetString(CtxUserID); userID != "" {
		fields = append(fields, zap.String("user_id", userID), zap.String("user_type", c.GetString(CtxUserType)))
	}
	return fields
}
