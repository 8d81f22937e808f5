package server

import (
	"net/http"
	"time"

	"furniture-booking/internal/metrics"
	"furniture-booking/utils"

	"github.com/gin-gonic/gin"
)

const requestIDKey = "request_id"

// RequestIDMiddleware tags each request with a correlation id and echoes it in the response
func RequestIDMiddleware(c *gin.Context) {
	id := utils.RequestID(c.GetHeader(utils.RequestIDHeader))
	c.Set(requestIDKey, id)
	c.Header(utils.RequestIDHeader, id)
	c.Next()
}

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
		"request_id": c.GetString(requestIDKey),
	})
}

// MetricsMiddleware records request counts and latency by matched route
func MetricsMiddleware(c *gin.Context) {
	start := time.Now()
	c.Next()
	metrics.RecordHTTPRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
}

// RecoveryHandler turns a panic into a plain 500 page; the panic value is only logged
func RecoveryHandler(c *gin.Context, recovered any) {
	utils.Error("panic recovered", map[string]any{
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"panic":      recovered,
		"request_id": c.GetString(requestIDKey),
	})
	utils.HTMLError(c, http.StatusInternalServerError, "internal server error")
	c.Abort()
}
