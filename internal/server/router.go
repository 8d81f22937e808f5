package server

import (
	booking "furniture-booking/internal/bookingService"
	"furniture-booking/internal/metrics"
	"furniture-booking/internal/render"
	handler "furniture-booking/services/booking/handler"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Options tunes the router. The zero value disables write throttling.
type Options struct {
	// WriteRateLimit is the sustained POST rate per client; 0 disables throttling.
	WriteRateLimit rate.Limit
	WriteBurst     int
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(bookingService *booking.BookingService, renderer *render.Renderer, opts Options) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	// Unmatched paths must reach NoRoute instead of being redirected or answered with 405.
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false
	router.HandleMethodNotAllowed = false

	router.Use(gin.CustomRecovery(RecoveryHandler)) // recover from panics
	router.Use(RequestIDMiddleware)
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(MetricsMiddleware)

	bookingHandler := handler.NewBookingHandler(bookingService, renderer)

	router.GET("/", bookingHandler.HomeHandler)
	router.GET("/home", bookingHandler.HomeHandler)
	router.GET("/register", bookingHandler.RegisterPageHandler)
	router.GET("/login", bookingHandler.LoginPageHandler)
	router.GET("/account", bookingHandler.AccountPageHandler)
	router.GET("/furniture/:id", bookingHandler.FurnitureHandler)
	router.GET("/search", bookingHandler.SearchHandler)
	router.GET("/booking/:id", bookingHandler.BookingPageHandler)
	router.GET("/payment/:id", bookingHandler.PaymentPageHandler)

	writes := router.Group("/")
	if opts.WriteRateLimit > 0 {
		writes.Use(NewRateLimiter(opts.WriteRateLimit, opts.WriteBurst).Middleware)
	}
	{
		writes.POST("/register", bookingHandler.RegisterHandler)
		writes.POST("/login", bookingHandler.LoginHandler)
		writes.POST("/account", bookingHandler.AccountHandler)
		writes.POST("/booking/:id", bookingHandler.CreateBookingHandler)
		writes.POST("/payment/:id", bookingHandler.CreatePaymentHandler)
	}

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	router.NoRoute(bookingHandler.NotFoundHandler)

	return router
}
