package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	InitiatePayment(c *ginext.Context)
	PaymentCallback(c *ginext.Context)
	PollPayment(c *ginext.Context)
	SetAttendance(c *ginext.Context)
	ListEventBookings(c *ginext.Context)
	ListUserBookings(c *ginext.Context)
	GenerateCertificate(c *ginext.Context)
	BulkGenerateCertificates(c *ginext.Context)
	ListEventCertificates(c *ginext.Context)
	ListUserCertificates(c *ginext.Context)
	SendCertificate(c *ginext.Context)
	BulkSendCertificates(c *ginext.Context)
	MarkCertificateDownloaded(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Events
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)

		// Payments
		api.POST("/payments/initiate", h.InitiatePayment)
		api.POST("/payments/callback", h.PaymentCallback)
		api.POST("/payments/:correlationId/poll", h.PollPayment)

		// Bookings
		api.PUT("/bookings/:id/attendance", h.SetAttendance)
		api.GET("/events/:id/bookings", h.ListEventBookings)
		api.GET("/users/:id/bookings", h.ListUserBookings)

		// Certificates
		api.POST("/events/:id/certificates", h.GenerateCertificate)
		api.POST("/events/:id/certificates/bulk", h.BulkGenerateCertificates)
		api.POST("/events/:id/certificates/send", h.BulkSendCertificates)
		api.GET("/events/:id/certificates", h.ListEventCertificates)
		api.GET("/users/:id/certificates", h.ListUserCertificates)
		api.POST("/certificates/:id/send", h.SendCertificate)
		api.POST("/certificates/:id/downloaded", h.MarkCertificateDownloaded)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	metricsHandler := promhttp.Handler()
	router.GET("/metrics", func(c *ginext.Context) {
		metricsHandler.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
