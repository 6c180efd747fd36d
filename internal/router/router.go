package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListVisibleEvents(c *ginext.Context)
	SendProposal(c *ginext.Context)
	ConnectHost(c *ginext.Context)
	SubmitApplication(c *ginext.Context)
	SelectContractors(c *ginext.Context)
	SendMaterials(c *ginext.Context)
	UpdateVendor(c *ginext.Context)
	ReleaseFunds(c *ginext.Context)
	SubmitReview(c *ginext.Context)
	ReportDiscrepancy(c *ginext.Context)
	ResolveDiscrepancy(c *ginext.Context)
	ReplayQueue(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Events
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListVisibleEvents)
		api.GET("/events/:id", h.GetEvent)

		// Lifecycle transitions
		api.POST("/events/:id/proposal", h.SendProposal)
		api.POST("/events/:id/host", h.ConnectHost)
		api.POST("/events/:id/applications", h.SubmitApplication)
		api.POST("/events/:id/contractors", h.SelectContractors)
		api.POST("/events/:id/materials", h.SendMaterials)

		// Vendor check-in
		api.PATCH("/events/:id/vendors/:contractorId", h.UpdateVendor)
		api.POST("/events/:id/vendors/:contractorId/funds", h.ReleaseFunds)
		api.POST("/events/:id/vendors/:contractorId/review", h.SubmitReview)

		// Inventory
		api.POST("/events/:id/discrepancies", h.ReportDiscrepancy)
		api.POST("/events/:id/discrepancies/:discrepancyId/resolve", h.ResolveDiscrepancy)

		// Offline queue
		api.POST("/replay", h.ReplayQueue)
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
