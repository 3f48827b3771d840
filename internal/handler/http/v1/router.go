package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all API v1 routes
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	reports := api.Group("/reports")
	{
		reports.POST("", h.createReport)
		reports.GET("", h.listReports)
		reports.GET("/:id", h.getReport)
		reports.POST("/:id/accept", h.acceptReport)
		reports.POST("/:id/unassign", h.unassignReport)
		reports.PATCH("/:id/status", h.updateStatus)
		reports.POST("/:id/donations", h.recordDonation)
		reports.POST("/:id/updates", h.postStatusUpdate)
		reports.GET("/:id/updates", h.listStatusUpdates)
	}

	rescuers := api.Group("/rescuers")
	{
		rescuers.PUT("/me", h.saveRescuerProfile)
		rescuers.GET("/me", h.getRescuerProfile)
	}

	api.POST("/devices", h.registerDevice)
}

// RegisterPaymentRoutes registers the payment relay endpoints. They live at
// the root, outside the API-key group, because the mobile client calls them
// directly during checkout.
func (h *Handler) RegisterPaymentRoutes(root *gin.Engine) {
	root.POST("/create-paypal-order", h.createPayPalOrder)
	root.POST("/capture-paypal-order", h.capturePayPalOrder)
}

// RegisterSystemRoutes registers unauthenticated system endpoints
func (h *Handler) RegisterSystemRoutes(api *gin.RouterGroup) {
	api.GET("/system/health", h.healthCheck)
}
