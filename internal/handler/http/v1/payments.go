package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The two relay endpoints are stateless pass-throughs to the payment
// processor. Per the relay contract they answer 200 with a JSON body on
// success and 500 with {"error": ...} on any upstream failure; no
// partial-success shape exists.

// @Summary Create a payment order
// @Description Relay an order creation to the payment processor and return the approval URL.
// @Tags Payments
// @Accept json
// @Produce json
// @Param order body CreateOrderRequest true "Order amount"
// @Success 200 {object} CreateOrderResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Upstream failure"
// @Router /create-paypal-order [post]
func (h *Handler) createPayPalOrder(c *gin.Context) {
	log := h.logger.WithField("method", "createPayPalOrder")

	var input CreateOrderRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	approvalURL, err := h.payments.CreateOrder(c.Request.Context(), input.Amount)
	if err != nil {
		log.WithError(err).Error("Failed to create payment order")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create PayPal order"})
		return
	}
	c.JSON(http.StatusOK, CreateOrderResponse{ApprovalURL: approvalURL})
}

// @Summary Capture a payment order
// @Description Relay a capture call for an approved order to the payment processor.
// @Tags Payments
// @Accept json
// @Produce json
// @Param capture body CaptureOrderRequest true "Order to capture"
// @Success 200 {object} CaptureOrderResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Upstream failure"
// @Router /capture-paypal-order [post]
func (h *Handler) capturePayPalOrder(c *gin.Context) {
	log := h.logger.WithField("method", "capturePayPalOrder")

	var input CaptureOrderRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := h.payments.CaptureOrder(c.Request.Context(), input.OrderID)
	if err != nil {
		log.WithError(err).Error("Failed to capture payment order")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to capture PayPal order"})
		return
	}
	c.JSON(http.StatusOK, CaptureOrderResponse{Status: status})
}
