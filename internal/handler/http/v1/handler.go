package v1

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rescue365/rescue_dispatch_system/internal/config"
	"github.com/rescue365/rescue_dispatch_system/internal/errs"
	"github.com/rescue365/rescue_dispatch_system/internal/geo"
	"github.com/rescue365/rescue_dispatch_system/internal/models"
	"github.com/rescue365/rescue_dispatch_system/internal/service"
	"github.com/sirupsen/logrus"
)

// Payments is the contract for the payment processor passthrough
type Payments interface {
	CreateOrder(ctx context.Context, amount string) (string, error)
	CaptureOrder(ctx context.Context, orderID string) (string, error)
}

type Handler struct {
	reportService  service.ReportService
	profileService service.ProfileService
	payments       Payments
	logger         *logrus.Logger
	validate       *validator.Validate
	cfg            *config.Config
}

func NewHandler(reportService service.ReportService, profileService service.ProfileService, payments Payments, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		reportService:  reportService,
		profileService: profileService,
		payments:       payments,
		logger:         logger,
		validate:       validator.New(),
		cfg:            cfg,
	}
}

// respondError maps the service error taxonomy to HTTP status codes. Every
// class gets a distinguishable message; unknown errors stay generic.
func respondError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, errs.ErrValidation):
		log.WithError(err).Warn("Request rejected: validation")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrNotFound):
		log.WithError(err).Warn("Request rejected: not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
	case errors.Is(err, errs.ErrAlreadyAssigned):
		log.WithError(err).Info("Request rejected: claim race lost")
		c.JSON(http.StatusConflict, gin.H{"error": "someone else already claimed this rescue"})
	case errors.Is(err, errs.ErrInvalidTransition):
		log.WithError(err).Warn("Request rejected: invalid transition")
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrSelfReport):
		log.WithError(err).Warn("Request rejected: self report")
		c.JSON(http.StatusForbidden, gin.H{"error": "you cannot claim your own report"})
	case errors.Is(err, errs.ErrUnauthorized):
		log.WithError(err).Warn("Request rejected: unauthorized")
		c.JSON(http.StatusForbidden, gin.H{"error": "you may not modify this report"})
	case errors.Is(err, errs.ErrUpstream):
		log.WithError(err).Error("Upstream collaborator failure")
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream service failure"})
	default:
		log.WithError(err).Error("Unhandled service error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary File a rescue report
// @Description Submit a new rescue report as a bystander. The report starts in Pending status.
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param report body CreateReportRequest true "Report submission"
// @Success 201 {object} ReportResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports [post]
func (h *Handler) createReport(c *gin.Context) {
	actor := actorFromContext(c)
	log := h.logger.WithField("method", "createReport").WithField("user_id", actor.ID)

	var input CreateReportRequest
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

	report := CreateRequestToReportModel(input)
	if err := h.reportService.CreateReport(c.Request.Context(), actor, report); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToReportResponse(report))
}

// @Summary List visible reports
// @Description Dispatch view for the calling actor's role. Rescuers must provide lat/lng.
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param lat query number false "Viewer latitude (rescuer role)"
// @Param lng query number false "Viewer longitude (rescuer role)"
// @Success 200 {array} ReportResponse
// @Failure 400 {object} map[string]string "Missing location for rescuer view"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports [get]
func (h *Handler) listReports(c *gin.Context) {
	actor := actorFromContext(c)
	log := h.logger.WithField("method", "listReports").WithField("user_id", actor.ID).WithField("role", actor.Role)

	var loc *geo.Coordinate
	latStr, lngStr := c.Query("lat"), c.Query("lng")
	if latStr != "" && lngStr != "" {
		lat, errLat := strconv.ParseFloat(latStr, 64)
		lng, errLng := strconv.ParseFloat(lngStr, 64)
		if errLat != nil || errLng != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lat/lng"})
			return
		}
		loc = &geo.Coordinate{Latitude: lat, Longitude: lng}
	}

	reports, err := h.reportService.VisibleReports(c.Request.Context(), actor, loc)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToReportResponses(reports))
}

// @Summary Get report by ID
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Success 200 {object} ReportResponse
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Report not found"
// @Router /reports/{id} [get]
func (h *Handler) getReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "getReport").WithField("id", id)

	report, err := h.reportService.GetReport(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToReportResponse(report))
}

// @Summary Claim a pending report
// @Description Assign the calling rescuer and move the report to Rescue Accepted. Exactly one of two concurrent claims succeeds.
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 403 {object} map[string]string "Self report"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 409 {object} map[string]string "Already claimed or not claimable"
// @Router /reports/{id}/accept [post]
func (h *Handler) acceptReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	actor := actorFromContext(c)
	log := h.logger.WithField("method", "acceptReport").WithField("id", id).WithField("user_id", actor.ID)

	if err := h.reportService.Accept(c.Request.Context(), actor, id); err != nil {
		respondError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Release a claimed report
// @Description Clear the assignment and reset the report to Pending. Only the assigned rescuer may release.
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 403 {object} map[string]string "Not the assigned rescuer"
// @Failure 404 {object} map[string]string "Report not found"
// @Router /reports/{id}/unassign [post]
func (h *Handler) unassignReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	actor := actorFromContext(c)
	log := h.logger.WithField("method", "unassignReport").WithField("id", id).WithField("user_id", actor.ID)

	if err := h.reportService.Unassign(c.Request.Context(), actor, id); err != nil {
		respondError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Move a report through the workflow
// @Description Apply a status transition as the calling role. Entering Donations Needed requires a positive donations_needed target.
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Param transition body UpdateStatusRequest true "Status transition"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 403 {object} map[string]string "Role may not perform this transition"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 409 {object} map[string]string "Transition not allowed by the workflow"
// @Router /reports/{id}/status [patch]
func (h *Handler) updateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	actor := actorFromContext(c)
	log := h.logger.WithField("method", "updateStatus").WithField("id", id).WithField("user_id", actor.ID)

	var input UpdateStatusRequest
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

	err = h.reportService.UpdateStatus(c.Request.Context(), actor, id, models.Status(input.Status), input.DonationsNeeded)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Record a donation
// @Description Add a pledge to a report flagged as Donations Needed and return the new running total. Totals are not capped at the target.
// @Tags Donations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Param donation body DonationRequest true "Donation"
// @Success 200 {object} DonationResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 409 {object} map[string]string "Report is not accepting donations"
// @Router /reports/{id}/donations [post]
func (h *Handler) recordDonation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	actor := actorFromContext(c)
	log := h.logger.WithField("method", "recordDonation").WithField("id", id).WithField("user_id", actor.ID)

	var input DonationRequest
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

	total, err := h.reportService.RecordDonation(c.Request.Context(), actor, id, input.Amount)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, DonationResponse{DonationsReceived: total})
}

// @Summary Post a progress note
// @Description Post a free-text update on a claimed report. Only the assigned rescuer may post.
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Param update body StatusUpdateRequest true "Progress note"
// @Success 201 "Created"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 403 {object} map[string]string "Not the assigned rescuer"
// @Failure 404 {object} map[string]string "Report not found"
// @Router /reports/{id}/updates [post]
func (h *Handler) postStatusUpdate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	actor := actorFromContext(c)
	log := h.logger.WithField("method", "postStatusUpdate").WithField("id", id).WithField("user_id", actor.ID)

	var input StatusUpdateRequest
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

	if err := h.reportService.AddStatusUpdate(c.Request.Context(), actor, id, input.Message); err != nil {
		respondError(c, log, err)
		return
	}
	c.Status(http.StatusCreated)
}

// @Summary List progress notes
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Success 200 {array} StatusUpdateResponse
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 404 {object} map[string]string "Report not found"
// @Router /reports/{id}/updates [get]
func (h *Handler) listStatusUpdates(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "listStatusUpdates").WithField("id", id)

	updates, err := h.reportService.ListStatusUpdates(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToStatusUpdateResponses(updates))
}

// @Summary Create or replace the caller's rescuer profile
// @Tags Rescuers
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param profile body RescuerProfileRequest true "Rescuer profile"
// @Success 200 {object} RescuerProfileResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /rescuers/me [put]
func (h *Handler) saveRescuerProfile(c *gin.Context) {
	actor := actorFromContext(c)
	log := h.logger.WithField("method", "saveRescuerProfile").WithField("user_id", actor.ID)

	var input RescuerProfileRequest
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

	profile := &models.RescuerProfile{
		Name:       input.Name,
		Phone:      input.Phone,
		Experience: input.Experience,
	}
	if err := h.profileService.SaveRescuerProfile(c.Request.Context(), actor, profile); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToProfileResponse(profile))
}

// @Summary Get the caller's rescuer profile
// @Tags Rescuers
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} RescuerProfileResponse
// @Failure 404 {object} map[string]string "No profile yet"
// @Router /rescuers/me [get]
func (h *Handler) getRescuerProfile(c *gin.Context) {
	actor := actorFromContext(c)
	log := h.logger.WithField("method", "getRescuerProfile").WithField("user_id", actor.ID)

	profile, err := h.profileService.GetRescuerProfile(c.Request.Context(), actor.ID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToProfileResponse(profile))
}

// @Summary Register a push delivery token
// @Description Upsert the caller's device token, last write wins.
// @Tags Devices
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param device body DeviceTokenRequest true "Device token"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /devices [post]
func (h *Handler) registerDevice(c *gin.Context) {
	actor := actorFromContext(c)
	log := h.logger.WithField("method", "registerDevice").WithField("user_id", actor.ID)

	var input DeviceTokenRequest
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

	if err := h.profileService.RegisterDeviceToken(c.Request.Context(), actor.ID, input.PushToken); err != nil {
		respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
