package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rescue365/rescue_dispatch_system/internal/dispatch"
	"github.com/rescue365/rescue_dispatch_system/internal/errs"
	"github.com/rescue365/rescue_dispatch_system/internal/geo"
	"github.com/rescue365/rescue_dispatch_system/internal/models"
	"github.com/rescue365/rescue_dispatch_system/internal/push"
	"github.com/rescue365/rescue_dispatch_system/internal/workflow"
	"github.com/sirupsen/logrus"
)

// ReportRepository is the contract for rescue report persistence
type ReportRepository interface {
	Create(ctx context.Context, report *models.RescueReport) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.RescueReport, error)
	ListAll(ctx context.Context) ([]*models.RescueReport, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.Status, clearAssignee bool, fundingTarget *float64) error
	Claim(ctx context.Context, id uuid.UUID, rescuerID string) (bool, error)
	Unclaim(ctx context.Context, id uuid.UUID, rescuerID string) (bool, error)
	AddDonation(ctx context.Context, id uuid.UUID, donorID string, amount float64) (float64, error)
	CreateStatusUpdate(ctx context.Context, update *models.StatusUpdate) error
	ListStatusUpdates(ctx context.Context, reportID uuid.UUID) ([]*models.StatusUpdate, error)

	GetReportFromCache(ctx context.Context, id uuid.UUID) (*models.RescueReport, error)
	SetReportCache(ctx context.Context, report *models.RescueReport) error
	InvalidateReportCache(ctx context.Context, id uuid.UUID) error
}

// ReportService is the contract for the rescue report lifecycle:
// submission, dispatch visibility, claiming and the status workflow
type ReportService interface {
	CreateReport(ctx context.Context, actor models.Actor, report *models.RescueReport) error
	GetReport(ctx context.Context, id uuid.UUID) (*models.RescueReport, error)
	VisibleReports(ctx context.Context, actor models.Actor, loc *geo.Coordinate) ([]*models.RescueReport, error)
	Accept(ctx context.Context, actor models.Actor, id uuid.UUID) error
	Unassign(ctx context.Context, actor models.Actor, id uuid.UUID) error
	UpdateStatus(ctx context.Context, actor models.Actor, id uuid.UUID, newStatus models.Status, fundingTarget *float64) error
	RecordDonation(ctx context.Context, actor models.Actor, id uuid.UUID, amount float64) (float64, error)
	AddStatusUpdate(ctx context.Context, actor models.Actor, id uuid.UUID, message string) error
	ListStatusUpdates(ctx context.Context, id uuid.UUID) ([]*models.StatusUpdate, error)
}

type reportService struct {
	repo      ReportRepository
	vets      VetVerifier
	publisher push.Publisher
	logger    *logrus.Logger
}

func NewReportService(repo ReportRepository, vets VetVerifier, publisher push.Publisher, logger *logrus.Logger) ReportService {
	return &reportService{
		repo:      repo,
		vets:      vets,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateReport validates and persists a new rescue report in Pending status
func (s *reportService) CreateReport(ctx context.Context, actor models.Actor, report *models.RescueReport) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "report",
		"method":      "CreateReport",
		"reporter_id": actor.ID,
	})
	log.Info("Attempting to create a new rescue report")

	if err := validateNewReport(report); err != nil {
		log.WithError(err).Warn("Report validation failed")
		return err
	}

	report.ReporterID = actor.ID
	report.Status = models.StatusPending
	report.AssignedRescuerID = nil
	report.DonationsNeeded = nil
	report.DonationsReceived = 0

	if err := s.repo.Create(ctx, report); err != nil {
		log.WithError(err).Error("Failed to create report in repository")
		return fmt.Errorf("service: could not create report: %w", err)
	}

	log.WithField("report_id", report.ID).Info("Rescue report created")
	return nil
}

func validateNewReport(report *models.RescueReport) error {
	switch {
	case report.AnimalType == "":
		return fmt.Errorf("%w: animal type is required", errs.ErrValidation)
	case report.Severity.Rank() == 0:
		return fmt.Errorf("%w: severity is required", errs.ErrValidation)
	case strings.TrimSpace(report.Description) == "":
		return fmt.Errorf("%w: description is required", errs.ErrValidation)
	case report.Latitude == 0 && report.Longitude == 0:
		return fmt.Errorf("%w: location is required", errs.ErrValidation)
	case report.ImageURL == "":
		return fmt.Errorf("%w: photo is required", errs.ErrValidation)
	}
	return nil
}

// GetReport returns a single report, served from cache when possible
func (s *reportService) GetReport(ctx context.Context, id uuid.UUID) (*models.RescueReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "GetReport",
		"report_id": id,
	})

	cached, err := s.repo.GetReportFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Report cache lookup failed")
	}
	if cached != nil {
		return cached, nil
	}

	report, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get report from repository")
		return nil, fmt.Errorf("service: could not get report: %w", err)
	}

	if err := s.repo.SetReportCache(ctx, report); err != nil {
		log.WithError(err).Warn("Failed to cache report")
	}
	return report, nil
}

// VisibleReports computes the dispatch view for the acting role from a full
// snapshot of reports
func (s *reportService) VisibleReports(ctx context.Context, actor models.Actor, loc *geo.Coordinate) ([]*models.RescueReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "report",
		"method":  "VisibleReports",
		"user_id": actor.ID,
		"role":    actor.Role,
	})

	if actor.Role == models.RoleVet {
		if err := s.requireVerifiedVet(ctx, actor); err != nil {
			return nil, err
		}
	}

	all, err := s.repo.ListAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list reports from repository")
		return nil, fmt.Errorf("service: could not list reports: %w", err)
	}

	visible, err := dispatch.Visible(actor.Role, actor.ID, all, loc)
	if err != nil {
		return nil, err
	}

	log.WithField("count", len(visible)).Info("Dispatch view computed")
	return visible, nil
}

// Accept claims a pending report for a rescuer. The claim and the
// Pending -> Rescue Accepted transition are a single conditional update, so
// exactly one of two racing rescuers wins.
func (s *reportService) Accept(ctx context.Context, actor models.Actor, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "report",
		"method":     "Accept",
		"report_id":  id,
		"rescuer_id": actor.ID,
	})
	log.Info("Attempting to claim report")

	report, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("service: could not load report for claim: %w", err)
	}
	if report.ReporterID == actor.ID {
		log.Warn("Rescuer attempted to claim their own report")
		return fmt.Errorf("service: %w", errs.ErrSelfReport)
	}

	claimed, err := s.repo.Claim(ctx, id, actor.ID)
	if err != nil {
		log.WithError(err).Error("Failed to claim report in repository")
		return fmt.Errorf("service: could not claim report: %w", err)
	}

	if !claimed {
		// Lost the conditional update. Re-read to tell a racing winner
		// apart from a retry of our own claim or a non-claimable status.
		current, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("service: could not load report after claim conflict: %w", err)
		}
		if current.AssignedRescuerID != nil {
			if *current.AssignedRescuerID == actor.ID {
				log.Info("Report already claimed by this rescuer")
				return nil
			}
			log.Info("Report already claimed by another rescuer")
			return fmt.Errorf("service: %w", errs.ErrAlreadyAssigned)
		}
		return fmt.Errorf("service: %w: report is %q, only pending reports can be claimed",
			errs.ErrInvalidTransition, current.Status)
	}

	if err := s.repo.InvalidateReportCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate report cache")
	}

	s.notifyReporter(ctx, report.ReporterID, id, models.StatusAccepted)
	log.Info("Report claimed")
	return nil
}

// Unassign releases a claimed report back to Pending. Only the currently
// assigned rescuer may release it.
func (s *reportService) Unassign(ctx context.Context, actor models.Actor, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "report",
		"method":     "Unassign",
		"report_id":  id,
		"rescuer_id": actor.ID,
	})
	log.Info("Attempting to unassign report")

	report, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("service: could not load report for unassign: %w", err)
	}

	released, err := s.repo.Unclaim(ctx, id, actor.ID)
	if err != nil {
		log.WithError(err).Error("Failed to unassign report in repository")
		return fmt.Errorf("service: could not unassign report: %w", err)
	}
	if !released {
		log.Warn("Unassign rejected: caller is not the assigned rescuer")
		return fmt.Errorf("service: %w: only the assigned rescuer may unassign", errs.ErrUnauthorized)
	}

	if err := s.repo.InvalidateReportCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate report cache")
	}

	s.notifyReporter(ctx, report.ReporterID, id, models.StatusPending)
	log.Info("Report unassigned")
	return nil
}

// UpdateStatus moves a report through the workflow on behalf of an actor
func (s *reportService) UpdateStatus(ctx context.Context, actor models.Actor, id uuid.UUID, newStatus models.Status, fundingTarget *float64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "UpdateStatus",
		"report_id": id,
		"user_id":   actor.ID,
		"role":      actor.Role,
		"status":    newStatus,
	})
	log.Info("Attempting status transition")

	if !workflow.IsValid(newStatus) {
		return fmt.Errorf("service: %w: unknown status %q", errs.ErrValidation, newStatus)
	}

	report, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Report not found for status update")
		return fmt.Errorf("service: could not load report: %w", err)
	}

	effect, err := workflow.CanTransition(actor.Role, report.Status, newStatus)
	if err != nil {
		log.WithError(err).Warn("Transition rejected by workflow")
		return fmt.Errorf("service: %w", err)
	}
	if effect.ClaimOnly {
		log.Warn("Claim-only transition attempted through status update")
		return fmt.Errorf("service: %w: %q is entered by claiming the report",
			errs.ErrInvalidTransition, newStatus)
	}

	switch actor.Role {
	case models.RoleRescuer:
		if report.AssignedRescuerID == nil || *report.AssignedRescuerID != actor.ID {
			log.Warn("Status update rejected: caller is not the assigned rescuer")
			return fmt.Errorf("service: %w: only the assigned rescuer may update this report", errs.ErrUnauthorized)
		}
	case models.RoleVet:
		if err := s.requireVerifiedVet(ctx, actor); err != nil {
			return err
		}
	}

	if effect.RequireFundingTarget {
		if fundingTarget == nil || *fundingTarget <= 0 {
			return fmt.Errorf("%w: a positive funding target is required for %q",
				errs.ErrValidation, newStatus)
		}
	} else {
		fundingTarget = nil
	}

	if err := s.repo.UpdateStatus(ctx, id, newStatus, effect.ClearAssignee, fundingTarget); err != nil {
		log.WithError(err).Error("Failed to update status in repository")
		return fmt.Errorf("service: could not update status: %w", err)
	}

	if err := s.repo.InvalidateReportCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate report cache")
	}

	s.notifyReporter(ctx, report.ReporterID, id, newStatus)
	log.Info("Status transition committed")
	return nil
}

// RecordDonation adds a pledge to a report flagged as needing donations and
// returns the new running total. Totals are not capped at the target and
// crossing the target never changes the status; a vet closes the case.
func (s *reportService) RecordDonation(ctx context.Context, actor models.Actor, id uuid.UUID, amount float64) (float64, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "RecordDonation",
		"report_id": id,
		"donor_id":  actor.ID,
	})
	log.Info("Recording donation")

	if amount <= 0 {
		return 0, fmt.Errorf("%w: donation amount must be positive", errs.ErrValidation)
	}

	total, err := s.repo.AddDonation(ctx, id, actor.ID, amount)
	if err != nil {
		log.WithError(err).Warn("Failed to record donation")
		return 0, fmt.Errorf("service: could not record donation: %w", err)
	}

	if err := s.repo.InvalidateReportCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate report cache")
	}

	log.WithField("total", total).Info("Donation recorded")
	return total, nil
}

// AddStatusUpdate posts a progress note; only the assigned rescuer may post
func (s *reportService) AddStatusUpdate(ctx context.Context, actor models.Actor, id uuid.UUID, message string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "report",
		"method":     "AddStatusUpdate",
		"report_id":  id,
		"rescuer_id": actor.ID,
	})

	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("%w: message is required", errs.ErrValidation)
	}

	report, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("service: could not load report: %w", err)
	}
	if report.AssignedRescuerID == nil || *report.AssignedRescuerID != actor.ID {
		log.Warn("Status update note rejected: caller is not the assigned rescuer")
		return fmt.Errorf("service: %w: only the assigned rescuer may post updates", errs.ErrUnauthorized)
	}

	update := &models.StatusUpdate{
		ReportID:  id,
		RescuerID: actor.ID,
		Message:   message,
	}
	if err := s.repo.CreateStatusUpdate(ctx, update); err != nil {
		log.WithError(err).Error("Failed to create status update in repository")
		return fmt.Errorf("service: could not create status update: %w", err)
	}

	log.WithField("update_id", update.ID).Info("Status update posted")
	return nil
}

// ListStatusUpdates returns the progress notes for a report, newest first
func (s *reportService) ListStatusUpdates(ctx context.Context, id uuid.UUID) ([]*models.StatusUpdate, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, fmt.Errorf("service: could not load report: %w", err)
	}

	updates, err := s.repo.ListStatusUpdates(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not list status updates: %w", err)
	}
	return updates, nil
}

func (s *reportService) requireVerifiedVet(ctx context.Context, actor models.Actor) error {
	verified, err := s.vets.IsVerifiedVet(ctx, actor.ID, actor.Email)
	if err != nil {
		return fmt.Errorf("service: could not verify vet credential: %w", err)
	}
	if !verified {
		return fmt.Errorf("service: %w: vet credential required", errs.ErrUnauthorized)
	}
	return nil
}

// notifyReporter enqueues a best-effort push to the reporter. Delivery is
// off the critical path: a failure here never rolls back a committed
// transition, so errors are logged and dropped.
func (s *reportService) notifyReporter(ctx context.Context, reporterID string, reportID uuid.UUID, status models.Status) {
	event := push.Event{
		UserID:   reporterID,
		ReportID: reportID.String(),
		Title:    "Rescue Update",
		Body:     fmt.Sprintf("Your rescue is now marked: %s", status),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"report_id": reportID,
			"user_id":   reporterID,
		}).Error("Failed to enqueue push notification")
	}
}
