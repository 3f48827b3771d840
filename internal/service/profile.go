package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rescue365/rescue_dispatch_system/internal/errs"
	"github.com/rescue365/rescue_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

// ProfileRepository is the contract for rescuer profiles, device tokens and
// vet credentials
type ProfileRepository interface {
	UpsertRescuerProfile(ctx context.Context, profile *models.RescuerProfile) error
	GetRescuerProfile(ctx context.Context, userID string) (*models.RescuerProfile, error)
	UpsertDeviceToken(ctx context.Context, userID, pushToken string) error
	GetDeviceToken(ctx context.Context, userID string) (string, error)
	HasVetCredential(ctx context.Context, userID string) (bool, error)
}

// ProfileService manages single-owner records: the rescuer profile required
// before the dispatch view opens, and the push delivery token
type ProfileService interface {
	SaveRescuerProfile(ctx context.Context, actor models.Actor, profile *models.RescuerProfile) error
	GetRescuerProfile(ctx context.Context, userID string) (*models.RescuerProfile, error)
	RegisterDeviceToken(ctx context.Context, userID, pushToken string) error
}

type profileService struct {
	repo   ProfileRepository
	logger *logrus.Logger
}

func NewProfileService(repo ProfileRepository, logger *logrus.Logger) ProfileService {
	return &profileService{
		repo:   repo,
		logger: logger,
	}
}

// SaveRescuerProfile creates or replaces the caller's rescuer profile
func (s *profileService) SaveRescuerProfile(ctx context.Context, actor models.Actor, profile *models.RescuerProfile) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "profile",
		"method":  "SaveRescuerProfile",
		"user_id": actor.ID,
	})

	if strings.TrimSpace(profile.Name) == "" || strings.TrimSpace(profile.Phone) == "" {
		return fmt.Errorf("%w: name and phone are required", errs.ErrValidation)
	}

	profile.UserID = actor.ID
	if err := s.repo.UpsertRescuerProfile(ctx, profile); err != nil {
		log.WithError(err).Error("Failed to upsert rescuer profile")
		return fmt.Errorf("service: could not save rescuer profile: %w", err)
	}

	log.Info("Rescuer profile saved")
	return nil
}

// GetRescuerProfile returns a rescuer profile by owning user id
func (s *profileService) GetRescuerProfile(ctx context.Context, userID string) (*models.RescuerProfile, error) {
	profile, err := s.repo.GetRescuerProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get rescuer profile: %w", err)
	}
	return profile, nil
}

// RegisterDeviceToken stores the caller's push token, last write wins
func (s *profileService) RegisterDeviceToken(ctx context.Context, userID, pushToken string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "profile",
		"method":  "RegisterDeviceToken",
		"user_id": userID,
	})

	if strings.TrimSpace(pushToken) == "" {
		return fmt.Errorf("%w: push token is required", errs.ErrValidation)
	}

	if err := s.repo.UpsertDeviceToken(ctx, userID, pushToken); err != nil {
		log.WithError(err).Error("Failed to upsert device token")
		return fmt.Errorf("service: could not register device token: %w", err)
	}

	log.Info("Device token registered")
	return nil
}
