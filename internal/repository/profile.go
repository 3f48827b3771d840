package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rescue365/rescue_dispatch_system/internal/errs"
	"github.com/rescue365/rescue_dispatch_system/internal/models"
	"github.com/rescue365/rescue_dispatch_system/internal/service"
)

type ProfileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) service.ProfileRepository {
	return &ProfileRepository{
		db: db,
	}
}

// UpsertRescuerProfile creates or replaces a rescuer profile, keyed by user id
func (r *ProfileRepository) UpsertRescuerProfile(ctx context.Context, profile *models.RescuerProfile) error {
	query := `
		INSERT INTO rescuers (user_id, name, phone, experience)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			phone = EXCLUDED.phone,
			experience = EXCLUDED.experience,
			updated_at = NOW()
		RETURNING created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		profile.UserID,
		profile.Name,
		profile.Phone,
		profile.Experience,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert rescuer profile: %w", err)
	}
	return nil
}

// GetRescuerProfile returns a rescuer profile by user id
func (r *ProfileRepository) GetRescuerProfile(ctx context.Context, userID string) (*models.RescuerProfile, error) {
	profile := &models.RescuerProfile{}
	query := `
		SELECT user_id, name, phone, experience, created_at, updated_at
		FROM rescuers
		WHERE user_id = $1;
	`
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.Name,
		&profile.Phone,
		&profile.Experience,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("rescuer profile %s: %w", userID, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get rescuer profile: %w", err)
	}
	return profile, nil
}

// UpsertDeviceToken stores the push token for a user, last write wins
func (r *ProfileRepository) UpsertDeviceToken(ctx context.Context, userID, pushToken string) error {
	query := `
		INSERT INTO device_tokens (user_id, push_token)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET
			push_token = EXCLUDED.push_token,
			updated_at = NOW();
	`
	if _, err := r.db.Exec(ctx, query, userID, pushToken); err != nil {
		return fmt.Errorf("failed to upsert device token: %w", err)
	}
	return nil
}

// GetDeviceToken returns the push token registered for a user
func (r *ProfileRepository) GetDeviceToken(ctx context.Context, userID string) (string, error) {
	var token string
	query := `SELECT push_token FROM device_tokens WHERE user_id = $1;`
	err := r.db.QueryRow(ctx, query, userID).Scan(&token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("device token for user %s: %w", userID, errs.ErrNotFound)
		}
		return "", fmt.Errorf("failed to get device token: %w", err)
	}
	return token, nil
}

// HasVetCredential reports whether a vet credential record exists for the user
func (r *ProfileRepository) HasVetCredential(ctx context.Context, userID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM vets WHERE user_id = $1);`
	if err := r.db.QueryRow(ctx, query, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check vet credential: %w", err)
	}
	return exists, nil
}
