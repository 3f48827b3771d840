package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rescue365/rescue_dispatch_system/internal/errs"
	"github.com/rescue365/rescue_dispatch_system/internal/models"
	"github.com/rescue365/rescue_dispatch_system/internal/service"
)

const reportCacheTTL = 5 * time.Minute

type ReportRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewReportRepository(db *pgxpool.Pool, redisClient *redis.Client) service.ReportRepository {
	return &ReportRepository{
		db:          db,
		redisClient: redisClient,
	}
}

const reportColumns = `
	id,
	animal_type,
	severity,
	description,
	location_lat,
	location_lng,
	address,
	image_url,
	status,
	reporter_id,
	assigned_rescuer_id,
	donations_needed,
	donations_received,
	created_at,
	updated_at`

func scanReport(row pgx.Row) (*models.RescueReport, error) {
	report := &models.RescueReport{}
	err := row.Scan(
		&report.ID,
		&report.AnimalType,
		&report.Severity,
		&report.Description,
		&report.Latitude,
		&report.Longitude,
		&report.Address,
		&report.ImageURL,
		&report.Status,
		&report.ReporterID,
		&report.AssignedRescuerID,
		&report.DonationsNeeded,
		&report.DonationsReceived,
		&report.CreatedAt,
		&report.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return report, nil
}

// Create inserts a new rescue report
func (r *ReportRepository) Create(ctx context.Context, report *models.RescueReport) error {
	query := `
		INSERT INTO rescue_reports (animal_type, severity, description, location_lat, location_lng, address, image_url, status, reporter_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		report.AnimalType,
		report.Severity,
		report.Description,
		report.Latitude,
		report.Longitude,
		report.Address,
		report.ImageURL,
		report.Status,
		report.ReporterID,
	).Scan(&report.ID, &report.CreatedAt, &report.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create rescue report: %w", err)
	}
	return nil
}

// GetByID returns a rescue report by its UUID
func (r *ReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.RescueReport, error) {
	query := `SELECT ` + reportColumns + ` FROM rescue_reports WHERE id = $1;`

	report, err := scanReport(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("report %s: %w", id, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get report by id: %w", err)
	}
	return report, nil
}

// ListAll returns a snapshot of every rescue report. The dispatch filter
// derives per-role views from it; the raw list is never returned to a client.
func (r *ReportRepository) ListAll(ctx context.Context) ([]*models.RescueReport, error) {
	query := `SELECT ` + reportColumns + ` FROM rescue_reports ORDER BY created_at;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list rescue reports: %w", err)
	}
	defer rows.Close()

	reports := make([]*models.RescueReport, 0)
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return reports, nil
}

// UpdateStatus applies an already-validated workflow transition
func (r *ReportRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.Status, clearAssignee bool, fundingTarget *float64) error {
	query := `
		UPDATE rescue_reports SET
			status = $1,
			assigned_rescuer_id = CASE WHEN $2 THEN NULL ELSE assigned_rescuer_id END,
			donations_needed = COALESCE($3, donations_needed),
			updated_at = NOW()
		WHERE id = $4;
	`
	cmdTag, err := r.db.Exec(ctx, query, status, clearAssignee, fundingTarget, id)
	if err != nil {
		return fmt.Errorf("failed to update report status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("report %s for status update: %w", id, errs.ErrNotFound)
	}
	return nil
}

// Claim assigns the rescuer and moves the report to Rescue Accepted in one
// conditional update. The WHERE clause is the concurrency guard: only an
// unassigned pending report matches, so one of two racing rescuers gets
// RowsAffected 1 and the other 0.
func (r *ReportRepository) Claim(ctx context.Context, id uuid.UUID, rescuerID string) (bool, error) {
	query := `
		UPDATE rescue_reports SET
			assigned_rescuer_id = $1,
			status = $2,
			updated_at = NOW()
		WHERE id = $3
		  AND assigned_rescuer_id IS NULL
		  AND status = $4;
	`
	cmdTag, err := r.db.Exec(ctx, query, rescuerID, models.StatusAccepted, id, models.StatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to claim report: %w", err)
	}
	return cmdTag.RowsAffected() == 1, nil
}

// Unclaim releases the report back to Pending, guarded on the caller still
// being the assigned rescuer
func (r *ReportRepository) Unclaim(ctx context.Context, id uuid.UUID, rescuerID string) (bool, error) {
	query := `
		UPDATE rescue_reports SET
			assigned_rescuer_id = NULL,
			status = $1,
			updated_at = NOW()
		WHERE id = $2
		  AND assigned_rescuer_id = $3;
	`
	cmdTag, err := r.db.Exec(ctx, query, models.StatusPending, id, rescuerID)
	if err != nil {
		return false, fmt.Errorf("failed to unclaim report: %w", err)
	}
	return cmdTag.RowsAffected() == 1, nil
}

// AddDonation appends a ledger row and bumps the running total in one
// transaction. The report row is locked first so the status check and the
// increment see the same state.
func (r *ReportRepository) AddDonation(ctx context.Context, id uuid.UUID, donorID string, amount float64) (float64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin donation transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var status models.Status
	err = tx.QueryRow(ctx, `SELECT status FROM rescue_reports WHERE id = $1 FOR UPDATE;`, id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("report %s: %w", id, errs.ErrNotFound)
		}
		return 0, fmt.Errorf("failed to lock report for donation: %w", err)
	}
	if status != models.StatusDonationsNeeded {
		return 0, fmt.Errorf("%w: report is %q, donations are only accepted while %q",
			errs.ErrInvalidTransition, status, models.StatusDonationsNeeded)
	}

	_, err = tx.Exec(ctx, `INSERT INTO donations (report_id, donor_id, amount) VALUES ($1, $2, $3);`,
		id, donorID, amount)
	if err != nil {
		return 0, fmt.Errorf("failed to insert donation: %w", err)
	}

	var total float64
	err = tx.QueryRow(ctx, `
		UPDATE rescue_reports SET
			donations_received = donations_received + $1,
			updated_at = NOW()
		WHERE id = $2
		RETURNING donations_received;
	`, amount, id).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to update donation total: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit donation transaction: %w", err)
	}
	return total, nil
}

// CreateStatusUpdate inserts an immutable progress note
func (r *ReportRepository) CreateStatusUpdate(ctx context.Context, update *models.StatusUpdate) error {
	query := `
		INSERT INTO rescue_status_updates (report_id, rescuer_id, message)
		VALUES ($1, $2, $3) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		update.ReportID,
		update.RescuerID,
		update.Message,
	).Scan(&update.ID, &update.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create status update: %w", err)
	}
	return nil
}

// ListStatusUpdates returns the notes for a report, newest first
func (r *ReportRepository) ListStatusUpdates(ctx context.Context, reportID uuid.UUID) ([]*models.StatusUpdate, error) {
	query := `
		SELECT id, report_id, rescuer_id, message, created_at
		FROM rescue_status_updates
		WHERE report_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to list status updates: %w", err)
	}
	defer rows.Close()

	updates := make([]*models.StatusUpdate, 0)
	for rows.Next() {
		update := &models.StatusUpdate{}
		err := rows.Scan(
			&update.ID,
			&update.ReportID,
			&update.RescuerID,
			&update.Message,
			&update.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan status update row: %w", err)
		}
		updates = append(updates, update)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return updates, nil
}

// GetReportFromCache tries to fetch a report from Redis
func (r *ReportRepository) GetReportFromCache(ctx context.Context, id uuid.UUID) (*models.RescueReport, error) {
	key := fmt.Sprintf("report:%s", id.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report from cache: %w", err)
	}

	report := &models.RescueReport{}
	if err := json.Unmarshal(val, report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report from cache: %w", err)
	}
	return report, nil
}

// SetReportCache stores a report in Redis
func (r *ReportRepository) SetReportCache(ctx context.Context, report *models.RescueReport) error {
	key := fmt.Sprintf("report:%s", report.ID.String())
	val, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, reportCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set report in cache: %w", err)
	}
	return nil
}

// InvalidateReportCache removes a report from the Redis cache
func (r *ReportRepository) InvalidateReportCache(ctx context.Context, id uuid.UUID) error {
	key := fmt.Sprintf("report:%s", id.String())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate report cache: %w", err)
	}
	return nil
}
