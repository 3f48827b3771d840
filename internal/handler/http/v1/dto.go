package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateReportRequest DTO for filing a rescue report
// @Description DTO for filing a rescue report
type CreateReportRequest struct {
	AnimalType  string  `json:"animal_type" validate:"required,oneof=dog cat bird wildlife other"`
	Severity    string  `json:"severity" validate:"required,oneof=Mild Moderate Severe Critical"`
	Description string  `json:"description" validate:"required,min=2"`
	Latitude    float64 `json:"location_lat" validate:"required,latitude"`
	Longitude   float64 `json:"location_lng" validate:"required,longitude"`
	Address     string  `json:"address,omitempty"`
	ImageURL    string  `json:"image_url" validate:"required,url"`
}

// UpdateStatusRequest DTO for a workflow transition
// @Description DTO for a workflow transition
type UpdateStatusRequest struct {
	Status          string   `json:"status" validate:"required"`
	DonationsNeeded *float64 `json:"donations_needed,omitempty" validate:"omitempty,gt=0"`
}

// DonationRequest DTO for recording a pledge
// @Description DTO for recording a pledge
type DonationRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// DonationResponse DTO with the updated funding total
// @Description DTO with the updated funding total
type DonationResponse struct {
	DonationsReceived float64 `json:"donations_received"`
}

// StatusUpdateRequest DTO for posting a rescuer progress note
// @Description DTO for posting a rescuer progress note
type StatusUpdateRequest struct {
	Message string `json:"message" validate:"required,min=1,max=2000"`
}

// StatusUpdateResponse DTO for a rescuer progress note
// @Description DTO for a rescuer progress note
type StatusUpdateResponse struct {
	ID        uuid.UUID `json:"id"`
	ReportID  uuid.UUID `json:"report_id"`
	RescuerID string    `json:"rescuer_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ReportResponse DTO with full rescue report details
// @Description DTO with full rescue report details
type ReportResponse struct {
	ID                uuid.UUID `json:"id"`
	AnimalType        string    `json:"animal_type"`
	Severity          string    `json:"severity"`
	Description       string    `json:"description"`
	Latitude          float64   `json:"location_lat"`
	Longitude         float64   `json:"location_lng"`
	Address           string    `json:"address,omitempty"`
	ImageURL          string    `json:"image_url"`
	Status            string    `json:"status"`
	ReporterID        string    `json:"reporter_id"`
	AssignedRescuerID *string   `json:"assigned_rescuer_id,omitempty"`
	DonationsNeeded   *float64  `json:"donations_needed,omitempty"`
	DonationsReceived float64   `json:"donations_received"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// RescuerProfileRequest DTO for creating or replacing a rescuer profile
// @Description DTO for creating or replacing a rescuer profile
type RescuerProfileRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=255"`
	Phone      string `json:"phone" validate:"required,min=5,max=32"`
	Experience string `json:"experience,omitempty"`
}

// RescuerProfileResponse DTO with rescuer profile details
// @Description DTO with rescuer profile details
type RescuerProfileResponse struct {
	UserID     string    `json:"user_id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Experience string    `json:"experience,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// DeviceTokenRequest DTO for registering a push delivery token
// @Description DTO for registering a push delivery token
type DeviceTokenRequest struct {
	PushToken string `json:"push_token" validate:"required"`
}

// CreateOrderRequest DTO for the payment relay order creation
// @Description DTO for the payment relay order creation
type CreateOrderRequest struct {
	Amount string `json:"amount" validate:"required,numeric"`
}

// CreateOrderResponse DTO with the processor approval URL
// @Description DTO with the processor approval URL
type CreateOrderResponse struct {
	ApprovalURL string `json:"approvalUrl"`
}

// CaptureOrderRequest DTO for the payment relay capture call
// @Description DTO for the payment relay capture call
type CaptureOrderRequest struct {
	OrderID string `json:"orderID" validate:"required"`
}

// CaptureOrderResponse DTO with the capture outcome
// @Description DTO with the capture outcome
type CaptureOrderResponse struct {
	Status string `json:"status"`
}
