package models

import (
	"time"

	"github.com/google/uuid"
)

// Status values a rescue report moves through. The strings are part of the
// wire contract and match what the mobile clients display.
type Status string

const (
	StatusPending         Status = "Pending"
	StatusAccepted        Status = "Rescue Accepted"
	StatusInProgress      Status = "Rescue In Progress"
	StatusDonationsNeeded Status = "Donations Needed"
	StatusComplete        Status = "Rescue Complete"
)

type AnimalCategory string

const (
	AnimalDog      AnimalCategory = "dog"
	AnimalCat      AnimalCategory = "cat"
	AnimalBird     AnimalCategory = "bird"
	AnimalWildlife AnimalCategory = "wildlife"
	AnimalOther    AnimalCategory = "other"
)

// Severity is ordered: Mild < Moderate < Severe < Critical.
type Severity string

const (
	SeverityMild     Severity = "Mild"
	SeverityModerate Severity = "Moderate"
	SeveritySevere   Severity = "Severe"
	SeverityCritical Severity = "Critical"
)

var severityRank = map[Severity]int{
	SeverityMild:     1,
	SeverityModerate: 2,
	SeveritySevere:   3,
	SeverityCritical: 4,
}

// Rank returns the position of s in the severity order, 0 for unknown values.
func (s Severity) Rank() int {
	return severityRank[s]
}

type RescueReport struct {
	ID                uuid.UUID      `json:"id"`
	AnimalType        AnimalCategory `json:"animal_type"`
	Severity          Severity       `json:"severity"`
	Description       string         `json:"description"`
	Latitude          float64        `json:"location_lat"`
	Longitude         float64        `json:"location_lng"`
	Address           string         `json:"address"`
	ImageURL          string         `json:"image_url"`
	Status            Status         `json:"status"`
	ReporterID        string         `json:"reporter_id"`
	AssignedRescuerID *string        `json:"assigned_rescuer_id,omitempty"`
	DonationsNeeded   *float64       `json:"donations_needed,omitempty"`
	DonationsReceived float64        `json:"donations_received"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// StatusUpdate is a free-text note posted by the assigned rescuer.
// Immutable once created.
type StatusUpdate struct {
	ID        uuid.UUID `json:"id"`
	ReportID  uuid.UUID `json:"report_id"`
	RescuerID string    `json:"rescuer_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
