package dispatch

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rescue365/rescue_dispatch_system/internal/errs"
	"github.com/rescue365/rescue_dispatch_system/internal/geo"
	"github.com/rescue365/rescue_dispatch_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func report(status models.Status, lat, lng float64, assigned *string) *models.RescueReport {
	return &models.RescueReport{
		ID:                uuid.New(),
		AnimalType:        models.AnimalDog,
		Severity:          models.SeverityCritical,
		Status:            status,
		Latitude:          lat,
		Longitude:         lng,
		ReporterID:        "reporter-1",
		AssignedRescuerID: assigned,
	}
}

func TestVisible_RescuerSeesNearbyUnassigned(t *testing.T) {
	// Critical dog downtown Boston; rescuer in Cambridge (~5 km away).
	boston := report(models.StatusPending, 42.3601, -71.0589, nil)
	rescuerLoc := &geo.Coordinate{Latitude: 42.3736, Longitude: -71.1097}

	visible, err := Visible(models.RoleRescuer, "rescuer-1", []*models.RescueReport{boston}, rescuerLoc)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, boston.ID, visible[0].ID)
}

func TestVisible_RescuerDoesNotSeeDistantReports(t *testing.T) {
	boston := report(models.StatusPending, 42.3601, -71.0589, nil)
	nycLoc := &geo.Coordinate{Latitude: 40.7128, Longitude: -74.0060}

	visible, err := Visible(models.RoleRescuer, "rescuer-1", []*models.RescueReport{boston}, nycLoc)
	require.NoError(t, err)
	assert.Empty(t, visible)
}

func TestVisible_RescuerHidesOtherRescuersCases(t *testing.T) {
	loc := &geo.Coordinate{Latitude: 42.3601, Longitude: -71.0589}
	mine := report(models.StatusAccepted, 42.3601, -71.0589, strPtr("rescuer-1"))
	theirs := report(models.StatusAccepted, 42.3601, -71.0589, strPtr("rescuer-2"))
	open := report(models.StatusPending, 42.3601, -71.0589, nil)
	done := report(models.StatusComplete, 42.3601, -71.0589, nil)

	visible, err := Visible(models.RoleRescuer, "rescuer-1",
		[]*models.RescueReport{mine, theirs, open, done}, loc)
	require.NoError(t, err)
	require.Len(t, visible, 2)
	assert.Equal(t, mine.ID, visible[0].ID)
	assert.Equal(t, open.ID, visible[1].ID)
}

func TestVisible_RescuerRequiresLocation(t *testing.T) {
	_, err := Visible(models.RoleRescuer, "rescuer-1", nil, nil)
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestVisible_VetSeesInProgressAndFunding(t *testing.T) {
	inProgress := report(models.StatusInProgress, 42.36, -71.05, strPtr("rescuer-1"))
	funding := report(models.StatusDonationsNeeded, 40.71, -74.00, nil)
	pending := report(models.StatusPending, 42.36, -71.05, nil)

	visible, err := Visible(models.RoleVet, "vet-1",
		[]*models.RescueReport{inProgress, funding, pending}, nil)
	require.NoError(t, err)
	require.Len(t, visible, 2)
	assert.Equal(t, inProgress.ID, visible[0].ID)
	assert.Equal(t, funding.ID, visible[1].ID)
}

func TestVisible_DonorSeesOnlyFundingCases(t *testing.T) {
	funding := report(models.StatusDonationsNeeded, 42.36, -71.05, nil)
	inProgress := report(models.StatusInProgress, 42.36, -71.05, strPtr("rescuer-1"))

	visible, err := Visible(models.RoleDonor, "donor-1",
		[]*models.RescueReport{funding, inProgress}, nil)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, funding.ID, visible[0].ID)
}

func TestVisible_BystanderSeesNothing(t *testing.T) {
	open := report(models.StatusPending, 42.36, -71.05, nil)
	visible, err := Visible(models.RoleBystander, "user-1", []*models.RescueReport{open}, nil)
	require.NoError(t, err)
	assert.Empty(t, visible)
}
