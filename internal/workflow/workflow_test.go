package workflow

import (
	"testing"

	"github.com/rescue365/rescue_dispatch_system/internal/errs"
	"github.com/rescue365/rescue_dispatch_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition_RescuerHappyPath(t *testing.T) {
	effect, err := CanTransition(models.RoleRescuer, models.StatusAccepted, models.StatusInProgress)
	require.NoError(t, err)
	assert.False(t, effect.ClearAssignee)

	effect, err = CanTransition(models.RoleRescuer, models.StatusInProgress, models.StatusComplete)
	require.NoError(t, err)
	assert.True(t, effect.ClearAssignee)
}

func TestCanTransition_ClaimEdgeIsClaimOnly(t *testing.T) {
	effect, err := CanTransition(models.RoleRescuer, models.StatusPending, models.StatusAccepted)
	require.NoError(t, err)
	assert.True(t, effect.ClaimOnly)
}

func TestCanTransition_VetFundingDetour(t *testing.T) {
	effect, err := CanTransition(models.RoleVet, models.StatusInProgress, models.StatusDonationsNeeded)
	require.NoError(t, err)
	assert.True(t, effect.RequireFundingTarget)
	assert.True(t, effect.ClearAssignee)

	_, err = CanTransition(models.RoleVet, models.StatusDonationsNeeded, models.StatusComplete)
	assert.NoError(t, err)
}

func TestCanTransition_DonationsNeededUnreachableFromPending(t *testing.T) {
	for _, role := range []models.Role{models.RoleRescuer, models.RoleVet, models.RoleDonor, models.RoleBystander} {
		_, err := CanTransition(role, models.StatusPending, models.StatusDonationsNeeded)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition, "role %s", role)
	}
}

func TestCanTransition_CompleteIsTerminal(t *testing.T) {
	targets := []models.Status{
		models.StatusPending, models.StatusAccepted,
		models.StatusInProgress, models.StatusDonationsNeeded,
	}
	for _, to := range targets {
		_, err := CanTransition(models.RoleVet, models.StatusComplete, to)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition, "to %s", to)
	}
	assert.True(t, IsTerminal(models.StatusComplete))
	assert.False(t, IsTerminal(models.StatusDonationsNeeded))
}

func TestCanTransition_RolesCannotCrossOver(t *testing.T) {
	// A vet may not walk the rescuer edges and vice versa.
	_, err := CanTransition(models.RoleVet, models.StatusAccepted, models.StatusInProgress)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)

	_, err = CanTransition(models.RoleRescuer, models.StatusInProgress, models.StatusDonationsNeeded)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)

	_, err = CanTransition(models.RoleDonor, models.StatusInProgress, models.StatusComplete)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid(models.StatusDonationsNeeded))
	assert.False(t, IsValid(models.Status("Lost")))
}
