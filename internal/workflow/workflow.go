// Package workflow is the status state machine for rescue reports.
//
// Pending -> Rescue Accepted -> Rescue In Progress -> Rescue Complete,
// with a vet-only detour Rescue In Progress -> Donations Needed ->
// Rescue Complete. Pending is initial, Rescue Complete is terminal.
package workflow

import (
	"fmt"

	"github.com/rescue365/rescue_dispatch_system/internal/errs"
	"github.com/rescue365/rescue_dispatch_system/internal/models"
)

// Effect describes what a legal transition does besides changing the status.
type Effect struct {
	// ClaimOnly transitions are driven by the claim coordinator together
	// with the assignment; they are rejected on the plain status path.
	ClaimOnly bool

	// ClearAssignee releases the rescuer when the report leaves their hands.
	ClearAssignee bool

	// RequireFundingTarget transitions must carry a positive funding target.
	RequireFundingTarget bool
}

type rule struct {
	role models.Role
	from models.Status
	to   models.Status
}

var transitions = map[rule]Effect{
	{models.RoleRescuer, models.StatusPending, models.StatusAccepted}:       {ClaimOnly: true},
	{models.RoleRescuer, models.StatusAccepted, models.StatusInProgress}:    {},
	{models.RoleRescuer, models.StatusInProgress, models.StatusComplete}:    {ClearAssignee: true},
	{models.RoleVet, models.StatusInProgress, models.StatusComplete}:        {ClearAssignee: true},
	{models.RoleVet, models.StatusDonationsNeeded, models.StatusComplete}:   {},
	{models.RoleVet, models.StatusInProgress, models.StatusDonationsNeeded}: {ClearAssignee: true, RequireFundingTarget: true},
}

// CanTransition returns the effect of moving a report from one status to
// another as the given role, or ErrInvalidTransition when the move is not in
// the table.
func CanTransition(role models.Role, from, to models.Status) (Effect, error) {
	effect, ok := transitions[rule{role, from, to}]
	if !ok {
		return Effect{}, fmt.Errorf("%w: %s may not move %q to %q", errs.ErrInvalidTransition, role, from, to)
	}
	return effect, nil
}

// IsTerminal reports whether no further transitions exist from s.
func IsTerminal(s models.Status) bool {
	return s == models.StatusComplete
}

// IsValid reports whether s is a known status value.
func IsValid(s models.Status) bool {
	switch s {
	case models.StatusPending, models.StatusAccepted, models.StatusInProgress,
		models.StatusDonationsNeeded, models.StatusComplete:
		return true
	}
	return false
}
