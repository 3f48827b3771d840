// Package dispatch derives the per-role visible subset of rescue reports.
// Visible is a pure function of its inputs; how often it is recomputed is
// the caller's policy.
package dispatch

import (
	"fmt"

	"github.com/rescue365/rescue_dispatch_system/internal/errs"
	"github.com/rescue365/rescue_dispatch_system/internal/geo"
	"github.com/rescue365/rescue_dispatch_system/internal/models"
)

// Visible filters reports down to what the given viewer should see.
//
//   - rescuer: within the service radius of loc, not complete, and either
//     unassigned or assigned to the viewer. loc is required.
//   - vet: in progress or needing donations, location independent.
//   - donor: needing donations.
//   - anyone else (bystanders submit, they do not browse): nothing.
//
// Input order is preserved.
func Visible(role models.Role, viewerID string, reports []*models.RescueReport, loc *geo.Coordinate) ([]*models.RescueReport, error) {
	visible := make([]*models.RescueReport, 0)

	switch role {
	case models.RoleRescuer:
		if loc == nil {
			return nil, fmt.Errorf("%w: rescuer view requires a location", errs.ErrValidation)
		}
		for _, r := range reports {
			if r.Status == models.StatusComplete {
				continue
			}
			if r.AssignedRescuerID != nil && *r.AssignedRescuerID != viewerID {
				continue
			}
			reportLoc := geo.Coordinate{Latitude: r.Latitude, Longitude: r.Longitude}
			if !geo.WithinServiceRadius(*loc, reportLoc) {
				continue
			}
			visible = append(visible, r)
		}

	case models.RoleVet:
		for _, r := range reports {
			if r.Status == models.StatusInProgress || r.Status == models.StatusDonationsNeeded {
				visible = append(visible, r)
			}
		}

	case models.RoleDonor:
		for _, r := range reports {
			if r.Status == models.StatusDonationsNeeded {
				visible = append(visible, r)
			}
		}
	}

	return visible, nil
}
