package models

// Role a signed-in user is currently acting as. Roles are self-selected on
// the client; the vet role is additionally verified server-side.
type Role string

const (
	RoleBystander Role = "bystander"
	RoleRescuer   Role = "rescuer"
	RoleVet       Role = "vet"
	RoleDonor     Role = "donor"
)

// Actor is the authenticated identity attached to every core operation.
// There is no ambient session state: handlers build an Actor from the
// identity headers and pass it down explicitly.
type Actor struct {
	ID    string
	Email string
	Role  Role
}
