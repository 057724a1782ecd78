package user

import "github.com/google/uuid"

// Principal is the authenticated caller as asserted by the identity provider.
// Profiles and credentials are owned by that provider, not by this service.
type Principal struct {
	id   uuid.UUID
	role Role
}

func NewPrincipal(id uuid.UUID, role Role) (Principal, error) {
	if id == uuid.Nil {
		return Principal{}, ErrMissingPrincipal
	}
	if !role.IsValid() {
		return Principal{}, ErrInvalidRole
	}
	return Principal{id: id, role: role}, nil
}

func (p Principal) ID() uuid.UUID { return p.id }
func (p Principal) Role() Role    { return p.role }

// Owners and admins may hold a payout account.
func (p Principal) CanOwnProperties() bool {
	return p.role == RoleOwner || p.role == RoleAdmin
}
