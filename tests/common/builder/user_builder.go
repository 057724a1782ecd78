//go:build unit || e2e

package builder

import (
	"staybook/internal/domain/user"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID   uuid.UUID
	Role user.Role
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:   uuid.New(),
		Role: user.RoleGuest,
	}
}

func NewOwnerBuilder() *UserBuilder {
	return NewUserBuilder().With(func(u *UserBuilder) { u.Role = user.RoleOwner })
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (user.Principal, error) {
	return user.NewPrincipal(u.ID, u.Role)
}

func (u *UserBuilder) MustBuild() user.Principal {
	p, err := u.BuildDomain()
	if err != nil {
		panic(err)
	}
	return p
}
