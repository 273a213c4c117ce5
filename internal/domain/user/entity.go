package user

import (
	"strings"

	"github.com/google/uuid"
)

// Actor is the authenticated user performing an operation. Identity comes
// from the external auth collaborator; this package only interprets it.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func NewActor(id uuid.UUID, role Role) (Actor, error) {
	if !role.IsValid() {
		return Actor{}, ErrInvalidRole
	}
	return Actor{ID: id, Role: role}, nil
}

func (a Actor) IsBrand() bool {
	return a.Role == RoleBrand
}

// Profile is the contact view of a user used for notifications and email.
type Profile struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	DJName    string
	email     Email
}

func NewProfile(id uuid.UUID, firstName, lastName, djName, email string) *Profile {
	p := &Profile{
		ID:        id,
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		DJName:    strings.TrimSpace(djName),
	}
	// An unusable address is treated as absent so no email is attempted.
	if e, err := NewEmail(email); err == nil {
		p.email = e
	}
	return p
}

func (p *Profile) Email() Email { return p.email }

func (p *Profile) HasEmail() bool { return !p.email.IsZero() }

// DisplayName prefers the stage name, then the full name.
func (p *Profile) DisplayName() string {
	if p.DJName != "" {
		return p.DJName
	}
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}
