package groups

import (
	"time"

	"github.com/MGTheTrain/scrimhub/internal/pkg/validators"
)

// Member roles
const (
	RoleOrganizer = "organizer"
	RoleMember    = "member"
	RoleGuest     = "guest"
)

// Group is a team or community
type Group struct {
	ID          string `validate:"required,uuid4"`
	OwnerID     string `validate:"required,uuid4"`
	Name        string `validate:"required,max=120"`
	Slug        string `validate:"required,slug,max=140"`
	Description string `validate:"max=2000"`
	CreatedAt   time.Time
}

// Validate for validating Group struct
func (g *Group) Validate() error {
	return validators.ValidateStruct(g)
}

// GroupMember links a user to a group. One row per (user, group)
type GroupMember struct {
	ID       string `validate:"required,uuid4"`
	GroupID  string `validate:"required,uuid4"`
	UserID   string `validate:"required,uuid4"`
	Role     string `validate:"required,oneof=organizer member guest"`
	JoinedAt time.Time
}

// Validate for validating GroupMember struct
func (m *GroupMember) Validate() error {
	return validators.ValidateStruct(m)
}
