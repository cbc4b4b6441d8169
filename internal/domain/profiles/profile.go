package profiles

import (
	"time"

	"github.com/MGTheTrain/scrimhub/internal/pkg/validators"
)

// Profile visibilities
const (
	VisibilityPublic    = "public"
	VisibilityPrivate   = "private"
	VisibilityFollowers = "followers"
)

// Profile is the public face of an account. It is created lazily on first read
type Profile struct {
	UserID      string   `validate:"required,uuid4"`
	DisplayName string   `validate:"max=80"`
	Bio         string   `validate:"max=1000"`
	AvatarURL   string   `validate:"omitempty,url"`
	Location    string   `validate:"max=120"`
	Visibility  string   `validate:"required,oneof=public private followers"`
	Interests   []string `validate:"max=20,dive,max=40"`
	Reputation  int
	UpdatedAt   time.Time
}

// Validate for validating Profile struct
func (p *Profile) Validate() error {
	return validators.ValidateStruct(p)
}

// NewProfile returns the default public profile for userID
func NewProfile(userID string, now time.Time) *Profile {
	return &Profile{UserID: userID, Visibility: VisibilityPublic, UpdatedAt: now}
}

// VisibleTo reports whether viewerID may see the profile. isFollower is only
// consulted for followers-only profiles
func (p *Profile) VisibleTo(viewerID string, isFollower bool) bool {
	if viewerID == p.UserID {
		return true
	}
	switch p.Visibility {
	case VisibilityPublic:
		return true
	case VisibilityFollowers:
		return isFollower
	default:
		return false
	}
}

// ProfilePatch holds optional profile updates
type ProfilePatch struct {
	DisplayName *string
	Bio         *string
	AvatarURL   *string
	Location    *string
	Visibility  *string
	Interests   []string
}

// Apply copies the set fields onto p
func (patch *ProfilePatch) Apply(p *Profile) {
	if patch.DisplayName != nil {
		p.DisplayName = *patch.DisplayName
	}
	if patch.Bio != nil {
		p.Bio = *patch.Bio
	}
	if patch.AvatarURL != nil {
		p.AvatarURL = *patch.AvatarURL
	}
	if patch.Location != nil {
		p.Location = *patch.Location
	}
	if patch.Visibility != nil {
		p.Visibility = *patch.Visibility
	}
	if patch.Interests != nil {
		p.Interests = patch.Interests
	}
}

// Follow is a directed follower -> followee edge
type Follow struct {
	FollowerID string
	FolloweeID string
	CreatedAt  time.Time
}
