package profiles

import "context"

// ProfileService defines profile and follow operations.
type ProfileService interface {
	// GetProfile returns uid's profile as seen by viewerID, honoring visibility.
	GetProfile(ctx context.Context, viewerID, userID string) (*Profile, error)

	// UpdateProfile applies a patch to the caller's own profile.
	UpdateProfile(ctx context.Context, userID string, patch *ProfilePatch) (*Profile, error)

	// ToggleFollow follows or unfollows userID and returns whether the caller now follows.
	ToggleFollow(ctx context.Context, followerID, userID string) (bool, error)

	// Followers and Following list userID's follow graph if viewerID may see the profile.
	Followers(ctx context.Context, viewerID, userID string) ([]string, error)
	Following(ctx context.Context, viewerID, userID string) ([]string, error)
}

// ProfileRepository defines the interface for Profile-related operations
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*Profile, error)
	Save(ctx context.Context, profile *Profile) error
}

// FollowRepository stores follower edges
type FollowRepository interface {
	Exists(ctx context.Context, followerID, followeeID string) (bool, error)
	Create(ctx context.Context, follow *Follow) error
	Delete(ctx context.Context, followerID, followeeID string) error
	Followers(ctx context.Context, userID string) ([]string, error)
	Following(ctx context.Context, userID string) ([]string, error)
}
