package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/accounts"
	"github.com/MGTheTrain/scrimhub/internal/domain/notifications"
	"github.com/MGTheTrain/scrimhub/internal/domain/profiles"
	"github.com/MGTheTrain/scrimhub/internal/pkg/logger"
)

// profileService implements the ProfileService interface
type profileService struct {
	profiles profiles.ProfileRepository
	follows  profiles.FollowRepository
	users    accounts.UserRepository
	notifier notifications.Notifier
	logger   logger.Logger
}

// NewProfileService creates a new instance of ProfileService
func NewProfileService(
	profileRepo profiles.ProfileRepository,
	followRepo profiles.FollowRepository,
	userRepo accounts.UserRepository,
	notifier notifications.Notifier,
	logger logger.Logger,
) (profiles.ProfileService, error) {
	return &profileService{
		profiles: profileRepo,
		follows:  followRepo,
		users:    userRepo,
		notifier: notifier,
		logger:   logger,
	}, nil
}

// getOrCreate returns the stored profile, creating the default one on first access
func (s *profileService) getOrCreate(ctx context.Context, userID string) (*profiles.Profile, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		return profile, nil
	}

	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, accounts.ErrUserNotFound) {
		return nil, profiles.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	profile = profiles.NewProfile(userID, time.Now().UTC())
	profile.DisplayName = user.FullName
	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return profile, nil
}

func (s *profileService) GetProfile(ctx context.Context, viewerID, userID string) (*profiles.Profile, error) {
	profile, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.checkVisible(ctx, profile, viewerID); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *profileService) checkVisible(ctx context.Context, profile *profiles.Profile, viewerID string) error {
	isFollower := false
	if profile.Visibility == profiles.VisibilityFollowers && viewerID != "" && viewerID != profile.UserID {
		var err error
		if isFollower, err = s.follows.Exists(ctx, viewerID, profile.UserID); err != nil {
			return err
		}
	}
	if !profile.VisibleTo(viewerID, isFollower) {
		return profiles.ErrProfileHidden
	}
	return nil
}

func (s *profileService) UpdateProfile(ctx context.Context, userID string, patch *profiles.ProfilePatch) (*profiles.Profile, error) {
	profile, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	patch.Apply(profile)
	profile.UpdatedAt = time.Now().UTC()
	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *profileService) ToggleFollow(ctx context.Context, followerID, userID string) (bool, error) {
	if followerID == userID {
		return false, profiles.ErrSelfFollow
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, accounts.ErrUserNotFound) {
			return false, profiles.ErrUserNotFound
		}
		return false, err
	}

	following, err := s.follows.Exists(ctx, followerID, userID)
	if err != nil {
		return false, err
	}
	if following {
		if err := s.follows.Delete(ctx, followerID, userID); err != nil {
			return false, err
		}
		return false, nil
	}

	follow := &profiles.Follow{FollowerID: followerID, FolloweeID: userID, CreatedAt: time.Now().UTC()}
	if err := s.follows.Create(ctx, follow); err != nil {
		return false, err
	}

	name := "Someone"
	if follower, err := s.getOrCreate(ctx, followerID); err == nil && follower.DisplayName != "" {
		name = follower.DisplayName
	}
	if _, err := s.notifier.Notify(ctx, userID, notifications.KindSystem, "New follower",
		fmt.Sprintf("%s started following you.", name), "/profiles/"+followerID); err != nil {
		s.logger.Warn("Failed to notify follow: ", err)
	}
	return true, nil
}

func (s *profileService) Followers(ctx context.Context, viewerID, userID string) ([]string, error) {
	if _, err := s.GetProfile(ctx, viewerID, userID); err != nil {
		return nil, err
	}
	return s.follows.Followers(ctx, userID)
}

func (s *profileService) Following(ctx context.Context, viewerID, userID string) ([]string, error) {
	if _, err := s.GetProfile(ctx, viewerID, userID); err != nil {
		return nil, err
	}
	return s.follows.Following(ctx, userID)
}
