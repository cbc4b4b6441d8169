package app

import (
	"context"
	"strings"
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/groups"
	"github.com/MGTheTrain/scrimhub/internal/domain/payments"
	"github.com/MGTheTrain/scrimhub/internal/pkg/logger"

	"github.com/google/uuid"
)

// groupService implements the GroupService interface
type groupService struct {
	groups     groups.GroupRepository
	members    groups.MemberRepository
	transactor payments.Transactor
	logger     logger.Logger
}

// NewGroupService creates a new instance of GroupService
func NewGroupService(
	groupRepo groups.GroupRepository,
	memberRepo groups.MemberRepository,
	transactor payments.Transactor,
	logger logger.Logger,
) (groups.GroupService, error) {
	return &groupService{
		groups:     groupRepo,
		members:    memberRepo,
		transactor: transactor,
		logger:     logger,
	}, nil
}

func (s *groupService) Create(ctx context.Context, ownerID string, input groups.GroupInput) (*groups.Group, error) {
	now := time.Now().UTC()
	group := &groups.Group{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		CreatedAt:   now,
	}

	err := retryOnSlugConflict(groups.ErrSlugTaken, func() error {
		return s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
			slug, err := uniqueSlug(ctx, group.Name, "group", s.groups.SlugsWithBase)
			if err != nil {
				return err
			}
			group.Slug = slug
			if err := s.groups.Create(ctx, group); err != nil {
				return err
			}
			return s.members.Create(ctx, &groups.GroupMember{
				ID:       uuid.NewString(),
				GroupID:  group.ID,
				UserID:   ownerID,
				Role:     groups.RoleOrganizer,
				JoinedAt: now,
			})
		})
	})
	if err != nil {
		return nil, err
	}
	return group, nil
}

func (s *groupService) List(ctx context.Context) ([]*groups.Group, error) {
	return s.groups.List(ctx)
}

func (s *groupService) GetByID(ctx context.Context, groupID string) (*groups.Group, error) {
	return s.groups.GetByID(ctx, groupID)
}

func (s *groupService) managed(ctx context.Context, actorID string, isStaff bool, groupID string) (*groups.Group, error) {
	group, err := s.groups.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !isStaff && group.OwnerID != actorID {
		return nil, groups.ErrForbidden
	}
	return group, nil
}

func (s *groupService) Update(ctx context.Context, actorID string, isStaff bool, groupID string, input groups.GroupInput) (*groups.Group, error) {
	group, err := s.managed(ctx, actorID, isStaff, groupID)
	if err != nil {
		return nil, err
	}
	if name := strings.TrimSpace(input.Name); name != "" {
		group.Name = name
	}
	group.Description = input.Description
	if err := s.groups.Update(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *groupService) Delete(ctx context.Context, actorID string, isStaff bool, groupID string) error {
	if _, err := s.managed(ctx, actorID, isStaff, groupID); err != nil {
		return err
	}
	return s.groups.DeleteByID(ctx, groupID)
}

func (s *groupService) Join(ctx context.Context, userID, groupID string) (*groups.GroupMember, error) {
	if _, err := s.groups.GetByID(ctx, groupID); err != nil {
		return nil, err
	}
	existing, err := s.members.Get(ctx, groupID, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	member := &groups.GroupMember{
		ID:       uuid.NewString(),
		GroupID:  groupID,
		UserID:   userID,
		Role:     groups.RoleMember,
		JoinedAt: time.Now().UTC(),
	}
	if err := s.members.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *groupService) Leave(ctx context.Context, userID, groupID string) error {
	group, err := s.groups.GetByID(ctx, groupID)
	if err != nil {
		return err
	}
	if group.OwnerID == userID {
		return groups.ErrOwnerCannotLeave
	}
	member, err := s.members.Get(ctx, groupID, userID)
	if err != nil {
		return err
	}
	if member == nil {
		return groups.ErrNotMember
	}
	return s.members.Delete(ctx, groupID, userID)
}

func (s *groupService) Members(ctx context.Context, groupID string) ([]*groups.GroupMember, error) {
	if _, err := s.groups.GetByID(ctx, groupID); err != nil {
		return nil, err
	}
	return s.members.ListByGroup(ctx, groupID)
}
