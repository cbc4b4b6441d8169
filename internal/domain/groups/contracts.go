package groups

import "context"

// GroupInput carries the editable fields of a group
type GroupInput struct {
	Name        string
	Description string
}

// GroupService defines group and membership operations.
type GroupService interface {
	// Create makes a group with a unique slug. The owner becomes its organizer.
	Create(ctx context.Context, ownerID string, input GroupInput) (*Group, error)

	List(ctx context.Context) ([]*Group, error)
	GetByID(ctx context.Context, groupID string) (*Group, error)

	// Update and Delete are restricted to the owner and staff.
	Update(ctx context.Context, actorID string, isStaff bool, groupID string, input GroupInput) (*Group, error)
	Delete(ctx context.Context, actorID string, isStaff bool, groupID string) error

	// Join adds the user as a member. Joining twice returns the existing membership.
	Join(ctx context.Context, userID, groupID string) (*GroupMember, error)

	// Leave removes the user. The owner cannot leave.
	Leave(ctx context.Context, userID, groupID string) error

	Members(ctx context.Context, groupID string) ([]*GroupMember, error)
}

// GroupRepository defines the interface for Group-related operations
type GroupRepository interface {
	Create(ctx context.Context, group *Group) error
	GetByID(ctx context.Context, groupID string) (*Group, error)
	// SlugsWithBase lists stored slugs equal to base or of the form base-N.
	SlugsWithBase(ctx context.Context, base string) ([]string, error)
	List(ctx context.Context) ([]*Group, error)
	Update(ctx context.Context, group *Group) error
	DeleteByID(ctx context.Context, groupID string) error
}

// MemberRepository defines the interface for GroupMember-related operations
type MemberRepository interface {
	Create(ctx context.Context, member *GroupMember) error
	Get(ctx context.Context, groupID, userID string) (*GroupMember, error)
	Delete(ctx context.Context, groupID, userID string) error
	ListByGroup(ctx context.Context, groupID string) ([]*GroupMember, error)
}
