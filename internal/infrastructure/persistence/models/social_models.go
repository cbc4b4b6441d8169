package models

import (
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/groups"
	"github.com/MGTheTrain/scrimhub/internal/domain/profiles"
)

// ProfileModel is the GORM database model for public profiles
type ProfileModel struct {
	UserID      string   `gorm:"primaryKey;type:uuid"`
	DisplayName string   `gorm:"type:varchar(80)"`
	Bio         string   `gorm:"type:text"`
	AvatarURL   string   `gorm:"type:varchar(500)"`
	Location    string   `gorm:"type:varchar(120)"`
	Visibility  string   `gorm:"not null;type:varchar(10)"`
	Interests   []string `gorm:"serializer:json"`
	Reputation  int      `gorm:"not null;default:0"`
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (ProfileModel) TableName() string {
	return "profiles"
}

// ToDomain converts GORM model to domain entity
func (m *ProfileModel) ToDomain() *profiles.Profile {
	return &profiles.Profile{
		UserID:      m.UserID,
		DisplayName: m.DisplayName,
		Bio:         m.Bio,
		AvatarURL:   m.AvatarURL,
		Location:    m.Location,
		Visibility:  m.Visibility,
		Interests:   m.Interests,
		Reputation:  m.Reputation,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ProfileModel) FromDomain(p *profiles.Profile) {
	m.UserID = p.UserID
	m.DisplayName = p.DisplayName
	m.Bio = p.Bio
	m.AvatarURL = p.AvatarURL
	m.Location = p.Location
	m.Visibility = p.Visibility
	m.Interests = p.Interests
	m.Reputation = p.Reputation
	m.UpdatedAt = p.UpdatedAt
}

// FollowModel is the GORM database model for follow edges
type FollowModel struct {
	FollowerID string    `gorm:"primaryKey;type:uuid"`
	FolloweeID string    `gorm:"primaryKey;type:uuid;index"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (FollowModel) TableName() string {
	return "follows"
}

// GroupModel is the GORM database model for groups
type GroupModel struct {
	ID          string    `gorm:"primaryKey;type:uuid"`
	OwnerID     string    `gorm:"not null;index;type:uuid"`
	Name        string    `gorm:"not null;type:varchar(120)"`
	Slug        string    `gorm:"not null;uniqueIndex;type:varchar(140)"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (GroupModel) TableName() string {
	return "community_groups"
}

// ToDomain converts GORM model to domain entity
func (m *GroupModel) ToDomain() *groups.Group {
	return &groups.Group{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Name:        m.Name,
		Slug:        m.Slug,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *GroupModel) FromDomain(g *groups.Group) {
	m.ID = g.ID
	m.OwnerID = g.OwnerID
	m.Name = g.Name
	m.Slug = g.Slug
	m.Description = g.Description
	m.CreatedAt = g.CreatedAt
}

// GroupMemberModel is the GORM database model for group memberships
type GroupMemberModel struct {
	ID       string    `gorm:"primaryKey;type:uuid"`
	GroupID  string    `gorm:"not null;uniqueIndex:idx_group_member;type:uuid"`
	UserID   string    `gorm:"not null;uniqueIndex:idx_group_member;type:uuid"`
	Role     string    `gorm:"not null;type:varchar(10)"`
	JoinedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (GroupMemberModel) TableName() string {
	return "group_members"
}

// ToDomain converts GORM model to domain entity
func (m *GroupMemberModel) ToDomain() *groups.GroupMember {
	return &groups.GroupMember{
		ID:       m.ID,
		GroupID:  m.GroupID,
		UserID:   m.UserID,
		Role:     m.Role,
		JoinedAt: m.JoinedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *GroupMemberModel) FromDomain(member *groups.GroupMember) {
	m.ID = member.ID
	m.GroupID = member.GroupID
	m.UserID = member.UserID
	m.Role = member.Role
	m.JoinedAt = member.JoinedAt
}
