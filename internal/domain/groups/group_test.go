//go:build unit
// +build unit

package groups

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGroup_Validate(t *testing.T) {
	base := Group{ID: uuid.NewString(), OwnerID: uuid.NewString(), Name: "Night Owls", Slug: "night-owls"}
	assert.NoError(t, base.Validate())

	badSlug := base
	badSlug.Slug = "Night Owls"
	assert.Error(t, badSlug.Validate())

	noName := base
	noName.Name = ""
	assert.Error(t, noName.Validate())
}

func TestGroupMember_Validate(t *testing.T) {
	m := GroupMember{ID: uuid.NewString(), GroupID: uuid.NewString(), UserID: uuid.NewString(), Role: RoleMember}
	assert.NoError(t, m.Validate())

	m.Role = "admin"
	assert.Error(t, m.Validate())
}
