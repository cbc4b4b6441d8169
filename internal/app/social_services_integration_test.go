//go:build integration
// +build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/calendar"
	"github.com/MGTheTrain/scrimhub/internal/domain/chat"
	"github.com/MGTheTrain/scrimhub/internal/domain/groups"
	"github.com/MGTheTrain/scrimhub/internal/domain/notifications"
	"github.com/MGTheTrain/scrimhub/internal/domain/profiles"
	"github.com/MGTheTrain/scrimhub/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupService_Lifecycle(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	owner := services.CreateUser(t, "g-owner@example.com")
	member := services.CreateUser(t, "g-member@example.com")

	group, err := services.Groups.Create(ctx, owner.ID, groups.GroupInput{Name: "Early Birds", Description: "6am runs"})
	require.NoError(t, err)
	assert.Equal(t, "early-birds", group.Slug)

	joined, err := services.Groups.Join(ctx, member.ID, group.ID)
	require.NoError(t, err)
	again, err := services.Groups.Join(ctx, member.ID, group.ID)
	require.NoError(t, err)
	assert.Equal(t, joined.ID, again.ID)

	members, err := services.Groups.Members(ctx, group.ID)
	require.NoError(t, err)
	roles := map[string]string{}
	for _, m := range members {
		roles[m.UserID] = m.Role
	}
	assert.Equal(t, groups.RoleOrganizer, roles[owner.ID])
	assert.Equal(t, groups.RoleMember, roles[member.ID])

	_, err = services.Groups.Update(ctx, member.ID, false, group.ID, groups.GroupInput{Name: "Hijacked"})
	assert.ErrorIs(t, err, groups.ErrForbidden)

	updated, err := services.Groups.Update(ctx, owner.ID, false, group.ID, groups.GroupInput{Description: "5am runs"})
	require.NoError(t, err)
	assert.Equal(t, "Early Birds", updated.Name)
	assert.Equal(t, "5am runs", updated.Description)

	assert.ErrorIs(t, services.Groups.Leave(ctx, owner.ID, group.ID), groups.ErrOwnerCannotLeave)
	require.NoError(t, services.Groups.Leave(ctx, member.ID, group.ID))
	assert.ErrorIs(t, services.Groups.Leave(ctx, member.ID, group.ID), groups.ErrNotMember)

	require.NoError(t, services.Groups.Delete(ctx, owner.ID, false, group.ID))
	_, err = services.Groups.GetByID(ctx, group.ID)
	assert.ErrorIs(t, err, groups.ErrGroupNotFound)
}

func TestProfileService_VisibilityAndFollows(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	alice := services.CreateUser(t, "alice@example.com")
	bob := services.CreateUser(t, "bob@example.com")

	profile, err := services.Profiles.GetProfile(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.FullName, profile.DisplayName)

	followersOnly := profiles.VisibilityFollowers
	bio := "Point guard"
	updated, err := services.Profiles.UpdateProfile(ctx, alice.ID, &profiles.ProfilePatch{Visibility: &followersOnly, Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, "Point guard", updated.Bio)

	_, err = services.Profiles.GetProfile(ctx, bob.ID, alice.ID)
	assert.ErrorIs(t, err, profiles.ErrProfileHidden)
	_, err = services.Profiles.GetProfile(ctx, alice.ID, alice.ID)
	assert.NoError(t, err)

	_, err = services.Profiles.ToggleFollow(ctx, bob.ID, bob.ID)
	assert.ErrorIs(t, err, profiles.ErrSelfFollow)
	_, err = services.Profiles.ToggleFollow(ctx, bob.ID, "00000000-0000-4000-8000-000000000000")
	assert.ErrorIs(t, err, profiles.ErrUserNotFound)

	following, err := services.Profiles.ToggleFollow(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, following)

	_, err = services.Profiles.GetProfile(ctx, bob.ID, alice.ID)
	assert.NoError(t, err)

	followers, err := services.Profiles.Followers(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{bob.ID}, followers)

	notes, err := services.Notifications.List(ctx, alice.ID, true)
	require.NoError(t, err)
	require.NotEmpty(t, notes)
	assert.Equal(t, "New follower", notes[0].Title)

	following, err = services.Profiles.ToggleFollow(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, following)

	followed, err := services.Profiles.Following(ctx, bob.ID, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, followed)
}

func TestProfileService_FollowGraphHonorsVisibility(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	alice := services.CreateUser(t, "alice@example.com")
	bob := services.CreateUser(t, "bob@example.com")
	carol := services.CreateUser(t, "carol@example.com")

	_, err := services.Profiles.ToggleFollow(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	_, err = services.Profiles.ToggleFollow(ctx, alice.ID, carol.ID)
	require.NoError(t, err)

	followersOnly := profiles.VisibilityFollowers
	_, err = services.Profiles.UpdateProfile(ctx, alice.ID, &profiles.ProfilePatch{Visibility: &followersOnly})
	require.NoError(t, err)

	_, err = services.Profiles.Followers(ctx, carol.ID, alice.ID)
	assert.ErrorIs(t, err, profiles.ErrProfileHidden)
	_, err = services.Profiles.Following(ctx, carol.ID, alice.ID)
	assert.ErrorIs(t, err, profiles.ErrProfileHidden)
	_, err = services.Profiles.Following(ctx, "", alice.ID)
	assert.ErrorIs(t, err, profiles.ErrProfileHidden)

	followers, err := services.Profiles.Followers(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{bob.ID}, followers)

	private := profiles.VisibilityPrivate
	_, err = services.Profiles.UpdateProfile(ctx, alice.ID, &profiles.ProfilePatch{Visibility: &private})
	require.NoError(t, err)

	_, err = services.Profiles.Followers(ctx, bob.ID, alice.ID)
	assert.ErrorIs(t, err, profiles.ErrProfileHidden)

	following, err := services.Profiles.Following(ctx, alice.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{carol.ID}, following)

	_, err = services.Profiles.Followers(ctx, bob.ID, "00000000-0000-4000-8000-000000000000")
	assert.ErrorIs(t, err, profiles.ErrUserNotFound)
}

func TestChatService_ThreadsAndMessages(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	alice := services.CreateUser(t, "chat-alice@example.com")
	bob := services.CreateUser(t, "chat-bob@example.com")
	carol := services.CreateUser(t, "chat-carol@example.com")

	thread, err := services.Chat.CreateThread(ctx, alice.ID, "Warmups", []string{bob.ID, alice.ID})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{alice.ID, bob.ID}, thread.ParticipantIDs)

	_, err = services.Chat.GetThread(ctx, carol.ID, thread.ID)
	assert.ErrorIs(t, err, chat.ErrNotParticipant)
	_, err = services.Chat.PostMessage(ctx, carol.ID, thread.ID, "let me in")
	assert.ErrorIs(t, err, chat.ErrNotParticipant)

	msg, err := services.Chat.PostMessage(ctx, alice.ID, thread.ID, "  see you at 7  ")
	require.NoError(t, err)
	assert.Equal(t, "see you at 7", msg.Body)

	unread, err := services.Chat.UnreadCount(ctx, bob.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, unread)

	summaries, err := services.Chat.ListThreads(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	require.NotNil(t, summaries[0].LastMessage)
	assert.Equal(t, msg.ID, summaries[0].LastMessage.ID)
	assert.EqualValues(t, 1, summaries[0].UnreadCount)

	require.NoError(t, services.Chat.MarkRead(ctx, bob.ID, msg.ID))
	unread, err = services.Chat.UnreadCount(ctx, bob.ID)
	require.NoError(t, err)
	assert.Zero(t, unread)

	notes, err := services.Notifications.List(ctx, bob.ID, false)
	require.NoError(t, err)
	require.NotEmpty(t, notes)
	assert.Equal(t, notifications.KindMessage, notes[0].Kind)

	thread, err = services.Chat.AddParticipant(ctx, bob.ID, thread.ID, carol.ID)
	require.NoError(t, err)
	assert.Contains(t, thread.ParticipantIDs, carol.ID)

	messages, err := services.Chat.ListMessages(ctx, carol.ID, thread.ID)
	require.NoError(t, err)
	assert.Len(t, messages, 1)

	thread, err = services.Chat.RemoveParticipant(ctx, alice.ID, thread.ID, carol.ID)
	require.NoError(t, err)
	assert.NotContains(t, thread.ParticipantIDs, carol.ID)
	_, err = services.Chat.RemoveParticipant(ctx, alice.ID, thread.ID, carol.ID)
	assert.ErrorIs(t, err, chat.ErrNotParticipant)
}

func TestNotificationService_ReadAndDelete(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	user := services.CreateUser(t, "notes@example.com")
	other := services.CreateUser(t, "notes-other@example.com")

	first, err := services.Notifications.Notify(ctx, user.ID, notifications.KindSystem, "Welcome", "Hello", "/")
	require.NoError(t, err)
	_, err = services.Notifications.Notify(ctx, user.ID, notifications.KindSystem, "Tip", "Set up MFA", "/settings")
	require.NoError(t, err)

	count, err := services.Notifications.UnreadCount(ctx, user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	assert.ErrorIs(t, services.Notifications.MarkRead(ctx, other.ID, first.ID), notifications.ErrForbidden)
	require.NoError(t, services.Notifications.MarkRead(ctx, user.ID, first.ID))

	unread, err := services.Notifications.List(ctx, user.ID, true)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, "Tip", unread[0].Title)

	changed, err := services.Notifications.MarkAllRead(ctx, user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, changed)

	assert.ErrorIs(t, services.Notifications.Delete(ctx, other.ID, first.ID), notifications.ErrForbidden)
	require.NoError(t, services.Notifications.Delete(ctx, user.ID, first.ID))

	all, err := services.Notifications.List(ctx, user.ID, false)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCalendarService_PersonalItemsAndFeed(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	user := services.CreateUser(t, "cal@example.com")
	other := services.CreateUser(t, "cal-other@example.com")

	start := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Hour)
	item, err := services.Calendar.CreatePersonal(ctx, user.ID, "Physio", start, start.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, calendar.KindPersonal, item.Kind)

	_, err = services.Calendar.CreatePersonal(ctx, user.ID, "Backwards", start, start.Add(-time.Hour))
	assert.Error(t, err)

	feed, err := services.Calendar.Feed(ctx, user.ID, start.Add(-time.Hour), start.Add(2*time.Hour))
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "Physio", feed[0].Title)

	feed, err = services.Calendar.Feed(ctx, user.ID, start.Add(3*time.Hour), start.Add(4*time.Hour))
	require.NoError(t, err)
	assert.Empty(t, feed)

	_, err = services.Calendar.Feed(ctx, user.ID, start, start)
	assert.ErrorIs(t, err, calendar.ErrInvalidWindow)

	assert.ErrorIs(t, services.Calendar.Delete(ctx, other.ID, item.ID), calendar.ErrForbidden)
	require.NoError(t, services.Calendar.Delete(ctx, user.ID, item.ID))

	items, err := services.Calendar.List(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}
