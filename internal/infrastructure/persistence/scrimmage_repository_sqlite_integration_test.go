//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/calendar"
	"github.com/MGTheTrain/scrimhub/internal/domain/events"
	"github.com/MGTheTrain/scrimhub/internal/domain/scrimmages"
	"github.com/MGTheTrain/scrimhub/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCatalog(t *testing.T, tc *TestContext) (*scrimmages.Category, *scrimmages.Type) {
	t.Helper()
	ctx := context.Background()

	category := &scrimmages.Category{ID: uuid.NewString(), Name: "Football", Slug: "football", CreatedAt: time.Now()}
	require.NoError(t, tc.CategoryRepo.Create(ctx, category))

	typ := &scrimmages.Type{
		ID:         uuid.NewString(),
		CategoryID: category.ID,
		Name:       "Futsal",
		Slug:       "futsal",
		CustomFieldSchema: scrimmages.Schema{
			"skill_level": {Type: scrimmages.FieldTypeString, Choices: []interface{}{"beginner", "advanced"}},
		},
		CreatedAt: time.Now(),
	}
	require.NoError(t, tc.TypeRepo.Create(ctx, typ))
	return category, typ
}

func TestScrimmageSqliteRepository_ListHonorsVisibility(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()
	category, typ := seedCatalog(t, tc)

	creator := uuid.NewString()
	public := CreateTestScrimmage(t, creator, typ.ID, category.ID)
	private := CreateTestScrimmage(t, creator, typ.ID, category.ID)
	private.Visibility = scrimmages.VisibilityPrivate
	require.NoError(t, tc.ScrimmageRepo.Create(ctx, public))
	require.NoError(t, tc.ScrimmageRepo.Create(ctx, private))

	anonymous, err := tc.ScrimmageRepo.List(ctx, &scrimmages.ScrimmageQuery{})
	require.NoError(t, err)
	require.Len(t, anonymous, 1)
	assert.Equal(t, public.ID, anonymous[0].ID)

	owner, err := tc.ScrimmageRepo.List(ctx, &scrimmages.ScrimmageQuery{ViewerID: creator})
	require.NoError(t, err)
	assert.Len(t, owner, 2)

	staff, err := tc.ScrimmageRepo.List(ctx, &scrimmages.ScrimmageQuery{IsStaff: true, CategoryID: category.ID})
	require.NoError(t, err)
	assert.Len(t, staff, 2)
}

func TestScrimmageSqliteRepository_TypeKeepsSchemaAndCustomFields(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()
	category, typ := seedCatalog(t, tc)

	fetchedType, err := tc.TypeRepo.GetByID(ctx, typ.ID)
	require.NoError(t, err)
	assert.Equal(t, scrimmages.FieldTypeString, fetchedType.CustomFieldSchema["skill_level"].Type)

	scrim := CreateTestScrimmage(t, uuid.NewString(), typ.ID, category.ID)
	scrim.CustomFields = map[string]interface{}{"skill_level": "advanced"}
	require.NoError(t, tc.ScrimmageRepo.Create(ctx, scrim))

	fetched, err := tc.ScrimmageRepo.GetByID(ctx, scrim.ID)
	require.NoError(t, err)
	assert.Equal(t, "advanced", fetched.CustomFields["skill_level"])

	slugs, err := tc.ScrimmageRepo.SlugsWithBase(ctx, scrim.Slug)
	require.NoError(t, err)
	assert.Equal(t, []string{scrim.Slug}, slugs)

	duplicate := CreateTestScrimmage(t, uuid.NewString(), typ.ID, category.ID)
	duplicate.Slug = scrim.Slug
	assert.ErrorIs(t, tc.ScrimmageRepo.Create(ctx, duplicate), scrimmages.ErrSlugTaken)
}

func TestScrimmageSqliteRepository_ListForUserIncludesRoster(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()
	category, typ := seedCatalog(t, tc)

	player := uuid.NewString()
	joined := CreateTestScrimmage(t, uuid.NewString(), typ.ID, category.ID)
	declined := CreateTestScrimmage(t, uuid.NewString(), typ.ID, category.ID)
	created := CreateTestScrimmage(t, player, typ.ID, category.ID)
	for _, s := range []*scrimmages.Scrimmage{joined, declined, created} {
		require.NoError(t, tc.ScrimmageRepo.Create(ctx, s))
	}
	require.NoError(t, tc.ParticipationRepo.Save(ctx, &scrimmages.Participation{
		ID: uuid.NewString(), ScrimmageID: joined.ID, UserID: player,
		Role: scrimmages.RolePlayer, Status: scrimmages.ParticipationConfirmed, JoinedAt: time.Now(),
	}))
	require.NoError(t, tc.ParticipationRepo.Save(ctx, &scrimmages.Participation{
		ID: uuid.NewString(), ScrimmageID: declined.ID, UserID: player,
		Role: scrimmages.RolePlayer, Status: scrimmages.ParticipationDeclined, JoinedAt: time.Now(),
	}))

	mine, err := tc.ScrimmageRepo.ListForUser(ctx, player, nil)
	require.NoError(t, err)
	ids := []string{}
	for _, s := range mine {
		ids = append(ids, s.ID)
	}
	assert.ElementsMatch(t, []string{joined.ID, created.ID}, ids)

	count, err := tc.ParticipationRepo.CountActive(ctx, joined.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRSVPSqliteRepository_WaitlistOrder(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	event := CreateTestEvent(t, uuid.NewString(), 1)
	require.NoError(t, tc.EventRepo.Create(ctx, event))

	base := time.Now().UTC()
	going := &events.RSVP{ID: uuid.NewString(), EventID: event.ID, UserID: uuid.NewString(), Status: events.RSVPGoing, CreatedAt: base, UpdatedAt: base}
	first := &events.RSVP{ID: uuid.NewString(), EventID: event.ID, UserID: uuid.NewString(), Status: events.RSVPWaitlist, CreatedAt: base, UpdatedAt: base.Add(time.Second)}
	second := &events.RSVP{ID: uuid.NewString(), EventID: event.ID, UserID: uuid.NewString(), Status: events.RSVPWaitlist, CreatedAt: base, UpdatedAt: base.Add(2 * time.Second)}
	for _, r := range []*events.RSVP{going, second, first} {
		require.NoError(t, tc.RSVPRepo.Save(ctx, r))
	}

	next, err := tc.RSVPRepo.FirstWaitlisted(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, next.ID)

	attending, err := tc.RSVPRepo.CountAttending(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), attending)
}

func TestCalendarSqliteRepository_ListOverlapping(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	userID := uuid.NewString()
	day := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	inside := &calendar.Item{ID: uuid.NewString(), UserID: userID, Kind: calendar.KindPersonal, Title: "gym", StartAt: day.Add(9 * time.Hour), EndAt: day.Add(10 * time.Hour), CreatedAt: day}
	outside := &calendar.Item{ID: uuid.NewString(), UserID: userID, Kind: calendar.KindEvent, Title: "match", StartAt: day.Add(48 * time.Hour), EndAt: day.Add(50 * time.Hour), RefType: calendar.RefScrimmage, RefID: "s-1", CreatedAt: day}
	require.NoError(t, tc.CalendarRepo.Create(ctx, inside))
	require.NoError(t, tc.CalendarRepo.Create(ctx, outside))

	items, err := tc.CalendarRepo.ListOverlapping(ctx, userID, day, day.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, inside.ID, items[0].ID)

	require.NoError(t, tc.CalendarRepo.DeleteByRef(ctx, userID, calendar.RefScrimmage, "s-1"))
	all, err := tc.CalendarRepo.ListByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
