package fixtures_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noticeboard/internal/domain/entity"
	"noticeboard/internal/infra/adapter/persistence/memory"
	"noticeboard/tests/fixtures"
)

func TestNewAnnouncement_IsValid(t *testing.T) {
	a := fixtures.NewAnnouncement(7, fixtures.WithOwner(9))

	assert.Equal(t, int64(7), a.ID)
	assert.Equal(t, int64(9), a.OwnerID)
	_, err := entity.NewDraft(a.Title, a.Contents)
	assert.NoError(t, err)
}

func TestNewest(t *testing.T) {
	all := fixtures.Announcements(5)

	got := fixtures.Newest(all, 2, 3)
	require.Len(t, got, 2)
	assert.Equal(t, int64(4), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)

	assert.Len(t, fixtures.Newest(all, 5, 9), 1)
	assert.Empty(t, fixtures.Newest(all, 6, 9))
}

func TestSeedRepo(t *testing.T) {
	repo := memory.NewAnnouncementRepo()
	seeded, err := fixtures.SeedRepo(context.Background(), repo, 3, nil)
	require.NoError(t, err)
	require.Len(t, seeded, 3)

	n, err := repo.Count(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.Equal(t, fixtures.Title(3), seeded[2].Title)
}
