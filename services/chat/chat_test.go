package chat

import (
	"testing"
	"time"

	"roadbuddy/models"

	"github.com/stretchr/testify/assert"
)

func TestSortChatViewsMostRecentFirst(t *testing.T) {
	base := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	views := []models.RideChatView{
		{ID: "oldest", SortTimestamp: base},
		{ID: "newest", SortTimestamp: base.Add(2 * time.Hour)},
		{ID: "middle", SortTimestamp: base.Add(time.Hour)},
	}

	sortChatViews(views)

	assert.Equal(t, "newest", views[0].ID)
	assert.Equal(t, "middle", views[1].ID)
	assert.Equal(t, "oldest", views[2].ID)
}

func TestSortChatViewsIsStableForEqualTimestamps(t *testing.T) {
	moment := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	views := []models.RideChatView{
		{ID: "first", SortTimestamp: moment},
		{ID: "second", SortTimestamp: moment},
	}

	sortChatViews(views)

	assert.Equal(t, "first", views[0].ID)
	assert.Equal(t, "second", views[1].ID)
}

func TestIsParticipant(t *testing.T) {
	participants := []string{"owner", "p1", "p2"}

	assert.True(t, isParticipant(participants, "owner"))
	assert.True(t, isParticipant(participants, "p2"))
	assert.False(t, isParticipant(participants, "stranger"))
	assert.False(t, isParticipant(nil, "owner"))
}
