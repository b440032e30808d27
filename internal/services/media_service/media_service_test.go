package services

import (
	"testing"

	"miyalefilms/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func img(id, order int, cover bool) models.MediaItem {
	return models.MediaItem{ID: id, MediaType: models.MediaTypeImage, Order: order, IsCover: cover}
}

func vid(id, order int) models.MediaItem {
	return models.MediaItem{ID: id, MediaType: models.MediaTypeVideo, Order: order}
}

func TestClassify_PartitionsAreDisjointAndComplete(t *testing.T) {
	items := []models.MediaItem{
		img(1, 3, false),
		vid(2, 1),
		img(3, 2, false),
		vid(4, 2),
		img(5, 1, true),
	}

	got := Classify(items)

	seen := map[int]int{}
	for _, m := range got.Videos {
		assert.True(t, m.IsVideo())
		seen[m.ID]++
	}
	for _, m := range got.Images {
		assert.True(t, m.IsImage())
		seen[m.ID]++
	}

	require.Len(t, seen, len(items))
	for _, m := range items {
		assert.Equal(t, 1, seen[m.ID], "item %d must appear in exactly one group", m.ID)
	}
}

func TestClassify_CoverFlagWinsRegardlessOfOrder(t *testing.T) {
	// Scenario from the ordering contract: the flagged image wins even when
	// an unflagged image has a lower order value.
	items := []models.MediaItem{
		img(1, 2, false),
		vid(2, 1),
		img(3, 1, true),
	}

	got := Classify(items)

	require.Len(t, got.Images, 2)
	assert.Equal(t, 3, got.Images[0].ID)
	assert.Equal(t, 1, got.Images[1].ID)

	require.Len(t, got.Videos, 1)
	assert.Equal(t, 2, got.Videos[0].ID)

	require.True(t, got.Cover.IsImage())
	assert.Equal(t, models.CoverOf(items[2]), got.Cover)
}

func TestClassify_FirstFlaggedImageInSortOrderWins(t *testing.T) {
	items := []models.MediaItem{
		img(1, 5, true),
		img(2, 1, true),
	}

	got := Classify(items)

	require.True(t, got.Cover.IsImage())
	assert.Equal(t, models.CoverOf(items[1]), got.Cover)
}

func TestClassify_FallsBackToFirstImage(t *testing.T) {
	items := []models.MediaItem{
		vid(1, 0),
		img(2, 2, false),
		img(3, 1, false),
	}

	got := Classify(items)

	require.True(t, got.Cover.IsImage())
	assert.Equal(t, models.CoverOf(items[2]), got.Cover)
}

func TestClassify_NoImagesMeansNoCover(t *testing.T) {
	got := Classify([]models.MediaItem{vid(1, 0), vid(2, 1)})

	assert.True(t, got.Cover.None(), "a video must never be chosen as cover")
	assert.Empty(t, got.Images)
}

func TestClassify_StableOnEqualOrder(t *testing.T) {
	items := []models.MediaItem{
		img(1, 1, false),
		img(2, 1, false),
		img(3, 1, false),
	}

	got := Classify(items)

	require.Len(t, got.Images, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{got.Images[0].ID, got.Images[1].ID, got.Images[2].ID})
}

func TestClassify_EmptyInput(t *testing.T) {
	got := Classify(nil)

	assert.True(t, got.Empty())
	assert.True(t, got.Cover.None())
}

func TestClassify_DoesNotMutateInput(t *testing.T) {
	items := []models.MediaItem{img(1, 2, false), img(2, 1, false)}

	Classify(items)

	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, 2, items[1].ID)
}

func TestHasPlayOverlay(t *testing.T) {
	tests := []struct {
		name  string
		event models.EventSummary
		want  bool
	}{
		{
			name:  "video cover",
			event: models.EventSummary{Cover: models.VideoCover("https://cdn/v.mp4", "")},
			want:  true,
		},
		{
			name:  "image cover with has_video flag",
			event: models.EventSummary{Cover: models.ImageCover("https://cdn/i.jpg", ""), HasVideo: true},
			want:  true,
		},
		{
			name:  "image cover only",
			event: models.EventSummary{Cover: models.ImageCover("https://cdn/i.jpg", "")},
			want:  false,
		},
		{
			name:  "no cover no videos",
			event: models.EventSummary{Cover: models.NoCover()},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasPlayOverlay(tt.event))
		})
	}
}
