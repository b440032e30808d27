package services

import (
	"sort"

	"miyalefilms/internal/domain/models"
)

// Classified is the presentation grouping of an event's media: videos and
// images in display order plus the chosen cover. The groups are disjoint and
// together cover the input.
type Classified struct {
	Videos []models.MediaItem
	Images []models.MediaItem
	Cover  models.Cover
}

func (c Classified) Empty() bool {
	return len(c.Videos) == 0 && len(c.Images) == 0
}

// Classify partitions an event's media list into ordered video and image
// groups and picks the representative cover. Pure function of its input; the
// input slice is left untouched.
//
// Ordering is a stable sort on Order ascending, ties keeping their original
// relative position. Cover priority: first sorted image with the cover flag,
// else the first sorted image, else none. A video is never the cover.
func Classify(items []models.MediaItem) Classified {
	ordered := make([]models.MediaItem, len(items))
	copy(ordered, items)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Order < ordered[j].Order
	})

	var out Classified
	for _, m := range ordered {
		switch {
		case m.IsVideo():
			out.Videos = append(out.Videos, m)
		case m.IsImage():
			out.Images = append(out.Images, m)
		}
	}

	out.Cover = chooseCover(out.Images)

	return out
}

func chooseCover(images []models.MediaItem) models.Cover {
	for _, m := range images {
		if m.IsCover {
			return models.CoverOf(m)
		}
	}
	if len(images) > 0 {
		return models.CoverOf(images[0])
	}
	return models.NoCover()
}

// HasPlayOverlay reports whether an event card should show the play
// affordance: the summary cover is a video, or the event has any video at
// all per the API's has_video flag.
func HasPlayOverlay(e models.EventSummary) bool {
	return e.Cover.IsVideo() || e.HasVideo
}
