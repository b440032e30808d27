package models

import "encoding/json"

type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// MediaItem is one photo or video belonging to an event. Instances are owned
// by the content API and treated as read-only for the duration of a render.
type MediaItem struct {
	ID        int       `json:"id"`
	MediaType MediaType `json:"media_type"`
	FileURL   string    `json:"file_url"`
	Caption   string    `json:"caption"`
	Order     int       `json:"order"`
	IsCover   bool      `json:"is_cover"`
}

func (m MediaItem) IsImage() bool {
	return m.MediaType == MediaTypeImage
}

func (m MediaItem) IsVideo() bool {
	return m.MediaType == MediaTypeVideo
}

// Cover is the single media item representing an event in list and summary
// views. It is a three-way variant: no cover, image cover or video cover.
// The content API serialises the absent case as JSON null.
type Cover struct {
	MediaType MediaType `json:"media_type"`
	FileURL   string    `json:"file_url"`
	Caption   string    `json:"caption"`

	present bool
}

func NoCover() Cover {
	return Cover{}
}

func ImageCover(fileURL, caption string) Cover {
	return Cover{MediaType: MediaTypeImage, FileURL: fileURL, Caption: caption, present: true}
}

func VideoCover(fileURL, caption string) Cover {
	return Cover{MediaType: MediaTypeVideo, FileURL: fileURL, Caption: caption, present: true}
}

// CoverOf lifts a media item into a cover value.
func CoverOf(m MediaItem) Cover {
	return Cover{MediaType: m.MediaType, FileURL: m.FileURL, Caption: m.Caption, present: true}
}

func (c Cover) None() bool {
	return !c.present
}

func (c Cover) IsImage() bool {
	return c.present && c.MediaType == MediaTypeImage
}

func (c Cover) IsVideo() bool {
	return c.present && c.MediaType == MediaTypeVideo
}

func (c *Cover) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*c = NoCover()
		return nil
	}

	type plain Cover
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}

	*c = Cover(p)
	c.present = true
	return nil
}

func (c Cover) MarshalJSON() ([]byte, error) {
	if !c.present {
		return []byte("null"), nil
	}

	type plain Cover
	return json.Marshal(plain(c))
}
