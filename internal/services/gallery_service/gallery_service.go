package services

import (
	"miyalefilms/internal/domain/models"

	media "miyalefilms/internal/services/media_service"
)

// Presenter holds the gallery view state for one event page render: the
// classified media plus the lightbox, which is either closed or showing a
// single image. A presenter is built per request, so navigating to another
// event implicitly resets the lightbox to closed.
type Presenter struct {
	classified media.Classified
	lightbox   *models.MediaItem
}

func NewPresenter(items []models.MediaItem) *Presenter {
	return &Presenter{classified: media.Classify(items)}
}

// Open shows the lightbox for the image with the given id. Videos play
// inline and never open the lightbox; unknown ids are ignored. Reports
// whether the lightbox is now showing the requested item.
func (p *Presenter) Open(id int) bool {
	for i := range p.classified.Images {
		if p.classified.Images[i].ID == id {
			item := p.classified.Images[i]
			p.lightbox = &item
			return true
		}
	}
	return false
}

// Close dismisses the lightbox. Safe to call when already closed.
func (p *Presenter) Close() {
	p.lightbox = nil
}

// Lightbox returns the item being shown, if any.
func (p *Presenter) Lightbox() (models.MediaItem, bool) {
	if p.lightbox == nil {
		return models.MediaItem{}, false
	}
	return *p.lightbox, true
}

func (p *Presenter) Videos() []models.MediaItem {
	return p.classified.Videos
}

func (p *Presenter) Images() []models.MediaItem {
	return p.classified.Images
}

func (p *Presenter) Cover() models.Cover {
	return p.classified.Cover
}

// Empty reports whether there is nothing to render at all, in which case the
// page skips the gallery section entirely.
func (p *Presenter) Empty() bool {
	return p.classified.Empty()
}
