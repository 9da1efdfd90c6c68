package memstore

import (
	"context"

	"github.com/zenhr/zenhr-backend-go/internal/domain/announcement"
	"github.com/zenhr/zenhr-backend-go/internal/state"
)

type AnnouncementRepository struct {
	store *state.Store
}

func NewAnnouncementRepository(store *state.Store) *AnnouncementRepository {
	return &AnnouncementRepository{store: store}
}

func (r *AnnouncementRepository) Create(ctx context.Context, a announcement.Announcement) (announcement.Announcement, error) {
	r.store.Write(func(doc *state.Document) {
		doc.Announcements = append([]announcement.Announcement{a}, doc.Announcements...)
	})
	return a, nil
}

func (r *AnnouncementRepository) List(ctx context.Context) ([]announcement.Announcement, error) {
	var out []announcement.Announcement
	r.store.Read(func(doc *state.Document) {
		out = append(out, doc.Announcements...)
	})
	return out, nil
}

func (r *AnnouncementRepository) Delete(ctx context.Context, id string) error {
	err := announcement.ErrAnnouncementNotFound
	r.store.Write(func(doc *state.Document) {
		next := doc.Announcements[:0]
		for _, a := range doc.Announcements {
			if a.ID == id {
				err = nil
				continue
			}
			next = append(next, a)
		}
		doc.Announcements = next
	})
	return err
}
