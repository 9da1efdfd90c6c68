package announcement

import "context"

// Repository defines data access for announcements.
type Repository interface {
	Create(ctx context.Context, a Announcement) (Announcement, error)
	List(ctx context.Context) ([]Announcement, error)
	Delete(ctx context.Context, id string) error
}
