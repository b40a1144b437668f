// Package repository declares the storage contracts the use-case layer depends on.
package repository

import (
	"context"

	"noticeboard/internal/domain/entity"
)

// AnnouncementRepository stores announcements and serves them ranked by ID
// descending, rank 1 being the newest. Rank bounds are 1-based and inclusive.
//
// Store failures wrap entity.ErrStoreUnavailable. Get, Update and Delete wrap
// entity.ErrNotFound when no row carries the id.
type AnnouncementRepository interface {
	// Count returns the number of announcements whose title contains keyword.
	// An empty keyword counts every announcement.
	Count(ctx context.Context, keyword string) (int64, error)

	// FetchRange returns the announcements ranked start..end over the whole table.
	// The result is shorter than end-start+1 (possibly empty) near or past the end.
	FetchRange(ctx context.Context, start, end int64) ([]*entity.Announcement, error)

	// FetchRangeMatching ranks only the announcements whose title contains keyword
	// and returns ranks start..end of that filtered sequence. With an empty keyword
	// it behaves like FetchRange.
	FetchRangeMatching(ctx context.Context, keyword string, start, end int64) ([]*entity.Announcement, error)

	// List returns every announcement, newest first.
	List(ctx context.Context) ([]*entity.Announcement, error)

	Get(ctx context.Context, id int64) (*entity.Announcement, error)

	// Create stores a and fills in the ID and CreatedAt assigned by the store.
	Create(ctx context.Context, a *entity.Announcement) error

	// Update overwrites Title and Contents of the announcement with a.ID.
	Update(ctx context.Context, a *entity.Announcement) error

	Delete(ctx context.Context, id int64) error
}
