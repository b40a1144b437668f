// Package fixtures provides reusable announcement test data for store, use-case
// and handler tests.
package fixtures

import (
	"context"
	"fmt"
	"time"

	"noticeboard/internal/domain/entity"
	"noticeboard/internal/repository"
)

// BaseTime is the creation timestamp of the first generated announcement.
var BaseTime = time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)

// AnnouncementOption customizes a generated announcement.
type AnnouncementOption func(*entity.Announcement)

// WithID sets the announcement ID.
func WithID(id int64) AnnouncementOption {
	return func(a *entity.Announcement) { a.ID = id }
}

// WithOwner sets the owner account ID.
func WithOwner(ownerID int64) AnnouncementOption {
	return func(a *entity.Announcement) { a.OwnerID = ownerID }
}

// WithTitle sets the title. Callers are responsible for keeping it 6-100 characters.
func WithTitle(title string) AnnouncementOption {
	return func(a *entity.Announcement) { a.Title = title }
}

// WithContents sets the body text.
func WithContents(contents string) AnnouncementOption {
	return func(a *entity.Announcement) { a.Contents = contents }
}

// NewAnnouncement returns a valid announcement numbered n.
//
// Example:
//
//	a := fixtures.NewAnnouncement(3, fixtures.WithTitle("Parking lot closed"))
//	// a.ID == 3, a.Title == "Parking lot closed"
func NewAnnouncement(n int, opts ...AnnouncementOption) *entity.Announcement {
	a := &entity.Announcement{
		ID:        int64(n),
		OwnerID:   1,
		Title:     Title(n),
		Contents:  fmt.Sprintf("Details for notice number %d.", n),
		CreatedAt: BaseTime.Add(time.Duration(n) * time.Minute),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Title returns the generated title for announcement n.
func Title(n int) string {
	return fmt.Sprintf("Notice #%03d", n)
}

// Announcements returns n announcements with IDs 1..n, oldest first.
func Announcements(n int) []*entity.Announcement {
	out := make([]*entity.Announcement, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, NewAnnouncement(i))
	}
	return out
}

// SeedRepo creates n announcements through repo and returns them as stored.
// Titles follow Title(i) for i in 1..n unless titleFor is non-nil.
func SeedRepo(ctx context.Context, repo repository.AnnouncementRepository, n int, titleFor func(i int) string) ([]*entity.Announcement, error) {
	out := make([]*entity.Announcement, 0, n)
	for i := 1; i <= n; i++ {
		title := Title(i)
		if titleFor != nil {
			title = titleFor(i)
		}
		a := &entity.Announcement{OwnerID: 1, Title: title, Contents: fmt.Sprintf("body %d", i)}
		if err := repo.Create(ctx, a); err != nil {
			return nil, fmt.Errorf("seed announcement %d: %w", i, err)
		}
		out = append(out, a)
	}
	return out, nil
}

// Newest returns ranks start..end (1-based, ID descending) of all, mirroring
// what a store's FetchRange should return.
func Newest(all []*entity.Announcement, start, end int64) []*entity.Announcement {
	out := []*entity.Announcement{}
	for rank := start; rank <= end; rank++ {
		idx := int64(len(all)) - rank
		if idx < 0 || rank < 1 {
			continue
		}
		out = append(out, all[idx])
	}
	return out
}
