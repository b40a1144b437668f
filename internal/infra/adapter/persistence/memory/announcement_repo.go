// Package memory provides an in-process implementation of the repository interfaces.
// It backs STORE_BACKEND=memory for local runs and the use-case tests.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"noticeboard/internal/domain/entity"
	"noticeboard/internal/repository"
)

// AnnouncementRepo keeps announcements in ID order behind a RWMutex.
// Returned records are copies; callers cannot mutate stored state.
type AnnouncementRepo struct {
	mu     sync.RWMutex
	rows   []entity.Announcement // ascending by ID
	nextID int64
	now    func() time.Time
}

// Option configures an AnnouncementRepo.
type Option func(*AnnouncementRepo)

// WithClock overrides the timestamp source used by Create.
func WithClock(now func() time.Time) Option {
	return func(r *AnnouncementRepo) { r.now = now }
}

func NewAnnouncementRepo(opts ...Option) *AnnouncementRepo {
	r := &AnnouncementRepo{nextID: 1, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ repository.AnnouncementRepository = (*AnnouncementRepo)(nil)

func (r *AnnouncementRepo) Count(ctx context.Context, keyword string) (int64, error) {
	if err := checkContext(ctx, "Count"); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for i := range r.rows {
		if strings.Contains(r.rows[i].Title, keyword) {
			n++
		}
	}
	return n, nil
}

func (r *AnnouncementRepo) FetchRange(ctx context.Context, start, end int64) ([]*entity.Announcement, error) {
	return r.FetchRangeMatching(ctx, "", start, end)
}

func (r *AnnouncementRepo) FetchRangeMatching(ctx context.Context, keyword string, start, end int64) ([]*entity.Announcement, error) {
	if err := checkContext(ctx, "FetchRangeMatching"); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Announcement, 0)
	var rank int64
	for i := len(r.rows) - 1; i >= 0 && rank < end; i-- {
		if !strings.Contains(r.rows[i].Title, keyword) {
			continue
		}
		rank++
		if rank >= start {
			a := r.rows[i]
			out = append(out, &a)
		}
	}
	return out, nil
}

func (r *AnnouncementRepo) List(ctx context.Context) ([]*entity.Announcement, error) {
	if err := checkContext(ctx, "List"); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Announcement, 0, len(r.rows))
	for i := len(r.rows) - 1; i >= 0; i-- {
		a := r.rows[i]
		out = append(out, &a)
	}
	return out, nil
}

func (r *AnnouncementRepo) Get(ctx context.Context, id int64) (*entity.Announcement, error) {
	if err := checkContext(ctx, "Get"); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.indexOf(id)
	if !ok {
		return nil, fmt.Errorf("Get: id %d: %w", id, entity.ErrNotFound)
	}
	a := r.rows[i]
	return &a, nil
}

func (r *AnnouncementRepo) Create(ctx context.Context, a *entity.Announcement) error {
	if err := checkContext(ctx, "Create"); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	a.ID = r.nextID
	a.CreatedAt = r.now()
	r.nextID++
	r.rows = append(r.rows, *a)
	return nil
}

func (r *AnnouncementRepo) Update(ctx context.Context, a *entity.Announcement) error {
	if err := checkContext(ctx, "Update"); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.indexOf(a.ID)
	if !ok {
		return fmt.Errorf("Update: id %d: %w", a.ID, entity.ErrNotFound)
	}
	r.rows[i].Title = a.Title
	r.rows[i].Contents = a.Contents
	return nil
}

func (r *AnnouncementRepo) Delete(ctx context.Context, id int64) error {
	if err := checkContext(ctx, "Delete"); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.indexOf(id)
	if !ok {
		return fmt.Errorf("Delete: id %d: %w", id, entity.ErrNotFound)
	}
	r.rows = append(r.rows[:i], r.rows[i+1:]...)
	return nil
}

// checkContext reports a cancelled or expired ctx the way the SQL store
// reports a failed connection.
func checkContext(ctx context.Context, op string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w: %w", op, entity.ErrStoreUnavailable, err)
	}
	return nil
}

// indexOf binary-searches the ID-ordered rows. Callers hold the lock.
func (r *AnnouncementRepo) indexOf(id int64) (int, bool) {
	return slices.BinarySearchFunc(r.rows, id, func(a entity.Announcement, id int64) int {
		return cmp.Compare(a.ID, id)
	})
}
