package announcement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"noticeboard/internal/common/pagination"
	"noticeboard/internal/domain/entity"
	"noticeboard/internal/observability/metrics"
	"noticeboard/internal/observability/tracing"
	"noticeboard/internal/repository"
)

// Service provides announcement use cases.
// The store is injected through Repo; Service holds no other state.
type Service struct {
	Repo       repository.AnnouncementRepository
	Pagination pagination.Config
	Logger     *slog.Logger
}

// Page is one computed page of announcements, newest first.
type Page struct {
	Criteria pagination.Criteria
	Result   pagination.PageResult
	Items    []*entity.Announcement
}

// CreateInput represents the input parameters for posting a new announcement.
type CreateInput struct {
	OwnerID  int64
	Title    string
	Contents string
}

// UpdateInput represents the input parameters for editing an announcement.
type UpdateInput struct {
	ID       int64
	Title    string
	Contents string
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

func (s *Service) navWindow() int {
	if s.Pagination.NavWindowSize > 0 {
		return s.Pagination.NavWindowSize
	}
	return pagination.DefaultNavWindowSize
}

// Page counts the announcements matching c.Keyword, computes the page window
// and fetches its ranks. When nothing matches the fetch is skipped and Items is empty.
func (s *Service) Page(ctx context.Context, c pagination.Criteria) (*Page, error) {
	ctx, span := tracing.StartSpan(ctx, "announcement.Page",
		attribute.String("keyword", c.Keyword),
		attribute.Int("page", c.PageNumber),
		attribute.Int("size", c.PageSize),
	)
	defer span.End()

	result, err := s.compute(ctx, c)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, fmt.Errorf("page announcements: %w", err)
	}

	page := &Page{Criteria: c, Result: result, Items: []*entity.Announcement{}}
	if result.Empty() {
		return page, nil
	}

	start := time.Now()
	items, err := s.Repo.FetchRangeMatching(ctx, c.Keyword, result.RangeStart, result.RangeEnd)
	metrics.RecordStoreOperation("fetch_range", time.Since(start), err)
	pagination.RecordDuration("fetch", time.Since(start).Seconds())
	if err != nil {
		pagination.RecordError("database")
		tracing.RecordError(span, err)
		return nil, fmt.Errorf("page announcements: %w", err)
	}
	page.Items = items

	span.SetAttributes(
		attribute.Int("current_page", result.CurrentPage),
		attribute.Int("returned", len(items)),
	)
	return page, nil
}

// PageNavigation returns only the rendered nav tokens for c, e.g. ["<", "11", "12", ">"].
func (s *Service) PageNavigation(ctx context.Context, c pagination.Criteria) ([]string, error) {
	ctx, span := tracing.StartSpan(ctx, "announcement.PageNavigation")
	defer span.End()

	result, err := s.compute(ctx, c)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, fmt.Errorf("page navigation: %w", err)
	}
	return pagination.RenderTokens(result.NavTokens), nil
}

// compute validates c, counts matching records and runs the engine.
func (s *Service) compute(ctx context.Context, c pagination.Criteria) (pagination.PageResult, error) {
	if err := c.Validate(s.Pagination.MaxPageSize); err != nil {
		pagination.RecordError("validation")
		return pagination.PageResult{}, fmt.Errorf("%w: %w", entity.ErrInvalidInput, err)
	}

	start := time.Now()
	total, err := s.Repo.Count(ctx, c.Keyword)
	metrics.RecordStoreOperation("count", time.Since(start), err)
	pagination.RecordDuration("count", time.Since(start).Seconds())
	if err != nil {
		pagination.RecordError("database")
		return pagination.PageResult{}, err
	}
	pagination.UpdateTotalCount(total)

	result, err := pagination.Compute(c, total, s.navWindow())
	if err != nil {
		return pagination.PageResult{}, fmt.Errorf("%w: %w", entity.ErrInvalidInput, err)
	}
	pagination.RecordClamp(c.PageNumber, result)
	return result, nil
}

// List retrieves every announcement, newest first.
func (s *Service) List(ctx context.Context) ([]*entity.Announcement, error) {
	start := time.Now()
	items, err := s.Repo.List(ctx)
	metrics.RecordStoreOperation("list", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	return items, nil
}

// Get retrieves a single announcement by its ID.
// Returns an *entity.ValidationError if the ID is not positive and an error
// matching entity.ErrNotFound if it does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Announcement, error) {
	if err := entity.ValidateID(id); err != nil {
		return nil, fmt.Errorf("get announcement: %w", err)
	}

	start := time.Now()
	a, err := s.Repo.Get(ctx, id)
	metrics.RecordStoreOperation("get", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("get announcement: %w", err)
	}
	return a, nil
}

// Create validates the input and stores a new announcement.
// The returned announcement carries the ID and CreatedAt assigned by the store.
func (s *Service) Create(ctx context.Context, in CreateInput) (a *entity.Announcement, err error) {
	defer func() { metrics.RecordMutation("create", err) }()

	if in.OwnerID <= 0 {
		return nil, ErrInvalidOwnerID
	}
	draft, err := entity.NewDraft(in.Title, in.Contents)
	if err != nil {
		return nil, fmt.Errorf("create announcement: %w", err)
	}

	a = &entity.Announcement{OwnerID: in.OwnerID}
	a.Apply(draft)

	start := time.Now()
	err = s.Repo.Create(ctx, a)
	metrics.RecordStoreOperation("create", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("create announcement: %w", err)
	}

	s.logger().Info("announcement created",
		slog.Int64("id", a.ID),
		slog.Int64("owner_id", a.OwnerID))
	return a, nil
}

// Update replaces the title and contents of an existing announcement.
// Concurrent updates to one ID are last-writer-wins.
func (s *Service) Update(ctx context.Context, in UpdateInput) (err error) {
	defer func() { metrics.RecordMutation("update", err) }()

	if err := entity.ValidateID(in.ID); err != nil {
		return fmt.Errorf("update announcement: %w", err)
	}
	draft, err := entity.NewDraft(in.Title, in.Contents)
	if err != nil {
		return fmt.Errorf("update announcement: %w", err)
	}

	a := &entity.Announcement{ID: in.ID}
	a.Apply(draft)

	start := time.Now()
	err = s.Repo.Update(ctx, a)
	metrics.RecordStoreOperation("update", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("update announcement: %w", err)
	}

	s.logger().Info("announcement updated", slog.Int64("id", in.ID))
	return nil
}

// Delete removes an announcement. Deleting a missing ID is an error.
func (s *Service) Delete(ctx context.Context, id int64) (err error) {
	defer func() { metrics.RecordMutation("delete", err) }()

	if err := entity.ValidateID(id); err != nil {
		return fmt.Errorf("delete announcement: %w", err)
	}

	start := time.Now()
	err = s.Repo.Delete(ctx, id)
	metrics.RecordStoreOperation("delete", time.Since(start), err)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			s.logger().Warn("delete of missing announcement", slog.Int64("id", id))
		}
		return fmt.Errorf("delete announcement: %w", err)
	}

	s.logger().Info("announcement deleted", slog.Int64("id", id))
	return nil
}
