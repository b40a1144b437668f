package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"noticeboard/internal/domain/entity"
	"noticeboard/internal/repository"
	"noticeboard/internal/resilience/circuitbreaker"
)

// DBTX is the subset of *sql.DB used by the repository.
// *circuitbreaker.DBCircuitBreaker satisfies it too.
type DBTX interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type AnnouncementRepo struct {
	db           DBTX
	queryBuilder *AnnouncementQueryBuilder
}

func NewAnnouncementRepo(db DBTX) repository.AnnouncementRepository {
	return &AnnouncementRepo{
		db:           db,
		queryBuilder: NewAnnouncementQueryBuilder(),
	}
}

const selectColumns = `SELECT id, account_id, title, contents, created_at FROM announcements`

func (repo *AnnouncementRepo) Count(ctx context.Context, keyword string) (int64, error) {
	query, args := repo.queryBuilder.BuildCountQuery(keyword)
	var count int64
	if err := queryOne(ctx, repo.db, query, args, &count); err != nil {
		return 0, storeError("Count", err)
	}
	return count, nil
}

func (repo *AnnouncementRepo) FetchRange(ctx context.Context, start, end int64) ([]*entity.Announcement, error) {
	return repo.fetchRange(ctx, "FetchRange", "", start, end)
}

func (repo *AnnouncementRepo) FetchRangeMatching(ctx context.Context, keyword string, start, end int64) ([]*entity.Announcement, error) {
	return repo.fetchRange(ctx, "FetchRangeMatching", keyword, start, end)
}

func (repo *AnnouncementRepo) fetchRange(ctx context.Context, op, keyword string, start, end int64) ([]*entity.Announcement, error) {
	if end < start {
		return []*entity.Announcement{}, nil
	}
	query, args := repo.queryBuilder.BuildRangeQuery(keyword, start, end)
	return repo.queryAnnouncements(ctx, op, query, args, int(min(end-start+1, 100)))
}

func (repo *AnnouncementRepo) List(ctx context.Context) ([]*entity.Announcement, error) {
	return repo.queryAnnouncements(ctx, "List", selectColumns+` ORDER BY id DESC`, nil, 100)
}

func (repo *AnnouncementRepo) Get(ctx context.Context, id int64) (*entity.Announcement, error) {
	const query = selectColumns + ` WHERE id = $1 LIMIT 1`
	var a entity.Announcement
	err := queryOne(ctx, repo.db, query, []any{id},
		&a.ID, &a.OwnerID, &a.Title, &a.Contents, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("Get: id %d: %w", id, entity.ErrNotFound)
	}
	if err != nil {
		return nil, storeError("Get", err)
	}
	return &a, nil
}

func (repo *AnnouncementRepo) Create(ctx context.Context, a *entity.Announcement) error {
	const query = `
INSERT INTO announcements
       (account_id, title, contents)
VALUES ($1, $2, $3)
RETURNING id, created_at`
	err := queryOne(ctx, repo.db, query, []any{a.OwnerID, a.Title, a.Contents},
		&a.ID, &a.CreatedAt)
	if err != nil {
		return storeError("Create", err)
	}
	return nil
}

func (repo *AnnouncementRepo) Update(ctx context.Context, a *entity.Announcement) error {
	const query = `
UPDATE announcements SET
       title    = $1,
       contents = $2
WHERE id = $3`
	res, err := repo.db.ExecContext(ctx, query, a.Title, a.Contents, a.ID)
	if err != nil {
		return storeError("Update", err)
	}
	return requireAffected("Update", a.ID, res)
}

func (repo *AnnouncementRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM announcements WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return storeError("Delete", err)
	}
	return requireAffected("Delete", id, res)
}

func (repo *AnnouncementRepo) queryAnnouncements(ctx context.Context, op, query string, args []any, capacity int) ([]*entity.Announcement, error) {
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeError(op, err)
	}
	defer func() { _ = rows.Close() }()

	announcements := make([]*entity.Announcement, 0, capacity)
	for rows.Next() {
		var a entity.Announcement
		if err := rows.Scan(&a.ID, &a.OwnerID, &a.Title, &a.Contents, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: Scan: %w: %w", op, entity.ErrStoreUnavailable, err)
		}
		announcements = append(announcements, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError(op, err)
	}
	return announcements, nil
}

// queryOne scans the first row of query into dest, returning sql.ErrNoRows when
// there is none. It goes through QueryContext so a wrapping circuit breaker sees the call.
func queryOne(ctx context.Context, db DBTX, query string, args []any, dest ...any) error {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return err
		}
		return sql.ErrNoRows
	}
	if err := rows.Scan(dest...); err != nil {
		return err
	}
	return rows.Err()
}

// storeError wraps a driver error. Data exceptions and constraint violations
// are the caller's fault and match entity.ErrInvalidInput; everything else
// matches entity.ErrStoreUnavailable.
func storeError(op string, err error) error {
	if circuitbreaker.IsClientSQLError(err) {
		return fmt.Errorf("%s: %w: %w", op, entity.ErrInvalidInput, err)
	}
	return fmt.Errorf("%s: %w: %w", op, entity.ErrStoreUnavailable, err)
}

func requireAffected(op string, id int64, res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: RowsAffected: %w: %w", op, entity.ErrStoreUnavailable, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: id %d: %w", op, id, entity.ErrNotFound)
	}
	return nil
}
