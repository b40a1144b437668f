// Package postgres provides PostgreSQL implementations of repository interfaces.
package postgres

import (
	"fmt"
	"strings"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE wildcards so keyword matches literally.
// The escape character is a backslash, matching the ESCAPE clause the builder emits.
func EscapeLike(keyword string) string {
	return likeEscaper.Replace(keyword)
}

// AnnouncementQueryBuilder builds the keyword filter shared by COUNT and ranked SELECT queries,
// so that a page count and the rows it points at are always computed over the same set.
type AnnouncementQueryBuilder struct{}

// NewAnnouncementQueryBuilder creates a new query builder instance.
func NewAnnouncementQueryBuilder() *AnnouncementQueryBuilder {
	return &AnnouncementQueryBuilder{}
}

// BuildWhereClause returns a WHERE clause restricting titles to those containing keyword,
// using $firstParam as the placeholder. An empty keyword yields no clause and no args.
func (qb *AnnouncementQueryBuilder) BuildWhereClause(keyword string, firstParam int) (clause string, args []any) {
	if keyword == "" {
		return "", nil
	}
	clause = fmt.Sprintf(`WHERE title LIKE $%d ESCAPE '\'`, firstParam)
	return clause, []any{"%" + EscapeLike(keyword) + "%"}
}

// BuildCountQuery returns the COUNT query for keyword.
func (qb *AnnouncementQueryBuilder) BuildCountQuery(keyword string) (query string, args []any) {
	where, args := qb.BuildWhereClause(keyword, 1)
	if where == "" {
		return "SELECT COUNT(*) FROM announcements", nil
	}
	return "SELECT COUNT(*) FROM announcements " + where, args
}

// BuildRangeQuery returns a query selecting ranks start..end (ID descending) among the
// announcements matching keyword.
func (qb *AnnouncementQueryBuilder) BuildRangeQuery(keyword string, start, end int64) (query string, args []any) {
	where, args := qb.BuildWhereClause(keyword, 1)
	paramIndex := len(args) + 1
	args = append(args, start, end)

	query = fmt.Sprintf(`
SELECT id, account_id, title, contents, created_at
FROM (
	SELECT id, account_id, title, contents, created_at,
	       row_number() OVER (ORDER BY id DESC) AS rn
	FROM announcements
	%s
) ranked
WHERE rn BETWEEN $%d AND $%d
ORDER BY rn`, where, paramIndex, paramIndex+1)
	return query, args
}
