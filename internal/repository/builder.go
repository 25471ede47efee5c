package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	appErrors "github.com/Ry3n-Huang/PawPal-Cloud-Computing-Project/pkg/errors"
)

// maxPageSize bounds LIMIT values; larger requests are clamped, never
// rejected, so callers can page defensively.
const maxPageSize = 100

// queryBuilder accumulates SQL text and bound arguments in lockstep: every
// appended predicate pushes its value in the same call, so placeholder
// numbering can never drift from the argument list.
type queryBuilder struct {
	sql  strings.Builder
	args []interface{}
}

func newQueryBuilder(base string, args ...interface{}) *queryBuilder {
	b := &queryBuilder{}
	b.sql.WriteString(base)
	b.args = append(b.args, args...)
	return b
}

// And appends " AND <column> <op> $n" binding value at position n.
func (b *queryBuilder) And(column, op string, value interface{}) {
	b.args = append(b.args, value)
	fmt.Fprintf(&b.sql, " AND %s %s $%d", column, op, len(b.args))
}

// AndLiteral appends a fixed predicate that binds no user input.
func (b *queryBuilder) AndLiteral(predicate string) {
	b.sql.WriteString(" AND ")
	b.sql.WriteString(predicate)
}

// AndPattern appends a case-insensitive substring predicate. The fragment is
// escaped so LIKE metacharacters in user input match literally.
func (b *queryBuilder) AndPattern(column, fragment string) {
	b.args = append(b.args, likePattern(fragment))
	fmt.Fprintf(&b.sql, " AND LOWER(%s) LIKE $%d", column, len(b.args))
}

// AndAnyPattern appends a disjunction of substring predicates over columns.
// The pattern is computed once and every column binds the same placeholder,
// guaranteeing consistent matching across the disjunction.
func (b *queryBuilder) AndAnyPattern(columns []string, fragment string) {
	b.args = append(b.args, likePattern(fragment))
	n := len(b.args)
	parts := make([]string, 0, len(columns))
	for _, column := range columns {
		parts = append(parts, fmt.Sprintf("LOWER(%s) LIKE $%d", column, n))
	}
	fmt.Fprintf(&b.sql, " AND (%s)", strings.Join(parts, " OR "))
}

// OrderBy appends a fixed ordering clause. Never receives user input.
func (b *queryBuilder) OrderBy(clause string) {
	b.sql.WriteString(" ORDER BY ")
	b.sql.WriteString(clause)
}

// Paginate appends placeholder-bound LIMIT/OFFSET clauses. A nil limit means
// unbounded and a nil offset means zero. Limits below 1 and negative offsets
// are rejected; limits above maxPageSize are clamped.
func (b *queryBuilder) Paginate(limit, offset *int) error {
	if limit != nil {
		n := *limit
		if n < 1 {
			return appErrors.Clone(appErrors.ErrInvalidArgument, "limit must be at least 1")
		}
		if n > maxPageSize {
			n = maxPageSize
		}
		b.args = append(b.args, n)
		fmt.Fprintf(&b.sql, " LIMIT $%d", len(b.args))
	}
	if offset != nil {
		if *offset < 0 {
			return appErrors.Clone(appErrors.ErrInvalidArgument, "offset must not be negative")
		}
		b.args = append(b.args, *offset)
		fmt.Fprintf(&b.sql, " OFFSET $%d", len(b.args))
	}
	return nil
}

// Query returns the accumulated SQL text and its ordered arguments.
func (b *queryBuilder) Query() (string, []interface{}) {
	return b.sql.String(), b.args
}

// likePattern lowercases and escapes a user-supplied fragment, then wraps it
// for substring matching. Matching is case-insensitive by construction; the
// repositories lowercase the column side with LOWER().
func likePattern(fragment string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.ToLower(fragment))
	return "%" + escaped + "%"
}

// updateBuilder collects SET assignments restricted to whitelisted columns.
// Repositories call Set only for fields present in the update payload.
type updateBuilder struct {
	sets []string
	args []interface{}
}

func newUpdateBuilder() *updateBuilder {
	return &updateBuilder{}
}

// Set appends "<column> = $n" binding value at position n.
func (b *updateBuilder) Set(column string, value interface{}) {
	b.args = append(b.args, value)
	b.sets = append(b.sets, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

// Build finalises the UPDATE statement with a server-assigned updated_at and
// the primary key bound as the last parameter. Fails when no whitelisted
// column was set so an empty payload is surfaced, not silently ignored.
func (b *updateBuilder) Build(table string, id interface{}) (string, []interface{}, error) {
	if len(b.sets) == 0 {
		return "", nil, appErrors.ErrNoUpdatableFields
	}
	b.args = append(b.args, id)
	query := fmt.Sprintf("UPDATE %s SET %s, updated_at = NOW() WHERE id = $%d",
		table, strings.Join(b.sets, ", "), len(b.args))
	return query, b.args, nil
}

// guardDB rejects use of a repository whose handle was never wired, or was
// wired after shutdown.
func guardDB(db *sqlx.DB) error {
	if db == nil {
		return appErrors.ErrNotInitialized
	}
	return nil
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (duplicate email and friends).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
