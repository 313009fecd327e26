package database

import (
	"database/sql"
	"fmt"
	"slices"
	"strings"
	"time"

	"riskdesk/internal/sentinel"
)

// Placeholders renders "$1, $2, ..., $n".
func Placeholders(n int) string {
	ps := make([]string, n)
	for i := range ps {
		ps[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(ps, ", ")
}

// UpdateByID renders an UPDATE of the changed columns plus updated_at, keyed by
// id. Columns are emitted in sorted order so statements are stable. Keys that
// are not in allowed, or that are listed in immutable, are rejected.
func UpdateByID(table string, allowed, immutable []string, changes map[string]any, updatedAt time.Time, id any) (string, []any, error) {
	keys := make([]string, 0, len(changes))
	for k := range changes {
		if !slices.Contains(allowed, k) || slices.Contains(immutable, k) {
			return "", nil, fmt.Errorf("unknown %s column %q", table, k)
		}
		keys = append(keys, k)
	}
	slices.Sort(keys)

	sets := make([]string, 0, len(keys)+1)
	args := make([]any, 0, len(keys)+2)
	for i, k := range keys {
		sets = append(sets, fmt.Sprintf("%s = $%d", k, i+1))
		args = append(args, changes[k])
	}
	sets = append(sets, fmt.Sprintf("updated_at = $%d", len(keys)+1))
	args = append(args, updatedAt, id)
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id = $%d`, table, strings.Join(sets, ", "), len(keys)+2)
	return query, args, nil
}

// RequireAffected maps "zero rows touched" to sentinel.ErrNotFound.
func RequireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}
