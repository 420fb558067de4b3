package store

import "fmt"

// Many drains rows through scan and closes them. It works for any backend
// whose Query returns Rows, so postgres and clickhouse repos share it
func Many[T any](rows Rows, scan func(Row) (T, error)) ([]T, error) {
	defer rows.Close()

	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan row %d: %w", len(out), err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
