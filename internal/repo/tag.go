package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// TagRepo defines read access to the tag labels used across a user's trips.
// Tags are free-text labels stored on each trip; this repo exists to power
// tag suggestions in the trip form, so it only ever reads.
type TagRepo interface {
	// List returns the distinct tags across all of the user's trips,
	// sorted alphabetically.
	List(ctx context.Context, userID string) ([]string, error)
}

// pgTagRepo is the Postgres implementation of TagRepo.
type pgTagRepo struct {
	db db
}

// NewTagRepo constructs a TagRepo backed by the provided db connection.
func NewTagRepo(db db) TagRepo {
	return &pgTagRepo{db: db}
}

// List unnests the tags arrays of the user's trips and deduplicates.
func (r *pgTagRepo) List(ctx context.Context, userID string) ([]string, error) {
	const q = `
		SELECT DISTINCT unnest(tags) AS tag
		FROM trips
		WHERE user_id = @user_id
		ORDER BY tag`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("repo.TagRepo.List: %w", err)
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("repo.TagRepo.List: scan: %w", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TagRepo.List: rows: %w", err)
	}

	return tags, nil
}
