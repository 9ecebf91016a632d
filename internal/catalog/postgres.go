// internal/catalog/postgres.go
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"regexp"

	"everaftr-workers/internal/common/errors"
	"everaftr-workers/internal/models"
)

var identifierPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*(\.[a-zA-Z_][a-zA-Z0-9_]*)?$`)

// PostgresSource reads vendors from a table. tags is a JSON array column.
type PostgresSource struct {
	db    *sql.DB
	query string
}

func NewPostgresSource(db *sql.DB, table string) (*PostgresSource, error) {
	if !identifierPattern.MatchString(table) {
		return nil, fmt.Errorf("invalid vendor table name %q", table)
	}
	return &PostgresSource{
		db: db,
		query: fmt.Sprintf(`SELECT id, name, category, location, budget_tier, rating, review_count,
       image_url, is_verified, tags, virtual_tour_url
FROM %s
ORDER BY position, id`, table),
	}, nil
}

func (s *PostgresSource) Name() string { return "postgres" }

func (s *PostgresSource) Vendors(ctx context.Context) ([]models.Vendor, error) {
	rows, err := s.db.QueryContext(ctx, s.query)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.NewCatalogUnavailableError(s.Name(), ctx.Err())
		}
		return nil, errors.NewCatalogUnavailableError(s.Name(), err)
	}
	defer rows.Close()

	var vendors []models.Vendor
	for rows.Next() {
		var (
			v       models.Vendor
			rawTags []byte
			tour    sql.NullString
		)
		if err := rows.Scan(
			&v.ID, &v.Name, &v.Category, &v.Location, &v.BudgetTier, &v.Rating, &v.ReviewCount,
			&v.ImageURL, &v.IsVerified, &rawTags, &tour,
		); err != nil {
			return nil, errors.NewCatalogQueryFailedError(fmt.Errorf("scan vendor: %w", err))
		}
		if len(rawTags) > 0 {
			if err := json.Unmarshal(rawTags, &v.Tags); err != nil {
				return nil, errors.NewCatalogQueryFailedError(fmt.Errorf("decode tags of vendor %s: %w", v.ID, err))
			}
		}
		v.VirtualTourURL = tour.String
		vendors = append(vendors, v)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewCatalogQueryFailedError(err)
	}
	return normalize(vendors), nil
}
