package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	storeinsights "github.com/Bhaskar-Gayen/Shopify-store-analyzer"
)

// Compile-time interface verification.
var _ storeinsights.AnalysisService = (*AnalysisService)(nil)

// AnalysisService implements storeinsights.AnalysisService using SQLite.
// The full report is stored as a JSON column; the indexable metadata is
// denormalized into its own columns.
type AnalysisService struct {
	db *DB
}

// NewAnalysisService creates a new AnalysisService.
func NewAnalysisService(db *DB) *AnalysisService {
	return &AnalysisService{db: db}
}

// SaveAnalysis archives an analysis, assigning its ID and CreatedAt.
func (s *AnalysisService) SaveAnalysis(ctx context.Context, analysis *storeinsights.Analysis) error {
	if err := analysis.Validate(); err != nil {
		return err
	}

	analysis.ID = uuid.New().String()
	analysis.CreatedAt = time.Now().UTC()

	report, err := json.Marshal(analysis.Report)
	if err != nil {
		return storeinsights.Errorf(storeinsights.EINTERNAL, "cannot encode report: %v", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO analyses (id, target, brand_name, total_products, content_hash, report, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, analysis.ID, analysis.Target, analysis.BrandName, analysis.TotalProducts,
		analysis.ContentHash, string(report), analysis.CreatedAt.Format(time.RFC3339))

	return err
}

// FindAnalysisByID retrieves an archived analysis by ID.
func (s *AnalysisService) FindAnalysisByID(ctx context.Context, id string) (*storeinsights.Analysis, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, target, brand_name, total_products, content_hash, report, created_at
		FROM analyses
		WHERE id = ?
	`, id)

	analysis, err := scanAnalysis(row.Scan)
	if err == sql.ErrNoRows {
		return nil, storeinsights.Errorf(storeinsights.ENOTFOUND, "analysis not found")
	}
	if err != nil {
		return nil, err
	}
	return analysis, nil
}

// FindAnalyses retrieves analyses matching the filter, newest first.
func (s *AnalysisService) FindAnalyses(ctx context.Context, filter storeinsights.AnalysisFilter) ([]*storeinsights.Analysis, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, target, brand_name, total_products, content_hash, report, created_at FROM analyses WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Target != nil {
		query.WriteString(" AND target = ?")
		args = append(args, *filter.Target)
	}

	query.WriteString(" ORDER BY created_at DESC, id")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var analyses []*storeinsights.Analysis
	for rows.Next() {
		analysis, err := scanAnalysis(rows.Scan)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, analysis)
	}
	return analyses, rows.Err()
}

// DeleteAnalysis permanently removes an archived analysis.
func (s *AnalysisService) DeleteAnalysis(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM analyses WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storeinsights.Errorf(storeinsights.ENOTFOUND, "analysis not found")
	}
	return nil
}

// scanAnalysis reads one analysis row through the given scan function.
func scanAnalysis(scan func(dest ...any) error) (*storeinsights.Analysis, error) {
	var analysis storeinsights.Analysis
	var report, createdAt string

	if err := scan(&analysis.ID, &analysis.Target, &analysis.BrandName, &analysis.TotalProducts,
		&analysis.ContentHash, &report, &createdAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(report), &analysis.Report); err != nil {
		return nil, storeinsights.Errorf(storeinsights.EINTERNAL, "cannot decode report: %v", err)
	}

	var err error
	analysis.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}
	return &analysis, nil
}
