package serviceimpl

import (
	"context"
	"fmt"

	"github.com/PayRam/go-jobly/internal/db"
	"github.com/PayRam/go-jobly/internal/sqlgen"
	"github.com/PayRam/go-jobly/response"
)

// exists reports whether table has a row whose keyColumn equals key
func exists(ctx context.Context, store db.Store, table, keyColumn string, key interface{}) (bool, error) {
	query, err := sqlgen.Count(table, sqlgen.NewPredicate().Where(keyColumn+" = ?", key))
	if err != nil {
		return false, err
	}

	var count int64
	if _, err := store.Query(ctx, &count, query); err != nil {
		return false, fmt.Errorf("failed to check %s: %w", table, err)
	}
	return count > 0, nil
}

func jobsByCompany(ctx context.Context, store db.Store, handle string) ([]response.JobSummary, error) {
	query, err := sqlgen.SelectQuery{
		Table:   jobsTable,
		Columns: []string{"id", "title", "salary", "equity"},
		Where:   sqlgen.NewPredicate().Where("company_handle = ?", handle),
		OrderBy: []string{"id"},
	}.Build()
	if err != nil {
		return nil, err
	}

	jobs := []response.JobSummary{}
	if _, err := store.Query(ctx, &jobs, query); err != nil {
		return nil, fmt.Errorf("failed to fetch jobs for company %s: %w", handle, err)
	}
	return jobs, nil
}
