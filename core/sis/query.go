package sis

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

type countResult struct {
	Count int `json:"count"`
}

type pageResult struct {
	Results []json.RawMessage `json:"results"`
}

// QueryCount returns the total number of rows the named query matches.
func (c *Client) QueryCount(ctx context.Context, name string, filter any) (int, error) {
	var out countResult
	path := fmt.Sprintf("/query/%s/count", name)
	if err := c.Do(ctx, http.MethodPost, path, filter, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

// QueryPage fetches one page of rows for the named query.
func (c *Client) QueryPage(ctx context.Context, name string, filter any, page, pageSize int) ([]json.RawMessage, error) {
	var out pageResult
	path := fmt.Sprintf("/query/%s?page=%d&pagesize=%d", name, page, pageSize)
	if err := c.Do(ctx, http.MethodPost, path, filter, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// QueryAll fetches the complete row set for the named query: count first,
// then sequential pages until the cumulative row count reaches the total.
// An empty or short page before that point returns ErrIncomplete so a
// truncated snapshot can never masquerade as a complete one. Cancellation is
// honored between pages.
func (c *Client) QueryAll(ctx context.Context, name string, filter any) ([]json.RawMessage, error) {
	total, err := c.QueryCount(ctx, name, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count %s: %w", name, err)
	}

	rows := make([]json.RawMessage, 0, total)
	for page := 1; len(rows) < total; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		pageRows, err := c.QueryPage(ctx, name, filter, page, c.pageSize)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s page %d: %w", name, page, err)
		}
		if len(pageRows) == 0 {
			return nil, fmt.Errorf("%s: got %d of %d rows: %w", name, len(rows), total, ErrIncomplete)
		}

		rows = append(rows, pageRows...)

		if len(rows) < total && len(pageRows) < c.pageSize {
			return nil, fmt.Errorf("%s: short page %d, got %d of %d rows: %w", name, page, len(rows), total, ErrIncomplete)
		}
	}

	c.log.Debug("fetched remote collection",
		zap.String("query", name),
		zap.Int("total", total),
		zap.Int("rows", len(rows)),
	)
	return rows, nil
}

// DecodeRows unmarshals raw query rows into typed records. It is the thin
// decoding step between the wire format and the reconciler's remote shapes.
func DecodeRows[T any](rows []json.RawMessage) ([]T, error) {
	out := make([]T, 0, len(rows))
	for i, row := range rows {
		var rec T
		if err := json.Unmarshal(row, &rec); err != nil {
			return nil, fmt.Errorf("failed to decode row %d: %w", i, err)
		}
		out = append(out, rec)
	}
	return out, nil
}
