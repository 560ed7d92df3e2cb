package api

import (
	"context"
	"net/url"
	"strconv"
)

// Page is one page of a paginated list response. The backend uses a
// pager envelope with the items under "data" and the position metadata
// alongside; totals are optional and zero when the backend omits them.
type Page[T any] struct {
	Data        []T     `json:"data"`
	CurrentPage int     `json:"current_page"`
	LastPage    int     `json:"last_page"`
	PerPage     int     `json:"per_page"`
	Total       int     `json:"total"`
	From        int     `json:"from"`
	To          int     `json:"to"`
	NextPageURL *string `json:"next_page_url"`
	PrevPageURL *string `json:"prev_page_url"`
}

// HasTotals reports whether the backend supplied the record counts
// needed for a "Showing X to Y of Z" caption.
func (p *Page[T]) HasTotals() bool {
	return p.Total > 0 && p.From > 0 && p.To > 0
}

// NextURL returns the next page link, empty on the last page.
func (p *Page[T]) NextURL() string {
	if p.NextPageURL == nil {
		return ""
	}
	return *p.NextPageURL
}

// PrevURL returns the previous page link, empty on the first page.
func (p *Page[T]) PrevURL() string {
	if p.PrevPageURL == nil {
		return ""
	}
	return *p.PrevPageURL
}

// ListQuery carries the common list parameters every paginated
// endpoint accepts.
type ListQuery struct {
	Page    int
	PerPage int

	// Filters are passed through to the backend untouched; filter
	// execution is the backend's business.
	Filters url.Values
}

// values encodes the query for the request.
func (q ListQuery) values() url.Values {
	v := url.Values{}
	for key, vals := range q.Filters {
		for _, val := range vals {
			if val != "" {
				v.Add(key, val)
			}
		}
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PerPage > 0 {
		v.Set("per_page", strconv.Itoa(q.PerPage))
	}
	return v
}

// mergeValues folds src into dst without dropping existing keys, so
// endpoint filters compose with caller-supplied sort parameters.
func mergeValues(dst, src url.Values) url.Values {
	if dst == nil {
		return src
	}
	for key, vals := range src {
		for _, val := range vals {
			dst.Add(key, val)
		}
	}
	return dst
}

// getPage fetches one page of a paginated list endpoint.
func getPage[T any](ctx context.Context, c *Client, path string, q ListQuery) (*Page[T], error) {
	var page Page[T]
	if err := c.get(ctx, path, q.values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}
