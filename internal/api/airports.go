package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// AirportFilters narrows the airport list.
type AirportFilters struct {
	Name   string
	Code   string
	CityID int
}

func (f AirportFilters) values() url.Values {
	v := url.Values{}
	if f.Name != "" {
		v.Set("name", f.Name)
	}
	if f.Code != "" {
		v.Set("code", f.Code)
	}
	if f.CityID > 0 {
		v.Set("city_id", strconv.Itoa(f.CityID))
	}
	return v
}

// AirportInput is the create/update payload for an airport.
type AirportInput struct {
	Name   string `json:"name"`
	Code   string `json:"code"`
	CityID int    `json:"city_id"`
}

// ListAirports fetches one page of airports.
func (c *Client) ListAirports(ctx context.Context, q ListQuery, f AirportFilters) (*Page[Airport], error) {
	q.Filters = mergeValues(q.Filters, f.values())
	return getPage[Airport](ctx, c, "/airports", q)
}

// GetAirport fetches a single airport.
func (c *Client) GetAirport(ctx context.Context, id int) (*Airport, error) {
	var airport Airport
	if err := c.get(ctx, fmt.Sprintf("/airports/%d", id), nil, &airport); err != nil {
		return nil, err
	}
	return &airport, nil
}

// CreateAirport creates an airport.
func (c *Client) CreateAirport(ctx context.Context, in AirportInput) (*Airport, error) {
	var airport Airport
	if err := c.post(ctx, "/airports", in, &airport); err != nil {
		return nil, err
	}
	return &airport, nil
}

// UpdateAirport updates an airport.
func (c *Client) UpdateAirport(ctx context.Context, id int, in AirportInput) (*Airport, error) {
	var airport Airport
	if err := c.put(ctx, fmt.Sprintf("/airports/%d", id), in, &airport); err != nil {
		return nil, err
	}
	return &airport, nil
}

// DeleteAirport deletes an airport.
func (c *Client) DeleteAirport(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/airports/%d", id))
}
