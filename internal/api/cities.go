package api

import (
	"context"
	"fmt"
	"net/url"
)

// CityFilters narrows the city list.
type CityFilters struct {
	Name string
}

func (f CityFilters) values() url.Values {
	v := url.Values{}
	if f.Name != "" {
		v.Set("name", f.Name)
	}
	return v
}

// CityInput is the create/update payload for a city.
type CityInput struct {
	Name string `json:"name"`
}

// ListCities fetches one page of cities.
func (c *Client) ListCities(ctx context.Context, q ListQuery, f CityFilters) (*Page[City], error) {
	q.Filters = mergeValues(q.Filters, f.values())
	return getPage[City](ctx, c, "/cities", q)
}

// GetCity fetches a single city.
func (c *Client) GetCity(ctx context.Context, id int) (*City, error) {
	var city City
	if err := c.get(ctx, fmt.Sprintf("/cities/%d", id), nil, &city); err != nil {
		return nil, err
	}
	return &city, nil
}

// CreateCity creates a city.
func (c *Client) CreateCity(ctx context.Context, in CityInput) (*City, error) {
	var city City
	if err := c.post(ctx, "/cities", in, &city); err != nil {
		return nil, err
	}
	return &city, nil
}

// UpdateCity updates a city.
func (c *Client) UpdateCity(ctx context.Context, id int, in CityInput) (*City, error) {
	var city City
	if err := c.put(ctx, fmt.Sprintf("/cities/%d", id), in, &city); err != nil {
		return nil, err
	}
	return &city, nil
}

// DeleteCity deletes a city.
func (c *Client) DeleteCity(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/cities/%d", id))
}
