package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// HotelFilters narrows the hotel list.
type HotelFilters struct {
	Name   string
	CityID int
	Stars  int
}

func (f HotelFilters) values() url.Values {
	v := url.Values{}
	if f.Name != "" {
		v.Set("name", f.Name)
	}
	if f.CityID > 0 {
		v.Set("city_id", strconv.Itoa(f.CityID))
	}
	if f.Stars > 0 {
		v.Set("stars", strconv.Itoa(f.Stars))
	}
	return v
}

// HotelInput is the create/update payload for a hotel.
type HotelInput struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Stars       int    `json:"stars"`
	Description string `json:"description"`
	CityID      int    `json:"city_id"`
}

// ListHotels fetches one page of hotels.
func (c *Client) ListHotels(ctx context.Context, q ListQuery, f HotelFilters) (*Page[Hotel], error) {
	q.Filters = mergeValues(q.Filters, f.values())
	return getPage[Hotel](ctx, c, "/hotels", q)
}

// GetHotel fetches a single hotel.
func (c *Client) GetHotel(ctx context.Context, id int) (*Hotel, error) {
	var hotel Hotel
	if err := c.get(ctx, fmt.Sprintf("/hotels/%d", id), nil, &hotel); err != nil {
		return nil, err
	}
	return &hotel, nil
}

// CreateHotel creates a hotel.
func (c *Client) CreateHotel(ctx context.Context, in HotelInput) (*Hotel, error) {
	var hotel Hotel
	if err := c.post(ctx, "/hotels", in, &hotel); err != nil {
		return nil, err
	}
	return &hotel, nil
}

// UpdateHotel updates a hotel.
func (c *Client) UpdateHotel(ctx context.Context, id int, in HotelInput) (*Hotel, error) {
	var hotel Hotel
	if err := c.put(ctx, fmt.Sprintf("/hotels/%d", id), in, &hotel); err != nil {
		return nil, err
	}
	return &hotel, nil
}

// DeleteHotel deletes a hotel.
func (c *Client) DeleteHotel(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/hotels/%d", id))
}
