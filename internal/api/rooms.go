package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// RoomFilters narrows the room list.
type RoomFilters struct {
	HotelID  int
	Type     string
	Capacity int
}

func (f RoomFilters) values() url.Values {
	v := url.Values{}
	if f.HotelID > 0 {
		v.Set("hotel_id", strconv.Itoa(f.HotelID))
	}
	if f.Type != "" {
		v.Set("type", f.Type)
	}
	if f.Capacity > 0 {
		v.Set("capacity", strconv.Itoa(f.Capacity))
	}
	return v
}

// RoomInput is the create/update payload for a room.
type RoomInput struct {
	HotelID       int     `json:"hotel_id"`
	Number        string  `json:"number"`
	Type          string  `json:"type"`
	Capacity      int     `json:"capacity"`
	PricePerNight float64 `json:"price_per_night"`
}

// ListRooms fetches one page of rooms.
func (c *Client) ListRooms(ctx context.Context, q ListQuery, f RoomFilters) (*Page[Room], error) {
	q.Filters = mergeValues(q.Filters, f.values())
	return getPage[Room](ctx, c, "/rooms", q)
}

// GetRoom fetches a single room.
func (c *Client) GetRoom(ctx context.Context, id int) (*Room, error) {
	var room Room
	if err := c.get(ctx, fmt.Sprintf("/rooms/%d", id), nil, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

// CreateRoom creates a room.
func (c *Client) CreateRoom(ctx context.Context, in RoomInput) (*Room, error) {
	var room Room
	if err := c.post(ctx, "/rooms", in, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

// UpdateRoom updates a room.
func (c *Client) UpdateRoom(ctx context.Context, id int, in RoomInput) (*Room, error) {
	var room Room
	if err := c.put(ctx, fmt.Sprintf("/rooms/%d", id), in, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

// DeleteRoom deletes a room.
func (c *Client) DeleteRoom(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/rooms/%d", id))
}
