package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// FlightFilters narrows the flight list.
type FlightFilters struct {
	Number             string
	DepartureAirportID int
	ArrivalAirportID   int
	Date               string // YYYY-MM-DD
}

func (f FlightFilters) values() url.Values {
	v := url.Values{}
	if f.Number != "" {
		v.Set("number", f.Number)
	}
	if f.DepartureAirportID > 0 {
		v.Set("departure_airport_id", strconv.Itoa(f.DepartureAirportID))
	}
	if f.ArrivalAirportID > 0 {
		v.Set("arrival_airport_id", strconv.Itoa(f.ArrivalAirportID))
	}
	if f.Date != "" {
		v.Set("date", f.Date)
	}
	return v
}

// FlightInput is the create/update payload for a flight.
type FlightInput struct {
	Number             string  `json:"number"`
	DepartureAirportID int     `json:"departure_airport_id"`
	ArrivalAirportID   int     `json:"arrival_airport_id"`
	DepartureTime      string  `json:"departure_time"`
	ArrivalTime        string  `json:"arrival_time"`
	Price              float64 `json:"price"`
	SeatsTotal         int     `json:"seats_total"`
}

// ListFlights fetches one page of flights.
func (c *Client) ListFlights(ctx context.Context, q ListQuery, f FlightFilters) (*Page[Flight], error) {
	q.Filters = mergeValues(q.Filters, f.values())
	return getPage[Flight](ctx, c, "/flights", q)
}

// GetFlight fetches a single flight.
func (c *Client) GetFlight(ctx context.Context, id int) (*Flight, error) {
	var flight Flight
	if err := c.get(ctx, fmt.Sprintf("/flights/%d", id), nil, &flight); err != nil {
		return nil, err
	}
	return &flight, nil
}

// CreateFlight creates a flight.
func (c *Client) CreateFlight(ctx context.Context, in FlightInput) (*Flight, error) {
	var flight Flight
	if err := c.post(ctx, "/flights", in, &flight); err != nil {
		return nil, err
	}
	return &flight, nil
}

// UpdateFlight updates a flight.
func (c *Client) UpdateFlight(ctx context.Context, id int, in FlightInput) (*Flight, error) {
	var flight Flight
	if err := c.put(ctx, fmt.Sprintf("/flights/%d", id), in, &flight); err != nil {
		return nil, err
	}
	return &flight, nil
}

// DeleteFlight deletes a flight.
func (c *Client) DeleteFlight(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/flights/%d", id))
}
