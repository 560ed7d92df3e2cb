package api

import (
	"context"
	"net/url"
	"strconv"
)

// FlightSearch is the public flight-search query.
type FlightSearch struct {
	FromAirportID int
	ToAirportID   int
	Date          string // YYYY-MM-DD
	Passengers    int
}

func (s FlightSearch) values() url.Values {
	v := url.Values{}
	if s.FromAirportID > 0 {
		v.Set("from", strconv.Itoa(s.FromAirportID))
	}
	if s.ToAirportID > 0 {
		v.Set("to", strconv.Itoa(s.ToAirportID))
	}
	if s.Date != "" {
		v.Set("date", s.Date)
	}
	if s.Passengers > 0 {
		v.Set("passengers", strconv.Itoa(s.Passengers))
	}
	return v
}

// HotelSearch is the public hotel-search query.
type HotelSearch struct {
	CityID   int
	CheckIn  string // YYYY-MM-DD
	CheckOut string // YYYY-MM-DD
	Guests   int
}

func (s HotelSearch) values() url.Values {
	v := url.Values{}
	if s.CityID > 0 {
		v.Set("city_id", strconv.Itoa(s.CityID))
	}
	if s.CheckIn != "" {
		v.Set("check_in", s.CheckIn)
	}
	if s.CheckOut != "" {
		v.Set("check_out", s.CheckOut)
	}
	if s.Guests > 0 {
		v.Set("guests", strconv.Itoa(s.Guests))
	}
	return v
}

// SearchFlights runs the public flight search.
func (c *Client) SearchFlights(ctx context.Context, q ListQuery, s FlightSearch) (*Page[Flight], error) {
	q.Filters = mergeValues(q.Filters, s.values())
	return getPage[Flight](ctx, c, "/flights/search", q)
}

// SearchHotels runs the public hotel search.
func (c *Client) SearchHotels(ctx context.Context, q ListQuery, s HotelSearch) (*Page[Hotel], error) {
	q.Filters = mergeValues(q.Filters, s.values())
	return getPage[Hotel](ctx, c, "/hotels/search", q)
}
