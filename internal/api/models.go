package api

// Domain records as the backend serves them. The table layer treats
// these as opaque row payloads; only the pages know their shape.

// City is a destination city.
type City struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Airport is a departure or arrival airport.
type Airport struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Code   string `json:"code"`
	CityID int    `json:"city_id"`
	City   *City  `json:"city,omitempty"`
}

// Flight is a scheduled flight between two airports.
type Flight struct {
	ID                 int      `json:"id"`
	Number             string   `json:"number"`
	DepartureAirportID int      `json:"departure_airport_id"`
	ArrivalAirportID   int      `json:"arrival_airport_id"`
	DepartureTime      string   `json:"departure_time"`
	ArrivalTime        string   `json:"arrival_time"`
	Price              float64  `json:"price"`
	SeatsTotal         int      `json:"seats_total"`
	SeatsAvailable     int      `json:"seats_available"`
	DepartureAirport   *Airport `json:"departure_airport,omitempty"`
	ArrivalAirport     *Airport `json:"arrival_airport,omitempty"`
}

// Hotel is a bookable hotel.
type Hotel struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Stars       int    `json:"stars"`
	Description string `json:"description"`
	CityID      int    `json:"city_id"`
	City        *City  `json:"city,omitempty"`
}

// Room is a room type offered by a hotel.
type Room struct {
	ID            int     `json:"id"`
	HotelID       int     `json:"hotel_id"`
	Number        string  `json:"number"`
	Type          string  `json:"type"`
	Capacity      int     `json:"capacity"`
	PricePerNight float64 `json:"price_per_night"`
	Hotel         *Hotel  `json:"hotel,omitempty"`
}

// Permission is a single grantable capability.
type Permission struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Role groups permissions.
type Role struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	Permissions []Permission `json:"permissions,omitempty"`
}

// User is an account on the platform.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Roles []Role `json:"roles,omitempty"`
}

// RoleNames returns the user's role names for display.
func (u User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}
