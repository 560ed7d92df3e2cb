package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(Options{
		BaseURL:     srv.URL + "/api",
		TokenSource: StaticToken("tok-123"),
	})
	if err != nil {
		t.Fatal(err)
	}
	return c, srv
}

func TestNew_Validation(t *testing.T) {
	if _, err := New(Options{}); err == nil {
		t.Error("expected error for empty base URL")
	}
	if _, err := New(Options{BaseURL: "ftp://example.com"}); err == nil {
		t.Error("expected error for unsupported scheme")
	}
	if _, err := New(Options{BaseURL: "https://api.travel.test/v1/"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDo_Headers(t *testing.T) {
	var gotAuth, gotRequestID, gotAccept string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-Id")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`{}`))
	})

	var out struct{}
	if err := c.get(context.Background(), "/hotels", nil, &out); err != nil {
		t.Fatalf("get() error = %v", err)
	}

	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want bearer token", gotAuth)
	}
	if gotRequestID == "" {
		t.Error("expected X-Request-Id header")
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q", gotAccept)
	}
}

func TestDo_NoTokenNoHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Errorf("unexpected Authorization header %q", r.Header.Get("Authorization"))
		}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c, err := New(Options{BaseURL: srv.URL})
	if err != nil {
		t.Fatal(err)
	}
	var out struct{}
	if err := c.get(context.Background(), "/cities", nil, &out); err != nil {
		t.Fatal(err)
	}
}

func TestListHotels_DecodesPage(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/hotels" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("page"); got != "2" {
			t.Errorf("page = %q, want 2", got)
		}
		if got := r.URL.Query().Get("name"); got != "plaza" {
			t.Errorf("name filter = %q, want plaza", got)
		}
		w.Write([]byte(`{
			"data": [{"id": 1, "name": "Plaza", "stars": 5}],
			"current_page": 2,
			"last_page": 7,
			"per_page": 15,
			"total": 93,
			"from": 16,
			"to": 30,
			"next_page_url": "http://x/api/hotels?page=3",
			"prev_page_url": "http://x/api/hotels?page=1"
		}`))
	})

	page, err := c.ListHotels(context.Background(), ListQuery{Page: 2}, HotelFilters{Name: "plaza"})
	if err != nil {
		t.Fatalf("ListHotels() error = %v", err)
	}

	if len(page.Data) != 1 || page.Data[0].Name != "Plaza" {
		t.Errorf("unexpected data: %+v", page.Data)
	}
	if page.CurrentPage != 2 || page.LastPage != 7 {
		t.Errorf("unexpected pager: current=%d last=%d", page.CurrentPage, page.LastPage)
	}
	if !page.HasTotals() {
		t.Error("expected HasTotals() = true")
	}
	if page.NextPageURL == nil || page.PrevPageURL == nil {
		t.Error("expected page URLs to be set")
	}
}

func TestPage_HasTotals_Degraded(t *testing.T) {
	p := &Page[Hotel]{CurrentPage: 1, LastPage: 3}
	if p.HasTotals() {
		t.Error("expected HasTotals() = false when the backend omits counts")
	}
}

func TestDo_APIError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message": "The given data was invalid.", "errors": {"name": ["The name field is required."]}}`))
	})

	_, err := c.CreateHotel(context.Background(), HotelInput{})
	if err == nil {
		t.Fatal("expected error")
	}

	if !IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}

	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Message != "The given data was invalid." {
		t.Errorf("Message = %q", apiErr.Message)
	}
	fields := apiErr.FieldErrors()
	if fields["name"] != "The name field is required." {
		t.Errorf("field errors = %v", fields)
	}
}

func TestDo_NotFoundAndUnauthorized(t *testing.T) {
	status := http.StatusNotFound
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(`{"error": "not found"}`))
	})

	_, err := c.GetHotel(context.Background(), 99)
	if !IsNotFound(err) {
		t.Errorf("expected not-found, got %v", err)
	}

	status = http.StatusUnauthorized
	_, err = c.Me(context.Background())
	if !IsUnauthorized(err) {
		t.Errorf("expected unauthorized, got %v", err)
	}
}

func TestDo_NonJSONError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>upstream broke</html>"))
	})

	_, err := c.ListCities(context.Background(), ListQuery{}, CityFilters{})
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Status != http.StatusBadGateway {
		t.Errorf("Status = %d", apiErr.Status)
	}
	if apiErr.Message != "" {
		t.Errorf("expected empty message for non-JSON body, got %q", apiErr.Message)
	}
}

func TestLogin(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/login" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"token": "fresh-token", "user": {"id": 1, "name": "Ada", "email": "ada@travel.test"}}`))
	})

	resp, err := c.Login(context.Background(), "ada@travel.test", "secret")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if resp.Token != "fresh-token" {
		t.Errorf("Token = %q", resp.Token)
	}
	if resp.User == nil || resp.User.Name != "Ada" {
		t.Errorf("User = %+v", resp.User)
	}
}

func TestLogin_MissingToken(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	if _, err := c.Login(context.Background(), "a@b.c", "x"); err == nil {
		t.Error("expected error when response has no token")
	}
}

func TestLogout_ToleratesExpiredToken(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "Unauthenticated."}`))
	})

	if err := c.Logout(context.Background()); err != nil {
		t.Errorf("Logout() with dead token should succeed, got %v", err)
	}
}

func TestDeleteRoom_NoContent(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/rooms/7" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	if err := c.DeleteRoom(context.Background(), 7); err != nil {
		t.Errorf("DeleteRoom() error = %v", err)
	}
}

func TestListQuery_Values(t *testing.T) {
	q := ListQuery{Page: 3, PerPage: 20}
	v := q.values()
	if v.Get("page") != "3" || v.Get("per_page") != "20" {
		t.Errorf("unexpected query %v", v)
	}

	// Zero values are omitted
	v = ListQuery{}.values()
	if len(v) != 0 {
		t.Errorf("expected empty query, got %v", v)
	}
}

func TestSearchFlights_Query(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("from") != "1" || q.Get("to") != "2" || q.Get("date") != "2026-09-01" {
			t.Errorf("unexpected query %v", q)
		}
		w.Write([]byte(`{"data": [], "current_page": 1, "last_page": 1}`))
	})

	page, err := c.SearchFlights(context.Background(), ListQuery{}, FlightSearch{
		FromAirportID: 1,
		ToAirportID:   2,
		Date:          "2026-09-01",
	})
	if err != nil {
		t.Fatalf("SearchFlights() error = %v", err)
	}
	if len(page.Data) != 0 {
		t.Errorf("expected empty result, got %d", len(page.Data))
	}
}
