package pages

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"tripdesk/internal/api"
)

func TestParseIDList(t *testing.T) {
	ids, err := parseIDList("1, 4,7")
	if err != nil {
		t.Fatalf("parseIDList: %v", err)
	}
	if !reflect.DeepEqual(ids, []int{1, 4, 7}) {
		t.Errorf("ids = %v", ids)
	}

	if ids, err := parseIDList("  "); err != nil || ids != nil {
		t.Errorf("blank list = %v, %v", ids, err)
	}
	if _, err := parseIDList("1, x"); err == nil {
		t.Error("non-numeric entry accepted")
	}
	if _, err := parseIDList("0"); err == nil {
		t.Error("zero id accepted")
	}
}

func TestFormValidators(t *testing.T) {
	if err := requireText("name")("  "); err == nil {
		t.Error("blank text accepted")
	}
	if err := requireText("name")("Berlin"); err != nil {
		t.Errorf("valid text rejected: %v", err)
	}
	if err := requireInt("id")("12"); err != nil {
		t.Errorf("valid int rejected: %v", err)
	}
	if err := requireInt("id")("-3"); err == nil {
		t.Error("negative int accepted")
	}
	if err := requireFloat("price")("99.50"); err != nil {
		t.Errorf("valid amount rejected: %v", err)
	}
	if err := requireFloat("price")("cheap"); err == nil {
		t.Error("non-numeric amount accepted")
	}
	if err := requireDate("date")("2026-09-14"); err != nil {
		t.Errorf("valid date rejected: %v", err)
	}
	if err := requireDate("date")("14.09.2026"); err == nil {
		t.Error("wrong date format accepted")
	}
}

func TestMutationStatusSuccess(t *testing.T) {
	cmd := mutationStatus("City", MutationDoneMsg{Source: "cities", Verb: "created"})
	msg := cmd().(StatusMsg)
	if msg.Err || msg.Text != "City created" {
		t.Errorf("StatusMsg = %+v", msg)
	}
}

func TestMutationStatusValidation(t *testing.T) {
	err := &api.APIError{
		Status:  422,
		Message: "The given data was invalid.",
		Fields:  map[string][]string{"name": {"The name field is required."}},
	}
	cmd := mutationStatus("City", MutationDoneMsg{Source: "cities", Verb: "created", Err: err})
	msg := cmd().(StatusMsg)
	if !msg.Err {
		t.Error("validation failure not flagged as error")
	}
	if !strings.Contains(msg.Text, "name: The name field is required.") {
		t.Errorf("field errors missing: %q", msg.Text)
	}
}

func TestMutationStatusPlainError(t *testing.T) {
	cmd := mutationStatus("City", MutationDoneMsg{Err: errors.New("connection refused")})
	msg := cmd().(StatusMsg)
	if !msg.Err || msg.Text != "connection refused" {
		t.Errorf("StatusMsg = %+v", msg)
	}
}

func TestStarRating(t *testing.T) {
	if got := starRating(3); len([]rune(got)) != 3 {
		t.Errorf("starRating(3) = %q", got)
	}
	if got := starRating(0); got != "" {
		t.Errorf("starRating(0) = %q", got)
	}
	if got := starRating(9); len([]rune(got)) != 5 {
		t.Errorf("starRating(9) = %q, want capped at 5", got)
	}
}

func TestFlightRoute(t *testing.T) {
	f := api.Flight{
		DepartureAirportID: 1,
		ArrivalAirportID:   2,
		DepartureAirport:   &api.Airport{Code: "BER"},
		ArrivalAirport:     &api.Airport{Code: "LHR"},
	}
	if got := flightRoute(f); !strings.Contains(got, "BER") || !strings.Contains(got, "LHR") {
		t.Errorf("flightRoute = %q", got)
	}

	bare := api.Flight{DepartureAirportID: 1, ArrivalAirportID: 2}
	if got := flightRoute(bare); !strings.Contains(got, "1") || !strings.Contains(got, "2") {
		t.Errorf("flightRoute without relations = %q", got)
	}
}
