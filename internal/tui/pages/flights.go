package pages

import (
	"context"
	"fmt"
	"strconv"

	"tripdesk/internal/api"
	"tripdesk/internal/tui/component"
	"tripdesk/internal/tui/themes"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// flightRoute renders "BER → LHR" for a flight row, falling back to
// the raw airport ids when the relation was not loaded
func flightRoute(f api.Flight) string {
	from := strconv.Itoa(f.DepartureAirportID)
	to := strconv.Itoa(f.ArrivalAirportID)
	if f.DepartureAirport != nil {
		from = f.DepartureAirport.Code
	}
	if f.ArrivalAirport != nil {
		to = f.ArrivalAirport.Code
	}
	return from + " " + themes.IconArrowRight + " " + to
}

// FlightsPage manages scheduled flights
type FlightsPage struct {
	BasePage

	list *listState[api.Flight]
	mode pageMode

	form       *huh.Form
	number     string
	fromID     string
	toID       string
	departure  string
	arrival    string
	price      string
	seatsTotal string
	editing    int

	confirm  *component.Confirm
	deleting api.Flight
	detail   api.Flight
}

// NewFlightsPage builds the flights screen
func NewFlightsPage(app *App) *FlightsPage {
	p := &FlightsPage{
		BasePage: NewBasePage(app, "flights", "Flights"),
		mode:     modeList,
	}

	grid := component.NewGrid("flights", []component.Column[api.Flight]{
		{ID: "id", Key: "ID", Title: "ID", Width: 6, Sortable: true},
		{ID: "number", Key: "Number", Title: "Flight", Width: 8, Sortable: true},
		{ID: "route", Title: "Route", Width: 12,
			Value: func(f api.Flight, _ int) string { return flightRoute(f) }},
		{ID: "departure_time", Key: "DepartureTime", Title: "Departs", Sortable: true},
		{ID: "price", Title: "Price", Width: 9, Sortable: true,
			Value: func(f api.Flight, _ int) string {
				return fmt.Sprintf("%.2f", f.Price)
			}},
		{ID: "seats", Title: "Seats", Width: 9,
			Value: func(f api.Flight, _ int) string {
				return fmt.Sprintf("%d/%d", f.SeatsAvailable, f.SeatsTotal)
			}},
	}).WithEmptyText("No flights found")

	menu := component.NewActionMenu("flights",
		component.CustomAction("create", "New", themes.IconPlus),
		component.ViewAction(),
		component.EditAction(),
		component.DeleteAction(),
	)

	container := component.NewContainer("flights", "Flights", grid).
		WithActions(menu).
		WithPagination(component.NewPagination("flights"))

	p.list = newListState("flights", container, app.Config.UI.PageSize,
		func(ctx context.Context, q api.ListQuery) (*api.Page[api.Flight], error) {
			return app.Client.ListFlights(ctx, q, api.FlightFilters{})
		})
	return p
}

// Focus activates the page and loads the first page of rows
func (p *FlightsPage) Focus() tea.Cmd {
	cmd := p.BasePage.Focus()
	p.mode = modeList
	return tea.Batch(cmd, p.list.container.Focus(), p.list.Load())
}

// Blur deactivates the page
func (p *FlightsPage) Blur() {
	p.BasePage.Blur()
	p.list.container.Blur()
}

func (p *FlightsPage) openForm(f *api.Flight) {
	p.number, p.fromID, p.toID = "", "", ""
	p.departure, p.arrival, p.price, p.seatsTotal = "", "", "", ""
	p.editing = 0
	if f != nil {
		p.number = f.Number
		p.fromID = strconv.Itoa(f.DepartureAirportID)
		p.toID = strconv.Itoa(f.ArrivalAirportID)
		p.departure = f.DepartureTime
		p.arrival = f.ArrivalTime
		p.price = strconv.FormatFloat(f.Price, 'f', 2, 64)
		p.seatsTotal = strconv.Itoa(f.SeatsTotal)
		p.editing = f.ID
	}
	p.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Flight number").Value(&p.number).
			Validate(requireText("flight number")),
		huh.NewInput().Title("Departure airport ID").Value(&p.fromID).
			Validate(requireInt("departure airport")),
		huh.NewInput().Title("Arrival airport ID").Value(&p.toID).
			Validate(requireInt("arrival airport")),
		huh.NewInput().Title("Departure time").Value(&p.departure).
			Placeholder("2026-09-01 14:30").
			Validate(requireText("departure time")),
		huh.NewInput().Title("Arrival time").Value(&p.arrival).
			Placeholder("2026-09-01 16:45").
			Validate(requireText("arrival time")),
		huh.NewInput().Title("Price").Value(&p.price).
			Validate(requireFloat("price")),
		huh.NewInput().Title("Total seats").Value(&p.seatsTotal).
			Validate(requireInt("total seats")),
	)).WithTheme(p.Theme().HuhTheme())
	p.mode = modeForm
}

func (p *FlightsPage) submitForm() tea.Cmd {
	fromID, _ := strconv.Atoi(p.fromID)
	toID, _ := strconv.Atoi(p.toID)
	price, _ := strconv.ParseFloat(p.price, 64)
	seats, _ := strconv.Atoi(p.seatsTotal)
	input := api.FlightInput{
		Number:             p.number,
		DepartureAirportID: fromID,
		ArrivalAirportID:   toID,
		DepartureTime:      p.departure,
		ArrivalTime:        p.arrival,
		Price:              price,
		SeatsTotal:         seats,
	}
	client := p.App().Client
	if p.editing > 0 {
		id := p.editing
		return mutate("flights", "updated", func(ctx context.Context) error {
			_, err := client.UpdateFlight(ctx, id, input)
			return err
		})
	}
	return mutate("flights", "created", func(ctx context.Context) error {
		_, err := client.CreateFlight(ctx, input)
		return err
	})
}

// Init implements tea.Model
func (p *FlightsPage) Init() tea.Cmd {
	return p.list.container.Init()
}

// Update implements tea.Model
func (p *FlightsPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, handled := p.list.Update(msg); handled {
		return p, cmd
	}

	switch msg := msg.(type) {
	case MutationDoneMsg:
		if msg.Source != "flights" {
			return p, nil
		}
		p.mode = modeList
		return p, tea.Batch(mutationStatus("Flight", msg), p.list.Reload())
	case component.ActionInvokedMsg:
		if msg.Source != "flights" {
			return p, nil
		}
		switch msg.Action {
		case "create":
			p.openForm(nil)
			return p, p.form.Init()
		case "view":
			if f, ok := p.list.container.Grid().CursorRow(); ok {
				p.detail = f
				p.mode = modeDetail
			}
		case "edit":
			if f, ok := p.list.container.Grid().CursorRow(); ok {
				p.openForm(&f)
				return p, p.form.Init()
			}
		case "delete":
			if f, ok := p.list.container.Grid().CursorRow(); ok {
				p.deleting = f
				p.confirm = component.NewConfirm("flights",
					"Delete flight",
					fmt.Sprintf("Delete flight %s (%s)?", f.Number, flightRoute(f)),
				).WithDanger()
				p.confirm.FocusState.Focus()
				p.mode = modeConfirm
			}
		}
		return p, nil
	case component.RowSelectedMsg:
		if msg.Source != "flights" {
			return p, nil
		}
		if f, ok := p.list.container.Grid().CursorRow(); ok {
			p.detail = f
			p.mode = modeDetail
		}
		return p, nil
	case component.ConfirmResultMsg:
		if msg.Source != "flights" || p.mode != modeConfirm {
			return p, nil
		}
		p.mode = modeList
		if !msg.Confirmed {
			return p, nil
		}
		id := p.deleting.ID
		client := p.App().Client
		return p, mutate("flights", "deleted", func(ctx context.Context) error {
			return client.DeleteFlight(ctx, id)
		})
	}

	switch p.mode {
	case modeForm:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
			p.mode = modeList
			return p, nil
		}
		model, cmd := p.form.Update(msg)
		if form, ok := model.(*huh.Form); ok {
			p.form = form
		}
		if p.form.State == huh.StateCompleted {
			return p, p.submitForm()
		}
		if p.form.State == huh.StateAborted {
			p.mode = modeList
			return p, nil
		}
		return p, cmd
	case modeConfirm:
		model, cmd := p.confirm.Update(msg)
		if confirm, ok := model.(*component.Confirm); ok {
			p.confirm = confirm
		}
		return p, cmd
	case modeDetail:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
			p.mode = modeList
		}
		return p, nil
	}

	model, cmd := p.list.container.Update(msg)
	if container, ok := model.(*component.Container[api.Flight]); ok {
		p.list.container = container
	}
	return p, cmd
}

// View implements tea.Model
func (p *FlightsPage) View() string {
	theme := p.Theme()
	switch p.mode {
	case modeForm:
		title := "New flight"
		if p.editing > 0 {
			title = "Edit flight"
		}
		return theme.Title.Render(title) + "\n\n" + p.form.View()
	case modeConfirm:
		return p.confirm.ViewWidth(p.Width())
	case modeDetail:
		return detailView(theme, "Flight", [][2]string{
			{"ID", strconv.Itoa(p.detail.ID)},
			{"Number", p.detail.Number},
			{"Route", flightRoute(p.detail)},
			{"Departs", p.detail.DepartureTime},
			{"Arrives", p.detail.ArrivalTime},
			{"Price", fmt.Sprintf("%.2f", p.detail.Price)},
			{"Seats", fmt.Sprintf("%d of %d available", p.detail.SeatsAvailable, p.detail.SeatsTotal)},
		})
	}

	view := p.list.container.ViewWidth(p.Width())
	if err := p.list.Err(); err != nil {
		view += "\n" + theme.Error.Render(err.Error())
	}
	return view
}
