package pages

import (
	"context"
	"fmt"
	"strconv"

	"tripdesk/internal/api"
	"tripdesk/internal/tui/component"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// FlightSearchPage runs the public flight search: a criteria form
// followed by a paginated result table
type FlightSearchPage struct {
	BasePage

	list *listState[api.Flight]
	mode pageMode

	form       *huh.Form
	fromID     string
	toID       string
	date       string
	passengers string
	criteria   api.FlightSearch
	searched   bool
}

// NewFlightSearchPage builds the flight-search screen
func NewFlightSearchPage(app *App) *FlightSearchPage {
	p := &FlightSearchPage{
		BasePage: NewBasePage(app, "flight-search", "Flight search"),
		mode:     modeForm,
	}

	grid := component.NewGrid("flight-search", []component.Column[api.Flight]{
		{ID: "number", Key: "Number", Title: "Flight", Width: 8, Sortable: true},
		{ID: "route", Title: "Route", Width: 12,
			Value: func(f api.Flight, _ int) string { return flightRoute(f) }},
		{ID: "departure_time", Key: "DepartureTime", Title: "Departs", Sortable: true},
		{ID: "arrival_time", Key: "ArrivalTime", Title: "Arrives"},
		{ID: "price", Title: "Price", Width: 9, Sortable: true,
			Value: func(f api.Flight, _ int) string {
				return fmt.Sprintf("%.2f", f.Price)
			}},
		{ID: "seats", Title: "Seats left", Width: 10,
			Value: func(f api.Flight, _ int) string {
				return strconv.Itoa(f.SeatsAvailable)
			}},
	}).WithEmptyText("No flights match the search")

	container := component.NewContainer("flight-search", "Flight search", grid).
		WithPagination(component.NewPagination("flight-search"))

	p.list = newListState("flight-search", container, app.Config.UI.PageSize,
		func(ctx context.Context, q api.ListQuery) (*api.Page[api.Flight], error) {
			return app.Client.SearchFlights(ctx, q, p.criteria)
		})
	p.buildForm()
	return p
}

func (p *FlightSearchPage) buildForm() {
	p.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("From airport ID").Value(&p.fromID).
			Validate(requireInt("from airport")),
		huh.NewInput().Title("To airport ID").Value(&p.toID).
			Validate(requireInt("to airport")),
		huh.NewInput().Title("Date").Value(&p.date).
			Placeholder("2026-09-14").
			Validate(requireDate("date")),
		huh.NewInput().Title("Passengers").Value(&p.passengers).
			Validate(requireInt("passengers")),
	)).WithTheme(p.Theme().HuhTheme())
}

// Focus activates the page, starting on the criteria form
func (p *FlightSearchPage) Focus() tea.Cmd {
	cmd := p.BasePage.Focus()
	if !p.searched {
		p.mode = modeForm
		p.buildForm()
		return tea.Batch(cmd, p.form.Init())
	}
	return tea.Batch(cmd, p.list.container.Focus())
}

// Blur deactivates the page
func (p *FlightSearchPage) Blur() {
	p.BasePage.Blur()
	p.list.container.Blur()
}

// runSearch fixes the criteria and loads the first result page
func (p *FlightSearchPage) runSearch() tea.Cmd {
	fromID, _ := strconv.Atoi(p.fromID)
	toID, _ := strconv.Atoi(p.toID)
	passengers, _ := strconv.Atoi(p.passengers)
	p.criteria = api.FlightSearch{
		FromAirportID: fromID,
		ToAirportID:   toID,
		Date:          p.date,
		Passengers:    passengers,
	}
	p.searched = true
	p.mode = modeList
	p.list.query.Page = 1
	return tea.Batch(p.list.container.Focus(), p.list.Load())
}

// Init implements tea.Model
func (p *FlightSearchPage) Init() tea.Cmd {
	return tea.Batch(p.form.Init(), p.list.container.Init())
}

// Update implements tea.Model
func (p *FlightSearchPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, handled := p.list.Update(msg); handled {
		return p, cmd
	}

	if p.mode == modeForm {
		model, cmd := p.form.Update(msg)
		if form, ok := model.(*huh.Form); ok {
			p.form = form
		}
		if p.form.State == huh.StateCompleted {
			return p, p.runSearch()
		}
		if p.form.State == huh.StateAborted {
			p.buildForm()
			return p, p.form.Init()
		}
		return p, cmd
	}

	// esc returns to the criteria form
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		p.mode = modeForm
		p.buildForm()
		return p, p.form.Init()
	}

	model, cmd := p.list.container.Update(msg)
	if container, ok := model.(*component.Container[api.Flight]); ok {
		p.list.container = container
	}
	return p, cmd
}

// View implements tea.Model
func (p *FlightSearchPage) View() string {
	theme := p.Theme()
	if p.mode == modeForm {
		return theme.Title.Render("Search flights") + "\n\n" + p.form.View()
	}
	view := p.list.container.ViewWidth(p.Width())
	if err := p.list.Err(); err != nil {
		view += "\n" + theme.Error.Render(err.Error())
	}
	view += "\n" + theme.Help.Render("esc to edit the search")
	return view
}
