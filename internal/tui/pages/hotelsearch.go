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

// HotelSearchPage runs the public hotel search
type HotelSearchPage struct {
	BasePage

	list *listState[api.Hotel]
	mode pageMode

	form     *huh.Form
	cityID   string
	checkIn  string
	checkOut string
	guests   string
	criteria api.HotelSearch
	searched bool
}

// NewHotelSearchPage builds the hotel-search screen
func NewHotelSearchPage(app *App) *HotelSearchPage {
	p := &HotelSearchPage{
		BasePage: NewBasePage(app, "hotel-search", "Hotel search"),
		mode:     modeForm,
	}

	grid := component.NewGrid("hotel-search", []component.Column[api.Hotel]{
		{ID: "name", Key: "Name", Title: "Hotel", Sortable: true},
		{ID: "city", Key: "City.Name", Title: "City"},
		{ID: "stars", Title: "Stars", Width: 7, Sortable: true,
			Value: func(h api.Hotel, _ int) string { return starRating(h.Stars) }},
		{ID: "address", Key: "Address", Title: "Address"},
	}).WithEmptyText("No hotels match the search")

	container := component.NewContainer("hotel-search", "Hotel search", grid).
		WithPagination(component.NewPagination("hotel-search"))

	p.list = newListState("hotel-search", container, app.Config.UI.PageSize,
		func(ctx context.Context, q api.ListQuery) (*api.Page[api.Hotel], error) {
			return app.Client.SearchHotels(ctx, q, p.criteria)
		})
	p.buildForm()
	return p
}

func (p *HotelSearchPage) buildForm() {
	p.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("City ID").Value(&p.cityID).
			Validate(requireInt("city")),
		huh.NewInput().Title("Check-in").Value(&p.checkIn).
			Placeholder("2026-09-14").
			Validate(requireDate("check-in")),
		huh.NewInput().Title("Check-out").Value(&p.checkOut).
			Placeholder("2026-09-18").
			Validate(func(s string) error {
				if err := requireDate("check-out")(s); err != nil {
					return err
				}
				if p.checkIn != "" && s <= p.checkIn {
					return fmt.Errorf("check-out must be after check-in")
				}
				return nil
			}),
		huh.NewInput().Title("Guests").Value(&p.guests).
			Validate(requireInt("guests")),
	)).WithTheme(p.Theme().HuhTheme())
}

// Focus activates the page, starting on the criteria form
func (p *HotelSearchPage) Focus() tea.Cmd {
	cmd := p.BasePage.Focus()
	if !p.searched {
		p.mode = modeForm
		p.buildForm()
		return tea.Batch(cmd, p.form.Init())
	}
	return tea.Batch(cmd, p.list.container.Focus())
}

// Blur deactivates the page
func (p *HotelSearchPage) Blur() {
	p.BasePage.Blur()
	p.list.container.Blur()
}

func (p *HotelSearchPage) runSearch() tea.Cmd {
	cityID, _ := strconv.Atoi(p.cityID)
	guests, _ := strconv.Atoi(p.guests)
	p.criteria = api.HotelSearch{
		CityID:   cityID,
		CheckIn:  p.checkIn,
		CheckOut: p.checkOut,
		Guests:   guests,
	}
	p.searched = true
	p.mode = modeList
	p.list.query.Page = 1
	return tea.Batch(p.list.container.Focus(), p.list.Load())
}

// Init implements tea.Model
func (p *HotelSearchPage) Init() tea.Cmd {
	return tea.Batch(p.form.Init(), p.list.container.Init())
}

// Update implements tea.Model
func (p *HotelSearchPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		p.mode = modeForm
		p.buildForm()
		return p, p.form.Init()
	}

	model, cmd := p.list.container.Update(msg)
	if container, ok := model.(*component.Container[api.Hotel]); ok {
		p.list.container = container
	}
	return p, cmd
}

// View implements tea.Model
func (p *HotelSearchPage) View() string {
	theme := p.Theme()
	if p.mode == modeForm {
		return theme.Title.Render("Search hotels") + "\n\n" + p.form.View()
	}
	view := p.list.container.ViewWidth(p.Width())
	if err := p.list.Err(); err != nil {
		view += "\n" + theme.Error.Render(err.Error())
	}
	view += "\n" + theme.Help.Render("esc to edit the search")
	return view
}
