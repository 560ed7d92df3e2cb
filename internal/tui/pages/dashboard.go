package pages

import (
	"context"
	"fmt"
	"strings"

	"tripdesk/internal/api"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// dashboardLoadedMsg carries the dashboard summary
type dashboardLoadedMsg struct {
	me     *api.User
	counts map[string]int
	err    error
}

// DashboardPage shows the signed-in account and collection totals
type DashboardPage struct {
	BasePage

	me      *api.User
	counts  map[string]int
	loading bool
	err     error
}

// NewDashboardPage builds the dashboard screen
func NewDashboardPage(app *App) *DashboardPage {
	return &DashboardPage{
		BasePage: NewBasePage(app, "dashboard", "Dashboard"),
	}
}

// Focus activates the page and refreshes the summary
func (p *DashboardPage) Focus() tea.Cmd {
	cmd := p.BasePage.Focus()
	return tea.Batch(cmd, p.load())
}

// load fetches the account and the first page of each collection to
// read its total
func (p *DashboardPage) load() tea.Cmd {
	p.loading = true
	client := p.App().Client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		me, err := client.Me(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}

		// per_page 1 keeps the count probes cheap
		probe := api.ListQuery{Page: 1, PerPage: 1}
		counts := map[string]int{}
		if page, err := client.ListCities(ctx, probe, api.CityFilters{}); err == nil {
			counts["Cities"] = page.Total
		}
		if page, err := client.ListAirports(ctx, probe, api.AirportFilters{}); err == nil {
			counts["Airports"] = page.Total
		}
		if page, err := client.ListFlights(ctx, probe, api.FlightFilters{}); err == nil {
			counts["Flights"] = page.Total
		}
		if page, err := client.ListHotels(ctx, probe, api.HotelFilters{}); err == nil {
			counts["Hotels"] = page.Total
		}
		if page, err := client.ListRooms(ctx, probe, api.RoomFilters{}); err == nil {
			counts["Rooms"] = page.Total
		}
		if page, err := client.ListUsers(ctx, probe, api.UserFilters{}); err == nil {
			counts["Users"] = page.Total
		}
		return dashboardLoadedMsg{me: me, counts: counts}
	}
}

// Init implements tea.Model
func (p *DashboardPage) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (p *DashboardPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		p.loading = false
		p.me = msg.me
		p.counts = msg.counts
		p.err = msg.err
		if msg.err != nil && api.IsUnauthorized(msg.err) {
			return p, StatusError(fmt.Errorf("session expired, run tripdesk login"))
		}
	case tea.KeyMsg:
		if p.Active() && msg.String() == "r" {
			return p, p.load()
		}
	}
	return p, nil
}

// View implements tea.Model
func (p *DashboardPage) View() string {
	theme := p.Theme()

	var b strings.Builder
	b.WriteString(theme.Title.Render("Dashboard"))
	b.WriteString("\n\n")

	switch {
	case p.loading:
		b.WriteString(theme.Info.Render("Loading summary…"))
	case p.err != nil:
		b.WriteString(theme.Error.Render(p.err.Error()))
	default:
		if p.me != nil {
			b.WriteString(fmt.Sprintf("Signed in as %s <%s>",
				theme.Selected.Render(p.me.Name), p.me.Email))
			if roles := p.me.RoleNames(); len(roles) > 0 {
				b.WriteString("  " + theme.Subtitle.Render(strings.Join(roles, ", ")))
			}
			b.WriteString("\n\n")
		}
		b.WriteString(theme.Subtitle.Render("Backend: ") + p.App().Client.BaseURL())
		b.WriteString("\n\n")

		if len(p.counts) > 0 {
			var cards []string
			for _, name := range []string{"Cities", "Airports", "Flights", "Hotels", "Rooms", "Users"} {
				total, ok := p.counts[name]
				if !ok {
					continue
				}
				card := lipgloss.JoinVertical(lipgloss.Center,
					theme.Title.Render(fmt.Sprintf("%d", total)),
					theme.Subtitle.Render(name),
				)
				cards = append(cards, theme.MenuContainer.Render(card))
			}
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
			b.WriteString("\n")
		}
		b.WriteString("\n" + theme.Help.Render("r to refresh"))
	}
	return b.String()
}
