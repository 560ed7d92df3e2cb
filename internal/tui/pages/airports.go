package pages

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"tripdesk/internal/api"
	"tripdesk/internal/tui/component"
	"tripdesk/internal/tui/themes"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// AirportsPage manages airports
type AirportsPage struct {
	BasePage

	list *listState[api.Airport]
	mode pageMode

	form    *huh.Form
	name    string
	code    string
	cityID  string
	editing int

	confirm  *component.Confirm
	deleting api.Airport
	detail   api.Airport
}

// NewAirportsPage builds the airports screen
func NewAirportsPage(app *App) *AirportsPage {
	p := &AirportsPage{
		BasePage: NewBasePage(app, "airports", "Airports"),
		mode:     modeList,
	}

	grid := component.NewGrid("airports", []component.Column[api.Airport]{
		{ID: "id", Key: "ID", Title: "ID", Width: 6, Sortable: true},
		{ID: "name", Key: "Name", Title: "Name", Sortable: true},
		{ID: "code", Key: "Code", Title: "Code", Width: 6, Sortable: true},
		{ID: "city", Key: "City.Name", Title: "City"},
	}).WithEmptyText("No airports found")

	menu := component.NewActionMenu("airports",
		component.CustomAction("create", "New", themes.IconPlus),
		component.ViewAction(),
		component.EditAction(),
		component.DeleteAction(),
	)

	container := component.NewContainer("airports", "Airports", grid).
		WithActions(menu).
		WithPagination(component.NewPagination("airports"))

	p.list = newListState("airports", container, app.Config.UI.PageSize,
		func(ctx context.Context, q api.ListQuery) (*api.Page[api.Airport], error) {
			return app.Client.ListAirports(ctx, q, api.AirportFilters{})
		})
	return p
}

// Focus activates the page and loads the first page of rows
func (p *AirportsPage) Focus() tea.Cmd {
	cmd := p.BasePage.Focus()
	p.mode = modeList
	return tea.Batch(cmd, p.list.container.Focus(), p.list.Load())
}

// Blur deactivates the page
func (p *AirportsPage) Blur() {
	p.BasePage.Blur()
	p.list.container.Blur()
}

func (p *AirportsPage) openForm(a *api.Airport) {
	p.name, p.code, p.cityID = "", "", ""
	p.editing = 0
	if a != nil {
		p.name = a.Name
		p.code = a.Code
		p.cityID = strconv.Itoa(a.CityID)
		p.editing = a.ID
	}
	p.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Name").Value(&p.name).
			Validate(requireText("name")),
		huh.NewInput().Title("IATA code").Value(&p.code).CharLimit(3).
			Validate(func(s string) error {
				if len(strings.TrimSpace(s)) != 3 {
					return fmt.Errorf("code must be three letters")
				}
				return nil
			}),
		huh.NewInput().Title("City ID").Value(&p.cityID).
			Validate(requireInt("city id")),
	)).WithTheme(p.Theme().HuhTheme())
	p.mode = modeForm
}

func (p *AirportsPage) submitForm() tea.Cmd {
	cityID, _ := strconv.Atoi(p.cityID)
	input := api.AirportInput{
		Name:   p.name,
		Code:   strings.ToUpper(strings.TrimSpace(p.code)),
		CityID: cityID,
	}
	client := p.App().Client
	if p.editing > 0 {
		id := p.editing
		return mutate("airports", "updated", func(ctx context.Context) error {
			_, err := client.UpdateAirport(ctx, id, input)
			return err
		})
	}
	return mutate("airports", "created", func(ctx context.Context) error {
		_, err := client.CreateAirport(ctx, input)
		return err
	})
}

// Init implements tea.Model
func (p *AirportsPage) Init() tea.Cmd {
	return p.list.container.Init()
}

// Update implements tea.Model
func (p *AirportsPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, handled := p.list.Update(msg); handled {
		return p, cmd
	}

	switch msg := msg.(type) {
	case MutationDoneMsg:
		if msg.Source != "airports" {
			return p, nil
		}
		p.mode = modeList
		return p, tea.Batch(mutationStatus("Airport", msg), p.list.Reload())
	case component.ActionInvokedMsg:
		if msg.Source != "airports" {
			return p, nil
		}
		switch msg.Action {
		case "create":
			p.openForm(nil)
			return p, p.form.Init()
		case "view":
			if a, ok := p.list.container.Grid().CursorRow(); ok {
				p.detail = a
				p.mode = modeDetail
			}
		case "edit":
			if a, ok := p.list.container.Grid().CursorRow(); ok {
				p.openForm(&a)
				return p, p.form.Init()
			}
		case "delete":
			if a, ok := p.list.container.Grid().CursorRow(); ok {
				p.deleting = a
				p.confirm = component.NewConfirm("airports",
					"Delete airport",
					fmt.Sprintf("Delete %s (%s)? Flights using it will fail to resolve.", a.Name, a.Code),
				).WithDanger()
				p.confirm.FocusState.Focus()
				p.mode = modeConfirm
			}
		}
		return p, nil
	case component.RowSelectedMsg:
		if msg.Source != "airports" {
			return p, nil
		}
		if a, ok := p.list.container.Grid().CursorRow(); ok {
			p.detail = a
			p.mode = modeDetail
		}
		return p, nil
	case component.ConfirmResultMsg:
		if msg.Source != "airports" || p.mode != modeConfirm {
			return p, nil
		}
		p.mode = modeList
		if !msg.Confirmed {
			return p, nil
		}
		id := p.deleting.ID
		client := p.App().Client
		return p, mutate("airports", "deleted", func(ctx context.Context) error {
			return client.DeleteAirport(ctx, id)
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
	if container, ok := model.(*component.Container[api.Airport]); ok {
		p.list.container = container
	}
	return p, cmd
}

// View implements tea.Model
func (p *AirportsPage) View() string {
	theme := p.Theme()
	switch p.mode {
	case modeForm:
		title := "New airport"
		if p.editing > 0 {
			title = "Edit airport"
		}
		return theme.Title.Render(title) + "\n\n" + p.form.View()
	case modeConfirm:
		return p.confirm.ViewWidth(p.Width())
	case modeDetail:
		city := ""
		if p.detail.City != nil {
			city = p.detail.City.Name
		}
		return detailView(theme, "Airport", [][2]string{
			{"ID", strconv.Itoa(p.detail.ID)},
			{"Name", p.detail.Name},
			{"Code", p.detail.Code},
			{"City", city},
		})
	}

	view := p.list.container.ViewWidth(p.Width())
	if err := p.list.Err(); err != nil {
		view += "\n" + theme.Error.Render(err.Error())
	}
	return view
}
