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

// CitiesPage manages the destination cities
type CitiesPage struct {
	BasePage

	list *listState[api.City]
	mode pageMode

	form    *huh.Form
	input   api.CityInput
	editing int // record being edited, 0 when creating

	confirm  *component.Confirm
	deleting api.City
	detail   api.City
}

// NewCitiesPage builds the cities screen
func NewCitiesPage(app *App) *CitiesPage {
	p := &CitiesPage{
		BasePage: NewBasePage(app, "cities", "Cities"),
		mode:     modeList,
	}

	grid := component.NewGrid("cities", []component.Column[api.City]{
		{ID: "id", Key: "ID", Title: "ID", Width: 6, Sortable: true},
		{ID: "name", Key: "Name", Title: "Name", Sortable: true},
	}).WithEmptyText("No cities found")

	menu := component.NewActionMenu("cities",
		component.CustomAction("create", "New", themes.IconPlus),
		component.ViewAction(),
		component.EditAction(),
		component.DeleteAction(),
	)

	container := component.NewContainer("cities", "Cities", grid).
		WithActions(menu).
		WithPagination(component.NewPagination("cities"))

	p.list = newListState("cities", container, app.Config.UI.PageSize,
		func(ctx context.Context, q api.ListQuery) (*api.Page[api.City], error) {
			return app.Client.ListCities(ctx, q, api.CityFilters{})
		})
	return p
}

// Focus activates the page and loads the first page of rows
func (p *CitiesPage) Focus() tea.Cmd {
	cmd := p.BasePage.Focus()
	p.mode = modeList
	return tea.Batch(cmd, p.list.container.Focus(), p.list.Load())
}

// Blur deactivates the page
func (p *CitiesPage) Blur() {
	p.BasePage.Blur()
	p.list.container.Blur()
}

// openForm shows the create or edit form
func (p *CitiesPage) openForm(city *api.City) {
	p.input = api.CityInput{}
	p.editing = 0
	if city != nil {
		p.input.Name = city.Name
		p.editing = city.ID
	}
	p.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Name").
			Value(&p.input.Name).
			Validate(func(s string) error {
				if s == "" {
					return fmt.Errorf("name is required")
				}
				return nil
			}),
	)).WithTheme(p.Theme().HuhTheme())
	p.mode = modeForm
}

// submitForm runs the pending create or update
func (p *CitiesPage) submitForm() tea.Cmd {
	input := p.input
	client := p.App().Client
	if p.editing > 0 {
		id := p.editing
		return mutate("cities", "updated", func(ctx context.Context) error {
			_, err := client.UpdateCity(ctx, id, input)
			return err
		})
	}
	return mutate("cities", "created", func(ctx context.Context) error {
		_, err := client.CreateCity(ctx, input)
		return err
	})
}

// Init implements tea.Model
func (p *CitiesPage) Init() tea.Cmd {
	return p.list.container.Init()
}

// Update implements tea.Model
func (p *CitiesPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, handled := p.list.Update(msg); handled {
		return p, cmd
	}

	switch msg := msg.(type) {
	case MutationDoneMsg:
		if msg.Source != "cities" {
			return p, nil
		}
		p.mode = modeList
		return p, tea.Batch(mutationStatus("City", msg), p.list.Reload())
	case component.ActionInvokedMsg:
		if msg.Source != "cities" {
			return p, nil
		}
		switch msg.Action {
		case "create":
			p.openForm(nil)
			return p, p.form.Init()
		case "view":
			if city, ok := p.list.container.Grid().CursorRow(); ok {
				p.detail = city
				p.mode = modeDetail
			}
		case "edit":
			if city, ok := p.list.container.Grid().CursorRow(); ok {
				p.openForm(&city)
				return p, p.form.Init()
			}
		case "delete":
			if city, ok := p.list.container.Grid().CursorRow(); ok {
				p.deleting = city
				p.confirm = component.NewConfirm("cities",
					"Delete city",
					fmt.Sprintf("Delete %q? Airports referencing it keep their records.", city.Name),
				).WithDanger()
				p.confirm.FocusState.Focus()
				p.mode = modeConfirm
			}
		}
		return p, nil
	case component.RowSelectedMsg:
		if msg.Source != "cities" {
			return p, nil
		}
		if city, ok := p.list.container.Grid().CursorRow(); ok {
			p.detail = city
			p.mode = modeDetail
		}
		return p, nil
	case component.ConfirmResultMsg:
		if msg.Source != "cities" || p.mode != modeConfirm {
			return p, nil
		}
		p.mode = modeList
		if !msg.Confirmed {
			return p, nil
		}
		id := p.deleting.ID
		client := p.App().Client
		return p, mutate("cities", "deleted", func(ctx context.Context) error {
			return client.DeleteCity(ctx, id)
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
			return p, nil
		}
		return p, nil
	}

	model, cmd := p.list.container.Update(msg)
	if container, ok := model.(*component.Container[api.City]); ok {
		p.list.container = container
	}
	return p, cmd
}

// View implements tea.Model
func (p *CitiesPage) View() string {
	theme := p.Theme()
	switch p.mode {
	case modeForm:
		title := "New city"
		if p.editing > 0 {
			title = "Edit city"
		}
		return theme.Title.Render(title) + "\n\n" + p.form.View()
	case modeConfirm:
		return p.confirm.ViewWidth(p.Width())
	case modeDetail:
		return detailView(theme, "City", [][2]string{
			{"ID", strconv.Itoa(p.detail.ID)},
			{"Name", p.detail.Name},
		})
	}

	view := p.list.container.ViewWidth(p.Width())
	if err := p.list.Err(); err != nil {
		view += "\n" + theme.Error.Render(err.Error())
	}
	return view
}
