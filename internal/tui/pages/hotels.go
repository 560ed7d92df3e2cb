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

// starRating renders a hotel's star count as glyphs
func starRating(stars int) string {
	if stars <= 0 {
		return ""
	}
	return strings.Repeat(themes.IconStar, clampInt(stars, 1, 5))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// HotelsPage manages hotels
type HotelsPage struct {
	BasePage

	list *listState[api.Hotel]
	mode pageMode

	form        *huh.Form
	name        string
	address     string
	stars       string
	description string
	cityID      string
	editing     int

	confirm  *component.Confirm
	deleting api.Hotel
	detail   api.Hotel
}

// NewHotelsPage builds the hotels screen
func NewHotelsPage(app *App) *HotelsPage {
	p := &HotelsPage{
		BasePage: NewBasePage(app, "hotels", "Hotels"),
		mode:     modeList,
	}

	grid := component.NewGrid("hotels", []component.Column[api.Hotel]{
		{ID: "id", Key: "ID", Title: "ID", Width: 6, Sortable: true},
		{ID: "name", Key: "Name", Title: "Name", Sortable: true},
		{ID: "city", Key: "City.Name", Title: "City"},
		{ID: "stars", Key: "Stars", Title: "Stars", Width: 7, Sortable: true,
			Render: func(_ string, h api.Hotel, _ int) string { return starRating(h.Stars) }},
		{ID: "address", Key: "Address", Title: "Address"},
	}).WithEmptyText("No hotels found")

	menu := component.NewActionMenu("hotels",
		component.CustomAction("create", "New", themes.IconPlus),
		component.ViewAction(),
		component.EditAction(),
		component.DeleteAction(),
	)

	container := component.NewContainer("hotels", "Hotels", grid).
		WithActions(menu).
		WithPagination(component.NewPagination("hotels"))

	p.list = newListState("hotels", container, app.Config.UI.PageSize,
		func(ctx context.Context, q api.ListQuery) (*api.Page[api.Hotel], error) {
			return app.Client.ListHotels(ctx, q, api.HotelFilters{})
		})
	return p
}

// Focus activates the page and loads the first page of rows
func (p *HotelsPage) Focus() tea.Cmd {
	cmd := p.BasePage.Focus()
	p.mode = modeList
	return tea.Batch(cmd, p.list.container.Focus(), p.list.Load())
}

// Blur deactivates the page
func (p *HotelsPage) Blur() {
	p.BasePage.Blur()
	p.list.container.Blur()
}

func (p *HotelsPage) openForm(h *api.Hotel) {
	p.name, p.address, p.stars, p.description, p.cityID = "", "", "", "", ""
	p.editing = 0
	if h != nil {
		p.name = h.Name
		p.address = h.Address
		p.stars = strconv.Itoa(h.Stars)
		p.description = h.Description
		p.cityID = strconv.Itoa(h.CityID)
		p.editing = h.ID
	}
	p.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Name").Value(&p.name).
			Validate(requireText("name")),
		huh.NewInput().Title("Address").Value(&p.address).
			Validate(requireText("address")),
		huh.NewInput().Title("Stars (1-5)").Value(&p.stars).
			Validate(func(s string) error {
				n, err := strconv.Atoi(strings.TrimSpace(s))
				if err != nil || n < 1 || n > 5 {
					return fmt.Errorf("stars must be between 1 and 5")
				}
				return nil
			}),
		huh.NewText().Title("Description").Value(&p.description),
		huh.NewInput().Title("City ID").Value(&p.cityID).
			Validate(requireInt("city id")),
	)).WithTheme(p.Theme().HuhTheme())
	p.mode = modeForm
}

func (p *HotelsPage) submitForm() tea.Cmd {
	stars, _ := strconv.Atoi(p.stars)
	cityID, _ := strconv.Atoi(p.cityID)
	input := api.HotelInput{
		Name:        p.name,
		Address:     p.address,
		Stars:       stars,
		Description: p.description,
		CityID:      cityID,
	}
	client := p.App().Client
	if p.editing > 0 {
		id := p.editing
		return mutate("hotels", "updated", func(ctx context.Context) error {
			_, err := client.UpdateHotel(ctx, id, input)
			return err
		})
	}
	return mutate("hotels", "created", func(ctx context.Context) error {
		_, err := client.CreateHotel(ctx, input)
		return err
	})
}

// Init implements tea.Model
func (p *HotelsPage) Init() tea.Cmd {
	return p.list.container.Init()
}

// Update implements tea.Model
func (p *HotelsPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, handled := p.list.Update(msg); handled {
		return p, cmd
	}

	switch msg := msg.(type) {
	case MutationDoneMsg:
		if msg.Source != "hotels" {
			return p, nil
		}
		p.mode = modeList
		return p, tea.Batch(mutationStatus("Hotel", msg), p.list.Reload())
	case component.ActionInvokedMsg:
		if msg.Source != "hotels" {
			return p, nil
		}
		switch msg.Action {
		case "create":
			p.openForm(nil)
			return p, p.form.Init()
		case "view":
			if h, ok := p.list.container.Grid().CursorRow(); ok {
				p.detail = h
				p.mode = modeDetail
			}
		case "edit":
			if h, ok := p.list.container.Grid().CursorRow(); ok {
				p.openForm(&h)
				return p, p.form.Init()
			}
		case "delete":
			if h, ok := p.list.container.Grid().CursorRow(); ok {
				p.deleting = h
				p.confirm = component.NewConfirm("hotels",
					"Delete hotel",
					fmt.Sprintf("Delete %q and all of its rooms?", h.Name),
				).WithDanger()
				p.confirm.FocusState.Focus()
				p.mode = modeConfirm
			}
		}
		return p, nil
	case component.RowSelectedMsg:
		if msg.Source != "hotels" {
			return p, nil
		}
		if h, ok := p.list.container.Grid().CursorRow(); ok {
			p.detail = h
			p.mode = modeDetail
		}
		return p, nil
	case component.ConfirmResultMsg:
		if msg.Source != "hotels" || p.mode != modeConfirm {
			return p, nil
		}
		p.mode = modeList
		if !msg.Confirmed {
			return p, nil
		}
		id := p.deleting.ID
		client := p.App().Client
		return p, mutate("hotels", "deleted", func(ctx context.Context) error {
			return client.DeleteHotel(ctx, id)
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
	if container, ok := model.(*component.Container[api.Hotel]); ok {
		p.list.container = container
	}
	return p, cmd
}

// View implements tea.Model
func (p *HotelsPage) View() string {
	theme := p.Theme()
	switch p.mode {
	case modeForm:
		title := "New hotel"
		if p.editing > 0 {
			title = "Edit hotel"
		}
		return theme.Title.Render(title) + "\n\n" + p.form.View()
	case modeConfirm:
		return p.confirm.ViewWidth(p.Width())
	case modeDetail:
		city := ""
		if p.detail.City != nil {
			city = p.detail.City.Name
		}
		return detailView(theme, "Hotel", [][2]string{
			{"ID", strconv.Itoa(p.detail.ID)},
			{"Name", p.detail.Name},
			{"City", city},
			{"Stars", starRating(p.detail.Stars)},
			{"Address", p.detail.Address},
			{"Description", p.detail.Description},
		})
	}

	view := p.list.container.ViewWidth(p.Width())
	if err := p.list.Err(); err != nil {
		view += "\n" + theme.Error.Render(err.Error())
	}
	return view
}
