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

// RoomsPage manages hotel rooms
type RoomsPage struct {
	BasePage

	list *listState[api.Room]
	mode pageMode

	form     *huh.Form
	hotelID  string
	number   string
	roomType string
	capacity string
	price    string
	editing  int

	confirm  *component.Confirm
	deleting api.Room
	detail   api.Room
}

// NewRoomsPage builds the rooms screen
func NewRoomsPage(app *App) *RoomsPage {
	p := &RoomsPage{
		BasePage: NewBasePage(app, "rooms", "Rooms"),
		mode:     modeList,
	}

	grid := component.NewGrid("rooms", []component.Column[api.Room]{
		{ID: "id", Key: "ID", Title: "ID", Width: 6, Sortable: true},
		{ID: "hotel", Key: "Hotel.Name", Title: "Hotel"},
		{ID: "number", Key: "Number", Title: "Number", Width: 8, Sortable: true},
		{ID: "type", Key: "Type", Title: "Type", Sortable: true},
		{ID: "capacity", Key: "Capacity", Title: "Cap", Width: 5, Sortable: true},
		{ID: "price_per_night", Title: "Price/night", Width: 12, Sortable: true,
			Value: func(r api.Room, _ int) string {
				return fmt.Sprintf("%.2f", r.PricePerNight)
			}},
	}).WithEmptyText("No rooms found")

	menu := component.NewActionMenu("rooms",
		component.CustomAction("create", "New", themes.IconPlus),
		component.ViewAction(),
		component.EditAction(),
		component.DeleteAction(),
	)

	container := component.NewContainer("rooms", "Rooms", grid).
		WithActions(menu).
		WithPagination(component.NewPagination("rooms"))

	p.list = newListState("rooms", container, app.Config.UI.PageSize,
		func(ctx context.Context, q api.ListQuery) (*api.Page[api.Room], error) {
			return app.Client.ListRooms(ctx, q, api.RoomFilters{})
		})
	return p
}

// Focus activates the page and loads the first page of rows
func (p *RoomsPage) Focus() tea.Cmd {
	cmd := p.BasePage.Focus()
	p.mode = modeList
	return tea.Batch(cmd, p.list.container.Focus(), p.list.Load())
}

// Blur deactivates the page
func (p *RoomsPage) Blur() {
	p.BasePage.Blur()
	p.list.container.Blur()
}

func (p *RoomsPage) openForm(r *api.Room) {
	p.hotelID, p.number, p.roomType, p.capacity, p.price = "", "", "", "", ""
	p.editing = 0
	if r != nil {
		p.hotelID = strconv.Itoa(r.HotelID)
		p.number = r.Number
		p.roomType = r.Type
		p.capacity = strconv.Itoa(r.Capacity)
		p.price = strconv.FormatFloat(r.PricePerNight, 'f', 2, 64)
		p.editing = r.ID
	}
	p.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Hotel ID").Value(&p.hotelID).
			Validate(requireInt("hotel id")),
		huh.NewInput().Title("Room number").Value(&p.number).
			Validate(requireText("room number")),
		huh.NewSelect[string]().Title("Type").Value(&p.roomType).
			Options(
				huh.NewOption("Single", "single"),
				huh.NewOption("Double", "double"),
				huh.NewOption("Twin", "twin"),
				huh.NewOption("Suite", "suite"),
			),
		huh.NewInput().Title("Capacity").Value(&p.capacity).
			Validate(requireInt("capacity")),
		huh.NewInput().Title("Price per night").Value(&p.price).
			Validate(requireFloat("price")),
	)).WithTheme(p.Theme().HuhTheme())
	p.mode = modeForm
}

func (p *RoomsPage) submitForm() tea.Cmd {
	hotelID, _ := strconv.Atoi(p.hotelID)
	capacity, _ := strconv.Atoi(p.capacity)
	price, _ := strconv.ParseFloat(p.price, 64)
	input := api.RoomInput{
		HotelID:       hotelID,
		Number:        p.number,
		Type:          p.roomType,
		Capacity:      capacity,
		PricePerNight: price,
	}
	client := p.App().Client
	if p.editing > 0 {
		id := p.editing
		return mutate("rooms", "updated", func(ctx context.Context) error {
			_, err := client.UpdateRoom(ctx, id, input)
			return err
		})
	}
	return mutate("rooms", "created", func(ctx context.Context) error {
		_, err := client.CreateRoom(ctx, input)
		return err
	})
}

// Init implements tea.Model
func (p *RoomsPage) Init() tea.Cmd {
	return p.list.container.Init()
}

// Update implements tea.Model
func (p *RoomsPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, handled := p.list.Update(msg); handled {
		return p, cmd
	}

	switch msg := msg.(type) {
	case MutationDoneMsg:
		if msg.Source != "rooms" {
			return p, nil
		}
		p.mode = modeList
		return p, tea.Batch(mutationStatus("Room", msg), p.list.Reload())
	case component.ActionInvokedMsg:
		if msg.Source != "rooms" {
			return p, nil
		}
		switch msg.Action {
		case "create":
			p.openForm(nil)
			return p, p.form.Init()
		case "view":
			if r, ok := p.list.container.Grid().CursorRow(); ok {
				p.detail = r
				p.mode = modeDetail
			}
		case "edit":
			if r, ok := p.list.container.Grid().CursorRow(); ok {
				p.openForm(&r)
				return p, p.form.Init()
			}
		case "delete":
			if r, ok := p.list.container.Grid().CursorRow(); ok {
				p.deleting = r
				p.confirm = component.NewConfirm("rooms",
					"Delete room",
					fmt.Sprintf("Delete room %s?", r.Number),
				).WithDanger()
				p.confirm.FocusState.Focus()
				p.mode = modeConfirm
			}
		}
		return p, nil
	case component.RowSelectedMsg:
		if msg.Source != "rooms" {
			return p, nil
		}
		if r, ok := p.list.container.Grid().CursorRow(); ok {
			p.detail = r
			p.mode = modeDetail
		}
		return p, nil
	case component.ConfirmResultMsg:
		if msg.Source != "rooms" || p.mode != modeConfirm {
			return p, nil
		}
		p.mode = modeList
		if !msg.Confirmed {
			return p, nil
		}
		id := p.deleting.ID
		client := p.App().Client
		return p, mutate("rooms", "deleted", func(ctx context.Context) error {
			return client.DeleteRoom(ctx, id)
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
	if container, ok := model.(*component.Container[api.Room]); ok {
		p.list.container = container
	}
	return p, cmd
}

// View implements tea.Model
func (p *RoomsPage) View() string {
	theme := p.Theme()
	switch p.mode {
	case modeForm:
		title := "New room"
		if p.editing > 0 {
			title = "Edit room"
		}
		return theme.Title.Render(title) + "\n\n" + p.form.View()
	case modeConfirm:
		return p.confirm.ViewWidth(p.Width())
	case modeDetail:
		hotel := ""
		if p.detail.Hotel != nil {
			hotel = p.detail.Hotel.Name
		}
		return detailView(theme, "Room", [][2]string{
			{"ID", strconv.Itoa(p.detail.ID)},
			{"Hotel", hotel},
			{"Number", p.detail.Number},
			{"Type", p.detail.Type},
			{"Capacity", strconv.Itoa(p.detail.Capacity)},
			{"Price/night", fmt.Sprintf("%.2f", p.detail.PricePerNight)},
		})
	}

	view := p.list.container.ViewWidth(p.Width())
	if err := p.list.Err(); err != nil {
		view += "\n" + theme.Error.Render(err.Error())
	}
	return view
}
