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

// permissionNames joins a role's permission names for display
func permissionNames(r api.Role) string {
	names := make([]string, 0, len(r.Permissions))
	for _, perm := range r.Permissions {
		names = append(names, perm.Name)
	}
	return strings.Join(names, ", ")
}

// RolesPage manages roles and their permission grants
type RolesPage struct {
	BasePage

	list *listState[api.Role]
	mode pageMode

	form    *huh.Form
	name    string
	permIDs string
	editing int

	confirm  *component.Confirm
	deleting api.Role
	detail   api.Role
}

// NewRolesPage builds the roles screen
func NewRolesPage(app *App) *RolesPage {
	p := &RolesPage{
		BasePage: NewBasePage(app, "roles", "Roles"),
		mode:     modeList,
	}

	grid := component.NewGrid("roles", []component.Column[api.Role]{
		{ID: "id", Key: "ID", Title: "ID", Width: 6, Sortable: true},
		{ID: "name", Key: "Name", Title: "Name", Sortable: true},
		{ID: "permissions", Title: "Permissions",
			Value: func(r api.Role, _ int) string { return permissionNames(r) }},
	}).WithEmptyText("No roles found")

	menu := component.NewActionMenu("roles",
		component.CustomAction("create", "New", themes.IconPlus),
		component.ViewAction(),
		component.EditAction(),
		component.DeleteAction(),
	)

	container := component.NewContainer("roles", "Roles", grid).
		WithActions(menu).
		WithPagination(component.NewPagination("roles"))

	p.list = newListState("roles", container, app.Config.UI.PageSize,
		func(ctx context.Context, q api.ListQuery) (*api.Page[api.Role], error) {
			return app.Client.ListRoles(ctx, q, api.RoleFilters{})
		})
	return p
}

// Focus activates the page and loads the first page of rows
func (p *RolesPage) Focus() tea.Cmd {
	cmd := p.BasePage.Focus()
	p.mode = modeList
	return tea.Batch(cmd, p.list.container.Focus(), p.list.Load())
}

// Blur deactivates the page
func (p *RolesPage) Blur() {
	p.BasePage.Blur()
	p.list.container.Blur()
}

func (p *RolesPage) openForm(r *api.Role) {
	p.name, p.permIDs = "", ""
	p.editing = 0
	if r != nil {
		p.name = r.Name
		ids := make([]string, 0, len(r.Permissions))
		for _, perm := range r.Permissions {
			ids = append(ids, strconv.Itoa(perm.ID))
		}
		p.permIDs = strings.Join(ids, ", ")
		p.editing = r.ID
	}
	p.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Name").Value(&p.name).
			Validate(requireText("name")),
		huh.NewInput().Title("Permission IDs").Value(&p.permIDs).
			Placeholder("1, 4, 7").
			Description("Replaces the role's permission set").
			Validate(func(s string) error {
				_, err := parseIDList(s)
				return err
			}),
	)).WithTheme(p.Theme().HuhTheme())
	p.mode = modeForm
}

func (p *RolesPage) submitForm() tea.Cmd {
	permIDs, _ := parseIDList(p.permIDs)
	input := api.RoleInput{Name: p.name, PermissionIDs: permIDs}
	client := p.App().Client
	if p.editing > 0 {
		id := p.editing
		return mutate("roles", "updated", func(ctx context.Context) error {
			_, err := client.UpdateRole(ctx, id, input)
			return err
		})
	}
	return mutate("roles", "created", func(ctx context.Context) error {
		_, err := client.CreateRole(ctx, input)
		return err
	})
}

// Init implements tea.Model
func (p *RolesPage) Init() tea.Cmd {
	return p.list.container.Init()
}

// Update implements tea.Model
func (p *RolesPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, handled := p.list.Update(msg); handled {
		return p, cmd
	}

	switch msg := msg.(type) {
	case MutationDoneMsg:
		if msg.Source != "roles" {
			return p, nil
		}
		p.mode = modeList
		return p, tea.Batch(mutationStatus("Role", msg), p.list.Reload())
	case component.ActionInvokedMsg:
		if msg.Source != "roles" {
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
				p.confirm = component.NewConfirm("roles",
					"Delete role",
					fmt.Sprintf("Delete role %q? Users holding it lose its permissions.", r.Name),
				).WithDanger()
				p.confirm.FocusState.Focus()
				p.mode = modeConfirm
			}
		}
		return p, nil
	case component.RowSelectedMsg:
		if msg.Source != "roles" {
			return p, nil
		}
		if r, ok := p.list.container.Grid().CursorRow(); ok {
			p.detail = r
			p.mode = modeDetail
		}
		return p, nil
	case component.ConfirmResultMsg:
		if msg.Source != "roles" || p.mode != modeConfirm {
			return p, nil
		}
		p.mode = modeList
		if !msg.Confirmed {
			return p, nil
		}
		id := p.deleting.ID
		client := p.App().Client
		return p, mutate("roles", "deleted", func(ctx context.Context) error {
			return client.DeleteRole(ctx, id)
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
	if container, ok := model.(*component.Container[api.Role]); ok {
		p.list.container = container
	}
	return p, cmd
}

// View implements tea.Model
func (p *RolesPage) View() string {
	theme := p.Theme()
	switch p.mode {
	case modeForm:
		title := "New role"
		if p.editing > 0 {
			title = "Edit role"
		}
		return theme.Title.Render(title) + "\n\n" + p.form.View()
	case modeConfirm:
		return p.confirm.ViewWidth(p.Width())
	case modeDetail:
		return detailView(theme, "Role", [][2]string{
			{"ID", strconv.Itoa(p.detail.ID)},
			{"Name", p.detail.Name},
			{"Permissions", permissionNames(p.detail)},
		})
	}

	view := p.list.container.ViewWidth(p.Width())
	if err := p.list.Err(); err != nil {
		view += "\n" + theme.Error.Render(err.Error())
	}
	return view
}
