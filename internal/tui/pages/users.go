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

// UsersPage manages platform accounts
type UsersPage struct {
	BasePage

	list *listState[api.User]
	mode pageMode

	form     *huh.Form
	name     string
	email    string
	password string
	roleIDs  string
	editing  int

	confirm  *component.Confirm
	deleting api.User
	detail   api.User
}

// NewUsersPage builds the users screen
func NewUsersPage(app *App) *UsersPage {
	p := &UsersPage{
		BasePage: NewBasePage(app, "users", "Users"),
		mode:     modeList,
	}

	grid := component.NewGrid("users", []component.Column[api.User]{
		{ID: "id", Key: "ID", Title: "ID", Width: 6, Sortable: true},
		{ID: "name", Key: "Name", Title: "Name", Sortable: true},
		{ID: "email", Key: "Email", Title: "Email", Sortable: true},
		{ID: "roles", Title: "Roles",
			Value: func(u api.User, _ int) string {
				return strings.Join(u.RoleNames(), ", ")
			}},
	}).WithEmptyText("No users found")

	menu := component.NewActionMenu("users",
		component.CustomAction("create", "New", themes.IconPlus),
		component.ViewAction(),
		component.EditAction(),
		component.DeleteAction(),
	)

	container := component.NewContainer("users", "Users", grid).
		WithActions(menu).
		WithPagination(component.NewPagination("users"))

	p.list = newListState("users", container, app.Config.UI.PageSize,
		func(ctx context.Context, q api.ListQuery) (*api.Page[api.User], error) {
			return app.Client.ListUsers(ctx, q, api.UserFilters{})
		})
	return p
}

// Focus activates the page and loads the first page of rows
func (p *UsersPage) Focus() tea.Cmd {
	cmd := p.BasePage.Focus()
	p.mode = modeList
	return tea.Batch(cmd, p.list.container.Focus(), p.list.Load())
}

// Blur deactivates the page
func (p *UsersPage) Blur() {
	p.BasePage.Blur()
	p.list.container.Blur()
}

func (p *UsersPage) openForm(u *api.User) {
	p.name, p.email, p.password, p.roleIDs = "", "", "", ""
	p.editing = 0
	passwordLabel := "Password"
	if u != nil {
		p.name = u.Name
		p.email = u.Email
		ids := make([]string, 0, len(u.Roles))
		for _, r := range u.Roles {
			ids = append(ids, strconv.Itoa(r.ID))
		}
		p.roleIDs = strings.Join(ids, ", ")
		p.editing = u.ID
		passwordLabel = "Password (leave empty to keep)"
	}
	passwordValidate := func(s string) error {
		if p.editing > 0 && s == "" {
			return nil
		}
		if len(s) < 8 {
			return fmt.Errorf("password must be at least 8 characters")
		}
		return nil
	}
	p.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Name").Value(&p.name).
			Validate(requireText("name")),
		huh.NewInput().Title("Email").Value(&p.email).
			Validate(func(s string) error {
				if !strings.Contains(s, "@") {
					return fmt.Errorf("email must be an address")
				}
				return nil
			}),
		huh.NewInput().Title(passwordLabel).Value(&p.password).
			EchoMode(huh.EchoModePassword).
			Validate(passwordValidate),
		huh.NewInput().Title("Role IDs").Value(&p.roleIDs).
			Placeholder("1, 2").
			Description("Replaces the user's roles").
			Validate(func(s string) error {
				_, err := parseIDList(s)
				return err
			}),
	)).WithTheme(p.Theme().HuhTheme())
	p.mode = modeForm
}

func (p *UsersPage) submitForm() tea.Cmd {
	roleIDs, _ := parseIDList(p.roleIDs)
	input := api.UserInput{
		Name:     p.name,
		Email:    p.email,
		Password: p.password,
		RoleIDs:  roleIDs,
	}
	client := p.App().Client
	if p.editing > 0 {
		id := p.editing
		return mutate("users", "updated", func(ctx context.Context) error {
			_, err := client.UpdateUser(ctx, id, input)
			return err
		})
	}
	return mutate("users", "created", func(ctx context.Context) error {
		_, err := client.CreateUser(ctx, input)
		return err
	})
}

// Init implements tea.Model
func (p *UsersPage) Init() tea.Cmd {
	return p.list.container.Init()
}

// Update implements tea.Model
func (p *UsersPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, handled := p.list.Update(msg); handled {
		return p, cmd
	}

	switch msg := msg.(type) {
	case MutationDoneMsg:
		if msg.Source != "users" {
			return p, nil
		}
		p.mode = modeList
		return p, tea.Batch(mutationStatus("User", msg), p.list.Reload())
	case component.ActionInvokedMsg:
		if msg.Source != "users" {
			return p, nil
		}
		switch msg.Action {
		case "create":
			p.openForm(nil)
			return p, p.form.Init()
		case "view":
			if u, ok := p.list.container.Grid().CursorRow(); ok {
				p.detail = u
				p.mode = modeDetail
			}
		case "edit":
			if u, ok := p.list.container.Grid().CursorRow(); ok {
				p.openForm(&u)
				return p, p.form.Init()
			}
		case "delete":
			if u, ok := p.list.container.Grid().CursorRow(); ok {
				p.deleting = u
				p.confirm = component.NewConfirm("users",
					"Delete user",
					fmt.Sprintf("Delete %s <%s>?", u.Name, u.Email),
				).WithDanger()
				p.confirm.FocusState.Focus()
				p.mode = modeConfirm
			}
		}
		return p, nil
	case component.RowSelectedMsg:
		if msg.Source != "users" {
			return p, nil
		}
		if u, ok := p.list.container.Grid().CursorRow(); ok {
			p.detail = u
			p.mode = modeDetail
		}
		return p, nil
	case component.ConfirmResultMsg:
		if msg.Source != "users" || p.mode != modeConfirm {
			return p, nil
		}
		p.mode = modeList
		if !msg.Confirmed {
			return p, nil
		}
		id := p.deleting.ID
		client := p.App().Client
		return p, mutate("users", "deleted", func(ctx context.Context) error {
			return client.DeleteUser(ctx, id)
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
	if container, ok := model.(*component.Container[api.User]); ok {
		p.list.container = container
	}
	return p, cmd
}

// View implements tea.Model
func (p *UsersPage) View() string {
	theme := p.Theme()
	switch p.mode {
	case modeForm:
		title := "New user"
		if p.editing > 0 {
			title = "Edit user"
		}
		return theme.Title.Render(title) + "\n\n" + p.form.View()
	case modeConfirm:
		return p.confirm.ViewWidth(p.Width())
	case modeDetail:
		return detailView(theme, "User", [][2]string{
			{"ID", strconv.Itoa(p.detail.ID)},
			{"Name", p.detail.Name},
			{"Email", p.detail.Email},
			{"Roles", strings.Join(p.detail.RoleNames(), ", ")},
		})
	}

	view := p.list.container.ViewWidth(p.Width())
	if err := p.list.Err(); err != nil {
		view += "\n" + theme.Error.Render(err.Error())
	}
	return view
}
