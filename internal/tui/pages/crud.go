package pages

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"tripdesk/internal/api"
	"tripdesk/internal/tui/themes"

	tea "github.com/charmbracelet/bubbletea"
)

// pageMode is the interaction state of a resource page
type pageMode int

const (
	// modeList shows the table
	modeList pageMode = iota
	// modeForm shows a create or edit form
	modeForm
	// modeConfirm shows a delete confirmation
	modeConfirm
	// modeDetail shows a read-only record view
	modeDetail
)

// MutationDoneMsg reports the outcome of a create, update or delete
type MutationDoneMsg struct {
	// Source identifies the page that issued the mutation
	Source string
	// Verb names the mutation for the status line
	Verb string
	// Err is the failure, nil on success
	Err error
}

// mutate runs a write against the API and reports back
func mutate(source, verb string, fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		return MutationDoneMsg{Source: source, Verb: verb, Err: fn(ctx)}
	}
}

// mutationStatus turns a mutation outcome into a status-bar flash,
// expanding validation errors so the user sees which field failed
func mutationStatus(noun string, msg MutationDoneMsg) tea.Cmd {
	if msg.Err == nil {
		return Status(fmt.Sprintf("%s %s", noun, msg.Verb))
	}
	var apiErr *api.APIError
	if errors.As(msg.Err, &apiErr) && api.IsValidation(msg.Err) {
		parts := make([]string, 0, len(apiErr.Fields))
		for field, m := range apiErr.FieldErrors() {
			parts = append(parts, field+": "+m)
		}
		sort.Strings(parts)
		return StatusError(fmt.Errorf("%s (%s)", apiErr.Message, strings.Join(parts, "; ")))
	}
	return StatusError(msg.Err)
}

// requireText validates a mandatory form field
func requireText(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", label)
		}
		return nil
	}
}

// requireInt validates a form field holding a positive integer
func requireInt(label string) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || n <= 0 {
			return fmt.Errorf("%s must be a positive number", label)
		}
		return nil
	}
}

// requireFloat validates a form field holding a non-negative amount
func requireFloat(label string) func(string) error {
	return func(s string) error {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || f < 0 {
			return fmt.Errorf("%s must be a non-negative amount", label)
		}
		return nil
	}
}

// requireDate validates a YYYY-MM-DD form field
func requireDate(label string) func(string) error {
	return func(s string) error {
		if _, err := time.Parse("2006-01-02", strings.TrimSpace(s)); err != nil {
			return fmt.Errorf("%s must be YYYY-MM-DD", label)
		}
		return nil
	}
}

// parseIDList parses a comma-separated list of record ids. Blanks are
// skipped; a non-numeric entry fails the whole list.
func parseIDList(s string) ([]int, error) {
	var ids []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("%q is not a record id", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// detailView renders label/value pairs for a record detail overlay
func detailView(theme *themes.Theme, title string, fields [][2]string) string {
	var b strings.Builder
	b.WriteString(theme.ModalTitle.Render(title))
	b.WriteString("\n\n")
	for _, f := range fields {
		b.WriteString(theme.Subtitle.Render(f[0] + ":"))
		b.WriteString(" ")
		b.WriteString(f[1])
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.Help.Render("esc to go back"))
	return theme.ModalContainer.Render(b.String())
}
