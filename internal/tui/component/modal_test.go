package component

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestConfirmAccept(t *testing.T) {
	c := NewConfirm("delete-room", "Delete room", "This cannot be undone.")
	c.FocusState.Focus()

	_, cmd := c.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter returned nil")
	}
	msg := cmd().(ConfirmResultMsg)
	if msg.Source != "delete-room" || !msg.Confirmed {
		t.Errorf("ConfirmResultMsg = %+v", msg)
	}
}

func TestConfirmDangerDefaultsToCancel(t *testing.T) {
	c := NewConfirm("delete-room", "Delete room", "Sure?").WithDanger()
	c.FocusState.Focus()

	_, cmd := c.Update(tea.KeyMsg{Type: tea.KeyEnter})
	msg := cmd().(ConfirmResultMsg)
	if msg.Confirmed {
		t.Error("danger dialog confirmed by default")
	}

	c.Update(tea.KeyMsg{Type: tea.KeyLeft})
	_, cmd = c.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if msg := cmd().(ConfirmResultMsg); !msg.Confirmed {
		t.Error("left+enter did not confirm")
	}
}

func TestConfirmEscCancels(t *testing.T) {
	c := NewConfirm("logout", "Log out", "End the session?")
	c.FocusState.Focus()

	_, cmd := c.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if msg := cmd().(ConfirmResultMsg); msg.Confirmed {
		t.Error("esc confirmed the dialog")
	}
}

func TestConfirmViewLabels(t *testing.T) {
	c := NewConfirm("logout", "Log out", "End the session?").
		WithLabels("Log out", "Stay")
	view := c.ViewWidth(60)
	for _, want := range []string{"Log out", "Stay", "End the session?"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q: %q", want, view)
		}
	}
}

func TestHelperTruncateAndPad(t *testing.T) {
	if got := truncate("Amsterdam", 6); got != "Amste…" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("Rome", 6); got != "Rome" {
		t.Errorf("truncate short = %q", got)
	}
	if got := pad("Rome", 6); got != "Rome  " {
		t.Errorf("pad = %q", got)
	}
	if got := pad("Amsterdam", 4); len([]rune(got)) != 4 {
		t.Errorf("pad over-long = %q", got)
	}
	if got := truncate("x", 0); got != "" {
		t.Errorf("truncate zero width = %q", got)
	}
}
