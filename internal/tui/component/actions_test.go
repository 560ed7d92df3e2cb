package component

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestActionMenuInlineBelowThreshold(t *testing.T) {
	m := NewActionMenu("rows", ViewAction(), EditAction(), DeleteAction())

	if m.Compact() {
		t.Error("three actions should stay inline")
	}
	if got := len(m.Inline()); got != 3 {
		t.Errorf("inline = %d, want 3", got)
	}
	if got := len(m.Overflow()); got != 0 {
		t.Errorf("overflow = %d, want 0", got)
	}
}

func TestActionMenuOverflowAboveThreshold(t *testing.T) {
	m := NewActionMenu("rows",
		ViewAction(), EditAction(), DeleteAction(),
		CustomAction("duplicate", "Duplicate", ""),
	)

	if !m.Compact() {
		t.Error("four actions should collapse")
	}
	inline := m.Inline()
	if len(inline) != 2 || inline[0].ID != "view" || inline[1].ID != "edit" {
		t.Errorf("inline = %+v, want first two actions", inline)
	}
	overflow := m.Overflow()
	if len(overflow) != 2 || overflow[0].ID != "delete" || overflow[1].ID != "duplicate" {
		t.Errorf("overflow = %+v, want remaining actions", overflow)
	}
}

func TestActionMenuInvokeInline(t *testing.T) {
	m := NewActionMenu("rows", ViewAction(), EditAction())
	m.FocusState.Focus()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter on inline action returned nil")
	}
	msg, ok := cmd().(ActionInvokedMsg)
	if !ok {
		t.Fatalf("enter emitted %T", cmd())
	}
	if msg.Source != "rows" || msg.Action != "view" {
		t.Errorf("ActionInvokedMsg = %+v", msg)
	}
}

func TestActionMenuOverflowNavigation(t *testing.T) {
	m := NewActionMenu("rows",
		ViewAction(), EditAction(), DeleteAction(),
		CustomAction("duplicate", "Duplicate", ""),
	)
	m.FocusState.Focus()

	// open the dropdown
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}})
	if cmd != nil {
		t.Fatalf("opening the dropdown emitted %T", cmd())
	}
	if !m.Open() {
		t.Fatal("dropdown did not open")
	}

	// pick the second overflow item
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter in dropdown returned nil")
	}
	msg := cmd().(ActionInvokedMsg)
	if msg.Action != "duplicate" {
		t.Errorf("picked %q, want duplicate", msg.Action)
	}
	if m.Open() {
		t.Error("dropdown stayed open after pick")
	}
}

func TestActionMenuEscClosesOverflow(t *testing.T) {
	m := NewActionMenu("rows",
		ViewAction(), EditAction(), DeleteAction(),
		CustomAction("duplicate", "Duplicate", ""),
	)
	m.FocusState.Focus()
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}})
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.Open() {
		t.Error("esc did not close the dropdown")
	}
}

func TestActionMenuIgnoresInputWithoutFocus(t *testing.T) {
	m := NewActionMenu("rows", ViewAction())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("unfocused menu emitted a command")
	}
}

func TestStandardActionBuilders(t *testing.T) {
	if a := DeleteAction(); !a.Danger() || a.ID != "delete" {
		t.Errorf("DeleteAction = %+v", a)
	}
	if a := ViewAction(); a.Danger() || a.ID != "view" {
		t.Errorf("ViewAction = %+v", a)
	}
	if a := CustomAction("export", "Export", "↓"); a.ID != "export" || a.Label != "Export" {
		t.Errorf("CustomAction = %+v", a)
	}
}

func TestActionMenuDisabledNeverFires(t *testing.T) {
	m := NewActionMenu("rows", ViewAction().WithDisabled(true), EditAction())
	m.FocusState.Focus()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("disabled action fired")
	}

	// the disabled action still renders
	if view := m.ViewWidth(80); !strings.Contains(view, "View") {
		t.Errorf("disabled action missing from strip: %q", view)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enabled action did not fire")
	}
	if msg := cmd().(ActionInvokedMsg); msg.Action != "edit" {
		t.Errorf("picked %q, want edit", msg.Action)
	}
}
