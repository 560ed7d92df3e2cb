package tui

import (
	"testing"
	"time"

	"tripdesk/internal/api"
	"tripdesk/internal/config"
	"tripdesk/internal/tui/pages"

	tea "github.com/charmbracelet/bubbletea"
)

func testModel(t *testing.T) *Model {
	t.Helper()
	client, err := api.New(api.DefaultOptions())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return New(&pages.App{Client: client, Config: config.Default()})
}

func TestSwitchPageWrapsAround(t *testing.T) {
	m := testModel(t)
	last := len(m.pages) - 1

	m.switchPage(m.active - 1)
	if m.active != last {
		t.Errorf("active = %d after backward wrap, want %d", m.active, last)
	}

	m.switchPage(m.active + 1)
	if m.active != 0 {
		t.Errorf("active = %d after forward wrap, want 0", m.active)
	}
}

func TestSwitchPageBlursOldFocusesNew(t *testing.T) {
	m := testModel(t)
	m.width, m.height = 120, 40

	m.switchPage(1)
	if m.active != 1 {
		t.Fatalf("active = %d, want 1", m.active)
	}
	if got := m.pages[m.active].ID(); got != "cities" {
		t.Errorf("second page = %q, want cities", got)
	}
}

func TestStatusFlashAndClear(t *testing.T) {
	m := testModel(t)

	model, cmd := m.Update(pages.StatusMsg{Text: "City created"})
	m = model.(*Model)
	if m.status != "City created" || m.statusErr {
		t.Errorf("status = %q err=%v", m.status, m.statusErr)
	}
	if cmd == nil {
		t.Fatal("status flash did not schedule a clear")
	}

	model, _ = m.Update(statusClearMsg{seq: m.statusSeq})
	m = model.(*Model)
	if m.status != "" {
		t.Errorf("status = %q after clear", m.status)
	}
}

func TestStaleStatusClearIgnored(t *testing.T) {
	m := testModel(t)
	m.Update(pages.StatusMsg{Text: "first"})
	model, _ := m.Update(pages.StatusMsg{Text: "second"})
	m = model.(*Model)

	// the first flash's timer fires after the second flash replaced it
	model, _ = m.Update(statusClearMsg{seq: m.statusSeq - 1})
	m = model.(*Model)
	if m.status != "second" {
		t.Errorf("stale clear removed the active status: %q", m.status)
	}
}

func TestWindowSizeMarksReady(t *testing.T) {
	m := testModel(t)
	if m.ready {
		t.Fatal("ready before first window size")
	}
	model, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = model.(*Model)
	if !m.ready {
		t.Error("not ready after window size")
	}
	if view := m.View(); view == "" {
		t.Error("empty view after sizing")
	}
}

func TestQuitBinding(t *testing.T) {
	m := testModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c returned no command")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Errorf("ctrl+c emitted %T, want tea.QuitMsg", msg)
	}
}

func TestTruncateLine(t *testing.T) {
	if got := truncateLine("short", 10); got != "short" {
		t.Errorf("truncateLine = %q", got)
	}
	long := "a long status line that exceeds the width"
	got := truncateLine(long, 10)
	if len([]rune(got)) != 10 {
		t.Errorf("truncated length = %d, want 10 (%q)", len([]rune(got)), got)
	}
}

func TestStatusClearTiming(t *testing.T) {
	if statusClearAfter < time.Second {
		t.Error("status flash clears too fast to read")
	}
}
