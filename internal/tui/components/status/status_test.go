package status

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/toommyliu/cs146-finalproject/internal/tui/styles"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		kind string
		want MessageType
	}{
		{"info", Info},
		{"warning", Warning},
		{"warn", Warning},
		{"ERROR", Error},
		{"success", Success},
		{"", Info},
		{"unknown", Info},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			if got := ParseType(tt.kind); got != tt.want {
				t.Errorf("ParseType(%q) = %v, want %v", tt.kind, got, tt.want)
			}
		})
	}
}

func TestClearOnlyCurrentMessage(t *testing.T) {
	c := New()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	c.now = func() time.Time { return base }
	c.ShowInfo("first")
	first := c.Message().Timestamp

	c.now = func() time.Time { return base.Add(time.Second) }
	c.ShowError("second")

	// A stale timer must not clear the newer message
	c.Update(clearMessageMsg{timestamp: first})
	if c.Message() == nil || c.Message().Content != "second" {
		t.Fatalf("stale clear removed the current message: %+v", c.Message())
	}

	c.Update(clearMessageMsg{timestamp: c.Message().Timestamp})
	if c.Message() != nil {
		t.Errorf("expected message to be cleared, got %+v", c.Message())
	}
}

func TestViewShowsSummaryAndMessage(t *testing.T) {
	c := New()
	if c.View() != "" {
		t.Error("expected empty view before sizing")
	}

	c.SetSize(80, 1)
	c.SetLeftContent("3 stops")
	c.ShowSuccess("Queued King Library")

	view := c.View()
	if !strings.Contains(view, "3 stops") {
		t.Errorf("view missing summary: %q", view)
	}
	if !strings.Contains(view, "Queued King Library") {
		t.Errorf("view missing message: %q", view)
	}
}

func TestMessageIcons(t *testing.T) {
	tests := []struct {
		show func(c *Component, msg string) tea.Cmd
		icon string
	}{
		{(*Component).ShowInfo, styles.InfoIcon},
		{(*Component).ShowSuccess, styles.CheckIcon},
		{(*Component).ShowWarning, styles.WarningIcon},
		{(*Component).ShowError, styles.ErrorIcon},
	}

	for _, tt := range tests {
		c := New()
		c.SetSize(80, 1)
		tt.show(c, "hello")
		if view := c.View(); !strings.Contains(view, tt.icon+" hello") {
			t.Errorf("view %q missing %q", view, tt.icon+" hello")
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("hello", 10); got != "hello" {
		t.Errorf("truncate short = %q", got)
	}
	if got := truncate("hello world", 6); got != "hello…" {
		t.Errorf("truncate long = %q", got)
	}
	if got := truncate("hello", 0); got != "" {
		t.Errorf("truncate zero = %q", got)
	}
}
