// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/lediff/internal/config"
	"github.com/jeranaias/lediff/internal/vcs"
)

func TestViewBeforeFirstResize(t *testing.T) {
	m := newTestModel(t)

	if got := m.View(); got != "Loading..." {
		t.Errorf("Expected placeholder before the first resize, got %q", got)
	}
}

func TestViewFillsTerminalHeight(t *testing.T) {
	m := newTestModel(t)
	m, _ = updateModel(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	view := m.View()
	if got := lipgloss.Height(view); got != 30 {
		t.Errorf("Expected view height 30, got %d", got)
	}
}

func TestViewShowsEmptyWorkingCopy(t *testing.T) {
	m := newTestModel(t)
	m, _ = updateModel(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = updateModel(t, m, StatusLoadedMsg{Files: nil})

	if !strings.Contains(m.View(), "Working copy is clean.") {
		t.Error("Expected the clean working copy message")
	}
}

func TestViewShowsStatusError(t *testing.T) {
	m := newTestModel(t)
	m, _ = updateModel(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = updateModel(t, m, StatusLoadedMsg{Err: errTest})

	view := m.View()
	if !strings.Contains(view, "jj status failed") {
		t.Error("Expected the status error message")
	}
	if !strings.Contains(view, "Press r to retry.") {
		t.Error("Expected the retry hint")
	}
}

func TestViewShowsLoadingDiff(t *testing.T) {
	m := newTestModel(t)
	m, _ = updateModel(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = updateModel(t, m, StatusLoadedMsg{Files: testFiles()})

	if !strings.Contains(m.View(), "Loading src/main.rs") {
		t.Error("Expected the loading label to carry the path")
	}
}

func TestViewShowsDiffWhenLoaded(t *testing.T) {
	m := newTestModel(t)
	m, _ = updateModel(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = updateModel(t, m, StatusLoadedMsg{Files: testFiles()})
	m, _ = updateModel(t, m, DiffBuiltMsg{Result: buildResult(t, "src/main.rs")})

	view := m.View()
	if !strings.Contains(view, "old line") {
		t.Error("Expected the deleted line in the view")
	}
	if !strings.Contains(view, "new line") {
		t.Error("Expected the inserted line in the view")
	}
}

func TestViewHeaderShowsSelection(t *testing.T) {
	m := newTestModel(t)
	m, _ = updateModel(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = updateModel(t, m, StatusLoadedMsg{Files: testFiles()})

	header := m.renderHeader()
	if !strings.Contains(header, "lediff") {
		t.Error("Expected the brand in the header")
	}
	if !strings.Contains(header, "src/main.rs") {
		t.Error("Expected the selected path in the header")
	}
	if !strings.Contains(header, "modified") {
		t.Error("Expected the status label in the header")
	}
	if !strings.Contains(header, "base @-") {
		t.Error("Expected the base revision in the header")
	}
}

func TestViewNarrowHidesSidebar(t *testing.T) {
	m := newTestModel(t)
	m, _ = updateModel(t, m, tea.WindowSizeMsg{Width: 50, Height: 20})
	m, _ = updateModel(t, m, StatusLoadedMsg{Files: testFiles()})

	if strings.Contains(m.View(), "Changed files") {
		t.Error("Expected the sidebar hidden in narrow layout")
	}
}

func TestHelpOverlayReplacesView(t *testing.T) {
	m := newTestModel(t)
	m, _ = updateModel(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = updateModel(t, m, keyMsg("?"))

	view := m.View()
	if !strings.Contains(view, "Keyboard shortcuts") {
		t.Error("Expected the help title")
	}
	for _, section := range []string{"Files", "Diff", "Actions"} {
		if !strings.Contains(view, section) {
			t.Errorf("Expected help section %q", section)
		}
	}
	if strings.Contains(view, "Changed files") {
		t.Error("Expected the normal UI replaced by the help overlay")
	}
}

// =============================================================================
// SIDEBAR
// =============================================================================

func TestSidebarListsFiles(t *testing.T) {
	m := newTestModel(t)
	m, _ = updateModel(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = updateModel(t, m, StatusLoadedMsg{Files: testFiles()})

	sidebar := m.renderSidebar(20)
	if !strings.Contains(sidebar, "Changed files (3)") {
		t.Error("Expected the file count in the sidebar title")
	}
	for _, path := range []string{"src/main.rs", "src/app.rs", "README.md"} {
		if !strings.Contains(sidebar, path) {
			t.Errorf("Expected %q in the sidebar", path)
		}
	}
}

func TestSidebarEmptyState(t *testing.T) {
	m := newTestModel(t)
	m, _ = updateModel(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = updateModel(t, m, StatusLoadedMsg{Files: nil})

	if !strings.Contains(m.renderSidebar(20), "No changes") {
		t.Error("Expected the empty sidebar message")
	}
}

func TestSidebarScrollsSelectionIntoView(t *testing.T) {
	m := newTestModel(t)
	m, _ = updateModel(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	files := make([]vcs.ChangedFile, 20)
	for i := range files {
		files[i] = vcs.ChangedFile{Path: pathForIndex(i), Status: vcs.Modified}
	}
	m, _ = updateModel(t, m, StatusLoadedMsg{Files: files})
	m, _ = updateModel(t, m, keyMsg("G"))

	// Only six rows fit: the window must slide to the end of the list.
	sidebar := m.renderSidebar(7)
	if !strings.Contains(sidebar, pathForIndex(19)) {
		t.Error("Expected the last file visible after G")
	}
	if strings.Contains(sidebar, pathForIndex(0)) {
		t.Error("Expected the first file scrolled out of the window")
	}
}

func TestSidebarRowWidth(t *testing.T) {
	m := newTestModel(t)

	row := m.renderSidebarRow(vcs.ChangedFile{Path: "a.go", Status: vcs.Added}, false, 30)
	if got := lipgloss.Width(row); got != 30 {
		t.Errorf("Expected row width 30, got %d", got)
	}

	row = m.renderSidebarRow(vcs.ChangedFile{Path: strings.Repeat("d/", 40) + "f.go", Status: vcs.Modified}, true, 30)
	if got := lipgloss.Width(row); got != 30 {
		t.Errorf("Expected long path truncated to width 30, got %d", got)
	}
}

func TestStatusGlyphs(t *testing.T) {
	m := newTestModel(t)
	symbols := m.theme.Symbols()

	tests := []struct {
		status vcs.Classification
		want   string
	}{
		{vcs.Added, symbols.Added},
		{vcs.Modified, symbols.Modified},
		{vcs.Deleted, symbols.Deleted},
		{vcs.Renamed, symbols.Renamed},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			glyph, _ := m.statusGlyph(tt.status)
			if glyph != tt.want {
				t.Errorf("Expected glyph %q for %v, got %q", tt.want, tt.status, glyph)
			}
		})
	}
}

// =============================================================================
// STATUS BAR
// =============================================================================

func TestStatusBarWidth(t *testing.T) {
	widths := []int{40, 80, 140}
	for _, w := range widths {
		m := newTestModel(t)
		m, _ = updateModel(t, m, tea.WindowSizeMsg{Width: w, Height: 30})

		bar := m.renderStatusBar()
		if got := lipgloss.Width(bar); got != w {
			t.Errorf("Width %d: expected status bar width %d, got %d", w, w, got)
		}
		if got := lipgloss.Height(bar); got != 1 {
			t.Errorf("Width %d: expected single-line status bar, got %d lines", w, got)
		}
	}
}

func TestStatusBarShowsMode(t *testing.T) {
	m := newTestModel(t)
	m, _ = updateModel(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})

	if !strings.Contains(m.renderStatusBar(), "side-by-side") {
		t.Error("Expected the view mode label")
	}

	m, _ = updateModel(t, m, keyMsg("s"))
	if !strings.Contains(m.renderStatusBar(), "inline") {
		t.Error("Expected the inline label after toggling")
	}
}

func TestStatusBarShowsStats(t *testing.T) {
	m := newTestModel(t)
	m, _ = updateModel(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})
	m, _ = updateModel(t, m, StatusLoadedMsg{Files: testFiles()})
	m, _ = updateModel(t, m, DiffBuiltMsg{Result: buildResult(t, "src/main.rs")})

	bar := m.renderStatusBar()
	if !strings.Contains(bar, "+1") || !strings.Contains(bar, "-1") {
		t.Errorf("Expected +1 -1 in the status bar, got %q", bar)
	}
}

func TestStatusBarWatchIndicator(t *testing.T) {
	m := newTestModel(t)
	m, _ = updateModel(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})

	if !strings.Contains(m.renderStatusBar(), "watch") {
		t.Error("Expected the watch indicator")
	}
}

func TestModeLabel(t *testing.T) {
	m := newTestModel(t)

	if got := m.modeLabel(); got != "side-by-side" {
		t.Errorf("Expected side-by-side, got %q", got)
	}

	m.viewMode = config.ViewModeInline
	if got := m.modeLabel(); got != "inline" {
		t.Errorf("Expected inline, got %q", got)
	}
}

func TestStatsPartEmptyWithoutResult(t *testing.T) {
	m := newTestModel(t)
	if got := m.statsPart(); got != "" {
		t.Errorf("Expected no stats without a loaded diff, got %q", got)
	}
}

// pathForIndex builds a distinct path for generated file lists.
func pathForIndex(i int) string {
	return "src/file" + string(rune('a'+i%26)) + ".rs"
}

var errTest = errorString("jj executable not found")

type errorString string

func (e errorString) Error() string { return string(e) }
