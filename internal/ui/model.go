// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui provides the diff viewer interface for the TUI.
package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/lediff/internal/config"
	"github.com/jeranaias/lediff/internal/ui/styles"
	"github.com/jeranaias/lediff/internal/vcs"
	"github.com/jeranaias/lediff/internal/viewer"
)

// =============================================================================
// VIEWER MODEL
// =============================================================================

// Model is the Bubble Tea model for the diff viewer. It owns the sidebar
// selection, the single-slot diff cache, and the scrollable diff body.
type Model struct {
	// Styling
	theme *styles.Theme

	// Key bindings
	keyMap KeyMap

	// Configuration snapshot taken at startup
	cfg *config.Config

	// Dimensions
	width  int
	height int
	ready  bool

	// Repository access
	repo    *vcs.Repo
	builder *viewer.Builder
	cache   *viewer.Cache

	// Working-copy change list
	files         []vcs.ChangedFile
	selected      int
	statusErr     error
	statusLoading bool

	// Diff presentation
	viewMode string

	// UI components
	viewport viewport.Model
	spinner  spinner.Model

	// Watch state; the watcher keeps running when off, its events are ignored
	watching bool

	// Help overlay
	showHelp bool
}

// New creates a new viewer model over the given repository.
func New(repo *vcs.Repo, builder *viewer.Builder, cfg *config.Config, theme *styles.Theme) Model {
	vp := viewport.New(80, 20)
	vp.SetContent("")

	sp := spinner.New()
	sp.Spinner = spinner.Spinner{
		Frames: styles.LineSpinner.Frames,
		FPS:    styles.LineSpinner.Duration(),
	}
	sp.Style = theme.Spinner

	return Model{
		theme:         theme,
		keyMap:        DefaultKeyMap(),
		cfg:           cfg,
		repo:          repo,
		builder:       builder,
		cache:         viewer.NewCache(),
		statusLoading: true,
		viewMode:      cfg.UI.ViewMode,
		viewport:      vp,
		spinner:       sp,
		watching:      cfg.Watch.Enabled,
	}
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init starts the spinner and kicks off the first status load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, LoadStatusCmd(m.repo))
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case StatusLoadedMsg:
		return m.handleStatusLoaded(msg)

	case DiffBuiltMsg:
		return m.handleDiffBuilt(msg)

	case RepoChangedMsg:
		return m.handleRepoChanged()

	case spinner.TickMsg:
		if m.loading() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	default:
		// Mouse wheel and anything else the viewport understands.
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
}

// View renders the viewer.
func (m Model) View() string {
	return m.render()
}

// =============================================================================
// MESSAGE HANDLERS
// =============================================================================

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.ready = true

	if m.theme != nil {
		m.theme.SetSize(m.width, m.height)
	}

	// Layout: header (1 row) + body + status bar (1 row). The viewport fills
	// the main column of the body.
	const headerHeight = 1
	const statusBarHeight = 1

	bodyHeight := m.height - headerHeight - statusBarHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	m.viewport.Width = m.mainWidth()
	m.viewport.Height = bodyHeight

	// Row widths depend on the viewport width, so rebuild the content.
	m.refreshViewportContent()

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Emergency exit works in any state, help overlay included.
	if msg.String() == "ctrl+q" {
		return m, tea.Quit
	}

	// The help overlay swallows everything except its dismiss keys.
	if m.showHelp {
		switch msg.String() {
		case "?", "esc", "q", "enter":
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keyMap.Up):
		return m.moveSelection(m.selected - 1)

	case key.Matches(msg, m.keyMap.Down):
		return m.moveSelection(m.selected + 1)

	case key.Matches(msg, m.keyMap.Top):
		return m.moveSelection(0)

	case key.Matches(msg, m.keyMap.Bottom):
		return m.moveSelection(len(m.files) - 1)

	case key.Matches(msg, m.keyMap.PageUp):
		m.viewport.ViewUp()
		return m, nil

	case key.Matches(msg, m.keyMap.PageDown):
		m.viewport.ViewDown()
		return m, nil

	case key.Matches(msg, m.keyMap.HalfUp):
		m.viewport.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keyMap.HalfDown):
		m.viewport.HalfViewDown()
		return m, nil

	case key.Matches(msg, m.keyMap.ToggleView):
		if m.viewMode == config.ViewModeInline {
			m.viewMode = config.ViewModeSideBySide
		} else {
			m.viewMode = config.ViewModeInline
		}
		m.refreshViewportContent()
		return m, nil

	case key.Matches(msg, m.keyMap.Refresh):
		return m.refresh()

	case key.Matches(msg, m.keyMap.Watch):
		m.watching = !m.watching
		return m, nil
	}

	return m, nil
}

func (m Model) handleStatusLoaded(msg StatusLoadedMsg) (tea.Model, tea.Cmd) {
	m.statusLoading = false
	m.statusErr = msg.Err

	if msg.Err != nil {
		m.files = nil
		m.cache.Invalidate()
		m.viewport.SetContent("")
		return m, nil
	}

	// Keep the selection on the same path across reloads when possible.
	var selectedPath string
	if m.selected >= 0 && m.selected < len(m.files) {
		selectedPath = m.files[m.selected].Path
	}

	m.files = msg.Files
	m.selected = 0
	for i, f := range msg.Files {
		if f.Path == selectedPath {
			m.selected = i
			break
		}
	}

	if len(m.files) == 0 {
		m.cache.Invalidate()
		m.viewport.SetContent("")
		return m, nil
	}

	return m, m.ensureSelected()
}

func (m Model) handleDiffBuilt(msg DiffBuiltMsg) (tea.Model, tea.Cmd) {
	// The cache rejects results whose path no longer matches the selection
	// in flight; those are simply dropped.
	if !m.cache.Complete(msg.Result) {
		return m, nil
	}

	m.refreshViewportContent()
	m.viewport.GotoTop()
	return m, nil
}

func (m Model) handleRepoChanged() (tea.Model, tea.Cmd) {
	if !m.watching {
		return m, nil
	}
	return m.refresh()
}

// =============================================================================
// SELECTION AND CACHE
// =============================================================================

// moveSelection clamps the target index and dispatches a diff build when the
// selection actually lands on a path the cache does not hold.
func (m Model) moveSelection(target int) (tea.Model, tea.Cmd) {
	if len(m.files) == 0 {
		return m, nil
	}

	if target < 0 {
		target = 0
	}
	if target >= len(m.files) {
		target = len(m.files) - 1
	}

	m.selected = target
	return m, m.ensureSelected()
}

// ensureSelected asks the cache whether the selected path needs a build and
// dispatches one if so. The spinner tick rides along so the loading state
// animates even when the spinner had gone idle.
func (m *Model) ensureSelected() tea.Cmd {
	if m.selected < 0 || m.selected >= len(m.files) {
		return nil
	}

	file := m.files[m.selected]
	if !m.cache.Ensure(file.Path) {
		return nil
	}

	return tea.Batch(BuildDiffCmd(m.builder, file), m.spinner.Tick)
}

// refresh invalidates everything and reloads status from the repository.
func (m Model) refresh() (tea.Model, tea.Cmd) {
	m.statusLoading = true
	m.statusErr = nil
	m.cache.Invalidate()
	m.viewport.SetContent("")
	return m, tea.Batch(LoadStatusCmd(m.repo), m.spinner.Tick)
}

// loading reports whether anything is being computed right now.
func (m Model) loading() bool {
	return m.statusLoading || m.cache.State() == viewer.StateLoading
}

// =============================================================================
// LAYOUT HELPERS
// =============================================================================

// sidebarWidth returns the sidebar footprint, clamped so the diff column
// keeps the lion's share of narrow terminals.
func (m Model) sidebarWidth() int {
	w := m.cfg.UI.SidebarWidth
	if limit := m.width / 3; limit > 0 && w > limit {
		w = limit
	}
	if w < 10 {
		w = 10
	}
	return w
}

// mainWidth returns the width of the diff column. In narrow layouts the
// sidebar is hidden and the diff takes the full terminal width.
func (m Model) mainWidth() int {
	w := m.width
	if m.theme.GetLayoutMode() != styles.LayoutNarrow {
		w -= m.sidebarWidth()
	}
	if w < 20 {
		w = 20
	}
	return w
}

// refreshViewportContent rebuilds the diff rows for the current result,
// view mode, and width.
func (m *Model) refreshViewportContent() {
	res, ok := m.cache.Result()
	if !ok {
		m.viewport.SetContent("")
		return
	}

	var rows []string
	if m.viewMode == config.ViewModeInline {
		rows = m.renderInline(res)
	} else {
		rows = m.renderSideBySide(res)
	}
	m.viewport.SetContent(strings.Join(rows, "\n"))
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Files returns the current working-copy change list.
func (m Model) Files() []vcs.ChangedFile {
	return m.files
}

// Selected returns the index of the selected file.
func (m Model) Selected() int {
	return m.selected
}

// SelectedFile returns the selected file, if any.
func (m Model) SelectedFile() (vcs.ChangedFile, bool) {
	if m.selected < 0 || m.selected >= len(m.files) {
		return vcs.ChangedFile{}, false
	}
	return m.files[m.selected], true
}

// ViewMode returns the active diff presentation mode.
func (m Model) ViewMode() string {
	return m.viewMode
}

// Watching reports whether watch events are being acted on.
func (m Model) Watching() bool {
	return m.watching
}

// ShowingHelp reports whether the help overlay is visible.
func (m Model) ShowingHelp() bool {
	return m.showHelp
}
