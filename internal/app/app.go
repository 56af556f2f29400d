package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/trebletui/treble/internal/config"
	"github.com/trebletui/treble/internal/export"
	"github.com/trebletui/treble/internal/history"
	"github.com/trebletui/treble/internal/index"
	"github.com/trebletui/treble/internal/library"
	"github.com/trebletui/treble/internal/socket"
	"github.com/trebletui/treble/internal/theme"
	"github.com/trebletui/treble/internal/ui"
)

// App is the main application controller
type App struct {
	screen  *ui.Screen
	cfg     *config.Config
	lib     *library.Library
	ix      *index.Index
	labels  *ui.Labeler
	tree    *ui.TreeView
	filter  *ui.FilterBar
	jump    *ui.JumpWidget
	help    *ui.HelpScreen
	command *ui.CommandMode
	server  *socket.Server

	keybindings []KeyBinding
	terms       []string // Active filter terms
	statusMsg   string
	statusTime  time.Time
	quit        bool
	debugMode   bool
}

// NewApp creates a new App instance for the given library file
func NewApp(cfg *config.Config) (*App, error) {
	screen, err := ui.NewScreenWithTheme(theme.LoadThemeOrDefault(cfg.Theme))
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}

	lib, err := library.Load(cfg.Library)
	if err != nil {
		screen.Close()
		return nil, fmt.Errorf("failed to load library: %w", err)
	}

	a := &App{
		screen:     screen,
		cfg:        cfg,
		lib:        lib,
		labels:     ui.NewLabeler(lib),
		help:       ui.NewHelpScreen(),
		statusMsg:  "Ready",
		statusTime: time.Now(),
	}

	a.ix = BuildIndex(lib, cfg.Mode, cfg.BasePath)
	a.tree = ui.NewTreeView(a.ix, a.labels)
	a.jump = ui.NewJumpWidget()
	a.jump.SetIndex(a.ix)
	a.jump.SetOnSelect(func(n *index.Node) {
		a.tree.Reveal(n)
	})

	// History persistence is best-effort; a read-only home still gets a
	// working session
	if manager, err := history.NewManager(); err == nil {
		a.filter = ui.NewFilterBarWithHistory(a.applyFilter, manager)
		a.command = ui.NewCommandModeWithHistory(manager)
	} else {
		a.filter = ui.NewFilterBar(a.applyFilter)
		a.command = ui.NewCommandMode()
	}

	a.keybindings = a.InitializeKeybindings()
	a.help.SetKeybindings(keybindingInfos(a.keybindings))

	return a, nil
}

// BuildIndex builds a fresh index from the library using the configured
// chain policy. Records without a usable chain are silently skipped.
func BuildIndex(lib *library.Library, mode, basePath string) *index.Index {
	ix := index.New()
	for id, rec := range lib.Records {
		var chain []index.Key
		switch mode {
		case config.ModeTags:
			chain = index.TagChain(rec.Genre, rec.Artist, rec.Album, rec.Title)
		default:
			path := index.CleanPath(rec.Path, basePath)
			if path == "" {
				continue
			}
			chain = index.PathChain(path)
		}
		ix.Insert(id, chain)
	}
	ix.RebuildRoots()
	return ix
}

// StartServer starts the Unix socket server for remote commands
func (a *App) StartServer() error {
	server, err := socket.NewServer(os.Getpid())
	if err != nil {
		return err
	}
	a.server = server
	a.server.Start()
	return nil
}

// Run starts the main event loop
func (a *App) Run() error {
	defer a.Close()

	// Create a channel for events
	eventChan := make(chan tcell.Event)

	// Start event polling goroutine
	go func() {
		for {
			event := a.screen.PollEvent()
			eventChan <- event
			if event == nil {
				break
			}
		}
	}()

	// Create a ticker for rendering
	ticker := time.NewTicker(50 * time.Millisecond) // ~20 FPS
	defer ticker.Stop()

	var socketChan <-chan socket.Message
	if a.server != nil {
		socketChan = a.server.Messages()
	}

	for !a.quit {
		select {
		case ev := <-eventChan:
			if ev != nil {
				a.handleRawEvent(ev)
			}
		case msg := <-socketChan:
			a.handleSocketMessage(msg)
		case <-ticker.C:
			a.render()
		}
	}

	return nil
}

// Close closes the application
func (a *App) Close() error {
	if a.server != nil {
		a.server.Stop()
	}
	if a.screen != nil {
		return a.screen.Close()
	}
	return nil
}

// applyFilter runs a search pass for the given terms and refreshes the view
func (a *App) applyFilter(terms []string) {
	a.terms = terms
	a.ix.Search(terms)
	a.tree.Rebuild()
	a.filter.SetResultCount(a.visibleSongs())
}

// visibleSongs counts the records still visible after the last search pass
func (a *App) visibleSongs() int {
	seen := make(map[int]bool)
	a.ix.Walk(func(n *index.Node) {
		if n.Leaf() && n.Visible {
			for _, id := range n.Matches {
				seen[id] = true
			}
		}
	})
	return len(seen)
}

// reloadLibrary re-reads the library file and swaps in a freshly built
// index. The new tree is built off to the side; observers never see a
// partially constructed one.
func (a *App) reloadLibrary() {
	lib, err := library.Load(a.cfg.Library)
	if err != nil {
		a.SetStatus("Failed to reload library: " + err.Error())
		return
	}

	ix := BuildIndex(lib, a.cfg.Mode, a.cfg.BasePath)
	ix.Search(a.terms)

	a.lib = lib
	a.ix = ix
	a.labels.SetLibrary(lib)
	a.tree.SetIndex(ix)
	a.jump.SetIndex(ix)
	a.filter.SetResultCount(a.visibleSongs())

	a.SetStatus(fmt.Sprintf("Reloaded %d songs", lib.Len()))
}

// exportSelection writes the marked subtrees (or the selection) to an M3U
// playlist
func (a *App) exportSelection(path string) {
	ids, _ := index.Collect(a.tree.Marked())
	if len(ids) == 0 {
		a.SetStatus("Nothing to export")
		return
	}

	if path == "" {
		dir := a.cfg.Get("export_dir")
		if dir == "" {
			dir = "."
		}
		name := fmt.Sprintf("treble-%s.m3u", time.Now().Format("20060102-150405"))
		path = filepath.Join(dir, name)
	}

	if err := export.ExportM3U(path, a.lib, ids); err != nil {
		a.SetStatus("Export failed: " + err.Error())
		return
	}
	a.tree.ClearMarks()
	a.SetStatus(fmt.Sprintf("Exported %d songs to %s", len(ids), path))
}

// render renders the current state to the screen
func (a *App) render() {
	a.screen.Clear()

	height := a.screen.GetHeight()

	// Draw header
	a.screen.DrawString(0, 0, headerTitle(a.cfg.Library), a.screen.HeaderStyle())

	// Draw tree
	a.tree.Render(a.screen, 1)

	// Draw filter bar while editing or while a filter is applied
	if a.filter.IsActive() || a.filter.Query() != "" {
		a.filter.Render(a.screen, height-2)
	}

	// Draw command line if active
	if a.command.IsActive() {
		a.command.Render(a.screen, height-2)
	}

	a.renderStatus(height - 1)

	// Overlays
	a.jump.Render(a.screen)
	a.help.Render(a.screen)

	a.screen.Show()
}

// headerTitle builds the title line for the given library file. ASCII only.
func headerTitle(library string) string {
	return fmt.Sprintf(" treble - %s ", filepath.Base(library))
}

func (a *App) renderStatus(y int) {
	statusLine := fmt.Sprintf("-- %s --", strings.ToUpper(a.cfg.Mode))

	if marked := a.tree.MarkedCount(); marked > 0 {
		statusLine += fmt.Sprintf(" [%d marked]", marked)
	}

	if a.statusMsg != "Ready" && time.Since(a.statusTime) <= 3*time.Second {
		statusLine += " " + a.statusMsg
	}

	a.screen.DrawString(0, y, statusLine, a.screen.StatusMessageStyle())
}

// handleRawEvent processes raw input events
func (a *App) handleRawEvent(ev tcell.Event) {
	keyEv, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}

	// Overlays take input first
	if a.jump.IsVisible() {
		a.jump.HandleKeyEvent(keyEv)
		return
	}

	if a.command.IsActive() {
		cmd, done := a.command.HandleKey(keyEv)
		if done {
			a.handleCommand(cmd)
		}
		return
	}

	if a.filter.IsActive() {
		a.filter.HandleKey(keyEv)
		return
	}

	if a.help.IsVisible() {
		if keyEv.Key() == tcell.KeyEscape || keyEv.Rune() == '?' {
			a.help.Toggle()
		}
		return
	}

	a.handleKeypress(keyEv)
}

// handleKeypress handles a single keypress in normal mode
func (a *App) handleKeypress(ev *tcell.EventKey) {
	if a.debugMode {
		a.SetStatus(fmt.Sprintf("Key: %v | Rune: %q | Modifiers: %v", ev.Key(), ev.Rune(), ev.Modifiers()))
	}

	// Handle special keys first
	switch ev.Key() {
	case tcell.KeyDown:
		a.tree.SelectNext()
		return
	case tcell.KeyUp:
		a.tree.SelectPrev()
		return
	case tcell.KeyLeft:
		a.tree.Collapse()
		return
	case tcell.KeyRight:
		a.tree.Expand()
		return
	case tcell.KeyCtrlF, tcell.KeyPgDn:
		a.tree.ScrollPageDown(a.screen.GetHeight() - 2)
		return
	case tcell.KeyCtrlB, tcell.KeyPgUp:
		a.tree.ScrollPageUp(a.screen.GetHeight() - 2)
		return
	case tcell.KeyEnter:
		a.tree.Toggle()
		return
	case tcell.KeyEscape:
		if a.filter.Query() != "" {
			a.filter.Clear()
			a.SetStatus("Filter cleared")
		}
		return
	}

	// Handle rune keys via the binding table
	r := ev.Rune()
	for i := range a.keybindings {
		if a.keybindings[i].Key == r {
			a.keybindings[i].Handler(a)
			return
		}
	}
}

// handleCommand processes a command from command mode
func (a *App) handleCommand(cmd string) {
	if cmd == "" {
		return
	}

	parts := strings.Fields(cmd)

	switch parts[0] {
	case "q", "quit":
		a.quit = true
	case "reload":
		a.reloadLibrary()
	case "mode":
		if len(parts) < 2 {
			a.SetStatus("Current mode: " + a.cfg.Mode)
			return
		}
		a.switchMode(parts[1])
	case "export":
		path := ""
		if len(parts) > 1 {
			path = parts[1]
		}
		a.exportSelection(path)
	case "debug":
		a.dumpTree()
	case "help":
		a.help.Toggle()
	default:
		a.SetStatus("Unknown command: " + parts[0])
	}
}

// switchMode rebuilds the tree under a different chain policy
func (a *App) switchMode(mode string) {
	if mode != config.ModeTags && mode != config.ModePath {
		a.SetStatus("Unknown mode: " + mode + " (tags or path)")
		return
	}
	if mode == a.cfg.Mode {
		return
	}

	a.cfg.Mode = mode
	ix := BuildIndex(a.lib, mode, a.cfg.BasePath)
	ix.Search(a.terms)
	a.ix = ix
	a.tree.SetIndex(ix)
	a.jump.SetIndex(ix)
	a.filter.SetResultCount(a.visibleSongs())
	a.SetStatus("Switched to " + mode + " mode")
}

// dumpTree writes a tree snapshot next to the library file
func (a *App) dumpTree() {
	path := a.cfg.Library + ".dump"
	f, err := os.Create(path)
	if err != nil {
		a.SetStatus("Dump failed: " + err.Error())
		return
	}
	defer f.Close()
	index.DumpTree(f, a.ix)
	a.SetStatus("Tree dumped to " + path)
}

// SetStatus sets the status message
func (a *App) SetStatus(msg string) {
	a.statusMsg = msg
	a.statusTime = time.Now()
}

// Quit signals the app to quit
func (a *App) Quit() {
	a.quit = true
}

// SetDebugMode enables or disables debug mode
func (a *App) SetDebugMode(debug bool) {
	a.debugMode = debug
}
