package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/calbers/startpage/internal/browser"
	"github.com/calbers/startpage/internal/config"
	"github.com/calbers/startpage/internal/exporter"
	"github.com/calbers/startpage/internal/gate"
	"github.com/calbers/startpage/internal/importer"
	"github.com/calbers/startpage/internal/logger"
	"github.com/calbers/startpage/internal/manager"
	"github.com/calbers/startpage/internal/picker"
	"github.com/calbers/startpage/internal/search"
	"github.com/calbers/startpage/internal/server"
	"github.com/calbers/startpage/internal/storage"
	"github.com/calbers/startpage/internal/suggest"
	"github.com/calbers/startpage/internal/tui"
)

func main() {
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "help", "--help", "-h":
			printHelp()
			return
		case "import":
			if len(os.Args) < 3 {
				fmt.Fprintf(os.Stderr, "Usage: startpage import <file.html>\n")
				os.Exit(1)
			}
			runImport(os.Args[2])
			return
		case "export":
			var outputPath string
			if len(os.Args) >= 3 {
				outputPath = os.Args[2]
			}
			runExport(outputPath)
			return
		case "serve":
			runServe()
			return
		default:
			// Treat as search query (join all remaining args)
			query := strings.Join(os.Args[1:], " ")
			runQuickSearch(query)
			return
		}
	}

	// No args - run the full start page TUI
	runTUI()
}

func printHelp() {
	help := `startpage - terminal start page

Usage:
  startpage                 Open the interactive start page
  startpage <query>         Quick search bookmarks -> select -> open
  startpage import <file>   Import bookmarks from Netscape HTML
  startpage export [path]   Export bookmarks to HTML
  startpage serve           Run the local HTTP API (suggestions proxy,
                            access gate, read-only bookmarks)
  startpage help            Show this help

Start page keybindings:
  /           Focus the search box
  tab         Toggle search box / grid focus
  j/k/h/l     Move around the grid
  enter       Open shortcut (or confirm search)
  a           Add shortcut
  e           Edit selected shortcut
  d           Delete selected shortcut
  H/L         Move selected tile left/right
  f/F         Cycle label filter / show all
  Y           Copy URL to clipboard
  mouse       Click to open, drag to reorder
  ?           Toggle help
  q           Quit

Data Storage:
  ~/.config/startpage/bookmarks.json
`
	fmt.Print(help)
}

func loadConfig() *config.Config {
	configPath, err := config.DefaultPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting config path: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func openStorage() storage.Storage {
	store, err := storage.OpenStorage()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening storage: %v\n", err)
		os.Exit(1)
	}
	return store
}

// runTUI runs the full interactive start page.
func runTUI() {
	cfg := loadConfig()

	logPath, err := config.DefaultLogPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting log path: %v\n", err)
		os.Exit(1)
	}
	log, err := logger.NewFile(logPath, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	mgr, err := manager.New(openStorage(), log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading bookmarks: %v\n", err)
		os.Exit(1)
	}

	app := tui.NewApp(tui.AppParams{
		Manager:       mgr,
		Gate:          gate.New(cfg.Password),
		Suggest:       suggest.NewClient(cfg.SuggestEndpoint),
		SearchURL:     cfg.SearchURL,
		DragThreshold: cfg.DragThreshold,
	})

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}

// runQuickSearch performs a fuzzy search and opens the selected bookmark.
func runQuickSearch(query string) {
	store := openStorage()
	state, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading bookmarks: %v\n", err)
		os.Exit(1)
	}

	results := search.FuzzyMatch(state.Bookmarks, query)

	if len(results) == 0 {
		fmt.Printf("No bookmarks found for '%s'\n", query)
		os.Exit(0)
	}

	if len(results) == 1 {
		fmt.Printf("Opening: %s\n", results[0].Bookmark.Name)
		browser.Open(results[0].Bookmark.URL)
		return
	}

	p := picker.New(results, query)
	program := tea.NewProgram(p)
	finalModel, err := program.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running picker: %v\n", err)
		os.Exit(1)
	}

	finalPicker := finalModel.(picker.Picker)
	if finalPicker.Cancelled() {
		os.Exit(0)
	}
	if selected := finalPicker.SelectedBookmark(); selected != nil {
		browser.Open(selected.URL)
	}
}

// runImport handles the import subcommand.
func runImport(filePath string) {
	store := openStorage()
	state, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading bookmarks: %v\n", err)
		os.Exit(1)
	}

	file, err := os.Open(filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	bookmarks, err := importer.ParseHTMLBookmarks(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing HTML: %v\n", err)
		os.Exit(1)
	}

	added, skipped := state.ImportMerge(bookmarks)

	if err := store.Save(state); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving bookmarks: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Imported %d bookmarks", added)
	if skipped > 0 {
		fmt.Printf(" (%d duplicates skipped)", skipped)
	}
	fmt.Println()
}

// runExport handles the export subcommand.
func runExport(outputPath string) {
	if outputPath == "" {
		var err error
		outputPath, err = exporter.DefaultExportPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting default export path: %v\n", err)
			os.Exit(1)
		}
	}

	store := openStorage()
	state, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading bookmarks: %v\n", err)
		os.Exit(1)
	}

	html := exporter.ExportHTML(state)

	if err := os.WriteFile(outputPath, []byte(html), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Exported %d bookmarks to %s\n", len(state.Bookmarks), outputPath)
}

// runServe runs the local HTTP API until interrupted.
func runServe() {
	cfg := loadConfig()
	log := logger.New(cfg.LogLevel)
	defer log.Sync()

	srv := server.New(cfg, server.Deps{
		Store:   openStorage(),
		Suggest: suggest.NewClient(cfg.SuggestEndpoint),
		Gate:    gate.New(cfg.Password),
		Logger:  log,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Stop(shutdownCtx); err != nil {
			fmt.Fprintf(os.Stderr, "Shutdown error: %v\n", err)
			os.Exit(1)
		}
	}
}
