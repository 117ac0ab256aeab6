// canopy is a terminal file-tree explorer: it scans a project directory into
// a navigable tree, remembers which directories you keep open across runs,
// previews files next to the tree, and exports the tree as markdown or SVG.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/canopytui/canopy/pkg/config"
	"github.com/canopytui/canopy/pkg/export"
	"github.com/canopytui/canopy/pkg/fstree"
	"github.com/canopytui/canopy/pkg/tree"
	"github.com/canopytui/canopy/pkg/ui"
)

var version = "dev"

func main() {
	rootFlag := flag.String("root", "", "Directory to explore (default: discovered project root)")
	configFlag := flag.String("config", "", "Config file path (default: <root>/.canopy/config.yaml)")
	showHidden := flag.Bool("show-hidden", false, "Include dot-entries")
	maxDepth := flag.Int("max-depth", 0, "Limit scan depth (0 = unlimited)")
	noWatch := flag.Bool("no-watch", false, "Disable filesystem watching")
	exportMD := flag.String("export-md", "", "Export the tree to a Markdown file and exit")
	exportSVG := flag.String("export-svg", "", "Export the tree to an SVG file and exit")
	versionFlag := flag.Bool("version", false, "Show version")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("canopy %s\n", version)
		os.Exit(0)
	}

	root := resolveRoot(*rootFlag)

	configPath := *configFlag
	if configPath == "" {
		configPath = config.ConfigPath(root)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *showHidden {
		cfg.ShowHidden = true
	}
	if *maxDepth > 0 {
		cfg.MaxDepth = *maxDepth
	}

	if *exportMD != "" || *exportSVG != "" {
		if err := runExport(root, cfg, *exportMD, *exportSVG); err != nil {
			fmt.Fprintf(os.Stderr, "Export failed: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "canopy requires an interactive terminal (use -export-md or -export-svg for non-interactive output)")
		os.Exit(1)
	}

	var watcher *fstree.Watcher
	if !*noWatch {
		watcher, err = fstree.NewWatcher(root)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: filesystem watching unavailable: %v\n", err)
		} else if err := watcher.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: filesystem watching unavailable: %v\n", err)
			watcher = nil
		}
	}

	theme := ui.DefaultTheme(lipgloss.DefaultRenderer(), cfg.Accent)
	m := ui.NewModel(root, cfg, theme, watcher)

	statePath := config.StatePath(root)
	ui.LoadState(statePath, m.State())

	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if watcher != nil {
		watcher.Stop()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running canopy: %v\n", err)
		os.Exit(1)
	}

	if fm, ok := final.(ui.Model); ok {
		ui.SaveState(statePath, fm.State())
	}
}

// resolveRoot picks the directory to explore: an explicit -root wins,
// otherwise the discovered project root for the working directory.
func resolveRoot(flagValue string) string {
	if flagValue != "" {
		root, _ := config.FindRoot(flagValue)
		return root
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	root, _ := config.FindRoot(cwd)
	return root
}

// runExport scans once and writes the requested artifacts.
func runExport(root string, cfg config.Config, mdPath, svgPath string) error {
	opts := fstree.Options{ShowHidden: cfg.ShowHidden, MaxDepth: cfg.MaxDepth}
	if cfg.GitignoreEnabled() {
		if ig, err := fstree.LoadIgnore(root); err == nil {
			opts.Ignore = ig
		}
	}
	roots, err := fstree.Scan(root, opts)
	if err != nil {
		return err
	}

	if mdPath != "" {
		out := export.GenerateMarkdown(roots, root)
		if err := os.WriteFile(mdPath, []byte(out), 0644); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", mdPath)
	}

	if svgPath != "" {
		// Snapshot with every directory open.
		st := tree.NewState(roots...)
		st.ExpandAll()

		f, err := os.Create(svgPath)
		if err != nil {
			return err
		}
		export.GenerateSVG(f, st.Rows(), root)
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", svgPath)
	}
	return nil
}
