// rigwatch TUI - A responsive terminal dashboard for watching rig activity.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/rigwatch-tui/internal/config"
	"github.com/jeranaias/rigwatch-tui/internal/layout"
	"github.com/jeranaias/rigwatch-tui/internal/ui/dash"
	"github.com/jeranaias/rigwatch-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// cliArgs holds the parsed command line options.
type cliArgs struct {
	width   int // explicit content width; 0 means responsive
	mode    string
	diff    string
	debug   bool
	version bool
	help    bool
}

func main() {
	args, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	if args.help {
		printUsage()
		return
	}
	if args.version {
		fmt.Printf("rigwatch %s (%s, built %s)\n", Version, GitCommit, BuildDate)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// CLI args override config.
	if args.mode != "" {
		cfg.UI.DisplayMode = args.mode
	}
	if args.diff != "" {
		cfg.UI.DiffMode = args.diff
	}
	if args.debug {
		cfg.UI.DebugLog = true
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Debug logging goes to a file; stdout belongs to the TUI.
	if cfg.UI.DebugLog {
		path, err := config.DebugLogPath()
		if err == nil {
			if f, err := tea.LogToFile(path, "rigwatch"); err == nil {
				defer f.Close()
			}
		}
	}

	theme := styles.NewTheme()
	probe := layout.NewTerminalProbe(os.Stdout)
	m := dash.New(cfg, theme, probe)

	if args.width > 0 {
		m.SetExplicitWidth(args.width)
	}

	// Hot reload: apply config edits without restarting.
	if path, err := config.PathTOML(); err == nil {
		if watcher, err := config.NewWatcher(path); err == nil {
			defer watcher.Close()
			m.AttachReloads(watcher.Updates())
		}
	}

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running rigwatch: %v\n", err)
		os.Exit(1)
	}
}

// parseArgs parses command line options.
func parseArgs(argv []string) (cliArgs, error) {
	var args cliArgs
	for i := 0; i < len(argv); i++ {
		switch arg := argv[i]; arg {
		case "--width", "-w":
			i++
			if i >= len(argv) {
				return args, fmt.Errorf("%s requires a value", arg)
			}
			w, err := strconv.Atoi(argv[i])
			if err != nil || w <= 0 {
				return args, fmt.Errorf("%s: want a positive integer, got %q", arg, argv[i])
			}
			args.width = w
		case "--mode", "-m":
			i++
			if i >= len(argv) {
				return args, fmt.Errorf("%s requires a value", arg)
			}
			args.mode = argv[i]
		case "--diff", "-d":
			i++
			if i >= len(argv) {
				return args, fmt.Errorf("%s requires a value", arg)
			}
			args.diff = argv[i]
		case "--debug":
			args.debug = true
		case "--version", "-v":
			args.version = true
		case "--help", "-h":
			args.help = true
		default:
			return args, fmt.Errorf("unknown option %q", arg)
		}
	}
	return args, nil
}

func printUsage() {
	fmt.Println(`rigwatch - responsive terminal dashboard

Usage:
  rigwatch [options]

Options:
  -w, --width N     fixed content width (disables responsive sizing)
  -m, --mode MODE   display mode: normal, compact, verbose
  -d, --diff MODE   diff mode: auto, unified, split, inline
      --debug       write a debug log to ~/.rigwatch/debug.log
  -v, --version     print version
  -h, --help        show this help`)
}
