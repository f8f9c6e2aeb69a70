package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	apppkg "github.com/kk-code-lab/mpl/internal/app"
	"github.com/kk-code-lab/mpl/internal/config"
	"github.com/kk-code-lab/mpl/internal/launcher"
	"github.com/kk-code-lab/mpl/internal/logging"
)

var version = "dev"

func printHelp() {
	fmt.Print(`mpl - Terminal media browser that launches mpv

USAGE:
    mpl [OPTIONS] [DIRECTORY]

Without DIRECTORY, mpl reopens the directory of the remembered item,
or the current directory when nothing is remembered.

OPTIONS:
    -h, --help       Show this help message and exit
    -v, --version    Print the version and exit

KEYS:
    ↑/↓ Home/End PgUp/PgDn   move
    →                        enter directory, select subtitle or play
    Enter                    play paused and remember the item
    ←                        parent directory
    F5 refresh   F6 directories   F7 hidden files   F8 restore remembered
    F9 close last player          F12 or Ctrl+C quit
    type to search, Backspace deletes a character, Delete clears

ENVIRONMENT:
    MPVL_MPV_CMD     player command (default "mpv --force-window")
    MPL_CONFIG       config file (default $XDG_CONFIG_HOME/mpl/config.yaml)
    MPL_LOG_LEVEL    debug, info, warn, error or off
`)
}

func main() {
	// Set UTF-8 as fallback encoding so file names render on minimal locales
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	startArg := ""
	for _, arg := range os.Args[1:] {
		switch {
		case arg == "-h" || arg == "--help":
			printHelp()
			os.Exit(0)
		case arg == "-v" || arg == "--version":
			fmt.Printf("mpl %s\n", version)
			os.Exit(0)
		case strings.HasPrefix(arg, "-") && arg != "-":
			fmt.Fprintf(os.Stderr, "Unknown option: %s\n", arg)
			os.Exit(2)
		case startArg != "":
			fmt.Fprintln(os.Stderr, "Only one directory may be given")
			os.Exit(2)
		default:
			startArg = arg
		}
	}

	os.Exit(run(startArg))
}

func run(startArg string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return 1
	}

	logPath := cfg.Log.File
	if logPath == "" {
		if logPath, err = config.DefaultLogPath(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		}
	}
	closeLog, err := logging.Init(logging.Options{Level: cfg.Log.Level, File: logPath, Version: version})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	} else {
		defer func() {
			_ = closeLog()
		}()
	}

	startDir, err := apppkg.ResolveStartDir(startArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid directory %q: %v\n", startArg, err)
		return 1
	}

	launcher.IgnoreChildSignals()

	app, err := apppkg.NewApplication(apppkg.Options{Config: cfg, StartDir: startDir})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing application: %v\n", err)
		return 1
	}
	defer func() {
		_ = app.Close()
	}()

	app.Run()
	return 0
}
