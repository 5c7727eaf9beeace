// Command winregsearch is a terminal UI for searching Windows registry
// hives for key paths and value names/data matching a set of search
// terms (spec.md §1).
package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/evanreyes/winregsearch/internal/input"
	"github.com/evanreyes/winregsearch/internal/logging"
	"github.com/evanreyes/winregsearch/internal/registry"
	"github.com/evanreyes/winregsearch/internal/registry/mockprovider"
	"github.com/evanreyes/winregsearch/internal/render"
	"github.com/evanreyes/winregsearch/internal/session"
	"github.com/evanreyes/winregsearch/internal/supervisor"
	"github.com/evanreyes/winregsearch/internal/term/tcellbackend"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	args := os.Args[1:]
	debugMode := false
	providerName := defaultProviderName()

	filteredArgs := make([]string, 0, len(args))
	for _, arg := range args {
		switch {
		case arg == "--debug" || arg == "-d":
			debugMode = true
		case arg == "--provider=mock":
			providerName = "mock"
		case arg == "--provider=windows":
			providerName = "windows"
		default:
			filteredArgs = append(filteredArgs, arg)
		}
	}

	if len(filteredArgs) > 0 {
		switch filteredArgs[0] {
		case "--help", "-h":
			printHelp()
			return
		case "--version", "-v":
			fmt.Printf("winregsearch %s\n", version)
			fmt.Printf("  commit: %s\n", commit)
			fmt.Printf("  built: %s\n", date)
			return
		}
	}

	if err := logging.Init(logging.Options{}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init logging: %v\n", err)
		os.Exit(1)
	}

	provider, err := resolveProvider(providerName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logging.Info("starting winregsearch", "debug", debugMode, "provider", providerName)

	if err := run(provider); err != nil {
		logging.Error("fatal error", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logging.Info("winregsearch exited normally")
}

func run(provider registry.Provider) error {
	backend, err := tcellbackend.New()
	if err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	if err := backend.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer backend.Restore()

	state := session.New()

	go input.Run(backend, state)
	go supervisor.Run(context.Background(), state, provider)

	render.Run(backend, state)
	return nil
}

// defaultProviderName picks the windows provider on Windows and the
// in-memory mock everywhere else, so the TUI is runnable (against
// synthetic data) for development on non-Windows machines.
func defaultProviderName() string {
	if runtime.GOOS == "windows" {
		return "windows"
	}
	return "mock"
}

func resolveProvider(name string) (registry.Provider, error) {
	switch name {
	case "mock":
		return demoMockProvider(), nil
	case "windows":
		return newWindowsProvider()
	default:
		return nil, fmt.Errorf("unknown provider %q", name)
	}
}

// demoMockProvider seeds a small in-memory tree so --provider=mock is
// useful for trying the TUI without a real Windows registry.
func demoMockProvider() *mockprovider.Provider {
	p := mockprovider.New()
	p.AddKey(registry.LocalMachine, `SOFTWARE\Example`)
	p.SetValues(registry.LocalMachine, `SOFTWARE\Example`, []registry.ValueRecord{
		{Name: "DisplayName", Kind: registry.KindSZ, Data: []byte("Example Widget\x00")},
	})
	p.AddKey(registry.CurrentUser, `Software\Example`)
	return p
}

func printHelp() {
	fmt.Println("winregsearch - Interactive TUI for searching the Windows Registry")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  winregsearch [options]")
	fmt.Println()
	fmt.Println("DESCRIPTION:")
	fmt.Println("  Launches an interactive terminal UI that crawls the selected")
	fmt.Println("  registry hives looking for key paths and value names/data")
	fmt.Println("  matching one or more search terms.")
	fmt.Println()
	fmt.Println("  Navigation:")
	fmt.Println("    Left/Right  switch pane")
	fmt.Println("    Up/Down     move cursor")
	fmt.Println("    Enter       toggle hive (Hives pane)")
	fmt.Println("    n           new search term")
	fmt.Println("    e           edit selected search term")
	fmt.Println("    F5          start / stop crawl")
	fmt.Println("    y           copy results to clipboard")
	fmt.Println("    h           toggle help")
	fmt.Println("    q / Esc     quit (with confirmation)")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -d, --debug          Recorded in the startup log line only (the log is always at DEBUG level)")
	fmt.Println("      --provider=NAME  Registry backend: windows (default on Windows) or mock")
	fmt.Println("  -h, --help           Show this help message")
	fmt.Println("  -v, --version        Show version information")
}
