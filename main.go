package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"go.uber.org/zap"

	"github.com/CrestNiraj12/terminalfeed/app"
	"github.com/CrestNiraj12/terminalfeed/infra/colorscheme"
	"github.com/CrestNiraj12/terminalfeed/infra/config"
	"github.com/CrestNiraj12/terminalfeed/infra/logging"
	"github.com/CrestNiraj12/terminalfeed/infra/prefs"
	"github.com/CrestNiraj12/terminalfeed/infra/seedfile"
	"github.com/CrestNiraj12/terminalfeed/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type cliMode int

const (
	cliRun cliMode = iota
	cliVersion
	cliHelp
	cliInvalid
)

func parseCLIArgs(args []string) (cliMode, string) {
	if len(args) == 0 {
		return cliRun, ""
	}

	switch args[0] {
	case "--version", "-version", "-v":
		return cliVersion, ""
	case "--help", "-h", "help":
		return cliHelp, ""
	default:
		return cliInvalid, fmt.Sprintf("unexpected argument: %s", strings.Join(args, " "))
	}
}

func usage() string {
	return "Usage: terminalfeed [--version|-version|-v] [--help|-h]"
}

func resolveVersionInfo(v, c, d, moduleVersion string, settings map[string]string) (string, string, string) {
	if v == "dev" {
		mv := strings.TrimSpace(moduleVersion)
		if mv != "" && mv != "(devel)" {
			v = mv
		}
	}
	if c == "none" {
		rev := strings.TrimSpace(settings["vcs.revision"])
		if rev != "" {
			if len(rev) > 12 {
				rev = rev[:12]
			}
			c = rev
		}
	}
	if d == "unknown" {
		t := strings.TrimSpace(settings["vcs.time"])
		if t != "" {
			d = t
		}
	}
	return v, c, d
}

func buildSettingsMap(in []debug.BuildSetting) map[string]string {
	out := make(map[string]string, len(in))
	for _, s := range in {
		out[s.Key] = s.Value
	}
	return out
}

func resolvedRuntimeVersionInfo(v, c, d string) (string, string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return v, c, d
	}
	return resolveVersionInfo(v, c, d, info.Main.Version, buildSettingsMap(info.Settings))
}

func main() {
	mode, msg := parseCLIArgs(os.Args[1:])
	switch mode {
	case cliVersion:
		v, c, d := resolvedRuntimeVersionInfo(version, commit, date)
		fmt.Printf("terminalfeed %s\ncommit: %s\nbuilt: %s\n", v, c, d)
		return
	case cliHelp:
		fmt.Println(usage())
		return
	case cliInvalid:
		fmt.Fprintf(os.Stderr, "%s\n%s\n", msg, usage())
		os.Exit(2)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "terminalfeed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// 1. Load config from environment.
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// 2. Build infrastructure.
	logger, err := logging.New(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	store, err := prefs.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("preferences: %w", err)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logger.Warn("close preference store", zap.Error(cerr))
		}
	}()

	var seeds app.SeedSource = seedfile.Builtin{}
	if cfg.SeedPath != "" {
		seeds = seedfile.NewFile(cfg.SeedPath)
	}
	posts, err := seeds.Posts(ctx)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	logger.Info("starting",
		zap.String("scope", cfg.Scope),
		zap.String("prefs", cfg.PrefsBackend),
		zap.Int("posts", len(posts)),
	)

	// 3. Wire root TUI model.
	rootModel := tui.NewApp(tui.Deps{
		Prefs:         store,
		ColorScheme:   colorscheme.New(cfg.ColorScheme),
		Seed:          posts,
		Logger:        logger,
		Splash:        cfg.Splash,
		ThemeButton:   cfg.ThemeButton,
		SplashDelay:   cfg.SplashDelay,
		LoadDelay:     cfg.LoadDelay,
		SettleDelay:   cfg.SettleDelay,
		LoadThreshold: cfg.LoadThreshold,
	})

	// 4. Run.
	p := tea.NewProgram(rootModel, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
