package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/mededu/internal/config"
	"github.com/abhisek/mededu/internal/shell"
	"github.com/abhisek/mededu/internal/store"
	"github.com/abhisek/mededu/internal/timer"
	"github.com/abhisek/mededu/internal/ui/theme"
)

var rootCmd = &cobra.Command{
	Use:   "mededu",
	Short: "Study tracker for medical topics",
	Long: `MedEdu Companion tracks study topics, timed study sessions, notes and
per-topic quizzes in a single local data file.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShell(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("data", "", "Path to the data file (overrides MEDEDU_DATA env var)")
	pf.String("backend", "", "Storage backend: json or sqlite (overrides MEDEDU_BACKEND env var)")
	pf.Duration("tick", 0, "Wall-clock length of one study minute (overrides MEDEDU_TICK env var, default 1s)")
	pf.Bool("plain", false, "Use the plain line timer instead of the terminal UI")
	pf.BoolP("verbose", "v", false, "Log debug output to stderr")

	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig loads .env and environment settings, then applies any flags
// the user set explicitly.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataPath, _ = flags.GetString("data")
	}
	if flags.Changed("backend") {
		cfg.Backend, _ = flags.GetString("backend")
	}
	if flags.Changed("tick") {
		cfg.Tick, _ = flags.GetDuration("tick")
	}
	cfg.Plain, _ = flags.GetBool("plain")
	cfg.Verbose, _ = flags.GetBool("verbose")

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger(cfg config.Config, w io.Writer) *slog.Logger {
	if !cfg.Verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// openStore builds the configured store, wrapped with debug logging.
func openStore(cmd *cobra.Command) (store.Store, config.Config, *slog.Logger, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, config.Config{}, nil, err
	}
	logger := newLogger(cfg, cmd.ErrOrStderr())

	path, err := cfg.ResolveDataPath()
	if err != nil {
		return nil, config.Config{}, nil, fmt.Errorf("resolve data path: %w", err)
	}

	st, err := store.Open(cfg.Backend, path)
	if err != nil {
		return nil, config.Config{}, nil, fmt.Errorf("open store: %w", err)
	}
	logger.Debug("store opened", "backend", cfg.Backend, "path", path)

	return store.WithLogging(st, logger), cfg, logger, nil
}

func runShell(cmd *cobra.Command) error {
	st, cfg, logger, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	// The timer sees the raw stdout to detect a terminal; bubbletea handles
	// its own colour profile.
	out := cmd.OutOrStdout()
	t := timer.New(out, cfg.Plain)
	logger.Debug("study timer", "type", fmt.Sprintf("%T", t), "tick", cfg.Tick)

	sh := shell.New(shell.Options{
		Store:  st,
		Timer:  t,
		Tick:   cfg.Tick,
		In:     cmd.InOrStdin(),
		Out:    theme.Writer(out),
		Logger: logger,
	})
	return sh.Run(cmd.Context())
}
