package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"pkt.systems/pslog"

	"github.com/Akashdeep-Patra/rpn-stack/internal/app"
	"github.com/Akashdeep-Patra/rpn-stack/internal/common"
	"github.com/Akashdeep-Patra/rpn-stack/internal/config"
	"github.com/Akashdeep-Patra/rpn-stack/internal/engine"
	"github.com/Akashdeep-Patra/rpn-stack/internal/logx"
	"github.com/Akashdeep-Patra/rpn-stack/internal/settings"
	"github.com/Akashdeep-Patra/rpn-stack/internal/ui"
	"github.com/Akashdeep-Patra/rpn-stack/internal/watcher"
)

// Build-time variables injected via ldflags by GoReleaser / Taskfile.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// settingsDebounce coalesces the burst of events an editor save produces.
const settingsDebounce = 300 * time.Millisecond

// errReported marks a failure whose message has already been printed.
var errReported = errors.New("reported")

func init() {
	// A calculator needs little more than the render loop and the input
	// reader. Respect an explicit GOMAXPROCS.
	if os.Getenv("GOMAXPROCS") == "" {
		runtime.GOMAXPROCS(min(2, runtime.NumCPU()))
	}
	debug.SetMemoryLimit(50 * 1024 * 1024) // 50 MiB
}

func main() {
	rootCmd := buildRootCmd()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "rpns: %v\n", err)
		}
		os.Exit(1)
	}
}

func buildRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rpns",
		Short: "A keyboard-driven RPN calculator for the terminal",
		Long: `rpns is a terminal RPN calculator. Type numbers and operators into the
scratchpad; every result is kept on a scrolling stack that shows how it
was computed.

Type \help inside rpns for the list of operators and commands.`,
		RunE:          runApp,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"rpns %s\n  commit:  %s\n  built:   %s\n  go:      %s\n  os/arch: %s/%s\n",
		version, commit, date, runtime.Version(), runtime.GOOS, runtime.GOARCH,
	))

	rootCmd.AddCommand(buildVersionCmd())
	rootCmd.AddCommand(buildCompletionCmd())
	rootCmd.AddCommand(buildConfigCmd())
	rootCmd.AddCommand(buildEvalCmd())

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to a config file (default "+config.Path()+")")

	return rootCmd
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// setupLogging opens the configured log destination, routes the standard
// library logger into it and returns a context carrying it.
func setupLogging(ctx context.Context, cfg *config.Config) (context.Context, pslog.Logger, func(), error) {
	logger, closer, err := logx.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, nil, nil, err
	}
	logger = logger.With("version", version)
	log.SetOutput(pslog.LogLogger(logger).Writer())
	return pslog.ContextWithLogger(ctx, logger), logger, func() { _ = closer.Close() }, nil
}

// buildVersionCmd creates the `rpns version` subcommand supporting --json.
func buildVersionCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			info := map[string]string{
				"version": version,
				"commit":  commit,
				"date":    date,
				"go":      runtime.Version(),
				"os":      runtime.GOOS,
				"arch":    runtime.GOARCH,
			}
			if jsonOutput {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}
			fmt.Fprintf(out, "rpns %s\n", version)
			fmt.Fprintf(out, "  commit:  %s\n", commit)
			fmt.Fprintf(out, "  built:   %s\n", date)
			fmt.Fprintf(out, "  go:      %s\n", runtime.Version())
			fmt.Fprintf(out, "  os/arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output version info as JSON")

	return cmd
}

// buildCompletionCmd creates the `rpns completion` subcommand for shell completions.
func buildCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for rpns.

Examples:
  # Bash (add to ~/.bashrc)
  rpns completion bash > /etc/bash_completion.d/rpns

  # Zsh (add to ~/.zshrc before compinit)
  rpns completion zsh > "${fpath[1]}/_rpns"

  # Fish
  rpns completion fish > ~/.config/fish/completions/rpns.fish

  # PowerShell
  rpns completion powershell > rpns.ps1`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
	}

	return cmd
}

func buildConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the rpns config file",
	}
	configCmd.AddCommand(buildConfigInitCmd())
	configCmd.AddCommand(buildConfigPathCmd())
	return configCmd
}

func buildConfigInitCmd() *cobra.Command {
	var (
		force bool
		path  string
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if path == "" {
				path = config.Path()
			}
			if err := config.WriteDefault(path, force); err != nil {
				if errors.Is(err, config.ErrExists) {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	cmd.Flags().StringVar(&path, "path", "", "Where to write the file (default "+config.Path()+")")
	return cmd
}

func buildConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where rpns looks for its config and settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "config:   %s\n", config.Path())
			fmt.Fprintf(out, "settings: %s\n", cfg.SettingsFile)
			fmt.Fprintf(out, "log:      %s\n", cfg.LogFile)
			return nil
		},
	}
}

func buildEvalCmd() *cobra.Command {
	var (
		width  int
		spoken bool
	)
	cmd := &cobra.Command{
		Use:   "eval <token>...",
		Short: "Evaluate tokens and print the resulting stack",
		Long: `Evaluate tokens as one line of input and print the stack the way
rpns draws it, without colors. Put -- before the tokens when the first
one is a negative number.

Examples:
  rpns eval 2 3 add 4 mul
  rpns eval --width 20 -- -2 abs
  rpns eval --spoken -- -2 inv`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			ctx, _, closeLog, err := setupLogging(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeLog()

			res := app.Eval(ctx, engine.NewRPN(), args, cfg.Metrics.Layout(), width, cfg.Metrics.ItemSpacing)
			out := cmd.OutOrStdout()
			rows := res.Rows
			if spoken {
				rows = res.Spoken
			}
			for _, row := range rows {
				fmt.Fprintln(out, row)
			}
			for _, info := range res.Info {
				fmt.Fprintln(out, info)
			}
			if res.Err != nil {
				for _, msg := range res.Errors {
					fmt.Fprintln(cmd.ErrOrStderr(), msg)
				}
				return errReported
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", 40, "Width of the stack in cells; 0 lays entries out unbounded")
	cmd.Flags().BoolVar(&spoken, "spoken", false, "Print each item the way a screen reader announces it")
	return cmd
}

func runApp(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctx, logger, closeLog, err := setupLogging(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	set, err := settings.Load(cfg.SettingsFile)
	if err != nil {
		logger.Warn("settings unreadable, using defaults", "path", cfg.SettingsFile, "err", err)
		set = settings.New(cfg.SettingsFile)
	}

	styles := ui.NewStyles(ui.ThemeByName(cfg.Theme))
	model := app.New(ctx, app.Options{
		Config:   cfg,
		Engine:   engine.NewRPN(),
		Settings: set,
		Styles:   styles,
	})
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))

	if cfg.WatchSettings {
		if err := os.MkdirAll(filepath.Dir(set.Path()), 0o755); err != nil {
			logger.Warn("settings dir unavailable", "path", set.Path(), "err", err)
		}
		watchCh, stop, watchErr := watcher.Watch(set.Path(), settingsDebounce)
		if watchErr == nil {
			defer stop()
			go func() {
				for ev := range watchCh {
					p.Send(common.SettingsChangedMsg{Path: ev.Path})
				}
			}()
		} else {
			logger.Warn("settings watcher not started", "path", set.Path(), "err", watchErr)
		}
	}

	logger.Info("rpns started", "theme", styles.Theme.Name, "settings", set.Path())
	_, err = p.Run()
	logger.Info("rpns stopped", "err", err)
	return err
}
