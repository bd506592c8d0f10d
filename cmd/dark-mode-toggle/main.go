// Package main is the entry point for the dark-mode-toggle CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Haocen/dark-mode-toggle/internal/bus"
	"github.com/Haocen/dark-mode-toggle/internal/config"
	"github.com/Haocen/dark-mode-toggle/internal/core"
	"github.com/Haocen/dark-mode-toggle/internal/logging"
	"github.com/Haocen/dark-mode-toggle/internal/ui"
)

const version = "0.1.0"

var (
	// Global flags
	cfgFile        string
	appearanceFlag string
	preferFlag     string
	verbose        bool
	quiet          bool

	// Global output
	out *ui.Output
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(w io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dark-mode-toggle",
		Short: "Light/dark color scheme toggle",
		Long: `dark-mode-toggle keeps a light/dark color scheme choice in sync with the
operating system preference, remembers pinned choices across runs and
renders the toggle control as HTML.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initOutput(cmd.OutOrStdout())
		},
	}
	rootCmd.SetOut(w)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/dark-mode-toggle/config.toml)")
	rootCmd.PersistentFlags().StringVar(&appearanceFlag, "appearance", "", "control appearance (toggle|switch|slider|three-way)")
	rootCmd.PersistentFlags().StringVar(&preferFlag, "prefer", "", "use this OS preference instead of detecting it (light|dark)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")

	rootCmd.AddCommand(
		newInitCmd(),
		newStatusCmd(),
		newSetCmd(),
		newUnpinCmd(),
		newToggleCmd(),
		newRenderCmd(),
		newWatchCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// initOutput initializes the output.
func initOutput(w io.Writer) {
	out = ui.NewOutput(w)
	out.SetVerbose(verbose)
	out.SetQuiet(quiet)
	if f, ok := w.(*os.File); !ok || f != os.Stdout {
		out.SetNoColor(true)
	}
}

// newLogger builds the diagnostic logger. Logs go to stderr so they never
// mix with rendered markup.
func newLogger(cfg *config.Config) zerolog.Logger {
	logCfg, err := logging.ParseConfig(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		logCfg = logging.DefaultConfig()
	}
	if verbose {
		logCfg.Level = zerolog.DebugLevel
	}
	if quiet {
		logCfg.Level = zerolog.ErrorLevel
	}
	return logging.New(logCfg, os.Stderr)
}

// newEngine creates a new engine with current flags.
func newEngine(opts ...core.Option) (*core.Engine, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	base := []core.Option{core.WithLogger(newLogger(cfg))}
	if appearanceFlag != "" {
		base = append(base, core.WithAppearance(appearanceFlag))
	}
	if preferFlag != "" {
		base = append(base, core.WithPreference(preferFlag))
	}

	return core.NewWithConfig(cfg, append(base, opts...)...)
}

func engineError(err error) error {
	out.ErrorWithHint(err.Error(), "Run 'dark-mode-toggle init' to create a default configuration")
	return err
}

// newInitCmd creates the init command.
func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration",
		Long:  "Creates the default configuration file and storage directory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath := cfgFile
			if configPath == "" {
				configPath = filepath.Join(config.DefaultConfigDir(), "config.toml")
			}

			if _, err := os.Stat(configPath); err == nil && !force {
				out.Warning("Configuration already exists at %s", configPath)
				out.Info("Use --force to overwrite")
				return nil
			}

			cfg := config.DefaultConfig()
			cfg.Storage.Path = filepath.Join(filepath.Dir(configPath), "state.json")

			if err := cfg.EnsureDirectories(); err != nil {
				out.Error("Failed to create directories: %v", err)
				return err
			}

			if err := cfg.Save(configPath); err != nil {
				out.Error("Failed to write config: %v", err)
				return err
			}

			out.Success("Configuration initialized")
			out.Field("Config", shortenPath(configPath))
			out.Field("Storage", shortenPath(cfg.Storage.Path))
			out.Info("Edit %s to configure labels, stylesheets and style hooks", shortenPath(configPath))

			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration")

	return cmd
}

// newStatusCmd creates the status command.
func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current color scheme",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine()
			if err != nil {
				return engineError(err)
			}
			defer engine.Close()

			printStatus(engine.Status())
			return nil
		},
	}
}

func printStatus(st *core.Status) {
	storage := st.Backend
	if st.StoragePath != "" {
		storage += " " + shortenPath(st.StoragePath)
	}
	platformName := st.Platform
	if !st.Supported {
		platformName += " (no detection)"
	}

	out.Status(ui.Status{
		State:      st.State,
		Views:      st.Views,
		System:     st.System,
		Remembered: st.Remembered,
		Storage:    storage,
		Platform:   platformName,
	})
}

// newSetCmd creates the set command.
func newSetCmd() *cobra.Command {
	var noPin bool

	cmd := &cobra.Command{
		Use:       "set <light|dark>",
		Short:     "Set and remember the color scheme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"light", "dark"},
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine()
			if err != nil {
				return engineError(err)
			}
			defer engine.Close()

			if err := engine.Set(args[0], !noPin); err != nil {
				out.Error("%v", err)
				return err
			}

			st := engine.Status()
			if st.State.Permanent {
				out.Success("Color scheme set to %s and remembered", out.Mode(st.State.Mode))
			} else {
				out.Success("Color scheme set to %s", out.Mode(st.State.Mode))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noPin, "no-pin", false, "change the scheme without remembering it, forgetting any remembered scheme")

	return cmd
}

// newUnpinCmd creates the unpin command.
func newUnpinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unpin",
		Short: "Forget the remembered scheme and follow the system",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine()
			if err != nil {
				return engineError(err)
			}
			defer engine.Close()

			if !engine.Status().State.Permanent {
				out.Info("No scheme is remembered")
				return nil
			}

			if err := engine.Unpin(); err != nil {
				out.Error("%v", err)
				return err
			}

			out.Success("Following the system preference (%s)", out.Mode(engine.Status().State.Mode))
			return nil
		},
	}
}

// newToggleCmd creates the toggle command.
func newToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Flip between light and dark",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine()
			if err != nil {
				return engineError(err)
			}
			defer engine.Close()

			mode := engine.Toggle()
			out.Success("Color scheme is now %s", out.Mode(mode))
			return nil
		},
	}
}

// newRenderCmd creates the render command.
func newRenderCmd() *cobra.Command {
	var page bool
	var output string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the control as HTML",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine()
			if err != nil {
				return engineError(err)
			}
			defer engine.Close()

			w := cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					out.Error("Failed to create %s: %v", output, err)
					return err
				}
				defer f.Close()
				w = f
			}

			if err := engine.Render(w, page); err != nil {
				out.Error("Failed to render: %v", err)
				return err
			}
			if output == "" || output == "-" {
				fmt.Fprintln(w)
			} else {
				out.Success("Wrote %s", shortenPath(output))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&page, "page", false, "render a full HTML page with stylesheet links")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")

	return cmd
}

// newWatchCmd creates the watch command.
func newWatchCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow system and stored changes, printing every notification",
		Long: `Keeps the control attached and prints colorschemechange and
permanentcolorscheme notifications as they happen. Changes come from the
operating system preference and from other processes writing the store.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out.SetJSON(jsonOut)

			engine, err := newEngine(core.WithEventHandler(printEvent))
			if err != nil {
				return engineError(err)
			}
			defer engine.Close()

			out.Debug("watching %s", engine.Widget().ID())
			return engine.Watch(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "print notifications as JSON lines")

	return cmd
}

func printEvent(e bus.Event) {
	out.Event(e)
}

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dark-mode-toggle version %s\n", version)
		},
	}
}

// shortenPath replaces the home directory prefix with ~.
func shortenPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if rel, err := filepath.Rel(home, path); err == nil && rel != "." && !strings.HasPrefix(rel, "..") {
		return filepath.Join("~", rel)
	}
	return path
}
