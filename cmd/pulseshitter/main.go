package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/pulseshitter/app"
	"github.com/lixenwraith/pulseshitter/audio"
	"github.com/lixenwraith/pulseshitter/config"
	"github.com/lixenwraith/pulseshitter/status"
	"github.com/lixenwraith/pulseshitter/terminal"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

var (
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(config.Default().Theme.Error))
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(config.Default().Theme.Accent))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(config.Default().Theme.Muted))
)

type rootOptions struct {
	configPath string
	debug      bool
	noMouse    bool
	drain      bool
	frames     int
}

func main() {
	// Panic recovery: restore the terminal even if the loop crashes
	defer func() {
		if r := recover(); r != nil {
			app.Crash("PULSESHITTER", r)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error: ")+err.Error())
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "pulseshitter",
		Short:         "Show what you are listening to on Spotify as your Discord status",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/pulseshitter/config.toml)")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "write a debug log to log.dir")
	cmd.Flags().BoolVar(&opts.noMouse, "no-mouse", false, "disable mouse capture")
	cmd.Flags().BoolVar(&opts.drain, "drain", false, "dispatch every pending event each frame")
	cmd.Flags().IntVar(&opts.frames, "frames", 0, "exit after this many frames (0 = run until Ctrl+C)")

	cmd.AddCommand(newVersionCmd(), newConfigCmd(opts))
	return cmd
}

// applyFlags overlays explicitly set flags onto the loaded configuration
func applyFlags(cmd *cobra.Command, opts *rootOptions, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("debug") {
		cfg.Log.Debug = opts.debug
	}
	if opts.noMouse {
		cfg.UI.Mouse = false
	}
	if flags.Changed("drain") {
		cfg.UI.DrainEvents = opts.drain
	}
	if flags.Changed("frames") {
		cfg.UI.MaxFrames = opts.frames
	}
}

func run(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, opts, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	runID := uuid.NewString()
	if logFile := setupLogging(cfg.Log, runID); logFile != nil {
		defer logFile.Close()
	}

	theme, err := cfg.Theme.Parse()
	if err != nil {
		return err
	}
	keys, err := cfg.KeyTable()
	if err != nil {
		return err
	}

	scr, err := terminal.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}

	reg := status.NewRegistry()
	reg.Strings.Get(status.RunID).Store(runID)

	a, err := app.New(scr, scr, app.Config{
		Loop: app.Options{
			FrameInterval: cfg.UI.FrameInterval,
			MaxFrames:     cfg.UI.MaxFrames,
			DrainEvents:   cfg.UI.DrainEvents,
		},
		Session: app.SessionConfig{Mouse: cfg.UI.Mouse},
		Audio: audio.Config{
			Enabled: cfg.Audio.Enabled,
			Volume:  cfg.Audio.Volume,
		},
		Theme: theme,
		Keys:  keys,
	}, reg)
	if err != nil {
		return err
	}

	// Ctrl+C arrives as a key in raw mode; signals cover kill and hangup
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	log.Printf("starting: frame_interval=%v max_frames=%d drain=%v mouse=%v",
		cfg.UI.FrameInterval, cfg.UI.MaxFrames, cfg.UI.DrainEvents, cfg.UI.Mouse)
	return a.Run(ctx)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), titleStyle.Render("pulseshitter")+" "+version)
		},
	}
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := configPath(opts)
			if err != nil {
				return err
			}
			if err := config.Write(path, config.Default(), force); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), titleStyle.Render("wrote")+" "+path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			data, err := cfg.Encode()
			if err != nil {
				return err
			}
			if path, err := configPath(opts); err == nil {
				fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("# "+path))
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}

func configPath(opts *rootOptions) (string, error) {
	if opts.configPath != "" {
		return opts.configPath, nil
	}
	return config.DefaultPath()
}
