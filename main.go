package main

import (
	"fmt"
	"io"
	"os"

	"dial-sweep.klederson.com/internal/app"
	"dial-sweep.klederson.com/internal/config"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	flagConfig string
	flagDebug  bool

	v        *viper.Viper
	settings config.Settings
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dial-sweep",
		Short: "DIAL-SWEEP - Circular selection dial with an animated sweep",
		Long: `DIAL-SWEEP draws a circular dial of numbered positions in the terminal.
Each advance sweeps the marker one slot clockwise, tracing an arc while it moves.

Settings are read from $XDG_CONFIG_HOME/dial-sweep/config.yaml (or --config),
DIALSWEEP_* environment variables and flags, in increasing precedence.
Use "dial-sweep render" to write a frame as PNG or SVG instead.`,
		SilenceUsage:      true,
		PersistentPreRunE: loadSettings,
		RunE:              run,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Config file (default $XDG_CONFIG_HOME/dial-sweep/config.yaml)")
	pf.Int("selections", 12, "Number of dial positions")
	pf.Int("duration", 1000, "Sweep duration in milliseconds")
	pf.Bool("truncate", false, "Use whole-degree slot widths (360/N rounded down)")
	pf.Bool("diagnostics", false, "Draw arc bounds and the marker radial")
	pf.String("log-level", "info", "Log level (debug, info, warn, error)")
	pf.BoolVar(&flagDebug, "debug", false, "Shortcut for --log-level=debug")
	pf.String("log-file", "", "Write logs to this file (the TUI discards logs otherwise)")

	rootCmd.AddCommand(newRenderCmd())
	return rootCmd
}

// loadSettings resolves flags, environment and config file into settings.
func loadSettings(cmd *cobra.Command, _ []string) error {
	v = config.NewViper()
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return err
	}
	if flagDebug {
		v.Set("log.level", "debug")
	}

	s, err := config.Load(v, flagConfig)
	if err != nil {
		return err
	}
	settings = s
	return nil
}

// newLogger builds the logger from settings. When running the TUI the alt
// screen owns the terminal, so without a log file output is discarded.
func newLogger(s config.LogSettings, tui bool) (*logrus.Logger, func(), error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	level, err := logrus.ParseLevel(s.Level)
	if err != nil {
		return nil, nil, err
	}
	log.SetLevel(level)

	switch {
	case s.File != "":
		f, err := os.OpenFile(s.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		log.SetOutput(f)
		return log, func() { _ = f.Close() }, nil
	case tui:
		log.SetOutput(io.Discard)
	default:
		log.SetOutput(os.Stderr)
	}
	return log, func() {}, nil
}

func run(cmd *cobra.Command, args []string) error {
	log, closeLog, err := newLogger(settings.Log, true)
	if err != nil {
		return err
	}
	defer closeLog()

	safe := &config.SafeSettings{}
	safe.Set(settings)

	var reload <-chan struct{}
	if used := v.ConfigFileUsed(); used != "" {
		reload = config.Watch(v, safe, log)
		log.WithField("file", used).Debug("watching config")
	}

	model, err := app.New(safe, reload, log)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithFPS(settings.Render.FPS),
	)

	_, err = p.Run()
	return err
}
