package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dokzlo13/luxctl/internal/config"
)

const deviceConnectionUSB = "usb"

// rootOptions carries the global flags and the loaded configuration
// into the subcommands.
type rootOptions struct {
	configPath string
	device     string
	led        string
	verbosity  int

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "lux",
		Short:        "Control Luxafor lights over USB or webhooks",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			if opts.device == "" {
				opts.device = os.Getenv("LUX_DEVICE")
			}
			if opts.device == "" {
				opts.device = cfg.Device
			}
			setupLogging(opts.verbosity, cfg.Log)
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "lux.yaml", "Path to configuration file")
	flags.StringVarP(&opts.device, "device", "d", "", `Device identifier, or "usb" (env LUX_DEVICE)`)
	flags.StringVar(&opts.led, "led", "", "Target LED: all, front, back, or 1-6 (USB only)")
	flags.CountVarP(&opts.verbosity, "verbose", "v", "Increase log verbosity (repeatable)")

	cmd.AddCommand(
		newSolidCmd(opts),
		newBlinkCmd(opts),
		newStrobeCmd(opts),
		newFadeCmd(opts),
		newWaveCmd(opts),
		newPatternCmd(opts),
		newOffCmd(opts),
	)
	return cmd
}

// setupLogging configures the global zerolog logger. A repeated -v flag
// takes precedence over the configured level; without any -v the
// configured level applies to keep scripted use quiet by default.
func setupLogging(verbosity int, cfg config.LogConfig) {
	zerolog.TimeFieldFormat = time.RFC3339

	if cfg.UseJSON {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: "2006-01-02T15:04:05.000Z07:00",
			NoColor:    !cfg.Colors,
		})
	}

	if verbosity > 0 {
		zerolog.SetGlobalLevel(verbosityLevel(verbosity))
		return
	}
	switch cfg.Level {
	case "trace":
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "off":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func verbosityLevel(verbosity int) zerolog.Level {
	switch verbosity {
	case 1:
		return zerolog.ErrorLevel
	case 2:
		return zerolog.WarnLevel
	case 3:
		return zerolog.InfoLevel
	case 4:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}
