package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dokzlo13/luxctl/internal/light"
	"github.com/dokzlo13/luxctl/internal/usb"
	"github.com/dokzlo13/luxctl/internal/webhook"
)

// openLight selects the backend from the device identifier: "usb" opens
// the first connected HID device, anything else is treated as a webhook
// device ID. The returned cleanup func releases the USB handle.
func (o *rootOptions) openLight() (light.Light, func(), error) {
	if o.device == "" {
		return nil, nil, errors.New("no device specified: use --device or LUX_DEVICE")
	}
	if o.device == deviceConnectionUSB {
		dev, err := usb.Open()
		if err != nil {
			return nil, nil, err
		}
		if o.led != "" {
			target, err := light.ParseLEDTarget(o.led)
			if err == nil {
				err = dev.SetTargetLED(target)
			}
			if err != nil {
				_ = dev.Close()
				return nil, nil, err
			}
		}
		return dev, func() { _ = dev.Close() }, nil
	}
	if o.led != "" {
		return nil, nil, fmt.Errorf("%w: LED targeting requires a USB device", light.ErrUnsupportedCommand)
	}
	dev, err := webhook.NewDevice(o.device, o.cfg.Webhook.BaseURL, o.cfg.Webhook.Timeout.Duration())
	if err != nil {
		return nil, nil, err
	}
	return dev, func() {}, nil
}

// run opens the selected backend, invokes one command against it, and
// releases the handle.
func (o *rootOptions) run(fn func(context.Context, light.Light) error) error {
	l, cleanup, err := o.openLight()
	if err != nil {
		return err
	}
	defer cleanup()
	return fn(context.Background(), l)
}

// resolveUint8 prefers an explicitly set flag over the configured default.
func resolveUint8(cmd *cobra.Command, name string, flagVal, cfgVal uint8) uint8 {
	if !cmd.Flags().Changed(name) && cfgVal != 0 {
		return cfgVal
	}
	return flagVal
}

func newSolidCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "solid COLOR",
		Short: "Set the light to a solid color",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c, err := light.ParseColor(args[0])
			if err != nil {
				return err
			}
			return opts.run(func(ctx context.Context, l light.Light) error {
				return l.SetSolid(ctx, c, false)
			})
		},
	}
}

func newBlinkCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "blink COLOR",
		Short: "Set the light to a blinking color",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c, err := light.ParseColor(args[0])
			if err != nil {
				return err
			}
			return opts.run(func(ctx context.Context, l light.Light) error {
				return l.SetSolid(ctx, c, true)
			})
		},
	}
}

func newStrobeCmd(opts *rootOptions) *cobra.Command {
	var speed, repeat uint8
	cmd := &cobra.Command{
		Use:   "strobe COLOR",
		Short: "Strobe the light in the given color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := light.ParseColor(args[0])
			if err != nil {
				return err
			}
			speed = resolveUint8(cmd, "speed", speed, opts.cfg.Defaults.StrobeSpeed)
			repeat = resolveUint8(cmd, "repeat", repeat, opts.cfg.Defaults.StrobeRepeat)
			return opts.run(func(ctx context.Context, l light.Light) error {
				return l.SetStrobe(ctx, c, speed, repeat)
			})
		},
	}
	cmd.Flags().Uint8VarP(&speed, "speed", "s", 10, "Speed of each strobe cycle")
	cmd.Flags().Uint8VarP(&repeat, "repeat", "r", 255, "Number of times to repeat the strobe")
	return cmd
}

func newFadeCmd(opts *rootOptions) *cobra.Command {
	var duration uint8
	cmd := &cobra.Command{
		Use:   "fade COLOR",
		Short: "Fade the light from its current color to a new one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := light.ParseColor(args[0])
			if err != nil {
				return err
			}
			duration = resolveUint8(cmd, "fade-duration", duration, opts.cfg.Defaults.FadeDuration)
			return opts.run(func(ctx context.Context, l light.Light) error {
				return l.SetFade(ctx, c, duration)
			})
		},
	}
	cmd.Flags().Uint8VarP(&duration, "fade-duration", "f", 60, "Seconds to fade to the new color")
	return cmd
}

func newWaveCmd(opts *rootOptions) *cobra.Command {
	var speed, repeat uint8
	cmd := &cobra.Command{
		Use:   "wave COLOR [STYLE]",
		Short: "Run a wave animation in the given color",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := light.ParseColor(args[0])
			if err != nil {
				return err
			}
			style := light.WaveShort
			if len(args) == 2 {
				style, err = light.ParseWaveStyle(args[1])
				if err != nil {
					return err
				}
			}
			speed = resolveUint8(cmd, "speed", speed, opts.cfg.Defaults.WaveSpeed)
			repeat = resolveUint8(cmd, "repeat", repeat, opts.cfg.Defaults.WaveRepeat)
			return opts.run(func(ctx context.Context, l light.Light) error {
				return l.SetWave(ctx, c, style, speed, repeat)
			})
		},
	}
	cmd.Flags().Uint8VarP(&speed, "speed", "s", 30, "Speed of each wave cycle")
	cmd.Flags().Uint8VarP(&repeat, "repeat", "r", 255, "Number of times to repeat the wave")
	return cmd
}

func newPatternCmd(opts *rootOptions) *cobra.Command {
	var repeat uint8
	cmd := &cobra.Command{
		Use:   "pattern PATTERN",
		Short: "Run one of the preset patterns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := light.ParsePattern(args[0], opts.cfg.Patterns.Extended)
			if err != nil {
				return err
			}
			repeat = resolveUint8(cmd, "repeat", repeat, opts.cfg.Defaults.PatternRepeat)
			return opts.run(func(ctx context.Context, l light.Light) error {
				return l.SetPattern(ctx, p, repeat)
			})
		},
	}
	cmd.Flags().Uint8VarP(&repeat, "repeat", "r", 255, "Number of times to repeat the pattern")
	return cmd
}

func newOffCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "off",
		Short: "Turn the light off",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return opts.run(func(ctx context.Context, l light.Light) error {
				return l.TurnOff(ctx)
			})
		},
	}
}
