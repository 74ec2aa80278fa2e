package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scheerer/lightsd/daemon"
	"github.com/scheerer/lightsd/internal/api"
	"github.com/scheerer/lightsd/internal/led"
	"github.com/scheerer/lightsd/internal/sysfs"
	"github.com/scheerer/lightsd/internal/util"
	"github.com/scheerer/lightsd/lights"
)

func newSetCmd(flags *globalFlags) *cobra.Command {
	var body api.LightStateBody
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "set <type>[,<type>...]",
		Short: "Apply a light state directly to the hardware",
		Long: `Applies one state to each listed type in order, arbitrating among them as the ` +
			`daemon would. Only the types named here take part; a running daemon's state is not consulted.`,
		Example: `  lightsd set notifications --color 0xFFFF0000 --flash timed --on 100 --off 1000
  lightsd set backlight --color '#FFFFFF' --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}

			var types []lights.ChannelType
			for _, name := range util.SplitList(args[0]) {
				t, err := lights.ParseChannelType(name)
				if err != nil {
					return &exitError{code: 2, err: err}
				}
				types = append(types, t)
			}
			if len(types) == 0 {
				return fmt.Errorf("no light type given")
			}

			state, err := body.ToLightState()
			if err != nil {
				return err
			}

			hw, err := daemon.NewSysfsSink(cfg)
			if err != nil {
				return err
			}
			var sink led.Sink = hw
			var recorder *led.MemorySink
			if dryRun {
				recorder = dryRunSink(hw)
				sink = recorder
			}

			service, err := daemon.NewService(sink)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, t := range types {
				status := service.SetLight(t, state)
				fmt.Fprintf(out, "%s: %s\n", t, status)
				if status == lights.NotSupported {
					return &exitError{code: 2, err: fmt.Errorf("light type %s not supported", t)}
				}
			}

			if recorder != nil {
				for _, w := range recorder.Writes() {
					fmt.Fprintln(out, w)
				}
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&body.Color, "color", "0x00000000", "ARGB color: 0xAARRGGBB, #AARRGGBB, #RRGGBB or decimal")
	f.StringVar(&body.FlashMode, "flash", "none", "flash mode: none, timed, hardware")
	f.Int32Var(&body.FlashOnMs, "on", 0, "flash on duration in milliseconds")
	f.Int32Var(&body.FlashOffMs, "off", 0, "flash off duration in milliseconds")
	f.StringVar(&body.BrightnessMode, "brightness-mode", "user", "brightness mode: user, sensor, low_persistence")
	f.BoolVar(&dryRun, "dry-run", false, "print the attribute writes instead of performing them")
	return cmd
}

// dryRunSink records writes while serving max_brightness from the hardware.
func dryRunSink(hw *sysfs.Sink) *led.MemorySink {
	mem := led.NewMemorySink()
	for _, ch := range led.HardwareChannels {
		mem.SetValue(ch, led.AttrMaxBrightness, hw.ReadInt(ch, led.AttrMaxBrightness))
	}
	return mem
}
