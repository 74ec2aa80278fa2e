package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/scheerer/lightsd/daemon"
	"github.com/scheerer/lightsd/internal/logging"
)

var logger = logging.New("cmd")

// exitError carries a process exit code out of a command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

type globalFlags struct {
	board    string
	root     string
	logLevel string
	logFile  string
}

// NewRootCmd builds the lightsd command tree.
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "lightsd",
		Short: "Indicator LED arbitration daemon",
		Long: `Arbitrates the backlight, button and notification LEDs of a device. ` +
			`Channels sharing one physical LED are resolved by a fixed priority order.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.board, "board", "", "board file (TOML) mapping LED channels to sysfs directories [LIGHTS_BOARD_FILE]")
	pf.StringVar(&flags.root, "root", "", "LED class root directory [LIGHTS_ROOT]")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error [LOG_LEVEL]")
	pf.StringVar(&flags.logFile, "log-file", "", "log to a rotated file instead of stdout [LOG_FILE]")

	root.AddCommand(
		newServeCmd(flags),
		newSetCmd(flags),
		newTypesCmd(),
	)
	return root
}

// loadConfig reads the environment, then applies flags that were set
// explicitly, and configures logging from the result.
func loadConfig(cmd *cobra.Command, flags *globalFlags) (daemon.Config, error) {
	cfg, err := daemon.LoadConfig()
	if err != nil {
		return cfg, err
	}

	if changed(cmd, "board") {
		cfg.BoardFile = flags.board
	}
	if changed(cmd, "root") {
		cfg.LightsRoot = flags.root
	}
	if changed(cmd, "log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if changed(cmd, "log-file") {
		cfg.LogFile = flags.logFile
	}

	if err := logging.Configure(cfg.Logging()); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func changed(cmd *cobra.Command, name string) bool {
	f := cmd.Flag(name)
	return f != nil && f.Changed
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	return execute(NewRootCmd())
}

func execute(root *cobra.Command) int {
	err := root.Execute()
	if err == nil {
		return 0
	}

	logger.With(zap.Error(err)).Error("Command failed")
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	return 1
}
