package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abeimler/fixed-size-string/core/config"
	fsserror "github.com/abeimler/fixed-size-string/core/error"
	fsslog "github.com/abeimler/fixed-size-string/core/log"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string
	noColor   bool
)

// session is the state shared by all commands of one invocation
type session struct {
	cfg    *config.Config
	logger *fsslog.Logger
	runID  string
	color  bool
	out    io.Writer
}

var current *session

var rootCmd = &cobra.Command{
	Use:   "fixedstr",
	Short: "Fixed-capacity string playground",
	Long: `fixedstr runs scripted operation scenarios against fixed-capacity
strings and shows their raw storage.

Commands:
  run      - run scenario files (YAML or TOML)
  inspect  - build a string from text and dump its buffer
  units    - list the available unit widths and capacities`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd.OutOrStdout(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		current = s
		return nil
	},
}

// Execute runs the root command and prints a failure to stderr
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// ExitCode maps err to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var fe *fsserror.Error
	if errors.As(err, &fe) {
		return fe.Code().ExitCode()
	}
	return 1
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./fixedstr.toml or the user config dir)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: console, text, json, logfmt")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func newSession(out, errOut io.Writer) (*session, error) {
	cfg, err := loadConfig(cfgFile)
	if err != nil {
		return nil, err
	}

	if logLevel != "" {
		cfg.Set(keyLogLevel, logLevel)
	}
	if logFormat != "" {
		cfg.Set(keyLogFormat, logFormat)
	}
	if err := cfg.Validate(rules()).Err(); err != nil {
		return nil, err
	}

	level, _ := fsslog.ParseLevel(cfg.GetString(keyLogLevel, "info"))
	format, _ := fsslog.ParseFormat(cfg.GetString(keyLogFormat, "console"))

	runID := uuid.NewString()
	logger := fsslog.NewWithConfig(fsslog.Config{
		Level:  level,
		Format: format,
		Output: errOut,
		Name:   "fixedstr",
	}).WithCorrelationID(runID)
	fsslog.SetDefault(logger)

	logger.Debug("configuration loaded", fsslog.Fields{
		"config": cfg.FilePath(),
		"level":  level.String(),
		"format": format.String(),
	})

	return &session{
		cfg:    cfg,
		logger: logger,
		runID:  runID,
		color:  !noColor && colorEnabled(cfg, out),
		out:    out,
	}, nil
}

func printError(w io.Writer, err error) {
	var fe *fsserror.Error
	if errors.As(err, &fe) {
		fmt.Fprintf(w, "error: %s [%s]\n", fe.Error(), fe.Code())
		return
	}
	fmt.Fprintf(w, "error: %v\n", err)
}

// sessionOrDefault covers commands run without the root pre-run, e.g. in tests
func sessionOrDefault(cmd *cobra.Command) *session {
	if current != nil {
		return current
	}
	return &session{
		cfg:    config.Empty(envPrefix, defaults()),
		logger: fsslog.GetDefault(),
		out:    cmd.OutOrStdout(),
	}
}

// resetFlags restores the global flag state between invocations
func resetFlags() {
	cfgFile, logLevel, logFormat, noColor = "", "", "", false
	current = nil
}
