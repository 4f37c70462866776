package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	fsserror "github.com/abeimler/fixed-size-string/core/error"
	fsserrors "github.com/abeimler/fixed-size-string/core/errors"
	fsslog "github.com/abeimler/fixed-size-string/core/log"
	"github.com/abeimler/fixed-size-string/internal/render"
	"github.com/abeimler/fixed-size-string/internal/scenario"
)

// outputOptions are shared by commands that print state
type outputOptions struct {
	format string
	dump   bool
}

func (o *outputOptions) register(fs *pflag.FlagSet) {
	fs.StringVarP(&o.format, "format", "f", "text", "output format: text or json")
	fs.BoolVar(&o.dump, "dump", true, "print the final buffer after each scenario")
}

func (o *outputOptions) validate() error {
	if o.format != "text" && o.format != "json" {
		return fsserrors.InvalidInput(fsserrors.ModuleCLI, "format", o.format, "text or json")
	}
	return nil
}

var (
	runOutput outputOptions
	runWatch  bool
)

var runCmd = &cobra.Command{
	Use:   "run <scenario>...",
	Short: "Run scenario files",
	Long: `Run executes every step of the given scenario files and checks the
expectations attached to them.

The exit status is 3 if an expectation failed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	runOutput.register(runCmd.Flags())
	runCmd.Flags().BoolVarP(&runWatch, "watch", "w", false, "re-run a scenario whenever its file changes")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	if err := runOutput.validate(); err != nil {
		return err
	}
	s := sessionOrDefault(cmd)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	runner := scenario.NewRunner(scenario.Default(), s.logger)

	failed := 0
	for _, path := range args {
		if err := runOne(ctx, runner, s, path); err != nil {
			if !fsserror.HasCode(err, fsserror.CodeExpectationFailed) {
				return err
			}
			failed++
		}
	}

	if runWatch {
		return watchAndRun(ctx, runner, s, args)
	}

	if failed > 0 {
		return fsserrors.NewErrorBuilder(fsserrors.ModuleCLI).
			Operation("run").
			Messagef("%d of %d scenarios failed", failed, len(args)).
			Code(fsserror.CodeExpectationFailed).
			Detail("run_id", s.runID).
			Build()
	}
	return nil
}

// runOne runs path and prints its result. An expectation failure is
// returned after the result has been printed.
func runOne(ctx context.Context, runner *scenario.Runner, s *session, path string) error {
	res, err := runner.RunFile(ctx, path)
	if res == nil {
		return err
	}
	if perr := printResult(s.out, s, res); perr != nil {
		return perr
	}
	return err
}

func printResult(w io.Writer, s *session, res *scenario.Result) error {
	if runOutput.format == "json" {
		raw, err := render.JSON(res)
		if err != nil {
			return fsserrors.OperationFailed(fsserrors.ModuleCLI, "encode", err)
		}
		_, err = fmt.Fprintln(w, string(raw))
		return err
	}

	styles := render.NewStyles(w, s.color)
	out := render.Result(res, styles)
	if runOutput.dump {
		out += "\n" + render.Dump(res.Final, styles)
	}
	_, err := fmt.Fprintln(w, out)
	return err
}

func watchAndRun(ctx context.Context, runner *scenario.Runner, s *session, paths []string) error {
	w, err := scenario.NewWatcher(paths, s.logger)
	if err != nil {
		return err
	}
	s.logger.Info("watching scenario files", fsslog.Fields{"files": len(paths)})

	return w.Run(ctx, func(path string) {
		if err := runOne(ctx, runner, s, path); err != nil && !fsserror.HasCode(err, fsserror.CodeExpectationFailed) {
			s.logger.ErrorWithErr("scenario re-run failed", err, fsslog.Fields{"path": path})
		}
	})
}
