package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	fsserrors "github.com/abeimler/fixed-size-string/core/errors"
	fsslog "github.com/abeimler/fixed-size-string/core/log"
	"github.com/abeimler/fixed-size-string/internal/render"
	"github.com/abeimler/fixed-size-string/internal/scenario"
)

var (
	inspectUnit       string
	inspectCapacity   int
	inspectTerminated bool
	inspectEscapes    bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [text]",
	Short: "Build a string from text and dump its buffer",
	Long: `Inspect constructs a fixed-capacity string from text and prints every
storage cell. Text longer than the capacity is truncated.

With --escapes, Go escape sequences such as \x00 or \u00e9 in text are
decoded first. With --terminated, text ends at its first NUL.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectUnit, "unit", "u", "", "unit width (default from config defaults.unit)")
	inspectCmd.Flags().IntVarP(&inspectCapacity, "capacity", "c", 0, "capacity (default from config defaults.capacity)")
	inspectCmd.Flags().BoolVarP(&inspectTerminated, "terminated", "t", false, "stop at the first NUL in text")
	inspectCmd.Flags().BoolVarP(&inspectEscapes, "escapes", "e", false, "decode Go escape sequences in text")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	s := sessionOrDefault(cmd)

	unit := inspectUnit
	if unit == "" {
		unit = s.cfg.GetString(keyDefaultUnit, scenario.UnitNarrow)
	}
	capacity := inspectCapacity
	if capacity == 0 {
		capacity = s.cfg.GetInt(keyDefaultCapacity, 16)
	}

	text := ""
	if len(args) == 1 {
		text = args[0]
	}
	if inspectEscapes {
		decoded, err := strconv.Unquote(`"` + strings.ReplaceAll(text, `"`, `\"`) + `"`)
		if err != nil {
			return fsserrors.InvalidFormat(fsserrors.ModuleCLI, "inspect", text, "Go escape sequences")
		}
		text = decoded
	}

	in, err := scenario.Default().New(unit, capacity)
	if err != nil {
		return err
	}
	if inspectTerminated {
		in.ResetTerminated(text)
	} else {
		in.Reset(text)
	}

	s.logger.Debug("instance built", fsslog.Fields{
		"unit": unit, "capacity": capacity, "length": in.Len(),
	})

	_, err = fmt.Fprint(s.out, render.Dump(scenario.TakeSnapshot(in), render.NewStyles(s.out, s.color)))
	return err
}
