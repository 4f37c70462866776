package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abeimler/fixed-size-string/internal/scenario"
)

var unitInfo = map[string]struct {
	goType string
	text   string
}{
	scenario.UnitNarrow: {"byte", "raw bytes"},
	scenario.UnitWide:   {"rune", "code points"},
	scenario.UnitU8:     {"uint8", "raw bytes"},
	scenario.UnitU16:    {"uint16", "UTF-16"},
	scenario.UnitU32:    {"uint32", "code points"},
}

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List unit widths and capacities",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := sessionOrDefault(cmd)
		reg := scenario.Default()

		for _, unit := range reg.Units() {
			caps := reg.CapacitiesOf(unit)
			parts := make([]string, len(caps))
			for i, c := range caps {
				parts[i] = fmt.Sprint(c)
			}
			info := unitInfo[unit]
			fmt.Fprintf(s.out, "%-7s %-7s %-12s %s\n", unit, info.goType, info.text, strings.Join(parts, " "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(unitsCmd)
}
