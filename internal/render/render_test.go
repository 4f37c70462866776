package render

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fsslog "github.com/abeimler/fixed-size-string/core/log"
	"github.com/abeimler/fixed-size-string/internal/scenario"
)

func plain() Styles {
	return NewStyles(&bytes.Buffer{}, false)
}

func TestStylesColor(t *testing.T) {
	colored := NewStyles(&bytes.Buffer{}, true)
	out := colored.Fail.Render("FAIL")
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "FAIL")

	assert.Equal(t, "FAIL", plain().Fail.Render("FAIL"))
}

func TestDump(t *testing.T) {
	snap := scenario.Snapshot{
		Unit: scenario.UnitNarrow,
		Len:  2,
		Cap:  5,
		View: "ab",
		Raw:  []uint32{'a', 'b', 0, 'd', 0x80, 0},
	}

	want := strings.Join([]string{
		`narrow  capacity=5  length=2  "ab"`,
		`0    1    2    3    4    5`,
		`a    b    \0   d    \x80 \0`,
		`=    =    ^    .    .    .`,
	}, "\n") + "\n"

	assert.Equal(t, want, Dump(snap, plain()))
}

func TestDumpWideLabels(t *testing.T) {
	snap := scenario.Snapshot{
		Unit: scenario.UnitU16,
		Len:  2,
		Cap:  2,
		View: "ü�",
		Raw:  []uint32{0xFC, 0xD83D, 0},
	}

	out := Dump(snap, plain())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "ü      U+D83D \\0", lines[2])
	assert.Equal(t, "=      =      ^", lines[3])
}

func TestUnitLabel(t *testing.T) {
	tests := []struct {
		unit string
		u    uint32
		want string
	}{
		{scenario.UnitNarrow, 0, `\0`},
		{scenario.UnitNarrow, 'x', "x"},
		{scenario.UnitNarrow, '\n', `\x0A`},
		{scenario.UnitU8, 0xFF, `\xFF`},
		{scenario.UnitWide, 'ß', "ß"},
		{scenario.UnitU32, 0x110000, "U+110000"},
		{scenario.UnitU16, 0xDC00, "U+DC00"},
		{scenario.UnitU16, 0x07, "U+0007"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, unitLabel(tt.unit, tt.u), "%s %#x", tt.unit, tt.u)
	}
}

func runFixture(t *testing.T, name string) *scenario.Result {
	t.Helper()
	logger := fsslog.NewWithConfig(fsslog.Config{Level: fsslog.LevelFatal, Output: &bytes.Buffer{}})
	res, _ := scenario.NewRunner(nil, logger).RunFile(context.Background(), "../scenario/testdata/"+name)
	require.NotNil(t, res)
	return res
}

func TestResultPassing(t *testing.T) {
	out := Result(runFixture(t, "trim.toml"), plain())

	assert.Contains(t, out, "scenario trim (narrow, capacity 10)  ../scenario/testdata/trim.toml\n")
	assert.Contains(t, out, `  1 reset "abc"      len=3   "abc"  ok`)
	assert.Contains(t, out, `  3 remove_prefix 5  len=2   "ab"  ok  (OUT_OF_RANGE)`)
	assert.True(t, strings.HasSuffix(out, "passed 4/4\n"))
}

func TestResultFailing(t *testing.T) {
	out := Result(runFixture(t, "failing.yaml"), plain())

	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "step 1: length = 3, want 4")
	assert.Contains(t, out, "step 2: error = OUT_OF_RANGE, want none")
	assert.True(t, strings.HasSuffix(out, "passed 0/2\n"))
}

func TestJSON(t *testing.T) {
	raw, err := JSON(runFixture(t, "failing.yaml"))
	require.NoError(t, err)

	var doc struct {
		Name     string `json:"name"`
		Passed   bool   `json:"passed"`
		Failures int    `json:"failures"`
		Steps    []struct {
			Step     int      `json:"step"`
			Op       string   `json:"op"`
			Error    string   `json:"error"`
			Failures []string `json:"failures"`
			Passed   bool     `json:"passed"`
			State    struct {
				Length int      `json:"length"`
				Raw    []uint32 `json:"raw"`
			} `json:"state"`
		} `json:"steps"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))

	assert.Equal(t, "failing", doc.Name)
	assert.False(t, doc.Passed)
	assert.Equal(t, 2, doc.Failures)
	require.Len(t, doc.Steps, 2)
	assert.Equal(t, `reset "abc"`, doc.Steps[0].Op)
	assert.Equal(t, 3, doc.Steps[0].State.Length)
	assert.Len(t, doc.Steps[0].State.Raw, 9)
	assert.Equal(t, "OUT_OF_RANGE", doc.Steps[1].Error)
	assert.Equal(t, []string{"step 2: error = OUT_OF_RANGE, want none"}, doc.Steps[1].Failures)
}
