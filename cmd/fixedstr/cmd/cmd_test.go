package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fsserror "github.com/abeimler/fixed-size-string/core/error"
)

const testdata = "../../../internal/scenario/testdata/"

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixedstr.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// execute runs the root command with fresh flag state
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags()
	runOutput = outputOptions{format: "text", dump: true}
	runWatch = false
	inspectUnit, inspectCapacity, inspectTerminated, inspectEscapes = "", 0, false, false

	cfg := writeConfig(t, "[render]\ncolor = false\n[log]\nlevel = \"error\"\n")

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"--config", cfg}, args...))
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "fixedstr v"+Version+"\n"))
}

func TestUnits(t *testing.T) {
	out, _, err := execute(t, "units")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "narrow  byte    raw bytes    5 8 10 16 32 64 128 256", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "u16     uint16  UTF-16"))
}

func TestInspect(t *testing.T) {
	out, _, err := execute(t, "inspect", "--capacity", "5", "hello world")
	require.NoError(t, err)

	assert.Contains(t, out, `narrow  capacity=5  length=5  "hello"`)
	assert.Contains(t, out, `h  e  l  l  o  \0`)
}

func TestInspectColorFromEnvironment(t *testing.T) {
	t.Setenv("FIXEDSTR_RENDER_COLOR", "true")
	out, _, err := execute(t, "inspect", "--capacity", "5", "hi")
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[")

	t.Setenv("FIXEDSTR_RENDER_COLOR", "maybe")
	_, _, err = execute(t, "inspect", "hi")
	assert.Equal(t, fsserror.CodeInvalidConfig, fsserror.GetCode(err))
	assert.Equal(t, 4, ExitCode(err))
}

func TestInspectEscapesAndTerminated(t *testing.T) {
	out, _, err := execute(t, "inspect", "-u", "wide", "-c", "8", "-e", "-t", `ab\x00cd`)
	require.NoError(t, err)
	assert.Contains(t, out, `wide  capacity=8  length=2  "ab"`)

	_, _, err = execute(t, "inspect", "-e", `bad\q`)
	assert.Equal(t, fsserror.CodeInvalidFormat, fsserror.GetCode(err))
}

func TestInspectUnsupported(t *testing.T) {
	_, errOut, err := execute(t, "inspect", "--capacity", "7", "x")
	require.Error(t, err)
	assert.Equal(t, 3, ExitCode(err))
	assert.Empty(t, errOut, "Execute prints errors, rootCmd.Execute does not")
}

func TestRunPassing(t *testing.T) {
	out, _, err := execute(t, "run", testdata+"truncation.yaml", testdata+"trim.toml")
	require.NoError(t, err)

	assert.Contains(t, out, "scenario truncation (narrow, capacity 5)")
	assert.Contains(t, out, "scenario trim (narrow, capacity 10)")
	assert.Contains(t, out, "passed 3/3")
	assert.Contains(t, out, "passed 4/4")
	assert.Contains(t, out, `narrow  capacity=5  length=5  "llop!"`)
}

func TestRunFailing(t *testing.T) {
	out, _, err := execute(t, "run", "--dump=false", testdata+"failing.yaml", testdata+"repair.yaml")
	require.Error(t, err)

	assert.True(t, fsserror.HasCode(err, fsserror.CodeExpectationFailed))
	assert.Equal(t, 3, ExitCode(err))
	assert.Contains(t, err.Error(), "1 of 2 scenarios failed")
	assert.Contains(t, out, "passed 0/2")
	assert.NotContains(t, out, "capacity=8  length=")
}

func TestRunJSON(t *testing.T) {
	out, _, err := execute(t, "run", "--format", "json", testdata+"utf16.yaml")
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(out)), &doc))
	assert.Equal(t, "utf16-truncation", doc["name"])
	assert.Equal(t, true, doc["passed"])
}

func TestRunBadFormat(t *testing.T) {
	_, _, err := execute(t, "run", "--format", "xml", testdata+"trim.toml")
	assert.Equal(t, fsserror.CodeInvalidInput, fsserror.GetCode(err))
}

func TestRunMissingFile(t *testing.T) {
	_, _, err := execute(t, "run", testdata+"absent.yaml")
	assert.Equal(t, fsserror.CodeNotFound, fsserror.GetCode(err))
	assert.Equal(t, 1, ExitCode(err))
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := execute(t, "--log-level", "loud", "units")
	require.Error(t, err)
	assert.Equal(t, fsserror.CodeInvalidConfig, fsserror.GetCode(err))
	assert.Equal(t, 4, ExitCode(err))
}

func TestDebugLogsCarryRunID(t *testing.T) {
	_, errOut, err := execute(t, "--log-level", "debug", "--log-format", "json", "units")
	require.NoError(t, err)

	line := strings.SplitN(strings.TrimSpace(errOut), "\n", 2)[0]
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "configuration loaded", entry["message"])
	assert.Len(t, entry["correlation_id"], 36)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(assert.AnError))
	assert.Equal(t, 2, ExitCode(fsserror.New("x").WithCode(fsserror.CodeContractViolation)))
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, fsserror.New("boom").WithCode(fsserror.CodeOutOfRange))
	assert.Equal(t, "error: boom [OUT_OF_RANGE]\n", buf.String())
}
