package render

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	fsserror "github.com/abeimler/fixed-size-string/core/error"
	"github.com/abeimler/fixed-size-string/internal/scenario"
)

// Result renders one scenario run: a line per step with its state and
// verdict, the unmet expectations below a failing step and a summary line.
func Result(res *scenario.Result, st Styles) string {
	var b strings.Builder

	title := fmt.Sprintf("scenario %s (%s, capacity %d)", res.Name, res.Initial.Unit, res.Initial.Cap)
	b.WriteString(st.Title.Render(title))
	if res.Source != "" {
		b.WriteString("  " + st.Subtitle.Render(res.Source))
	}
	b.WriteByte('\n')

	opWidth := len("init")
	for _, sr := range res.Steps {
		opWidth = max(opWidth, len(sr.Step))
	}
	numWidth := len(strconv.Itoa(len(res.Steps)))

	fmt.Fprintf(&b, "  %s %s  len=%-3d %s\n",
		strings.Repeat(" ", numWidth), pad("init", opWidth), res.Initial.Len, strconv.Quote(res.Initial.View))

	for _, sr := range res.Steps {
		verdict := st.Pass.Render("ok")
		if !sr.Passed() {
			verdict = st.Fail.Render("FAIL")
		}
		line := fmt.Sprintf("  %*d %s  len=%-3d %s  %s",
			numWidth, sr.Number, pad(sr.Step, opWidth), sr.Snapshot.Len, strconv.Quote(sr.Snapshot.View), verdict)
		if sr.Err != nil {
			line += "  " + st.Subtitle.Render("("+string(fsserror.GetCode(sr.Err))+")")
		}
		b.WriteString(line + "\n")

		for _, f := range sr.Failures {
			b.WriteString(strings.Repeat(" ", numWidth+5) + st.Detail.Render(failureMessage(f)) + "\n")
		}
	}

	passed := len(res.Steps) - res.Failures
	summary := fmt.Sprintf("passed %d/%d", passed, len(res.Steps))
	if res.Passed() {
		b.WriteString(st.Pass.Render(summary))
	} else {
		b.WriteString(st.Fail.Render(summary))
	}
	b.WriteByte('\n')
	return b.String()
}

func failureMessage(err error) string {
	if fe, ok := err.(*fsserror.Error); ok {
		return fe.Message()
	}
	return err.Error()
}

type jsonStep struct {
	scenario.StepResult
	Error    string   `json:"error,omitempty"`
	Failures []string `json:"failures,omitempty"`
	Passed   bool     `json:"passed"`
}

type jsonResult struct {
	*scenario.Result
	Steps  []jsonStep `json:"steps"`
	Passed bool       `json:"passed"`
}

// JSON encodes res with step errors and failures as strings
func JSON(res *scenario.Result) ([]byte, error) {
	out := jsonResult{Result: res, Passed: res.Passed(), Steps: make([]jsonStep, len(res.Steps))}
	for i, sr := range res.Steps {
		js := jsonStep{StepResult: sr, Passed: sr.Passed()}
		if sr.Err != nil {
			js.Error = string(fsserror.GetCode(sr.Err))
		}
		for _, f := range sr.Failures {
			js.Failures = append(js.Failures, failureMessage(f))
		}
		out.Steps[i] = js
	}
	return json.Marshal(out)
}
