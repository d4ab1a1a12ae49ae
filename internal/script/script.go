package script

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/idilsaglam/todohooks/internal/log"
	"github.com/idilsaglam/todohooks/internal/page"
)

// JSON action scripts. One file, human-readable, replayed against a fresh
// page. Indexes are 1-based against the list as it is at that step.

const (
	OpAdd    = "add"
	OpToggle = "toggle"
	OpDelete = "delete"
	OpMode   = "mode"
)

// Step is one scripted user intent.
type Step struct {
	Op    string `json:"op"`
	Text  string `json:"text,omitempty"`
	Index int    `json:"index,omitempty"`
}

// Outcome records what a step did.
type Outcome struct {
	Step    Step
	Changed bool
	Err     error // why the step was absorbed, if it was
}

var ErrUnknownOp = errors.New("unknown op")

// Load reads and validates a script file.
func Load(path string) ([]Step, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return Parse(b)
}

// Parse decodes and validates a script.
func Parse(b []byte) ([]Step, error) {
	var steps []Step
	if err := json.Unmarshal(b, &steps); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	for i := range steps {
		steps[i].Op = strings.ToLower(strings.TrimSpace(steps[i].Op))
		switch steps[i].Op {
		case OpAdd, OpToggle, OpDelete, OpMode:
		default:
			return nil, fmt.Errorf("step %d: %w %q", i+1, ErrUnknownOp, steps[i].Op)
		}
	}
	return steps, nil
}

// Replay feeds steps to p in order. Absorbed steps are reported, not fatal.
func Replay(p *page.Page, steps []Step) []Outcome {
	out := make([]Outcome, 0, len(steps))
	for _, st := range steps {
		o := Outcome{Step: st}
		switch st.Op {
		case OpAdd:
			o.Changed, o.Err = p.Add(st.Text)
		case OpToggle:
			o.Changed, o.Err = p.Toggle(p.IDAt(st.Index))
		case OpDelete:
			o.Changed, o.Err = p.Delete(p.IDAt(st.Index))
		case OpMode:
			p.ToggleMode()
			o.Changed = true
		default:
			o.Err = fmt.Errorf("%w %q", ErrUnknownOp, st.Op)
		}
		if o.Err != nil {
			log.Warn().Err(o.Err).Str("op", st.Op).Msg("script: step absorbed")
		}
		out = append(out, o)
	}
	return out
}

// Demo is the reference scenario: two adds, a toggle and a delete.
func Demo() []Step {
	return []Step{
		{Op: OpAdd, Text: "buy milk"},
		{Op: OpAdd, Text: "walk dog"},
		{Op: OpToggle, Index: 1},
		{Op: OpDelete, Index: 2},
	}
}
