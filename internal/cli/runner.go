package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/idilsaglam/todohooks/internal/effects"
	"github.com/idilsaglam/todohooks/internal/log"
	"github.com/idilsaglam/todohooks/internal/page"
	"github.com/idilsaglam/todohooks/internal/script"
	"github.com/idilsaglam/todohooks/internal/tui"
	"github.com/idilsaglam/todohooks/internal/ui"
)

// Options tune behavior from root flags and the environment.
type Options struct {
	Group    bool // list grouped by pending/done
	Dark     bool
	Username string
	AppTitle string

	Stdout, Stderr io.Writer // nil means os.Stdout / os.Stderr
}

func (o Options) stdout() io.Writer {
	if o.Stdout != nil {
		return o.Stdout
	}
	return os.Stdout
}

func (o Options) stderr() io.Writer {
	if o.Stderr != nil {
		return o.Stderr
	}
	return os.Stderr
}

// runTUI is swapped in tests; the real program needs a terminal.
var runTUI = tui.Run

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	th := ui.ForMode(opt.Dark)
	if len(args) == 0 {
		return doTUI(opt)
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.stdout())
		return 0

	case "tui":
		return doTUI(opt)

	case "demo":
		return doReplay(script.Demo(), opt)

	case "replay":
		if len(a) != 1 {
			ui.Fail(opt.stderr(), th, "usage: todo replay <file.json>")
			return 2
		}
		steps, err := script.Load(a[0])
		if err != nil {
			ui.Fail(opt.stderr(), th, "load: "+err.Error())
			return 1
		}
		return doReplay(steps, opt)
	}

	ui.Fail(opt.stderr(), th, "unknown subcommand: "+cmd)
	fmt.Fprintln(opt.stderr())
	PrintHelp(opt.stderr())
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `todo - hooks demo todo list

Usage:
  todo [flags] [subcommand] [args]

Subcommands:
  tui                Interactive page (default)
  replay <file>      Replay a JSON action script and print the result
  demo               Replay the built-in scenario
  help               Show this help

Flags:
  -group             List pending items before done ones
  -dark              Start in dark mode

Script format:
  [{"op":"add","text":"buy milk"},{"op":"toggle","index":1},
   {"op":"delete","index":2},{"op":"mode"}]
`)
}

// -------------- subcommand impls ----------------

func doTUI(opt Options) int {
	err := runTUI(tui.Options{
		Username: opt.Username,
		AppTitle: opt.AppTitle,
		Dark:     opt.Dark,
		Group:    opt.Group,
	})
	if err != nil {
		log.Error().Err(err).Msg("cli: tui failed")
		ui.Fail(opt.stderr(), ui.ForMode(opt.Dark), "tui: "+err.Error())
		return 1
	}
	return 0
}

func doReplay(steps []script.Step, opt Options) int {
	doc := effects.NewDocument(opt.AppTitle)
	p := page.New(effects.New(doc, doc), page.Options{Username: opt.Username, Dark: opt.Dark})
	p.Mount()
	defer p.Unmount()

	outcomes := script.Replay(p, steps)

	th := ui.ForMode(p.DarkMode())
	st := p.Stats()
	items := p.Snapshot().Items()

	var lines []string
	lines = append(lines, ui.Header(th, st))
	lines = append(lines, th.Muted.Render(ui.ProgressBar(st.Completed, st.Total, 28)))
	lines = append(lines, "")
	if opt.Group {
		lines = append(lines, ui.GroupLines(th, items)...)
	} else {
		lines = append(lines, ui.FlatLines(th, items)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.Section(th, "Stats", ui.StatsLines(th, st))...)
	lines = append(lines, "")
	lines = append(lines, ui.Section(th, "Context", ui.UserLines(th, p.Context()))...)
	lines = append(lines, "")
	lines = append(lines, th.Muted.Render("title: "+doc.Title()))
	fmt.Fprintln(opt.stdout(), ui.Panel(th, lines))

	for i, o := range outcomes {
		if o.Err != nil {
			ui.Fail(opt.stderr(), th, fmt.Sprintf("step %d (%s): %v", i+1, o.Step.Op, o.Err))
		}
	}
	ui.OK(opt.stdout(), th, fmt.Sprintf("replayed %d steps", len(steps)))
	return 0
}
