package ui

import (
	"fmt"

	"github.com/idilsaglam/todohooks/internal/model"
	"github.com/idilsaglam/todohooks/internal/stats"
)

const maxTitle = 80

// ItemLine renders one todo row with its 1-based index.
func ItemLine(t Theme, idx int, it model.Item) string {
	box, boxStyle, textStyle := t.BoxUnchecked, t.Muted, t.Text
	if it.Completed {
		box, boxStyle, textStyle = t.BoxChecked, t.Success, t.Done
	}
	text := it.Text
	if len([]rune(text)) > maxTitle {
		text = string([]rune(text)[:maxTitle-3]) + "..."
	}
	return fmt.Sprintf("%s %s %s",
		t.Help.Render(fmt.Sprintf("%2d.", idx)), boxStyle.Render(box), textStyle.Render(text))
}

// FlatLines renders items in list order.
func FlatLines(t Theme, items []model.Item) []string {
	if len(items) == 0 {
		return []string{t.Muted.Render("no todos yet, add one")}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		out = append(out, ItemLine(t, i+1, it))
	}
	return out
}

// GroupLines renders pending items first, then done ones.
func GroupLines(t Theme, items []model.Item) []string {
	var pend, done []model.Item
	for _, it := range items {
		if it.Completed {
			done = append(done, it)
		} else {
			pend = append(pend, it)
		}
	}
	var lines []string
	lines = append(lines, t.Accent.Render("Pending"))
	if len(pend) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, FlatLines(t, pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Accent.Render("Done"))
	if len(done) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, FlatLines(t, done)...)
	}
	return lines
}

// Header is the counts line shown above the list.
func Header(t Theme, st stats.Stats) string {
	return fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render(t.SymDone), st.Completed,
		t.Pending.Render(t.SymPending), st.Pending,
		t.Accent.Render("Total"), st.Total,
	)
}

// StatsLines renders the statistics block.
func StatsLines(t Theme, st stats.Stats) []string {
	return []string{
		fmt.Sprintf("Total:      %d", st.Total),
		fmt.Sprintf("Completed:  %d", st.Completed),
		fmt.Sprintf("Pending:    %d", st.Pending),
		fmt.Sprintf("Completion: %d%%", st.CompletionRate),
		t.Muted.Render(ProgressBar(st.Completed, st.Total, 28)),
	}
}

// UserLines renders the shared user context.
func UserLines(t Theme, ctx model.UserContext) []string {
	return []string{
		fmt.Sprintf("%s %s", t.Accent.Render("User: "), ctx.Username),
		fmt.Sprintf("%s %s", t.Accent.Render("Theme:"), ctx.Theme),
	}
}
