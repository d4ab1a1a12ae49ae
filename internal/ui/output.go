package ui

import (
	"fmt"
	"io"
)

// OK prints a success line.
func OK(w io.Writer, t Theme, msg string) {
	fmt.Fprintln(w, t.Success.Render("✔ "+msg))
}

// Fail prints a failure line.
func Fail(w io.Writer, t Theme, msg string) {
	fmt.Fprintln(w, t.Error.Render("✖ "+msg))
}
