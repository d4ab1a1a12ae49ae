package model

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// UserContext carries the values every view of the page may read.
// It is handed down explicitly; nothing looks it up globally.
type UserContext struct {
	Username string
	Theme    string
}

// ThemeFor maps the display mode flag to a theme name.
func ThemeFor(dark bool) string {
	if dark {
		return ThemeDark
	}
	return ThemeLight
}
