package render

import (
	"fmt"

	"resumate-backend/internal/resumes"
)

// Layout selects one of the built-in templates.
type Layout string

const (
	LayoutClassic   Layout = resumes.LayoutClassic
	LayoutTwoColumn Layout = resumes.LayoutTwoColumn
	LayoutSidebar   Layout = resumes.LayoutSidebar
)

// ParseLayout validates a layout id. The empty string maps to the classic
// layout so older resumes keep rendering.
func ParseLayout(id string) (Layout, error) {
	switch id {
	case "":
		return LayoutClassic, nil
	case string(LayoutClassic), string(LayoutTwoColumn), string(LayoutSidebar):
		return Layout(id), nil
	}
	return "", fmt.Errorf("unknown layout %q", id)
}

// accentColors maps the UI color names to hex values shared by the HTML and
// PDF renderers. Unknown names fall back to the default accent.
var accentColors = map[string]string{
	"purple-500": "#a855f7",
	"blue-500":   "#3b82f6",
	"emerald-500": "#10b981",
	"rose-500":   "#f43f5e",
	"amber-500":  "#f59e0b",
	"slate-700":  "#334155",
}

const defaultAccent = "#a855f7"

func accentFor(name string) string {
	if hex, ok := accentColors[name]; ok {
		return hex
	}
	return defaultAccent
}
