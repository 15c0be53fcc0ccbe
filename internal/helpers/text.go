package helpers

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitleKey turns a snake_case key into a display label, e.g.
// "state_management" becomes "State Management"
func TitleKey(key string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}
