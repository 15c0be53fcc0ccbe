package helpers

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

var (
	// Output is where every report line is written
	Output io.Writer = color.Output

	// SuccessColor for successful operations
	SuccessColor = color.New(color.FgGreen, color.Bold)

	// ErrorColor for error messages
	ErrorColor = color.New(color.FgRed, color.Bold)

	// WarningColor for warning messages
	WarningColor = color.New(color.FgYellow, color.Bold)

	// InfoColor for informational messages
	InfoColor = color.New(color.FgCyan, color.Bold)

	// TitleColor for titles and headers
	TitleColor = color.New(color.FgMagenta, color.Bold)

	// PlainColor for body text
	PlainColor = color.New(color.Reset)

	// SectionStyle renders report section headings
	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF2E97"))
)

// SetColorEnabled toggles ANSI colors for all printers
func SetColorEnabled(enabled bool) {
	color.NoColor = !enabled
}

// PrintSuccess prints a success message
func PrintSuccess(format string, args ...interface{}) {
	SuccessColor.Fprintf(Output, "✅ "+format+"\n", args...)
}

// PrintError prints an error message
func PrintError(format string, args ...interface{}) {
	ErrorColor.Fprintf(Output, "❌ "+format+"\n", args...)
}

// PrintWarning prints a warning message
func PrintWarning(format string, args ...interface{}) {
	WarningColor.Fprintf(Output, "⚠️  "+format+"\n", args...)
}

// PrintInfo prints an info message
func PrintInfo(format string, args ...interface{}) {
	InfoColor.Fprintf(Output, "ℹ️  "+format+"\n", args...)
}

// PrintTitle prints a title
func PrintTitle(format string, args ...interface{}) {
	TitleColor.Fprintf(Output, "🎯 "+format+"\n", args...)
}

// PrintLine prints a message behind an arbitrary icon; an empty icon prints
// the message alone
func PrintLine(icon, format string, args ...interface{}) {
	if icon != "" {
		format = icon + " " + format
	}
	PlainColor.Fprintf(Output, format+"\n", args...)
}

// PrintBullet prints an indented bullet point
func PrintBullet(format string, args ...interface{}) {
	PlainColor.Fprintf(Output, "• "+format+"\n", args...)
}

// PrintProgress prints a progress message
func PrintProgress(current, total int, message string) {
	InfoColor.Fprintf(Output, "📊 [%d/%d] %s\n", current, total, message)
}

// PrintSection prints a section heading underlined with '='
func PrintSection(title string) {
	heading := title
	if !color.NoColor {
		heading = SectionStyle.Render(title)
	}
	fmt.Fprintln(Output, heading)
	fmt.Fprintln(Output, strings.Repeat("=", 60))
}

// PrintSeparator prints a visual separator
func PrintSeparator() {
	fmt.Fprintln(Output, strings.Repeat("─", 80))
}

// PrintBlank prints an empty line
func PrintBlank() {
	fmt.Fprintln(Output)
}
