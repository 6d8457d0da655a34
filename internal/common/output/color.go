package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	// Status colors
	Notified   = color.New(color.FgGreen)
	Suppressed = color.New(color.FgYellow)
	Failed     = color.New(color.FgRed)
	Removed    = color.New(color.FgCyan)
	Clean      = color.New(color.Faint)

	// Message colors
	Success = color.New(color.FgGreen)
	Warning = color.New(color.FgYellow)
	Error   = color.New(color.FgRed)
	Info    = color.New(color.FgCyan)
	Dim     = color.New(color.Faint)

	// Structural colors
	Header  = color.New(color.FgWhite, color.Bold)
	Package = color.New(color.FgBlue, color.Bold)
)

// Stdout is where status lines are written. Tests may replace it.
var Stdout io.Writer = os.Stdout

// NoColor disables color output
func NoColor() {
	color.NoColor = true
}

// ForceColor enables color output even when not a TTY
func ForceColor() {
	color.NoColor = false
}

// StatusColor returns the appropriate color for a gate outcome name
func StatusColor(status string) *color.Color {
	switch status {
	case "notified":
		return Notified
	case "suppressed":
		return Suppressed
	case "send-failed":
		return Failed
	case "marker-removed":
		return Removed
	case "no-update":
		return Clean
	default:
		return color.New(color.Reset)
	}
}

// PrintSuccess prints a success message
func PrintSuccess(format string, args ...interface{}) {
	Success.Fprintf(Stdout, format+"\n", args...)
}

// PrintWarning prints a warning message
func PrintWarning(format string, args ...interface{}) {
	Warning.Fprintf(Stdout, format+"\n", args...)
}

// PrintInfo prints an info message
func PrintInfo(format string, args ...interface{}) {
	Info.Fprintf(Stdout, format+"\n", args...)
}

// Sprintf returns a colored string without printing
func Sprintf(c *color.Color, format string, args ...interface{}) string {
	return c.Sprintf(format, args...)
}

// Println prints with color and newline
func Println(c *color.Color, a ...interface{}) {
	c.Fprintln(Stdout, a...)
}

// Plain prints without color
func Plain(format string, args ...interface{}) {
	fmt.Fprintf(Stdout, format, args...)
}

// FormatStatus formats a status string with appropriate color
func FormatStatus(status string) string {
	c := StatusColor(status)
	return c.Sprintf("[%s]", status)
}

// FormatPackage formats a package name with color, prefixed by its jail if any
func FormatPackage(jail, pkg string) string {
	if jail != "" {
		return Package.Sprintf("%s@%s", pkg, jail)
	}
	return Package.Sprint(pkg)
}
