package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// logOut receives diagnostic lines. Progress and summaries go to the
// command's stdout instead.
var logOut io.Writer = color.Error

var (
	colorBlue   = color.New(color.FgBlue)
	colorGreen  = color.New(color.FgGreen)
	colorYellow = color.New(color.FgYellow, color.Bold)
	colorRed    = color.New(color.FgRed)
)

func logInfo(format string, args ...any) {
	fmt.Fprintf(logOut, "%s %s\n", colorBlue.Sprint("[INFO]"), fmt.Sprintf(format, args...))
}

func logSuccess(format string, args ...any) {
	fmt.Fprintf(logOut, "%s %s\n", colorGreen.Sprint("[OK]"), fmt.Sprintf(format, args...))
}

func logWarning(format string, args ...any) {
	fmt.Fprintf(logOut, "%s %s\n", colorYellow.Sprint("[WARN]"), fmt.Sprintf(format, args...))
}

func logError(format string, args ...any) {
	fmt.Fprintf(logOut, "%s %s\n", colorRed.Sprint("[ERROR]"), fmt.Sprintf(format, args...))
}

// progressBar renders a colored bar followed by the percentage.
func progressBar(percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100

	c := colorRed
	switch {
	case percent >= 100:
		c = colorGreen
	case percent >= 50:
		c = colorYellow
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %3d%%", c.Sprint(bar), percent)
}

// rule is the banner line of the translate summary.
var rule = strings.Repeat("=", 60)
