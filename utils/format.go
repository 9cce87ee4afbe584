package utils

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// MessageType is a custom type used as a placeholder for various message types.
type MessageType int

// The message types used accross the CLI application.
const (
	DefaultMessage MessageType = iota
	SuccessMessage
	ErrorMessage
	StatusMessage
)

// Colors used accross the CLI application. The color package decides from
// stdout whether to emit escape codes; call SetColorOutput with the stream
// the messages are actually written to.
var (
	StatusColor  = color.New(color.FgCyan)
	SuccessColor = color.New(color.FgGreen)
	ErrorColor   = color.New(color.FgRed, color.Bold)
)

// SetColorOutput turns the colored output on only when f is a terminal
// and NO_COLOR is not set.
func SetColorOutput(f *os.File) {
	_, noColor := os.LookupEnv("NO_COLOR")
	color.NoColor = noColor || !term.IsTerminal(int(f.Fd()))
}

// DecorateText shows the message types in different colors.
func DecorateText(s string, msgType MessageType) string {
	switch msgType {
	case StatusMessage:
		return StatusColor.Sprint(s)
	case SuccessMessage:
		return SuccessColor.Sprint(s)
	case ErrorMessage:
		return ErrorColor.Sprint(s)
	default:
		return s
	}
}

// FormatTime formats time.Duration output to a human readable value.
func FormatTime(d time.Duration) string {
	if d.Seconds() < 60.0 {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	if d.Minutes() < 60.0 {
		remainingSeconds := math.Mod(d.Seconds(), 60)
		return fmt.Sprintf("%dm %.2fs", int64(d.Minutes()), remainingSeconds)
	}
	if d.Hours() < 24.0 {
		remainingMinutes := math.Mod(d.Minutes(), 60)
		remainingSeconds := math.Mod(d.Seconds(), 60)
		return fmt.Sprintf("%dh %dm %.2fs",
			int64(d.Hours()), int64(remainingMinutes), remainingSeconds)
	}
	remainingHours := math.Mod(d.Hours(), 24)
	remainingMinutes := math.Mod(d.Minutes(), 60)
	remainingSeconds := math.Mod(d.Seconds(), 60)
	return fmt.Sprintf("%dd %dh %dm %.2fs",
		int64(d.Hours()/24), int64(remainingHours),
		int64(remainingMinutes), remainingSeconds)
}
