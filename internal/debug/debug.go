package debug

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
)

var (
	enabled   bool
	enabledMu sync.RWMutex
)

var (
	tagColor  = color.New(color.FgCyan)
	timeColor = color.New(color.FgHiBlack)
)

// SetDebug enables or disables debug mode
func SetDebug(enable bool) {
	enabledMu.Lock()
	defer enabledMu.Unlock()
	enabled = enable
}

// IsEnabled returns whether debug mode is enabled
func IsEnabled() bool {
	enabledMu.RLock()
	defer enabledMu.RUnlock()
	return enabled
}

// SetNoColor enables or disables colored output
func SetNoColor(disable bool) {
	color.NoColor = disable
}

// Debug prints a debug message with timestamp
func Debug(format string, args ...interface{}) {
	if !IsEnabled() {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "%s %s %s\n",
		tagColor.Sprint("[DEBUG]"), timeColor.Sprint(timestamp), msg)
}

// DebugSection prints a section header for debug output
func DebugSection(section string) {
	if !IsEnabled() {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	fmt.Fprintf(os.Stderr, "%s %s %s\n",
		tagColor.Sprint("[DEBUG]"), timeColor.Sprint(timestamp),
		tagColor.Sprintf("=== %s ===", section))
}

// DebugValue prints key=value style debug info
func DebugValue(key string, value interface{}) {
	if !IsEnabled() {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	fmt.Fprintf(os.Stderr, "%s %s %s = %v\n",
		tagColor.Sprint("[DEBUG]"), timeColor.Sprint(timestamp),
		tagColor.Sprint(key), value)
}
