package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Output formatting helpers

var (
	successMark = color.New(color.FgGreen)
	warningMark = color.New(color.FgYellow)
	errorMark   = color.New(color.FgRed)
)

// printInfo prints an informational message
func printInfo(msg string) {
	if globalQuiet {
		return
	}
	fmt.Println(msg)
}

// printSuccess prints a success message
func printSuccess(msg string) {
	if globalQuiet {
		return
	}
	fmt.Printf("%s %s\n", mark(successMark, "✓"), msg)
}

// printWarning prints a warning message
func printWarning(msg string) {
	if globalQuiet {
		return
	}
	fmt.Printf("%s %s\n", mark(warningMark, "⚠"), msg)
}

// printErrorMsg prints an error message (different from printError which takes error type)
func printErrorMsg(msg string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", mark(errorMark, "✗"), msg)
}

// mark renders a status symbol, plain when color is disabled.
func mark(c *color.Color, symbol string) string {
	if globalNoColor {
		return symbol
	}
	return c.Sprint(symbol)
}
