// Package ascii provides terminal ANSI color codes semantic names for
// colors so they can be grouped in themes.
package ascii

import "fmt"

const (
	Reset  = "\033[0m"
	Red    = "\033[1;31m"
	Yellow = "\033[1;33m"
	Green  = "\033[1;32m"
	Cyan   = "\033[1;36m"
	Gray   = "\033[90m" // Bright black, actually
	Bold   = "\033[1m"

	// 256-color palette
	Orange = "\033[38;5;208m"
	Purple = "\033[1;38;5;99m"
)

// Theme defines semantic color mappings
type Theme struct {
	Error string

	Match string // matched source text
	Range string // match positions
}

// DefaultTheme provides a sensible default color mapping.
var DefaultTheme = Theme{
	Error: Red,
	Match: Green,
	Range: Orange,
}

// PlainTheme doesn't emit any escape sequence
var PlainTheme = Theme{}

// Color wraps the formatted string in color.  An empty color leaves
// the text untouched.
func Color(color, format string, args ...any) string {
	if color == "" {
		return fmt.Sprintf(format, args...)
	}
	return fmt.Sprintf(color+format+Reset, args...)
}
