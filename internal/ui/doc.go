// Package ui renders text for the terminal.
//
// Two layers live here. Colorize and Painter insert color and attribute
// escape sequences around text, using termcolor-style names ("red",
// "bold", "blink") that are resolved to fatih/color attributes. The semantic
// formatters (Muted, Error) style the CLI's own chrome.
//
// # Names
//
// Colors: grey, black, red, green, yellow, blue, magenta, cyan, white and
// the light_* variants of each. Attributes: bold, dark, italic, underline,
// blink, reverse, concealed, strike. Unknown names are ignored.
//
// # Color Modes
//
//   - ModeAlways: escape sequences are always emitted
//   - ModeNever: text is returned unchanged
//   - ModeAuto: colors are emitted when the target stream is a terminal and
//     NO_COLOR is not set
//
// # Usage
//
//	p := ui.NewPainter(ui.ModeAuto, os.Stdout)
//	p.Colorize("CRITICAL", "red")
//	p.Colorize("disk full", "", "bold", "blink")
package ui
