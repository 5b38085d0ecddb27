// Package key defines the neutral key model used by the dispatcher.
//
// A key press is a modifier bitset plus a key code (see Event). Chords are
// parsed from pipe-delimited patterns such as "<META>|x|s":
//
//   - modifier tokens <CONTROL>, <META>, <SHIFT>, <ALT> accumulate,
//   - key tokens <TAB>, <SPACE>, <UNDERSCORE>, <ESC>, <SLASH> and single
//     letters append to the key sequence in order.
//
// Tokens are case-insensitive. <META> resolves to Control on Linux and
// Windows and to the Command (Meta) key on macOS.
//
// Hosts running in a terminal convert tcell events with FromTcell.
package key
