// Package terminal provides direct ANSI terminal control for the slate surface.
//
// Features:
//   - Raw-mode stdin with restartable escape sequence decoding
//   - SIGWINCH resize detection, delivered in-order with key input
//   - Alternate screen buffer with clean restoration on exit/panic
//
// The package bypasses terminfo/termcap entirely, emitting direct ANSI
// sequences. Target environments: Linux, macOS, BSDs with xterm-compatible
// terminals.
package terminal
