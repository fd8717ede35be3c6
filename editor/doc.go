// Package editor maps a buffer onto a terminal viewport and drives it from
// commands.
//
// View owns the cursor location, scroll offset, viewport extent and the
// redraw flag. Model adapts a View to the Bubble Tea run loop: it decodes key
// events into commands, keeps a frame cache filled through View.Render, and
// draws the cursor and status line.
package editor
