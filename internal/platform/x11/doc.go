// Package x11 provides cursor tracking for Linux and BSD desktops through
// the X protocol. Wayland sessions work through XWayland.
package x11
