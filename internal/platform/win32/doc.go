// Package win32 provides cursor tracking through user32.
package win32
