// Package darwin provides macOS cursor tracking through CoreGraphics.
// All functionality requires CGo; without it the package registers nothing
// and the overlay reports the platform as unsupported.
package darwin
