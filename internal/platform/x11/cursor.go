//go:build (linux && !android) || freebsd || openbsd || netbsd

package x11

import (
	"fmt"
	"image"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// Cursor implements platform.CursorLocator with QueryPointer on the root
// window of the default screen.
type Cursor struct {
	conn *xgb.Conn
	root xproto.Window
}

// NewCursor connects to the X server named by $DISPLAY.
func NewCursor() (*Cursor, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connect to X server: %w", err)
	}
	setup := xproto.Setup(conn)
	return &Cursor{conn: conn, root: setup.DefaultScreen(conn).Root}, nil
}

// CursorPosition returns the pointer location relative to the root window.
func (c *Cursor) CursorPosition() (image.Point, error) {
	reply, err := xproto.QueryPointer(c.conn, c.root).Reply()
	if err != nil {
		return image.Point{}, fmt.Errorf("query pointer: %w", err)
	}
	return image.Pt(int(reply.RootX), int(reply.RootY)), nil
}

// Close drops the X connection.
func (c *Cursor) Close() error {
	c.conn.Close()
	return nil
}
