package der

// byteCursor is a bounds-checked read window over an immutable byte buffer.
// The window spans buf[start:end]. Reads never copy or mutate the backing
// buffer; every multi-byte read in this package goes through advance with the
// exact number of bytes about to be interpreted.
type byteCursor struct {
	buf   []byte
	start int
	end   int
}

func newCursor(buf []byte) *byteCursor {
	return &byteCursor{buf: buf}
}

// walk moves the window to the n bytes following it. The caller must have
// verified bounds with need beforehand.
func (c *byteCursor) walk(n int) {
	c.start = c.end
	c.end += n
}

// need returns a [LengthError] if fewer than n bytes remain beyond the
// current window.
func (c *byteCursor) need(n int) error {
	if c.end+n > len(c.buf) {
		return &LengthError{Available: len(c.buf), Requested: c.end + n}
	}
	return nil
}

// advance is the checked variant of walk.
func (c *byteCursor) advance(n int) error {
	if err := c.need(n); err != nil {
		return err
	}
	c.walk(n)
	return nil
}

// reset repositions the window, typically to restart a sub-parse over a
// sliced region.
func (c *byteCursor) reset(start, end int) {
	c.start, c.end = start, end
}

// window returns the bytes currently covered by the window.
func (c *byteCursor) window() []byte {
	return c.buf[c.start:c.end]
}
