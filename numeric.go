package csssyntax

import "strconv"

// NumericValue is the triple described in spec.md §3. Representation is
// retained verbatim (spec.md §9 "Numeric representation retention") since
// downstream consumers such as the An+B grammar inspect its first byte to
// detect an explicit sign.
type NumericValue struct {
	Representation string
	Value          float64
	IntValue       int32
	IsInt          bool
}

// HasSign reports whether the original source spelled out a leading '+' or
// '-' before the number, per spec.md §9.
func (n NumericValue) HasSign() bool {
	if n.Representation == "" {
		return false
	}
	switch n.Representation[0] {
	case '+', '-':
		return true
	default:
		return false
	}
}

// parseNumeric consumes the numeric subgrammar of spec.md §4.B starting at
// c.pos (the cursor must already be positioned at the start of the number:
// a digit, or a sign/'.' that is known to begin a number). It returns the
// NumericValue and leaves the cursor just past the matched text.
func parseNumeric(c *cursor) NumericValue {
	start := c.pos
	if c.peekByte(0) == '+' || c.peekByte(0) == '-' {
		c.advanceBytes(1)
	}
	for isDigit(c.peekByte(0)) {
		c.advanceBytes(1)
	}
	isInt := true
	if c.peekByte(0) == '.' && isDigit(c.peekByte(1)) {
		isInt = false
		c.advanceBytes(1)
		for isDigit(c.peekByte(0)) {
			c.advanceBytes(1)
		}
	}
	if b := c.peekByte(0); b == 'e' || b == 'E' {
		k := 1
		if n := c.peekByte(1); n == '+' || n == '-' {
			k = 2
		}
		if isDigit(c.peekByte(k)) {
			isInt = false
			c.advanceBytes(k)
			for isDigit(c.peekByte(0)) {
				c.advanceBytes(1)
			}
		}
	}
	repr := c.source.Contents[start:c.pos]
	value, _ := strconv.ParseFloat(repr, 64)
	nv := NumericValue{Representation: repr, Value: value}
	if isInt {
		if iv, err := strconv.ParseInt(repr, 10, 32); err == nil {
			nv.IsInt = true
			nv.IntValue = int32(iv)
		}
	}
	return nv
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
