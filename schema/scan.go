package schema

// scanner is a cursor over scalar text used by the grammar matchers. Every
// matcher must consume the whole input to succeed.
type scanner struct {
	s string
	i int
}

func (sc *scanner) eof() bool { return sc.i >= len(sc.s) }

func (sc *scanner) peek() byte {
	if sc.eof() {
		return 0
	}
	return sc.s[sc.i]
}

func (sc *scanner) accept(c byte) bool {
	if sc.peek() == c && !sc.eof() {
		sc.i++
		return true
	}
	return false
}

// acceptAny consumes one byte from set.
func (sc *scanner) acceptAny(set string) bool {
	if sc.eof() {
		return false
	}
	for j := 0; j < len(set); j++ {
		if sc.s[sc.i] == set[j] {
			sc.i++
			return true
		}
	}
	return false
}

// prefix consumes p if the input continues with it.
func (sc *scanner) prefix(p string) bool {
	if len(sc.s)-sc.i >= len(p) && sc.s[sc.i:sc.i+len(p)] == p {
		sc.i += len(p)
		return true
	}
	return false
}

// run consumes bytes while ok holds and returns how many.
func (sc *scanner) run(ok func(byte) bool) int {
	start := sc.i
	for !sc.eof() && ok(sc.s[sc.i]) {
		sc.i++
	}
	return sc.i - start
}

// sign consumes an optional sign and reports whether it was '-'.
func (sc *scanner) sign(set string) (neg bool) {
	c := sc.peek()
	if sc.acceptAny(set) {
		return c == '-'
	}
	return false
}

func isDec(c byte) bool { return c >= '0' && c <= '9' }
func isDecU(c byte) bool { return isDec(c) || c == '_' }
func isOct(c byte) bool { return c >= '0' && c <= '7' }
func isOctU(c byte) bool { return isOct(c) || c == '_' }
func isBinU(c byte) bool { return c == '0' || c == '1' || c == '_' }
func isHex(c byte) bool { return isDec(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F') }
func isHexU(c byte) bool { return isHex(c) || c == '_' }
func isSpaceTab(c byte) bool { return c == ' ' || c == '\t' }

func oneOf(s string, set ...string) bool {
	for _, x := range set {
		if s == x {
			return true
		}
	}
	return false
}

// sexagesimalTail consumes (:[0-5]?[0-9])+ and reports whether at least
// one group matched.
func (sc *scanner) sexagesimalTail() bool {
	n := 0
	for sc.peek() == ':' {
		save := sc.i
		sc.i++
		c0 := sc.peek()
		switch {
		case c0 >= '0' && c0 <= '5':
			sc.i++
			if isDec(sc.peek()) && !sc.eof() {
				sc.i++
			}
		case isDec(c0):
			sc.i++
		default:
			sc.i = save
			return n > 0
		}
		n++
	}
	return n > 0
}
