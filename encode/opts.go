package encode

type EncodeOption func(*EncState)

// Indent sets the block indentation, 2 by default.
func Indent(n int) EncodeOption {
	return func(es *EncState) {
		if n > 0 {
			es.indent = n
		}
	}
}

// EncodeComments controls whether node comments are written. Comments
// inside flow collections are never written.
func EncodeComments(v bool) EncodeOption {
	return func(es *EncState) { es.comments = v }
}
