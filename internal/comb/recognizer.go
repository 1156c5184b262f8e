package comb

// Recognizer reports whether a construct could start at the current
// position, without consuming input. Recovery points are recognizers:
// unions of everything an enclosing context would accept next.
type Recognizer interface {
	Recognize(s Stream) bool
}

// RecognizerFunc adapts a function to the Recognizer interface.
type RecognizerFunc func(Stream) bool

func (f RecognizerFunc) Recognize(s Stream) bool {
	return f(s)
}

// Or unions recognizers: it recognizes when any member does.
func Or(rs ...Recognizer) Recognizer {
	return RecognizerFunc(func(s Stream) bool {
		for _, r := range rs {
			if r.Recognize(s) {
				return true
			}
		}
		return false
	})
}

// EOF recognizes the end of input. It is the ambient recovery point of a
// whole-document parse.
var EOF Recognizer = RecognizerFunc(Stream.Exhausted)

// Never recognizes nothing.
var Never Recognizer = RecognizerFunc(func(Stream) bool { return false })
