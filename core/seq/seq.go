// Package seq provides read-only, indexable views over symbol sequences.
package seq

// Sequence is an indexable, length-bounded view over symbols.
type Sequence interface {
	Len() int
	At(i int) byte
}

// Bytes is a Sequence backed directly by a byte slice.
type Bytes []byte

func (b Bytes) Len() int      { return len(b) }
func (b Bytes) At(i int) byte { return b[i] }

// reversed reads the wrapped sequence back to front.
type reversed struct {
	inner Sequence
	n     int
}

func (r reversed) Len() int      { return r.n }
func (r reversed) At(i int) byte { return r.inner.At(r.n - 1 - i) }

// Reverse returns a reversed view of s without copying it.
// Reversing a reversed view returns the original sequence.
func Reverse(s Sequence) Sequence {
	if r, ok := s.(reversed); ok {
		return r.inner
	}
	return reversed{inner: s, n: s.Len()}
}

// Collect copies the symbols of s into a new slice.
func Collect(s Sequence) []byte {
	out := make([]byte, s.Len())
	for i := range out {
		out[i] = s.At(i)
	}
	return out
}
