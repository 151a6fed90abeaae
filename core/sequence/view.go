// core/sequence/view.go
package sequence

// View is the result of a transformation that may or may not have needed to
// copy: it either borrows the bytes it was given or owns a new buffer.
// Readers use Bytes and never need to know which.
type View struct {
	data  []byte
	owned bool
}

// Borrowed wraps bytes owned by someone else. They must not be modified
// while the View is in use.
func Borrowed(b []byte) View { return View{data: b} }

// Owned wraps a buffer the View is free to hand out.
func Owned(b []byte) View { return View{data: b, owned: true} }

// Bytes returns the viewed bytes.
func (v View) Bytes() []byte { return v.data }

// Len returns the number of viewed bytes.
func (v View) Len() int { return len(v.data) }

// IsOwned reports whether the bytes were allocated by the transformation.
func (v View) IsOwned() bool { return v.owned }

// Sequence implements [Sequence], so transformations can be chained.
func (v View) Sequence() []byte { return v.data }

func (v View) String() string { return string(v.data) }
