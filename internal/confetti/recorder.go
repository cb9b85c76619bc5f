package confetti

import "fmt"

// Op is one call recorded by a Recorder.
type Op struct {
	Name string
	Args []float64
}

func (o Op) String() string {
	return fmt.Sprintf("%s%v", o.Name, o.Args)
}

// Recorder is a Surface that remembers every call. It backs the tests of
// this package and of the renderers built on it.
type Recorder struct {
	Ops   []Op
	depth int
}

func (r *Recorder) record(name string, args ...float64) {
	r.Ops = append(r.Ops, Op{Name: name, Args: args})
}

func (r *Recorder) Clear() { r.record("clear") }

func (r *Recorder) Save() {
	r.depth++
	r.record("save")
}

func (r *Recorder) Restore() {
	r.depth--
	r.record("restore")
}

func (r *Recorder) Translate(x, y float64) { r.record("translate", x, y) }
func (r *Recorder) Rotate(theta float64)   { r.record("rotate", theta) }

func (r *Recorder) SetFill(c RGB, alpha float64) {
	r.record("fill-color", c.R, c.G, c.B, alpha)
}

func (r *Recorder) Rect(x, y, w, h float64) { r.record("rect", x, y, w, h) }
func (r *Recorder) Fill()                   { r.record("fill") }

// Depth is the number of unmatched Save calls.
func (r *Recorder) Depth() int { return r.depth }

// Count returns how many times the named op was recorded.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Name == name {
			n++
		}
	}
	return n
}

// Reset drops everything recorded so far.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.depth = 0
}
