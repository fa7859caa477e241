package charts

import (
	"image/color"
)

// op is one recorded surface call.
type op struct {
	kind  string
	color color.RGBA
	args  []float64
	path  Path
}

// recorder is a Surface that remembers every call.
type recorder struct {
	width, height int
	hints         Hints
	lineWidth     float64
	current       color.RGBA
	ops           []op
}

func newRecorder(width, height int) *recorder {
	return &recorder{width: width, height: height}
}

func (r *recorder) Size() (int, int)       { return r.width, r.height }
func (r *recorder) SetHints(h Hints)       { r.hints = h }
func (r *recorder) SetLineWidth(w float64) { r.lineWidth = w }

func (r *recorder) SetColor(c color.Color) {
	r.current = color.RGBAModel.Convert(c).(color.RGBA)
}

func (r *recorder) FillRect(x, y, w, h float64) {
	r.ops = append(r.ops, op{kind: "fill", color: r.current, args: []float64{x, y, w, h}})
}

func (r *recorder) DrawLine(x1, y1, x2, y2 float64) {
	r.ops = append(r.ops, op{kind: "line", color: r.current, args: []float64{x1, y1, x2, y2}})
}

func (r *recorder) DrawPath(p Path) {
	r.ops = append(r.ops, op{kind: "path", color: r.current, path: p})
}

func (r *recorder) count(kind string) int {
	n := 0
	for _, o := range r.ops {
		if o.kind == kind {
			n++
		}
	}
	return n
}

func (r *recorder) paths() []op {
	var out []op
	for _, o := range r.ops {
		if o.kind == "path" {
			out = append(out, o)
		}
	}
	return out
}
