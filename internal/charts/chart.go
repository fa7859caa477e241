package charts

import "fmt"

// Chart owns a data set and renders it as one line per series.
//
// Chart does no locking. Hosts call it from a single goroutine, and a render
// pass must not overlap a mutation.
type Chart struct {
	data   DataSet
	target int
	colors ColorFunction
	redraw func()
}

// Option configures a Chart.
type Option func(*Chart)

// WithColorFunction sets the initial color function.
func WithColorFunction(fn ColorFunction) Option {
	return func(c *Chart) {
		c.colors = fn
	}
}

// WithRedraw registers the host's redraw primitive, called after every
// successful mutation.
func WithRedraw(fn func()) Option {
	return func(c *Chart) {
		c.redraw = fn
	}
}

// New creates an empty chart colored by TolPalette unless an option says
// otherwise.
func New(opts ...Option) *Chart {
	c := &Chart{colors: TolPalette()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Len returns the number of series.
func (c *Chart) Len() int { return len(c.data) }

// Series returns a copy of the series at index.
func (c *Chart) Series(index int) (Series, error) {
	if err := c.checkIndex(index); err != nil {
		return nil, err
	}
	return append(Series{}, c.data[index]...), nil
}

// Snapshot returns a deep copy of the data set.
func (c *Chart) Snapshot() DataSet { return c.data.Clone() }

// AppendSeries adds a new series holding samples and returns its index.
func (c *Chart) AppendSeries(samples ...int) int {
	c.data = append(c.data, append(Series{}, samples...))
	Logger().Debug("series appended", "index", len(c.data)-1, "samples", len(samples))
	c.changed()
	return len(c.data) - 1
}

// ReplaceSeriesAt overwrites the series at index with samples.
func (c *Chart) ReplaceSeriesAt(index int, samples []int) error {
	if err := c.checkIndex(index); err != nil {
		return err
	}
	c.data[index] = append(Series{}, samples...)
	c.changed()
	return nil
}

// AppendToTargetSeries appends samples to the series selected by
// SetTargetSeries. A target past the end of the data set fails with
// ErrIndexOutOfRange and leaves the data set untouched.
func (c *Chart) AppendToTargetSeries(samples ...int) error {
	if err := c.checkIndex(c.target); err != nil {
		return fmt.Errorf("appending to target series: %w", err)
	}
	c.data[c.target] = append(c.data[c.target], samples...)
	c.changed()
	return nil
}

// SetTargetSeries selects the series that AppendToTargetSeries writes to.
// The index may point past the current data set, for example before the
// series is added; it is validated when used. Negative indices are rejected.
func (c *Chart) SetTargetSeries(index int) error {
	if index < 0 {
		return fmt.Errorf("%w: target %d", ErrIndexOutOfRange, index)
	}
	c.target = index
	return nil
}

// TargetSeries returns the selected series index.
func (c *Chart) TargetSeries() int { return c.target }

// SetColorFunction swaps the color function. It applies from the next render.
func (c *Chart) SetColorFunction(fn ColorFunction) {
	c.colors = fn
}

// ColorFunction returns the active color function.
func (c *Chart) ColorFunction() ColorFunction { return c.colors }

// Render paints the chart onto s. Degenerate data (no series, or all
// samples equal) renders the background and center axis only.
func (c *Chart) Render(s Surface, cfg Config) {
	width, height := s.Size()
	data := c.data

	columns := data.Len()
	if cfg.SampleBound == BoundSampleCount {
		columns = 0
		for _, series := range data {
			columns = max(columns, len(series))
		}
	}

	geo, err := ComputeGeometry(width, height, columns, data.ValueRange())
	degenerate := err != nil
	if degenerate {
		Logger().Debug("rendering grid only", "err", err, "series", data.Len())
	}

	s.SetHints(cfg.Hints())
	lineWidth := cfg.LineWidth
	if lineWidth <= 0 {
		lineWidth = DefaultLineWidth
	}
	s.SetLineWidth(lineWidth)

	drawGrid(s, cfg.Background, gridParams{
		width:        width,
		height:       height,
		seriesCount:  data.Len(),
		maxSample:    data.MaxSample(),
		tickInterval: cfg.TickInterval,
		geometry:     geo,
		degenerate:   degenerate,
	})
	if degenerate {
		return
	}

	colors := c.colors
	if colors == nil || colors.MaxSteps() <= 0 {
		colors = Solid(cfg.Foreground)
	}
	for i, series := range data {
		path := BuildSeriesPath(series, data.Len(), cfg.SampleBound, geo.HStep, geo.VStep, cfg.Smooth)
		if path.Empty() {
			continue
		}
		s.SetColor(StepColor(colors, i))
		s.DrawPath(path)
	}
}

func (c *Chart) checkIndex(index int) error {
	if index < 0 || index >= len(c.data) {
		return fmt.Errorf("%w: index %d, series count %d", ErrIndexOutOfRange, index, len(c.data))
	}
	return nil
}

func (c *Chart) changed() {
	if c.redraw != nil {
		c.redraw()
	}
}
