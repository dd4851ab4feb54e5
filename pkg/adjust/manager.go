package adjust

import (
	"github.com/charmbracelet/log"
)

// Phase is a step of the layout state machine.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseMeasuring
	PhaseDeciding
	PhaseResizing
	PhaseDone
)

// String returns the lower-case phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMeasuring:
		return "measuring"
	case PhaseDeciding:
		return "deciding"
	case PhaseResizing:
		return "resizing"
	case PhaseDone:
		return "done"
	}
	return "idle"
}

// maxRestarts bounds how often a layout restarts because the configuration
// changed while it was running.
const maxRestarts = 3

// Result reports what one Manager.Layout call did.
type Result struct {
	Passes int       // full layout passes run on the host (1 or 2)
	Phases []Phase   // phases visited, in order
	State  PassState // final pass state
}

// Resized reports whether the second pass applied a resolved size.
func (r Result) Resized() bool { return r.State.Resize }

// Option configures a Manager.
type Option func(*Manager)

// WithConfig sets the initial configuration.
func WithConfig(cfg Config) Option {
	return func(m *Manager) { m.cfg = cfg }
}

// WithLogger sets the logger used for debug output of layout decisions.
func WithLogger(l *log.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithRequestLayout registers fn to be called whenever a setter changes
// the configuration.
func WithRequestLayout(fn func()) Option {
	return func(m *Manager) { m.onRequest = fn }
}

// Manager orchestrates the two-pass adjustable layout.
// It is not safe for concurrent use.
type Manager struct {
	cfg       Config
	logger    *log.Logger
	onRequest func()
	dirty     bool
}

// NewManager creates a manager with DefaultConfig unless overridden.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		cfg:    DefaultConfig(),
		logger: log.Default(),
		dirty:  true,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Config returns the current configuration.
func (m *Manager) Config() Config { return m.cfg }

// NeedsLayout reports whether the configuration changed since the last
// completed layout.
func (m *Manager) NeedsLayout() bool { return m.dirty }

// SetAdjustableType sets the adjustable item's type tag.
func (m *Manager) SetAdjustableType(t int) {
	if t == m.cfg.AdjustableType {
		return
	}
	m.cfg.AdjustableType = t
	m.requestLayout()
}

// SetAdjustablePosition sets the adjustable item's position, or NoPosition.
func (m *Manager) SetAdjustablePosition(pos int) {
	if pos == m.cfg.AdjustablePosition {
		return
	}
	m.cfg.AdjustablePosition = pos
	m.requestLayout()
}

// SetMinSize sets the absolute minimum size.
func (m *Manager) SetMinSize(size int) {
	if size == m.cfg.MinSize {
		return
	}
	m.cfg.MinSize = size
	m.requestLayout()
}

// SetMinRatio sets the minimum size ratio.
func (m *Manager) SetMinRatio(ratio float64) {
	if ratio == m.cfg.MinRatio {
		return
	}
	m.cfg.MinRatio = ratio
	m.requestLayout()
}

// SetMaxCount sets the item count cap.
func (m *Manager) SetMaxCount(n int) {
	if n == m.cfg.MaxCount {
		return
	}
	m.cfg.MaxCount = n
	m.requestLayout()
}

func (m *Manager) requestLayout() {
	m.dirty = true
	if m.onRequest != nil {
		m.onRequest()
	}
}

// Layout lays out h, stretching or shrinking the adjustable item so the
// realized items fill the viewport. If a setter is called while the layout
// is running, the layout restarts from scratch with the new configuration.
func (m *Manager) Layout(h Host) (Result, error) {
	var (
		res Result
		err error
	)
	for attempt := 0; attempt <= maxRestarts; attempt++ {
		m.dirty = false
		res, err = m.run(h, m.cfg)
		if err != nil || !m.dirty {
			break
		}
		m.logger.Debug("configuration changed during layout, restarting", "attempt", attempt+1)
	}
	return res, err
}

// run executes one layout invocation: Idle → Measuring → Deciding →
// (Done | Resizing → Done).
func (m *Manager) run(h Host, cfg Config) (Result, error) {
	res := Result{Phases: []Phase{PhaseIdle}}
	var st PassState

	res.Phases = append(res.Phases, PhaseMeasuring)
	res.Passes++
	if err := h.Pass(st.Hook(h, cfg)); err != nil {
		return res, err
	}

	res.Phases = append(res.Phases, PhaseDeciding)
	st, err := Measure(h, cfg)
	if err != nil {
		return res, err
	}

	if !st.Complete || st.Qualifying == 0 || !cfg.positionReachable(h.TotalCount()) {
		res.Phases = append(res.Phases, PhaseDone)
		res.State = st
		m.logger.Debug("adjustable layout skipped resize", "state", st.String(), "realized", h.RealizedCount(), "total", h.TotalCount())
		return res, nil
	}

	if st.Qualifying > 1 {
		m.logger.Warn("more than one adjustable item, falling back to minimum size", "count", st.Qualifying, "min_size", cfg.MinSize)
	}

	st.Resize = true
	res.Phases = append(res.Phases, PhaseResizing)
	res.Passes++
	if err := h.Pass(st.Hook(h, cfg)); err != nil {
		return res, err
	}

	res.Phases = append(res.Phases, PhaseDone)
	res.State = st
	m.logger.Debug("adjustable layout resized", "state", st.String())
	return res, nil
}
