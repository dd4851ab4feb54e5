package adjust

import (
	"fmt"

	"github.com/matzehuels/adjustable/pkg/linear"
)

// Host is the list-layout routine the adjustment runs on.
// [linear.Layout] implements it.
type Host interface {
	// ViewportExtent returns the main-axis space available to items.
	ViewportExtent() int
	// RealizedCount returns the size of the realized set of the last pass.
	RealizedCount() int
	// TotalCount returns the number of items in the data source.
	TotalCount() int
	// Realized returns the i-th realized item.
	Realized(i int) *linear.Item
	// Measure re-measures it, honoring its main-axis constraint.
	Measure(it *linear.Item) error
	// Pass runs one full layout traversal, invoking hook once per item.
	Pass(hook linear.SizingHook) error
}

// PassState is the scratch data of one Manager.Layout call.
type PassState struct {
	Resize     bool // the resolved size is applied
	Resolved   int  // target size of the adjustable item; <= 0 means no override
	UpperBound int  // largest shrunk main size seen among adjustable items
	Qualifying int  // number of realized items that are adjustable
	Complete   bool // the realized set covers every item
	Slack      bool // the shrunk items fit inside the viewport
	MinUsed    int  // decorated main size consumed with adjustable items shrunk
	Parent     int  // viewport main-axis extent
}

// String summarizes the state for logs.
func (s PassState) String() string {
	return fmt.Sprintf("qualifying=%d resolved=%d slack=%t complete=%t used=%d/%d",
		s.Qualifying, s.Resolved, s.Slack, s.Complete, s.MinUsed, s.Parent)
}

// probe measures it without any main-axis override and returns its natural
// main and cross sizes.
func probe(h Host, it *linear.Item) (main, cross int, err error) {
	it.ClearConstraint()
	if err := h.Measure(it); err != nil {
		return 0, 0, err
	}
	return it.MainSize(), it.CrossSize(), nil
}

// Measure runs the slack calculation over the host's realized set and
// returns the resulting state with Resize unset.
//
// When the realized set is incomplete, or the item count exceeds the
// configured cap, no item is measured and Resolved is cfg.MinSize. Otherwise
// every realized item is measured at its natural size, adjustable items are
// re-measured at their minimum, and the target size is derived from the
// number of qualifying items:
//
//   - none: Resolved is 0 and the caller skips the resize pass.
//   - one: the slack-filling size when the items fit, else cfg.MinSize,
//     else the shrunk size itself.
//   - several: cfg.MinSize, which may be unset.
func Measure(h Host, cfg Config) (PassState, error) {
	realized, total := h.RealizedCount(), h.TotalCount()
	st := PassState{Resolved: cfg.MinSize, Parent: h.ViewportExtent()}
	if realized != total || !cfg.countAllowed(total) {
		return st, nil
	}
	st.Complete = true

	for i := 0; i < realized; i++ {
		it := h.Realized(i)
		if _, _, err := probe(h, it); err != nil {
			return st, err
		}
		if cfg.IsAdjustable(it) {
			it.SetConstraint(cfg.MinSizeFor(it))
			if err := h.Measure(it); err != nil {
				return st, err
			}
			st.UpperBound = max(st.UpperBound, it.MainSize())
			st.Qualifying++
		}
		st.MinUsed += it.DecoratedMainSize()
	}

	candidate := cfg.MinSize
	if st.MinUsed < st.Parent {
		st.Slack = true
		candidate = st.Parent - (st.MinUsed - st.UpperBound)
	}

	switch {
	case st.Qualifying == 0:
		st.Resolved = 0
	case st.Qualifying == 1:
		st.Resolved = candidate
		if st.Resolved <= 0 {
			st.Resolved = st.UpperBound
		}
	default:
		st.Resolved = cfg.MinSize
	}
	return st, nil
}

// Hook returns the sizing hook for a pass in state s. Outside a resize pass
// adjustable items are shrunk to their minimum; during one they receive
// s.Resolved. Other items are never touched, and sizes <= 0 leave the item
// at its natural size.
func (s PassState) Hook(h Host, cfg Config) linear.SizingHook {
	return func(it *linear.Item) error {
		if !cfg.IsAdjustable(it) {
			return nil
		}
		if s.Resize {
			it.SetConstraint(s.Resolved)
			return nil
		}
		if cfg.MinSize > 0 {
			it.SetConstraint(cfg.MinSize)
			return nil
		}
		if _, _, err := probe(h, it); err != nil {
			return err
		}
		it.SetConstraint(cfg.MinSizeFor(it))
		return nil
	}
}
