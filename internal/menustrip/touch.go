package menustrip

// hitTest returns the first cell containing the viewport point (x, y).
func (s *Strip) hitTest(x, y float64) (int, bool) {
	cx := x + s.offsetX
	for _, c := range s.cells {
		if c.Frame.Contains(cx, y) {
			return c.Index, true
		}
	}
	return 0, false
}

// TouchBegan records the cell under the touch, if any. Points are in
// viewport coordinates.
func (s *Strip) TouchBegan(x, y float64) {
	if idx, ok := s.hitTest(x, y); ok {
		s.touchIndex = &idx
		return
	}
	s.touchIndex = nil
}

// TouchEnded reports a selection when the touch lifts over the same cell it
// began on.
func (s *Strip) TouchEnded(x, y float64) {
	began := s.touchIndex
	s.touchIndex = nil
	if began == nil {
		return
	}
	idx, ok := s.hitTest(x, y)
	if !ok || idx != *began {
		return
	}
	s.log().Debug("menustrip: selected by touch", "index", idx)
	if s.Delegate != nil {
		s.Delegate.DidSelectItem(idx)
	}
}

// TouchCancelled forgets the pending touch.
func (s *Strip) TouchCancelled() {
	s.touchIndex = nil
}

// TouchIndex is the cell the pending touch began on.
func (s *Strip) TouchIndex() (int, bool) {
	if s.touchIndex == nil {
		return 0, false
	}
	return *s.touchIndex, true
}
