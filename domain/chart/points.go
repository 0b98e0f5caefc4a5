package chart

// PointStore holds the two ordered click sequences: calibration references
// (bottom first, then top) and month points in click order. Both are
// append-only up to their capacity; month points additionally support a
// stack-like undo. No synchronization: updates occur on the UI thread.
type PointStore struct {
	calibration []Point
	months      []Point
}

// NewPointStore returns an empty store.
func NewPointStore() *PointStore { return &PointStore{} }

// AddCalibration appends a reference point. It reports whether the point was
// accepted; once two points exist further adds are silent no-ops until Reset.
func (s *PointStore) AddCalibration(p Point) bool {
	if s == nil || len(s.calibration) >= MaxCalibrationPoints {
		return false
	}
	s.calibration = append(s.calibration, p)
	return true
}

// AddMonth appends a month point, reporting whether it was accepted. Adds
// past twelve points are silent no-ops.
func (s *PointStore) AddMonth(p Point) bool {
	if s == nil || len(s.months) >= MaxMonthPoints {
		return false
	}
	s.months = append(s.months, p)
	return true
}

// UndoMonth removes the most recently added month point. No-op when empty.
func (s *PointStore) UndoMonth() bool {
	if s == nil || len(s.months) == 0 {
		return false
	}
	s.months = s.months[:len(s.months)-1]
	return true
}

// Reset empties both sequences.
func (s *PointStore) Reset() {
	if s == nil {
		return
	}
	s.calibration = s.calibration[:0]
	s.months = s.months[:0]
}

// CalibrationComplete reports whether both reference points exist.
func (s *PointStore) CalibrationComplete() bool {
	return s != nil && len(s.calibration) == MaxCalibrationPoints
}

// MonthsComplete reports whether all twelve month points exist.
func (s *PointStore) MonthsComplete() bool {
	return s != nil && len(s.months) == MaxMonthPoints
}

// CalibrationPoints returns a copy of the reference sequence.
func (s *PointStore) CalibrationPoints() []Point {
	if s == nil {
		return nil
	}
	return append([]Point(nil), s.calibration...)
}

// MonthPoints returns a copy of the month sequence in click order.
func (s *PointStore) MonthPoints() []Point {
	if s == nil {
		return nil
	}
	return append([]Point(nil), s.months...)
}

// MonthCount returns the number of month points placed so far.
func (s *PointStore) MonthCount() int {
	if s == nil {
		return 0
	}
	return len(s.months)
}
