package chart

// ComputeResults converts the twelve month points into per-month rows plus
// the annual total. Rows keep the click order; labels rotate by startIdx so
// the first clicked point is labeled with the chosen start month. In
// daily-average mode each axis value is scaled by that month's day count.
//
// The caller gates the preconditions; incomplete input returns
// ErrIncompleteData and no partial rows.
func ComputeResults(points []Point, cal *Calibration, mode Mode, startIdx int) ([]Row, float64, error) {
	if cal == nil || len(points) != MaxMonthPoints {
		return nil, 0, ErrIncompleteData
	}
	rows := make([]Row, 0, MaxMonthPoints)
	total := 0.0
	for i, p := range points {
		axis := cal.ValueAt(p)
		final := axis
		if mode == ModeDailyAverage {
			final = axis * float64(DaysInMonth(startIdx+i))
		}
		rows = append(rows, Row{
			Month:      MonthName(startIdx + i),
			AxisValue:  axis,
			FinalValue: final,
		})
		total += final
	}
	return rows, total, nil
}
