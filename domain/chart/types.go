package chart

import (
	"errors"
	"fmt"
	"strings"

	"github.com/soocke/chart-digitizer-go/domain/geom"
)

// Capacity of the two click sequences.
const (
	MaxCalibrationPoints = 2
	MaxMonthPoints       = 12
)

var (
	// ErrInvalidCalibration indicates the two reference points are too close
	// vertically for a meaningful mapping.
	ErrInvalidCalibration = errors.New("calibration points too close vertically")
	// ErrInvalidInput indicates axis bounds that are not finite numbers.
	ErrInvalidInput = errors.New("axis bounds must be numbers")
	// ErrIncompleteData indicates extraction was attempted without twelve
	// month points or without a calibration.
	ErrIncompleteData = errors.New("extraction requires calibration and twelve month points")
)

// Mode selects how a month's axis value becomes its final value.
type Mode int

const (
	// ModeTotal reports the axis value unchanged.
	ModeTotal Mode = iota
	// ModeDailyAverage multiplies the axis value by the month's day count.
	ModeDailyAverage
)

func (m Mode) String() string {
	switch m {
	case ModeTotal:
		return "total"
	case ModeDailyAverage:
		return "daily-average"
	default:
		return "unknown"
	}
}

// ParseMode maps a mode label to its Mode. Unrecognized input yields ModeTotal.
func ParseMode(s string) Mode {
	if strings.EqualFold(strings.TrimSpace(s), ModeDailyAverage.String()) {
		return ModeDailyAverage
	}
	return ModeTotal
}

// monthNames is the fixed calendar table; StartMonth indexes into it.
var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// daysInMonth is the fixed non-leap-year day table.
var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// MonthNames returns the calendar month labels in order.
func MonthNames() []string {
	out := make([]string, len(monthNames))
	copy(out, monthNames[:])
	return out
}

// MonthName returns the label for index 0-11, wrapping modulo 12.
func MonthName(idx int) string {
	return monthNames[wrap12(idx)]
}

// DaysInMonth returns the non-leap day count for index 0-11, wrapping modulo 12.
func DaysInMonth(idx int) int {
	return daysInMonth[wrap12(idx)]
}

// ParseStartMonth maps a three-letter month label to its index.
func ParseStartMonth(s string) (int, error) {
	s = strings.TrimSpace(s)
	for i, name := range monthNames {
		if strings.EqualFold(name, s) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown start month %q", s)
}

func wrap12(i int) int {
	i %= 12
	if i < 0 {
		i += 12
	}
	return i
}

// Row is one extracted month: its label, the raw axis value at the clicked
// point, and the final value after mode scaling.
type Row struct {
	Month      string
	AxisValue  float64
	FinalValue float64
}

// Point aliases the shared raster-space point type for callers of this package.
type Point = geom.Point
