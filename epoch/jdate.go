package epoch

import (
	"fmt"
	"math"
	"sync"
	"time"
)

const (
	// J2000 is the Julian Ephemeris Date of the standard epoch 2000-01-01 12:00 TT.
	J2000 = 2451545.0

	// DaysPerCentury is the length of a Julian century in days.
	DaysPerCentury = 36525.0

	// unixEpochJD is the Julian Date of 1970-01-01 00:00 UTC.
	unixEpochJD = 2440587.5

	secondsPerDay = 86400.0
)

// JDate is an immutable point in Terrestrial Time expressed as a Julian
// Ephemeris Date.
//
// Contract:
// - Concurrency: safe for concurrent use; the power memo is guarded.
// - Ownership: callers share the pointer; JDate never changes its JDE.
type JDate struct {
	jde       float64
	centuries float64

	mu     sync.Mutex
	powers []float64 // powers[n] == centuries^n
}

// New creates a JDate from a Julian Ephemeris Date.
func New(jde float64) (*JDate, error) {
	if math.IsNaN(jde) || math.IsInf(jde, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJDE, jde)
	}
	return &JDate{
		jde:       jde,
		centuries: (jde - J2000) / DaysPerCentury,
		powers:    []float64{1},
	}, nil
}

// MustNew is like New but panics on an invalid date. Intended for constants
// and tests.
func MustNew(jde float64) *JDate {
	d, err := New(jde)
	if err != nil {
		panic(err)
	}
	return d
}

// AtJ2000 returns a JDate at the J2000.0 reference epoch.
func AtJ2000() *JDate {
	return MustNew(J2000)
}

// FromTime converts a UTC instant into a JDate. deltaT is the TT-UTC
// offset to apply (69.184s around 2020); pass zero to treat t as TT.
func FromTime(t time.Time, deltaT time.Duration) *JDate {
	tt := t.UTC().Add(deltaT)
	secs := float64(tt.Unix()) + float64(tt.Nanosecond())/1e9
	return MustNew(unixEpochJD + secs/secondsPerDay)
}

// FromCenturies creates a JDate T Julian centuries after J2000.0.
func FromCenturies(t float64) (*JDate, error) {
	return New(J2000 + t*DaysPerCentury)
}

// JDE returns the Julian Ephemeris Date.
func (d *JDate) JDE() float64 {
	return d.jde
}

// Centuries returns T, the Julian centuries of TT since J2000.0.
func (d *JDate) Centuries() float64 {
	return d.centuries
}

// Time returns the instant as a UTC time.Time, ignoring any TT-UTC offset
// that was applied at construction.
func (d *JDate) Time() time.Time {
	secs := (d.jde - unixEpochJD) * secondsPerDay
	whole := math.Floor(secs)
	return time.Unix(int64(whole), int64((secs-whole)*1e9)).UTC()
}

// CenturyPower returns T^n. CenturyPower(0) is always 1.
// Powers are built by successive multiplication and memoized, so the
// result for n is bit-identical across calls.
func (d *JDate) CenturyPower(n int) float64 {
	if n < 0 {
		panic(fmt.Errorf("%w: %d", ErrNegativePower, n))
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for len(d.powers) <= n {
		last := d.powers[len(d.powers)-1]
		d.powers = append(d.powers, last*d.centuries)
	}
	return d.powers[n]
}

// Equal reports whether two dates refer to the same JDE.
func (d *JDate) Equal(other *JDate) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.jde == other.jde
}

// String formats the date as "JDE <value>".
func (d *JDate) String() string {
	return fmt.Sprintf("JDE %.6f", d.jde)
}
