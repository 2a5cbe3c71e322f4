// Package gps defines the values exchanged between the stages of a GPS L1
// receiver: satellite identifiers, sample-relative timestamps and the
// symbol and bit representations produced after despreading.
package gps

import (
	"fmt"
	"time"
)

// Satellites is the number of PRN numbers with assigned C/A codes.
const Satellites = 32

// SatelliteID is a GPS satellite's PRN number, 1 through 32. PRN 1 is
// currently unassigned but its code is still defined.
type SatelliteID int

func (id SatelliteID) Valid() bool {
	return id >= 1 && id <= Satellites
}

func (id SatelliteID) String() string {
	return fmt.Sprintf("PRN %02d", int(id))
}

// Bit is a navigation bit after the overall signal phase has been applied.
type Bit uint8

func (b Bit) Valid() bool {
	return b == 0 || b == 1
}

// Pseudosymbol is one twentieth of a navigation bit as emitted by a tracker.
// It is -1 or 1 rather than 0 or 1 because BPSK can't tell a sequence from
// its inversion until the phase is known.
type Pseudosymbol int8

func (s Pseudosymbol) Valid() bool {
	return s == -1 || s == 1
}

// UnresolvedBit is the predominant phase of a group of pseudosymbols that
// belong to the same navigation bit, before the bit phase is applied.
type UnresolvedBit int8

func (b UnresolvedBit) Valid() bool {
	return b == -1 || b == 1
}

// SampleTimestamp is seconds of sample time: zero just before the first
// sample and one just after a full second of samples. It differs from wall
// clock time whenever samples are processed faster or slower than real time.
type SampleTimestamp float64

// SampleTime returns the timestamp just after n samples taken at rate Hz.
func SampleTime(n int64, rate float64) SampleTimestamp {
	return SampleTimestamp(float64(n) / rate)
}

func (ts SampleTimestamp) Duration() time.Duration {
	return time.Duration(float64(ts) * float64(time.Second))
}

func (ts SampleTimestamp) String() string {
	return fmt.Sprintf("%.6fs", float64(ts))
}
