// Generates the GPS L1 C/A codes.
//
// Each code is the sum modulo 2 of two 10-stage shift registers, G1 and G2,
// clocked 1023 times from an all ones seed. Every satellite shares the same
// G1 and G2 feedback, only the pair of G2 stages summed to form G2's output
// differs. Some references instead describe a per-satellite delay of G2's
// stage 10 output; the two give identical codes.
package ca

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"

	"github.com/bemasher/gpsca/gps"
	"github.com/bemasher/gpsca/lfsr"
)

const (
	// Length is the number of chips in a C/A code period.
	Length = 1023
	// ChipRate is the nominal C/A chipping rate in chips per second.
	ChipRate = 1.023e6
)

// Code is one period of a satellite's C/A code. Chips are 0 or 1. A Code is
// never modified after it is generated.
type Code struct {
	chips [Length]byte
}

// Generate clocks a fresh G1 and G2 in lockstep for one period.
func Generate(pair TapPair) *Code {
	g1 := lfsr.NewG1()
	g2 := lfsr.NewG2(pair.Taps())

	code := new(Code)
	for idx := range code.chips {
		code.chips[idx] = g1.Next() ^ g2.Next()
	}

	return code
}

// GenerateDelayed produces a code by summing G1 with G2's stage 10 output
// delayed by the given number of chips.
func GenerateDelayed(delay int) *Code {
	var g2 [Length]byte
	lfsr.NewG2(lfsr.Taps{lfsr.Stages}).Read(g2[:])

	g1 := lfsr.NewG1()
	delay %= Length

	code := new(Code)
	for idx := range code.chips {
		code.chips[idx] = g1.Next() ^ g2[(idx-delay+Length)%Length]
	}

	return code
}

func (c *Code) Len() int {
	return Length
}

// Chip returns chip idx, zero-based.
func (c *Code) Chip(idx int) byte {
	return c.chips[idx]
}

// Chips returns a copy of the chips.
func (c *Code) Chips() []byte {
	chips := make([]byte, Length)
	copy(chips, c.chips[:])
	return chips
}

// Float64 returns the chips as 0.0 and 1.0.
func (c *Code) Float64() []float64 {
	f64 := make([]float64, Length)
	for idx, chip := range c.chips {
		f64[idx] = float64(chip)
	}
	return f64
}

// Bipolar returns the chips mapped 0 to +1 and 1 to -1, the form the code
// takes when modulated onto the carrier.
func (c *Code) Bipolar() []float64 {
	f64 := make([]float64, Length)
	for idx, chip := range c.chips {
		f64[idx] = bipolar(chip)
	}
	return f64
}

func bipolar(chip byte) float64 {
	return 1 - 2*float64(chip)
}

// FirstChips packs the first 10 chips, first chip in the most significant
// bit. Printed in octal this matches the reference table.
func (c *Code) FirstChips() (first uint16) {
	for _, chip := range c.chips[:10] {
		first = first<<1 | uint16(chip)
	}
	return
}

func (c *Code) Equal(other *Code) bool {
	return c.chips == other.chips
}

// String returns the chips as a string of ascii 0's and 1's.
func (c *Code) String() string {
	buf := make([]byte, Length)
	for idx, chip := range c.chips {
		buf[idx] = '0' + chip
	}
	return string(buf)
}

// Hex packs the chips most significant bit first, padded with a trailing
// zero to 1024 bits.
func (c *Code) Hex() string {
	var packed [(Length + 7) >> 3]byte
	for idx, chip := range c.chips {
		packed[idx>>3] |= chip << uint(7-idx&7)
	}
	return fmt.Sprintf("%02X", packed[:])
}

// Table maps satellite ids to their codes. It is immutable and safe for
// concurrent use.
type Table struct {
	taps  TapTable
	ids   []gps.SatelliteID
	codes map[gps.SatelliteID]*Code
}

// Build validates the tap table and generates every satellite's code. Nothing
// is generated if the table is malformed.
func Build(taps TapTable) (*Table, error) {
	if err := taps.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid tap table")
	}

	tbl := &Table{
		taps:  make(TapTable, len(taps)),
		ids:   make([]gps.SatelliteID, len(taps)),
		codes: make(map[gps.SatelliteID]*Code, len(taps)),
	}
	copy(tbl.taps, taps)

	// Satellites share no state, each gets its own registers.
	codes := make([]*Code, len(taps))

	var wg sync.WaitGroup
	wg.Add(len(taps))
	for idx, pair := range taps {
		go func(idx int, pair TapPair) {
			defer wg.Done()
			codes[idx] = Generate(pair)
		}(idx, pair)
	}
	wg.Wait()

	for idx, code := range codes {
		id := gps.SatelliteID(idx + 1)
		tbl.ids[idx] = id
		tbl.codes[id] = code
	}

	return tbl, nil
}

// Lookup returns the code for id, false if the table has no such satellite.
func (tbl *Table) Lookup(id gps.SatelliteID) (*Code, bool) {
	code, ok := tbl.codes[id]
	return code, ok
}

// MustLookup is like Lookup but panics for ids outside the table.
func (tbl *Table) MustLookup(id gps.SatelliteID) *Code {
	code, ok := tbl.codes[id]
	if !ok {
		panic(fmt.Sprintf("ca: no code for %s", id))
	}
	return code
}

// Taps returns the taps id's code was generated from.
func (tbl *Table) Taps(id gps.SatelliteID) (TapPair, bool) {
	if _, ok := tbl.codes[id]; !ok {
		return TapPair{}, false
	}
	return tbl.taps[id-1], true
}

// IDs returns the satellite ids in ascending order.
func (tbl *Table) IDs() []gps.SatelliteID {
	ids := make([]gps.SatelliteID, len(tbl.ids))
	copy(ids, tbl.ids)
	return ids
}

func (tbl *Table) Len() int {
	return len(tbl.ids)
}

// Equal reports whether both tables hold bit-identical codes.
func (tbl *Table) Equal(other *Table) bool {
	if len(tbl.codes) != len(other.codes) {
		return false
	}
	for id, code := range tbl.codes {
		o, ok := other.codes[id]
		if !ok || !code.Equal(o) {
			return false
		}
	}
	return true
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the table generated from PublishedTaps. It is built on the
// first call, concurrent first calls wait for the single build.
func Default() *Table {
	defaultOnce.Do(func() {
		tbl, err := Build(PublishedTaps)
		if err != nil {
			panic(err)
		}
		defaultTable = tbl
	})
	return defaultTable
}

// Lookup returns id's code from the default table.
func Lookup(id gps.SatelliteID) (*Code, bool) {
	return Default().Lookup(id)
}
