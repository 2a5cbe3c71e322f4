package ca

import (
	"github.com/pkg/errors"

	"github.com/bemasher/gpsca/gps"
	"github.com/bemasher/gpsca/lfsr"
)

// TapPair selects the two G2 stages summed to form a satellite's G2 output.
// Stages are one-based.
type TapPair [2]int

// TapTable is indexed by satellite id minus one.
type TapTable []TapPair

// PublishedTaps are the code phase assignments of IS-GPS-200 Table 3-Ia.
var PublishedTaps = TapTable{
	{2, 6},  // PRN 01
	{3, 7},  // PRN 02
	{4, 8},  // PRN 03
	{5, 9},  // PRN 04
	{1, 9},  // PRN 05
	{2, 10}, // PRN 06
	{1, 8},  // PRN 07
	{2, 9},  // PRN 08
	{3, 10}, // PRN 09
	{2, 3},  // PRN 10
	{3, 4},  // PRN 11
	{5, 6},  // PRN 12
	{6, 7},  // PRN 13
	{7, 8},  // PRN 14
	{8, 9},  // PRN 15
	{9, 10}, // PRN 16
	{1, 4},  // PRN 17
	{2, 5},  // PRN 18
	{3, 6},  // PRN 19
	{4, 7},  // PRN 20
	{5, 8},  // PRN 21
	{6, 9},  // PRN 22
	{1, 3},  // PRN 23
	{4, 6},  // PRN 24
	{5, 7},  // PRN 25
	{6, 8},  // PRN 26
	{7, 9},  // PRN 27
	{8, 10}, // PRN 28
	{1, 6},  // PRN 29
	{2, 7},  // PRN 30
	{3, 8},  // PRN 31
	{4, 9},  // PRN 32
}

// G2Delay is the equivalent G2 delay in chips for each satellite, also from
// Table 3-Ia. Only used to cross check the tap formulation.
var G2Delay = []int{
	5, 6, 7, 8, 17, 18, 139, 140, 141, 251,
	252, 254, 255, 256, 257, 258, 469, 470, 471, 472,
	473, 474, 509, 512, 513, 514, 515, 516, 859, 860,
	861, 862,
}

// FirstChipsOctal is the first 10 chips of each code in octal, most
// significant bit first, as listed in Table 3-Ia.
var FirstChipsOctal = []uint16{
	01440, 01620, 01710, 01744, 01133, 01455, 01131, 01454, 01626, 01504,
	01642, 01750, 01764, 01772, 01775, 01776, 01156, 01467, 01633, 01715,
	01746, 01763, 01063, 01706, 01743, 01761, 01770, 01774, 01127, 01453,
	01625, 01712,
}

// Validate checks entry count, tap range and that each pair names two
// distinct stages. Errors identify the satellite.
func (tbl TapTable) Validate() error {
	if len(tbl) != gps.Satellites {
		return errors.Errorf("tap table has %d entries, expected %d", len(tbl), gps.Satellites)
	}

	for idx, pair := range tbl {
		id := gps.SatelliteID(idx + 1)
		if err := pair.Taps().Validate(); err != nil {
			return errors.Wrapf(err, "%s", id)
		}
		if pair[0] == pair[1] {
			return errors.Errorf("%s: duplicate tap %d", id, pair[0])
		}
	}

	return nil
}

func (pair TapPair) Taps() lfsr.Taps {
	return lfsr.Taps{pair[0], pair[1]}
}
