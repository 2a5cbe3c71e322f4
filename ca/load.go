package ca

import (
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/bemasher/gpsca/gps"
)

// tapFile is the TOML layout of an alternate tap table:
//
//	[[satellite]]
//	id = 1
//	taps = [2, 6]
type tapFile struct {
	Satellite []struct {
		ID   int   `toml:"id"`
		Taps []int `toml:"taps"`
	} `toml:"satellite"`
}

// LoadTapTable decodes a TOML tap table. Entries may be in any order but every
// satellite must appear exactly once with exactly two taps. The result is
// validated before it is returned.
func LoadTapTable(r io.Reader) (TapTable, error) {
	var f tapFile
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&f); err != nil {
		return nil, errors.Wrap(err, "decoding tap table")
	}

	if len(f.Satellite) != gps.Satellites {
		return nil, errors.Errorf("tap table has %d entries, expected %d", len(f.Satellite), gps.Satellites)
	}

	tbl := make(TapTable, gps.Satellites)
	seen := make(map[gps.SatelliteID]bool, gps.Satellites)

	for _, sat := range f.Satellite {
		id := gps.SatelliteID(sat.ID)
		if !id.Valid() {
			return nil, errors.Errorf("satellite id %d out of range 1..%d", sat.ID, gps.Satellites)
		}
		if seen[id] {
			return nil, errors.Errorf("%s: duplicate entry", id)
		}
		seen[id] = true

		if len(sat.Taps) != 2 {
			return nil, errors.Errorf("%s: expected 2 taps, got %d", id, len(sat.Taps))
		}
		tbl[id-1] = TapPair{sat.Taps[0], sat.Taps[1]}
	}

	if err := tbl.Validate(); err != nil {
		return nil, err
	}

	return tbl, nil
}
