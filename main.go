// GPSCA - A GPS L1 C/A code generator for software receivers.
// Copyright (C) 2026 The GPSCA Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/bemasher/gpsca/ca"
	"github.com/bemasher/gpsca/gps"
)

// Generator selects satellites from a code table and encodes them.
type Generator struct {
	tbl *ca.Table
	ids []gps.SatelliteID

	source string

	SampleRate float64
	Samples    int
	CodePhase  float64
}

// NewGenerator builds the code table, from tapsFilename if given, otherwise
// the published taps.
func NewGenerator(tapsFilename string, ids IDList) (gen Generator, err error) {
	gen.source = "IS-GPS-200"

	if tapsFilename == "" {
		gen.tbl = ca.Default()
	} else {
		gen.source = tapsFilename

		tapsFile, err := os.Open(tapsFilename)
		if err != nil {
			return gen, errors.Wrap(err, "opening tap table")
		}
		defer tapsFile.Close()

		taps, err := ca.LoadTapTable(tapsFile)
		if err != nil {
			return gen, errors.Wrap(err, tapsFilename)
		}

		if gen.tbl, err = ca.Build(taps); err != nil {
			return gen, err
		}
	}

	// No ids given means every satellite in the table.
	if len(ids) == 0 {
		gen.ids = gen.tbl.IDs()
	} else {
		gen.ids = ids.Sorted()
	}

	return gen, nil
}

func (gen Generator) Log() {
	log.WithFields(log.Fields{
		"source":     gen.source,
		"satellites": gen.tbl.Len(),
		"selected":   len(gen.ids),
	}).Debug("code table built")

	if gen.SampleRate > 0 {
		log.WithFields(log.Fields{
			"samplerate": gen.SampleRate,
			"samples":    gen.Samples,
			"codephase":  gen.CodePhase,
			"chips":      float64(gen.Samples) * ca.ChipRate / gen.SampleRate,
		}).Debug("resampling replicas")
	}
}

// Run encodes one entry per selected satellite.
func (gen Generator) Run(enc Encoder) error {
	for _, id := range gen.ids {
		code := gen.tbl.MustLookup(id)
		taps, _ := gen.tbl.Taps(id)

		entry := Entry{
			PRN:   int(id),
			Taps:  taps,
			First: fmt.Sprintf("%04o", code.FirstChips()),
		}

		if gen.SampleRate > 0 {
			entry.Replica = code.Resample(gen.SampleRate, gen.CodePhase, gen.Samples)
		} else {
			entry.Chips = code.String()
		}

		if err := enc.Encode(entry); err != nil {
			return errors.Wrapf(err, "encoding %s", id)
		}
	}

	return nil
}

// Entry is a single satellite's output record.
type Entry struct {
	PRN     int        `xml:",attr"`
	Taps    ca.TapPair `json:",omitempty" xml:"Tap"`
	First   string     `xml:",attr"`
	Chips   string     `json:",omitempty" xml:",omitempty"`
	Replica []float64  `json:",omitempty" xml:",omitempty"`
}

func (e Entry) String() string {
	if e.Replica != nil {
		return fmt.Sprintf("{PRN:%02d Taps:%v First:%s Replica:%v}", e.PRN, e.Taps, e.First, e.Replica)
	}
	return fmt.Sprintf("{PRN:%02d Taps:%v First:%s Chips:%s}", e.PRN, e.Taps, e.First, e.Chips)
}

func (e Entry) Header() []string {
	if e.Replica != nil {
		return []string{"prn", "taps", "first", "replica"}
	}
	return []string{"prn", "taps", "first", "chips"}
}

func (e Entry) Record() (r []string) {
	r = append(r, strconv.Itoa(e.PRN))
	r = append(r, fmt.Sprintf("%d-%d", e.Taps[0], e.Taps[1]))
	r = append(r, e.First)

	if e.Replica != nil {
		samples := make([]string, len(e.Replica))
		for idx, v := range e.Replica {
			samples[idx] = strconv.FormatFloat(v, 'f', -1, 64)
		}
		r = append(r, strings.Join(samples, " "))
	} else {
		r = append(r, e.Chips)
	}

	return r
}

// IDList is a set of satellite ids given as a comma-separated list.
type IDList map[gps.SatelliteID]bool

func (l IDList) Sorted() (ids []gps.SatelliteID) {
	for id := range l {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (l IDList) String() string {
	var values []string
	for _, id := range l.Sorted() {
		values = append(values, strconv.Itoa(int(id)))
	}
	return strings.Join(values, ",")
}

func (l IDList) Set(value string) error {
	for _, v := range strings.Split(value, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return err
		}

		id := gps.SatelliteID(n)
		if !id.Valid() {
			return errors.Errorf("prn %d out of range 1..%d", n, gps.Satellites)
		}
		l[id] = true
	}

	return nil
}

func (l IDList) Type() string {
	return "prns"
}

// IDFlag is an IDList flag whose environment value is replaced, not merged,
// by a list given on the command line.
type IDFlag struct {
	IDList

	fromEnv bool
}

func NewIDFlag() *IDFlag {
	return &IDFlag{IDList: make(IDList)}
}

// SetFromEnv marks the current value as coming from the environment.
func (f *IDFlag) SetFromEnv() {
	f.fromEnv = true
}

func (f *IDFlag) Set(value string) error {
	if f.fromEnv {
		f.fromEnv = false
		for id := range f.IDList {
			delete(f.IDList, id)
		}
	}
	return f.IDList.Set(value)
}

func init() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000000",
	})
}

var (
	buildTag   = "dev"     // v#.#.#
	buildDate  = "unknown" // date -u '+%Y-%m-%d'
	commitHash = "unknown" // git rev-parse HEAD
)

func main() {
	RegisterFlags()
	EnvOverride()
	pflag.Parse()

	if *version {
		fmt.Println("Build Tag: ", buildTag)
		fmt.Println("Build Date:", buildDate)
		fmt.Println("Commit:    ", commitHash)
		os.Exit(0)
	}

	HandleFlags()

	gen, err := NewGenerator(*tapsFilename, prnList.IDList)
	if err != nil {
		log.Fatal(err)
	}

	gen.SampleRate = *sampleRate
	gen.Samples = *samples
	gen.CodePhase = *codePhase
	gen.Log()

	if err := gen.Run(encoder); err != nil {
		log.Fatal(err)
	}
}
