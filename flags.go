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
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/bemasher/gpsca/csv"
)

var prnList *IDFlag

var format = pflag.String("format", "plain", "output format: plain, octal, csv, json, or xml")

var tapsFilename = pflag.String("taps", "", "TOML tap table to generate codes from instead of the published taps")

var sampleRate = pflag.Float64("samplerate", 0, "output replicas sampled at this rate in Hz instead of chips, 0 to disable")
var samples = pflag.Int("samples", 2048, "number of replica samples per satellite")
var codePhase = pflag.Float64("codephase", 0, "replica code phase offset in chips")

var verbose = pflag.BoolP("verbose", "v", false, "log code table and replica configuration")

var version = pflag.Bool("version", false, "display build date and commit hash")

var encoder Encoder

func RegisterFlags() {
	prnList = NewIDFlag()
	pflag.Var(prnList, "prn", "comma-separated list of PRNs to output, all if omitted")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		pflag.PrintDefaults()
		fmt.Fprintln(os.Stderr, "\nEvery flag may also be set by the environment variable GPSCA_<FLAG>.")
	}
}

// EnvOverride sets flags from GPSCA_ prefixed environment variables. Flags
// given on the command line take precedence since they're parsed afterwards.
func EnvOverride() {
	pflag.VisitAll(func(f *pflag.Flag) {
		envName := "GPSCA_" + strings.ToUpper(f.Name)
		flagValue := os.Getenv(envName)
		if flagValue == "" {
			return
		}

		if err := pflag.Set(f.Name, flagValue); err != nil {
			log.WithFields(log.Fields{
				"env":   envName,
				"flag":  f.Name,
				"value": flagValue,
			}).Warnf("environment variable failed to override flag: %s", err)
			return
		}

		// List flags given again on the command line replace this value.
		if v, ok := f.Value.(interface{ SetFromEnv() }); ok {
			v.SetFromEnv()
		}

		log.WithFields(log.Fields{
			"env":   envName,
			"flag":  f.Name,
			"value": flagValue,
		}).Info("environment variable overrides flag")
	})
}

func HandleFlags() {
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	if *samples < 0 {
		log.Fatalf("invalid sample count: %d", *samples)
	}
	if *sampleRate < 0 || math.IsNaN(*sampleRate) || math.IsInf(*sampleRate, 0) {
		log.Fatalf("invalid sample rate: %f", *sampleRate)
	}
	if math.IsNaN(*codePhase) || math.IsInf(*codePhase, 0) {
		log.Fatalf("invalid code phase: %f", *codePhase)
	}

	var err error
	encoder, err = NewEncoder(*format, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
}

// JSON, XML and CSV all implement this interface so we can simplify output
// formatting.
type Encoder interface {
	Encode(interface{}) error
}

func NewEncoder(format string, w io.Writer) (Encoder, error) {
	switch strings.ToLower(format) {
	case "plain":
		return PlainEncoder{w}, nil
	case "octal":
		return OctalEncoder{w}, nil
	case "csv":
		return csv.NewEncoder(w), nil
	case "json":
		return json.NewEncoder(w), nil
	case "xml":
		return NewlineEncoder{xml.NewEncoder(w), w}, nil
	}
	return nil, errors.Errorf("invalid format: %q", format)
}

type PlainEncoder struct {
	w io.Writer
}

func (pe PlainEncoder) Encode(v interface{}) (err error) {
	_, err = fmt.Fprintln(pe.w, v)
	return
}

// OctalEncoder writes only the PRN and first 10 chips, the same layout as
// the reference table.
type OctalEncoder struct {
	w io.Writer
}

func (oe OctalEncoder) Encode(v interface{}) error {
	e, ok := v.(Entry)
	if !ok {
		return errors.Errorf("octal: unsupported type %T", v)
	}
	_, err := fmt.Fprintf(oe.w, "%2d %s\n", e.PRN, e.First)
	return err
}

// NewlineEncoder terminates each element with a newline, xml doesn't.
type NewlineEncoder struct {
	enc Encoder
	w   io.Writer
}

func (ne NewlineEncoder) Encode(v interface{}) error {
	if err := ne.enc.Encode(v); err != nil {
		return err
	}
	_, err := io.WriteString(ne.w, "\n")
	return err
}
