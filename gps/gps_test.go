package gps

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSatelliteID(t *testing.T) {
	assert.False(t, SatelliteID(0).Valid())
	assert.True(t, SatelliteID(1).Valid())
	assert.True(t, SatelliteID(32).Valid())
	assert.False(t, SatelliteID(33).Valid())

	assert.Equal(t, "PRN 07", SatelliteID(7).String())
	assert.Equal(t, "PRN 32", SatelliteID(32).String())
}

func TestSymbols(t *testing.T) {
	assert.True(t, Bit(0).Valid())
	assert.True(t, Bit(1).Valid())
	assert.False(t, Bit(2).Valid())

	for _, v := range []int8{-1, 1} {
		assert.True(t, Pseudosymbol(v).Valid())
		assert.True(t, UnresolvedBit(v).Valid())
	}
	assert.False(t, Pseudosymbol(0).Valid())
	assert.False(t, UnresolvedBit(0).Valid())
}

func TestSampleTime(t *testing.T) {
	ts := SampleTime(2046000, 2.046e6)
	assert.Equal(t, SampleTimestamp(1), ts)
	assert.Equal(t, time.Second, ts.Duration())

	ts = SampleTime(512, 1024)
	assert.Equal(t, 500*time.Millisecond, ts.Duration())
	assert.Equal(t, "0.500000s", ts.String())
}
