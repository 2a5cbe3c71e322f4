package ca

import "math"

// Resample returns n samples of the bipolar code replica at sampleRate Hz,
// starting codePhase chips into the code. The replica wraps at the end of
// each period. Returns nil for a sample rate that isn't positive and finite,
// a code phase that isn't finite, or negative n.
func (c *Code) Resample(sampleRate, codePhase float64, n int) []float64 {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) || math.IsNaN(codePhase) || math.IsInf(codePhase, 0) || n < 0 {
		return nil
	}

	step := ChipRate / sampleRate

	phase := math.Mod(codePhase, Length)
	if phase < 0 {
		phase += Length
	}

	replica := make([]float64, n)
	for idx := range replica {
		chipIdx := int(phase)
		if chipIdx >= Length {
			chipIdx = 0
		}
		replica[idx] = bipolar(c.chips[chipIdx])
		phase = math.Mod(phase+step, Length)
	}

	return replica
}
