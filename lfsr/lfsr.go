// Implements a 10-stage Fibonacci linear feedback shift register.
package lfsr

import "fmt"

// Stages is the length of the register.
const Stages = 10

// Taps are one-based register positions, matching the numbering used by
// IS-GPS-200.
type Taps []int

// Validate reports the first tap outside 1..Stages.
func (t Taps) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("empty tap set")
	}
	for _, tap := range t {
		if tap < 1 || tap > Stages {
			return fmt.Errorf("tap %d out of range 1..%d", tap, Stages)
		}
	}
	return nil
}

// LFSR holds the register and the output and feedback taps. Instances are not
// safe for concurrent use and must not be shared between code generators.
type LFSR struct {
	Output   Taps
	Feedback Taps

	reg [Stages]byte
}

// New returns a register seeded with all ones. Taps are not validated here.
func New(output, feedback Taps) (l *LFSR) {
	l = &LFSR{Output: output, Feedback: feedback}
	for idx := range l.reg {
		l.reg[idx] = 1
	}
	return
}

// G1 taps per IS-GPS-200: output from stage 10, feedback 1 + x^3 + x^10.
var (
	G1Output   = Taps{10}
	G1Feedback = Taps{3, 10}
)

// G2 feedback per IS-GPS-200: 1 + x^2 + x^3 + x^6 + x^8 + x^9 + x^10.
var G2Feedback = Taps{2, 3, 6, 8, 9, 10}

func NewG1() *LFSR {
	return New(G1Output, G1Feedback)
}

// NewG2 returns a G2 register whose output is the sum of the given stages.
func NewG2(output Taps) *LFSR {
	return New(output, G2Feedback)
}

func (l *LFSR) parity(taps Taps) (bit byte) {
	for _, tap := range taps {
		bit ^= l.reg[tap-1]
	}
	return
}

// Next computes output and feedback from the current register, then shifts
// toward stage 10 and inserts feedback at stage 1.
func (l *LFSR) Next() (out byte) {
	out = l.parity(l.Output)
	feedback := l.parity(l.Feedback)

	copy(l.reg[1:], l.reg[:Stages-1])
	l.reg[0] = feedback

	return
}

// Read fills p with successive outputs. It never fails.
func (l *LFSR) Read(p []byte) (n int, err error) {
	for idx := range p {
		p[idx] = l.Next()
	}
	return len(p), nil
}

// Register returns a copy of the register, stage 1 at index 0.
func (l *LFSR) Register() [Stages]byte {
	return l.reg
}

func (l *LFSR) String() string {
	var bits [Stages]byte
	for idx, b := range l.reg {
		bits[idx] = '0' + b
	}
	return fmt.Sprintf("{Output:%v Feedback:%v Register:%s}", l.Output, l.Feedback, bits[:])
}
