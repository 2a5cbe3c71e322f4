package lfsr

import (
	"bytes"
	"math/rand"
	"reflect"
	"testing"
	"testing/quick"
)

const (
	Period = 1023
)

func allOnes(reg [Stages]byte) bool {
	for _, b := range reg {
		if b != 1 {
			return false
		}
	}
	return true
}

func TestSeed(t *testing.T) {
	l := New(Taps{10}, Taps{3, 10})
	if !allOnes(l.Register()) {
		t.Fatalf("Expected all ones, got %s\n", l)
	}
}

// G1 is maximal length: the seed reappears after exactly 1023 steps.
func TestG1Period(t *testing.T) {
	g1 := NewG1()
	for step := 1; step <= Period; step++ {
		g1.Next()
		seed := allOnes(g1.Register())
		if step < Period && seed {
			t.Fatalf("Register returned to seed early at step %d\n", step)
		}
		if step == Period && !seed {
			t.Fatalf("Register not at seed after %d steps: %s\n", Period, g1)
		}
	}
}

func TestG2Period(t *testing.T) {
	g2 := NewG2(Taps{10})
	for step := 1; step < Period; step++ {
		g2.Next()
		if allOnes(g2.Register()) {
			t.Fatalf("Register returned to seed early at step %d\n", step)
		}
	}
	g2.Next()
	if !allOnes(g2.Register()) {
		t.Fatalf("Register not at seed after %d steps: %s\n", Period, g2)
	}
}

// The first ten G1 outputs shift out the seed, the eleventh is the first
// feedback bit: stage 3 XOR stage 10 of the seed.
func TestG1Prefix(t *testing.T) {
	recv := make([]byte, 11)
	NewG1().Read(recv)

	expt := []byte{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0}
	if !bytes.Equal(recv, expt) {
		t.Fatalf("Expected %d got %d\n", expt, recv)
	}
}

// Outputs must come from the register before the shift, otherwise the
// sequence is advanced by one chip.
func TestG2Prefix(t *testing.T) {
	recv := make([]byte, 10)
	NewG2(Taps{2, 6}).Read(recv)

	expt := []byte{0, 0, 1, 1, 0, 1, 1, 1, 1, 1}
	if !bytes.Equal(recv, expt) {
		t.Fatalf("Expected %d got %d\n", expt, recv)
	}
}

func TestRestart(t *testing.T) {
	a := NewG2(Taps{3, 7})
	b := NewG2(Taps{3, 7})

	for step := 0; step < Period<<1; step++ {
		if x, y := a.Next(), b.Next(); x != y {
			t.Fatalf("Generators diverged at step %d: %d != %d\n", step, x, y)
		}
	}
}

func TestPeriodic(t *testing.T) {
	first := make([]byte, Period)
	second := make([]byte, Period)

	g1 := NewG1()
	g1.Read(first)
	g1.Read(second)

	if !bytes.Equal(first, second) {
		t.Fatal("G1 output is not periodic in 1023 chips")
	}
}

type TapSet Taps

// Generate a random non-empty tap set of valid positions.
func (TapSet) Generate(rand *rand.Rand, size int) reflect.Value {
	taps := make(TapSet, rand.Intn(Stages)+1)
	for idx := range taps {
		taps[idx] = rand.Intn(Stages) + 1
	}
	return reflect.ValueOf(taps)
}

// Any pair of fresh registers with the same taps produce the same sequence,
// and every output is a single bit.
func TestIdentity(t *testing.T) {
	err := quick.Check(func(output, feedback TapSet) bool {
		a := New(Taps(output), Taps(feedback))
		b := New(Taps(output), Taps(feedback))
		for step := 0; step < Period<<1; step++ {
			x, y := a.Next(), b.Next()
			if x != y || x > 1 {
				return false
			}
		}
		return true
	}, nil)

	if err != nil {
		t.Fatal("Error testing identity:", err)
	}
}

func TestValidate(t *testing.T) {
	for _, taps := range []Taps{G1Output, G1Feedback, G2Feedback, {1, 10}} {
		if err := taps.Validate(); err != nil {
			t.Fatalf("%v: %s\n", taps, err)
		}
	}

	for _, taps := range []Taps{{}, {0}, {11}, {2, -1}} {
		if err := taps.Validate(); err == nil {
			t.Fatalf("Expected error for %v\n", taps)
		}
	}
}

func BenchmarkNext(b *testing.B) {
	g2 := NewG2(Taps{2, 6})

	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		g2.Next()
	}
}
