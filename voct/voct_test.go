package voct

import (
	"math"
	"testing"
)

func TestHzOctaveDoubling(t *testing.T) {
	cases := []struct {
		mv   MvOct
		want float32
	}{
		{0, 27.5},
		{1000, 55},
		{2000, 110},
		{4000, 440},
		{-1000, 13.75},
	}
	for _, c := range cases {
		got := c.mv.Hz()
		if math.Abs(float64(got-c.want)) > 1e-3 {
			t.Errorf("MvOct(%v).Hz() = %v, want %v", c.mv, got, c.want)
		}
	}
}

func TestUsTruncatesToMicroseconds(t *testing.T) {
	// 0 mV -> 27.5 Hz -> 36363.63... us, truncated.
	if got := MvOct(0).Us(); got != 36363 {
		t.Errorf("MvOct(0).Us() = %d, want 36363", got)
	}
	// 4000 mV -> 440 Hz -> 2272.7... us.
	if got := MvOct(4000).Us(); got != 2272 {
		t.Errorf("MvOct(4000).Us() = %d, want 2272", got)
	}
}

func TestPeriodMatchesUs(t *testing.T) {
	for _, mv := range []MvOct{-500, 0, 1234, 6000} {
		if got, want := mv.Period().Microseconds(), int64(mv.Us()); got != want {
			t.Errorf("MvOct(%v).Period() = %dus, want %dus", mv, got, want)
		}
	}
}

func TestRoundTripFrequencyWithinOneTick(t *testing.T) {
	// Converting a pitch to microseconds and then to fast-timer ticks
	// must reproduce the frequency within one tick of rounding error.
	const tickPeriodUs = 5
	const tickRateHz = 200000
	for _, mv := range []MvOct{0, 500, 1000, 2500, 4000} {
		ticks := mv.Us() / tickPeriodUs / 2
		gotHz := float64(tickRateHz) / float64(2*ticks)
		wantHz := float64(mv.Hz())
		// Truncation only ever shortens the period, so the realized
		// frequency sits between hz(ticks) and hz(ticks+1).
		loHz := float64(tickRateHz) / float64(2*(ticks+1))
		if wantHz > gotHz || wantHz < loHz {
			t.Errorf("MvOct(%v): ticks=%d realizes [%.3f, %.3f] Hz, want %.3f Hz inside",
				mv, ticks, loHz, gotHz, wantHz)
		}
	}
}
