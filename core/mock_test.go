package core

// Mock hardware for driving the tasks on the host.

type mockPin struct {
	level   bool
	lows    int
	toggles int
}

func (p *mockPin) Low() {
	p.level = false
	p.lows++
}

func (p *mockPin) Toggle() {
	p.level = !p.level
	p.toggles++
}

type mockIRQ struct {
	clears int
}

func (i *mockIRQ) Clear() {
	i.clears++
}

// mockADC replays a sample sequence, repeating the last value once the
// sequence is exhausted.
type mockADC struct {
	samples []uint16
	next    int
	vref    uint16
}

func (a *mockADC) Read() uint16 {
	if a.next < len(a.samples) {
		v := a.samples[a.next]
		a.next++
		return v
	}
	return a.samples[len(a.samples)-1]
}

func (a *mockADC) ReadVref() uint16 {
	return a.vref
}

func constSamples(v uint16, n int) []uint16 {
	s := make([]uint16, n)
	for i := range s {
		s[i] = v
	}
	return s
}

type mockPort struct {
	reg    uint16
	writes int
}

func (p *mockPort) Read() uint16 {
	return p.reg
}

func (p *mockPort) Write(v uint16) {
	p.reg = v
	p.writes++
}

type mockInput struct {
	bits  uint32
	reads int
}

func (p *mockInput) Read() uint32 {
	p.reads++
	return p.bits
}
