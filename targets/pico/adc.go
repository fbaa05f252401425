//go:build rp2040

package main

import "machine"

// cvReader samples the pitch CV through the on-chip ADC.
type cvReader struct {
	adc machine.ADC
}

func newCVReader(pin machine.Pin) *cvReader {
	adc := machine.ADC{Pin: pin}
	adc.Configure(machine.ADCConfig{})
	return &cvReader{adc: adc}
}

// Read returns the 12-bit sample; machine left-aligns to 16 bits.
func (r *cvReader) Read() uint16 {
	return r.adc.Get() >> 4
}

// vrefRaw is what a 12-bit ADC on a 3.3V rail reads from a 1.2V
// internal reference. The RP2040 has no reference channel to measure,
// so the scaling math uses the nominal value.
const vrefRaw = 1489

func (r *cvReader) ReadVref() uint16 {
	return vrefRaw
}
