//go:build rp2040

package main

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ssd1306"

	"github.com/deusletum/oxide-dco/core"
)

const (
	displayWidth  = 128
	displayHeight = 32
	displayAddr   = 0x3C
)

// tuningDisplay renders the coarse pitch byte as a bar and the
// fine-tune offset as a marker around center screen. It is driven from
// the main loop only; the interrupt tasks never touch I2C.
type tuningDisplay struct {
	dev ssd1306.Device
}

func newTuningDisplay() (*tuningDisplay, error) {
	err := machine.I2C0.Configure(machine.I2CConfig{
		SDA:       machine.GP20,
		SCL:       machine.GP21,
		Frequency: 400 * machine.KHz,
	})
	if err != nil {
		return nil, err
	}

	dev := ssd1306.NewI2C(machine.I2C0)
	dev.Configure(ssd1306.Config{
		Width:   displayWidth,
		Height:  displayHeight,
		Address: displayAddr,
	})
	dev.ClearDisplay()
	return &tuningDisplay{dev: dev}, nil
}

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

func (d *tuningDisplay) update(coarse uint8, fineTune int32) {
	d.dev.ClearBuffer()

	// Coarse pitch bar across the top, half a pixel per step.
	bar := int16(coarse) / 2
	for x := int16(0); x < bar; x++ {
		for y := int16(2); y < 12; y++ {
			d.dev.SetPixel(x, y, white)
		}
	}

	// Fine-tune marker: one pixel per detent off center, clamped to
	// the panel edges.
	detents := fineTune / core.FineTuneStep
	if detents > displayWidth/2-1 {
		detents = displayWidth/2 - 1
	} else if detents < -displayWidth/2 {
		detents = -displayWidth / 2
	}
	x := int16(displayWidth/2 + detents)
	for y := int16(20); y < displayHeight; y++ {
		d.dev.SetPixel(x, y, white)
		d.dev.SetPixel(displayWidth/2, y, white)
	}

	d.dev.Display()
}
