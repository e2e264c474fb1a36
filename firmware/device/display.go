//go:build tinygo

package device

import (
	"errors"
	"image/color"

	joysticksim "github.com/EvangelistasElectric/Joystick-Sim"

	"tinygo.org/x/drivers/ssd1306"
)

var pixelOn = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// display renders the pad state on an SSD1306: one horizontal bar per axis
// and one square per button along the bottom edge.
type display struct {
	dev    ssd1306.Device
	width  int16
	height int16
}

func newDisplay(cfg DisplayConfig) (*display, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, errors.New("display dimensions must be positive")
	}

	dev := ssd1306.NewI2C(cfg.Bus)
	dev.Configure(ssd1306.Config{
		Address: cfg.Address,
		Width:   cfg.Width,
		Height:  cfg.Height,
	})
	dev.ClearDisplay()

	return &display{dev: dev, width: cfg.Width, height: cfg.Height}, nil
}

func (d *display) show(r joysticksim.Report, axis joysticksim.AxisConfig) {
	d.dev.ClearBuffer()

	rowHeight := d.height / (joysticksim.NumAxes + 1)
	barHeight := rowHeight - 2
	if barHeight < 1 {
		barHeight = 1
	}

	for i := 0; i < joysticksim.NumAxes; i++ {
		// Bar length over the full display width; scaled values are
		// offset so the resting stick sits mid-screen.
		var length int16
		if r.HasScaled {
			span := axis.OutputMax - axis.OutputMin
			length = int16((r.Scaled[i] - axis.OutputMin) * int(d.width-1) / span)
		} else {
			length = int16(r.Raw[i] * int(d.width-1) / axis.MaxInput)
		}

		y0 := int16(i) * rowHeight
		d.fillRect(0, y0, length+1, barHeight)
	}

	// Button squares, hollow when released.
	side := barHeight
	y0 := int16(joysticksim.NumAxes) * rowHeight
	for i := 0; i < joysticksim.NumButtons; i++ {
		x0 := int16(i) * (side + 4)
		if r.Pressed[i] {
			d.fillRect(x0, y0, side, side)
		} else {
			d.outlineRect(x0, y0, side, side)
		}
	}

	d.dev.Display()
}

func (d *display) fillRect(x0, y0, w, h int16) {
	for x := x0; x < x0+w && x < d.width; x++ {
		for y := y0; y < y0+h && y < d.height; y++ {
			d.dev.SetPixel(x, y, pixelOn)
		}
	}
}

func (d *display) outlineRect(x0, y0, w, h int16) {
	for x := x0; x < x0+w && x < d.width; x++ {
		d.dev.SetPixel(x, y0, pixelOn)
		d.dev.SetPixel(x, y0+h-1, pixelOn)
	}
	for y := y0; y < y0+h && y < d.height; y++ {
		d.dev.SetPixel(x0, y, pixelOn)
		d.dev.SetPixel(x0+w-1, y, pixelOn)
	}
}
