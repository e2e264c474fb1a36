//go:build tinygo

package main

import (
	"machine"
	"time"

	joysticksim "github.com/EvangelistasElectric/Joystick-Sim"
	"github.com/EvangelistasElectric/Joystick-Sim/firmware/device"
)

// Feature toggles, fixed at build time.
const (
	debugOutput = true
	scaleAxes   = true
	usbJoystick = false
	cycleDelay  = 100 * time.Millisecond
)

func main() {
	cfg := device.Config{
		Pins: device.PinConfig{
			// Four face switches, wired to ground with external pull-ups.
			Buttons: [4]machine.Pin{machine.GP10, machine.GP11, machine.GP12, machine.GP13},
			// GP26-GP29 are the RP2040's ADC-capable pins:
			// left X/Y, right X/Y.
			Axes: [4]machine.Pin{machine.GP26, machine.GP27, machine.GP28, machine.GP29},
		},
		Axis:        joysticksim.DefaultAxisConfig(),
		Scaling:     scaleAxes,
		Debug:       debugOutput,
		CycleDelay:  cycleDelay,
		USBJoystick: usbJoystick,
	}

	// Uncomment to mirror the pad state on an SSD1306 at the usual address.
	// machine.I2C0.Configure(machine.I2CConfig{})
	// cfg.Display = device.DisplayConfig{
	// 	Bus:     machine.I2C0,
	// 	Address: 0x3C,
	// 	Width:   128,
	// 	Height:  64,
	// }

	d, err := device.New(cfg)
	if err != nil {
		panic(err)
	}

	d.Run()
}
