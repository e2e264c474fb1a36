//go:build tinygo

package device

import (
	"machine"
	"time"

	joysticksim "github.com/EvangelistasElectric/Joystick-Sim"

	"tinygo.org/x/drivers"
)

// PinConfig assigns the pad's inputs. Buttons are wired switch-to-ground
// with external pull-ups; axis pins must be ADC-capable.
type PinConfig struct {
	Buttons [joysticksim.NumButtons]machine.Pin
	Axes    [joysticksim.NumAxes]machine.Pin
}

// DisplayConfig sets up the optional SSD1306 status display. Leave it zero
// to run without one.
type DisplayConfig struct {
	Bus     drivers.I2C
	Address uint16
	Width   int16
	Height  int16
}

// Config has everything fixed before the loop starts. Nothing here changes
// at runtime.
type Config struct {
	Pins PinConfig
	Axis joysticksim.AxisConfig

	// Scaling enables mapping raw samples onto the signed output range.
	Scaling bool

	// Debug enables the per-cycle text report on the serial channel.
	Debug bool

	// CycleDelay slows the loop down so the debug output stays readable.
	// Zero means no delay.
	CycleDelay time.Duration

	// USBJoystick forwards scaled state as a USB HID gamepad report.
	// Requires Scaling.
	USBJoystick bool

	Display DisplayConfig
}
