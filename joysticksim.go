// Package joysticksim holds the types shared between the gamepad firmware
// and the host-side monitor: axis calibration/scaling and the serial report
// format. It avoids fmt so the TinyGo build stays small.
package joysticksim

import "errors"

// Channel counts for the pad hardware: two dual-axis sticks and four buttons.
const (
	NumAxes    = 4
	NumButtons = 4
)

// Default calibration measured on the prototype sticks.
const (
	DefaultMaxInput  = 1023
	DefaultCenter    = 519
	DefaultDeadzone  = 5
	DefaultOutputMin = -127
	DefaultOutputMax = 127
)

// AxisConfig maps a raw ADC sample onto a signed HID-style output range.
type AxisConfig struct {
	// MaxInput is the highest raw value the converter can produce (1023
	// for a 10-bit read).
	MaxInput int

	// Center is the raw value reported by a stick at rest. It is not
	// necessarily MaxInput/2; both slopes still use MaxInput-Center as
	// the divisor, so an off-center calibration clamps earlier on the
	// negative side. That matches the original hardware behavior.
	Center int

	// Deadzone is the half-width of the band around Center that collapses
	// to zero output.
	Deadzone int

	OutputMin int
	OutputMax int
}

// DefaultAxisConfig returns the prototype calibration.
func DefaultAxisConfig() AxisConfig {
	return AxisConfig{
		MaxInput:  DefaultMaxInput,
		Center:    DefaultCenter,
		Deadzone:  DefaultDeadzone,
		OutputMin: DefaultOutputMin,
		OutputMax: DefaultOutputMax,
	}
}

// Validate reports whether the config can scale without dividing by zero or
// producing out-of-range output. Scaling itself never fails.
func (c AxisConfig) Validate() error {
	if c.MaxInput <= 0 {
		return errors.New("MaxInput must be positive")
	}
	if c.Center < 0 || c.Center >= c.MaxInput {
		return errors.New("Center must be within [0, MaxInput)")
	}
	if c.Deadzone < 0 {
		return errors.New("Deadzone must not be negative")
	}
	if c.OutputMin >= 0 || c.OutputMax <= 0 {
		return errors.New("output range must span zero")
	}
	return nil
}

// Scale maps a raw sample onto [OutputMin, OutputMax]. Samples inside the
// deadzone collapse to exactly zero. Division truncates, and the result is
// clamped, so the output is always in range no matter the input.
func (c AxisConfig) Scale(v int) int {
	delta := v - c.Center
	if delta > -c.Deadzone && delta < c.Deadzone {
		return 0
	}

	scaled := delta * c.OutputMax / (c.MaxInput - c.Center)
	if scaled > c.OutputMax {
		return c.OutputMax
	}
	if scaled < c.OutputMin {
		return c.OutputMin
	}
	return scaled
}
