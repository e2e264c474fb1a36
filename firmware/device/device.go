//go:build tinygo

package device

import (
	"errors"
	"machine"
	"time"

	joysticksim "github.com/EvangelistasElectric/Joystick-Sim"
)

// adcShift drops TinyGo's left-aligned 16-bit ADC reads down to the 10-bit
// range the calibration is expressed in.
const adcShift = 6

// Device polls the pad's buttons and sticks. All reads are instantaneous
// electrical state; there is no debouncing or filtering.
type Device struct {
	cfg     Config
	buttons [joysticksim.NumButtons]machine.Pin
	axes    [joysticksim.NumAxes]machine.ADC
	display *display
	js      *usbJoystick
}

// New configures the input pins and optional peripherals from cfg.
func New(cfg Config) (Device, error) {
	if cfg.Scaling || cfg.USBJoystick {
		if err := cfg.Axis.Validate(); err != nil {
			return Device{}, errors.New("invalid axis config: " + err.Error())
		}
	}
	if cfg.USBJoystick && !cfg.Scaling {
		return Device{}, errors.New("USB joystick output requires scaling")
	}

	d := Device{cfg: cfg}

	// Buttons have external pull-ups, so plain inputs.
	for i, p := range cfg.Pins.Buttons {
		p.Configure(machine.PinConfig{Mode: machine.PinInput})
		d.buttons[i] = p
	}

	machine.InitADC()
	for i, p := range cfg.Pins.Axes {
		adc := machine.ADC{Pin: p}
		adc.Configure(machine.ADCConfig{})
		d.axes[i] = adc
	}

	if cfg.Display != (DisplayConfig{}) {
		disp, err := newDisplay(cfg.Display)
		if err != nil {
			return Device{}, errors.New("error creating display: " + err.Error())
		}
		d.display = disp
	}

	if cfg.USBJoystick {
		d.js = newUSBJoystick(cfg.Axis)
	}

	return d, nil
}

// ReadButton returns the logical state of one button. The switch pulls the
// line to ground, so pressed is the inverse of the raw level.
func (d *Device) ReadButton(i int) bool {
	return !d.buttons[i].Get()
}

// ReadAxis returns one raw sample in [0, MaxInput].
func (d *Device) ReadAxis(i int) int {
	return int(d.axes[i].Get() >> adcShift)
}

// Sample reads every channel once and scales the axes if enabled.
func (d *Device) Sample() joysticksim.Report {
	var r joysticksim.Report

	for i := range d.axes {
		r.Raw[i] = d.ReadAxis(i)
	}
	if d.cfg.Scaling {
		r.HasScaled = true
		for i, v := range r.Raw {
			r.Scaled[i] = d.cfg.Axis.Scale(v)
		}
	}
	for i := range d.buttons {
		r.Pressed[i] = d.ReadButton(i)
	}

	return r
}

// Run polls forever: sample, report, repeat. It never returns.
func (d *Device) Run() {
	for {
		r := d.Sample()

		if d.cfg.Debug {
			for _, line := range r.Lines() {
				println(line)
			}
		}

		if d.display != nil {
			d.display.show(r, d.cfg.Axis)
		}

		if d.js != nil {
			d.js.send(r)
		}

		if d.cfg.CycleDelay > 0 {
			time.Sleep(d.cfg.CycleDelay)
		}
	}
}
