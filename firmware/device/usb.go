//go:build tinygo

package device

import (
	"machine/usb/hid/joystick"

	joysticksim "github.com/EvangelistasElectric/Joystick-Sim"
)

// usbJoystick mirrors the scaled pad state as a USB HID gamepad report.
type usbJoystick struct {
	port *joystick.Joystick
}

func newUSBJoystick(axis joysticksim.AxisConfig) *usbJoystick {
	axisDefs := make([]joystick.Constraint, joysticksim.NumAxes)
	for i := range axisDefs {
		axisDefs[i] = joystick.Constraint{
			MinIn:  axis.OutputMin,
			MaxIn:  axis.OutputMax,
			MinOut: int16(axis.OutputMin),
			MaxOut: int16(axis.OutputMax),
		}
	}

	return &usbJoystick{
		port: joystick.UseSettings(joystick.Definitions{
			ReportID:     1,
			ButtonCnt:    joysticksim.NumButtons,
			HatSwitchCnt: 0,
			AxisDefs:     axisDefs,
		}, nil, nil, nil),
	}
}

func (u *usbJoystick) send(r joysticksim.Report) {
	for i, v := range r.Scaled {
		u.port.SetAxis(i, v)
	}
	for i, pressed := range r.Pressed {
		u.port.SetButton(i, pressed)
	}
	u.port.SendState()
}
