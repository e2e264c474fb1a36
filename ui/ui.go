// Package ui is a fyne desktop view of the pad's serial debug stream.
package ui

import (
	"context"
	"io"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	joysticksim "github.com/EvangelistasElectric/Joystick-Sim"
	"github.com/EvangelistasElectric/Joystick-Sim/monitor"
)

type axisRow struct {
	value *widget.Label
	bar   *widget.ProgressBar
}

// PadUI shows live axis and button state. It implements io.Writer so the
// serial stream can be teed straight into it.
type PadUI struct {
	pr *io.PipeReader
	pw *io.PipeWriter
}

func NewPadUI() *PadUI {
	pr, pw := io.Pipe()
	return &PadUI{pr: pr, pw: pw}
}

// Write feeds raw debug-stream bytes into the UI.
func (ui *PadUI) Write(p []byte) (int, error) {
	return ui.pw.Write(p)
}

// Run builds the window and blocks until the window closes or ctx is done.
func (ui *PadUI) Run(ctx context.Context) {
	application := app.New()
	window := application.NewWindow("Joystick Sim")

	axisCfg := joysticksim.DefaultAxisConfig()

	axisRows := make([]axisRow, joysticksim.NumAxes)
	axisContainer := container.NewVBox()
	for i := range axisRows {
		bar := widget.NewProgressBar()
		bar.Min = float64(axisCfg.OutputMin)
		bar.Max = float64(axisCfg.OutputMax)
		bar.TextFormatter = func() string { return "" }

		value := widget.NewLabel("-")
		axisRows[i] = axisRow{value: value, bar: bar}

		axisContainer.Add(container.NewGridWithColumns(3,
			widget.NewLabel("A"+strconv.Itoa(i)),
			value,
			bar,
		))
	}

	buttonLabels := make([]*widget.Label, joysticksim.NumButtons)
	buttonContainer := container.NewHBox()
	for i := range buttonLabels {
		buttonLabels[i] = widget.NewLabel("B" + strconv.Itoa(i) + ": released")
		buttonContainer.Add(buttonLabels[i])
	}

	go func() {
		dec := monitor.NewDecoder(ui.pr)
		for {
			r, err := dec.Next()
			if err != nil {
				return
			}
			fyne.Do(func() {
				for i, row := range axisRows {
					text := "raw=" + strconv.Itoa(r.Raw[i])
					if r.HasScaled {
						text += " scaled=" + strconv.Itoa(r.Scaled[i])
						row.bar.SetValue(float64(r.Scaled[i]))
					}
					row.value.SetText(text)
				}
				for i, label := range buttonLabels {
					state := "released"
					if r.Pressed[i] {
						state = "pressed"
					}
					label.SetText("B" + strconv.Itoa(i) + ": " + state)
				}
			})
		}
	}()

	go func() {
		<-ctx.Done()
		fyne.Do(func() {
			application.Quit()
		})
	}()

	window.SetContent(container.NewVBox(axisContainer, buttonContainer))
	window.Resize(fyne.NewSize(380, 240))
	window.ShowAndRun()

	ui.pr.Close()
}
