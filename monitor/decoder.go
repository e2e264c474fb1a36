package monitor

import (
	"bufio"
	"io"

	joysticksim "github.com/EvangelistasElectric/Joystick-Sim"
)

// Decoder assembles the firmware's debug lines into reports. Input before
// the first header line is skipped, so attaching to a running device
// mid-report resyncs on the next cycle.
type Decoder struct {
	scanner *bufio.Scanner
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{scanner: bufio.NewScanner(r)}
}

// Next returns the next complete report. It returns io.EOF when the stream
// ends before another report completes.
func (d *Decoder) Next() (joysticksim.Report, error) {
	var report joysticksim.Report
	synced := false

	for d.scanner.Scan() {
		line := d.scanner.Text()

		if line == joysticksim.ReportHeader {
			report = joysticksim.Report{}
			synced = true
			continue
		}
		if !synced {
			continue
		}

		done, err := report.ApplyLine(line)
		if err != nil {
			// Garbled line, usually from attaching mid-byte. Drop
			// the partial report and wait for the next header.
			synced = false
			continue
		}
		if done {
			return report, nil
		}
	}

	if err := d.scanner.Err(); err != nil {
		return joysticksim.Report{}, err
	}
	return joysticksim.Report{}, io.EOF
}
