// On-hardware test: expects a flashed pad on the port below, with debug
// output and scaling enabled.
package main_test

import (
	"bytes"
	"io"
	"testing"
	"time"

	joysticksim "github.com/EvangelistasElectric/Joystick-Sim"
	"github.com/EvangelistasElectric/Joystick-Sim/monitor"

	"go.bug.st/serial"
)

const port = "/dev/cu.usbmodem2101"

func readStream(t *testing.T, d time.Duration) []byte {
	t.Helper()
	mode := &serial.Mode{
		BaudRate: 115200,
	}

	p, err := serial.Open(port, mode)
	if err != nil {
		t.Fatalf("unexpected error opening serial connection: %v", err)
	}
	defer p.Close()

	p.SetReadTimeout(1 * time.Second)
	deadline := time.Now().Add(d)

	var out bytes.Buffer
	buf := make([]byte, 256)
	for time.Now().Before(deadline) {
		n, err := p.Read(buf)
		if err != nil {
			t.Fatalf("unexpected error reading serial: %v", err)
		}
		out.Write(buf[:n])
	}
	return out.Bytes()
}

func TestSerialReports(t *testing.T) {
	stream := readStream(t, 3*time.Second)

	dec := monitor.NewDecoder(bytes.NewReader(bytes.ReplaceAll(stream, []byte("\r\n"), []byte("\n"))))

	axisCfg := joysticksim.DefaultAxisConfig()

	var count int
	for {
		r, err := dec.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("unexpected decode error: %v", err)
		}
		count++

		for i, raw := range r.Raw {
			if raw < 0 || raw > axisCfg.MaxInput {
				t.Errorf("A%d raw=%d outside [0, %d]", i, raw, axisCfg.MaxInput)
			}
		}
		if !r.HasScaled {
			t.Error("expected scaled values in report")
			continue
		}
		for i, scaled := range r.Scaled {
			if scaled < axisCfg.OutputMin || scaled > axisCfg.OutputMax {
				t.Errorf("A%d scaled=%d outside [%d, %d]", i, scaled, axisCfg.OutputMin, axisCfg.OutputMax)
			}
			if r.Scaled[i] != axisCfg.Scale(r.Raw[i]) {
				t.Errorf("A%d scaled=%d does not match Scale(%d)=%d", i, scaled, r.Raw[i], axisCfg.Scale(r.Raw[i]))
			}
		}
	}

	if count == 0 {
		t.Error("no complete reports decoded; is the device flashed with debug output enabled?")
	}
}
