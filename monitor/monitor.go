// Package monitor reads the firmware's serial debug stream on the host.
package monitor

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strconv"

	joysticksim "github.com/EvangelistasElectric/Joystick-Sim"

	"go.bug.st/serial"
	"go.bug.st/serial/enumerator"
)

const defaultBaudRate = 115200

// ErrNoUSBSerial means no USB serial port was found on this machine.
var ErrNoUSBSerial = errors.New("no USB serial ports found")

// Config selects the serial port to monitor.
type Config struct {
	Port     string
	BaudRate int
}

// Monitor wraps an open serial port and decodes the debug stream.
type Monitor struct {
	port serial.Port
}

// New opens the configured port.
func New(cfg Config) (*Monitor, error) {
	if cfg.Port == "" {
		ports, err := GetSerialPorts()
		if err != nil {
			return nil, err
		}
		cfg.Port = ports[0]
	}
	if cfg.BaudRate == 0 {
		cfg.BaudRate = defaultBaudRate
	}

	port, err := serial.Open(cfg.Port, &serial.Mode{BaudRate: cfg.BaudRate})
	if err != nil {
		return nil, errors.New("error opening serial port: " + err.Error())
	}

	return &Monitor{port: port}, nil
}

// NewFromEnv opens a port using JOYSTICK_PORT and JOYSTICK_BAUD, falling
// back to the first USB serial port and the default baud rate.
func NewFromEnv() (*Monitor, error) {
	cfg := Config{Port: os.Getenv("JOYSTICK_PORT")}

	if baud := os.Getenv("JOYSTICK_BAUD"); baud != "" {
		b, err := strconv.Atoi(baud)
		if err != nil {
			return nil, errors.New("invalid JOYSTICK_BAUD: " + baud)
		}
		cfg.BaudRate = b
	}

	return New(cfg)
}

// GetSerialPorts lists the USB serial ports on this machine.
func GetSerialPorts() ([]string, error) {
	details, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, err
	}

	var ports []string
	for _, d := range details {
		if d.IsUSB {
			ports = append(ports, d.Name)
		}
	}
	if len(ports) == 0 {
		return nil, ErrNoUSBSerial
	}

	return ports, nil
}

// Close releases the serial port.
func (m *Monitor) Close() error {
	return m.port.Close()
}

// Run copies the raw debug stream line-by-line to w until ctx is done or
// the port closes.
func (m *Monitor) Run(ctx context.Context, w io.Writer) error {
	scanner := bufio.NewScanner(m.port)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if _, err := io.WriteString(w, scanner.Text()+"\n"); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// Stream decodes the debug stream into reports. The channel closes when
// ctx is done or the port closes.
func (m *Monitor) Stream(ctx context.Context) <-chan joysticksim.Report {
	out := make(chan joysticksim.Report)

	go func() {
		defer close(out)

		dec := NewDecoder(m.port)
		for {
			r, err := dec.Next()
			if err != nil {
				return
			}
			select {
			case out <- r:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
