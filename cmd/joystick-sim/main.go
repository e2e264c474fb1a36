package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/EvangelistasElectric/Joystick-Sim/monitor"
	"github.com/EvangelistasElectric/Joystick-Sim/ui"
)

func main() {
	var port string
	var baud int
	var listPorts bool
	flag.StringVar(&port, "port", "", "Serial port of the pad. Defaults to JOYSTICK_PORT or the first USB serial port")
	flag.IntVar(&baud, "baud", 0, "Baud rate. Defaults to JOYSTICK_BAUD or 115200")
	flag.BoolVar(&listPorts, "list", false, "List USB serial ports and exit")
	flag.Parse()

	if listPorts {
		ports, err := monitor.GetSerialPorts()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(strings.Join(ports, "\n"))
		return
	}

	m, err := newMonitor(port, baud)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer m.Close()

	if os.Getenv("ENABLE_UI") == "true" {
		runUI(m)
		return
	}

	runCLI(m)
}

func newMonitor(port string, baud int) (*monitor.Monitor, error) {
	if port == "" && baud == 0 {
		return monitor.NewFromEnv()
	}
	return monitor.New(monitor.Config{Port: port, BaudRate: baud})
}

func runUI(m *monitor.Monitor) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	padUI := ui.NewPadUI()

	go func() {
		err := m.Run(ctx, io.MultiWriter(os.Stdout, padUI))
		if err != nil && ctx.Err() == nil {
			fmt.Fprintln(os.Stderr, err)
		}
		cancel()
	}()

	padUI.Run(ctx)
}

func runCLI(m *monitor.Monitor) {
	err := m.Run(context.Background(), os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
