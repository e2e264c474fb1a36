package joysticksim

import (
	"errors"
	"strconv"
	"strings"
)

// ReportHeader starts every report block on the serial debug channel.
const ReportHeader = "---"

// Report is one poll cycle's worth of pad state. Values are instantaneous;
// nothing carries over between cycles.
type Report struct {
	Raw       [NumAxes]int
	Scaled    [NumAxes]int
	HasScaled bool
	Pressed   [NumButtons]bool
}

// Lines renders the report in the fixed debug order: header, raw axis
// values, scaled axis values (when scaling is enabled), button states.
func (r Report) Lines() []string {
	n := 1 + NumAxes + NumButtons
	if r.HasScaled {
		n += NumAxes
	}
	lines := make([]string, 0, n)

	lines = append(lines, ReportHeader)
	for i, v := range r.Raw {
		lines = append(lines, "A"+strconv.Itoa(i)+" raw="+strconv.Itoa(v))
	}
	if r.HasScaled {
		for i, v := range r.Scaled {
			lines = append(lines, "A"+strconv.Itoa(i)+" scaled="+strconv.Itoa(v))
		}
	}
	for i, pressed := range r.Pressed {
		state := "released"
		if pressed {
			state = "pressed"
		}
		lines = append(lines, "B"+strconv.Itoa(i)+" "+state)
	}

	return lines
}

// String joins the report lines with newlines, ending with one.
func (r Report) String() string {
	return strings.Join(r.Lines(), "\n") + "\n"
}

var errBadLine = errors.New("unrecognized report line")

// ApplyLine parses a single debug line into the report. The header line
// resets the report and returns done=false; the final button line returns
// done=true. Unrecognized lines return an error so the reader can resync.
func (r *Report) ApplyLine(line string) (done bool, err error) {
	line = strings.TrimSpace(line)

	if line == ReportHeader {
		*r = Report{}
		return false, nil
	}

	if len(line) < 2 || (line[0] != 'A' && line[0] != 'B') {
		return false, errBadLine
	}

	kind := line[0]
	rest := line[1:]
	sep := strings.IndexByte(rest, ' ')
	if sep < 1 {
		return false, errBadLine
	}

	idx, err := strconv.Atoi(rest[:sep])
	if err != nil {
		return false, errBadLine
	}
	field := rest[sep+1:]

	switch kind {
	case 'A':
		if idx < 0 || idx >= NumAxes {
			return false, errBadLine
		}
		switch {
		case strings.HasPrefix(field, "raw="):
			v, err := strconv.Atoi(field[len("raw="):])
			if err != nil {
				return false, errBadLine
			}
			r.Raw[idx] = v
		case strings.HasPrefix(field, "scaled="):
			v, err := strconv.Atoi(field[len("scaled="):])
			if err != nil {
				return false, errBadLine
			}
			r.Scaled[idx] = v
			r.HasScaled = true
		default:
			return false, errBadLine
		}
		return false, nil
	case 'B':
		if idx < 0 || idx >= NumButtons {
			return false, errBadLine
		}
		switch field {
		case "pressed":
			r.Pressed[idx] = true
		case "released":
			r.Pressed[idx] = false
		default:
			return false, errBadLine
		}
		return idx == NumButtons-1, nil
	}

	return false, errBadLine
}
