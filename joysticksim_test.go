package joysticksim

import "testing"

func TestScale(t *testing.T) {
	cfg := DefaultAxisConfig()

	tests := []struct {
		name     string
		in       int
		expected int
	}{
		{"Center", 519, 0},
		{"InsideDeadzonePositive", 523, 0},
		{"InsideDeadzoneNegative", 515, 0},
		{"FullPositiveDeflection", 1023, 127},
		{"FullNegativeDeflectionClamped", 0, -127},
		{"PartialDeflectionTruncates", 600, 20},
		{"DeadzoneEdgeIsScaled", 524, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := cfg.Scale(tt.in)
			if out != tt.expected {
				t.Errorf("expected=%d, got=%d", tt.expected, out)
			}
		})
	}
}

func TestScaleAlwaysInRange(t *testing.T) {
	cfg := DefaultAxisConfig()

	for v := 0; v <= cfg.MaxInput; v++ {
		out := cfg.Scale(v)
		if out < cfg.OutputMin || out > cfg.OutputMax {
			t.Fatalf("Scale(%d) = %d, outside [%d, %d]", v, out, cfg.OutputMin, cfg.OutputMax)
		}
	}
}

func TestScaleMonotonic(t *testing.T) {
	cfg := DefaultAxisConfig()

	prev := cfg.Scale(cfg.Center)
	for v := cfg.Center + 1; v <= cfg.MaxInput; v++ {
		out := cfg.Scale(v)
		if out < prev {
			t.Fatalf("Scale(%d) = %d decreased from %d above center", v, out, prev)
		}
		prev = out
	}

	prev = cfg.Scale(cfg.Center)
	for v := cfg.Center - 1; v >= 0; v-- {
		out := cfg.Scale(v)
		if out > prev {
			t.Fatalf("Scale(%d) = %d increased from %d below center", v, out, prev)
		}
		prev = out
	}
}

func TestScaleOffCenterAsymmetry(t *testing.T) {
	// With the center above the midpoint, the divisor MaxInput-Center is
	// shorter than the negative half of the range, so the negative side
	// saturates before reaching the physical minimum.
	cfg := DefaultAxisConfig()

	if out := cfg.Scale(cfg.Center - (cfg.MaxInput - cfg.Center)); out != cfg.OutputMin {
		t.Errorf("expected saturation at symmetric deflection, got %d", out)
	}
	if out := cfg.Scale(cfg.Center - (cfg.MaxInput - cfg.Center) + 1); out == cfg.OutputMin {
		t.Errorf("expected value just inside saturation point to not clamp")
	}
}

func TestAxisConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*AxisConfig)
		wantErr bool
	}{
		{"Default", func(c *AxisConfig) {}, false},
		{"CenterAtMax", func(c *AxisConfig) { c.Center = c.MaxInput }, true},
		{"NegativeCenter", func(c *AxisConfig) { c.Center = -1 }, true},
		{"NegativeDeadzone", func(c *AxisConfig) { c.Deadzone = -1 }, true},
		{"ZeroMaxInput", func(c *AxisConfig) { c.MaxInput = 0 }, true},
		{"OutputMinNotNegative", func(c *AxisConfig) { c.OutputMin = 0 }, true},
		{"OutputMaxNotPositive", func(c *AxisConfig) { c.OutputMax = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultAxisConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
