package services

import "testing"

func strPtr(s string) *string { return &s }

func TestParsePrice(t *testing.T) {
	tests := []struct {
		raw  string
		want int64
		null bool
	}{
		{"£38,000*", 38000, false},
		{"£38,990*", 38990, false},
		{"Â£30,000", 30000, false},
		{"£ 25 500", 25500, false},
		{"45000", 45000, false},
		{"", 0, true},
		{"TBC", 0, true},
	}

	for _, tt := range tests {
		got := parsePrice(strPtr(tt.raw))
		if tt.null {
			if got != nil {
				t.Errorf("parsePrice(%q) = %d; want NULL", tt.raw, *got)
			}
			continue
		}
		if got == nil {
			t.Errorf("parsePrice(%q) = NULL; want %d", tt.raw, tt.want)
			continue
		}
		if *got != tt.want {
			t.Errorf("parsePrice(%q) = %d; want %d", tt.raw, *got, tt.want)
		}
	}

	if got := parsePrice(nil); got != nil {
		t.Errorf("parsePrice(nil) = %d; want NULL", *got)
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		raw  string
		want int64
		null bool
	}{
		{"320 mi", 320, false},
		{"1765 kg", 1765, false},
		{"250 Wh/mi", 250, false},
		{"57.5", 57, false},
		{"5", 5, false},
		{"", 0, true},
		{"N/A", 0, true},
		{"..", 0, true},
	}

	for _, tt := range tests {
		got := parseInt(strPtr(tt.raw))
		if tt.null {
			if got != nil {
				t.Errorf("parseInt(%q) = %d; want NULL", tt.raw, *got)
			}
			continue
		}
		if got == nil {
			t.Errorf("parseInt(%q) = NULL; want %d", tt.raw, tt.want)
			continue
		}
		if *got != tt.want {
			t.Errorf("parseInt(%q) = %d; want %d", tt.raw, *got, tt.want)
		}
	}
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
		null bool
	}{
		{"6.1 sec", 6.1, false},
		{"57.5 kWh", 57.5, false},
		{"170 kW", 170, false},
		{"", 0, true},
		{"free", 0, true},
		{"1.2.3", 0, true},
	}

	for _, tt := range tests {
		got := parseDecimal(strPtr(tt.raw))
		if tt.null {
			if got != nil {
				t.Errorf("parseDecimal(%q) = %v; want NULL", tt.raw, *got)
			}
			continue
		}
		if got == nil {
			t.Errorf("parseDecimal(%q) = NULL; want %v", tt.raw, tt.want)
			continue
		}
		if *got != tt.want {
			t.Errorf("parseDecimal(%q) = %v; want %v", tt.raw, *got, tt.want)
		}
	}
}

func TestRemapDrivetrain(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"All Wheel Drive", "AWD"},
		{"Rear Wheel Drive", "RWD"},
		{"Rare Wheel Drive", "RWD"},
		{"Front Wheel Drive", "FWD"},
		{"Z", "Z"},
		{"4WD", "4WD"},
	}

	for _, tt := range tests {
		got := remapDrivetrain(strPtr(tt.raw))
		if got == nil || *got != tt.want {
			t.Errorf("remapDrivetrain(%q) = %v; want %q", tt.raw, got, tt.want)
		}
	}

	if got := remapDrivetrain(nil); got != nil {
		t.Errorf("remapDrivetrain(nil) = %q; want NULL", *got)
	}
}

func TestRemapClass(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"A", "mini"},
		{"B", "compact"},
		{"c", "medium"},
		{"D", "large"},
		{"e", "executive"},
		{"F", "luxury"},
		{"N", "passenger van"},
		{"s", "sports"},
		{"X", "X"},
		{"SUV", "SUV"},
	}

	for _, tt := range tests {
		got := remapClass(strPtr(tt.raw))
		if got == nil || *got != tt.want {
			t.Errorf("remapClass(%q) = %v; want %q", tt.raw, got, tt.want)
		}
	}
}

func TestRoundTo(t *testing.T) {
	tests := []struct {
		val    float64
		places int
		want   float64
	}{
		{127.836065, 2, 127.84},
		{678.086956, 2, 678.09},
		{0.1639344, 4, 0.1639},
		{2.9565217, 4, 2.9565},
		{40000, 2, 40000},
	}

	for _, tt := range tests {
		if got := roundTo(tt.val, tt.places); got != tt.want {
			t.Errorf("roundTo(%v, %d) = %v; want %v", tt.val, tt.places, got, tt.want)
		}
	}
}
