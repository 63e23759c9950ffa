package normalize

import "testing"

func TestAmountNumericPassthrough(t *testing.T) {
	v, ok := Amount(float64(1234.5))
	if !ok || v != 1234.5 {
		t.Errorf("Expected 1234.5, got %f (ok=%v)", v, ok)
	}

	v, ok = Amount(42)
	if !ok || v != 42.0 {
		t.Errorf("Expected 42.0, got %f (ok=%v)", v, ok)
	}
}

func TestAmountStringFormats(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1 234", 1234.0},           // space thousands separator
		{"(500.00)", -500.0},        // parenthesized negative
		{"$1,200.50", 1200.5},       // currency symbol + comma separator
		{"R 12 345.67", 12345.67},   // currency prefix with spaces
		{"  750 ", 750.0},           // surrounding whitespace
		{"(R1,000)", -1000.0},       // currency inside parentheses
		{"0", 0.0},
		{"1234567.89", 1234567.89},
	}

	for _, c := range cases {
		got, ok := Amount(c.in)
		if !ok {
			t.Errorf("Amount(%q): expected %f, got no value", c.in, c.want)
			continue
		}
		if got != c.want {
			t.Errorf("Amount(%q): expected %f, got %f", c.in, c.want, got)
		}
	}
}

func TestAmountUnparseable(t *testing.T) {
	for _, in := range []string{"", "abc", "()", "$", "   ", "1.2.3", "."} {
		if v, ok := Amount(in); ok {
			t.Errorf("Amount(%q): expected no value, got %f", in, v)
		}
	}

	// Non-numeric, non-string inputs also report absence.
	if v, ok := Amount(nil); ok {
		t.Errorf("Amount(nil): expected no value, got %f", v)
	}
	if v, ok := Amount([]string{"x"}); ok {
		t.Errorf("Amount(slice): expected no value, got %f", v)
	}
}

func TestYear(t *testing.T) {
	if y, ok := Year("2023"); !ok || y != 2023 {
		t.Errorf("Year(2023): got %d (ok=%v)", y, ok)
	}
	if y, ok := Year(" 2020 "); !ok || y != 2020 {
		t.Errorf("Year with whitespace: got %d (ok=%v)", y, ok)
	}

	for _, in := range []string{"", "FY2023", "2023/24", "-2023", "20 23"} {
		if _, ok := Year(in); ok {
			t.Errorf("Year(%q): expected rejection", in)
		}
	}
}
