package form

import "testing"

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"10", 10},
		{"10.50", 10.5},
		{" 7.25 ", 7.25},
		{"", 0},
		{"abc", 0},
		{"12abc", 0},
		{"NaN", 0},
		{"Inf", 0},
	}
	for _, c := range cases {
		if got := ParseAmount(c.in); got != c.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{500, 500},
		{535.004, 535},
		{535.005, 535.01},
		{10.1, 10.1},
		{0, 0},
	}
	for _, c := range cases {
		if got := Round2(c.in); got != c.want {
			t.Errorf("Round2(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestFreightAmount(t *testing.T) {
	cases := []struct {
		name                  string
		weight, rate, current string
		want                  string
	}{
		{"both positive", "10", "50", "", "500.00"},
		{"decimal factors", "2.5", "4", "", "10.00"},
		{"blank weight keeps current", "", "50", "123.00", "123.00"},
		{"blank rate keeps current", "10", "", "123.00", "123.00"},
		{"zero rate keeps current", "10", "0", "99.50", "99.50"},
		{"garbage keeps current", "x", "y", "42.00", "42.00"},
	}
	for _, c := range cases {
		if got := FreightAmount(c.weight, c.rate, c.current); got != c.want {
			t.Errorf("%s: FreightAmount(%q, %q, %q) = %q, want %q",
				c.name, c.weight, c.rate, c.current, got, c.want)
		}
	}
}

func TestTotalAmount(t *testing.T) {
	// weight=10, rate=50 => freight 500; labour 20, bilty 10, toll 0, pf 5, other 0 => 535.00
	if got := TotalAmount("500.00", "20", "10", "0", "5", "0"); got != "535.00" {
		t.Fatalf("TotalAmount = %q, want 535.00", got)
	}
	// unparseable terms count as zero
	if got := TotalAmount("100", "", "abc", "0", "", "0"); got != "100.00" {
		t.Fatalf("TotalAmount with bad terms = %q, want 100.00", got)
	}
}
