package utils

import "testing"

func TestNumberToWords(t *testing.T) {
	cases := []struct {
		num  int
		want string
	}{
		{0, ""},
		{7, "Seven"},
		{19, "Nineteen"},
		{40, "Forty"},
		{85, "Eighty Five"},
		{100, "One Hundred"},
		{535, "Five Hundred Thirty Five"},
		{1001, "One Thousand One"},
		{125000, "One Lakh Twenty Five Thousand"},
		{23456789, "Two Crore Thirty Four Lakh Fifty Six Thousand Seven Hundred Eighty Nine"},
	}
	for _, c := range cases {
		if got := NumberToWords(c.num); got != c.want {
			t.Errorf("NumberToWords(%d) = %q, want %q", c.num, got, c.want)
		}
	}
}

func TestNumberToCurrencyWords(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "Zero Rupees Only"},
		{535, "Five Hundred Thirty Five Rupees Only"},
		{535.50, "Five Hundred Thirty Five Rupees and Fifty Paise Only"},
		{0.75, "Seventy Five Paise Only"},
	}
	for _, c := range cases {
		if got := NumberToCurrencyWords(c.amount); got != c.want {
			t.Errorf("NumberToCurrencyWords(%v) = %q, want %q", c.amount, got, c.want)
		}
	}
}
