package utils

import (
	"math"
	"strings"
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// Indian numbering units and their divisors, largest first.
var units = []struct {
	div  int
	name string
}{
	{10000000, "Crore"},
	{100000, "Lakh"},
	{1000, "Thousand"},
	{100, "Hundred"},
}

// NumberToWords spells a non-negative integer in Indian numbering
// (crore/lakh/thousand). Zero comes out empty.
func NumberToWords(num int) string {
	if num <= 0 {
		return ""
	}
	if num < 20 {
		return ones[num]
	}
	if num < 100 {
		return strings.TrimSpace(tens[num/10] + " " + ones[num%10])
	}
	for _, u := range units {
		if num >= u.div {
			head := NumberToWords(num/u.div) + " " + u.name
			if rem := num % u.div; rem > 0 {
				return head + " " + NumberToWords(rem)
			}
			return head
		}
	}
	return ""
}

// NumberToCurrencyWords spells a monetary amount as rupees and paise, for the
// "amount in words" line on a printed bilty.
func NumberToCurrencyWords(amount float64) string {
	rupees := int(math.Floor(amount))
	paise := int(math.Round((amount - float64(rupees)) * 100))

	var parts []string
	if rupees > 0 {
		parts = append(parts, NumberToWords(rupees)+" Rupees")
	}
	if paise > 0 {
		parts = append(parts, NumberToWords(paise)+" Paise")
	}
	if len(parts) == 0 {
		return "Zero Rupees Only"
	}
	return strings.Join(parts, " and ") + " Only"
}
