package utils

import (
	"fmt"
	"math"
	"strconv"
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

var scales = []struct {
	value int
	name  string
}{
	{1_000_000_000, "Billion"},
	{1_000_000, "Million"},
	{1_000, "Thousand"},
}

// MaxSalary bounds the amounts the salary helpers render; larger values are
// clamped so the cent arithmetic stays inside int64.
const MaxSalary = 1_000_000_000_000

func clampSalary(amount float64) float64 {
	return math.Max(-MaxSalary, math.Min(amount, MaxSalary))
}

// NumberToWords spells out a non-negative integer on the short scale.
func NumberToWords(num int) string {
	switch {
	case num <= 0:
		return ""
	case num < 20:
		return ones[num]
	case num < 100:
		return strings.TrimSpace(tens[num/10] + " " + ones[num%10])
	case num < 1000:
		return strings.TrimSpace(ones[num/100] + " Hundred " + NumberToWords(num%100))
	}

	for _, s := range scales {
		if num >= s.value {
			return strings.TrimSpace(NumberToWords(num/s.value) + " " + s.name + " " + NumberToWords(num%s.value))
		}
	}
	return ""
}

// SalaryToWords renders an amount as "<n> Dollars and <m> Cents".
func SalaryToWords(amount float64) string {
	if amount < 0 {
		amount = 0
	}
	cents := int(math.Round(clampSalary(amount) * 100))
	dollars, rest := cents/100, cents%100

	var parts []string
	if dollars > 0 {
		parts = append(parts, NumberToWords(dollars)+" "+plural(dollars, "Dollar"))
	}
	if rest > 0 {
		parts = append(parts, NumberToWords(rest)+" "+plural(rest, "Cent"))
	}
	if len(parts) == 0 {
		return "Zero Dollars"
	}
	return strings.Join(parts, " and ")
}

// FormatSalary renders 1234567.5 as "$1,234,567.50" and drops ".00".
func FormatSalary(amount float64) string {
	cents := int64(math.Round(math.Abs(clampSalary(amount)) * 100))
	digits := strconv.FormatInt(cents/100, 10)

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	sign := ""
	if amount < 0 {
		sign = "-"
	}
	if frac := cents % 100; frac != 0 {
		return fmt.Sprintf("%s$%s.%02d", sign, b.String(), frac)
	}
	return sign + "$" + b.String()
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
