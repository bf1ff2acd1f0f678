package domain

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Abbreviate renders a count compactly: 999 -> "999", 1000 -> "1K",
// 1250 -> "1.3K". Thousands are rounded half-up to one decimal.
func Abbreviate(n int) string {
	if n < 1000 {
		return strconv.Itoa(n)
	}
	tenths := (n + 50) / 100
	whole, frac := tenths/10, tenths%10
	if frac == 0 {
		return strconv.Itoa(whole) + "K"
	}
	return strconv.Itoa(whole) + "." + strconv.Itoa(frac) + "K"
}

var (
	leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)`)
	leadingInt   = regexp.MustCompile(`^[+-]?\d+`)
)

// ParseCount is the lossy inverse of Abbreviate: "1.2K" -> 1200,
// "500" -> 500. Unrecognized input yields 0. Only the leading number is
// read, so "12 likes" -> 12.
func ParseCount(label string) int {
	s := strings.TrimSpace(label)
	if strings.Contains(s, "K") {
		num := leadingFloat.FindString(strings.TrimSpace(strings.ReplaceAll(s, "K", "")))
		f, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return 0
		}
		return int(math.Round(f * 1000))
	}
	n, err := strconv.Atoi(leadingInt.FindString(s))
	if err != nil {
		return 0
	}
	return n
}
