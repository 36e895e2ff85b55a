package utils

import "strconv"

// FormatINR renders an integer rupee amount with Indian digit grouping,
// e.g. 200000 -> "₹2,00,000". Grouping is the last three digits, then
// pairs of two. Formatting is presentation-only; amounts stay integers.
func FormatINR(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	if len(digits) <= 3 {
		return sign + "₹" + digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	grouped := ""
	for len(head) > 2 {
		grouped = "," + head[len(head)-2:] + grouped
		head = head[:len(head)-2]
	}
	return sign + "₹" + head + grouped + "," + tail
}
