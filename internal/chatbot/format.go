package chatbot

import (
	"strconv"
	"strings"
)

// FormatINR renders rupees with Indian digit grouping, e.g. ₹5,00,000.
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

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	return sign + "₹" + strings.Join(groups, ",") + "," + tail
}
