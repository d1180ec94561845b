package qoracle

import "strings"

/*
BinaryLabel returns the binary form of x, most significant bit first and
without leading zeros. Zero maps to "0", so labels for a two-qubit vector
come out as "0", "1", "10", "11".
*/
func BinaryLabel(x int) string {
	if x <= 0 {
		return "0"
	}

	var buf [64]byte
	i := len(buf)
	for x > 0 {
		i--
		buf[i] = byte('0' + x%2)
		x /= 2
	}
	return string(buf[i:])
}

// PaddedLabel left-pads BinaryLabel with zeros up to width.
func PaddedLabel(x, width int) string {
	label := BinaryLabel(x)
	if len(label) >= width {
		return label
	}
	return strings.Repeat("0", width-len(label)) + label
}
