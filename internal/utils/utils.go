package utils

import (
	"fmt"
	"math"
)

// Returns the average of all given numbers n (0 when n is empty)
func Average(n ...int) int {
	if len(n) == 0 {
		return 0
	}

	var sum int
	for _, num := range n {
		sum += num
	}

	return sum / len(n)
}

// Rounds v and clips it to a channel value in [0, 255]
func ClampByte(v float64) byte {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return byte(v + 0.5)
}

// Wraps block in an ANSI 24-bit background colour escape
func ColoredBlock(block string, red int, green int, blue int) string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm%s\033[0m", red, green, blue, block)
}
