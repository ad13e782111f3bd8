package comb

import "fmt"

// AssignNames numbers the combinations sequentially with a zero-padded
// index appended to the prefix, in the order they were enumerated. Padding
// width is the number of digits of the last index, so 10 combinations run
// "ULS00".."ULS09". An empty list yields nil.
func AssignNames(combinations []Combination, prefix string) []Combination {
	count := len(combinations)
	if count == 0 {
		return nil
	}
	width := 1
	for n := count; n >= 10; n /= 10 {
		width++
	}
	named := make([]Combination, count)
	for i, c := range combinations {
		c.Name = fmt.Sprintf("%s%0*d", prefix, width, i)
		named[i] = c
	}
	return named
}
