package numerology

// Pyramid holds the reduction rows top-first: index 0 is the apex and the last
// row is the base built from the name.
type Pyramid [][]int

// ReduceToSingleDigit sums the decimal digits of n until a single digit is
// left. Positive multiples of 9 reduce to 9, never to 0.
func ReduceToSingleDigit(n int) int {
	if n < 0 {
		n = -n
	}
	for n >= 10 {
		sum := 0
		for n > 0 {
			sum += n % 10
			n /= 10
		}
		n = sum
	}
	return n
}

// BuildPyramid reduces adjacent pairs of the base row until one value is
// left. A base of length n yields exactly n rows; an empty base yields none.
func BuildPyramid(base Digits) Pyramid {
	if len(base) == 0 {
		return Pyramid{}
	}

	rows := make(Pyramid, len(base))
	current := append([]int(nil), base...)
	rows[len(base)-1] = current

	for level := len(base) - 2; level >= 0; level-- {
		next := make([]int, len(current)-1)
		for i := range next {
			next[i] = ReduceToSingleDigit(current[i] + current[i+1])
		}
		rows[level] = next
		current = next
	}
	return rows
}

// Apex returns the single value at the top of the pyramid, or 0 when empty.
func (p Pyramid) Apex() int {
	if len(p) == 0 || len(p[0]) == 0 {
		return 0
	}
	return p[0][0]
}

// Base returns the row built directly from the name.
func (p Pyramid) Base() []int {
	if len(p) == 0 {
		return nil
	}
	return p[len(p)-1]
}
