package numerology

// MinPatternRun is the shortest run of equal digits reported as a pattern.
const MinPatternRun = 3

// Pattern is a run of at least MinPatternRun equal digits inside one row.
type Pattern struct {
	Row    int
	Start  int
	Number int
	Count  int
}

type patternKey struct {
	row, start, number, count int
}

// FindConsecutivePatterns scans each row in stored order (apex first) from
// left to right. Runs never continue across rows.
func FindConsecutivePatterns(p Pyramid) []Pattern {
	patterns := []Pattern{}
	seen := make(map[patternKey]struct{})

	emit := func(row, end, number, count int) {
		if count < MinPatternRun {
			return
		}
		key := patternKey{row: row, start: end - count, number: number, count: count}
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		patterns = append(patterns, Pattern{Row: row, Start: key.start, Number: number, Count: count})
	}

	for rowIdx, row := range p {
		current, count := 0, 0
		for i, v := range row {
			switch {
			case count == 0:
				current, count = v, 1
			case v == current:
				count++
			default:
				emit(rowIdx, i, current, count)
				current, count = v, 1
			}
		}
		emit(rowIdx, len(row), current, count)
	}
	return patterns
}
