package nav

// wrapColumn maps any column index onto [0, n) cyclically.
func wrapColumn(col, n int) int {
	if n <= 0 {
		return 0
	}
	col %= n
	if col < 0 {
		col += n
	}
	return col
}

// clampIndex limits i to [0, n-1]; an empty range yields 0.
func clampIndex(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// moveRowBy shifts row by delta within [0, n-1] and reports whether it moved.
func moveRowBy(row *int, delta, n int) bool {
	if n == 0 {
		*row = 0
		return false
	}
	old := *row
	*row = clampIndex(*row+delta, n)
	return *row != old
}
