package core

// LinePoints returns the score for clearing n lines in one lock.
func LinePoints(n int) int {
	switch n {
	case 1:
		return 100
	case 2:
		return 300
	case 3:
		return 500
	case 4:
		return 800
	default:
		return 0
	}
}
