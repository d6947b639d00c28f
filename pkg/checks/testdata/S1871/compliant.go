package p

func f(x int) int {
	if x == 1 {
		return 1
	} else if x == 2 {
		return 1
	}
	if x > 3 {
		x++
		return x
	}
	return 0
}
