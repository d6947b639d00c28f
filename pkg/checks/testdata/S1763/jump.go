package p

func f(x int) int {
	for x > 0 {
		if x == 1 {
			break // Noncompliant {{Refactor this piece of code to not have any dead code after this "break".}}
			x++
		}
		continue // Noncompliant
		x--
	}
	switch x {
	case 2:
		return 2 // Noncompliant {{Refactor this piece of code to not have any dead code after this "return".}}
		x = 3
	}
	return x
}
