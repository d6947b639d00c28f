package p

func f(x int) int {
	if x == 1 {
		x++
		return x
	} else if x == 2 { // Noncompliant {{This branch's code block is the same as the block for the branch on line 4.}}
		x++
		return x
	} else {
		return 0
	}
	switch x {
	case 1:
		x--
		return x
	case 2:
		x-- // Noncompliant [[secondary=-3]]
		return x
	case 3:
		return 1
	case 4:
		return 1
	}
	if x > 9 {
		x++
		return 1
	} else {
		x++
		return 1
	}
}
