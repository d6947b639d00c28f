package p

func f(x int) {
	if x > 0 {
		x--
	} else {
		// nothing to undo
	}
	select {}
}

type empty struct{}
