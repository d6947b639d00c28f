package p

func f(x int) {
	// Noncompliant@+1 {{Either remove or fill this block of code.}}
	if x > 0 {
	}
	for x > 0 {
		// waiting
	}
	// Noncompliant@+1 [[sc=6;el=+1;ec=2]]
	for {
	}
	// Noncompliant@+1
	switch x {
	}
	switch x {
	case 1:
	}
	// Noncompliant@+1
	{}
}

func empty() {}

var g = func() {}
