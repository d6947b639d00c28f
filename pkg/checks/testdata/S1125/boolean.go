package p

func f(a bool) bool {
	if a == true || false { // Noncompliant [[sc=18;ec=22]]
		return !true // Noncompliant {{Remove the unnecessary Boolean literal.}}
	}
	return a && (true) // Noncompliant
}
