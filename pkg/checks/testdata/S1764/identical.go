package p

func f(a, b int, s []int) bool {
	if a == a { // Noncompliant {{Correct one of the identical sub-expressions on both sides this operator}}
		return true
	}
	x := a - a // Noncompliant [[sc=11;ec=11;secondary=+0]]
	y := (b) / b // Noncompliant
	z := a + a
	w := a * a
	_ = len(s[0:1]) == len(s[0:1]) // Noncompliant
	return a == b || x == y || z == w
}
