package p

func g(a, b int) bool {
	var _ = a + a
	return a != b && a-1 == b-2
}
