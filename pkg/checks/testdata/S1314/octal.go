package p

import "os"

const (
	a = 010 // Noncompliant {{Use decimal values instead of octal ones.}}
	b = 0o17 // Noncompliant
	c = 07
	d = 0644
	e = 0x10
	f = 0
	g = 0o1234 // Noncompliant [[sc=6;ec=11]]
)

func h() error { return os.Chmod("f", 0755) }
