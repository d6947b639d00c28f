package p

func three(a, b, c int) {}

func four(a, b, c, d int) {} // Noncompliant {{This function has 4 parameters, which is greater than the 3 authorized.}}
