package p

func few(a, b int) {}

func many(a, b, c, d, e, f, g, h int) { // Noncompliant {{This function has 8 parameters, which is greater than the 7 authorized.}}
}

var lit = func(a, b, c, d, e, f, g, h, i int) {} // Noncompliant [[sc=11;ec=45;secondary=+0,+0]]
