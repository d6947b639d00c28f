package p

// Noncompliant@0 {{File "long.go" has 4 lines, which is greater than 3 authorized. Split it into smaller files.}}

var a = 1
var b = 2

var c = 3
