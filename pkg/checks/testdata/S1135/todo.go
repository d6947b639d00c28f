package p

// TODO: remove this
// Noncompliant@-1 [[sc=4;ec=7]]

/* first line
   then a todo here */
// Noncompliant@-1 [[sc=11;ec=14]]

// mastodon
// todos are not tags
var x = 1 // NOSONAR todo later
// Noncompliant@-1
