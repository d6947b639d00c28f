// Package checks provides the built-in checks for treelint.
//
// Every check works on the generic tree only, so it runs unchanged on any
// language a front end maps.
//
// # Checks
//
//   - S104: too-long-file - Files should not have too many lines of code
//
//   - S107: too-many-parameters - Functions should not have too many parameters
//
//   - S108: empty-block - Nested blocks of code should not be left empty
//
//   - S1125: redundant-boolean-literal - Boolean literals should not be redundant
//
//   - S1135: todo-comment - Track uses of "TODO" tags
//
//   - S1314: octal-values - Octal values should not be used
//
//   - S1763: code-after-jump - All code should be reachable
//
//   - S1764: identical-binary-operands - Identical expressions should not be used on both sides of a binary operator
//
//   - S1871: duplicate-branch - Branches should not have the same implementation
//
// # Check IDs
//
// Check IDs follow the "Sxxx" numbering of the SonarSource rule catalogue so
// that issues can be matched against existing quality profiles.
//
// # Registration
//
// Checks are registered with the default registry via RegisterAll.
package checks
