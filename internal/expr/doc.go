// Package expr evaluates the numeric expressions of the board DSL.
//
// Evaluation runs in four textual phases, always in this order:
//
//  1. `$name` is replaced by the variable's value.
//  2. `{id.prop}` is replaced by the referenced board's property.
//  3. `LEN(x1,y1,x2,y2)` is replaced by the distance between two points.
//  4. What is left is evaluated as plain arithmetic over numbers with
//     `+ - * /` and parentheses.
//
// Substitution is finished before any arithmetic happens, so substituted
// values never need further lookups. The arithmetic grammar is closed: any
// character other than digits, blanks, `+-*/().` is rejected.
package expr
