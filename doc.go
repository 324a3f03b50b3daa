// Package infix parses and evaluates arithmetic expressions.
//
// The language is infix notation over float64 values: numeric literals,
// variables, unary + and -, binary operators drawn from a fixed table,
// parenthesised grouping, single-argument function calls, and let bindings
// with dynamic extent:
//
//     let x = 3 in x * x + 1
//
// The binary operators and their precedences (0 binds loosest):
//
//     0    +  -        left associative
//     1    *  /  %     left associative
//     2    **          right associative
//
// Parse returns the expression tree and Eval computes its value against a
// variable environment:
//
//     expr, err := infix.Parse("let x = 3 in x ** 2 + y")
//     if err != nil {
//         // ...
//     }
//     value, err := expr.Eval(infix.Vars{"y": 1}) // 10
//
// Every parse error implements Error and carries the Span of source it
// refers to; FormatError renders the offending line with a caret underline:
//
//     error: expected RPAREN, got eof
//     1 + (2 * 3
//               ^
package infix
