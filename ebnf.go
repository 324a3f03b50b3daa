package infix

// grammar is the expression grammar in the EBNF syntax of
// golang.org/x/exp/ebnf. Lower-case productions are lexical. The grammar
// describes token shapes and structure only; operator precedence and
// associativity come from the lexer's operator table, and the letter and
// digit productions are ASCII approximations: the tokenizer admits any
// Unicode letter or digit in an identifier run.
const grammar = `Expr = Unary { binop Unary } .
Unary = "+" Unary | "-" Unary | Primary .
Primary = number | Call | ident | Group | Let .
Call = ident "(" Expr ")" .
Group = "(" Expr ")" .
Let = "let" ident "=" Expr "in" Expr .

binop = "+" | "-" | "*" | "/" | "%" | "**" .
number = digit { digit } [ "." digit { digit } ] .
ident = letter { letter | digit } .
letter = "a" … "z" | "A" … "Z" .
digit = "0" … "9" .
`

// EBNF returns the grammar for the expression language, in the syntax
// accepted by golang.org/x/exp/ebnf.
func EBNF() string {
	return grammar
}
