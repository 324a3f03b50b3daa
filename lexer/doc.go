// Package lexer splits arithmetic expression source into tokens for infix.
//
// The primary types are Tokenizer, a lazy pull-based producer of Tokens, and
// Span, which records the byte range of every token and error in the source.
// The package also holds the table of binary Operators, which the Tokenizer
// consults to validate operator spellings.
package lexer
