// Package token defines flat lexical tokens and trivia for the c0nst lexer.
// Invariants:
//   - Token.Text is exactly the source slice covered by Token.Span.
//   - Punctuation is always a single character; multi-character operators
//     (`::`, `->`, `=>`) are sequences of Punct tokens with Spacing == Joint
//     on every token except the last.
//   - A lifetime `'a` is lexed as Punct('\'', Joint) followed by Ident.
//   - Comments are Trivia. Doc comments (/// and //!) are kept as TriviaDocLine
//     and turned into `#[doc = "..."]` attributes by the token-tree builder.
package token
