// Package lexer provides lexical analysis for Lattice, the embeddable
// dynamic scripting language.
//
// The lexer is the first stage of the Lattice pipeline, converting raw
// source text into a stream of tokens the parser consumes.
//
// Key Features:
//
// Token Recognition:
//   - Keywords: if, then, else, let, in, with, assert, or, and, not, rec,
//     inherit, async, match
//   - Identifiers: variable and field names
//   - Literals: integers, floats, strings (with escape sequences)
//   - Operators: +, -, *, /, ==, !=, <, >, <=, >=, &&, ||, ->, ++, //, ?, .,
//     .., ..=, |, =>
//   - Delimiters: (, ), {, }, [, ], ;, :, ,, =
//
// Comment Handling:
//   - Single-line comments starting with '#'
//   - Multi-line comments enclosed in /* */
//   - Comments are skipped during tokenization
//
// Position Tracking:
//   - Accurate line and column information for each token
//   - Essential for meaningful error reporting
//   - Handles both Unix (\n) and Windows (\r\n) line endings
//
// String Processing:
//   - Double-quoted strings with escape sequences
//   - Proper handling of escaped quotes, newlines, etc.
//   - Unicode support through Go's UTF-8 handling
//
// Performance Optimizations:
//   - Single-pass tokenization
//   - Minimal token design for memory efficiency
//   - Efficient character-by-character scanning
//
// Error Handling:
//   - Graceful handling of unexpected characters
//   - ILLEGAL tokens for invalid input
//   - Position information preserved for error reporting
//
// The lexer follows the maximal munch principle, consuming the longest
// possible sequence of characters for each token. This ensures correct
// tokenization of multi-character operators like '++', '->', '..=', '=>',
// etc., and of the closure parameter delimiter '|' against the logical-or
// operator '||'.
//
// Usage Example:
//
//	l := lexer.New(`|a, b| a + b`)
//	for {
//	    token := l.NextToken()
//	    if token.Type == lexer.TOKEN_EOF {
//	        break
//	    }
//	    fmt.Printf("%s: %s\n", token.Type, token.Literal)
//	}
package lexer
