// Package parser implements a recursive descent parser with Pratt parsing
// for Lattice, the embeddable dynamic scripting language.
//
// The parser is the second stage of the Lattice pipeline, transforming a
// stream of tokens from the lexer into a well-formed Abstract Syntax Tree
// (AST) that can be evaluated by the evaluator. Every construct, including
// let, if/then/else, and match, is itself an expression and produces a
// value: there is no statement/expression distinction and no top-level
// declaration outside of the single expression a program evaluates to.
//
// Architecture:
//
// The parser uses a combination of recursive descent and Pratt parsing
// techniques:
//   - Recursive descent for control structures and complex expressions
//   - Pratt parsing for operators with proper precedence and associativity
//   - Lookahead parsing for disambiguation of syntax elements
//
// Language Support:
//
// Literals:
//   - Integers: 42, -10, 0
//   - Floats: 3.14, -0.5, 1.0
//   - Strings: "hello", "world with \"quotes\""
//   - Booleans: true, false
//   - Unit: ()
//
// Operators (with precedence, loosest to tightest; see precedence.go):
//  1. -> (implication)
//  2. || (logical or; the "or" keyword is the select default, see below)
//  3. && and (logical and)
//  4. == != (equality)
//  5. < > <= >= (comparison)
//  6. .. ..= (ranges: half-open and inclusive)
//  7. ++ // (vec concatenation, object update)
//  8. + - (addition/subtraction)
//  9. * / (multiplication/division)
//  10. function application (left-associative)
//  11. . [] ? (attribute selection, indexing, has-attribute test)
//
// Arithmetic, comparison, and equality on a Variant value are resolved by
// the evaluator's protocol dispatch rather than the parser or AST: the
// grammar is agnostic to whether an operator ultimately runs a built-in
// numeric rule or a host-registered instance function.
//
// Control Flow:
//   - Conditionals: if condition then value else alternative
//   - Let bindings: let x = 1; y = 2; in x + y, visible in body and in
//     later bindings of the same let
//   - With expressions: with obj; expression, bringing obj's fields into
//     scope for expression
//   - Assertions: assert condition; expression, panicking if condition is
//     false
//   - Pattern match over a Variant's cases: match subject { Circle(r) =>
//     r * 2, Square(s) => s * 4 }, binding each case's payload positionally;
//     arms are comma-separated, with a trailing comma after the last arm
//     accepted but not required
//
// Functions and closures:
//   - Single-argument arrow functions, curried for multiple arguments:
//     x: x + 1, x: y: x + y
//   - Pipe-delimited closures: |x, y| x + y, and the zero-parameter form
//     || body (lexed as a single token so it doesn't collide with the
//     logical-or operator)
//   - async |x| body marks a closure for asynchronous evaluation
//   - Applications: f x (left-associative currying); f(a, b) parses as f
//     applied to the tuple (a, b) — whether a call binds one argument at a
//     time or consumes a tuple in one step is the evaluator's concern, not
//     the parser's
//
// Data Structures:
//   - Vecs: [1, 2, 3]
//   - Tuples: (1, 2, 3); a parenthesized single expression with no comma,
//     (expr), is plain grouping, not a one-element tuple
//   - Objects: { x = 1; y = 2; }
//   - Recursive objects: rec { x = 1; y = x + 1; }, where bindings may
//     refer to sibling fields whose values are literals
//   - inherit name1 name2; and inherit (expr) name1 name2; pull bindings
//     into an object literal from the enclosing scope or from expr
//   - Variants are constructed through the variantTuple/variantStruct/
//     variantUnit builtins rather than dedicated literal syntax, and
//     destructured with match
//
// Object Operations:
//   - Selection: obj.x.y
//   - Existence test: obj ? x
//   - Default values: obj.x or defaultValue
//   - Update: left // right, right's fields overriding left's on collision
//
// Error Handling:
//
// The parser provides comprehensive error reporting:
//   - Syntax error detection with line/column information
//   - Expected token reporting for missing elements
//   - Multiple error collection for better user experience
//   - Structured error types for programmatic handling
//
// Performance Features:
//   - Single-pass parsing with minimal backtracking
//   - Efficient operator precedence resolution
//   - Memory-efficient AST node construction
//   - Early error detection and reporting
//
// Design Principles:
//   - Fail fast: detect errors as early as possible
//   - Informative errors: provide context for debugging
//   - Extensible: easy to add new language constructs
//   - Maintainable: clear separation of parsing concerns
//
// Usage Example:
//
//	l := lexer.New(`let double = |x| x * 2; in double 21`)
//	p := parser.New(l)
//	tree, err := p.Parse()
//	if err != nil {
//	    fmt.Printf("Parse error: %v\n", err)
//	    return
//	}
//	// tree now contains the parsed expression tree
package parser
