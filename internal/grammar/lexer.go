// Package grammar defines the TypeQL lexical grammar and the participle
// struct-tag grammar that turns a token stream into a parse tree (C1–C3 of
// the language pipeline). The grammar types in this package are a parse
// tree, not the canonical AST — internal/construct walks them into the
// typed AST in the ast package.
package grammar

import "github.com/alecthomas/participle/v2/lexer"

// typeqlLexer defines the token types of the TypeQL lexical grammar.
// Order matters: earlier rules are tried first at every position, so a
// rule that is a strict prefix of another (DateTime/Date, `isa!`/`isa`)
// must list the longer/more-specific form first.
var typeqlLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "DateTime", Pattern: `[+-]?\d{4,}-\d{2}-\d{2}T\d{2}:\d{2}(:\d{2}(\.\d+)?)?`},
	{Name: "Date", Pattern: `[+-]?\d{4,}-\d{2}-\d{2}`},
	{Name: "Real", Pattern: `[+-]?[0-9]+\.[0-9]+`},
	{Name: "Int", Pattern: `[+-]?[0-9]+`},
	{Name: "String", Pattern: `"([^"\\]|\\.)*"|'([^'\\]|\\.)*'`},
	// Keyword is tried before Ident so reserved words are always emitted as
	// their own token rather than absorbed as an identifier. The `!`
	// variants must precede their bare form since Go's regexp alternation
	// is leftmost-first, not leftmost-longest.
	{Name: "Keyword", Pattern: `\b(sub!|isa!|(match|get|insert|delete|define|undefine|compute|` +
		`sub|abstract|relates|plays|has|key|value|regex|as|when|then|rule|type|isa|id|` +
		`sort|offset|limit|group|asc|desc|` +
		`count|max|min-k|min|mean|median|sum|std|` +
		`path|centrality|cluster|from|to|of|in|using|where|degree|k-core|connected-component|k|size|contains|` +
		`long|double|string|boolean|datetime|` +
		`true|false|like|or|not)\b)`},
	{Name: "ConceptVar", Pattern: `\$(_|[A-Za-z_][A-Za-z0-9_-]*)`},
	{Name: "ValueVar", Pattern: `\?[A-Za-z_][A-Za-z0-9_-]*`},
	{Name: "Comparator", Pattern: `!==|==|<=|>=|<|>|=`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
	{Name: "Punct", Pattern: `[(){}\[\],;:]`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})
