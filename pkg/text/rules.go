package text

// 📋 ReplacementRule is a single ordered pattern → replacement entry.
// Rules are immutable and applied in slice order; each rule scans the
// current (possibly already-modified) text, not the original.
type ReplacementRule struct {
	// Name identifies the rule in logs and validation errors
	Name string

	// Pattern is a Go regular expression to match
	Pattern string

	// Replacement is the replacement template, may reference capture
	// groups from Pattern (e.g. ${1})
	Replacement string
}

// 🎨 DefaultCSSRules returns the built-in repair table for common CSS
// syntax errors. Order is significant.
func DefaultCSSRules() []ReplacementRule {
	return []ReplacementRule{
		{
			// stray `*/` after an @import declaration at end of line
			Name:        "stray_import_comment_close",
			Pattern:     `(?m)(@import .*?;)[ \t]*\*/$`,
			Replacement: `${1}`,
		},
		{
			// broken protocol prefix, second slash mistyped as asterisk
			Name:        "broken_protocol_prefix",
			Pattern:     `http:/\*`,
			Replacement: `http://`,
		},
		{
			// double-closed comment, keep the first marker
			Name:        "double_comment_close",
			Pattern:     `(\*/\s*)\*/`,
			Replacement: `${1}`,
		},
	}
}
