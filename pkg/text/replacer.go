package text

import (
	"bytes"
	"context"
	"io"
	"regexp"

	"gitlab.com/tozd/go/errors"
)

// ReplacementResult contains the results of a text replacement operation
type ReplacementResult struct {
	// WasModified indicates if any replacements were made
	WasModified bool

	// ReplacementCount is the number of pattern matches replaced
	ReplacementCount int

	// OriginalContent is the content before replacements (sanitized to
	// valid UTF-8)
	OriginalContent []byte

	// ModifiedContent is the content after replacements
	ModifiedContent []byte
}

// TextReplacer defines the interface for text replacement operations
type TextReplacer interface {
	// ReplaceText applies a set of replacement rules to the content
	// Returns a ReplacementResult containing the modified content and metadata
	ReplaceText(ctx context.Context, content io.Reader, rules []ReplacementRule) (*ReplacementResult, error)

	// ValidateRules checks that all rules are valid
	ValidateRules(rules []ReplacementRule) error
}

// RegexReplacer implements TextReplacer using regular expression substitution
type RegexReplacer struct{}

// 🏭 NewRegexReplacer creates a new RegexReplacer
func NewRegexReplacer() *RegexReplacer {
	return &RegexReplacer{}
}

// ReplaceText implements TextReplacer.ReplaceText. Invalid UTF-8 byte
// sequences in the input are dropped rather than failing the run.
func (r *RegexReplacer) ReplaceText(ctx context.Context, content io.Reader, rules []ReplacementRule) (*ReplacementResult, error) {
	raw, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	originalContent := bytes.ToValidUTF8(raw, nil)

	result := &ReplacementResult{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
	}

	// Apply each rule in order against the current text
	currentContent := string(originalContent)
	for _, rule := range rules {
		if rule.Pattern == "" {
			continue
		}

		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return nil, errors.Errorf("compiling rule %q: %w", rule.Name, err)
		}

		matches := len(re.FindAllStringIndex(currentContent, -1))
		newContent := re.ReplaceAllString(currentContent, rule.Replacement)

		if newContent != currentContent {
			result.ReplacementCount += matches
		}

		currentContent = newContent
	}

	result.ModifiedContent = []byte(currentContent)
	result.WasModified = !bytes.Equal(result.ModifiedContent, originalContent)
	return result, nil
}

// ValidateRules implements TextReplacer.ValidateRules
func (r *RegexReplacer) ValidateRules(rules []ReplacementRule) error {
	for i, rule := range rules {
		if rule.Name == "" {
			return errors.Errorf("rule %d: name is required", i)
		}
		if rule.Pattern == "" {
			return errors.Errorf("rule %d (%s): pattern is required", i, rule.Name)
		}
		if _, err := regexp.Compile(rule.Pattern); err != nil {
			return errors.Errorf("rule %d (%s): compiling pattern: %w", i, rule.Name, err)
		}
	}
	return nil
}
