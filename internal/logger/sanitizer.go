package logger

import (
	"regexp"
)

// Sanitizer masks user names embedded in home directory paths.
// Input paths are logged verbatim otherwise.
type Sanitizer struct {
	rules []sanitizeRule
}

type sanitizeRule struct {
	pattern     *regexp.Regexp
	replacement string
}

// NewSanitizer 建立預設 sanitizer
func NewSanitizer() *Sanitizer {
	return &Sanitizer{
		rules: []sanitizeRule{
			// Windows 使用者路徑
			{regexp.MustCompile(`(?i)[A-Z]:\\Users\\[^\\]+`), "***:\\Users\\***"},
			// Unix 家目錄
			{regexp.MustCompile(`/home/[^/\s]+`), "/home/***"},
			{regexp.MustCompile(`/Users/[^/\s]+`), "/Users/***"},
		},
	}
}

// Sanitize applies every rule to input
func (s *Sanitizer) Sanitize(input string) string {
	result := input
	for _, rule := range s.rules {
		result = rule.pattern.ReplaceAllString(result, rule.replacement)
	}
	return result
}

// SanitizeArgs sanitizes string and error values in key-value args.
// Keys and other value types pass through unchanged.
func (s *Sanitizer) SanitizeArgs(args []any) []any {
	if len(args) == 0 {
		return args
	}

	result := make([]any, len(args))
	copy(result, args)
	for i := 1; i < len(result); i += 2 {
		switch v := result[i].(type) {
		case string:
			result[i] = s.Sanitize(v)
		case error:
			result[i] = s.Sanitize(v.Error())
		}
	}
	return result
}
