package namespace

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// PatternMode selects how find patterns are interpreted.
type PatternMode string

const (
	// PatternLite treats '*' and '?' as wildcards and every other character literally.
	PatternLite PatternMode = "lite"
	// PatternRegex translates '*' and '?' and passes everything else to the
	// regex engine unescaped.
	PatternRegex PatternMode = "regex"
	// PatternDoublestar uses full glob syntax: classes, alternatives and escapes.
	PatternDoublestar PatternMode = "doublestar"
)

// ParsePatternMode validates a configured mode name. Empty means lite.
func ParsePatternMode(s string) (PatternMode, error) {
	switch PatternMode(strings.ToLower(s)) {
	case "", PatternLite:
		return PatternLite, nil
	case PatternRegex:
		return PatternRegex, nil
	case PatternDoublestar:
		return PatternDoublestar, nil
	default:
		return "", fmt.Errorf("unknown pattern mode: %q", s)
	}
}

// matcher tests an entry name (never a full path).
type matcher func(name string) bool

func compilePattern(pattern string, mode PatternMode) (matcher, error) {
	switch mode {
	case PatternDoublestar:
		if !doublestar.ValidatePattern(pattern) {
			return nil, newError(KindInvalidPattern, pattern)
		}
		return func(name string) bool {
			ok, err := doublestar.Match(pattern, name)
			return err == nil && ok
		}, nil
	case PatternRegex:
		expr := strings.NewReplacer("*", ".*", "?", ".").Replace(pattern)
		return compileAnchored(expr, pattern)
	default:
		return compileAnchored(globToRegex(pattern), pattern)
	}
}

func globToRegex(pattern string) string {
	var b strings.Builder
	for _, r := range pattern {
		switch r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	return b.String()
}

func compileAnchored(expr, pattern string) (matcher, error) {
	re, err := regexp.Compile("^(?s:" + expr + ")$")
	if err != nil {
		return nil, newError(KindInvalidPattern, pattern)
	}
	return re.MatchString, nil
}
