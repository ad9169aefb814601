package pattern

import (
	"fmt"
	"strings"

	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"
)

// Regexp is a compiled expression backed by either coregex or regexp2.
type Regexp struct {
	pattern string
	core    *coregex.Regex
	pcre    *regexp2.Regexp
}

// Compile parses pattern, selecting the engine from the features it uses.
func Compile(pattern string) (*Regexp, error) {
	if needsPCRE(pattern) {
		re, err := regexp2.Compile(pattern, regexp2.None)
		if err != nil {
			return nil, err
		}
		return &Regexp{pattern: pattern, pcre: re}, nil
	}

	re, err := coregex.Compile(pattern)
	if err != nil {
		return nil, err
	}

	return &Regexp{pattern: pattern, core: re}, nil
}

// String returns the source pattern.
func (r *Regexp) String() string { return r.pattern }

// MatchString reports whether s contains any match of r.
func (r *Regexp) MatchString(s string) bool {
	if r.core != nil {
		return r.core.MatchString(s)
	}

	matched, err := r.pcre.MatchString(s)
	return err == nil && matched
}

// Filter selects paths that match at least one include pattern (or any path
// when there are none) and no exclude pattern.
type Filter struct {
	include []*Regexp
	exclude []*Regexp
}

// NewFilter compiles include and exclude patterns.
func NewFilter(include, exclude []string) (*Filter, error) {
	f := &Filter{}
	for _, p := range include {
		re, err := Compile(p)
		if err != nil {
			return nil, fmt.Errorf("include pattern %q: %w", p, err)
		}
		f.include = append(f.include, re)
	}
	for _, p := range exclude {
		re, err := Compile(p)
		if err != nil {
			return nil, fmt.Errorf("exclude pattern %q: %w", p, err)
		}
		f.exclude = append(f.exclude, re)
	}

	return f, nil
}

// Match reports whether path passes the filter. A nil Filter matches
// everything.
func (f *Filter) Match(path string) bool {
	if f == nil {
		return true
	}

	for _, re := range f.exclude {
		if re.MatchString(path) {
			return false
		}
	}
	if len(f.include) == 0 {
		return true
	}
	for _, re := range f.include {
		if re.MatchString(path) {
			return true
		}
	}

	return false
}

// needsPCRE reports whether pattern uses constructs RE2 cannot execute.
func needsPCRE(pattern string) bool {
	tokens := []string{
		// Lookarounds
		"(?=", "(?!", "(?<=", "(?<!",
		// Atomic, branch reset, conditional and comment groups
		"(?>", "(?|", "(?(", "(?#",
		// Recursion
		"(?R)", "(?&",
		// Possessive quantifiers
		"*+", "++", "?+", "}+",
	}
	for _, tok := range tokens {
		if strings.Contains(pattern, tok) {
			return true
		}
	}

	return hasBackreference(pattern)
}

// hasBackreference reports whether pattern contains \1..\9 or \k<name>.
func hasBackreference(pattern string) bool {
	for i := 0; i+1 < len(pattern); i++ {
		if pattern[i] != '\\' {
			continue
		}
		next := pattern[i+1]
		if next >= '1' && next <= '9' || next == 'k' {
			return true
		}
		i++
	}

	return false
}
