// Package pattern filters file paths with regular expressions.
//
// Patterns compile with coregex (an accelerated RE2-compatible engine) unless
// they use PCRE-only constructs such as lookarounds, backreferences or atomic
// groups, in which case [regexp2] is used instead.
package pattern
