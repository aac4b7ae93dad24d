package storage

import (
	"regexp"
	"strings"
)

const maxReportedStatementLength = 256

var statementWhitespaceRegex = regexp.MustCompile(`\s+`)

// compactStatement collapses whitespace and truncates a statement so
// it can ride along in error messages and spans without flooding logs.
func compactStatement(statement string) string {
	statement = strings.TrimSpace(statement)
	if statement == "" {
		return statement
	}

	normalized := statementWhitespaceRegex.ReplaceAllString(statement, " ")
	if len(normalized) <= maxReportedStatementLength {
		return normalized
	}

	return normalized[:maxReportedStatementLength] + "..."
}
