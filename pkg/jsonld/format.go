package jsonld

import "strings"

// FormatIssues renders one "- (<code>) <path>: <message>" line per issue.
func FormatIssues(issues []Issue) string {
	if len(issues) == 0 {
		return "No validation issues."
	}
	lines := make([]string, len(issues))
	for i, issue := range issues {
		lines[i] = "- (" + string(issue.Code) + ") " + issue.Path + ": " + issue.Message
	}
	return strings.Join(lines, "\n")
}
