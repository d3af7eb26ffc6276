package validate

import (
	"fmt"
	"strings"
)

// RenderReport produces a human-readable markdown summary of a validation
// run, grouped by issue type. An empty issue list renders a clean-bill
// report. The result is plain markdown; utils.ValidateMarkdown can sanity
// check it before handing it to a renderer.
func RenderReport(issues []ValidationIssue, balance *BalanceCheck) string {
	var sb strings.Builder

	sb.WriteString("# Tagging Validation Report\n\n")

	if len(issues) == 0 {
		sb.WriteString("No validation issues found. All mandatory fields are present and every field carries tags.\n")
	} else {
		var missing, untagged []ValidationIssue
		for _, issue := range issues {
			if issue.Type == IssueMissingMandatoryField {
				missing = append(missing, issue)
			} else {
				untagged = append(untagged, issue)
			}
		}

		sb.WriteString(fmt.Sprintf("Found **%d** issue(s).\n\n", len(issues)))

		if len(missing) > 0 {
			sb.WriteString("## Missing Mandatory Fields\n\n")
			for _, issue := range missing {
				sb.WriteString(fmt.Sprintf("- `%s`: %s\n", issue.Field, issue.Message))
			}
			sb.WriteString("\n")
		}

		if len(untagged) > 0 {
			sb.WriteString("## Fields Without Tags\n\n")
			for _, issue := range untagged {
				sb.WriteString(fmt.Sprintf("- `%s/%s`: %s\n", issue.Section, issue.Field, issue.Message))
			}
			sb.WriteString("\n")
		}
	}

	if balance != nil {
		sb.WriteString("## Accounting Equation\n\n")
		status := "BALANCED"
		if !balance.IsBalanced {
			status = "NOT BALANCED"
		}
		sb.WriteString(fmt.Sprintf("Assets %.2f vs Liabilities+Equity %.2f (diff %.2f, tolerance %.2f): **%s**\n",
			balance.TotalAssets, balance.ComputedAssets, balance.Difference, balance.Tolerance, status))
	}

	return sb.String()
}
