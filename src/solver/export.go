package solver

import (
	"fmt"
	"strings"
)

// Export serializes a session's problem, reframings and solutions into a
// human-readable plain-text document for local download.
func Export(p Problem, reframings []Reframing, solutions []Solution, sess Session) string {
	sess = sess.withDefaults()

	var b strings.Builder
	b.WriteString("PROBLEM SOLVER EXPORT\n")
	b.WriteString(strings.Repeat("=", 40) + "\n")
	fmt.Fprintf(&b, "Generated: %s\n", now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Model: %s\n\n", sess.Model)

	b.WriteString("PROBLEM\n")
	b.WriteString(strings.Repeat("-", 40) + "\n")
	fmt.Fprintf(&b, "Description: %s\n", strings.TrimSpace(p.Description))
	if p.Domain != "" {
		fmt.Fprintf(&b, "Domain: %s\n", p.Domain)
	}
	if p.Complexity > 0 {
		fmt.Fprintf(&b, "Complexity: %d/5\n", p.Complexity)
	}
	if p.Context != "" {
		fmt.Fprintf(&b, "Context: %s\n", p.Context)
	}
	if p.Stakeholders != "" {
		fmt.Fprintf(&b, "Stakeholders: %s\n", p.Stakeholders)
	}
	if p.RootCauses != "" {
		fmt.Fprintf(&b, "Root causes: %s\n", p.RootCauses)
	}
	if p.Impact != "" {
		fmt.Fprintf(&b, "Impact: %s\n", p.Impact)
	}

	if len(reframings) > 0 {
		b.WriteString("\nREFRAMINGS\n")
		b.WriteString(strings.Repeat("-", 40) + "\n")
		for _, r := range reframings {
			fmt.Fprintf(&b, "%s: %s\n", r.Technique, r.Statement)
		}
	}

	if len(solutions) > 0 {
		b.WriteString("\nSOLUTIONS\n")
		b.WriteString(strings.Repeat("-", 40) + "\n")
		for i, s := range solutions {
			fmt.Fprintf(&b, "%d. %s\n", i+1, s.Title)
			if s.Description != "" {
				fmt.Fprintf(&b, "   %s\n", s.Description)
			}
			if s.Content != "" {
				fmt.Fprintf(&b, "   %s\n", s.Content)
			}
		}
	}

	return b.String()
}
