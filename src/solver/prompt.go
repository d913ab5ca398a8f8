package solver

import (
	"fmt"
	"strings"
	"time"
)

// now is stubbed in tests; the timestamp it feeds into prompts is a freshness
// nonce to defeat vendor-side response caching, not a semantic input.
var now = time.Now

const systemPrompt = "You are an expert problem-solving assistant. You analyze problems rigorously and respond in exactly the format requested."

// SolutionPrompt renders the solution-generation template. Optional context
// blocks are omitted entirely when empty rather than sent as blank sections.
func SolutionPrompt(p Problem) string {
	var b strings.Builder
	b.WriteString("Generate 5 distinct, practical solutions for the following problem.\n\n")
	writeProblem(&b, p)
	b.WriteString("\nRespond with a JSON array of 5 objects, each with keys \"title\", \"description\" (one line), \"content\" (2-4 sentences) and \"icon\" (a Font Awesome class such as \"fas fa-lightbulb\").\n")
	fmt.Fprintf(&b, "\nGeneration timestamp: %d\n", now().UnixMilli())
	return b.String()
}

// ReframingPrompt renders the reframing template: one statement per fixed
// cognitive technique, in order.
func ReframingPrompt(p Problem) string {
	var b strings.Builder
	b.WriteString("Reframe the following problem using three cognitive techniques, in this order: ")
	b.WriteString(strings.Join(Techniques, ", "))
	b.WriteString(".\n\n")
	writeProblem(&b, p)
	b.WriteString("\nRespond with a JSON array of exactly 3 strings, one reframed problem statement per technique, in the order given.\n")
	fmt.Fprintf(&b, "\nGeneration timestamp: %d\n", now().UnixMilli())
	return b.String()
}

var enhancementInstructions = map[string]string{
	CategoryElaborate:   "Elaborate on this solution in more depth: explain how it works and what makes it effective.",
	CategoryExamples:    "Give 2-3 concrete real-world examples of this solution applied successfully.",
	CategoryActionSteps: "Break this solution down into a numbered sequence of actionable implementation steps.",
	CategoryMetrics:     "Propose measurable success metrics and how to track them for this solution.",
}

// EnhancementPrompt renders the enhancement template for one of the four
// fixed categories. Unknown categories get a generic elaboration request.
func EnhancementPrompt(p Problem, s Solution, category string) string {
	instruction, ok := enhancementInstructions[category]
	if !ok {
		instruction = "Expand on this solution with additional useful detail."
	}
	var b strings.Builder
	writeProblem(&b, p)
	fmt.Fprintf(&b, "\nSolution: %s\n%s\n", strings.TrimSpace(s.Title), strings.TrimSpace(s.Content))
	b.WriteString("\n" + instruction + "\n")
	return b.String()
}

// CustomPrompt renders a free-form follow-up question about the problem.
func CustomPrompt(p Problem, question string) string {
	var b strings.Builder
	writeProblem(&b, p)
	fmt.Fprintf(&b, "\nQuestion: %s\n", strings.TrimSpace(question))
	return b.String()
}

func writeProblem(b *strings.Builder, p Problem) {
	fmt.Fprintf(b, "Problem: %s\n", strings.TrimSpace(p.Description))
	if d := strings.TrimSpace(p.Domain); d != "" {
		fmt.Fprintf(b, "Domain: %s\n", d)
	}
	if p.Complexity > 0 {
		fmt.Fprintf(b, "Complexity: %d/5\n", p.Complexity)
	}
	if ctx := strings.TrimSpace(p.Context); ctx != "" {
		fmt.Fprintf(b, "Context: %s\n", ctx)
	}
	if s := strings.TrimSpace(p.Stakeholders); s != "" {
		fmt.Fprintf(b, "Stakeholders: %s\n", s)
	}
	if rc := strings.TrimSpace(p.RootCauses); rc != "" {
		fmt.Fprintf(b, "Root causes: %s\n", rc)
	}
	if imp := strings.TrimSpace(p.Impact); imp != "" {
		fmt.Fprintf(b, "Impact if unsolved: %s\n", imp)
	}
}
