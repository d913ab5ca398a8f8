package solver

import (
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// categoryStyle is the presentation triple (background, accent, text color)
// plus icon for one enhancement category.
type categoryStyle struct {
	Background string
	Accent     string
	Text       string
	Icon       string
}

var categoryStyles = map[string]categoryStyle{
	CategoryElaborate:   {"#e8f0fe", "#1a73e8", "#174ea6", "fas fa-expand-alt"},
	CategoryExamples:    {"#e6f4ea", "#34a853", "#0d652d", "fas fa-list-ul"},
	CategoryActionSteps: {"#fef7e0", "#f9ab00", "#b06000", "fas fa-tasks"},
	CategoryMetrics:     {"#f3e8fd", "#a142f4", "#681da8", "fas fa-chart-line"},
}

// Unknown categories render neutral gray.
var defaultStyle = categoryStyle{"#f8f9fa", "#adb5bd", "#495057", "fas fa-info-circle"}

// textPolicy strips every tag from vendor output; model replies are untrusted
// and only their text survives into our markup.
var textPolicy = bluemonday.StrictPolicy()

// FormatEnhancement wraps vendor text in the styled container for its
// category: double newlines become paragraphs, single newlines line breaks.
func FormatEnhancement(category, text string) string {
	style, ok := categoryStyles[category]
	if !ok {
		style = defaultStyle
	}

	clean := strings.TrimSpace(textPolicy.Sanitize(text))
	var body strings.Builder
	for _, para := range strings.Split(clean, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		body.WriteString("<p>")
		body.WriteString(strings.ReplaceAll(para, "\n", "<br>"))
		body.WriteString("</p>")
	}

	return fmt.Sprintf(
		`<div class="enhancement" style="background:%s;border-left:4px solid %s;color:%s;padding:12px 16px;border-radius:6px;"><i class="%s"></i> <strong>%s</strong>%s</div>`,
		style.Background, style.Accent, style.Text, style.Icon, category, body.String(),
	)
}
