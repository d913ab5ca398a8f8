package solver

// Problem is the user's submitted problem statement plus optional structured
// context. Immutable once handed to an operation.
type Problem struct {
	Description  string
	Domain       string
	Complexity   int // 1-5
	Context      string
	Stakeholders string
	RootCauses   string
	Impact       string
}

// Solution is one typed record parsed from model output.
type Solution struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Icon        string `json:"icon"`
	IsAI        bool   `json:"isAI"`
}

// Reframing is an alternative framing of the problem produced by one fixed
// cognitive technique. Reframings come in an ordered sequence of three.
type Reframing struct {
	Technique string
	Statement string
}

// Techniques in the order reframings are generated and presented.
var Techniques = []string{"Inversion", "Systems Thinking", "Random Association"}

// Enhancement categories, fixed.
const (
	CategoryElaborate   = "Elaborate"
	CategoryExamples    = "Examples"
	CategoryActionSteps = "Action Steps"
	CategoryMetrics     = "Metrics"
)

// Enhancement is a follow-up elaboration on a solution, rendered as styled
// markup keyed by its category.
type Enhancement struct {
	Category string
	Solution string // solution title
	HTML     string
}

// ParseStatus records how a vendor reply became typed records, so the
// graceful-degradation path is observable instead of silent.
type ParseStatus string

const (
	StatusParsed    ParseStatus = "parsed"    // reply was a clean JSON array
	StatusExtracted ParseStatus = "extracted" // array recovered from surrounding prose
	StatusFallback  ParseStatus = "fallback"  // synthetic record wrapping the raw text
)

// Session holds the request-scoped model configuration. Passed explicitly to
// every operation; nothing here is ambient or shared.
type Session struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

// withDefaults fills zero fields with the session defaults.
func (s Session) withDefaults() Session {
	if s.Model == "" {
		s.Model = "gpt-4o"
	}
	if s.Temperature == 0 {
		s.Temperature = 0.8
	}
	if s.MaxTokens == 0 {
		s.MaxTokens = 2000
	}
	return s
}
