package a11yk

// Category of an accessibility finding
type Category int8

const (
	// CatTitle page <title> findings
	CatTitle Category = iota + 1
	// CatHeadings heading structure findings
	CatHeadings
	// CatImages image text alternative findings
	CatImages
	// CatLinks link purpose findings
	CatLinks
	// CatForms form labelling findings
	CatForms
)

// Categories in the order checks run
var Categories = []Category{CatTitle, CatHeadings, CatImages, CatLinks, CatForms}

// CategoryTypeMap category -> display name
var CategoryTypeMap = map[Category]string{
	CatTitle:    "Title",
	CatHeadings: "Headings",
	CatImages:   "Images",
	CatLinks:    "Links",
	CatForms:    "Forms",
}

func (c Category) String() string {
	if name, ok := CategoryTypeMap[c]; ok {
		return name
	}
	return "Unknown"
}

// Confidence of a heuristic finding
type Confidence int8

const (
	// HighConfidence the markup is very likely a problem
	HighConfidence Confidence = iota + 1
	// LowConfidence needs a human to confirm (e.g. intentionally decorative images)
	LowConfidence
)

func (c Confidence) String() string {
	if c == LowConfidence {
		return "low"
	}
	return "high"
}

// Finding is a single detected issue. Fields are only set through NewFinding
// and the With* copies, so a Finding handed to a reporter never changes.
type Finding struct {
	checkID        string
	category       Category
	issue          string
	recommendation string
	wcag           string
	locator        string
	confidence     Confidence
}

// NewFinding creates a high confidence finding. Empty issue or recommendation
// text is replaced with a placeholder so rendered rows are never blank.
func NewFinding(checkID string, category Category, issue, recommendation, wcag string) *Finding {
	if issue == "" {
		issue = "unspecified issue"
	}
	if recommendation == "" {
		recommendation = "review manually"
	}
	if category == 0 {
		category = CatTitle
	}
	return &Finding{
		checkID:        checkID,
		category:       category,
		issue:          issue,
		recommendation: recommendation,
		wcag:           wcag,
		confidence:     HighConfidence,
	}
}

// WithLocator returns a copy pointing at the offending element
func (f *Finding) WithLocator(locator string) *Finding {
	cp := *f
	cp.locator = locator
	return &cp
}

// WithConfidence returns a copy with the confidence changed
func (f *Finding) WithConfidence(confidence Confidence) *Finding {
	cp := *f
	cp.confidence = confidence
	return &cp
}

// CheckID of the check that produced this finding
func (f *Finding) CheckID() string { return f.checkID }

// Category of the finding
func (f *Finding) Category() Category { return f.category }

// Issue text
func (f *Finding) Issue() string { return f.issue }

// Recommendation text
func (f *Finding) Recommendation() string { return f.recommendation }

// WCAG success criterion reference, empty if there is no clean mapping
func (f *Finding) WCAG() string { return f.wcag }

// Locator human readable pointer to the element, may be empty
func (f *Finding) Locator() string { return f.locator }

// Confidence of the finding
func (f *Finding) Confidence() Confidence { return f.confidence }

// CountByCategory tallies findings for summaries
func CountByCategory(findings []*Finding) map[Category]int {
	counts := make(map[Category]int, len(Categories))
	for _, f := range findings {
		counts[f.category]++
	}
	return counts
}
