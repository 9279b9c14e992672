package a11yk

// CheckFunc inspects a document and returns zero or more findings. It must not
// modify the document and must not fail.
type CheckFunc func(rules *Rules, doc Document) []*Finding

// Check is one registered heuristic
type Check struct {
	ID       string
	Name     string
	Category Category
	Run      CheckFunc
}
