package shared

// LoaderOp identifies an async operation that can show a spinner. The same
// identifier keys the loading label and the feedback that replaces it.
type LoaderOp string

const (
	OpAnalysis LoaderOp = "analysis"
	OpReport   LoaderOp = "report"
	OpVisual   LoaderOp = "visual-report"
	OpHistory  LoaderOp = "history"
	OpExport   LoaderOp = "export"
)
