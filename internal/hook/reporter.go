package hook

type ProgressReporter interface {
	Increment(label string)
	Done()
}

// Reporter receives hooklint's own diagnostics. The wrapped tool's output
// never goes through it; that is echoed verbatim at the CLI boundary.
type Reporter interface {
	Info(message string)
	Skip(path string)
	Progress(label string, total int) ProgressReporter
}

type noopReporter struct{}

func (n noopReporter) Info(string)                           {}
func (n noopReporter) Skip(string)                           {}
func (n noopReporter) Progress(string, int) ProgressReporter { return noopProgress{} }

type noopProgress struct{}

func (n noopProgress) Increment(string) {}
func (n noopProgress) Done()            {}

func ensureReporter(reporter Reporter) Reporter {
	if reporter == nil {
		return noopReporter{}
	}
	return reporter
}
