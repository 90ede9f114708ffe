package tagspec

import (
	"os"

	"github.com/charmbracelet/log"
)

// Options configures set building behavior.
type Options struct {
	// Logger receives the diagnostic trace of the final rule set.
	// When nil, a default stderr logger is used.
	Logger *log.Logger

	// TraceSection names the trace group in the log output.
	// Empty means "Processing tags input".
	TraceSection string

	// StrictSemver additionally requires that a literal (non-template)
	// value on a semver rule parses as SemVer. Template values like
	// {{version}} are resolved downstream and are never checked.
	StrictSemver bool
}

// normalized returns a copy with implicit defaults applied.
func (o Options) normalized() Options {
	out := o

	if out.Logger == nil {
		out.Logger = log.New(os.Stderr)
	}

	if out.TraceSection == "" {
		out.TraceSection = "Processing tags input"
	}

	return out
}
