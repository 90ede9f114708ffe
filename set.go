package tagspec

// DefaultSpecs returns the built-in specification lines used when the caller
// provides none: a nightly schedule plus branch, tag and pr ref rules.
func DefaultSpecs() []string {
	return []string{
		"type=schedule",
		"type=ref,event=branch",
		"type=ref,event=tag",
		"type=ref,event=pr",
	}
}

// BuildSet parses every specification line and returns the rules ordered by
// descending priority. Empty input falls back to DefaultSpecs. The first
// malformed line aborts the whole build; no partial result is returned.
// Equivalent to BuildSetWith(lines, Options{}).
func BuildSet(lines []string) ([]Rule, error) {
	return BuildSetWith(lines, Options{})
}

// BuildSetWith is BuildSet with explicit Options.
// Simple, readable pipeline:
//  1. substitute DefaultSpecs when no lines are given
//  2. parse every line, failing fast on the first bad one
//  3. stable sort by descending priority (equal priorities keep input order)
//  4. trace the final set, one line per rule, under the trace section
func BuildSetWith(lines []string, opt Options) ([]Rule, error) {
	opt = opt.normalized()

	if len(lines) == 0 {
		lines = DefaultSpecs()
	}

	rules := make([]Rule, 0, len(lines))
	for _, line := range lines {
		r, err := Parse(line)
		if err != nil {
			return nil, err
		}

		if opt.StrictSemver {
			if err := lintSemverValue(r, line); err != nil {
				return nil, err
			}
		}

		rules = append(rules, r)
	}

	sortRules(rules)

	trace := opt.Logger.WithPrefix(opt.TraceSection)
	for _, r := range rules {
		trace.Info(r.String())
	}

	return rules, nil
}
