package tagspec

import (
	"strconv"
	"strings"
)

// Flavor controls how "latest" and fixed prefix/suffix decoration is applied
// to generated tags by downstream consumers.
type Flavor struct {
	// Latest is "auto", "true" or "false". Auto lets the evaluator decide
	// (typically: latest on release-like rules only).
	Latest string

	// Prefix is prepended to every generated tag.
	Prefix string

	// Suffix is appended to every generated tag.
	Suffix string

	// PrefixLatest applies Prefix to the latest tag as well.
	PrefixLatest bool

	// SuffixLatest applies Suffix to the latest tag as well.
	SuffixLatest bool
}

// DefaultFlavor returns the flavor used when no specification is given.
func DefaultFlavor() Flavor {
	return Flavor{Latest: "auto"}
}

// ParseFlavor parses flavor specification lines. Lines use the same
// comma/quote tokenization as tag rules, but the key set is closed: every
// field must be key=value with a known key. Later occurrences override
// earlier ones; zero lines yield DefaultFlavor.
func ParseFlavor(lines []string) (Flavor, error) {
	flavor := DefaultFlavor()

	for _, line := range lines {
		for _, field := range splitFields(line) {
			key, val, found := strings.Cut(field, "=")
			if !found {
				return Flavor{}, errFlavor("Invalid flavor entry", field)
			}

			key = strings.ToLower(strings.TrimSpace(key))
			val = unquote(strings.TrimSpace(val))

			switch key {
			case "latest":
				switch val {
				case "auto", "true", "false":
					flavor.Latest = val
				default:
					return Flavor{}, errFlavor("Invalid latest flavor entry", field)
				}

			case "prefix":
				flavor.Prefix = val

			case "prefixlatest":
				flavor.PrefixLatest = strings.EqualFold(val, "true")

			case "suffix":
				flavor.Suffix = val

			case "suffixlatest":
				flavor.SuffixLatest = strings.EqualFold(val, "true")

			default:
				return Flavor{}, errFlavor("Unknown flavor entry", field)
			}
		}
	}

	return flavor, nil
}

// String renders the flavor in specification form.
func (f Flavor) String() string {
	var b strings.Builder

	b.WriteString("latest=")
	b.WriteString(f.Latest)
	b.WriteString(",prefix=")
	b.WriteString(f.Prefix)
	b.WriteString(",prefixlatest=")
	b.WriteString(strconv.FormatBool(f.PrefixLatest))
	b.WriteString(",suffix=")
	b.WriteString(f.Suffix)
	b.WriteString(",suffixlatest=")
	b.WriteString(strconv.FormatBool(f.SuffixLatest))

	return b.String()
}
