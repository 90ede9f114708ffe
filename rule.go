package tagspec

import (
	"sort"
	"strconv"
	"strings"
)

// Kind is the rule category governing which attributes are valid and required.
type Kind int

const (
	// KindSchedule generates tags on a schedule (e.g. nightly builds).
	KindSchedule Kind = iota
	// KindSemver derives tags from a SemVer pattern template.
	KindSemver
	// KindMatch extracts a tag via a regular expression group.
	KindMatch
	// KindEdge tracks the tip of a branch.
	KindEdge
	// KindRef derives tags from the triggering ref event (branch/tag/pr).
	KindRef
	// KindRaw is a literal tag value.
	KindRaw
	// KindSha derives tags from the commit hash.
	KindSha
)

// String returns the exact spelling used by the type attribute.
func (k Kind) String() string {
	switch k {
	case KindSchedule:
		return "schedule"
	case KindSemver:
		return "semver"
	case KindMatch:
		return "match"
	case KindEdge:
		return "edge"
	case KindRef:
		return "ref"
	case KindSha:
		return "sha"
	default:
		return "raw"
	}
}

// kindOf maps a type attribute value to its Kind. Matching is exact and
// case-sensitive: "Semver" is not a valid type.
func kindOf(s string) (Kind, bool) {
	switch s {
	case "schedule":
		return KindSchedule, true
	case "semver":
		return KindSemver, true
	case "match":
		return KindMatch, true
	case "edge":
		return KindEdge, true
	case "ref":
		return KindRef, true
	case "raw":
		return KindRaw, true
	case "sha":
		return KindSha, true
	}

	return KindRaw, false
}

// ParseKind maps free-form tokens to Kind.
// Unlike the type attribute in specification lines (exact, case-sensitive),
// this accepts case-insensitive aliases; intended for CLI flags.
// Supported aliases:
//
//	schedule: "schedule","cron","nightly"
//	semver:   "semver","version","ver"
//	match:    "match","regex","regexp"
//	edge:     "edge"
//	ref:      "ref","reference"
//	raw:      "raw","literal"
//	sha:      "sha","commit","hash"
func ParseKind(s string) (Kind, bool) {
	switch toTok(s) {
	case "schedule", "cron", "nightly":
		return KindSchedule, true

	case "semver", "version", "ver":
		return KindSemver, true

	case "match", "regex", "regexp":
		return KindMatch, true

	case "edge":
		return KindEdge, true

	case "ref", "reference":
		return KindRef, true

	case "raw", "literal":
		return KindRaw, true

	case "sha", "commit", "hash":
		return KindSha, true

	default:
		return KindRaw, false
	}
}

// Reserved and kind-specific attribute names.
const (
	attrValue    = "value"
	attrEnable   = "enable"
	attrPriority = "priority"
	attrPattern  = "pattern"
	attrGroup    = "group"
	attrBranch   = "branch"
	attrEvent    = "event"
	attrPrefix   = "prefix"
	attrFormat   = "format"
)

// defaultPriority is assigned when a specification omits priority.
// Higher values sort first in BuildSet output.
var defaultPriority = map[Kind]string{
	KindSchedule: "1000",
	KindSemver:   "900",
	KindMatch:    "800",
	KindEdge:     "700",
	KindRef:      "600",
	KindRaw:      "200",
	KindSha:      "100",
}

// Rule is one parsed tag specification: a kind plus its attribute map.
// After Parse returns, "enable" and "priority" are always present and all
// kind-mandatory attributes are guaranteed to exist. Rules are not mutated
// after construction.
type Rule struct {
	// Attrs maps lowercase attribute names to values. Unrecognized keys
	// from the input line are kept verbatim.
	Attrs map[string]string

	// Kind is the rule category.
	Kind Kind
}

// String renders the rule as a specification line: "type=<kind>,k=v,...".
// The type field comes first; remaining attributes are listed in sorted key
// order so output is deterministic. Consumers must not rely on a particular
// attribute order.
func (r Rule) String() string {
	keys := make([]string, 0, len(r.Attrs))
	for k := range r.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("type=")
	b.WriteString(r.Kind.String())

	for _, k := range keys {
		b.WriteByte(',')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(r.Attrs[k])
	}

	return b.String()
}

// Enabled reports whether the rule's enable attribute is "true".
func (r Rule) Enabled() bool {
	return r.Attrs[attrEnable] == "true"
}

// Priority returns the numeric ordering key. Parse guarantees the attribute
// is present and numeric.
func (r Rule) Priority() int {
	n, _ := strconv.Atoi(r.Attrs[attrPriority])
	return n
}
