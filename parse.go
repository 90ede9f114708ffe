package tagspec

import (
	"strconv"
	"strings"
)

// Parse converts one textual tag specification into a fully defaulted Rule.
//
// The line is split on top-level commas (double quotes keep commas inside a
// field, empty fields are dropped). A field without "=" is the positional
// value and lands under the "value" attribute; otherwise the part before the
// first "=" is the lowercased key. The special key "type" selects the Kind
// (exact, case-sensitive spelling); a line without it is a raw rule.
//
// Once all fields are collected, kind-specific defaults and validation run,
// then the universal ones: enable defaults to "true" and priority to the
// per-kind table. Parse never returns a partial rule: any failure yields a
// descriptive error that unwraps to one of the package sentinels.
func Parse(line string) (Rule, error) {
	rule := Rule{Kind: KindRaw, Attrs: map[string]string{}}

	for _, field := range splitFields(line) {
		key, val, found := strings.Cut(field, "=")
		if !found {
			// positional value, last one wins
			rule.Attrs[attrValue] = unquote(field)
			continue
		}

		key = strings.ToLower(strings.TrimSpace(key))
		val = unquote(strings.TrimSpace(val))

		if key == "type" {
			k, ok := kindOf(val)
			if !ok {
				return Rule{}, errUnknownType(val)
			}

			rule.Kind = k
			continue
		}

		rule.Attrs[key] = val
	}

	if err := applyKindRules(&rule, line); err != nil {
		return Rule{}, err
	}

	if v, ok := rule.Attrs[attrEnable]; ok {
		if v != "true" && v != "false" {
			return Rule{}, errInvalidEnable(v)
		}
	} else {
		rule.Attrs[attrEnable] = "true"
	}

	if v, ok := rule.Attrs[attrPriority]; ok {
		if !isUint(v) {
			return Rule{}, errInvalid("priority attribute", line)
		}
	} else {
		rule.Attrs[attrPriority] = defaultPriority[rule.Kind]
	}

	return rule, nil
}

// applyKindRules runs the per-kind defaulting and validation table.
// line is the original input, used verbatim in error messages.
func applyKindRules(rule *Rule, line string) error {
	switch rule.Kind {
	case KindSchedule:
		setDefault(rule.Attrs, attrPattern, "nightly")

	case KindSemver:
		if _, ok := rule.Attrs[attrPattern]; !ok {
			return errMissing(attrPattern, line)
		}
		setDefault(rule.Attrs, attrValue, "")

	case KindMatch:
		if _, ok := rule.Attrs[attrPattern]; !ok {
			return errMissing(attrPattern, line)
		}

		setDefault(rule.Attrs, attrGroup, "0")
		setDefault(rule.Attrs, attrValue, "")

		if _, err := strconv.Atoi(rule.Attrs[attrGroup]); err != nil {
			return errInvalid("match group", line)
		}

	case KindEdge:
		setDefault(rule.Attrs, attrBranch, "")

	case KindRef:
		event, ok := rule.Attrs[attrEvent]
		if !ok {
			return errMissing(attrEvent, line)
		}

		switch event {
		case "branch", "tag":
		case "pr":
			setDefault(rule.Attrs, attrPrefix, "pr-")
		default:
			return errInvalid("event", line)
		}

	case KindRaw:
		if _, ok := rule.Attrs[attrValue]; !ok {
			return errMissing(attrValue, line)
		}

	case KindSha:
		setDefault(rule.Attrs, attrPrefix, "sha-")
		setDefault(rule.Attrs, attrFormat, "short")

		switch rule.Attrs[attrFormat] {
		case "short", "long":
		default:
			return errInvalid("format", line)
		}
	}

	return nil
}

// setDefault stores val under key unless the key is already present.
func setDefault(attrs map[string]string, key, val string) {
	if _, ok := attrs[key]; !ok {
		attrs[key] = val
	}
}
