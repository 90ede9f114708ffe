package tagspec

import sv "github.com/woozymasta/semver"

// lintSemverValue rejects a literal value on a semver rule that cannot parse
// as SemVer (leading "v" and X / X.Y shorthand are accepted). Empty and
// template values pass through untouched.
func lintSemverValue(r Rule, line string) error {
	if r.Kind != KindSemver {
		return nil
	}

	val := r.Attrs[attrValue]
	if val == "" || isTemplated(val) {
		return nil
	}

	if v, ok := sv.Parse(val); !ok || !v.IsValid() {
		return errInvalid("semver value", line)
	}

	return nil
}
