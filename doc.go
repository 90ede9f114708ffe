/*
Package tagspec parses the tag rule specification language used to describe
how output tags (e.g. image tags) are generated from source-control events.

Each specification line declares one rule: a type plus comma-separated
key=value attributes, for example:

	type=semver,pattern={{version}}
	type=ref,event=pr
	type=sha,format=long
	nightly

The package is evaluation-agnostic: it validates, defaults, and orders rule
specifications, and leaves applying them to real commit/branch/event data to
the caller.

Typical flow:

 1. Collect specification lines elsewhere (CLI flags, CI inputs, config file).
 2. Call BuildSet (or BuildSetWith for options) to get the ordered rule set.
 3. Hand the rules to whatever evaluates them into concrete tag strings.

Parsing notes:
  - A line without a type= field is a raw rule; a bare field is its value.
  - Double quotes keep commas inside a field: type=raw,value="a,b".
  - Attribute keys are lowercased; on duplicates the last occurrence wins.
  - Every parsed rule carries enable ("true"/"false") and a numeric priority;
    omitted priorities come from a per-kind default table.
  - BuildSet orders rules by descending priority; equal priorities keep
    their input order.
  - Unrecognized attribute keys are retained verbatim for downstream use.

Usage example:

	rules, err := tagspec.BuildSet([]string{
		"type=semver,pattern={{version}}",
		"type=ref,event=branch",
		"type=sha",
	})
	if err != nil {
		// first malformed line aborts the whole build
	}

	for _, r := range rules {
		fmt.Println(r.String())
	}
*/
package tagspec
