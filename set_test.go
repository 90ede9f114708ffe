package tagspec

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

// discard returns Options with the trace silenced for tests.
func discard() Options {
	return Options{Logger: log.New(io.Discard)}
}

func TestBuildSet_Defaults(t *testing.T) {
	t.Parallel()

	rules, err := BuildSetWith(nil, discard())
	if err != nil {
		t.Fatalf("BuildSet(nil) error: %v", err)
	}

	if len(rules) != 4 {
		t.Fatalf("BuildSet(nil) returned %d rules; want 4", len(rules))
	}

	if rules[0].Kind != KindSchedule {
		t.Fatalf("rules[0].Kind = %v; want schedule", rules[0].Kind)
	}

	// The three ref rules share priority 600 and must keep their
	// branch/tag/pr input order.
	events := []string{"branch", "tag", "pr"}
	for i, want := range events {
		r := rules[i+1]
		if r.Kind != KindRef {
			t.Fatalf("rules[%d].Kind = %v; want ref", i+1, r.Kind)
		}

		if got := r.Attrs["event"]; got != want {
			t.Fatalf("rules[%d] event = %q; want %q", i+1, got, want)
		}

		if got := r.Attrs["priority"]; got != "600" {
			t.Fatalf("rules[%d] priority = %q; want 600", i+1, got)
		}
	}
}

func TestBuildSet_PriorityOrder(t *testing.T) {
	t.Parallel()

	rules, err := BuildSetWith([]string{
		"type=sha",
		"type=raw,value=latest",
		"type=semver,pattern={{version}}",
		"type=schedule",
	}, discard())
	if err != nil {
		t.Fatalf("BuildSet error: %v", err)
	}

	want := []Kind{KindSchedule, KindSemver, KindRaw, KindSha}
	for i, k := range want {
		if rules[i].Kind != k {
			t.Fatalf("rules[%d].Kind = %v; want %v", i, rules[i].Kind, k)
		}
	}
}

func TestBuildSet_ExplicitPriorityWins(t *testing.T) {
	t.Parallel()

	rules, err := BuildSetWith([]string{
		"type=schedule",
		"type=sha,priority=2000",
	}, discard())
	if err != nil {
		t.Fatalf("BuildSet error: %v", err)
	}

	if rules[0].Kind != KindSha {
		t.Fatalf("rules[0].Kind = %v; want sha (priority 2000)", rules[0].Kind)
	}
}

func TestBuildSet_StableOnTies(t *testing.T) {
	t.Parallel()

	rules, err := BuildSetWith([]string{
		"type=raw,value=a,priority=500",
		"type=raw,value=b,priority=500",
		"type=raw,value=c,priority=500",
	}, discard())
	if err != nil {
		t.Fatalf("BuildSet error: %v", err)
	}

	for i, want := range []string{"a", "b", "c"} {
		if got := rules[i].Attrs["value"]; got != want {
			t.Fatalf("rules[%d] value = %q; want %q", i, got, want)
		}
	}
}

func TestBuildSet_FailFast(t *testing.T) {
	t.Parallel()

	rules, err := BuildSetWith([]string{
		"type=schedule",
		"type=ref,event=bogus",
		"type=sha",
	}, discard())
	if err == nil {
		t.Fatalf("BuildSet = %v; want error", rules)
	}

	if rules != nil {
		t.Fatalf("BuildSet returned partial result %v with error", rules)
	}

	if !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("error %v; want errors.Is(ErrInvalidValue)", err)
	}

	if err.Error() != "Invalid event for type=ref,event=bogus" {
		t.Fatalf("error message %q; want the failing line's message", err.Error())
	}
}

func TestBuildSet_StrictSemver(t *testing.T) {
	t.Parallel()

	opt := discard()
	opt.StrictSemver = true

	cases := map[string]bool{
		"type=semver,pattern={{version}}":                    true, // empty value
		"type=semver,pattern={{version}},value={{raw}}":      true, // template value
		"type=semver,pattern={{version}},value=1.2.3":        true,
		"type=semver,pattern={{version}},value=v2.0":         true, // shorthand ok
		"type=semver,pattern={{version}},value=not-a-semver": false,
	}

	for line, ok := range cases {
		_, err := BuildSetWith([]string{line}, opt)
		if ok && err != nil {
			t.Fatalf("BuildSet(%q) error: %v", line, err)
		}
		if !ok && err == nil {
			t.Fatalf("BuildSet(%q) succeeded; want strict semver error", line)
		}
	}

	// Without StrictSemver the same line passes.
	if _, err := BuildSetWith([]string{"type=semver,pattern=x,value=not-a-semver"}, discard()); err != nil {
		t.Fatalf("non-strict BuildSet error: %v", err)
	}
}

func TestBuildSet_Trace(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	logger := log.New(&buf)

	rules, err := BuildSetWith([]string{"type=sha", "type=schedule"}, Options{Logger: logger})
	if err != nil {
		t.Fatalf("BuildSet error: %v", err)
	}

	out := buf.String()
	for _, r := range rules {
		if !strings.Contains(out, r.String()) {
			t.Fatalf("trace %q missing rule line %q", out, r.String())
		}
	}

	if !strings.Contains(out, "Processing tags input") {
		t.Fatalf("trace %q missing default section name", out)
	}

	// Schedule (1000) must be traced before sha (100).
	if strings.Index(out, "type=schedule") > strings.Index(out, "type=sha") {
		t.Fatalf("trace not in priority order: %q", out)
	}
}

func TestDefaultSpecs(t *testing.T) {
	t.Parallel()

	want := []string{
		"type=schedule",
		"type=ref,event=branch",
		"type=ref,event=tag",
		"type=ref,event=pr",
	}

	got := DefaultSpecs()
	if len(got) != len(want) {
		t.Fatalf("DefaultSpecs() = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("DefaultSpecs()[%d] = %q; want %q", i, got[i], want[i])
		}
	}
}
