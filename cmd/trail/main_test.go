package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BrandonKowalski/trail/pkg/trail/config"
)

const routes = `
[[route]]
pattern = "app://home"
screen = "stack:home"

[[route]]
pattern = "app://games/:id"
screen = "detail"
style = "push(animated)"

[[route]]
pattern = "app://settings"
screen = "settings"
style = "present(animated)"
`

func newTestSession(t *testing.T, out *bytes.Buffer) *session {
	t.Helper()
	msgs, err := newMessages("en")
	if err != nil {
		t.Fatal(err)
	}
	file, err := config.Decode([]byte(routes), config.TOML)
	if err != nil {
		t.Fatal(err)
	}
	s, err := newSession(out, msgs, file, true)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func assertLines(t *testing.T, out string, want ...string) {
	t.Helper()
	rest := out
	for _, w := range want {
		i := strings.Index(rest, w)
		if i < 0 {
			t.Fatalf("output missing %q (in order) in:\n%s", w, out)
		}
		rest = rest[i+len(w):]
	}
}

func TestReplay(t *testing.T) {
	var out bytes.Buffer
	s := newTestSession(t, &out)

	script := `
# start on the home stack
open app://home
open app://games/7
open app://settings
back
back-to app://home
print
open app://nowhere
`
	if err := s.run(strings.NewReader(script)); err != nil {
		t.Fatal(err)
	}

	assertLines(t, out.String(),
		"opened app://home",
		"opened app://games/7",
		"opened app://settings",
		"dismissing settings toward app://games/:id",
		"resumed detail from app://settings",
		"back: unwinding",
		"dismissing detail toward app://home",
		"resumed home from app://games/:id",
		"back: unwinding",
		"History",
		"1. app://home",
		"Window",
		"stack nav(home)",
		"* home",
		"no route matches app://nowhere",
	)
}

func TestReplayWithoutAutoFlush(t *testing.T) {
	var out bytes.Buffer
	s := newTestSession(t, &out)
	s.autoFlush = false

	script := "open app://home\nopen app://games/1\nflush\nback\nback\n"
	if err := s.run(strings.NewReader(script)); err != nil {
		t.Fatal(err)
	}

	assertLines(t, out.String(),
		"opened app://home",
		"opening app://games/1 (waiting for animations)",
		"1 animation finished",
		"dismissing detail toward app://home",
		"back: unwinding",
		"back: busy",
	)
}

func TestReplayDestroy(t *testing.T) {
	var out bytes.Buffer
	s := newTestSession(t, &out)

	script := "open app://home\nopen app://games/1\nopen app://settings\ndestroy settings\ndestroy settings\nback\n"
	if err := s.run(strings.NewReader(script)); err != nil {
		t.Fatal(err)
	}

	assertLines(t, out.String(),
		"destroyed settings",
		"no surface named settings",
		"dismissing detail toward app://home",
		"back: unwinding",
	)
	if got := s.nav.History().Routes(); len(got) != 1 || got[0] != "app://home" {
		t.Fatalf("history = %v", got)
	}
}

func TestReplayErrors(t *testing.T) {
	for script, want := range map[string]string{
		"jump app://home": "line 1: unknown command jump",
		"\n\nopen":        "line 3: open needs an argument",
	} {
		var out bytes.Buffer
		err := newTestSession(t, &out).run(strings.NewReader(script))
		if err == nil || err.Error() != want {
			t.Errorf("run(%q) = %v, want %q", script, err, want)
		}
	}
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "routes.toml")
	if err := os.WriteFile(path, []byte(routes), 0o644); err != nil {
		t.Fatal(err)
	}
	msgs, err := newMessages("")
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := runCheck(&out, msgs, path); err != nil {
		t.Fatal(err)
	}
	assertLines(t, out.String(), "3 routes are valid", "app://home", "app://games/:id", "app://settings")

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("route:\n  - pattern: app://x\n    screen: x\n    style: sideways\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := runCheck(&out, msgs, bad); err == nil {
		t.Fatal("bad style passed the check")
	}
}

func TestLangFromArgs(t *testing.T) {
	t.Setenv("TRAIL_LANG", "")
	for _, test := range []struct {
		args []string
		want string
	}{
		{[]string{"check", "--lang", "de", "r.toml"}, "de"},
		{[]string{"--lang=fr", "replay"}, "fr"},
		{[]string{"check", "r.toml"}, ""},
	} {
		if got := langFromArgs(test.args); got != test.want {
			t.Errorf("langFromArgs(%v) = %q, want %q", test.args, got, test.want)
		}
	}
}
