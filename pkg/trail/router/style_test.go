package router_test

import (
	"testing"

	"github.com/BrandonKowalski/trail/pkg/trail/router"
	"github.com/BrandonKowalski/trail/pkg/trail/surface"
)

var styleTests = []struct {
	text  string
	style router.Style
}{
	{"show", router.Show()},
	{"show-detail", router.ShowDetail()},
	{"present", router.Present(false)},
	{"present(animated)", router.Present(true)},
	{"push", router.Push(false)},
	{"push(animated)", router.Push(true)},
	{"replace-root", router.ReplaceRoot()},
	{"in-navigation(present(animated))", router.InNavigation(router.Present(true))},
	{"in-navigation(in-navigation(push))", router.InNavigation(router.InNavigation(router.Push(false)))},
}

func TestStyleText(t *testing.T) {
	for _, test := range styleTests {
		if got := test.style.String(); got != test.text {
			t.Errorf("String() = %q, want %q", got, test.text)
		}

		parsed, err := router.ParseStyle(test.text)
		if err != nil {
			t.Errorf("ParseStyle(%q): %v", test.text, err)
			continue
		}
		if parsed.String() != test.text {
			t.Errorf("ParseStyle(%q) = %s", test.text, parsed)
		}
	}
}

func TestParseStyleLenient(t *testing.T) {
	for text, want := range map[string]string{
		"":                               "show",
		"  Push(Animated) ":              "push(animated)",
		"in-navigation( push(animated))": "in-navigation(push(animated))",
	} {
		got, err := router.ParseStyle(text)
		if err != nil {
			t.Errorf("ParseStyle(%q): %v", text, err)
			continue
		}
		if got.String() != want {
			t.Errorf("ParseStyle(%q) = %s, want %s", text, got, want)
		}
	}
}

func TestParseStyleErrors(t *testing.T) {
	for _, text := range []string{
		"slide",
		"custom",
		"push(fast)",
		"show(animated)",
		"in-navigation",
		"in-navigation()",
		"present(animated",
	} {
		if _, err := router.ParseStyle(text); err == nil {
			t.Errorf("ParseStyle(%q) succeeded", text)
		}
	}
}

func TestStyleAccessors(t *testing.T) {
	var zero router.Style
	if zero.Kind() != router.KindShow {
		t.Fatalf("zero style kind = %v, want show", zero.Kind())
	}

	nested := router.InNavigation(router.InNavigation(router.Present(true)))
	if !nested.Animated() {
		t.Fatal("nested present(animated) not animated")
	}
	if base := nested.Base(); base.Kind() != router.KindPresent {
		t.Fatalf("Base kind = %v", base.Kind())
	}
	if _, ok := router.Push(true).Inner(); ok {
		t.Fatal("push reports an inner style")
	}

	custom := router.Custom(func(_, _ surface.Surface, done func()) { done() })
	if custom.Kind() != router.KindCustom || custom.String() != "custom" {
		t.Fatalf("custom = %v %s", custom.Kind(), custom)
	}
}
