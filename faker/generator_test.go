package faker

import (
	"regexp"
	"testing"
)

func TestGenerator_Parse(t *testing.T) {
	f := mustNew(t)
	f.AddProvider(NewProvider("Fixed", func(*Generator) map[string]Method {
		return map[string]Method{
			"greeting":    func() (any, error) { return "hi", nil },
			"nested.num":  func() (any, error) { return 7, nil },
			"nested.flag": nil,
		}
	}))
	g, _ := f.Generator("en_US")

	got, err := g.Parse("{{greeting}}, {{ greeting }}! #{{nested.num}}")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got != "hi, hi! #7" {
		t.Errorf("Parse: got %q", got)
	}

	got, err = g.Parse("no tokens")
	if err != nil || got != "no tokens" {
		t.Errorf("Parse without tokens: got %q, %v", got, err)
	}

	if _, err := g.Parse("{{missing}}"); err == nil {
		t.Error("expected error for unknown token")
	}
	if _, err := g.Parse("{{nested}}"); err == nil {
		t.Error("expected error for non-callable token")
	}
	if _, err := g.Parse("{{nested.flag}}"); err == nil {
		t.Error("expected error for nil method token")
	}
}

func TestGenerator_Pattern(t *testing.T) {
	f := mustNew(t)
	g, _ := f.Generator("en_US")

	re := regexp.MustCompile(`^[A-Z]{3}-[0-9]{4}$`)
	for range 20 {
		s, err := g.Pattern(`[A-Z]{3}-[0-9]{4}`)
		if err != nil {
			t.Fatalf("Pattern error: %v", err)
		}
		if !re.MatchString(s) {
			t.Errorf("Pattern output %q does not match", s)
		}
	}

	if _, err := g.Pattern(`[`); err == nil {
		t.Error("expected error for invalid pattern")
	}
}

func TestGenerator_RandomElement(t *testing.T) {
	f := mustNew(t)
	g, _ := f.Generator("en_US")
	if got := g.RandomElement(nil); got != "" {
		t.Errorf("RandomElement(nil) = %q", got)
	}
	if got := g.RandomElement([]string{"only"}); got != "only" {
		t.Errorf("RandomElement single = %q", got)
	}
}
