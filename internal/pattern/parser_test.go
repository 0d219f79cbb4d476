package pattern

import (
	"errors"
	"testing"
)

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{"unterminated class", "[abc"},
		{"unterminated negated class", "[^abc"},
		{"trailing backslash", `a\`},
		{"unclosed group", "(cat"},
		{"unclosed repeat", "a{3"},
		{"non-numeric repeat", "a{x}"},
		{"empty repeat", "a{}"},
		{"unmatched close paren", "cat)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.expr)
			if err == nil {
				t.Fatalf("Compile(%q): expected error, got none", tt.expr)
			}
			var synErr *SyntaxError
			if !errors.As(err, &synErr) {
				t.Fatalf("Compile(%q): error %v is not a *SyntaxError", tt.expr, err)
			}
		})
	}
}

func TestCompileAccepts(t *testing.T) {
	tests := []string{
		"",
		"a",
		`\d\d\d`,
		`\w+`,
		"[abc]",
		"[^abc]",
		"(cat|dog)s?",
		"a{3}",
		"a{0}",
		`(\w+) \1`,
		".*",
		"^anchored$",
		`literal\$dollar`,
	}

	for _, expr := range tests {
		if _, err := Compile(expr); err != nil {
			t.Errorf("Compile(%q): unexpected error: %v", expr, err)
		}
	}
}

func TestAnchorStripping(t *testing.T) {
	tests := []struct {
		expr          string
		startAnchored bool
		endAnchored   bool
	}{
		{"cat", false, false},
		{"^cat", true, false},
		{"cat$", false, true},
		{"^cat$", true, true},
		{`cat\$`, false, false}, // escaped '$' is literal, not an anchor
		{"$", false, true},
	}

	for _, tt := range tests {
		c, err := Compile(tt.expr)
		if err != nil {
			t.Fatalf("Compile(%q): %v", tt.expr, err)
		}
		if c.StartAnchored != tt.startAnchored {
			t.Errorf("Compile(%q).StartAnchored = %v, want %v", tt.expr, c.StartAnchored, tt.startAnchored)
		}
		if c.EndAnchored != tt.endAnchored {
			t.Errorf("Compile(%q).EndAnchored = %v, want %v", tt.expr, c.EndAnchored, tt.endAnchored)
		}
	}
}

func TestGroupIDsAreSourceOrderedAndNestedGreater(t *testing.T) {
	c, err := Compile(`(a(b)c)(d)`)
	if err != nil {
		t.Fatal(err)
	}

	outer, ok := c.Nodes[0].(Group)
	if !ok {
		t.Fatalf("Nodes[0] is %T, want Group", c.Nodes[0])
	}
	if outer.ID != 1 {
		t.Fatalf("outer group id = %d, want 1", outer.ID)
	}

	var inner Group
	found := false
	for _, node := range outer.Alternatives[0] {
		if g, ok := node.(Group); ok {
			inner = g
			found = true
		}
	}
	if !found {
		t.Fatalf("nested group not found")
	}
	if inner.ID <= outer.ID {
		t.Fatalf("nested group id %d not greater than enclosing id %d", inner.ID, outer.ID)
	}

	last, ok := c.Nodes[1].(Group)
	if !ok {
		t.Fatalf("Nodes[1] is %T, want Group", c.Nodes[1])
	}
	if last.ID != inner.ID+1 {
		t.Fatalf("sibling group id = %d, want %d", last.ID, inner.ID+1)
	}
}
