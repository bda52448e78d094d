package wikitext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FottenSC/FrameData/internal/wikitext"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain text untouched", "b+1,2", "b+1,2"},
		{"template with value", "{{Tooltip|+5|plus five}}", "+5|plus five"},
		{"bare template", "{{Spike}}", "Spike"},
		{"nested template", "outer {{A|{{B|x}}}} end", "outer x end"},
		{"piped link", "[[Bryan combos#Staples|+35a]]", "+35a"},
		{"bare link", "[[Heat]]", "Heat"},
		{"html comment", "before<!-- hidden -->after", "beforeafter"},
		{"br becomes space", "a<br/>b", "a b"},
		{"ref removed", `x<ref name="a">cite</ref>y`, "xy"},
		{"self closing ref", `x<ref name="a" />y`, "xy"},
		{"simple tags removed", "<i>italic</i>", "italic"},
		{"nbsp", "a&nbsp;b", "a b"},
		{"unbalanced braces survive", "{{Broken|value", "{{Broken|value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wikitext.Clean(tt.input))
		})
	}
}

func TestFindTemplates(t *testing.T) {
	t.Run("finds occurrences in document order", func(t *testing.T) {
		text := "{{Move|id=a|input=1}} filler {{Move|id=b|input=2}}"
		got := wikitext.FindTemplates(text, "Move")
		require.Len(t, got, 2)
		assert.Equal(t, "id=a|input=1", got[0])
		assert.Equal(t, "id=b|input=2", got[1])
	})

	t.Run("case insensitive name", func(t *testing.T) {
		got := wikitext.FindTemplates("{{move|id=a}}", "Move")
		require.Len(t, got, 1)
	})

	t.Run("whitespace after name", func(t *testing.T) {
		got := wikitext.FindTemplates("{{Move\n|id=a}}", "Move")
		require.Len(t, got, 1)
		assert.Equal(t, "id=a", got[0])
	})

	t.Run("name is not a prefix match", func(t *testing.T) {
		text := "{{MoveInherit|parent}}"
		assert.Empty(t, wikitext.FindTemplates(text, "Move"))
		assert.Len(t, wikitext.FindTemplates(text, "MoveInherit"), 1)
	})

	t.Run("tolerates one level of nesting", func(t *testing.T) {
		text := "{{Move|id=a|notes={{Plainlist|* note}}}}"
		got := wikitext.FindTemplates(text, "Move")
		require.Len(t, got, 1)
		assert.Equal(t, "id=a|notes={{Plainlist|* note}}", got[0])
	})

	t.Run("skips unbalanced occurrence", func(t *testing.T) {
		text := "{{Move|id=broken {{Move|id=b}}"
		got := wikitext.FindTemplates(text, "Move")
		// The outer never closes; the inner one is complete.
		require.Len(t, got, 1)
		assert.Equal(t, "id=b", got[0])
	})

	t.Run("parameterless template yields empty params", func(t *testing.T) {
		got := wikitext.FindTemplates("{{Move}}", "Move")
		require.Len(t, got, 1)
		assert.Equal(t, "", got[0])
	})
}

func TestSplitParams(t *testing.T) {
	t.Run("splits at depth zero only", func(t *testing.T) {
		got := wikitext.SplitParams("id=a|notes={{Plainlist|* x}}|input=1")
		assert.Equal(t, []string{"id=a", "notes={{Plainlist|* x}}", "input=1"}, got)
	})

	t.Run("depth clamps at zero", func(t *testing.T) {
		got := wikitext.SplitParams("a}}b|c")
		assert.Equal(t, []string{"a}}b", "c"}, got)
	})
}

func TestParseParams(t *testing.T) {
	t.Run("keys lower cased, values trimmed", func(t *testing.T) {
		params, id := wikitext.ParseParams("Id=a1 | Input = b+1 |startup=i10")
		assert.Equal(t, "a1", id)
		assert.Equal(t, "b+1", params["input"])
		assert.Equal(t, "i10", params["startup"])
	})

	t.Run("only first equals separates", func(t *testing.T) {
		params, _ := wikitext.ParseParams("block=-9 (-4 if x=1)")
		assert.Equal(t, "-9 (-4 if x=1)", params["block"])
	})

	t.Run("positional params ignored without crash", func(t *testing.T) {
		params, id := wikitext.ParseParams("Alisa-1|id=a2")
		assert.Equal(t, "a2", id)
		assert.Len(t, params, 1)
	})

	t.Run("empty input", func(t *testing.T) {
		params, id := wikitext.ParseParams("")
		assert.Empty(t, params)
		assert.Empty(t, id)
	})
}
