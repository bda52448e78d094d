package movelist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FottenSC/FrameData/internal/movelist"
)

const twoHitDocument = `
{{Move
|id=Test-1
|num=101
|name=Jab
|input=1
|target=h
|startup=i10
|damage=3
|block=+1
|hit=+8
|ch=+8
|notes=first hit
}}
{{Move
|id=Test-1,2
|input=,2
|parent=Test-1
|damage=5
|block=-3
|notes=second hit
}}
`

func TestParserNew(t *testing.T) {
	t.Run("nil config gets defaults", func(t *testing.T) {
		p, err := movelist.New(nil)
		require.NoError(t, err)
		assert.NotNil(t, p)
	})

	t.Run("custom template names", func(t *testing.T) {
		p, err := movelist.New(&movelist.Config{MoveTemplate: "Attack"})
		require.NoError(t, err)
		moves := p.Parse("{{Attack|id=a|input=1}}")
		require.Len(t, moves, 1)
		assert.Equal(t, "1", moves[0].Command)
	})
}

func TestParserParse(t *testing.T) {
	p, err := movelist.New(nil)
	require.NoError(t, err)

	t.Run("empty document", func(t *testing.T) {
		assert.Empty(t, p.Parse(""))
	})

	t.Run("chain resolves to one flattened record", func(t *testing.T) {
		moves := p.Parse(twoHitDocument)
		require.Len(t, moves, 1)

		m := moves[0]
		assert.Equal(t, "1,2", m.Command)
		assert.Equal(t, "Jab", m.MoveName)
		require.NotNil(t, m.WavuID)
		assert.Equal(t, 101, *m.WavuID)

		// Frame data comes from the terminal hit, falling back through
		// the chain for fields it leaves unspecified.
		assert.Equal(t, "h", m.HitLevel)
		require.NotNil(t, m.Impact)
		assert.Equal(t, 10, *m.Impact)
		assert.Equal(t, "5", m.Damage)
		assert.Equal(t, 5, m.DamageDec)
		assert.Equal(t, "-3", m.Block)
		require.NotNil(t, m.BlockDec)
		assert.Equal(t, -3, *m.BlockDec)

		assert.Equal(t, "first hit; second hit", m.Notes)
	})

	t.Run("idempotent across runs", func(t *testing.T) {
		first := p.Parse(twoHitDocument)
		second := p.Parse(twoHitDocument)
		assert.Equal(t, first, second)
	})

	t.Run("independent moves stay independent", func(t *testing.T) {
		moves := p.Parse("{{Move|id=a|input=1|target=h}} {{Move|id=b|input=d+2|target=l}}")
		require.Len(t, moves, 2)
		assert.Equal(t, "1", moves[0].Command)
		assert.Equal(t, "d+2", moves[1].Command)
	})

	t.Run("duplicate notes appear once", func(t *testing.T) {
		moves := p.Parse("{{Move|id=a|input=1|notes=Homing}} {{Move|id=b|input=2|parent=a|notes=Homing}}")
		require.Len(t, moves, 1)
		assert.Equal(t, "Homing", moves[0].Notes)
		assert.True(t, moves[0].IsHoming)
	})

	t.Run("flags derived from resolved fields", func(t *testing.T) {
		moves := p.Parse("{{Move|id=a|input=1+2|target=m,t|notes={{HeatEngager}}}}")
		require.Len(t, moves, 1)
		assert.True(t, moves[0].IsTH)
		assert.True(t, moves[0].IsHE)
		assert.Equal(t, "Heat Engager", moves[0].Notes)
	})

	t.Run("query reference fills a missing definition", func(t *testing.T) {
		moves := p.Parse("{{MoveQuery|Other-df+2}}")
		require.Len(t, moves, 1)
		assert.Equal(t, "df+2", moves[0].Command)
		assert.Equal(t, "Referenced Move Other-df+2", moves[0].MoveName)
	})

	t.Run("cycle does not hang and loses no move", func(t *testing.T) {
		text := "{{Move|id=A|input=1}} {{Move|id=B|input=2}} {{MoveInherit|A|id=B}} {{MoveInherit|B|id=A}}"
		moves := p.Parse(text)
		require.Len(t, moves, 1)
		assert.Equal(t, "1,2", moves[0].Command)
	})
}
