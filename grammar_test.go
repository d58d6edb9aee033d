package calc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGrammarProductionOrder(t *testing.T) {
	g := buildGrammar[float64]()
	names := []string{}
	for i, p := range g.productions {
		require.Equal(t, i, p.id)
		names = append(names, p.name)
	}
	require.Equal(t, []string{
		"Expression", "NegSub", "Term", "Factor", "Number", "IntPart", "Digit", "DivTerm", "SubExpr",
	}, names)
	require.NoError(t, g.verify())
}

func TestGrammarVerifyMissingProduction(t *testing.T) {
	root := &production[float64]{name: "Root"}
	missing := &production[float64]{name: "Missing"}
	root.expr = seq[float64](nil, char[float64]('a'), missing)
	g := &grammar[float64]{root: root, productions: []*production[float64]{root}}
	require.Error(t, g.verify())
}

func TestGrammarVerifyUnreachableProduction(t *testing.T) {
	root := &production[float64]{name: "Root", expr: char[float64]('a')}
	orphan := &production[float64]{name: "Orphan", expr: char[float64]('b')}
	g := &grammar[float64]{root: root, productions: []*production[float64]{root, orphan}}
	require.Error(t, g.verify())
}

func TestMatchLeavesPositionOnFailure(t *testing.T) {
	g := buildGrammar[float64]()
	s := newSession[float64]("1+", true, nil)
	next, value, ok := g.root.Match(s, 0)
	require.True(t, ok)
	require.Equal(t, 1, next)
	require.Equal(t, 1.0, value)

	next, _, ok = g.root.Match(s, 1)
	require.False(t, ok)
	require.Equal(t, 1, next)
}

func TestMatchEmptyInput(t *testing.T) {
	g := buildGrammar[float64]()
	for _, p := range g.productions {
		next, _, ok := p.Match(newSession[float64]("", false, nil), 0)
		require.False(t, ok, p.name)
		require.Equal(t, 0, next)
	}
}
