package essay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/year-card/internal/model"
)

var (
	allRelationships = []model.Relationship{model.RelationshipFriend, model.RelationshipCrush, model.RelationshipSecretLover}
	allPaths         = []model.Path{model.PathUnset, model.PathFriend, model.PathLove, model.PathSecret}
	allLoves         = []model.LoveAnswer{model.LoveUnset, model.LoveJustFriends, model.LoveLikeYou, model.LoveLoveYou, model.LoveCantSay}
	allWishes        = []model.Wish{model.WishUnset, model.WishRelation, model.WishBreakup, model.WishPeace, model.WishAll}
)

func TestAssembleMinimumLength(t *testing.T) {
	for _, rel := range allRelationships {
		for _, p := range allPaths {
			for _, l := range allLoves {
				for _, w := range allWishes {
					d := model.Draft{SelectedPath: p, Relationship: rel, LoveAnswer: l, Wish: w}
					for seed := uint32(0); seed < 64; seed++ {
						text := Assemble(d, seed*2654435761)
						require.GreaterOrEqual(t, CountWords(text), MinWords,
							"rel=%s path=%q love=%s wish=%s seed=%d", rel, p, l, w, seed)
					}
				}
			}
		}
	}
}

func TestAssembleDeterministic(t *testing.T) {
	d := model.Draft{Name: "Jo", SelectedPath: model.PathFriend, Relationship: model.RelationshipFriend, LoveAnswer: model.LoveJustFriends, Wish: model.WishPeace}
	assert.Equal(t, Assemble(d, 99), Assemble(d, 99))
}

func TestAssembleSkeleton(t *testing.T) {
	d := model.Draft{
		Name:         "  Alex ",
		SelectedPath: model.PathLove,
		Relationship: model.RelationshipCrush,
		LoveAnswer:   model.LoveLikeYou,
		Wish:         model.WishAll,
	}
	lines := strings.Split(Assemble(d, 290980519), "\n")

	assert.Equal(t, "To you,", lines[0])
	assert.Equal(t, "", lines[1])
	assert.Equal(t, "I don’t know what this is yet, but I like the feeling of it.", lines[2])
	assert.Equal(t, pathLines[model.PathLove], lines[4])
	assert.Equal(t, loveLines[model.LoveLikeYou], lines[6])
	assert.Equal(t, wishLines[model.WishAll], lines[8])
	assert.Equal(t, "— Alex", lines[len(lines)-1])
	assert.Equal(t, "", lines[len(lines)-2])
}

func TestAssembleOmitsUnsetPath(t *testing.T) {
	d := model.Draft{Relationship: model.RelationshipFriend, LoveAnswer: model.LoveUnset, Wish: model.WishUnset}
	lines := strings.Split(Assemble(d, 5), "\n")
	assert.Equal(t, loveLines[model.LoveUnset], lines[4])
	for _, line := range pathLines {
		assert.NotContains(t, lines, line)
	}
}

func TestAssembleSignerFallback(t *testing.T) {
	d := model.Draft{Name: "   ", Relationship: model.RelationshipSecretLover, LoveAnswer: model.LoveCantSay, Wish: model.WishBreakup}
	assert.True(t, strings.HasSuffix(Assemble(d, 1), "\n— Someone who cares"))
}

func TestAssembleUnknownAnswersUseDefaults(t *testing.T) {
	d := model.Draft{Relationship: "stranger", LoveAnswer: "maybe", Wish: "gold"}
	text := Assemble(d, 11)
	assert.Contains(t, text, loveLines[model.LoveUnset])
	assert.Contains(t, text, wishLines[model.WishUnset])
}

func TestAssembleShortPoolsDegrade(t *testing.T) {
	orig := pools[model.RelationshipFriend]
	t.Cleanup(func() { pools[model.RelationshipFriend] = orig })

	pools[model.RelationshipFriend] = poolSet{body: []string{"Only one body line."}}
	d := model.Draft{Relationship: model.RelationshipFriend, LoveAnswer: model.LoveUnset, Wish: model.WishUnset}

	var text string
	require.NotPanics(t, func() { text = Assemble(d, 3) })
	assert.Contains(t, text, defaultOpener)
	assert.Contains(t, text, "Only one body line.")
	assert.Contains(t, text, defaultBodyB)
	assert.Contains(t, text, defaultBridge)
	assert.Contains(t, text, defaultClosing)
	assert.Less(t, CountWords(text), MinWords)
}

func TestAssembleStopsExpandingAtMinimum(t *testing.T) {
	d := model.Draft{SelectedPath: model.PathSecret, Relationship: model.RelationshipSecretLover, LoveAnswer: model.LoveCantSay, Wish: model.WishPeace}
	text := Assemble(d, 77)
	used := 0
	for _, b := range pools[model.RelationshipSecretLover].body {
		if strings.Contains(text, b) {
			used++
		}
	}
	assert.Equal(t, 3, used)
	assert.Equal(t, 174, CountWords(text))
}

func TestInsert(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "x", "c"}, insert([]string{"a", "b", "c"}, 2, "x"))
	assert.Equal(t, []string{"a", "b", "x"}, insert([]string{"a", "b"}, 2, "x"))
}
