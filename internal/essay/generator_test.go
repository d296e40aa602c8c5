package essay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/year-card/internal/hash"
	"github.com/rcliao/year-card/internal/model"
)

type fakeHistory struct {
	seen   map[string]bool
	added  []string
	always bool
	checks int
}

func newFakeHistory() *fakeHistory {
	return &fakeHistory{seen: map[string]bool{}}
}

func (f *fakeHistory) Has(fp string) bool {
	f.checks++
	return f.always || f.seen[fp]
}

func (f *fakeHistory) Add(fp string) {
	f.seen[fp] = true
	f.added = append(f.added, fp)
}

func alexDraft() model.Draft {
	return model.Draft{
		Name:         "Alex",
		SelectedPath: model.PathLove,
		Relationship: model.RelationshipCrush,
		LoveAnswer:   model.LoveLikeYou,
		Wish:         model.WishAll,
	}
}

func TestGenerateScenario(t *testing.T) {
	h := newFakeHistory()
	res := NewGenerator(h).Generate(alexDraft())

	assert.Equal(t, 1, res.NextNonce)
	assert.True(t, strings.HasPrefix(res.Essay, "To you,"))
	assert.Contains(t, strings.Split(res.Essay, "\n"), "— Alex")
	assert.GreaterOrEqual(t, CountWords(res.Essay), MinWords)
	assert.Equal(t, 192, CountWords(res.Essay))

	fp := hash.Fingerprint(res.Essay)
	assert.Equal(t, "18zisrs", fp)
	assert.Equal(t, []string{fp}, h.added)
}

func TestGenerateDeterministicWithEmptyHistory(t *testing.T) {
	d := alexDraft()
	d.EssayNonce = 5
	a := NewGenerator(newFakeHistory()).Generate(d)
	b := NewGenerator(newFakeHistory()).Generate(d)
	assert.Equal(t, a, b)
	assert.Equal(t, 6, a.NextNonce)
}

func TestGenerateSkipsSeenEssay(t *testing.T) {
	d := alexDraft()
	d.EssayNonce = 3

	seed := hash.SeedFromParts("alex", "love", "crush", "like_you", 3)
	seen := hash.Fingerprint(Assemble(d, seed))

	h := newFakeHistory()
	h.Add(seen)
	res := NewGenerator(h).Generate(d)

	assert.NotEqual(t, seen, hash.Fingerprint(res.Essay))
	assert.Greater(t, res.NextNonce, 3)
	assert.True(t, h.seen[hash.Fingerprint(res.Essay)])
}

func TestGenerateNameIsCaseAndSpaceInsensitiveForSeed(t *testing.T) {
	a := alexDraft()
	b := alexDraft()
	b.Name = "  ALEX "
	ra := NewGenerator(newFakeHistory()).Generate(a)
	rb := NewGenerator(newFakeHistory()).Generate(b)

	// Same seed, so the body matches; only the signature differs.
	trim := func(s string) string { return s[:strings.LastIndex(s, "\n")] }
	assert.Equal(t, trim(ra.Essay), trim(rb.Essay))
	assert.True(t, strings.HasSuffix(rb.Essay, "— ALEX"))
}

func TestGenerateNegativeNonce(t *testing.T) {
	d := alexDraft()
	d.EssayNonce = -7
	res := NewGenerator(newFakeHistory()).Generate(d)
	assert.Equal(t, 1, res.NextNonce)
}

func TestGenerateBoundedRetry(t *testing.T) {
	h := newFakeHistory()
	h.always = true

	g := NewGenerator(h)
	calls := 0
	var seeds []uint32
	g.assemble = func(d model.Draft, seed uint32) string {
		calls++
		seeds = append(seeds, seed)
		return Assemble(d, seed)
	}

	d := alexDraft()
	d.EssayNonce = 2
	var res Result
	require.NotPanics(t, func() { res = g.Generate(d) })

	assert.Equal(t, MaxAttempts+1, calls)
	assert.Equal(t, MaxAttempts, h.checks)
	assert.Equal(t, 2+MaxAttempts+1, res.NextNonce)
	assert.Len(t, h.added, 1)
	assert.Equal(t, hash.SeedFromParts("alex", "love", "crush", "like_you", 2+MaxAttempts, "fallback"), seeds[MaxAttempts])
	assert.NotEmpty(t, res.Essay)
}

func TestGenerateSuccessiveCallsDiffer(t *testing.T) {
	h := newFakeHistory()
	g := NewGenerator(h)
	d := alexDraft()

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		res := g.Generate(d)
		require.Greater(t, res.NextNonce, d.EssayNonce)
		fp := hash.Fingerprint(res.Essay)
		require.False(t, seen[fp], "repeated essay on call %d", i)
		seen[fp] = true
		d.EssayNonce = res.NextNonce
		d.Essay = res.Essay
	}
}
