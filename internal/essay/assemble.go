// Package essay assembles the card's personal message from shuffled sentence
// pools and keeps it from repeating within a session.
package essay

import (
	"strings"

	"github.com/rcliao/year-card/internal/model"
	"github.com/rcliao/year-card/internal/rng"
)

// MinWords is the word count body expansion aims for.
const MinWords = 150

// bodyInsertAt is where extra body sentences go: after the first two, before
// the bridge.
const bodyInsertAt = 2

// Assemble builds one essay for d from seed. The same (d, seed) always yields
// the same text. If the body pool runs out before MinWords is reached the
// shorter essay is returned as is.
func Assemble(d model.Draft, seed uint32) string {
	set, ok := pools[d.Relationship]
	if !ok {
		set = pools[model.RelationshipFriend]
	}

	r := rng.New(seed)
	opener := rng.Shuffle(clone(set.opener), r)
	body := rng.Shuffle(clone(set.body), r)
	bridge := rng.Shuffle(clone(set.bridge), r)
	closing := rng.Shuffle(clone(set.closing), r)

	lines := []string{salutation, "", at(opener, 0, defaultOpener), ""}
	if line, ok := pathLines[d.SelectedPath]; ok {
		lines = append(lines, line, "")
	}
	lines = append(lines, loveLine(d.LoveAnswer), "", wishLine(d.Wish), "")

	skeleton := CountWords(strings.Join(lines, "\n"))
	paragraphs := []string{
		at(body, 0, defaultBodyA),
		at(body, 1, defaultBodyB),
		at(bridge, 0, defaultBridge),
	}
	total := skeleton + countAll(paragraphs)
	for i := 2; total < MinWords && i < len(body); i++ {
		paragraphs = insert(paragraphs, bodyInsertAt, body[i])
		total = skeleton + countAll(paragraphs)
	}

	lines = append(lines,
		strings.Join(paragraphs, "\n\n"),
		"",
		at(closing, 0, defaultClosing),
		"",
		signaturePrefix+signer(d.Name),
	)
	return strings.Join(lines, "\n")
}

// CountWords counts whitespace-delimited tokens.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

func countAll(parts []string) int {
	n := 0
	for _, p := range parts {
		n += CountWords(p)
	}
	return n
}

func signer(name string) string {
	if n := strings.TrimSpace(name); n != "" {
		return n
	}
	return defaultSigner
}

func loveLine(a model.LoveAnswer) string {
	if line, ok := loveLines[a]; ok {
		return line
	}
	return loveLines[model.LoveUnset]
}

func wishLine(w model.Wish) string {
	if line, ok := wishLines[w]; ok {
		return line
	}
	return wishLines[model.WishUnset]
}

func at(items []string, i int, fallback string) string {
	if i < len(items) && items[i] != "" {
		return items[i]
	}
	return fallback
}

func clone(items []string) []string {
	return append([]string(nil), items...)
}

func insert(items []string, i int, v string) []string {
	items = append(items, "")
	copy(items[i+1:], items[i:])
	items[i] = v
	return items
}
