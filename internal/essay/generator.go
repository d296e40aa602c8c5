package essay

import (
	"strings"

	"go.uber.org/zap"

	"github.com/rcliao/year-card/internal/hash"
	"github.com/rcliao/year-card/internal/model"
)

// MaxAttempts bounds the nonce search before the forced fallback.
const MaxAttempts = 12

const fallbackMarker = "fallback"

// History remembers fingerprints of essays already shown.
type History interface {
	Has(fingerprint string) bool
	Add(fingerprint string)
}

// Result is a generated essay and the nonce the caller should store next.
type Result struct {
	Essay     string `json:"essay"`
	NextNonce int    `json:"nextNonce"`
}

// Generator produces essays that avoid the fingerprints in its history.
type Generator struct {
	history  History
	logger   *zap.Logger
	assemble func(model.Draft, uint32) string
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for collision diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// NewGenerator returns a Generator backed by h.
func NewGenerator(h History, opts ...Option) *Generator {
	g := &Generator{
		history:  h,
		logger:   zap.NewNop(),
		assemble: Assemble,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns an essay for d that is not yet in the history, trying up
// to MaxAttempts nonces starting at d.EssayNonce. If every attempt collides,
// one more essay is built from a distinct fallback seed and returned
// regardless. The chosen essay's fingerprint is recorded before returning.
func (g *Generator) Generate(d model.Draft) Result {
	nonce := max(0, d.EssayNonce)
	name := strings.ToLower(strings.TrimSpace(d.Name))

	for attempt := 0; attempt < MaxAttempts; attempt++ {
		seed := hash.SeedFromParts(name, string(d.SelectedPath), string(d.Relationship), string(d.LoveAnswer), nonce)
		text := g.assemble(d, seed)
		fp := hash.Fingerprint(text)
		if !g.history.Has(fp) {
			g.history.Add(fp)
			return Result{Essay: text, NextNonce: nonce + 1}
		}
		g.logger.Debug("essay seen before, retrying",
			zap.Int("nonce", nonce),
			zap.Int("attempt", attempt),
			zap.String("fingerprint", fp))
		nonce++
	}

	seed := hash.SeedFromParts(name, string(d.SelectedPath), string(d.Relationship), string(d.LoveAnswer), nonce, fallbackMarker)
	text := g.assemble(d, seed)
	fp := hash.Fingerprint(text)
	g.logger.Info("essay history exhausted, using fallback seed",
		zap.Int("nonce", nonce),
		zap.String("fingerprint", fp))
	g.history.Add(fp)
	return Result{Essay: text, NextNonce: nonce + 1}
}
