package naming

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Style selects the file name format.
type Style string

const (
	// StyleWords gives <verb>-the-<adjective>-<noun>.png
	StyleWords Style = "words"
	// StyleDate gives Screenshot-<YYYY-MM-DD>_<16 alphanumerics>.png
	StyleDate Style = "date"
)

const (
	extension    = ".png"
	suffixLength = 16
	alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// ParseStyle ...
func ParseStyle(s string) (Style, error) {
	switch style := Style(s); style {
	case StyleWords, StyleDate:
		return style, nil
	default:
		return "", fmt.Errorf("invalid name style (%s), available: %s, %s", s, StyleWords, StyleDate)
	}
}

// Generator builds file names that are unlikely to collide in a shared bucket.
// Uniqueness is only probabilistic.
type Generator struct {
	style Style
	rand  *rand.Rand
	now   func() time.Time
}

// NewGenerator ...
func NewGenerator(style Style) *Generator {
	return newGenerator(style, rand.NewSource(randomSeed()), time.Now)
}

func newGenerator(style Style, source rand.Source, now func() time.Time) *Generator {
	return &Generator{
		style: style,
		rand:  rand.New(source),
		now:   now,
	}
}

// Generate ...
func (g *Generator) Generate() string {
	if g.style == StyleDate {
		return g.dated()
	}
	return g.words()
}

func (g *Generator) words() string {
	return strings.Join([]string{
		g.pick(verbs),
		"the",
		g.pick(adjectives),
		g.pick(nouns),
	}, "-") + extension
}

func (g *Generator) dated() string {
	suffix := make([]byte, suffixLength)
	for i := range suffix {
		suffix[i] = alphanumeric[g.rand.Intn(len(alphanumeric))]
	}

	return fmt.Sprintf("Screenshot-%s_%s%s", g.now().Format("2006-01-02"), suffix, extension)
}

func (g *Generator) pick(words []string) string {
	return words[g.rand.Intn(len(words))]
}

func randomSeed() int64 {
	var b [8]byte
	if _, err := cryptorand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
