package naming

import (
	"math/rand"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	wordsPattern = regexp.MustCompile(`^[a-z]+-the-[a-z]+-[a-z]+\.png$`)
	datePattern  = regexp.MustCompile(`^Screenshot-2024-03-09_[A-Za-z0-9]{16}\.png$`)
)

func fixedNow() time.Time {
	return time.Date(2024, time.March, 9, 23, 59, 0, 0, time.UTC)
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name    string
		style   Style
		pattern *regexp.Regexp
	}{
		{name: "Words", style: StyleWords, pattern: wordsPattern},
		{name: "Date", style: StyleDate, pattern: datePattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGenerator(tt.style, rand.NewSource(1), fixedNow)

			first := g.Generate()
			second := g.Generate()

			assert.Regexp(t, tt.pattern, first)
			assert.Regexp(t, tt.pattern, second)
			assert.NotEqual(t, first, second)
		})
	}
}

func TestGenerate_WordsComeFromTheLists(t *testing.T) {
	g := newGenerator(StyleWords, rand.NewSource(7), fixedNow)

	name := g.Generate()
	match := regexp.MustCompile(`^([a-z]+)-the-([a-z]+)-([a-z]+)\.png$`).FindStringSubmatch(name)
	require.Len(t, match, 4)

	assert.Contains(t, verbs, match[1])
	assert.Contains(t, adjectives, match[2])
	assert.Contains(t, nouns, match[3])
}

func TestWordLists(t *testing.T) {
	for name, words := range map[string][]string{"verbs": verbs, "adjectives": adjectives, "nouns": nouns} {
		t.Run(name, func(t *testing.T) {
			assert.GreaterOrEqual(t, len(words), 700)

			seen := map[string]bool{}
			for _, w := range words {
				assert.Regexp(t, `^[a-z]+$`, w)
				assert.False(t, seen[w], "duplicate word: %s", w)
				seen[w] = true
			}
		})
	}

	combinations := int64(len(verbs)) * int64(len(adjectives)) * int64(len(nouns))
	assert.GreaterOrEqual(t, combinations, int64(500_000_000))
}

func TestGenerate_NoRepeatInALongHistory(t *testing.T) {
	g := newGenerator(StyleWords, rand.NewSource(42), fixedNow)

	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		name := g.Generate()
		require.False(t, seen[name], "name repeated after %d screenshots: %s", i, name)
		seen[name] = true
	}
}

func TestGenerate_SameSeedSameName(t *testing.T) {
	a := newGenerator(StyleDate, rand.NewSource(99), fixedNow)
	b := newGenerator(StyleDate, rand.NewSource(99), fixedNow)

	assert.Equal(t, a.Generate(), b.Generate())
}

func TestNewGenerator_ConsecutiveNamesDiffer(t *testing.T) {
	for _, style := range []Style{StyleWords, StyleDate} {
		assert.NotEqual(t, NewGenerator(style).Generate(), NewGenerator(style).Generate())
	}
}

func TestParseStyle(t *testing.T) {
	style, err := ParseStyle("date")
	require.NoError(t, err)
	assert.Equal(t, StyleDate, style)

	_, err = ParseStyle("uuid")
	require.EqualError(t, err, "invalid name style (uuid), available: words, date")
}
