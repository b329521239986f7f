package sampler

import (
	// Go Internal Packages
	"math"
	"math/rand"
	"strings"
)

const (
	DigitPlaceholder  = '#'
	LetterPlaceholder = '?'

	digits  = "0123456789"
	letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

type tokenKind uint8

const (
	literalToken tokenKind = iota
	digitToken
	letterToken
)

type token struct {
	kind tokenKind
	text string
}

// Pattern renders identifiers such as "m_#####??##": '#' becomes a digit,
// '?' an uppercase letter, anything else is copied. Uniqueness is not
// enforced; see Space for the size of the identifier space.
type Pattern struct {
	source string
	tokens []token
	length int
}

// Compile parses the template once into literal, digit and letter tokens.
func Compile(template string) Pattern {
	p := Pattern{source: template}
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			p.tokens = append(p.tokens, token{kind: literalToken, text: lit.String()})
			lit.Reset()
		}
	}
	for _, ch := range template {
		switch ch {
		case DigitPlaceholder:
			flush()
			p.tokens = append(p.tokens, token{kind: digitToken})
		case LetterPlaceholder:
			flush()
			p.tokens = append(p.tokens, token{kind: letterToken})
		default:
			lit.WriteRune(ch)
		}
	}
	flush()
	p.length = len(template)
	return p
}

func (p Pattern) Render(r *rand.Rand) string {
	var b strings.Builder
	b.Grow(p.length)
	for _, t := range p.tokens {
		switch t.kind {
		case digitToken:
			b.WriteByte(digits[r.Intn(len(digits))])
		case letterToken:
			b.WriteByte(letters[r.Intn(len(letters))])
		default:
			b.WriteString(t.text)
		}
	}
	return b.String()
}

// Space is the number of distinct values the pattern can render.
func (p Pattern) Space() float64 {
	space := 1.0
	for _, t := range p.tokens {
		switch t.kind {
		case digitToken:
			space *= float64(len(digits))
		case letterToken:
			space *= float64(len(letters))
		}
	}
	return space
}

// CollisionProbability approximates the birthday bound for n rendered values.
func (p Pattern) CollisionProbability(n int) float64 {
	return 1 - math.Exp(-float64(n)*float64(n-1)/(2*p.Space()))
}

func (p Pattern) String() string {
	return p.source
}
