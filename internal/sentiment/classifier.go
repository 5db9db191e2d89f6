// Package sentiment implements a deterministic lexicon classifier that maps
// free text to one of three sentiment labels.
package sentiment

import (
	"strings"
	"unicode"

	"feedback_service/internal/domain"
)

type Score struct {
	Positive int
	Negative int
}

// Label resolves a score. Equal counts, including zero, are neutral.
func (s Score) Label() domain.Sentiment {
	switch {
	case s.Positive > s.Negative:
		return domain.SentimentPositive
	case s.Negative > s.Positive:
		return domain.SentimentNegative
	default:
		return domain.SentimentNeutral
	}
}

type polarity int

const (
	positive polarity = iota + 1
	negative
)

type Classifier struct {
	phrases   map[string]polarity
	maxTokens int
}

func New(positiveTerms, negativeTerms []string) *Classifier {
	c := &Classifier{phrases: make(map[string]polarity, len(positiveTerms)+len(negativeTerms))}
	c.add(positiveTerms, positive)
	c.add(negativeTerms, negative)
	return c
}

func (c *Classifier) add(terms []string, p polarity) {
	for _, term := range terms {
		tokens := Tokenize(term)
		if len(tokens) == 0 {
			continue
		}
		c.phrases[strings.Join(tokens, " ")] = p
		if len(tokens) > c.maxTokens {
			c.maxTokens = len(tokens)
		}
	}
}

var defaultClassifier = New(defaultPositive, defaultNegative)

func Default() *Classifier {
	return defaultClassifier
}

// Classify labels text with the built-in lexicon.
func Classify(text string) domain.Sentiment {
	return defaultClassifier.Classify(text)
}

func (c *Classifier) Classify(text string) domain.Sentiment {
	return c.Score(text).Label()
}

// Score counts lexicon hits. Phrases are matched longest first and a negator
// within negationWindow tokens before a hit flips that hit. A phrase that
// starts with a negator ("didnt explain") wins over the negator.
func (c *Classifier) Score(text string) Score {
	var score Score
	tokens := Tokenize(text)
	lastNegator := -1

	for i := 0; i < len(tokens); {
		p, n := c.match(tokens, i)
		if n == 0 {
			if _, ok := negators[tokens[i]]; ok {
				lastNegator = i
			}
			i++
			continue
		}

		if lastNegator >= 0 && i-lastNegator <= negationWindow {
			p = flip(p)
			lastNegator = -1
		}
		if p == positive {
			score.Positive++
		} else {
			score.Negative++
		}
		i += n
	}

	return score
}

func (c *Classifier) match(tokens []string, start int) (polarity, int) {
	longest := c.maxTokens
	if rest := len(tokens) - start; rest < longest {
		longest = rest
	}
	for n := longest; n > 0; n-- {
		if p, ok := c.phrases[strings.Join(tokens[start:start+n], " ")]; ok {
			return p, n
		}
	}
	return 0, 0
}

func flip(p polarity) polarity {
	if p == positive {
		return negative
	}
	return positive
}

// Tokenize lowercases text, drops apostrophes, turns every other
// non-alphanumeric rune into a separator and splits on whitespace.
func Tokenize(text string) []string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case r == '\'' || r == '’':
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	return strings.Fields(b.String())
}
