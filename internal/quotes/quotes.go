// Package quotes serves motivational quotes from a built-in list.
package quotes

import "math/rand/v2"

type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// Fallback is the built-in quote list.
var Fallback = []Quote{
	{"The secret of getting ahead is getting started.", "Mark Twain"},
	{"It always seems impossible until it's done.", "Nelson Mandela"},
	{"Well begun is half done.", "Aristotle"},
	{"The expert in anything was once a beginner.", "Helen Hayes"},
	{"Quality is not an act, it is a habit.", "Aristotle"},
	{"Education is not the filling of a pail, but the lighting of a fire.", "W. B. Yeats"},
	{"Success is the sum of small efforts, repeated day in and day out.", "Robert Collier"},
	{"Learning never exhausts the mind.", "Leonardo da Vinci"},
	{"Don't watch the clock; do what it does. Keep going.", "Sam Levenson"},
	{"Genius is one percent inspiration and ninety-nine percent perspiration.", "Thomas Edison"},
	{"The beautiful thing about learning is that no one can take it away from you.", "B. B. King"},
	{"Energy and persistence conquer all things.", "Benjamin Franklin"},
}

// Picker draws random quotes.
type Picker struct {
	rng    *rand.Rand
	quotes []Quote
}

// NewPicker draws from quotes using rng; a nil rng uses the global source.
func NewPicker(rng *rand.Rand, quotes []Quote) *Picker {
	if len(quotes) == 0 {
		quotes = Fallback
	}
	return &Picker{rng: rng, quotes: quotes}
}

// Pick returns a random quote.
func (p *Picker) Pick() Quote {
	var i int
	if p.rng != nil {
		i = p.rng.IntN(len(p.quotes))
	} else {
		i = rand.IntN(len(p.quotes))
	}
	return p.quotes[i]
}
