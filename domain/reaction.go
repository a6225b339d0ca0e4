package domain

// ReactionType is one of the four fixed emoji a viewer may attach to an
// entry. The emoji itself is the stored value.
type ReactionType string

const (
	ReactionLove  ReactionType = "❤️"
	ReactionTears ReactionType = "😢"
	ReactionCool  ReactionType = "😎"
	ReactionMusic ReactionType = "🎶"
)

// ReactionTypes returns the fixed set in display order.
func ReactionTypes() []ReactionType {
	return []ReactionType{ReactionLove, ReactionTears, ReactionCool, ReactionMusic}
}

// ReactionCounts maps each reaction type to its count for one diary entry.
type ReactionCounts map[ReactionType]int

// NewReactionCounts returns counts zeroed for every type in the fixed set.
func NewReactionCounts() ReactionCounts {
	c := make(ReactionCounts, 4)
	for _, t := range ReactionTypes() {
		c[t] = 0
	}
	return c
}

// Inc increments the count for t.
func (c ReactionCounts) Inc(t ReactionType) {
	c[t]++
}

// Dec decrements the count for t, never below zero.
func (c ReactionCounts) Dec(t ReactionType) {
	if c[t] > 0 {
		c[t]--
	}
}

// Clone returns an independent copy.
func (c ReactionCounts) Clone() ReactionCounts {
	out := make(ReactionCounts, len(c))
	for t, n := range c {
		out[t] = n
	}
	return out
}

// Toggle applies one viewer transition of the reaction state machine to the
// counts and returns the viewer's new reaction:
//
//	none --choose(T)--> T      (count[T]++)
//	T    --choose(T)--> none   (count[T]--)
//	T    --choose(U)--> U      (count[T]--, count[U]++)
//
// A viewer therefore never holds more than one reaction per entry.
func (c ReactionCounts) Toggle(current, choice ReactionType) ReactionType {
	if current == choice {
		c.Dec(choice)
		return ""
	}
	if current != "" {
		c.Dec(current)
	}
	c.Inc(choice)
	return choice
}
