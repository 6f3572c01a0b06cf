package expr

// Rank is the total preorder used to sort commutative-collection children
// into canonical form (spec.md §4.2). Only the class of a node matters, not
// its structure; ties keep their original relative order (stable sort).
type Rank int

const (
	RankConstant   Rank = iota // Constant
	RankAtom                   // Variable, Dot
	RankPlus                   // Plus
	RankSum                    // Sum
	RankSubtract               // Minus, UnaryMinus
	RankTimes                  // Times
	RankProduct                // Product
	RankDivide                 // Divide
	RankPower                  // Power
	RankFunc                   // Func
)

// sortTerms stably sorts terms by canonical Rank.
func sortTerms(terms []Expression) []Expression {
	out := make([]Expression, len(terms))
	copy(out, terms)
	// insertion sort: stable, and the term counts in this algebra are small.
	for i := 1; i < len(out); i++ {
		j := i
		for j > 0 && out[j-1].Rank() > out[j].Rank() {
			out[j-1], out[j] = out[j], out[j-1]
			j--
		}
	}
	return out
}
