package game

// Evaluate scores guess against target.
//
// Per position:
//   - same letter as the target → MarkExact
//   - letter occurs anywhere in the target → MarkPartial
//   - otherwise → MarkMissing
//
// Letter frequency is not tracked: a guess with more copies of a letter than
// the target holds still marks every non-exact copy MarkPartial. ("aaaaa"
// against "crane" yields one Exact and four Partial.)
func Evaluate(target, guess Word) Result {
	var res Result
	for i, c := range guess {
		switch {
		case c == target[i]:
			res[i] = LetterResult{Mark: MarkExact, Letter: c}
		case target.contains(c):
			res[i] = LetterResult{Mark: MarkPartial, Letter: c}
		default:
			res[i] = LetterResult{Mark: MarkMissing, Letter: c}
		}
	}
	return res
}
