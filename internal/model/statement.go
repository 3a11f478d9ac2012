package model

// Statement is the normalized transaction set for one uploaded export.
// A new parse produces a fresh Statement; callers replace the old one
// wholesale rather than mutating it.
type Statement struct {
	Transactions []Transaction
	Dropped      int // rows discarded for unparsable date or amount
}

// Empty reports whether normalization retained no transactions.
func (s *Statement) Empty() bool {
	return len(s.Transactions) == 0
}
