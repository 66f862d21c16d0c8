package circulation

import "fmt"

// LendOutcome is the terminal state of a LendBook call.
type LendOutcome int

const (
	LendMemberNotFound LendOutcome = iota + 1
	LendBookNotFound
	LendUnavailable
	Lent
)

func (o LendOutcome) String() string {
	switch o {
	case LendMemberNotFound:
		return "member_not_found"
	case LendBookNotFound:
		return "book_not_found"
	case LendUnavailable:
		return "unavailable"
	case Lent:
		return "lent"
	default:
		return "unknown"
	}
}

// LendResult carries the outcome plus the names needed to describe it.
type LendResult struct {
	Outcome    LendOutcome
	Title      string
	MemberName string
}

// OK reports whether the book changed hands.
func (r LendResult) OK() bool { return r.Outcome == Lent }

func (r LendResult) String() string {
	switch r.Outcome {
	case LendMemberNotFound:
		return "Member not found."
	case LendBookNotFound:
		return "Book not found."
	case LendUnavailable:
		return "Book is currently not available."
	case Lent:
		return fmt.Sprintf("Book '%s' lent to %s.", r.Title, r.MemberName)
	default:
		return "Failed to borrow the book (unknown reason)."
	}
}

// ReturnOutcome is the terminal state of a TakeReturn call.
type ReturnOutcome int

const (
	ReturnMemberNotFound ReturnOutcome = iota + 1
	ReturnBookNotFound
	ReturnNotOnRecord
	Returned
	// ReturnAlreadyAvailable means the member's record was cleared but the
	// book was already marked available, i.e. the two collections had drifted.
	ReturnAlreadyAvailable
)

func (o ReturnOutcome) String() string {
	switch o {
	case ReturnMemberNotFound:
		return "member_not_found"
	case ReturnBookNotFound:
		return "book_not_found"
	case ReturnNotOnRecord:
		return "not_on_record"
	case Returned:
		return "returned"
	case ReturnAlreadyAvailable:
		return "already_available"
	default:
		return "unknown"
	}
}

type ReturnResult struct {
	Outcome    ReturnOutcome
	Title      string
	MemberName string
}

// OK reports whether the member's record was cleared.
func (r ReturnResult) OK() bool {
	return r.Outcome == Returned || r.Outcome == ReturnAlreadyAvailable
}

func (r ReturnResult) String() string {
	switch r.Outcome {
	case ReturnMemberNotFound:
		return "Member not found."
	case ReturnBookNotFound:
		return "Book not found."
	case ReturnNotOnRecord:
		return fmt.Sprintf("Member %s does not have this book recorded.", r.MemberName)
	case Returned:
		return fmt.Sprintf("Book '%s' successfully returned by %s.", r.Title, r.MemberName)
	case ReturnAlreadyAvailable:
		return fmt.Sprintf("Book '%s' return recorded (book was already available).", r.Title)
	default:
		return "Failed to return the book (unknown reason)."
	}
}
