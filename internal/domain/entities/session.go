package entities

// SessionState is the state of a game session.
type SessionState string

const (
	StateIdle             SessionState = "idle"              // created, not started
	StateAwaitingQuestion SessionState = "awaiting-question" // transient, a question is being generated
	StateUnanswered       SessionState = "unanswered"        // a question is shown, no answer yet
	StateLocked           SessionState = "locked"            // answered, feedback is being shown
	StateClosed           SessionState = "closed"            // left, score discarded
)

// Mark is the feedback state of one option.
type Mark string

const (
	MarkNone    Mark = ""        // not answered yet, or an untouched wrong option
	MarkCorrect Mark = "correct" // the correct option, shown once the round is locked
	MarkWrong   Mark = "wrong"   // the option the player picked when it was wrong
)

// Snapshot is a read-only copy of a session taken after a transition.
type Snapshot struct {
	SessionID      string
	Mode           Mode
	State          SessionState
	Round          int // sequence number of the current question, starting at 1
	Score          int
	Streak         int
	BestStreak     int // longest run of correct answers since Start
	Attempts       int // accepted submissions since Start
	Question       *Question
	LockedAnswerID string
}

// Answered reports whether the current round is locked.
func (s Snapshot) Answered() bool {
	return s.State == StateLocked && s.LockedAnswerID != ""
}

// Correct reports whether the locked answer was correct.
func (s Snapshot) Correct() bool {
	return s.Answered() && s.Question != nil && s.LockedAnswerID == s.Question.CorrectAnswerID
}

// MarkOf returns the feedback mark of the option with the given id.
func (s Snapshot) MarkOf(id string) Mark {
	if !s.Answered() || s.Question == nil {
		return MarkNone
	}
	switch {
	case id == s.Question.CorrectAnswerID:
		return MarkCorrect
	case id == s.LockedAnswerID:
		return MarkWrong
	default:
		return MarkNone
	}
}

// Outcome reports the result of a submission.
type Outcome struct {
	Accepted  bool // false when the submission was ignored
	Correct   bool
	Score     int
	Streak    int
	Celebrate bool // the streak reached a celebration milestone
}
