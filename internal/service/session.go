package service

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/rpedroni/project-luca-car-trivia/internal/domain/entities"
)

// QuestionSource produces the next question of a mode.
type QuestionSource interface {
	Generate(mode entities.Mode) (*entities.Question, error)
}

// SessionConfig holds the timing rules of a game session.
type SessionConfig struct {
	IdentifyDelay    time.Duration // pause before the next logo or brand question
	DetailDelay      time.Duration // pause before the next spec or compare question
	CelebrationDelay time.Duration // pause between the praise and the celebration
	CelebrationEvery int           // celebrate every n-th consecutive correct answer
}

// DefaultSessionConfig returns the standard game timings.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		IdentifyDelay:    1500 * time.Millisecond,
		DetailDelay:      2 * time.Second,
		CelebrationDelay: 500 * time.Millisecond,
		CelebrationEvery: 5,
	}
}

// Session is the state machine of one player's game in one mode.
//
// A session shows one question at a time and accepts exactly one answer
// for it. After the answer it locks, gives feedback and moves on to a new
// question once the mode's delay has passed. All methods are safe for
// concurrent use; scheduled tasks that outlive a Start or Leave are ignored.
type Session struct {
	id        string
	mode      entities.Mode
	cfg       SessionConfig
	source    QuestionSource
	announcer Announcer
	scheduler Scheduler
	presenter Presenter
	logger    *zap.Logger

	mu             sync.Mutex
	state          entities.SessionState
	epoch          uint64
	round          int
	score          int
	streak         int
	bestStreak     int
	attempts       int
	question       *entities.Question
	lockedAnswerID string
	advanceTimer   Timer
	celebrateTimer Timer
}

// NewSession creates an idle session. Call Start to show the first question.
func NewSession(
	id string,
	mode entities.Mode,
	cfg SessionConfig,
	source QuestionSource,
	announcer Announcer,
	scheduler Scheduler,
	logger *zap.Logger,
) *Session {
	return &Session{
		id:        id,
		mode:      mode,
		cfg:       cfg,
		source:    source,
		announcer: announcer,
		scheduler: scheduler,
		logger:    logger.With(zap.String("session_id", id), zap.String("mode", string(mode))),
		state:     entities.StateIdle,
	}
}

// SetPresenter sets the receiver of snapshots (called before Start).
func (s *Session) SetPresenter(p Presenter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.presenter = p
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// Mode returns the question mode of the session.
func (s *Session) Mode() entities.Mode { return s.mode }

// Start resets score and streak, greets the player and shows the first question.
// Starting a running session restarts it.
func (s *Session) Start() error {
	s.mu.Lock()
	s.stopTimersLocked()
	s.epoch++
	s.score = 0
	s.streak = 0
	s.bestStreak = 0
	s.attempts = 0
	s.round = 0
	s.question = nil
	s.lockedAnswerID = ""
	s.state = entities.StateAwaitingQuestion

	if err := s.nextQuestionLocked(); err != nil {
		s.state = entities.StateClosed
		s.mu.Unlock()
		return err
	}

	snap, presenter := s.snapshotLocked(), s.presenter
	s.mu.Unlock()

	s.logger.Debug("session started", zap.Int("round", snap.Round))
	s.announcer.Greet()
	present(presenter, snap)
	return nil
}

// Submit answers the current question with answerID.
func (s *Session) Submit(answerID string) entities.Outcome {
	return s.submit(0, answerID)
}

// SubmitRound answers the question of the given round. Answers for an older
// round are ignored.
func (s *Session) SubmitRound(round int, answerID string) entities.Outcome {
	if round <= 0 {
		return s.ignored(answerID, "invalid round")
	}
	return s.submit(round, answerID)
}

func (s *Session) submit(round int, answerID string) entities.Outcome {
	s.mu.Lock()

	switch {
	case s.state != entities.StateUnanswered || s.question == nil:
		s.mu.Unlock()
		return s.ignored(answerID, "not awaiting an answer")
	case round != 0 && round != s.round:
		s.mu.Unlock()
		return s.ignored(answerID, "stale round")
	case !s.question.HasOption(answerID):
		s.mu.Unlock()
		return s.ignored(answerID, "not an option")
	}

	s.lockedAnswerID = answerID
	s.attempts++
	correct := answerID == s.question.CorrectAnswerID

	out := entities.Outcome{Accepted: true, Correct: correct}
	if correct {
		s.score++
		s.streak++
		s.bestStreak = max(s.bestStreak, s.streak)
		out.Celebrate = s.cfg.CelebrationEvery > 0 && s.streak%s.cfg.CelebrationEvery == 0
	} else {
		s.streak = 0
	}
	out.Score = s.score
	out.Streak = s.streak
	s.state = entities.StateLocked

	epoch := s.epoch
	if out.Celebrate {
		s.celebrateTimer = s.scheduler.AfterFunc(s.cfg.CelebrationDelay, func() { s.celebrate(epoch) })
	}
	s.advanceTimer = s.scheduler.AfterFunc(s.advanceDelay(), func() { s.advance(epoch) })

	snap, presenter := s.snapshotLocked(), s.presenter
	s.mu.Unlock()

	s.logger.Debug("answer submitted",
		zap.Int("round", snap.Round),
		zap.String("answer_id", answerID),
		zap.Bool("correct", correct),
		zap.Int("score", out.Score),
		zap.Int("streak", out.Streak),
	)

	if correct {
		s.announcer.Correct()
	} else {
		s.announcer.Wrong()
	}
	present(presenter, snap)

	return out
}

func (s *Session) ignored(answerID, reason string) entities.Outcome {
	s.logger.Debug("submission ignored",
		zap.String("answer_id", answerID),
		zap.String("reason", reason),
	)

	s.mu.Lock()
	defer s.mu.Unlock()
	return entities.Outcome{Score: s.score, Streak: s.streak}
}

// Leave ends the session from any state. Pending tasks are cancelled and
// score and streak are discarded.
func (s *Session) Leave() {
	s.mu.Lock()
	if s.state == entities.StateClosed {
		s.mu.Unlock()
		return
	}

	s.stopTimersLocked()
	s.epoch++
	s.score = 0
	s.streak = 0
	s.bestStreak = 0
	s.attempts = 0
	s.question = nil
	s.lockedAnswerID = ""
	s.state = entities.StateClosed

	snap, presenter := s.snapshotLocked(), s.presenter
	s.mu.Unlock()

	s.logger.Debug("session left")
	s.announcer.Silence()
	present(presenter, snap)
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() entities.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) advance(epoch uint64) {
	s.mu.Lock()
	if s.epoch != epoch || s.state != entities.StateLocked {
		s.mu.Unlock()
		return
	}

	s.advanceTimer = nil
	s.state = entities.StateAwaitingQuestion

	if err := s.nextQuestionLocked(); err != nil {
		s.stopTimersLocked()
		s.state = entities.StateClosed
		s.mu.Unlock()
		s.logger.Error("failed to generate next question", zap.Error(err))
		return
	}

	snap, presenter := s.snapshotLocked(), s.presenter
	s.mu.Unlock()

	present(presenter, snap)
}

func (s *Session) celebrate(epoch uint64) {
	s.mu.Lock()
	if s.epoch != epoch || s.state == entities.StateClosed {
		s.mu.Unlock()
		return
	}
	s.celebrateTimer = nil
	s.mu.Unlock()

	s.announcer.Celebrate()
}

func (s *Session) nextQuestionLocked() error {
	q, err := s.source.Generate(s.mode)
	if err != nil {
		return err
	}

	s.round++
	s.question = q
	s.lockedAnswerID = ""
	s.state = entities.StateUnanswered
	return nil
}

func (s *Session) advanceDelay() time.Duration {
	if s.mode.Detailed() {
		return s.cfg.DetailDelay
	}
	return s.cfg.IdentifyDelay
}

func (s *Session) stopTimersLocked() {
	if s.advanceTimer != nil {
		s.advanceTimer.Stop()
		s.advanceTimer = nil
	}
	if s.celebrateTimer != nil {
		s.celebrateTimer.Stop()
		s.celebrateTimer = nil
	}
}

func (s *Session) snapshotLocked() entities.Snapshot {
	return entities.Snapshot{
		SessionID:      s.id,
		Mode:           s.mode,
		State:          s.state,
		Round:          s.round,
		Score:          s.score,
		Streak:         s.streak,
		BestStreak:     s.bestStreak,
		Attempts:       s.attempts,
		Question:       s.question.Clone(),
		LockedAnswerID: s.lockedAnswerID,
	}
}

func present(p Presenter, snap entities.Snapshot) {
	if p != nil {
		p.Present(snap)
	}
}
