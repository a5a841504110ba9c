package usecase

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/eslsoft/blinkvocab/internal/entity"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// QuizSource selects where session words come from.
type QuizSource string

const (
	SourceAllWords QuizSource = "all"
	SourceMistakes QuizSource = "mistakes"
)

const (
	defaultQuestionCount = 10
	maxQuestionCount     = 50
	coinAwardMax         = 5 // correct answers earn 1..coinAwardMax coins
)

// QuizSession is one typed-spelling run. Sessions live in memory only.
type QuizSession struct {
	ID          string     `json:"id"`
	Source      QuizSource `json:"source"`
	Words       []string   `json:"words"`
	Index       int        `json:"index"`
	Score       int        `json:"score"`
	CoinsEarned int        `json:"coinsEarned"`
}

// Done reports whether every question has been answered.
func (s *QuizSession) Done() bool { return s.Index >= len(s.Words) }

// AnswerResult is the outcome of a single submitted answer.
type AnswerResult struct {
	Word        string `json:"word"`
	Correct     bool   `json:"correct"`
	CoinsEarned int    `json:"coinsEarned"`
	Score       int    `json:"score"`
	Remaining   int    `json:"remaining"`
	Done        bool   `json:"done"`
	NextWord    string `json:"nextWord,omitempty"`
}

// StartOptions tunes session creation.
type StartOptions struct {
	QuestionCount int
	Source        QuizSource
	// IncludeUpcoming opts into reviewing not-yet-due words when the bank has
	// entries but nothing is due.
	IncludeUpcoming bool
}

// QuizUsecase drives quiz sessions: word selection per source mode, answer
// checking, coin awards and progress updates.
type QuizUsecase interface {
	Start(ctx context.Context, opts StartOptions) (*QuizSession, error)
	Submit(ctx context.Context, sessionID, answer string) (*AnswerResult, error)
	Get(sessionID string) (*QuizSession, error)
}

// NewQuizUsecase wires the quiz flow to the progress store.
func NewQuizUsecase(progress ProgressUsecase) QuizUsecase {
	return &quizUsecase{
		progress: progress,
		clock:    time.Now,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		sessions: make(map[string]*QuizSession),
	}
}

type quizUsecase struct {
	progress ProgressUsecase
	clock    func() time.Time
	rng      *rand.Rand

	mu       sync.Mutex
	sessions map[string]*QuizSession
}

func (u *quizUsecase) Start(ctx context.Context, opts StartOptions) (*QuizSession, error) {
	count := opts.QuestionCount
	if count <= 0 {
		count = defaultQuestionCount
	}
	if count > maxQuestionCount {
		count = maxQuestionCount
	}

	pool, err := u.selectPool(opts)
	if err != nil {
		return nil, err
	}
	if len(pool) > count {
		pool = pool[:count]
	}

	session := &QuizSession{
		ID:     uuid.NewString(),
		Source: opts.Source,
		Words:  pool,
	}

	u.mu.Lock()
	u.sessions[session.ID] = session
	u.mu.Unlock()
	return session, nil
}

// selectPool builds the ordered candidate list. Smart-review order is most
// overdue first; the all-words pool is shuffled.
func (u *quizUsecase) selectPool(opts StartOptions) ([]string, error) {
	if opts.Source != SourceMistakes {
		return u.shuffledWordList(), nil
	}

	bank := u.progress.Snapshot().MistakeBank
	if len(bank) == 0 {
		// Empty bank: substitute the full reference list.
		return u.shuffledWordList(), nil
	}

	now := u.clock()
	due := DueRecords(bank, now)
	if len(due) == 0 {
		if !opts.IncludeUpcoming {
			return nil, entity.ErrNoDueWords
		}
		due = UpcomingRecords(bank)
	}
	return lo.Map(due, func(r entity.MistakeRecord, _ int) string { return r.Word }), nil
}

func (u *quizUsecase) shuffledWordList() []string {
	pool := append([]string{}, entity.WordList...)
	u.mu.Lock()
	u.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	u.mu.Unlock()
	return pool
}

func (u *quizUsecase) Submit(ctx context.Context, sessionID, answer string) (*AnswerResult, error) {
	u.mu.Lock()
	session, ok := u.sessions[sessionID]
	if !ok {
		u.mu.Unlock()
		return nil, entity.ErrSessionNotFound
	}
	if session.Done() {
		u.mu.Unlock()
		return nil, entity.ErrSessionFinished
	}
	expected := session.Words[session.Index]
	award := u.rng.Intn(coinAwardMax) + 1
	u.mu.Unlock()

	correct := entity.NormalizeWordToken(answer) == entity.NormalizeWordToken(expected)

	if err := u.progress.RecordQuizAnswer(ctx, expected, correct); err != nil {
		return nil, err
	}
	if !correct {
		award = 0
	} else if err := u.progress.AddCoins(ctx, award); err != nil {
		return nil, err
	}

	u.mu.Lock()
	session.Index++
	if correct {
		session.Score++
		session.CoinsEarned += award
	}
	result := &AnswerResult{
		Word:        expected,
		Correct:     correct,
		CoinsEarned: award,
		Score:       session.Score,
		Remaining:   len(session.Words) - session.Index,
		Done:        session.Done(),
	}
	if !session.Done() {
		result.NextWord = session.Words[session.Index]
	} else {
		delete(u.sessions, session.ID)
	}
	u.mu.Unlock()

	return result, nil
}

func (u *quizUsecase) Get(sessionID string) (*QuizSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	session, ok := u.sessions[sessionID]
	if !ok {
		return nil, entity.ErrSessionNotFound
	}
	copy := *session
	copy.Words = append([]string{}, session.Words...)
	return &copy, nil
}
