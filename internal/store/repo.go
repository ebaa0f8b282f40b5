package store

import (
	"context"
	"time"

	"github.com/bloatai/bloatiq/internal/quiz"
)

// QueryOpts configures list queries.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	From  time.Time // time >= From
	To    time.Time // time <= To
}

// Assessment is one scored quiz submission.
type Assessment struct {
	ID        string
	Sequence  int64
	CreatedAt time.Time
	Answers   quiz.Answers
	Result    quiz.Result
	Note      string
}

// AssessmentRepo persists scored quiz submissions.
type AssessmentRepo interface {
	// Save stores a new assessment, filling in ID, Sequence and CreatedAt
	// when they are zero.
	Save(ctx context.Context, a *Assessment) error

	// Get returns the assessment with the given ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*Assessment, error)

	// List returns assessments newest first.
	List(ctx context.Context, opts QueryOpts) ([]*Assessment, error)

	// Previous returns the assessment stored just before a, or nil.
	Previous(ctx context.Context, a *Assessment) (*Assessment, error)
}

// MaxRating is the top of the bloating rating scale.
const MaxRating = 10

// SymptomEntry is one meal with its bloating rating.
type SymptomEntry struct {
	ID       int
	Sequence int64
	LoggedAt time.Time
	Meal     string
	Rating   int // 0 (none) to MaxRating (worst)
	Note     string
}

// SymptomLogRepo persists the meal and bloating log.
type SymptomLogRepo interface {
	// Append validates and stores a new entry.
	Append(ctx context.Context, e *SymptomEntry) error

	// List returns entries newest first.
	List(ctx context.Context, opts QueryOpts) ([]*SymptomEntry, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLM request event.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// ModelUsage aggregates LLM events for one model.
type ModelUsage struct {
	Model        string
	Requests     int
	Failures     int
	InputTokens  int64
	OutputTokens int64
	LatencyMs    int64
}

// EventRepo records and queries LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMRequestEvent, error)

	// GetLLMEvent returns a single event by ID, or ErrNotFound.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)

	// UsageByModel aggregates token usage per model, ordered by model.
	UsageByModel(ctx context.Context) ([]ModelUsage, error)
}
