package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/core/domain"
	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/core/ports"
)

// ModelCandidates is the ordered fallback list of Gemini models. Each is
// tried once per decomposition, first success wins; this is not a retry
// loop.
var ModelCandidates = []string{
	"gemini-2.0-flash-exp",
	"gemini-2.0-flash",
	"gemini-2.0-flash-thinking-exp",
	"gemini-1.5-flash-latest",
	"gemini-1.5-pro-latest",
}

const promptTemplate = `あなたは優秀なタスク管理アシスタントです。
以下のユーザーの入力文を解析し、具体的なタスク（ToDo）のリストに変換してください。
複合的な指示（例: 「AをしてからBをする」）は、必ず複数のタスクに分割してください。

出力は以下のJSON形式の配列のみを返してください。余計な説明やマークダウン記法（` + "```json" + `など）は不要です。

[
  {
    "title": "タスクの内容（具体的かつ簡潔に）",
    "category": "タスクのカテゴリ（例: 仕事, 個人, 買い物, 健康, その他）",
    "date": "YYYY-MM-DD形式の日付（明記されていない場合はnull）",
    "time": "HH:mm形式の時間（明記されていない場合はnull）"
  }
]

今日の日付は %s です。「明日」「来週」などの相対的な表現はこの日付を基準に計算してください。

ユーザー入力:
"%s"`

// DecomposeService turns free-form text into tasks through the model,
// walking the candidate list until one answers with a parseable array.
type DecomposeService struct {
	repo   ports.StateRepository
	gen    ports.TextGenerator
	tasks  ports.TaskService
	models []string
	now    func() time.Time

	busy sync.Mutex
}

// draftPayload is the raw shape one array element is expected to have.
// Date and time may be JSON null.
type draftPayload struct {
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Date     *string `json:"date"`
	Time     *string `json:"time"`
}

var _ ports.DecomposeService = (*DecomposeService)(nil)

// DecomposeOption adjusts a DecomposeService, mainly for tests.
type DecomposeOption func(*DecomposeService)

// WithModels replaces the candidate list.
func WithModels(models []string) DecomposeOption {
	return func(s *DecomposeService) { s.models = models }
}

// WithClock replaces the reference-date source.
func WithClock(now func() time.Time) DecomposeOption {
	return func(s *DecomposeService) { s.now = now }
}

func NewDecomposeService(repo ports.StateRepository, gen ports.TextGenerator, tasks ports.TaskService, opts ...DecomposeOption) *DecomposeService {
	s := &DecomposeService{
		repo:   repo,
		gen:    gen,
		tasks:  tasks,
		models: ModelCandidates,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Decompose runs the text through the first model candidate that
// succeeds, appends the resulting drafts to the store as a batch and
// returns the created tasks. Only one decomposition runs at a time.
func (s *DecomposeService) Decompose(ctx context.Context, text string) ([]domain.Task, error) {
	if !s.busy.TryLock() {
		return nil, domain.ErrDecomposeInProgress
	}
	defer s.busy.Unlock()

	apiKey, err := s.repo.GetSetting(ctx, ports.SettingGeminiAPIKey)
	if err != nil {
		return nil, err
	}
	if apiKey == "" {
		return nil, domain.ErrMissingAPIKey
	}

	prompt := fmt.Sprintf(promptTemplate, s.now().Format("2006-01-02"), text)

	var lastErr error
	for _, model := range s.models {
		raw, err := s.gen.GenerateContent(ctx, model, apiKey, prompt)
		if err != nil {
			zap.L().Warn("model candidate failed", zap.String("model", model), zap.Error(err))
			lastErr = err
			continue
		}

		drafts, err := parseDrafts(raw)
		if err != nil {
			zap.L().Warn("model candidate returned unusable output", zap.String("model", model), zap.Error(err))
			lastErr = err
			continue
		}

		zap.L().Info("decomposition succeeded", zap.String("model", model), zap.Int("drafts", len(drafts)))
		return s.tasks.CreateMany(ctx, drafts)
	}

	return nil, &domain.GenerationError{Last: lastErr}
}

// parseDrafts strips any markdown fencing around the response and parses
// it as a draft array, normalizing each element: missing titles and
// categories get their placeholders, null dates and times become empty
// strings.
func parseDrafts(raw string) ([]domain.TaskDraft, error) {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	var payloads []draftPayload
	if err := json.Unmarshal([]byte(cleaned), &payloads); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	drafts := make([]domain.TaskDraft, 0, len(payloads))
	for _, p := range payloads {
		draft := domain.TaskDraft{
			Title:    p.Title,
			Category: p.Category,
		}
		if draft.Title == "" {
			draft.Title = domain.UntitledTask
		}
		if draft.Category == "" {
			draft.Category = domain.CategoryUncategorized
		}
		if p.Date != nil {
			draft.Date = *p.Date
		}
		if p.Time != nil {
			draft.Time = *p.Time
		}
		drafts = append(drafts, draft)
	}
	return drafts, nil
}
