package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"itinera/internal/llm"
	"itinera/internal/model"
	"itinera/internal/prompt"
	"itinera/internal/repository"
)

var (
	ErrNoDestinations = errors.New("no destinations provided")
	ErrTaskNotFound   = errors.New("task not found")
)

// minLineItem is the shortest free-text line accepted as a recommendation.
const minLineItem = 10

var quotedRe = regexp.MustCompile(`"(.*?)"`)

var arrayRes = map[prompt.Kind]*regexp.Regexp{}

func init() {
	for _, k := range prompt.Kinds {
		arrayRes[k] = regexp.MustCompile(`(?s)"` + string(k) + `"\s*:\s*\[(.*?)\]`)
	}
}

// DestinationTaskService researches destinations in the background.
type DestinationTaskService interface {
	// Process records a task and starts one worker per destination. It returns immediately.
	Process(ctx context.Context, destinations []model.DestinationRequest) (*model.Task, error)
	Status(ctx context.Context, id string) (*model.Task, error)
	// Wait blocks until all started workers have finished.
	Wait()
}

type destinationTaskService struct {
	gen   llm.Generator
	tasks repository.TaskRepository
	model string
	log   *zap.Logger
	now   func() time.Time
	wg    sync.WaitGroup
}

// NewDestinationTaskService builds the service. textModel selects the Gemini model used for research.
func NewDestinationTaskService(gen llm.Generator, tasks repository.TaskRepository, textModel string, log *zap.Logger) DestinationTaskService {
	if log == nil {
		log = zap.NewNop()
	}
	return &destinationTaskService{gen: gen, tasks: tasks, model: textModel, log: log, now: time.Now}
}

func (s *destinationTaskService) Process(ctx context.Context, destinations []model.DestinationRequest) (*model.Task, error) {
	if len(destinations) == 0 {
		return nil, ErrNoDestinations
	}
	for i := range destinations {
		if err := destinations[i].Validate(); err != nil {
			var ve *model.ValidationError
			if errors.As(err, &ve) {
				ve.Field = fmt.Sprintf("destinations[%d].%s", i, ve.Field)
			}
			return nil, err
		}
	}

	task := &model.Task{
		TaskID:       uuid.NewString(),
		Status:       model.StatusProcessing,
		Message:      fmt.Sprintf("Started processing %d destinations in background", len(destinations)),
		CreatedAt:    unixSeconds(s.now()),
		Destinations: make([]model.DestinationResult, len(destinations)),
	}
	for i, d := range destinations {
		task.Destinations[i] = model.DestinationResult{
			Place:            d.Place,
			Days:             d.Days,
			Budget:           d.Budget,
			Activities:       []string{},
			Food:             []string{},
			Accommodations:   []string{},
			ProcessingStatus: model.StatusProcessing,
		}
	}
	if err := s.tasks.Save(ctx, task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}
	s.log.Info("destination task started", zap.String("task_id", task.TaskID), zap.Int("destinations", len(destinations)))

	// Workers outlive the request but keep its trace context.
	workerCtx := context.WithoutCancel(ctx)
	for i, d := range destinations {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.processDestination(workerCtx, task.TaskID, i, d)
		}()
	}
	return task.Clone(), nil
}

func (s *destinationTaskService) processDestination(ctx context.Context, taskID string, idx int, d model.DestinationRequest) {
	lists := make(map[prompt.Kind][]string, len(prompt.Kinds))
	var errs []error
	for _, kind := range prompt.Kinds {
		text, err := s.gen.GenerateText(ctx, llm.TextRequest{Model: s.model, Prompt: prompt.Destination(kind, d)})
		if err != nil {
			s.log.Warn("destination research failed",
				zap.String("task_id", taskID),
				zap.String("place", d.Place),
				zap.String("kind", string(kind)),
				zap.Error(err))
			lists[kind] = []string{fmt.Sprintf("Error getting %s: %v", kind, err)}
			errs = append(errs, err)
			continue
		}
		lists[kind] = ParseSimpleList(text, kind)
	}

	err := s.tasks.Update(ctx, taskID, func(t *model.Task) {
		r := &t.Destinations[idx]
		r.Activities = lists[prompt.Activities]
		r.Food = lists[prompt.Food]
		r.Accommodations = lists[prompt.Accommodations]
		r.ProcessingStatus = model.StatusCompleted
		if len(errs) == len(prompt.Kinds) {
			msg := errs[0].Error()
			r.ProcessingStatus = model.StatusError
			r.Error = &msg
		}
		finalize(t)
	})
	if err != nil {
		// The task expired while the worker ran.
		s.log.Warn("destination task update failed", zap.String("task_id", taskID), zap.Error(err))
	}
}

// finalize sets the task status once no destination is still processing.
func finalize(t *model.Task) {
	failed := 0
	for _, d := range t.Destinations {
		switch d.ProcessingStatus {
		case model.StatusProcessing, model.StatusPending:
			return
		case model.StatusError:
			failed++
		}
	}
	switch {
	case failed == len(t.Destinations):
		t.Status = model.StatusError
		t.Message = fmt.Sprintf("Failed to process %d destinations", failed)
	case failed > 0:
		t.Status = model.StatusCompleted
		t.Message = fmt.Sprintf("Processed %d destinations, %d failed", len(t.Destinations)-failed, failed)
	default:
		t.Status = model.StatusCompleted
		t.Message = fmt.Sprintf("Successfully processed %d destinations", len(t.Destinations))
	}
}

func (s *destinationTaskService) Status(ctx context.Context, id string) (*model.Task, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrIDRequired
	}
	t, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *destinationTaskService) Wait() {
	s.wg.Wait()
}

// ParseSimpleList pulls the quoted strings out of a `"kind": [...]` array in text.
// Without such an array it falls back to the text's lines, quotes trimmed, longer than ten characters.
func ParseSimpleList(text string, kind prompt.Kind) []string {
	text = strings.TrimSpace(text)
	items := []string{}

	if re, ok := arrayRes[kind]; ok {
		if m := re.FindStringSubmatch(text); m != nil {
			for _, q := range quotedRe.FindAllStringSubmatch(m[1], -1) {
				items = append(items, q[1])
			}
			return items
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.Trim(strings.Trim(strings.TrimSpace(line), `"`), "'")
		if utf8.RuneCountInString(line) > minLineItem {
			items = append(items, line)
		}
	}
	return items
}

func unixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
