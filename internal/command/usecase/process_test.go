package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"homestead-voice-assistant/internal/command"
	"homestead-voice-assistant/internal/command/repository"
	"homestead-voice-assistant/internal/command/usecase"
	"homestead-voice-assistant/internal/model"
	"homestead-voice-assistant/internal/parser"
	"homestead-voice-assistant/pkg/datemath"
	"homestead-voice-assistant/pkg/speech"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockRepository struct {
	projects map[string]model.Project

	lastTaskOpt    *repository.CreateTaskOptions
	lastItemOpt    *repository.CreateInventoryItemOptions
	lastProjectOpt *repository.CreateProjectOptions
	getCalls       int
	failCreate     bool
}

func (m *mockRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	if m.failCreate {
		return model.Task{}, errors.New("store error")
	}
	m.lastTaskOpt = &opt
	return model.Task{ID: "t1", Title: opt.Title, Priority: opt.Priority, DueDate: opt.DueDate,
		IsProjectTask: opt.IsProjectTask, ProjectID: opt.ProjectID}, nil
}

func (m *mockRepository) CreateInventoryItem(ctx context.Context, opt repository.CreateInventoryItemOptions) (model.InventoryItem, error) {
	if m.failCreate {
		return model.InventoryItem{}, errors.New("store error")
	}
	m.lastItemOpt = &opt
	return model.InventoryItem{ID: "i1", Title: opt.Title, ItemType: opt.ItemType,
		QuantityNeeded: opt.QuantityNeeded, QuantityOwned: opt.QuantityOwned,
		QuantityBorrowed: opt.QuantityBorrowed}, nil
}

func (m *mockRepository) CreateProject(ctx context.Context, opt repository.CreateProjectOptions) (model.Project, error) {
	m.lastProjectOpt = &opt
	return model.Project{ID: "p-new", Title: opt.Title, Location: opt.Location,
		PropertyStatus: opt.PropertyStatus}, nil
}

func (m *mockRepository) GetProject(ctx context.Context, id string) (model.Project, error) {
	m.getCalls++
	p, ok := m.projects[id]
	if !ok {
		return model.Project{}, repository.ErrProjectNotFound
	}
	return p, nil
}

type mockSynthesizer struct {
	lastText string
	err      error
}

func (m *mockSynthesizer) Synthesize(ctx context.Context, req speech.SynthesizeRequest) (speech.Audio, error) {
	m.lastText = req.Text
	if m.err != nil {
		return speech.Audio{}, m.err
	}
	return speech.Audio{URL: "https://audio.local/c.mp3"}, nil
}

var testNow = time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday

func newTestUseCase(t *testing.T, repo *mockRepository, synth speech.Synthesizer) command.UseCase {
	t.Helper()
	dm, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("datemath.NewParser: %v", err)
	}
	p := parser.New(dm, func() time.Time { return testNow })
	return usecase.New(&mockLogger{}, p, repo, nil, synth, "UTC")
}

func TestProcessEmptyTranscript(t *testing.T) {
	uc := newTestUseCase(t, &mockRepository{}, nil)

	_, err := uc.Process(context.Background(), model.Scope{UserID: "u1"}, command.ProcessInput{Transcript: "   "})
	if !errors.Is(err, command.ErrEmptyTranscript) {
		t.Fatalf("err = %v, want ErrEmptyTranscript", err)
	}
}

func TestProcessInventoryCommand(t *testing.T) {
	repo := &mockRepository{}
	synth := &mockSynthesizer{}
	uc := newTestUseCase(t, repo, synth)

	out, err := uc.Process(context.Background(), model.Scope{UserID: "u1"}, command.ProcessInput{
		Transcript: "add 5 shovels to inventory",
	})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if out.Command.Intent != model.IntentInventory || out.Item == nil {
		t.Fatalf("output = %+v, want inventory", out)
	}
	if out.Item.Title != "shovels" {
		t.Errorf("Item.Title = %q", out.Item.Title)
	}
	if repo.lastItemOpt == nil || repo.lastItemOpt.QuantityNeeded == nil || *repo.lastItemOpt.QuantityNeeded != 5 {
		t.Errorf("CreateInventoryItem options = %+v", repo.lastItemOpt)
	}
	if out.Confirmation == "" {
		t.Errorf("expected a confirmation message")
	}
	if out.AudioURL != "https://audio.local/c.mp3" {
		t.Errorf("AudioURL = %q", out.AudioURL)
	}
	if synth.lastText != out.Confirmation {
		t.Errorf("synthesized %q, confirmation %q", synth.lastText, out.Confirmation)
	}
}

func TestProcessTaskInsideProject(t *testing.T) {
	repo := &mockRepository{projects: map[string]model.Project{
		"p1": {ID: "p1", Title: "Orchard"},
	}}
	uc := newTestUseCase(t, repo, nil)

	out, err := uc.Process(context.Background(), model.Scope{UserID: "u1"}, command.ProcessInput{
		Transcript: "install irrigation",
		ProjectID:  "p1",
	})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if out.Command.Intent != model.IntentTask || out.Task == nil {
		t.Fatalf("output = %+v, want task", out)
	}
	if !out.Task.IsProjectTask || out.Task.ProjectID != "p1" {
		t.Errorf("project binding = (%v, %q)", out.Task.IsProjectTask, out.Task.ProjectID)
	}
	if out.Task.Priority != model.PriorityHigh {
		t.Errorf("Priority = %v, want high", out.Task.Priority)
	}
	if out.AudioURL != "" {
		t.Errorf("AudioURL = %q, want empty without a synthesizer", out.AudioURL)
	}
}

func TestProcessProjectContextCached(t *testing.T) {
	repo := &mockRepository{projects: map[string]model.Project{
		"p1": {ID: "p1", Title: "Orchard"},
	}}
	uc := newTestUseCase(t, repo, nil)
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	for i := 0; i < 3; i++ {
		if _, err := uc.Process(ctx, sc, command.ProcessInput{Transcript: "prune the apple trees", ProjectID: "p1"}); err != nil {
			t.Fatalf("Process #%d: %v", i, err)
		}
	}
	if repo.getCalls != 1 {
		t.Errorf("GetProject calls = %d, want 1 (cached afterwards)", repo.getCalls)
	}
}

func TestProcessUnknownProject(t *testing.T) {
	uc := newTestUseCase(t, &mockRepository{}, nil)

	_, err := uc.Process(context.Background(), model.Scope{UserID: "u1"}, command.ProcessInput{
		Transcript: "install irrigation",
		ProjectID:  "missing",
	})
	if !errors.Is(err, command.ErrProjectNotFound) {
		t.Fatalf("err = %v, want ErrProjectNotFound", err)
	}
}

func TestProcessBusinessPlan(t *testing.T) {
	repo := &mockRepository{projects: map[string]model.Project{
		"p1": {ID: "p1", Title: "Orchard"},
	}}
	uc := newTestUseCase(t, repo, nil)

	out, err := uc.Process(context.Background(), model.Scope{UserID: "u1"}, command.ProcessInput{
		Transcript: "business plan for funding",
		ProjectID:  "p1",
	})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if out.Command.Intent != model.IntentBusinessPlan || out.BusinessPlan == nil {
		t.Fatalf("output = %+v, want business plan", out)
	}
	if out.BusinessPlan.ProjectID != "p1" || out.BusinessPlan.Query != "business plan for funding" {
		t.Errorf("BusinessPlan = %+v", out.BusinessPlan)
	}
	if out.Task != nil || out.Item != nil || out.Project != nil {
		t.Errorf("business plan must not create records: %+v", out)
	}
}

func TestProcessExecuteFailure(t *testing.T) {
	uc := newTestUseCase(t, &mockRepository{failCreate: true}, nil)

	_, err := uc.Process(context.Background(), model.Scope{UserID: "u1"}, command.ProcessInput{
		Transcript: "add 5 shovels to inventory",
	})
	if !errors.Is(err, command.ErrExecuteFailed) {
		t.Fatalf("err = %v, want ErrExecuteFailed", err)
	}
}

func TestProcessSynthesisFailureIsNonFatal(t *testing.T) {
	synth := &mockSynthesizer{err: errors.New("tts down")}
	uc := newTestUseCase(t, &mockRepository{}, synth)

	out, err := uc.Process(context.Background(), model.Scope{UserID: "u1"}, command.ProcessInput{
		Transcript: "add 5 shovels to inventory",
	})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if out.AudioURL != "" {
		t.Errorf("AudioURL = %q, want empty on synthesis failure", out.AudioURL)
	}
	if out.Confirmation == "" {
		t.Errorf("confirmation text must survive synthesis failure")
	}
}
