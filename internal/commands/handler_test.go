package commands_test

import (
	"context"
	"errors"
	"testing"

	command "github.com/goliatone/go-command"
	goerrors "github.com/goliatone/go-errors"

	"github.com/ecatuogno1/glassvision/internal/commands"
)

type noteMessage struct {
	Body string
}

func (noteMessage) Type() string { return "note.record" }

func (m noteMessage) Validate() error {
	if m.Body == "" {
		return errors.New("body is required")
	}
	return nil
}

func TestExecuteTagsValidationFailures(t *testing.T) {
	handler := commands.NewHandler(func(ctx context.Context, msg noteMessage) error {
		t.Fatal("invalid messages must never reach the wrapped function")
		return nil
	})

	err := handler.Execute(context.Background(), noteMessage{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestExecuteTagsExecutionFailures(t *testing.T) {
	boom := errors.New("storage offline")
	handler := commands.NewHandler(func(ctx context.Context, msg noteMessage) error {
		return boom
	})

	err := handler.Execute(context.Background(), noteMessage{Body: "hello"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped execution error, got %v", err)
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestExecuteKeepsExistingCategory(t *testing.T) {
	tagged := goerrors.Wrap(errors.New("bad payload"), goerrors.CategoryValidation, "payload rejected")
	handler := commands.NewHandler(func(ctx context.Context, msg noteMessage) error {
		return tagged
	})

	err := handler.Execute(context.Background(), noteMessage{Body: "hello"})
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("pre-tagged errors must keep their category, got %v", err)
	}
}

func TestExecuteTagsCanceledContext(t *testing.T) {
	handler := commands.NewHandler(func(ctx context.Context, msg noteMessage) error {
		t.Fatal("canceled contexts must never reach the wrapped function")
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := handler.Execute(ctx, noteMessage{Body: "hello"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

var _ command.Message = noteMessage{}
