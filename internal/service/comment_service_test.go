package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/kwon0144/HarborHub/internal/dto"
)

func TestCreateAndListComments(t *testing.T) {
	repos := newTestRepos()
	seedResource(repos, "med-001")
	svc := NewCommentService(repos, zap.NewNop())

	created, err := svc.Create(context.Background(), &dto.CreateCommentRequest{
		ResourceID: "med-001",
		Comment:    "  Really helped me wind down.  ",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Comment != "Really helped me wind down." {
		t.Errorf("comment should be trimmed, got %q", created.Comment)
	}

	got, err := svc.ListByResource(context.Background(), "med-001")
	if err != nil {
		t.Fatalf("ListByResource: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("expected 1 comment, got %d", len(got))
	}
}

func TestCreateCommentValidation(t *testing.T) {
	repos := newTestRepos()
	seedResource(repos, "med-001")
	svc := NewCommentService(repos, zap.NewNop())

	if _, err := svc.Create(context.Background(), &dto.CreateCommentRequest{ResourceID: "med-001", Comment: "   "}); !errors.Is(err, ErrCommentEmpty) {
		t.Errorf("got %v, want ErrCommentEmpty", err)
	}

	long := strings.Repeat("x", 1001)
	if _, err := svc.Create(context.Background(), &dto.CreateCommentRequest{ResourceID: "med-001", Comment: long}); !errors.Is(err, ErrCommentTooLong) {
		t.Errorf("got %v, want ErrCommentTooLong", err)
	}

	// Exactly at the limit is fine.
	ok := strings.Repeat("x", 1000)
	if _, err := svc.Create(context.Background(), &dto.CreateCommentRequest{ResourceID: "med-001", Comment: ok}); err != nil {
		t.Errorf("1000-char comment should pass, got %v", err)
	}

	if _, err := svc.Create(context.Background(), &dto.CreateCommentRequest{ResourceID: "ghost", Comment: "hello"}); !errors.Is(err, ErrResourceNotFound) {
		t.Errorf("got %v, want ErrResourceNotFound", err)
	}
}
