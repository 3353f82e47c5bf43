package store

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/shandysiswandi/goadvice/internal/pkg/pkgerror"
	"github.com/shandysiswandi/goadvice/internal/user/entity"
)

func TestInMemoryStoreCreateGetDelete(t *testing.T) {
	s := NewInMemoryStore()
	ctx := context.Background()

	user := entity.User{ID: 1, Name: "bob", Email: "bob@example.com"}
	if err := s.Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := s.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != user {
		t.Fatalf("unexpected user: %+v", got)
	}

	if err := s.Delete(ctx, 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, 1); !errors.Is(err, pkgerror.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := s.Delete(ctx, 1); !errors.Is(err, pkgerror.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}

	if err := s.Create(ctx, entity.User{ID: 2, Email: "bob@example.com"}); err != nil {
		t.Fatalf("expected email to be free after delete: %v", err)
	}
}

func TestInMemoryStoreDuplicateEmail(t *testing.T) {
	s := NewInMemoryStore()
	ctx := context.Background()

	if err := s.Create(ctx, entity.User{ID: 1, Email: "bob@example.com"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	err := s.Create(ctx, entity.User{ID: 2, Email: " BOB@example.com "})
	var gerr *pkgerror.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected business error, got %T", err)
	}
	if got := gerr.Code().Code(); got != "USER_EMAIL_TAKEN" {
		t.Fatalf("unexpected code: %q", got)
	}
	if got := gerr.StatusCode(); got != http.StatusConflict {
		t.Fatalf("unexpected status: %d", got)
	}
}

func TestInMemoryStoreDuplicateID(t *testing.T) {
	s := NewInMemoryStore()
	ctx := context.Background()

	if err := s.Create(ctx, entity.User{ID: 1, Email: "a@example.com"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	err := s.Create(ctx, entity.User{ID: 1, Email: "b@example.com"})
	var gerr *pkgerror.Error
	if !errors.As(err, &gerr) || gerr.Code() != pkgerror.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestInMemoryStoreConcurrentCreate(t *testing.T) {
	s := NewInMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			errs <- s.Create(ctx, entity.User{ID: id, Email: "same@example.com"})
		}(int64(i))
	}
	wg.Wait()
	close(errs)

	ok := 0
	for err := range errs {
		if err == nil {
			ok++
		}
	}
	if ok != 1 {
		t.Fatalf("expected exactly one successful create, got %d", ok)
	}
}
