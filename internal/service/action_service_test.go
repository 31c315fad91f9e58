package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ecoaction/ecopoints-backend/internal/ledger"
	"github.com/ecoaction/ecopoints-backend/internal/storage"
)

func TestActionService_CompleteStep(t *testing.T) {
	l := ledger.New(storage.NewMemoryStore())
	svc := NewActionService(l)
	ctx := context.Background()

	result, err := svc.CompleteStep(ctx, 1)
	if err != nil {
		t.Fatalf("CompleteStep() unexpected error = %v", err)
	}

	if result.Step.ID != 1 {
		t.Errorf("step ID = %d, want 1", result.Step.ID)
	}
	if result.Awarded != StepRewardPoints {
		t.Errorf("awarded = %d, want %d", result.Awarded, StepRewardPoints)
	}
	if result.Balance != 100 {
		t.Errorf("balance = %d, want 100", result.Balance)
	}

	// Completing another step keeps accumulating
	result, err = svc.CompleteStep(ctx, 2)
	if err != nil {
		t.Fatalf("CompleteStep() unexpected error = %v", err)
	}
	if result.Balance != 200 {
		t.Errorf("balance after second step = %d, want 200", result.Balance)
	}
}

func TestActionService_CompleteStep_Unknown(t *testing.T) {
	l := ledger.New(storage.NewMemoryStore())
	svc := NewActionService(l)
	ctx := context.Background()

	if _, err := svc.CompleteStep(ctx, 7); !errors.Is(err, ErrUnknownStep) {
		t.Fatalf("CompleteStep(7) error = %v, want ErrUnknownStep", err)
	}

	// No credit on failure
	balance, err := l.Balance(ctx)
	if err != nil {
		t.Fatalf("Balance() unexpected error = %v", err)
	}
	if balance != 0 {
		t.Errorf("balance = %d, want 0", balance)
	}
}

func TestActionService_UploadPhoto(t *testing.T) {
	l := ledger.New(storage.NewMemoryStore())
	svc := NewActionService(l)
	ctx := context.Background()

	first, err := svc.UploadPhoto(ctx)
	if err != nil {
		t.Fatalf("UploadPhoto() unexpected error = %v", err)
	}
	if first.ID == "" {
		t.Error("receipt ID is empty")
	}
	if first.Awarded != PhotoRewardPoints {
		t.Errorf("awarded = %d, want %d", first.Awarded, PhotoRewardPoints)
	}
	if first.Balance != 50 {
		t.Errorf("balance = %d, want 50", first.Balance)
	}
	if first.UploadedAt.IsZero() {
		t.Error("uploadedAt is zero")
	}

	second, err := svc.UploadPhoto(ctx)
	if err != nil {
		t.Fatalf("UploadPhoto() unexpected error = %v", err)
	}
	if second.ID == first.ID {
		t.Error("receipt IDs are not unique")
	}
	if second.Balance != 100 {
		t.Errorf("balance after second upload = %d, want 100", second.Balance)
	}
}

func TestActionService_StaticData(t *testing.T) {
	svc := NewActionService(ledger.New(storage.NewMemoryStore()))

	steps := svc.Steps()
	if len(steps) != 3 {
		t.Fatalf("steps count = %d, want 3", len(steps))
	}
	if steps[0].Title != "Chiqindilarni Ajrating" {
		t.Errorf("first step title = %s", steps[0].Title)
	}

	rewards := svc.Rewards()
	if len(rewards) != 2 {
		t.Fatalf("rewards count = %d, want 2", len(rewards))
	}
	if rewards[0].Points != 500 || rewards[1].Points != 1000 {
		t.Errorf("reward tiers = %d, %d, want 500, 1000", rewards[0].Points, rewards[1].Points)
	}

	// Mutating the returned slice must not affect the service
	steps[0].Title = "changed"
	if svc.Steps()[0].Title != "Chiqindilarni Ajrating" {
		t.Error("Steps() does not return a copy")
	}
}
