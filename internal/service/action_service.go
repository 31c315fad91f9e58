package service

import (
	"context"
	"errors"
	"time"

	"github.com/ecoaction/ecopoints-backend/internal/ledger"
	"github.com/google/uuid"
)

// Points awarded by the eco-action flow.
const (
	StepRewardPoints  = 100
	PhotoRewardPoints = 50
)

var ErrUnknownStep = errors.New("unknown step")

// Step is one stage of the eco-action flow.
type Step struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

// Reward is a prize tier unlocked by reaching the listed balance.
// Spending happens in the shop; tiers are informational.
type Reward struct {
	Title  string `json:"title"`
	Points int    `json:"points"`
	Icon   string `json:"icon"`
}

// StepResult reports a completed step and the credited balance.
type StepResult struct {
	Step    Step `json:"step"`
	Awarded int  `json:"awarded"`
	Balance int  `json:"balance"`
}

// PhotoReceipt acknowledges an uploaded waste-sorting photo.
type PhotoReceipt struct {
	ID         string    `json:"id"`
	Awarded    int       `json:"awarded"`
	Balance    int       `json:"balance"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// ActionService drives the gamified campaign flow: completing a step or
// uploading a photo credits the points ledger.
type ActionService struct {
	ledger  *ledger.Ledger
	steps   []Step
	rewards []Reward
}

// NewActionService creates a new eco-action service
func NewActionService(l *ledger.Ledger) *ActionService {
	return &ActionService{
		ledger: l,
		steps: []Step{
			{
				ID:          1,
				Title:       "Chiqindilarni Ajrating",
				Description: "Plastik, qog'oz va organik chiqindilarni alohida ajrating",
				Action:      "Boshlash",
			},
			{
				ID:          2,
				Title:       "Suratga Oling",
				Description: "Ajratgan chiqindilaringizni suratga olib yuklang",
				Action:      "Surat Yuklash",
			},
			{
				ID:          3,
				Title:       "Rag'batlantirish",
				Description: "Ishtirok uchun ball to'plang va sovrinlar oling",
				Action:      "Ball Olish",
			},
		},
		rewards: []Reward{
			{Title: "Ekologik Sertifikat", Points: 500, Icon: "🏆"},
			{Title: "Daraxt Ekish", Points: 1000, Icon: "🌱"},
		},
	}
}

// Steps returns the campaign steps in order.
func (s *ActionService) Steps() []Step {
	steps := make([]Step, len(s.steps))
	copy(steps, s.steps)
	return steps
}

// Rewards returns the static reward tiers.
func (s *ActionService) Rewards() []Reward {
	rewards := make([]Reward, len(s.rewards))
	copy(rewards, s.rewards)
	return rewards
}

// CompleteStep credits the step reward and returns the new balance.
func (s *ActionService) CompleteStep(ctx context.Context, stepID int) (*StepResult, error) {
	var step *Step
	for i := range s.steps {
		if s.steps[i].ID == stepID {
			step = &s.steps[i]
			break
		}
	}
	if step == nil {
		return nil, ErrUnknownStep
	}

	balance, err := s.ledger.Credit(ctx, StepRewardPoints)
	if err != nil {
		return nil, err
	}

	return &StepResult{
		Step:    *step,
		Awarded: StepRewardPoints,
		Balance: balance,
	}, nil
}

// UploadPhoto records a photo upload and credits the photo reward.
func (s *ActionService) UploadPhoto(ctx context.Context) (*PhotoReceipt, error) {
	balance, err := s.ledger.Credit(ctx, PhotoRewardPoints)
	if err != nil {
		return nil, err
	}

	return &PhotoReceipt{
		ID:         uuid.New().String(),
		Awarded:    PhotoRewardPoints,
		Balance:    balance,
		UploadedAt: time.Now().UTC(),
	}, nil
}
