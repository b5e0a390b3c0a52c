package usecase

import (
	"context"
	"fmt"
	"time"

	"golf-lesson-booking/internal/data/entity"
	"golf-lesson-booking/internal/data/repository"
	"golf-lesson-booking/internal/dto/request"
	"golf-lesson-booking/internal/dto/response"
	"golf-lesson-booking/pkg/utils"

	"go.uber.org/zap"
)

const maxScoreHistory = 100

// RoundScoreService lets customers keep their own round history.
type RoundScoreService interface {
	Create(ctx context.Context, userID string, req *request.CreateRoundScoreRequest) (*response.RoundScoreResponse, error)
	ListByUser(ctx context.Context, userID string) ([]response.RoundScoreResponse, error)
	Delete(ctx context.Context, userID, scoreID string) error
}

type roundScoreService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRoundScoreService(repo *repository.Repository, log *zap.Logger) RoundScoreService {
	return &roundScoreService{
		repo: repo,
		log:  log.With(zap.String("service", "round_score")),
	}
}

func (s *roundScoreService) Create(ctx context.Context, userID string, req *request.CreateRoundScoreRequest) (*response.RoundScoreResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create round score validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := utils.ParseUUID(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	playedAt, err := time.Parse("2006-01-02", req.PlayedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid played date %s: %w", req.PlayedAt, err)
	}

	now := time.Now()
	score := &entity.RoundScore{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:     userUUID,
		PlayedAt:   playedAt,
		CourseName: req.CourseName,
		Score:      req.Score,
		OutScore:   req.OutScore,
		InScore:    req.InScore,
		FairwayHit: req.FairwayHit,
		Putts:      req.Putts,
		Memo:       req.Memo,
	}

	if err := s.repo.RoundScore.Create(ctx, score); err != nil {
		return nil, fmt.Errorf("create round score: %w", err)
	}

	resp := response.RoundScoreToResponse(score)
	return &resp, nil
}

func (s *roundScoreService) ListByUser(ctx context.Context, userID string) ([]response.RoundScoreResponse, error) {
	userUUID, err := utils.ParseUUID(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	scores, err := s.repo.RoundScore.FindByUserID(ctx, userUUID, maxScoreHistory)
	if err != nil {
		return nil, fmt.Errorf("list round scores: %w", err)
	}

	result := make([]response.RoundScoreResponse, 0, len(scores))
	for _, score := range scores {
		result = append(result, response.RoundScoreToResponse(score))
	}

	return result, nil
}

func (s *roundScoreService) Delete(ctx context.Context, userID, scoreID string) error {
	id, err := utils.ParseUUID(scoreID)
	if err != nil {
		return fmt.Errorf("invalid score ID format %s: %w", scoreID, err)
	}

	score, err := s.repo.RoundScore.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find round score: %w", err)
	}
	if score == nil {
		return entity.ErrNotFound
	}

	if score.UserID.String() != userID {
		return entity.ErrForbidden
	}

	if err := s.repo.RoundScore.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete round score: %w", err)
	}

	return nil
}
