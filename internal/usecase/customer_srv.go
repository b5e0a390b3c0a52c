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

// CustomerService is the instructor-side karte: the customer roster
// and the per-customer record of notes, drills, scores and visits.
type CustomerService interface {
	ListCustomers(ctx context.Context) ([]response.CustomerSummaryResponse, error)
	GetCustomerDetail(ctx context.Context, customerID string) (*response.CustomerDetailResponse, error)

	CreateNote(ctx context.Context, customerID string, req *request.InstructorNoteRequest) (*response.InstructorNoteResponse, error)
	UpdateNote(ctx context.Context, noteID string, req *request.InstructorNoteRequest) (*response.InstructorNoteResponse, error)
	DeleteNote(ctx context.Context, noteID string) error

	CreateDrill(ctx context.Context, customerID string, req *request.CreateDrillRequest) (*response.DrillResponse, error)
	UpdateDrill(ctx context.Context, drillID string, req *request.UpdateDrillRequest) (*response.DrillResponse, error)
	DeleteDrill(ctx context.Context, drillID string) error
}

type customerService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCustomerService(repo *repository.Repository, log *zap.Logger) CustomerService {
	return &customerService{
		repo: repo,
		log:  log.With(zap.String("service", "customer")),
	}
}

func (s *customerService) ListCustomers(ctx context.Context) ([]response.CustomerSummaryResponse, error) {
	customers, err := s.repo.User.FindCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	result := make([]response.CustomerSummaryResponse, 0, len(customers))
	for _, customer := range customers {
		count, err := s.repo.Reservation.CountByUserID(ctx, customer.ID)
		if err != nil {
			return nil, fmt.Errorf("count customer reservations: %w", err)
		}

		result = append(result, response.CustomerSummaryResponse{
			UserResponse:     response.UserToResponse(customer),
			ReservationCount: count,
		})
	}

	return result, nil
}

func (s *customerService) GetCustomerDetail(ctx context.Context, customerID string) (*response.CustomerDetailResponse, error) {
	customer, err := s.findCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	reservations, err := s.repo.Reservation.FindByUserID(ctx, customer.ID)
	if err != nil {
		return nil, fmt.Errorf("list customer reservations: %w", err)
	}

	notes, err := s.repo.InstructorNote.FindByUserID(ctx, customer.ID)
	if err != nil {
		return nil, fmt.Errorf("list customer notes: %w", err)
	}

	drills, err := s.repo.Drill.FindByUserID(ctx, customer.ID)
	if err != nil {
		return nil, fmt.Errorf("list customer drills: %w", err)
	}

	scores, err := s.repo.RoundScore.FindByUserID(ctx, customer.ID, 50)
	if err != nil {
		return nil, fmt.Errorf("list customer scores: %w", err)
	}

	detail := &response.CustomerDetailResponse{
		User:         response.UserToResponse(customer),
		Reservations: make([]response.ReservationResponse, 0, len(reservations)),
		Notes:        make([]response.InstructorNoteResponse, 0, len(notes)),
		Drills:       make([]response.DrillResponse, 0, len(drills)),
		Scores:       make([]response.RoundScoreResponse, 0, len(scores)),
	}

	for _, rsv := range reservations {
		detail.Reservations = append(detail.Reservations, response.ReservationToResponse(rsv))
	}
	for _, note := range notes {
		detail.Notes = append(detail.Notes, response.InstructorNoteToResponse(note))
	}
	for _, drill := range drills {
		detail.Drills = append(detail.Drills, response.DrillToResponse(drill))
	}
	for _, score := range scores {
		detail.Scores = append(detail.Scores, response.RoundScoreToResponse(score))
	}

	return detail, nil
}

func (s *customerService) CreateNote(ctx context.Context, customerID string, req *request.InstructorNoteRequest) (*response.InstructorNoteResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create note validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	customer, err := s.findCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	note := &entity.InstructorNote{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:    customer.ID,
		Content:   req.Content,
		IsPrivate: req.IsPrivate,
	}

	if err := s.repo.InstructorNote.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}

	resp := response.InstructorNoteToResponse(note)
	return &resp, nil
}

func (s *customerService) UpdateNote(ctx context.Context, noteID string, req *request.InstructorNoteRequest) (*response.InstructorNoteResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update note validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := utils.ParseUUID(noteID)
	if err != nil {
		return nil, fmt.Errorf("invalid note ID format %s: %w", noteID, err)
	}

	note, err := s.repo.InstructorNote.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find note: %w", err)
	}
	if note == nil {
		return nil, entity.ErrNotFound
	}

	note.Content = req.Content
	note.IsPrivate = req.IsPrivate
	note.UpdatedAt = time.Now()

	if err := s.repo.InstructorNote.Update(ctx, note); err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}

	resp := response.InstructorNoteToResponse(note)
	return &resp, nil
}

func (s *customerService) DeleteNote(ctx context.Context, noteID string) error {
	id, err := utils.ParseUUID(noteID)
	if err != nil {
		return fmt.Errorf("invalid note ID format %s: %w", noteID, err)
	}

	note, err := s.repo.InstructorNote.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find note: %w", err)
	}
	if note == nil {
		return entity.ErrNotFound
	}

	if err := s.repo.InstructorNote.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	return nil
}

func (s *customerService) CreateDrill(ctx context.Context, customerID string, req *request.CreateDrillRequest) (*response.DrillResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create drill validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	customer, err := s.findCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	dueDate, err := parseDateField(req.DueDate)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	drill := &entity.Drill{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:      customer.ID,
		Title:       req.Title,
		Description: req.Description,
		VideoURL:    req.VideoURL,
		Status:      entity.DrillStatusAssigned,
		DueDate:     dueDate,
	}

	if err := s.repo.Drill.Create(ctx, drill); err != nil {
		return nil, fmt.Errorf("create drill: %w", err)
	}

	s.log.Info("Drill assigned",
		zap.String("drill_id", drill.ID.String()),
		zap.String("user_id", customer.ID.String()),
	)

	resp := response.DrillToResponse(drill)
	return &resp, nil
}

func (s *customerService) UpdateDrill(ctx context.Context, drillID string, req *request.UpdateDrillRequest) (*response.DrillResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update drill validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := utils.ParseUUID(drillID)
	if err != nil {
		return nil, fmt.Errorf("invalid drill ID format %s: %w", drillID, err)
	}

	drill, err := s.repo.Drill.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find drill: %w", err)
	}
	if drill == nil {
		return nil, entity.ErrNotFound
	}

	if req.Title != nil {
		drill.Title = *req.Title
	}
	if req.Description != nil {
		drill.Description = req.Description
	}
	if req.VideoURL != nil {
		drill.VideoURL = req.VideoURL
	}
	if req.Status != nil {
		drill.Status = entity.DrillStatus(*req.Status)
	}
	if req.DueDate != nil {
		dueDate, err := parseDateField(req.DueDate)
		if err != nil {
			return nil, err
		}
		drill.DueDate = dueDate
	}
	drill.UpdatedAt = time.Now()

	if err := s.repo.Drill.Update(ctx, drill); err != nil {
		return nil, fmt.Errorf("update drill: %w", err)
	}

	resp := response.DrillToResponse(drill)
	return &resp, nil
}

func (s *customerService) DeleteDrill(ctx context.Context, drillID string) error {
	id, err := utils.ParseUUID(drillID)
	if err != nil {
		return fmt.Errorf("invalid drill ID format %s: %w", drillID, err)
	}

	drill, err := s.repo.Drill.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find drill: %w", err)
	}
	if drill == nil {
		return entity.ErrNotFound
	}

	if err := s.repo.Drill.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete drill: %w", err)
	}

	return nil
}

func (s *customerService) findCustomer(ctx context.Context, customerID string) (*entity.User, error) {
	id, err := utils.ParseUUID(customerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID format %s: %w", customerID, err)
	}

	customer, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find customer: %w", err)
	}
	if customer == nil {
		return nil, entity.ErrNotFound
	}

	return customer, nil
}

func parseDateField(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}

	parsed, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %s: %w", *value, err)
	}

	return &parsed, nil
}
