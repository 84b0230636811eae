package service

import (
	"context"
	"errors"
	"time"

	"wagehire/internal/model"
	"wagehire/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InterviewService struct {
	interviews repository.InterviewRepository
	users      repository.UserRepository
}

func NewInterviewService(interviews repository.InterviewRepository, users repository.UserRepository) *InterviewService {
	return &InterviewService{interviews: interviews, users: users}
}

func (s *InterviewService) Create(ctx context.Context, ownerID string, req model.InterviewRequest) (*model.Interview, error) {
	status := req.Status
	if status == "" {
		status = model.StatusScheduled
	}
	if !model.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	iv := &model.Interview{
		ID:                  uuid.NewString(),
		OwnerID:             ownerID,
		CompanyName:         req.CompanyName,
		JobTitle:            req.JobTitle,
		ScheduledDate:       model.ParseScheduledDate(req.ScheduledDate),
		Status:              status,
		Round:               req.Round,
		InterviewType:       req.InterviewType,
		Location:            req.Location,
		Notes:               req.Notes,
		InterviewerName:     req.InterviewerName,
		InterviewerEmail:    req.InterviewerEmail,
		InterviewerPosition: req.InterviewerPosition,
	}
	if err := s.interviews.Create(ctx, iv); err != nil {
		return nil, err
	}
	return iv, nil
}

// Get returns an interview if the requester owns it or is an admin.
func (s *InterviewService) Get(ctx context.Context, id, userID, role string) (*model.Interview, error) {
	iv, err := s.interviews.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if iv.OwnerID != userID && role != model.RoleAdmin {
		return nil, ErrForbidden
	}
	return iv, nil
}

func (s *InterviewService) List(ctx context.Context, userID, role string) ([]model.Interview, error) {
	if role == model.RoleAdmin {
		return s.interviews.ListAll(ctx)
	}
	return s.interviews.ListByOwner(ctx, userID)
}

// Update mutates the mutable fields of an interview. The owner and id never
// change.
func (s *InterviewService) Update(ctx context.Context, id, userID, role string, req model.InterviewRequest) (*model.Interview, error) {
	iv, err := s.Get(ctx, id, userID, role)
	if err != nil {
		return nil, err
	}
	if req.Status != "" && !model.ValidStatus(req.Status) {
		return nil, ErrInvalidStatus
	}
	iv.CompanyName = req.CompanyName
	iv.JobTitle = req.JobTitle
	iv.ScheduledDate = model.ParseScheduledDate(req.ScheduledDate)
	if req.Status != "" {
		iv.Status = req.Status
	}
	iv.Round = req.Round
	iv.InterviewType = req.InterviewType
	iv.Location = req.Location
	iv.Notes = req.Notes
	iv.InterviewerName = req.InterviewerName
	iv.InterviewerEmail = req.InterviewerEmail
	iv.InterviewerPosition = req.InterviewerPosition
	if err := s.interviews.Update(ctx, iv); err != nil {
		return nil, err
	}
	return iv, nil
}

func (s *InterviewService) Delete(ctx context.Context, id, userID, role string) error {
	if _, err := s.Get(ctx, id, userID, role); err != nil {
		return err
	}
	return s.interviews.Delete(ctx, id)
}

// Dashboard computes the requesting user's interview counts.
func (s *InterviewService) Dashboard(ctx context.Context, userID string) (model.DashboardStats, error) {
	ivs, err := s.interviews.ListByOwner(ctx, userID)
	if err != nil {
		return model.DashboardStats{}, err
	}
	return ClassifyInterviews(ivs, time.Now()), nil
}

// AdminDashboard aggregates counts over every interview and user in the
// system.
func (s *InterviewService) AdminDashboard(ctx context.Context) (model.AdminDashboard, error) {
	ivs, err := s.interviews.ListAll(ctx)
	if err != nil {
		return model.AdminDashboard{}, err
	}
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return model.AdminDashboard{}, err
	}
	candidates, err := s.users.CountByRole(ctx, model.RoleCandidate)
	if err != nil {
		return model.AdminDashboard{}, err
	}
	return model.AdminDashboard{
		Stats:           ClassifyInterviews(ivs, time.Now()),
		TotalUsers:      totalUsers,
		TotalCandidates: candidates,
	}, nil
}
