package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/yoockh/admissions/internal/models"
	pgrepo "github.com/yoockh/admissions/internal/repositories/postgres"
	"github.com/yoockh/admissions/internal/utils"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// ApplicationPayload is the submitted admissions form.
type ApplicationPayload struct {
	FirstName                    string `json:"first_name"`
	LastName                     string `json:"last_name"`
	Email                        string `json:"email"`
	Phone                        string `json:"phone"`
	DateOfBirth                  string `json:"date_of_birth"`
	Address                      string `json:"address"`
	ProgramInterest              string `json:"program_interest"`
	EducationBackground          string `json:"education_background"`
	MotivationStatement          string `json:"motivation_statement"`
	EmergencyContactName         string `json:"emergency_contact_name"`
	EmergencyContactPhone        string `json:"emergency_contact_phone"`
	EmergencyContactRelationship string `json:"emergency_contact_relationship"`
}

// requiredFields keeps the order in which missing fields are reported.
func (p *ApplicationPayload) requiredFields() []struct{ name, value string } {
	return []struct{ name, value string }{
		{"first_name", p.FirstName},
		{"last_name", p.LastName},
		{"email", p.Email},
		{"phone", p.Phone},
		{"date_of_birth", p.DateOfBirth},
		{"address", p.Address},
		{"program_interest", p.ProgramInterest},
		{"education_background", p.EducationBackground},
		{"motivation_statement", p.MotivationStatement},
		{"emergency_contact_name", p.EmergencyContactName},
		{"emergency_contact_phone", p.EmergencyContactPhone},
		{"emergency_contact_relationship", p.EmergencyContactRelationship},
	}
}

type ApplicationService interface {
	Submit(ctx context.Context, p *ApplicationPayload) (*models.Application, error)
	Get(ctx context.Context, id string) (*models.Application, error)
	List(ctx context.Context, status models.ApplicationStatus, limit int) ([]models.Application, error)
}

type applicationService struct {
	apps  pgrepo.ApplicationRepository
	audit AuditService
	now   func() time.Time
}

func NewApplicationService(apps pgrepo.ApplicationRepository, audit AuditService) ApplicationService {
	return &applicationService{apps: apps, audit: audit, now: utcNow}
}

func (s *applicationService) Submit(ctx context.Context, p *ApplicationPayload) (*models.Application, error) {
	const op = "ApplicationService.Submit"

	if p == nil {
		return nil, utils.Validation(op, "application payload is required")
	}
	// an empty string counts as missing
	for _, f := range p.requiredFields() {
		if f.value == "" {
			return nil, missingField(op, f.name)
		}
	}

	now := s.now()
	row := &models.Application{
		ID:                           uuid.NewString(),
		FirstName:                    p.FirstName,
		LastName:                     p.LastName,
		Email:                        p.Email,
		Phone:                        p.Phone,
		DateOfBirth:                  p.DateOfBirth,
		Address:                      p.Address,
		ProgramInterest:              p.ProgramInterest,
		EducationBackground:          p.EducationBackground,
		MotivationStatement:          p.MotivationStatement,
		EmergencyContactName:         p.EmergencyContactName,
		EmergencyContactPhone:        p.EmergencyContactPhone,
		EmergencyContactRelationship: p.EmergencyContactRelationship,
		Status:                       models.StatusPending,
		SubmittedAt:                  now,
		CreatedAt:                    now,
		UpdatedAt:                    now,
	}

	if err := s.apps.Insert(ctx, row); err != nil {
		return nil, utils.Persistence(op, "failed to insert application", err)
	}

	if s.audit != nil {
		s.audit.Record(ctx, &models.IntakeEvent{
			Type:          models.EventApplicationSubmitted,
			ApplicationID: row.ID,
			At:            now,
		})
	}
	return row, nil
}

func (s *applicationService) Get(ctx context.Context, id string) (*models.Application, error) {
	const op = "ApplicationService.Get"

	if id == "" {
		return nil, utils.Validation(op, "application_id is required")
	}

	row, err := s.apps.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "application not found", err)
		}
		return nil, utils.Persistence(op, "failed to get application", err)
	}
	return row, nil
}

func (s *applicationService) List(ctx context.Context, status models.ApplicationStatus, limit int) ([]models.Application, error) {
	const op = "ApplicationService.List"

	if status != "" && !status.Valid() {
		return nil, utils.Validation(op, "invalid status: "+string(status))
	}

	rows, err := s.apps.ListRecent(ctx, status, clampLimit(limit))
	if err != nil {
		return nil, utils.Persistence(op, "failed to list applications", err)
	}
	return rows, nil
}

func missingField(op, name string) error {
	return utils.Validation(op, "Missing required field: "+name)
}

func clampLimit(n int) int {
	switch {
	case n <= 0:
		return defaultListLimit
	case n > maxListLimit:
		return maxListLimit
	default:
		return n
	}
}

func utcNow() time.Time { return time.Now().UTC() }
