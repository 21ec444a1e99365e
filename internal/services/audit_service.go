package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yoockh/admissions/internal/models"
	mongorepo "github.com/yoockh/admissions/internal/repositories/mongo"
	"github.com/yoockh/admissions/internal/utils"
)

// AuditService keeps the intake trail. Recording is best-effort: a failed
// write is logged and never reaches the caller.
type AuditService interface {
	Record(ctx context.Context, e *models.IntakeEvent)
	History(ctx context.Context, applicationID string, limit int64) ([]models.IntakeEvent, error)
}

type auditService struct {
	events mongorepo.EventRepository
	log    *logrus.Logger
}

// NewAuditService accepts a nil repository, in which case Record is a no-op.
func NewAuditService(events mongorepo.EventRepository, log *logrus.Logger) AuditService {
	if log == nil {
		log = logrus.New()
	}
	return &auditService{events: events, log: log}
}

func (s *auditService) Record(ctx context.Context, e *models.IntakeEvent) {
	if s.events == nil || e == nil {
		return
	}
	if e.At.IsZero() {
		e.At = time.Now().UTC()
	}
	if err := s.events.Append(ctx, e); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"event":          e.Type,
			"application_id": e.ApplicationID,
			"file_id":        e.FileID,
		}).Warn("intake event not recorded")
	}
}

func (s *auditService) History(ctx context.Context, applicationID string, limit int64) ([]models.IntakeEvent, error) {
	const op = "AuditService.History"

	if applicationID == "" {
		return nil, utils.Validation(op, "application_id is required")
	}
	if s.events == nil {
		return nil, utils.E(utils.CodeUnavailable, op, "audit trail is not configured", nil)
	}

	out, err := s.events.ListByApplication(ctx, applicationID, limit)
	if err != nil {
		return nil, utils.Persistence(op, "failed to list intake events", err)
	}
	return out, nil
}
