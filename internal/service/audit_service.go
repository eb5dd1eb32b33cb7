package service

import (
	"context"

	"hospital-management/internal/domain/entity"
	"hospital-management/internal/domain/repository"
	"hospital-management/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService writes audit rows on the caller's transaction, so an audit
// failure rolls back the change it describes. The actor is taken from the
// request claims in ctx.
type AuditService interface {
	LogCreate(ctx context.Context, tx *gorm.DB, action, entityName string, entityID uuid.UUID, newValue interface{}) error
	LogUpdate(ctx context.Context, tx *gorm.DB, action, entityName string, entityID uuid.UUID, oldValue, newValue interface{}) error
	LogDelete(ctx context.Context, tx *gorm.DB, action, entityName string, entityID uuid.UUID, oldValue interface{}) error
	LogAction(ctx context.Context, db *gorm.DB, userID uuid.UUID, action string, metadata entity.JSON) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) LogCreate(ctx context.Context, tx *gorm.DB, action, entityName string, entityID uuid.UUID, newValue interface{}) error {
	return s.write(ctx, tx, actorFrom(ctx), action, changeMetadata(entityName, entityID, nil, newValue))
}

// LogUpdate logs an update action with old and new values
func (s *auditService) LogUpdate(ctx context.Context, tx *gorm.DB, action, entityName string, entityID uuid.UUID, oldValue, newValue interface{}) error {
	return s.write(ctx, tx, actorFrom(ctx), action, changeMetadata(entityName, entityID, oldValue, newValue))
}

func (s *auditService) LogDelete(ctx context.Context, tx *gorm.DB, action, entityName string, entityID uuid.UUID, oldValue interface{}) error {
	return s.write(ctx, tx, actorFrom(ctx), action, changeMetadata(entityName, entityID, oldValue, nil))
}

// LogAction records an event that is not an entity change, such as a login.
func (s *auditService) LogAction(ctx context.Context, db *gorm.DB, userID uuid.UUID, action string, metadata entity.JSON) error {
	return s.write(ctx, db, &userID, action, metadata)
}

func (s *auditService) write(ctx context.Context, db *gorm.DB, userID *uuid.UUID, action string, metadata entity.JSON) error {
	auditLog := &entity.AuditLog{
		UserID:   userID,
		Action:   action,
		Metadata: metadata,
	}

	if err := s.auditRepo.Create(ctx, db, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}
	return nil
}

func changeMetadata(entityName string, entityID uuid.UUID, oldValue, newValue interface{}) entity.JSON {
	return entity.JSON{
		"entity":    entityName,
		"entity_id": entityID.String(),
		"old_value": oldValue,
		"new_value": newValue,
	}
}

func actorFrom(ctx context.Context) *uuid.UUID {
	claims, ok := jwt.ClaimsFromContext(ctx)
	if !ok {
		return nil
	}
	id := claims.UserID
	return &id
}
