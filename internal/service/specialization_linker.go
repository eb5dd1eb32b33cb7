package service

import (
	"context"

	"hospital-management/internal/domain/entity"
	"hospital-management/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SpecializationLinker maintains the doctor_specializations rows of a doctor.
// It does not check that specializations exist.
type SpecializationLinker interface {
	Reconcile(ctx context.Context, tx *gorm.DB, doctorID uuid.UUID, specializationIDs []uuid.UUID) error
	RemoveAll(ctx context.Context, tx *gorm.DB, doctorID uuid.UUID) error
}

type specializationLinker struct {
	log      *logrus.Logger
	linkRepo repository.DoctorSpecializationRepository
}

func NewSpecializationLinker(log *logrus.Logger, linkRepo repository.DoctorSpecializationRepository) SpecializationLinker {
	return &specializationLinker{
		log:      log,
		linkRepo: linkRepo,
	}
}

// Reconcile makes the doctor's set equal to specializationIDs, inserting only
// the missing ids and deleting only the stale ones.
func (l *specializationLinker) Reconcile(ctx context.Context, tx *gorm.DB, doctorID uuid.UUID, specializationIDs []uuid.UUID) error {
	current, err := l.linkRepo.FindSpecializationIDs(ctx, tx, doctorID)
	if err != nil {
		l.log.Warnf("Failed to find doctor specializations: %+v", err)
		return err
	}

	toAdd, toRemove := Diff(current, specializationIDs)

	if len(toRemove) > 0 {
		if err := l.linkRepo.DeleteBatch(ctx, tx, doctorID, toRemove); err != nil {
			l.log.Warnf("Failed to remove doctor specializations: %+v", err)
			return err
		}
	}

	if len(toAdd) > 0 {
		links := make([]entity.DoctorSpecialization, 0, len(toAdd))
		for _, id := range toAdd {
			links = append(links, entity.DoctorSpecialization{DoctorID: doctorID, SpecializationID: id})
		}
		if err := l.linkRepo.CreateBatch(ctx, tx, links); err != nil {
			l.log.Warnf("Failed to add doctor specializations: %+v", err)
			return err
		}
	}

	return nil
}

func (l *specializationLinker) RemoveAll(ctx context.Context, tx *gorm.DB, doctorID uuid.UUID) error {
	if err := l.linkRepo.DeleteByDoctorID(ctx, tx, doctorID); err != nil {
		l.log.Warnf("Failed to remove doctor specializations: %+v", err)
		return err
	}
	return nil
}

// Diff returns next minus current and current minus next. Duplicates in next
// are collapsed and the order of first appearance is kept.
func Diff(current, next []uuid.UUID) (toAdd, toRemove []uuid.UUID) {
	currentSet := make(map[uuid.UUID]struct{}, len(current))
	for _, id := range current {
		currentSet[id] = struct{}{}
	}

	nextSet := make(map[uuid.UUID]struct{}, len(next))
	for _, id := range next {
		if _, seen := nextSet[id]; seen {
			continue
		}
		nextSet[id] = struct{}{}
		if _, ok := currentSet[id]; !ok {
			toAdd = append(toAdd, id)
		}
	}

	for _, id := range current {
		if _, ok := nextSet[id]; !ok {
			toRemove = append(toRemove, id)
		}
	}
	return toAdd, toRemove
}
