package usecase

import (
	"strings"
	"time"

	"hospital-management/internal/converter"
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
	"hospital-management/pkg/apperror"
	"hospital-management/pkg/validator"

	"github.com/google/uuid"
)

// validate runs the struct tags of req and reports the first violated field.
func validate(v *validator.CustomValidator, req interface{}) error {
	if err := v.Validate(req); err != nil {
		return apperror.New(apperror.CodeBadRequest, v.FirstError(err))
	}
	return nil
}

// toPerson converts a validated request. now bounds the date of birth.
func toPerson(req dto.PersonRequest, now time.Time) (entity.Person, error) {
	dob, err := time.Parse(converter.DateLayout, req.DateOfBirth)
	if err != nil {
		return entity.Person{}, apperror.Newf(apperror.CodeBadRequest, "DateOfBirth must match the format %s", converter.DateLayout)
	}
	if dob.After(now) {
		return entity.Person{}, ErrDateOfBirthInFuture
	}

	return entity.Person{
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		Gender:      entity.Gender(req.Gender),
		Address:     strings.TrimSpace(req.Address),
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
		Email:       strings.TrimSpace(req.Email),
		DateOfBirth: dob,
	}, nil
}

// uniqueIDs drops repeated ids and keeps the first occurrence order.
func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
