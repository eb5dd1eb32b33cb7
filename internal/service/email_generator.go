package service

import (
	"context"
	"fmt"
	"strings"

	"hospital-management/pkg/apperror"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// MaxUsernameAttempts bounds the numbered suffixes tried after the base
// candidate is taken.
const MaxUsernameAttempts = 100

var ErrFirstNameRequired = apperror.New(apperror.CodeInvalidArgument, "first name is required to generate a username")

type EmailGenerator interface {
	GenerateUsername(ctx context.Context, db *gorm.DB, firstName, lastName, domain string) (string, error)
}

type emailGenerator struct {
	log      *logrus.Logger
	identity IdentityProvider
}

func NewEmailGenerator(log *logrus.Logger, identity IdentityProvider) EmailGenerator {
	return &emailGenerator{
		log:      log,
		identity: identity,
	}
}

// GenerateUsername derives first.last@domain (or first@domain without a last
// name) and appends 1, 2, ... before the @ until the identity store reports
// the address as free. Whitespace inside a name is dropped, so "Van Dyke"
// becomes "vandyke". It only reads.
func (g *emailGenerator) GenerateUsername(ctx context.Context, db *gorm.DB, firstName, lastName, domain string) (string, error) {
	first := usernamePart(firstName)
	if first == "" {
		return "", ErrFirstNameRequired
	}

	local := first
	if last := usernamePart(lastName); last != "" {
		local = first + "." + last
	}

	candidate := fmt.Sprintf("%s@%s", local, domain)
	taken, err := g.identity.EmailExists(ctx, db, candidate)
	if err != nil {
		return "", err
	}
	if !taken {
		return candidate, nil
	}

	for i := 1; i <= MaxUsernameAttempts; i++ {
		candidate = fmt.Sprintf("%s%d@%s", local, i, domain)
		taken, err := g.identity.EmailExists(ctx, db, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}

	g.log.Warnf("Failed to generate username for %s: %d attempts exhausted", local, MaxUsernameAttempts)
	return "", apperror.Newf(apperror.CodeResourceExhausted, "unable to generate a unique username for %s@%s", local, domain)
}

func usernamePart(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), ""))
}
