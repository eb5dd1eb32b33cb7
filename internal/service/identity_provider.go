package service

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"hospital-management/config"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/domain/repository"
	"hospital-management/internal/infrastructure/database"
	"hospital-management/pkg/apperror"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = apperror.New(apperror.CodeUnauthorized, "invalid username or password")

// IdentityError carries the provider's validation descriptions, in the order
// the checks ran.
type IdentityError struct {
	Descriptions []string
}

func (e *IdentityError) Error() string {
	return strings.Join(e.Descriptions, " ")
}

// IdentityProvider owns identity users, their password hashes and roles.
// Writes run on the transaction passed in, so they commit or roll back
// together with the caller's domain changes.
type IdentityProvider interface {
	CreateUser(ctx context.Context, tx *gorm.DB, username, password string) (uuid.UUID, error)
	AddToRole(ctx context.Context, tx *gorm.DB, identityUserID uuid.UUID, role string) error
	EmailExists(ctx context.Context, db *gorm.DB, email string) (bool, error)
	DeleteUser(ctx context.Context, tx *gorm.DB, identityUserID uuid.UUID) error
	CheckPassword(ctx context.Context, db *gorm.DB, username, password string) (*entity.IdentityUser, error)
	FindUserByID(ctx context.Context, db *gorm.DB, identityUserID uuid.UUID) (*entity.IdentityUser, error)
	RoleNames(ctx context.Context, db *gorm.DB, identityUserID uuid.UUID) ([]string, error)
	EnsureRoles(ctx context.Context, db *gorm.DB, roles ...string) error
}

type identityProvider struct {
	log      *logrus.Logger
	userRepo repository.IdentityUserRepository
	roleRepo repository.RoleRepository
	policy   config.PasswordPolicy
}

func NewIdentityProvider(
	log *logrus.Logger,
	userRepo repository.IdentityUserRepository,
	roleRepo repository.RoleRepository,
	policy config.PasswordPolicy,
) IdentityProvider {
	return &identityProvider{
		log:      log,
		userRepo: userRepo,
		roleRepo: roleRepo,
		policy:   policy,
	}
}

func normalize(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

func (p *identityProvider) CreateUser(ctx context.Context, tx *gorm.DB, username, password string) (uuid.UUID, error) {
	normalized := normalize(username)

	var descriptions []string

	existing, err := p.userRepo.FindByNormalizedUserName(ctx, tx, normalized)
	if err != nil {
		p.log.Warnf("Failed to find identity user: %+v", err)
		return uuid.Nil, err
	}
	if existing != nil {
		descriptions = append(descriptions, fmt.Sprintf("Username '%s' is already taken.", username))
	}

	descriptions = append(descriptions, p.validatePassword(password)...)
	if len(descriptions) > 0 {
		return uuid.Nil, &IdentityError{Descriptions: descriptions}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		p.log.Warnf("Failed to hash password: %+v", err)
		return uuid.Nil, err
	}

	user := &entity.IdentityUser{
		UserName:           username,
		NormalizedUserName: normalized,
		Email:              username,
		NormalizedEmail:    normalized,
		PasswordHash:       string(hash),
		SecurityStamp:      newSecurityStamp(),
	}

	if err := p.userRepo.Create(ctx, tx, user); err != nil {
		if database.IsDuplicateKeyError(err, "normalized_user_name") {
			return uuid.Nil, &IdentityError{Descriptions: []string{fmt.Sprintf("Username '%s' is already taken.", username)}}
		}
		p.log.Warnf("Failed to create identity user: %+v", err)
		return uuid.Nil, err
	}

	return user.ID, nil
}

func (p *identityProvider) validatePassword(password string) []string {
	var hasDigit, hasLower, hasUpper, hasOther bool
	for _, r := range password {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			hasOther = true
		}
	}

	var descriptions []string
	if utf8.RuneCountInString(password) < p.policy.RequiredLength {
		descriptions = append(descriptions, fmt.Sprintf("Passwords must be at least %d characters.", p.policy.RequiredLength))
	}
	if p.policy.RequireNonAlphanumeric && !hasOther {
		descriptions = append(descriptions, "Passwords must have at least one non alphanumeric character.")
	}
	if p.policy.RequireDigit && !hasDigit {
		descriptions = append(descriptions, "Passwords must have at least one digit ('0'-'9').")
	}
	if p.policy.RequireLowercase && !hasLower {
		descriptions = append(descriptions, "Passwords must have at least one lowercase ('a'-'z').")
	}
	if p.policy.RequireUppercase && !hasUpper {
		descriptions = append(descriptions, "Passwords must have at least one uppercase ('A'-'Z').")
	}
	return descriptions
}

func (p *identityProvider) AddToRole(ctx context.Context, tx *gorm.DB, identityUserID uuid.UUID, role string) error {
	r, err := p.roleRepo.FindByName(ctx, tx, role)
	if err != nil {
		p.log.Warnf("Failed to find role: %+v", err)
		return err
	}
	if r == nil {
		return &IdentityError{Descriptions: []string{fmt.Sprintf("Role %s does not exist.", role)}}
	}

	current, err := p.userRepo.FindRoleNames(ctx, tx, identityUserID)
	if err != nil {
		p.log.Warnf("Failed to find user roles: %+v", err)
		return err
	}
	for _, name := range current {
		if name == r.RoleName {
			return &IdentityError{Descriptions: []string{fmt.Sprintf("User already in role '%s'.", role)}}
		}
	}

	if err := p.userRepo.AddRole(ctx, tx, &entity.IdentityUserRole{UserID: identityUserID, RoleID: r.ID}); err != nil {
		p.log.Warnf("Failed to add user to role: %+v", err)
		return err
	}
	return nil
}

func (p *identityProvider) EmailExists(ctx context.Context, db *gorm.DB, email string) (bool, error) {
	exists, err := p.userRepo.ExistsByNormalizedEmail(ctx, db, normalize(email))
	if err != nil {
		p.log.Warnf("Failed to check identity email: %+v", err)
		return false, err
	}
	return exists, nil
}

// DeleteUser removes the identity user and its role assignments.
func (p *identityProvider) DeleteUser(ctx context.Context, tx *gorm.DB, identityUserID uuid.UUID) error {
	if err := p.userRepo.DeleteRoles(ctx, tx, identityUserID); err != nil {
		p.log.Warnf("Failed to delete user roles: %+v", err)
		return err
	}

	rows, err := p.userRepo.Delete(ctx, tx, identityUserID)
	if err != nil {
		p.log.Warnf("Failed to delete identity user: %+v", err)
		return err
	}
	if rows == 0 {
		return apperror.Newf(apperror.CodeNotFound, "identity user %s not found", identityUserID)
	}
	return nil
}

func (p *identityProvider) CheckPassword(ctx context.Context, db *gorm.DB, username, password string) (*entity.IdentityUser, error) {
	user, err := p.userRepo.FindByNormalizedUserName(ctx, db, normalize(username))
	if err != nil {
		p.log.Warnf("Failed to find identity user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (p *identityProvider) FindUserByID(ctx context.Context, db *gorm.DB, identityUserID uuid.UUID) (*entity.IdentityUser, error) {
	user, err := p.userRepo.FindByID(ctx, db, identityUserID)
	if err != nil {
		p.log.Warnf("Failed to find identity user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, apperror.Newf(apperror.CodeNotFound, "identity user %s not found", identityUserID)
	}
	return user, nil
}

func (p *identityProvider) RoleNames(ctx context.Context, db *gorm.DB, identityUserID uuid.UUID) ([]string, error) {
	return p.userRepo.FindRoleNames(ctx, db, identityUserID)
}

// EnsureRoles creates the named roles that do not exist yet.
func (p *identityProvider) EnsureRoles(ctx context.Context, db *gorm.DB, roles ...string) error {
	for _, name := range roles {
		role, err := p.roleRepo.FindByName(ctx, db, name)
		if err != nil {
			return fmt.Errorf("find role %s: %w", name, err)
		}
		if role != nil {
			continue
		}
		if err := p.roleRepo.Create(ctx, db, &entity.Role{RoleName: name}); err != nil {
			return fmt.Errorf("create role %s: %w", name, err)
		}
		p.log.Infof("Created role %s", name)
	}
	return nil
}

func newSecurityStamp() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
}
