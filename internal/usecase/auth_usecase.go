package usecase

import (
	"context"

	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/infrastructure/cache"
	"hospital-management/internal/infrastructure/database"
	"hospital-management/internal/service"
	"hospital-management/pkg/apperror"
	"hospital-management/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidCredentials = service.ErrInvalidCredentials
	ErrNoRoleAssigned     = apperror.New(apperror.CodeUnauthorized, "user has no role assigned")
)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, userID uuid.UUID, accessTokenID, refreshTokenID string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
}

type authUsecase struct {
	uow            database.UnitOfWork
	log            *logrus.Logger
	identity       service.IdentityProvider
	accountService service.AccountService
	auditService   service.AuditService
	jwtService     *jwt.JWTService
	tokens         cache.TokenStore
}

func NewAuthUsecase(
	uow database.UnitOfWork,
	log *logrus.Logger,
	identity service.IdentityProvider,
	accountService service.AccountService,
	auditService service.AuditService,
	jwtService *jwt.JWTService,
	tokens cache.TokenStore,
) AuthUsecase {
	return &authUsecase{
		uow:            uow,
		log:            log,
		identity:       identity,
		accountService: accountService,
		auditService:   auditService,
		jwtService:     jwtService,
		tokens:         tokens,
	}
}

// Login checks the identity credentials and issues tokens for the domain
// user linked to the identity through its account.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	db := u.uow.DB(ctx)

	user, err := u.identity.CheckPassword(ctx, db, req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	roles, err := u.identity.RoleNames(ctx, db, user.ID)
	if err != nil {
		u.log.Warnf("Failed to find user roles: %+v", err)
		return nil, err
	}
	if len(roles) == 0 {
		return nil, ErrNoRoleAssigned
	}

	userID, err := u.accountService.FindUserIDByIdentityID(ctx, db, user.ID)
	if err != nil {
		return nil, err
	}

	tokens, err := u.issueTokens(ctx, userID, user.UserName, roles[0])
	if err != nil {
		return nil, err
	}

	if err := u.auditService.LogAction(ctx, db, userID, entity.AuditActionUserLogin, entity.JSON{"username": user.UserName}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return tokens, nil
}

func (u *authUsecase) Logout(ctx context.Context, userID uuid.UUID, accessTokenID, refreshTokenID string) error {
	if err := u.tokens.Revoke(ctx, string(jwt.AccessToken), userID, accessTokenID); err != nil {
		u.log.Warnf("Failed to delete access token: %+v", err)
		return err
	}

	if refreshTokenID != "" {
		if err := u.tokens.Revoke(ctx, string(jwt.RefreshToken), userID, refreshTokenID); err != nil {
			u.log.Warnf("Failed to delete refresh token: %+v", err)
			return err
		}
	}

	if err := u.auditService.LogAction(ctx, u.uow.DB(ctx), userID, entity.AuditActionUserLogout, nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}
	return nil
}

// RefreshToken rotates the token pair. The old refresh token is revoked.
func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	exists, err := u.tokens.Exists(ctx, string(jwt.RefreshToken), claims.UserID, claims.TokenID)
	if err != nil {
		u.log.Warnf("Failed to check refresh token: %+v", err)
		return nil, err
	}
	if !exists {
		return nil, ErrTokenRevoked
	}

	if err := u.tokens.Revoke(ctx, string(jwt.RefreshToken), claims.UserID, claims.TokenID); err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}

	return u.issueTokens(ctx, claims.UserID, claims.Email, claims.Role)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	db := u.uow.DB(ctx)

	account, err := u.accountService.FindByUserID(ctx, db, userID)
	if err != nil {
		return nil, err
	}

	user, err := u.identity.FindUserByID(ctx, db, account.IdentityUserID)
	if err != nil {
		return nil, err
	}

	return &dto.UserResponse{
		ID:             userID,
		IdentityUserID: user.ID,
		Username:       user.UserName,
		Role:           account.Role,
	}, nil
}

func (u *authUsecase) issueTokens(ctx context.Context, userID uuid.UUID, username, role string) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(userID, username, role)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(userID, username, role)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	if err := u.tokens.Save(ctx, string(jwt.AccessToken), userID, accessTokenID, u.jwtService.GetAccessExpiry()); err != nil {
		u.log.Warnf("Failed to store access token: %+v", err)
		return nil, err
	}

	if err := u.tokens.Save(ctx, string(jwt.RefreshToken), userID, refreshTokenID, u.jwtService.GetRefreshExpiry()); err != nil {
		u.log.Warnf("Failed to store refresh token: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}
