package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/DevSaude360/saude360-backend/internal/converter"
	"github.com/DevSaude360/saude360-backend/internal/delivery/dto"
	"github.com/DevSaude360/saude360-backend/internal/domain/entity"
	"github.com/DevSaude360/saude360-backend/internal/domain/repository"
	"github.com/DevSaude360/saude360-backend/internal/service"
	"github.com/DevSaude360/saude360-backend/pkg/jwt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists = errors.New("email já cadastrado")
	ErrInvalidCredentials = errors.New("email ou senha inválidos")
	ErrInvalidToken       = errors.New("token inválido ou expirado")
	ErrTokenRevoked       = errors.New("token revogado")
	ErrCredentialNotFound = errors.New("credencial não encontrada")
	ErrProfileNotFound    = errors.New("perfil não encontrado para a credencial")
)

type AuthUsecase interface {
	RegisterPatientCredential(ctx context.Context, req *dto.RegisterPatientCredentialRequest) (*dto.RegisterCredentialResponse, error)
	RegisterProfessionalCredential(ctx context.Context, req *dto.RegisterProfessionalCredentialRequest) (*dto.RegisterCredentialResponse, error)
	LoginPatient(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	LoginProfessional(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, claims *jwt.Claims) error
	GetCurrentUser(ctx context.Context, claims *jwt.Claims) (*dto.MeResponse, error)
}

type authUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	credentialRepo   repository.CredentialRepository
	patientRepo      repository.PatientRepository
	professionalRepo repository.ProfessionalRepository
	auditService     service.AuditService
	jwtService       *jwt.JWTService
	redisClient      *redis.Client
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	credentialRepo repository.CredentialRepository,
	patientRepo repository.PatientRepository,
	professionalRepo repository.ProfessionalRepository,
	auditService service.AuditService,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
) AuthUsecase {
	return &authUsecase{
		db:               db,
		log:              log,
		credentialRepo:   credentialRepo,
		patientRepo:      patientRepo,
		professionalRepo: professionalRepo,
		auditService:     auditService,
		jwtService:       jwtService,
		redisClient:      redisClient,
	}
}

// RegisterPatientCredential creates login data for an existing patient
// profile and links the two inside one transaction.
func (u *authUsecase) RegisterPatientCredential(ctx context.Context, req *dto.RegisterPatientCredentialRequest) (*dto.RegisterCredentialResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	credential, err := u.createCredential(tx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	patient.CredentialID = &credential.ID
	patient.HasPassword = true
	if err := u.patientRepo.Update(tx, patient); err != nil {
		u.log.Warnf("Failed to link credential to patient %d: %+v", patient.ID, err)
		return nil, err
	}

	_ = u.auditService.LogCreate(ctx, tx, &credential.ID,
		entity.AuditActionRegister, "credential", credential.ID, nil)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.RegisterCredentialResponse{
		Message:    "Credencial criada com sucesso.",
		Credential: &dto.CredentialResponse{ID: credential.ID, Email: credential.Email},
	}, nil
}

// RegisterProfessionalCredential creates login data for an existing
// professional profile.
func (u *authUsecase) RegisterProfessionalCredential(ctx context.Context, req *dto.RegisterProfessionalCredentialRequest) (*dto.RegisterCredentialResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	professional, err := u.professionalRepo.FindByID(tx, req.ProfessionalID)
	if err != nil {
		u.log.Warnf("Failed to find professional %d: %+v", req.ProfessionalID, err)
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}

	credential, err := u.createCredential(tx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	professional.CredentialID = &credential.ID
	professional.HasPassword = true
	if err := u.professionalRepo.Update(tx, professional); err != nil {
		u.log.Warnf("Failed to link credential to professional %d: %+v", professional.ID, err)
		return nil, err
	}

	_ = u.auditService.LogCreate(ctx, tx, &credential.ID,
		entity.AuditActionRegister, "credential", credential.ID, nil)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.RegisterCredentialResponse{
		Message:    "Credencial criada com sucesso.",
		Credential: &dto.CredentialResponse{ID: credential.ID, Email: credential.Email},
	}, nil
}

func (u *authUsecase) createCredential(tx *gorm.DB, email, password string) (*entity.Credential, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	credential := &entity.Credential{
		Email:    email,
		Password: string(hashedPassword),
	}
	if err := u.credentialRepo.Create(tx, credential); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create credential: %+v", err)
		return nil, err
	}
	return credential, nil
}

// LoginPatient authenticates a patient credential and issues an
// access/refresh token pair.
func (u *authUsecase) LoginPatient(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	return u.login(ctx, req, entity.ActorPatient)
}

// LoginProfessional authenticates a professional credential.
func (u *authUsecase) LoginProfessional(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	return u.login(ctx, req, entity.ActorProfessional)
}

// login authenticates a credential against the expected actor kind. A valid
// password on the wrong endpoint answers the same 401 as a wrong password,
// matching the per-actor login tables this flow replaces. The tokens are
// stored in Redis so logout can revoke them before expiry.
func (u *authUsecase) login(ctx context.Context, req *dto.LoginRequest, expected entity.ActorType) (*dto.TokenResponse, error) {
	credential, err := u.credentialRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to find credential by email: %+v", err)
		return nil, err
	}
	if credential == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(credential.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	actorType, actorID, err := u.resolveActor(ctx, credential.ID)
	if err != nil {
		return nil, err
	}
	if actorType != string(expected) {
		return nil, ErrInvalidCredentials
	}

	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(credential.ID, actorType, actorID, credential.Email)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(credential.ID, actorType, actorID, credential.Email)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	if err := u.storeTokens(ctx, credential.ID, accessTokenID, refreshTokenID); err != nil {
		return nil, err
	}

	_ = u.auditService.LogCreate(ctx, u.db.WithContext(ctx), &credential.ID,
		entity.AuditActionLogin, "credential", credential.ID, nil)

	return &dto.TokenResponse{
		Message:      "Login realizado com sucesso.",
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ActorType:    actorType,
		ActorID:      actorID,
	}, nil
}

// RefreshToken rotates a valid refresh token for a new token pair. The old
// refresh token is deleted from Redis so it cannot be replayed.
func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	refreshKey := fmt.Sprintf("refresh_token:%d:%s", claims.CredentialID, claims.TokenID)
	exists, err := u.redisClient.Exists(ctx, refreshKey).Result()
	if err != nil {
		u.log.Warnf("Failed to check refresh token in Redis: %+v", err)
		return nil, err
	}
	if exists == 0 {
		return nil, ErrTokenRevoked
	}

	if err := u.redisClient.Del(ctx, refreshKey).Err(); err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}

	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(claims.CredentialID, claims.ActorType, claims.ActorID, claims.Email)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(claims.CredentialID, claims.ActorType, claims.ActorID, claims.Email)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	if err := u.storeTokens(ctx, claims.CredentialID, accessTokenID, refreshTokenID); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		Message:      "Token renovado com sucesso.",
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ActorType:    claims.ActorType,
		ActorID:      claims.ActorID,
	}, nil
}

// Logout revokes the access token behind the request plus every refresh
// token of the credential.
func (u *authUsecase) Logout(ctx context.Context, claims *jwt.Claims) error {
	accessKey := fmt.Sprintf("access_token:%d:%s", claims.CredentialID, claims.TokenID)
	if err := u.redisClient.Del(ctx, accessKey).Err(); err != nil {
		u.log.Warnf("Failed to delete access token: %+v", err)
		return err
	}

	refreshPattern := fmt.Sprintf("refresh_token:%d:*", claims.CredentialID)
	refreshKeys, err := u.redisClient.Keys(ctx, refreshPattern).Result()
	if err != nil {
		u.log.Warnf("Failed to get refresh token keys: %+v", err)
		return err
	}
	if len(refreshKeys) > 0 {
		if err := u.redisClient.Del(ctx, refreshKeys...).Err(); err != nil {
			u.log.Warnf("Failed to delete refresh tokens: %+v", err)
			return err
		}
	}

	_ = u.auditService.LogCreate(ctx, u.db.WithContext(ctx), &claims.CredentialID,
		entity.AuditActionLogout, "credential", claims.CredentialID, nil)

	return nil
}

// GetCurrentUser returns the profile behind the authenticated credential.
func (u *authUsecase) GetCurrentUser(ctx context.Context, claims *jwt.Claims) (*dto.MeResponse, error) {
	switch entity.ActorType(claims.ActorType) {
	case entity.ActorPatient:
		patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), claims.ActorID)
		if err != nil {
			u.log.Warnf("Failed to find patient %d: %+v", claims.ActorID, err)
			return nil, err
		}
		if patient == nil {
			return nil, ErrProfileNotFound
		}
		return &dto.MeResponse{
			ActorType: claims.ActorType,
			Patient:   converter.PatientToResponse(patient),
		}, nil
	case entity.ActorProfessional:
		professional, err := u.professionalRepo.FindByID(u.db.WithContext(ctx), claims.ActorID)
		if err != nil {
			u.log.Warnf("Failed to find professional %d: %+v", claims.ActorID, err)
			return nil, err
		}
		if professional == nil {
			return nil, ErrProfileNotFound
		}
		return &dto.MeResponse{
			ActorType:    claims.ActorType,
			Professional: converter.ProfessionalToResponse(professional),
		}, nil
	default:
		return nil, ErrInvalidToken
	}
}

// resolveActor finds which profile (patient or professional) a credential
// authenticates.
func (u *authUsecase) resolveActor(ctx context.Context, credentialID int) (string, int, error) {
	patient, err := u.patientRepo.FindByCredentialID(u.db.WithContext(ctx), credentialID)
	if err != nil {
		u.log.Warnf("Failed to resolve patient for credential %d: %+v", credentialID, err)
		return "", 0, err
	}
	if patient != nil {
		return string(entity.ActorPatient), patient.ID, nil
	}

	professional, err := u.professionalRepo.FindByCredentialID(u.db.WithContext(ctx), credentialID)
	if err != nil {
		u.log.Warnf("Failed to resolve professional for credential %d: %+v", credentialID, err)
		return "", 0, err
	}
	if professional != nil {
		return string(entity.ActorProfessional), professional.ID, nil
	}

	return "", 0, ErrProfileNotFound
}

func (u *authUsecase) storeTokens(ctx context.Context, credentialID int, accessTokenID, refreshTokenID string) error {
	accessKey := fmt.Sprintf("access_token:%d:%s", credentialID, accessTokenID)
	refreshKey := fmt.Sprintf("refresh_token:%d:%s", credentialID, refreshTokenID)

	if err := u.redisClient.Set(ctx, accessKey, "valid", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return err
	}
	if err := u.redisClient.Set(ctx, refreshKey, "valid", u.jwtService.GetRefreshExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store refresh token in Redis: %+v", err)
		return err
	}
	return nil
}

// isDuplicateKeyError checks for a PostgreSQL unique constraint violation
// on the named constraint.
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
