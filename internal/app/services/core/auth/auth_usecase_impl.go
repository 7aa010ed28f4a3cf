package auth

import (
	"context"

	"arogya-service/internal/app/config"
	"arogya-service/internal/app/contracts"
	"arogya-service/internal/app/models"
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/dto/requests"
	"arogya-service/internal/pkg/dto/responses"
	"arogya-service/internal/pkg/exceptions"
	"arogya-service/internal/pkg/utils"
)

type AuthUsecase struct {
	UserRepository    contracts.UserRepository
	AssertionVerifier contracts.AssertionVerifier
	LoginLimiter      contracts.LoginLimiter
	AuditRecorder     contracts.AuditRecorder
	InternalConfig    *config.InternalConfig
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	assertionVerifier contracts.AssertionVerifier,
	loginLimiter contracts.LoginLimiter,
	auditRecorder contracts.AuditRecorder,
	internalConfig *config.InternalConfig,
) contracts.AuthUsecase {
	return &AuthUsecase{
		UserRepository:    userRepository,
		AssertionVerifier: assertionVerifier,
		LoginLimiter:      loginLimiter,
		AuditRecorder:     auditRecorder,
		InternalConfig:    internalConfig,
	}
}

func (uc *AuthUsecase) Signup(ctx context.Context, request *requests.SignupUser) (*responses.Signup, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	role := models.Role(request.Role)

	if request.Email != "" {
		existing, err := uc.UserRepository.FindUserByEmail(ctx, request.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, exceptions.ErrIdentityAlreadyRegistered(nil)
		}
	}
	if request.Phone != "" {
		existing, err := uc.UserRepository.FindUserByPhone(ctx, request.Phone)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, exceptions.ErrIdentityAlreadyRegistered(nil)
		}
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		Name:     request.Name,
		Email:    request.Email,
		Phone:    request.Phone,
		Password: hashedPassword,
		Role:     role,
		Language: request.Language,
	}
	if role == models.RoleMigrant {
		user.HealthID = utils.GenerateHealthID()
	}
	user.SetCreatedAtUpdatedAt()

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = userID

	uc.AuditRecorder.Record(ctx, userID, constvars.AuditActionRegisterUser, "")

	return &responses.Signup{User: buildUserResponse(user)}, nil
}

func (uc *AuthUsecase) Login(ctx context.Context, clientIP string, request *requests.LoginUser) (*responses.Login, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	identity := request.Email
	if identity == "" {
		identity = request.Phone
	}
	allowed, err := uc.LoginLimiter.Allow(ctx, identity)
	if err == nil && !allowed {
		return nil, exceptions.ErrTooManyLoginAttempts(nil)
	}

	var user *models.User
	if request.Email != "" {
		user, err = uc.UserRepository.FindUserByEmail(ctx, request.Email)
	} else {
		user, err = uc.UserRepository.FindUserByPhone(ctx, request.Phone)
	}
	if err != nil {
		return nil, err
	}

	// Same error for unknown identity and wrong password, the response
	// must not reveal which one failed.
	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidCredentials(nil)
	}

	token, err := utils.GenerateSessionJWT(user.ID, string(user.Role), uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	uc.AuditRecorder.Record(ctx, user.ID, constvars.AuditActionLogin, "")

	return &responses.Login{Token: token, User: buildUserResponse(user)}, nil
}

// PhoneLogin exchanges a verified identity-provider assertion for a
// session. Unknown phone numbers get a fresh migrant account.
func (uc *AuthUsecase) PhoneLogin(ctx context.Context, clientIP string, request *requests.PhoneLogin) (*responses.Login, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrMissingAssertion(err)
	}

	// The identity is only known after the assertion checks out, so the
	// window is keyed on the client address here.
	allowed, err := uc.LoginLimiter.Allow(ctx, clientIP)
	if err == nil && !allowed {
		return nil, exceptions.ErrTooManyLoginAttempts(nil)
	}

	phoneNumber, err := uc.AssertionVerifier.VerifyPhoneAssertion(ctx, request.Assertion)
	if err != nil {
		return nil, err
	}

	user, err := uc.UserRepository.FindUserByPhone(ctx, phoneNumber)
	if err != nil {
		return nil, err
	}

	auditAction := constvars.AuditActionPhoneLogin
	if user == nil {
		name := request.Name
		if name == "" {
			name = phoneNumber
		}
		user = &models.User{
			Name:     name,
			Phone:    phoneNumber,
			Role:     models.RoleMigrant,
			HealthID: utils.GenerateHealthID(),
		}
		user.SetCreatedAtUpdatedAt()

		userID, err := uc.UserRepository.CreateUser(ctx, user)
		if err != nil {
			return nil, err
		}
		user.ID = userID
		auditAction = constvars.AuditActionPhoneLoginNewAccount
	}

	token, err := utils.GenerateSessionJWT(user.ID, string(user.Role), uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	uc.AuditRecorder.Record(ctx, user.ID, auditAction, "")

	return &responses.Login{Token: token, User: buildUserResponse(user)}, nil
}

// GetHealthID resolves a user's public health id. Users read their
// own, admins may read anyone's.
func (uc *AuthUsecase) GetHealthID(ctx context.Context, session *contracts.Session, userID string) (*responses.HealthID, error) {
	if userID == "" {
		userID = session.UserID
	}
	if userID != session.UserID && session.Role != string(models.RoleAdmin) {
		return nil, exceptions.ErrRoleNotPermitted(nil)
	}

	user, err := uc.UserRepository.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}
	return &responses.HealthID{HealthID: user.HealthID}, nil
}

func buildUserResponse(user *models.User) *responses.User {
	return &responses.User{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		Role:      string(user.Role),
		Language:  user.Language,
		HealthID:  user.HealthID,
		CreatedAt: user.CreatedAt,
	}
}
