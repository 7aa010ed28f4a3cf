package contracts

import (
	"context"

	"arogya-service/internal/pkg/dto/requests"
	"arogya-service/internal/pkg/dto/responses"
)

// Session is the authenticated identity attached to a request after the
// session token has been verified.
type Session struct {
	UserID string
	Role   string
}

type AuthUsecase interface {
	Signup(ctx context.Context, request *requests.SignupUser) (*responses.Signup, error)
	Login(ctx context.Context, clientIP string, request *requests.LoginUser) (*responses.Login, error)
	PhoneLogin(ctx context.Context, clientIP string, request *requests.PhoneLogin) (*responses.Login, error)
	GetHealthID(ctx context.Context, session *Session, userID string) (*responses.HealthID, error)
}

// AssertionVerifier validates an identity-provider assertion presented
// during phone based login and returns the verified phone number.
type AssertionVerifier interface {
	VerifyPhoneAssertion(ctx context.Context, assertion string) (string, error)
}
