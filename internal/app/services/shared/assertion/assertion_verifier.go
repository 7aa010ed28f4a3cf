package assertion

import (
	"context"

	"arogya-service/internal/app/contracts"
	"arogya-service/internal/pkg/exceptions"
	"arogya-service/internal/pkg/utils"
)

// hmacVerifier validates identity-provider assertions signed with a
// shared HMAC secret and extracts the verified phone number claim.
type hmacVerifier struct {
	secret string
}

func NewHMACVerifier(secret string) contracts.AssertionVerifier {
	return &hmacVerifier{secret: secret}
}

func (v *hmacVerifier) VerifyPhoneAssertion(ctx context.Context, assertionToken string) (string, error) {
	phoneNumber, err := utils.ParsePhoneAssertion(assertionToken, v.secret)
	if err != nil {
		return "", exceptions.ErrAssertionMissingPhone(err)
	}
	return phoneNumber, nil
}
