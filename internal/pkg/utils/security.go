package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

var (
	errUnexpectedSigningMethod = errors.New("unexpected signing method")
	errInvalidTokenClaims      = errors.New("invalid token claims")
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateSessionJWT signs a stateless session token carrying the user
// identity and role. Expiry is expressed in hours.
func GenerateSessionJWT(userID, role, secret string, jwtExpiryTime int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(time.Duration(jwtExpiryTime) * time.Hour).Unix(),
	})

	return token.SignedString([]byte(secret))
}

// ParseSessionJWT verifies the signature and expiry of a session token
// and returns the user ID and role claims.
func ParseSessionJWT(tokenString, secret string) (string, string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errUnexpectedSigningMethod
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", errInvalidTokenClaims
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", errInvalidTokenClaims
	}
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return "", "", errInvalidTokenClaims
	}
	return userID, role, nil
}

// ParsePhoneAssertion verifies an identity-provider assertion token and
// extracts the phone_number claim used for phone based login.
func ParsePhoneAssertion(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errUnexpectedSigningMethod
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errInvalidTokenClaims
	}

	phoneNumber, ok := claims["phone_number"].(string)
	if !ok || phoneNumber == "" {
		return "", errInvalidTokenClaims
	}
	return phoneNumber, nil
}
