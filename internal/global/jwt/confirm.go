package jwt

import (
	"time"

	"student-wellness-system/config"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

// ConfirmClaims is the payload of an enrollment confirmation link: a signed,
// time-limited token embedding the enrollment and the user it belongs to.
type ConfirmClaims struct {
	EnrollmentID uint `json:"enrollment_id"`
	UserID       uint `json:"user_id"`
	jwt.StandardClaims
}

// CreateConfirmToken signs a confirmation token for the enrollment. The Id
// claim is a one-time nonce so a consumed link can be rejected on replay.
func CreateConfirmToken(enrollmentID, userID uint) (string, error) {
	cfg := config.Get()
	expire := cfg.JWT.ConfirmExpire
	if expire <= 0 {
		expire = 86400
	}
	claims := ConfirmClaims{
		EnrollmentID: enrollmentID,
		UserID:       userID,
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.NewString(),
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(time.Duration(expire) * time.Second).Unix(),
			Issuer:    "student-wellness-system",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(confirmSecret(cfg)))
}

// ParseConfirmToken validates a confirmation token. Expired or tampered
// tokens come back invalid; the caller redirects with an error instead of
// confirming.
func ParseConfirmToken(tokenString string) (*ConfirmClaims, bool) {
	cfg := config.Get()
	token, err := jwt.ParseWithClaims(tokenString, &ConfirmClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(confirmSecret(cfg)), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}
	claims, ok := token.Claims.(*ConfirmClaims)
	if !ok {
		return nil, false
	}
	return claims, true
}

func confirmSecret(cfg *config.Config) string {
	if cfg.JWT.ConfirmSecret != "" {
		return cfg.JWT.ConfirmSecret
	}
	return cfg.JWT.AccessSecret
}
