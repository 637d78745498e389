package security

import (
	"github.com/golang-jwt/jwt/v5"
)

// UserClaims carries the authenticated principal: SubjectID is a User or
// FoodPartner id depending on Kind.
type UserClaims struct {
	SubjectID uint64 `json:"subject_id"`
	Kind      string `json:"kind"`
	jwt.RegisteredClaims
}
