package types

import (
	"github.com/dgrijalva/jwt-go"
)

type AuthClaims struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	jwt.StandardClaims
}
