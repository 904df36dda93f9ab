package middleware

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"

	"tool-permission/types"
)

const testSecret = "Lbhi08lqB8k7bdGzfosSyZwPygIOvwhX"

func TestAuthClaimsRoundTrip(t *testing.T) {
	code := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   1,
		"name": "admin",
		"nbf":  time.Now().Unix(),
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Duration(90000000) * time.Second).Unix(),
	})
	accessToken, err := code.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatal(err)
	}
	t.Log(accessToken)

	token, err := jwt.ParseWithClaims(accessToken, &types.AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			t.Error("token parse err")
		}
		return []byte(testSecret), nil
	})
	if err != nil {
		t.Fatal(err)
	}
	claims, ok := token.Claims.(*types.AuthClaims)
	if !ok || !token.Valid {
		t.Fatal("token should be valid")
	}
	if claims.ID != 1 || claims.Name != "admin" {
		t.Errorf("claims = %+v", claims)
	}
}
