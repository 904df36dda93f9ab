package middleware

import (
	"errors"
	"net/http"
	"strings"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"

	"tool-permission/config"
	"tool-permission/types"
	"tool-permission/utils/render"
)

// 管理接口的 token 验证
func Authorized(c *gin.Context) {
	var accessToken string
	secret := config.GetConfig().App.Secret
	authorizationHeader := c.Request.Header.Get("Authorization")
	getToken := c.DefaultQuery("token", "")
	if authorizationHeader == "" && getToken == "" {
		render.AbortJson(c, http.StatusUnauthorized, "Authorization header not provided")
		return
	}
	header := strings.Split(authorizationHeader, " ")
	if len(header) == 2 && header[0] == "Bearer" {
		accessToken = header[1]
	} else {
		accessToken = getToken
	}
	token, err := jwt.ParseWithClaims(accessToken, &types.AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("Token parse error")
		}
		return []byte(secret), nil
	})
	if err != nil {
		var errMsg string
		if ve, ok := err.(*jwt.ValidationError); ok {
			if ve.Errors&jwt.ValidationErrorMalformed != 0 {
				errMsg = "The token not active yet"
			} else if ve.Errors&jwt.ValidationErrorExpired != 0 {
				errMsg = "The token is expired"
			} else if ve.Errors&jwt.ValidationErrorNotValidYet != 0 {
				errMsg = "The token is error"
			} else {
				errMsg = "The token unknown error"
			}
		}
		render.AbortJson(c, http.StatusUnauthorized, errMsg)
		return
	}
	if claims, ok := token.Claims.(*types.AuthClaims); ok && token.Valid {
		c.Set("claims", claims)
		c.Next()
	} else {
		render.AbortJson(c, http.StatusUnauthorized, "Authorization Bearer is error")
		return
	}
}
