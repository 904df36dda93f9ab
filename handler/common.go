package handler

import (
	"github.com/gin-gonic/gin"

	"tool-permission/utils/eip712_sign"
	"tool-permission/utils/render"
	"tool-permission/utils/workpool"
)

var (
	permissionSigner *eip712_sign.Signer
	auditPool        *workpool.Pool
)

func Init(signer *eip712_sign.Signer, pool *workpool.Pool) {
	permissionSigner = signer
	auditPool = pool
}

func Pong(c *gin.Context) {
	render.Json(c, render.Ok, "pong!")
}
