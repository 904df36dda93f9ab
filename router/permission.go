package router

import (
	"github.com/gin-gonic/gin"

	"tool-permission/config"
	"tool-permission/handler"
	"tool-permission/router/middleware"
)

func InitPermissionRouter(cfg *config.Configuration) *gin.Engine {
	r := initDefaultRouter(cfg)
	v1 := r.Group("/api/v1")
	v1.GET("/ping", handler.Pong)
	{
		v1.POST("/permission/sign", middleware.LimitMiddleware, handler.SignPermission)
		v1.POST("/permission/verify", handler.VerifyPermission)
		v1.POST("/grant/upload", middleware.LimitMiddleware, handler.UploadGrant)
	}
	admin := v1.Group("/admin", middleware.Authorized)
	{
		admin.GET("/permission/list", handler.ListPermission)
		admin.GET("/permission/export", handler.ExportPermissionRecord)
	}
	return r
}
