package router

import (
	"net/http"

	limit "github.com/aviddiviner/gin-limit"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"tool-permission/config"
)

func initDefaultRouter(cfg *config.Configuration) *gin.Engine {
	if cfg.Server.RunMode != "" {
		gin.SetMode(cfg.Server.RunMode)
	}
	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(Cors())
	if cfg.Server.LimitConnection > 0 {
		r.Use(limit.MaxAllowed(cfg.Server.LimitConnection))
	}
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"result": false,
			"error":  "Method Not Allowed",
		})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"result": false,
			"error":  "Endpoint Not Found",
		})
	})
	// 授权文档上传上限
	r.MaxMultipartMemory = 32 * 1024 * 1024
	return r
}
