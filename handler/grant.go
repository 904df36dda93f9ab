package handler

import (
	"io/ioutil"

	"github.com/gin-gonic/gin"

	"tool-permission/types"
	"tool-permission/utils/aws_s3"
	"tool-permission/utils/render"
)

// UploadGrant 接收授权文档，存到 S3 后返回 grant URL
func UploadGrant(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		render.Json(c, render.ErrParams, err.Error())
		return
	}
	src, err := file.Open()
	if err != nil {
		render.Json(c, render.ErrParams, err.Error())
		return
	}
	defer src.Close()
	data, err := ioutil.ReadAll(src)
	if err != nil {
		render.Json(c, render.Failed, err.Error())
		return
	}

	url, err := aws_s3.UploadGrantFile(data, file.Filename)
	if err != nil {
		render.Json(c, render.Failed, err.Error())
		return
	}
	render.Json(c, render.Ok, types.UploadGrantResult{Grant: url})
}
