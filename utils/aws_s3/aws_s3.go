package aws_s3

import (
	"bytes"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/endpoints"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/gabriel-vasile/mimetype"

	"tool-permission/log"
	"tool-permission/utils"
)

type S3Session struct {
	Sess    *session.Session
	Bucket  string
	BaseUrl string
}

var s3Sess *S3Session

func Init(accessKey, secretKey, bucket, baseUrl string) error {
	s3Sess = new(S3Session)
	creds := credentials.NewStaticCredentials(accessKey, secretKey, "")
	s, err := session.NewSession(&aws.Config{
		Credentials: creds,
		Region:      aws.String(endpoints.UsEast2RegionID),
	})
	if err != nil {
		log.Log.Error("aws_s3 Init:", err)
		return err
	}
	s3Sess.Sess = s
	s3Sess.Bucket = bucket
	s3Sess.BaseUrl = baseUrl
	return nil
}

func GetAwsS3Session() *S3Session {
	return s3Sess
}

// UploadGrantFile 上传授权文档，返回写进 Permission.grant 字段的 URL
func UploadGrantFile(data []byte, fileName string) (string, error) {
	if s3Sess == nil || s3Sess.Sess == nil {
		return "", errors.New("s3 session is not initialized")
	}
	contentType := mimetype.Detect(data).String()
	key := path.Join("grant", utils.UUID(), fileName)
	_, err := s3.New(s3Sess.Sess).PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(s3Sess.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		ACL:         aws.String("public-read"),
	})
	if err != nil {
		log.Log.Error("aws_s3 UploadGrantFile:", err)
		return "", err
	}
	return fmt.Sprintf("%s/%s", strings.TrimRight(s3Sess.BaseUrl, "/"), key), nil
}
