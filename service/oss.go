package service

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/config"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/response"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
)

const maxImageSize int64 = 10 << 20 // 10MB

var allowedImage = map[string]bool{
	"jpeg": true,
	"png":  true,
	"webp": true,
}

type OssService struct {
	Client     *oss.Client
	BucketName string
	Domain     string
}

var _ IOssService = (*OssService)(nil)

type IOssService interface {
	// UploadReader 上传流
	UploadReader(ctx context.Context, reader io.Reader, objectKey string) error

	// UploadImage 校验并上传图片，返回对外访问地址
	UploadImage(ctx context.Context, uid uint64, header *multipart.FileHeader) (string, error)
}

func NewOssService(cfg *config.OssConfig) IOssService {
	ossCfg := oss.LoadDefaultConfig().
		WithEndpoint(cfg.Endpoint).
		WithRegion(cfg.Region).
		WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.AccessKeySecret,
			),
		)

	return &OssService{
		Client:     oss.NewClient(ossCfg),
		BucketName: cfg.Bucket,
		Domain:     strings.TrimRight(cfg.Domain, "/"),
	}
}

func (s *OssService) UploadImage(ctx context.Context, uid uint64, header *multipart.FileHeader) (string, error) {
	if header == nil {
		return "", response.BadRequest("请选择图片")
	}
	// header.Size 不可信，只做第一道拦截
	if header.Size <= 0 || header.Size > maxImageSize {
		return "", response.BadRequest("图片不能超过10MB")
	}

	f, err := header.Open()
	if err != nil {
		return "", response.BadRequest("读取文件失败")
	}
	defer f.Close()

	seeker, ok := f.(io.ReadSeeker)
	if !ok {
		return "", fmt.Errorf("uploaded file is not seekable")
	}

	format, err := detectImage(seeker)
	if err != nil {
		return "", err
	}

	ext := "." + format
	if format == "jpeg" {
		ext = ".jpg"
	}
	objectKey := fmt.Sprintf("avatar/%s/%d/%s%s",
		time.Now().Format("2006/01/02"),
		uid,
		uuid.NewString(),
		ext,
	)

	if err := s.UploadReader(ctx, io.LimitReader(seeker, maxImageSize+1), objectKey); err != nil {
		return "", err
	}
	return s.Domain + "/" + objectKey, nil
}

// detectImage 校验 MIME 与实际格式，读完后把游标放回开头
func detectImage(seeker io.ReadSeeker) (string, error) {
	head := make([]byte, 512)
	n, _ := seeker.Read(head)
	contentType := http.DetectContentType(head[:n])
	if !allowedImage[strings.TrimPrefix(contentType, "image/")] {
		return "", response.BadRequest("不支持的图片格式")
	}
	if _, err := seeker.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	// 只读头部取格式，不解码全图
	_, format, err := image.DecodeConfig(seeker)
	if err != nil {
		return "", response.BadRequest("图片已损坏")
	}
	format = strings.ToLower(format)
	if !allowedImage[format] {
		return "", response.BadRequest("不支持的图片格式")
	}
	if _, err := seeker.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return format, nil
}

func (s *OssService) UploadReader(ctx context.Context, reader io.Reader, objectKey string) error {
	_, err := s.Client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(objectKey),
		Body:   reader,
	})
	return err
}
