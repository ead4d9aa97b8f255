package media

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	appconfig "student-wellness-system/config"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Store saves activity cover images: locally under SaveDir, or through S3
// presigned uploads when a bucket is configured.
type Store struct {
	SaveDir string // local save directory
	BaseURL string // base URL the saved files are served from

	Endpoint     string
	Bucket       string
	Region       string
	Prefix       string
	UsePathStyle bool

	s3Client *s3.Client
}

// NewStore builds a cover store from the S3 section of the configuration.
func NewStore(saveDir, baseURL string) *Store {
	cfg := appconfig.Get()
	return &Store{
		SaveDir:      saveDir,
		BaseURL:      baseURL,
		Endpoint:     cfg.S3.Endpoint,
		Bucket:       cfg.S3.Bucket,
		Region:       cfg.S3.Region,
		Prefix:       cfg.S3.Prefix,
		UsePathStyle: cfg.S3.UsePathStyle,
	}
}

// InitS3 builds the S3 client from static credentials.
func (st *Store) InitS3(ctx context.Context) error {
	cfg := appconfig.Get()
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(st.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3.AccessKey, cfg.S3.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return err
	}

	st.s3Client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if st.Endpoint != "" {
			o.BaseEndpoint = &st.Endpoint
		}
		o.UsePathStyle = st.UsePathStyle
	})
	return nil
}

// SaveLocal stores an uploaded file on disk and returns its served URL.
func (st *Store) SaveLocal(fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := os.MkdirAll(st.SaveDir, os.ModePerm); err != nil {
		return "", err
	}

	ext := filepath.Ext(fileHeader.Filename)
	filename := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	filePath := filepath.Join(st.SaveDir, filename)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}

	return st.BaseURL + "/" + filename, nil
}
