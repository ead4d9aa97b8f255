package media

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PresignedUploadRequest describes an upcoming direct upload.
type PresignedUploadRequest struct {
	Filename    string
	ContentType string
	ExpiresIn   int64 // seconds, defaults to 15 minutes
}

// PresignedUploadResponse carries everything the client needs to PUT the
// file straight to the bucket.
type PresignedUploadResponse struct {
	UploadURL string            `json:"upload_url"`
	FileKey   string            `json:"file_key"`
	FileURL   string            `json:"file_url"`
	ExpiresAt time.Time         `json:"expires_at"`
	Method    string            `json:"method"`
	Headers   map[string]string `json:"headers"`
}

// GeneratePresignedUploadURL returns a presigned PUT so the frontend can
// upload a cover image without routing the bytes through the backend.
func (st *Store) GeneratePresignedUploadURL(ctx context.Context, req PresignedUploadRequest) (*PresignedUploadResponse, error) {
	if st.s3Client == nil {
		if err := st.InitS3(ctx); err != nil {
			return nil, fmt.Errorf("init s3 client: %w", err)
		}
	}

	if st.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket not configured")
	}
	if req.Filename == "" {
		return nil, fmt.Errorf("filename is required")
	}

	if req.ExpiresIn <= 0 {
		req.ExpiresIn = 900
	}

	// unique object name: timestamp plus the original extension
	ext := strings.ToLower(path.Ext(req.Filename))
	uniqueFilename := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)

	key := path.Join(strings.Trim(st.Prefix, "/"), uniqueFilename)
	key = strings.TrimLeft(key, "/")

	contentType := req.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	presignClient := s3.NewPresignClient(st.s3Client)

	presignedReq, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(st.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = time.Duration(req.ExpiresIn) * time.Second
	})

	if err != nil {
		return nil, fmt.Errorf("presign upload url: %w", err)
	}

	base := strings.TrimRight(st.BaseURL, "/")
	if base == "" {
		base = strings.TrimRight(st.Endpoint, "/")
	}

	var fileURL string
	if st.UsePathStyle {
		fileURL = base + "/" + st.Bucket + "/" + key
	} else {
		fileURL = base + "/" + key
	}

	response := &PresignedUploadResponse{
		UploadURL: presignedReq.URL,
		FileKey:   key,
		FileURL:   fileURL,
		ExpiresAt: time.Now().Add(time.Duration(req.ExpiresIn) * time.Second),
		Method:    presignedReq.Method,
		Headers: map[string]string{
			"Content-Type": contentType,
		},
	}

	for k, v := range presignedReq.SignedHeader {
		if len(v) > 0 {
			response.Headers[k] = v[0]
		}
	}

	return response, nil
}

// GeneratePresignedDownloadURL signs a GET for a private object.
func (st *Store) GeneratePresignedDownloadURL(ctx context.Context, key string, expiresIn int64) (string, error) {
	if st.s3Client == nil {
		if err := st.InitS3(ctx); err != nil {
			return "", fmt.Errorf("init s3 client: %w", err)
		}
	}

	if expiresIn <= 0 {
		expiresIn = 3600
	}

	presignClient := s3.NewPresignClient(st.s3Client)

	presignedReq, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(st.Bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = time.Duration(expiresIn) * time.Second
	})

	if err != nil {
		return "", fmt.Errorf("presign download url: %w", err)
	}

	return presignedReq.URL, nil
}
