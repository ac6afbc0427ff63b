package services

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Service stores uploaded files (resumes, project screenshots)
type S3Service struct {
	Client S3API
	Bucket string
}

// S3API is the subset of the S3 client used by this service
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// InitializeS3Client initializes the S3 client
func InitializeS3Client(region string) *s3.Client {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(region))
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	return s3.NewFromConfig(cfg)
}

// UploadResume stores a resume file under a timestamped key and returns the key
func (s *S3Service) UploadResume(ctx context.Context, fileName, contentType string, data []byte) (string, error) {
	return s.upload(ctx, "resumes/", fileName, contentType, data)
}

// UploadScreenshot stores a project screenshot under a timestamped key and
// returns the key
func (s *S3Service) UploadScreenshot(ctx context.Context, fileName string, data []byte) (string, error) {
	return s.upload(ctx, "screenshots/", fileName, "application/octet-stream", data)
}

func (s *S3Service) upload(ctx context.Context, prefix, fileName, contentType string, data []byte) (string, error) {
	key := prefix + time.Now().Format("20060102150405") + "-" + fileName
	_, err := s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
		Body:        bytes.NewReader(data),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload '%s' to bucket '%s': %w", key, s.Bucket, err)
	}
	return key, nil
}
