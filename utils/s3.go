package utils

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// getStorageConfig returns AWS config for the S3-compatible object store that
// holds artwork and post images.
func getStorageConfig() (aws.Config, error) {
	accessKey := os.Getenv("S3_ACCESS_KEY_ID")
	secretKey := os.Getenv("S3_SECRET_ACCESS_KEY")
	region := os.Getenv("S3_REGION")
	if region == "" {
		region = "auto"
	}

	if accessKey == "" || secretKey == "" {
		return aws.Config{}, fmt.Errorf("S3_ACCESS_KEY_ID or S3_SECRET_ACCESS_KEY is not set")
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(region),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		),
	)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load object storage config: %w", err)
	}

	return cfg, nil
}

func getStorageClient() (*s3.Client, error) {
	cfg, err := getStorageConfig()
	if err != nil {
		return nil, err
	}

	endpoint := os.Getenv("S3_ENDPOINT")
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
	return client, nil
}

func getStorageBucket() (string, error) {
	bucket := os.Getenv("S3_BUCKET_NAME")
	if bucket == "" {
		return "", fmt.Errorf("S3_BUCKET_NAME is not set")
	}
	return bucket, nil
}

// UploadToS3 uploads a file to the image bucket.
func UploadToS3(objectName string, file io.Reader, fileSize int64) error {
	bucket, err := getStorageBucket()
	if err != nil {
		return err
	}
	client, err := getStorageClient()
	if err != nil {
		return err
	}

	contentType := mime.TypeByExtension(path.Ext(objectName))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(objectName),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("object upload failed: %w", err)
	}
	return nil
}

// GenerateSignedURL returns a presigned GET URL for the given object
func GenerateSignedURL(objectName string, expirySeconds int64) (string, error) {
	bucket, err := getStorageBucket()
	if err != nil {
		return "", err
	}
	client, err := getStorageClient()
	if err != nil {
		return "", err
	}

	presigner := s3.NewPresignClient(client)
	presigned, err := presigner.PresignGetObject(context.TODO(),
		&s3.GetObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(objectName),
		},
		func(po *s3.PresignOptions) {
			po.Expires = time.Duration(expirySeconds) * time.Second
		},
	)
	if err != nil {
		return "", fmt.Errorf("failed to presign object URL: %w", err)
	}
	return presigned.URL, nil
}

// UploadToS3AndPresign uploads file to the bucket and returns a presigned URL
func UploadToS3AndPresign(objectName string, file io.ReadSeeker, fileSize int64, expirySeconds int64) (string, error) {
	if err := UploadToS3(objectName, file, fileSize); err != nil {
		return "", err
	}
	return GenerateSignedURL(objectName, expirySeconds)
}

// DeleteFromS3 deletes a file from the image bucket
func DeleteFromS3(objectName string) error {
	bucket, err := getStorageBucket()
	if err != nil {
		return err
	}
	client, err := getStorageClient()
	if err != nil {
		return err
	}

	_, err = client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(objectName),
	})
	if err != nil {
		return fmt.Errorf("object delete failed: %w", err)
	}
	return nil
}
