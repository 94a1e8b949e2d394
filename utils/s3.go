package utils

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"mime"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

var s3Client *s3.Client

func InitS3() {
	s3Region := os.Getenv("S3_REGION")
	if s3Region == "" {
		s3Region = os.Getenv("AWS_REGION")
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(s3Region))
	if err != nil {
		log.Fatalf("Unable to load AWS config for S3: %v", err)
	}

	s3Client = s3.NewFromConfig(cfg)
}

// UploadBase64Image stores a "data:<mime>;base64,<data>" payload under
// the given key prefix and returns the public URL plus the final key.
func UploadBase64Image(base64Data, keyPrefix string) (string, string, error) {
	parts := strings.Split(base64Data, ",")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid base64 image")
	}
	meta := parts[0]
	data := parts[1]

	mediaType := strings.SplitN(meta, ":", 2)[1]
	contentType := strings.SplitN(mediaType, ";", 2)[0]

	exts, _ := mime.ExtensionsByType(contentType)
	var ext string
	switch contentType {
	case "image/jpeg", "image/jpg":
		ext = ".jpg"
	default:
		if len(exts) > 0 {
			ext = exts[0]
		} else if p := strings.SplitN(contentType, "/", 2); len(p) == 2 {
			ext = "." + p[1]
		}
	}

	imageData, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", "", fmt.Errorf("failed to decode image: %v", err)
	}

	key := keyPrefix + ext
	_, err = s3Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(os.Getenv("S3_BUCKET")),
		Key:         aws.String(key),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String(contentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload to S3: %v", err)
	}

	cfURL := os.Getenv("CLOUDFRONT_URL")
	return fmt.Sprintf("%s/%s", cfURL, key), key, nil
}

// DeleteObjects removes keys from the photo bucket in a single call.
func DeleteObjects(keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	ids := make([]s3types.ObjectIdentifier, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, s3types.ObjectIdentifier{Key: aws.String(k)})
	}
	_, err := s3Client.DeleteObjects(context.TODO(), &s3.DeleteObjectsInput{
		Bucket: aws.String(os.Getenv("S3_BUCKET")),
		Delete: &s3types.Delete{Objects: ids},
	})
	return err
}

// S3ObjectStore adapts the S3 client to the cleanup job's ObjectStore
// interface (services.ObjectStore).
type S3ObjectStore struct {
	Bucket string
	Prefix string
}

func NewS3ObjectStore() *S3ObjectStore {
	return &S3ObjectStore{Bucket: os.Getenv("S3_CLEANUP_BUCKET")}
}

func (s *S3ObjectStore) ListPage(ctx context.Context, token string, max int) ([]string, string, error) {
	in := &s3.ListObjectsV2Input{
		Bucket:  aws.String(s.Bucket),
		MaxKeys: aws.Int32(int32(max)),
	}
	if s.Prefix != "" {
		in.Prefix = aws.String(s.Prefix)
	}
	if token != "" {
		in.ContinuationToken = aws.String(token)
	}
	out, err := s3Client.ListObjectsV2(ctx, in)
	if err != nil {
		return nil, "", err
	}
	keys := make([]string, 0, len(out.Contents))
	for _, obj := range out.Contents {
		keys = append(keys, aws.ToString(obj.Key))
	}
	next := ""
	if aws.ToBool(out.IsTruncated) {
		next = aws.ToString(out.NextContinuationToken)
	}
	return keys, next, nil
}

func (s *S3ObjectStore) DeleteBatch(ctx context.Context, keys []string) (int, int, error) {
	if len(keys) == 0 {
		return 0, 0, nil
	}
	ids := make([]s3types.ObjectIdentifier, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, s3types.ObjectIdentifier{Key: aws.String(k)})
	}
	out, err := s3Client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(s.Bucket),
		Delete: &s3types.Delete{Objects: ids},
	})
	if err != nil {
		return 0, 0, err
	}
	return len(out.Deleted), len(out.Errors), nil
}
