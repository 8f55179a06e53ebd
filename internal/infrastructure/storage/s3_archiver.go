package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"path"
	"strings"
	"time"

	"github.com/acg-data/bizgenius-sub001/internal/domain/entities"
	"github.com/acg-data/bizgenius-sub001/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type uploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// S3ReportArchiver writes completed reports as JSON objects under
// <prefix>/YYYY/MM/DD/<session id>.json.
type S3ReportArchiver struct {
	uploader uploader
	bucket   string
	prefix   string
}

var _ interfaces.IReportArchiver = (*S3ReportArchiver)(nil)

// NewS3ReportArchiver builds an archiver from an SDK config. endpoint is set
// for S3-compatible stores (MinIO, LocalStack) and switches to path-style.
func NewS3ReportArchiver(awsCfg aws.Config, bucket, prefix, endpoint string) (*S3ReportArchiver, error) {
	if bucket == "" {
		return nil, errors.New("s3 bucket required")
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
	return newS3ReportArchiver(manager.NewUploader(client), bucket, prefix), nil
}

func newS3ReportArchiver(u uploader, bucket, prefix string) *S3ReportArchiver {
	return &S3ReportArchiver{uploader: u, bucket: bucket, prefix: prefix}
}

type archivedReport struct {
	SessionID   string                             `json:"session_id"`
	UserID      string                             `json:"user_id"`
	Idea        string                             `json:"idea"`
	Result      map[string]entities.SectionContent `json:"result"`
	CreatedAt   time.Time                          `json:"created_at"`
	CompletedAt *time.Time                         `json:"completed_at,omitempty"`
}

func (a *S3ReportArchiver) Archive(ctx context.Context, s entities.GenerationSession) (string, error) {
	if s.ID == "" {
		return "", errors.New("archive: session id required")
	}
	body, err := json.Marshal(archivedReport{
		SessionID:   s.ID,
		UserID:      s.UserID,
		Idea:        s.Idea,
		Result:      s.Result,
		CreatedAt:   s.CreatedAt,
		CompletedAt: s.CompletedAt,
	})
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}

	key := reportKey(a.prefix, s)
	_, err = a.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:               aws.String(a.bucket),
		Key:                  aws.String(key),
		Body:                 bytes.NewReader(body),
		ContentType:          aws.String("application/json"),
		ServerSideEncryption: s3types.ServerSideEncryptionAes256,
	})
	if err != nil {
		return "", fmt.Errorf("upload report: %w", err)
	}

	location := fmt.Sprintf("s3://%s/%s", a.bucket, key)
	log.Printf("[storage][s3] report archived session_id=%s location=%s", s.ID, location)
	return location, nil
}

func reportKey(prefix string, s entities.GenerationSession) string {
	ts := s.CreatedAt
	if s.CompletedAt != nil {
		ts = *s.CompletedAt
	}
	ts = ts.UTC()
	return path.Join(
		strings.Trim(prefix, "/"),
		fmt.Sprintf("%04d", ts.Year()),
		fmt.Sprintf("%02d", int(ts.Month())),
		fmt.Sprintf("%02d", ts.Day()),
		s.ID+".json",
	)
}
