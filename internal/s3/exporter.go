// server/internal/s3/exporter.go
package s3

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"time"

	"dc-directory-api-server/config"
	"dc-directory-api-server/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// putObjectAPI is the slice of the S3 client the exporter needs.
type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Exporter writes catalog snapshots to a bucket as JSON documents.
type Exporter struct {
	client           putObjectAPI
	Bucket           string
	Region           string
	CloudFrontDomain string
	Prefix           string
	now              func() time.Time
}

// Result describes one uploaded snapshot.
type Result struct {
	Key        string    `json:"key"`
	URL        string    `json:"url"`
	Count      int       `json:"count"`
	ExportedAt time.Time `json:"exportedAt"`
}

func NewExporter(ctx context.Context, cfg config.S3Config) (*Exporter, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	// Without static keys the default chain (env, profile, instance role) applies.
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	sdkConfig, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return newExporter(s3.NewFromConfig(sdkConfig), cfg), nil
}

func newExporter(client putObjectAPI, cfg config.S3Config) *Exporter {
	return &Exporter{
		client:           client,
		Bucket:           cfg.Bucket,
		Region:           cfg.Region,
		CloudFrontDomain: cfg.CloudFrontDomain,
		Prefix:           cfg.Prefix,
		now:              time.Now,
	}
}

// Export uploads records as one JSON array and returns where it landed.
func (e *Exporter) Export(ctx context.Context, records []models.DataCenter) (Result, error) {
	if records == nil {
		records = []models.DataCenter{}
	}
	body, err := json.Marshal(records)
	if err != nil {
		return Result{}, fmt.Errorf("encode catalog: %w", err)
	}

	at := e.now().UTC()
	key := path.Join(e.Prefix, fmt.Sprintf("datacenters-%s.json", at.Format("20060102T150405Z")))

	_, err = e.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(e.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to upload catalog to S3: %w", err)
	}

	return Result{Key: key, URL: e.objectURL(key), Count: len(records), ExportedAt: at}, nil
}

func (e *Exporter) objectURL(key string) string {
	if e.CloudFrontDomain != "" {
		return fmt.Sprintf("https://%s/%s", e.CloudFrontDomain, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", e.Bucket, e.Region, key)
}
