package services

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/ecotracker/internal/common"
	"github.com/dmitrijs2005/ecotracker/internal/footprint"
	sc "github.com/dmitrijs2005/ecotracker/internal/server/config"
	"github.com/dmitrijs2005/ecotracker/internal/server/repositories/entries"
	"github.com/dmitrijs2005/ecotracker/internal/server/repositories/repomanager"
	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// ReportEntry is one entry as written to an exported report.
type ReportEntry struct {
	ID           string          `json:"id"`
	Category     string          `json:"category"`
	OccurredAt   time.Time       `json:"occurredAt"`
	CO2Emissions float64         `json:"co2Emissions"`
	CO2Offset    float64         `json:"co2Offset"`
	EcoPoints    int             `json:"ecoPointsEarned"`
	Details      json.RawMessage `json:"details"`
}

// Report is the JSON document uploaded by Export.
type Report struct {
	UserID      string                    `json:"userId"`
	GeneratedAt time.Time                 `json:"generatedAt"`
	Dashboard   footprint.Dashboard       `json:"dashboard"`
	ByCategory  []footprint.CategoryTotal `json:"byCategory"`
	Entries     []ReportEntry             `json:"entries"`
}

// ExportResult locates an uploaded report.
type ExportResult struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ReportService exports a user's entries to S3-compatible object storage.
type ReportService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
	now         func() time.Time
}

func NewReportService(db *sql.DB, rm repomanager.RepositoryManager, cfg *sc.Config) *ReportService {
	return &ReportService{db: db, repomanager: rm, config: cfg, now: time.Now}
}

// ReportKey builds the object key of a new report for userID.
func ReportKey(userID string, at time.Time) string {
	return fmt.Sprintf("reports/%s/%04d/%02d/%02d/%s.json", userID, at.Year(), at.Month(), at.Day(), uuid.New())
}

// BuildReport assembles the report document without uploading it.
func (s *ReportService) BuildReport(ctx context.Context, userID string) (*Report, error) {
	if userID == "" {
		return nil, common.ErrorUnauthorized
	}
	list, err := s.repomanager.Entries(s.db).ListByUser(ctx, userID, entries.ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("error listing entries: %w", err)
	}

	recs := records(list)
	r := &Report{
		UserID:      userID,
		GeneratedAt: s.now().UTC(),
		Dashboard:   footprint.NewDashboard(recs, s.config.Policy()),
		ByCategory:  footprint.ByCategory(recs),
		Entries:     make([]ReportEntry, 0, len(list)),
	}
	for _, e := range list {
		r.Entries = append(r.Entries, ReportEntry{
			ID:           e.ID,
			Category:     e.Category,
			OccurredAt:   e.OccurredAt,
			CO2Emissions: e.CO2Emissions,
			CO2Offset:    e.CO2Offset,
			EcoPoints:    e.EcoPoints,
			Details:      json.RawMessage(e.Details),
		})
	}
	return r, nil
}

// Export uploads the user's report and returns a presigned download URL.
func (s *ReportService) Export(ctx context.Context, userID string) (*ExportResult, error) {
	report, err := s.BuildReport(ctx, userID)
	if err != nil {
		return nil, err
	}
	body, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error encoding report: %w", err)
	}

	client, err := s.getClient(ctx)
	if err != nil {
		return nil, err
	}

	bucket := s.config.S3Bucket
	key := ReportKey(userID, report.GeneratedAt)

	if _, err := putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	}); err != nil {
		return nil, fmt.Errorf("error uploading report: %w", err)
	}

	ttl := s.config.ReportURLValidityDuration
	req, err := presignGetObject(newS3PresignClient(client), ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return nil, fmt.Errorf("error presigning report: %w", err)
	}

	return &ExportResult{Key: key, URL: req.URL, ExpiresAt: report.GeneratedAt.Add(ttl)}, nil
}

func (s *ReportService) getClient(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	}), nil
}
