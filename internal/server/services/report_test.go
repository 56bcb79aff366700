package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/ecotracker/internal/common"
	"github.com/dmitrijs2005/ecotracker/internal/footprint"
	"github.com/dmitrijs2005/ecotracker/internal/server/config"
)

func newReportService(er *fakeEntriesRepo) *ReportService {
	cfg := &config.Config{
		S3Bucket:                  "reports",
		S3Region:                  "us-east-1",
		S3RootUser:                "user",
		S3RootPassword:            "pass",
		S3BaseEndpoint:            "http://localhost:9000",
		ReportURLValidityDuration: 10 * time.Minute,
		NetPolicy:                 string(footprint.NetSigned),
	}
	s := NewReportService(nil, &fakeRepoManager{e: er}, cfg)
	s.now = func() time.Time { return time.Date(2024, 7, 8, 9, 0, 0, 0, time.UTC) }
	return s
}

// stubS3 replaces the S3 seams for the duration of the test.
func stubS3(t *testing.T, put func(*s3.PutObjectInput) error, presign func(*s3.GetObjectInput) (*v4.PresignedHTTPRequest, error)) {
	t.Helper()
	origLoad, origNew, origPre := loadDefaultAWSConfig, newS3ClientFromConfig, newS3PresignClient
	origPut, origGet := putObject, presignGetObject
	t.Cleanup(func() {
		loadDefaultAWSConfig, newS3ClientFromConfig, newS3PresignClient = origLoad, origNew, origPre
		putObject, presignGetObject = origPut, origGet
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client { return &s3.Client{} }
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient { return &s3.PresignClient{} }
	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		if err := put(in); err != nil {
			return nil, err
		}
		return &s3.PutObjectOutput{}, nil
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return presign(in)
	}
}

func TestReportKey(t *testing.T) {
	key := ReportKey("u1", time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))
	re := regexp.MustCompile(`^reports/u1/2024/01/02/[0-9a-f-]{36}\.json$`)
	if !re.MatchString(key) {
		t.Fatalf("unexpected key %q", key)
	}
}

func TestBuildReport(t *testing.T) {
	s := newReportService(&fakeEntriesRepo{listOut: sampleEntries()})

	r, err := s.BuildReport(context.Background(), "u1")
	if err != nil {
		t.Fatalf("BuildReport error: %v", err)
	}
	if r.UserID != "u1" || len(r.Entries) != 3 || r.Dashboard.Summary.EntriesCount != 3 {
		t.Fatalf("unexpected report: %+v", r)
	}
	if string(r.Entries[2].Details) != `{"treesPlanted":2}` {
		t.Fatalf("details not carried: %s", r.Entries[2].Details)
	}

	if _, err := s.BuildReport(context.Background(), ""); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("empty user: want unauthorized, got %v", err)
	}
}

func TestExport_Success(t *testing.T) {
	var uploaded Report
	var putKey, getKey string
	stubS3(t,
		func(in *s3.PutObjectInput) error {
			putKey = aws.ToString(in.Key)
			if aws.ToString(in.Bucket) != "reports" || aws.ToString(in.ContentType) != "application/json" {
				t.Fatalf("unexpected put input: %+v", in)
			}
			b, err := io.ReadAll(in.Body)
			if err != nil {
				return err
			}
			return json.Unmarshal(b, &uploaded)
		},
		func(in *s3.GetObjectInput) (*v4.PresignedHTTPRequest, error) {
			getKey = aws.ToString(in.Key)
			return &v4.PresignedHTTPRequest{URL: "https://example.test/" + getKey}, nil
		},
	)

	s := newReportService(&fakeEntriesRepo{listOut: sampleEntries()})
	res, err := s.Export(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}
	if putKey == "" || putKey != getKey || res.Key != putKey {
		t.Fatalf("keys differ: put=%q get=%q res=%q", putKey, getKey, res.Key)
	}
	if !strings.HasPrefix(res.Key, "reports/u1/2024/07/08/") || !strings.HasSuffix(res.URL, res.Key) {
		t.Fatalf("unexpected result: %+v", res)
	}
	if !res.ExpiresAt.Equal(s.now().Add(10 * time.Minute)) {
		t.Fatalf("unexpected expiry %v", res.ExpiresAt)
	}
	if uploaded.UserID != "u1" || len(uploaded.Entries) != 3 {
		t.Fatalf("unexpected uploaded report: %+v", uploaded)
	}
}

func TestExport_Errors(t *testing.T) {
	t.Run("put", func(t *testing.T) {
		stubS3(t,
			func(*s3.PutObjectInput) error { return errors.New("put-fail") },
			func(*s3.GetObjectInput) (*v4.PresignedHTTPRequest, error) {
				t.Fatalf("presign must not run after failed upload")
				return nil, nil
			},
		)
		_, err := newReportService(&fakeEntriesRepo{}).Export(context.Background(), "u1")
		if err == nil || !strings.Contains(err.Error(), "error uploading report: put-fail") {
			t.Fatalf("want upload error, got %v", err)
		}
	})

	t.Run("presign", func(t *testing.T) {
		stubS3(t,
			func(*s3.PutObjectInput) error { return nil },
			func(*s3.GetObjectInput) (*v4.PresignedHTTPRequest, error) { return nil, errors.New("presign-fail") },
		)
		_, err := newReportService(&fakeEntriesRepo{}).Export(context.Background(), "u1")
		if err == nil || !strings.Contains(err.Error(), "error presigning report: presign-fail") {
			t.Fatalf("want presign error, got %v", err)
		}
	})

	t.Run("config", func(t *testing.T) {
		stubS3(t, func(*s3.PutObjectInput) error { return nil }, nil)
		loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
			return aws.Config{}, errors.New("cfg-fail")
		}
		_, err := newReportService(&fakeEntriesRepo{}).Export(context.Background(), "u1")
		if err == nil || err.Error() != "cfg-fail" {
			t.Fatalf("want cfg-fail, got %v", err)
		}
	})

	t.Run("entries", func(t *testing.T) {
		_, err := newReportService(&fakeEntriesRepo{listErr: errBoom{}}).Export(context.Background(), "u1")
		if !errors.Is(err, errBoom{}) {
			t.Fatalf("want repo error, got %v", err)
		}
	})
}

func TestGetClient_Options(t *testing.T) {
	origLoad, origNew := loadDefaultAWSConfig, newS3ClientFromConfig
	defer func() { loadDefaultAWSConfig, newS3ClientFromConfig = origLoad, origNew }()

	var region string
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			if err := fn(&lo); err != nil {
				return aws.Config{}, err
			}
		}
		region = lo.Region
		if lo.Credentials == nil {
			t.Fatalf("credentials provider not set")
		}
		return aws.Config{Region: lo.Region}, nil
	}
	var opts s3.Options
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		for _, fn := range optFns {
			fn(&opts)
		}
		return &s3.Client{}
	}

	c, err := newReportService(&fakeEntriesRepo{}).getClient(context.Background())
	if err != nil || c == nil {
		t.Fatalf("getClient: c=%v err=%v", c, err)
	}
	if region != "us-east-1" || !opts.UsePathStyle || aws.ToString(opts.BaseEndpoint) != "http://localhost:9000" {
		t.Fatalf("unexpected options: region=%q opts=%+v", region, opts)
	}
}
