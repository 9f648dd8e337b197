// Package fetch resolves remote playlist entries to a local file the
// Reader can open, adapted from the teacher's S3 collection downloader
// (pkg/videoFs) to a single-object fetch keyed by URI instead of a
// whole-collection listing.
package fetch

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// S3Fetcher resolves s3://bucket/key playlist entries to a file under
// CacheDir, downloading on first use.
type S3Fetcher struct {
	CacheDir string
	Region   string
	Client   *s3.S3
}

// NewS3Fetcher builds a fetcher from the standard AWS credential
// environment variables. It returns an error if region or credentials
// are absent, or if the AWS session cannot be created — callers should only construct one
// when a playlist actually contains an s3:// entry.
func NewS3Fetcher(cacheDir string) (*S3Fetcher, error) {
	region := os.Getenv("AWS_DEFAULT_REGION")
	accessKey := os.Getenv("AWS_ACCESS_KEY_ID")
	secretKey := os.Getenv("AWS_SECRET_ACCESS_KEY")
	if region == "" || accessKey == "" || secretKey == "" {
		return nil, fmt.Errorf("fetch: missing one or more of AWS_DEFAULT_REGION, AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY")
	}

	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(region),
		Credentials: credentials.NewStaticCredentials(accessKey, secretKey, ""),
	})
	if err != nil {
		return nil, fmt.Errorf("fetch: create aws session: %w", err)
	}

	return &S3Fetcher{CacheDir: cacheDir, Region: region, Client: s3.New(sess)}, nil
}

// IsRemote reports whether entry names a remote resource this package
// knows how to resolve.
func IsRemote(entry string) bool {
	return strings.HasPrefix(entry, "s3://")
}

// Resolve downloads the s3://bucket/key entry into CacheDir (skipping
// the download if already present there) and returns the local path.
func (f *S3Fetcher) Resolve(entry string) (string, error) {
	bucket, key, err := parseS3URI(entry)
	if err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}

	if err := os.MkdirAll(f.CacheDir, 0o755); err != nil {
		return "", fmt.Errorf("fetch: create cache dir: %w", err)
	}

	localPath := filepath.Join(f.CacheDir, filepath.Base(key))
	if _, err := os.Stat(localPath); err == nil {
		return localPath, nil
	}

	result, err := f.Client.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", fmt.Errorf("fetch: get %s: %w", entry, err)
	}
	defer result.Body.Close()

	out, err := os.Create(localPath)
	if err != nil {
		return "", fmt.Errorf("fetch: create %s: %w", localPath, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, result.Body); err != nil {
		os.Remove(localPath)
		return "", fmt.Errorf("fetch: write %s: %w", localPath, err)
	}

	return localPath, nil
}

// parseS3URI splits "s3://bucket/key/with/slashes" into bucket and key.
func parseS3URI(entry string) (bucket, key string, err error) {
	u, err := url.Parse(entry)
	if err != nil {
		return "", "", fmt.Errorf("parse %q: %w", entry, err)
	}
	if u.Scheme != "s3" {
		return "", "", fmt.Errorf("%q is not an s3:// URI", entry)
	}
	bucket = u.Host
	key = strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("%q must be s3://bucket/key", entry)
	}
	return bucket, key, nil
}
