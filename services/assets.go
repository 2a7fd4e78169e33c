package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

var (
	ErrAssetNotFound    = errors.New("asset not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)

// Asset is an open static file. Size and ModTime are zero when unknown.
type Asset struct {
	Body    io.ReadCloser
	Size    int64
	ModTime time.Time
}

// AssetStore opens static assets by slash-separated relative name
type AssetStore interface {
	Open(ctx context.Context, name string) (*Asset, error)
}

// CleanAssetName normalizes name and rejects anything that would escape the
// asset root.
func CleanAssetName(name string) (string, error) {
	if name == "" || strings.Contains(name, "\\") || strings.ContainsRune(name, 0) {
		return "", ErrInvalidAssetPath
	}
	for _, segment := range strings.Split(name, "/") {
		if segment == ".." {
			return "", ErrInvalidAssetPath
		}
	}
	cleaned := strings.TrimPrefix(path.Clean("/"+name), "/")
	if cleaned == "" || cleaned == "." {
		return "", ErrInvalidAssetPath
	}
	return cleaned, nil
}

// LocalAssets serves assets from a directory on disk
type LocalAssets struct {
	Dir string
}

func NewLocalAssets(dir string) LocalAssets {
	return LocalAssets{Dir: dir}
}

func (l LocalAssets) Open(_ context.Context, name string) (*Asset, error) {
	cleaned, err := CleanAssetName(name)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(l.Dir, filepath.FromSlash(cleaned)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrAssetNotFound
	}
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, ErrAssetNotFound
	}
	return &Asset{Body: f, Size: info.Size(), ModTime: info.ModTime()}, nil
}

// S3ObjectGetter is the subset of the S3 client used for assets
type S3ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Assets serves assets from a bucket, optionally under a key prefix
type S3Assets struct {
	client S3ObjectGetter
	bucket string
	prefix string
}

func NewS3Assets(client S3ObjectGetter, bucket, prefix string) S3Assets {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return S3Assets{client: client, bucket: bucket, prefix: prefix}
}

// NewS3AssetsFromEnv builds an S3 client from the default AWS credential chain
func NewS3AssetsFromEnv(ctx context.Context, bucket, prefix string) (S3Assets, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return S3Assets{}, fmt.Errorf("error loading AWS config: %w", err)
	}
	return NewS3Assets(s3.NewFromConfig(cfg), bucket, prefix), nil
}

func (s S3Assets) Open(ctx context.Context, name string) (*Asset, error) {
	cleaned, err := CleanAssetName(name)
	if err != nil {
		return nil, err
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.prefix + cleaned),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, ErrAssetNotFound
		}
		return nil, fmt.Errorf("error fetching asset %s from s3: %w", cleaned, err)
	}

	return &Asset{
		Body:    out.Body,
		Size:    aws.ToInt64(out.ContentLength),
		ModTime: aws.ToTime(out.LastModified),
	}, nil
}
