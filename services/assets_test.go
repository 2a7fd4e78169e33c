package services

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanAssetName(t *testing.T) {
	tests := []struct {
		in   string
		want string
		err  bool
	}{
		{in: "logo.png", want: "logo.png"},
		{in: "img/hero.webp", want: "img/hero.webp"},
		{in: "./img//hero.webp", want: "img/hero.webp"},
		{in: "../secret.env", err: true},
		{in: "img/../../secret.env", err: true},
		{in: "img\\..\\secret", err: true},
		{in: "", err: true},
		{in: "/", err: true},
	}
	for _, tt := range tests {
		got, err := CleanAssetName(tt.in)
		if tt.err {
			assert.ErrorIs(t, err, ErrInvalidAssetPath, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestLocalAssets_Open(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "img"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "img", "a.png"), []byte("png-bytes"), 0o644))
	assets := NewLocalAssets(dir)

	asset, err := assets.Open(context.Background(), "img/a.png")
	require.NoError(t, err)
	defer asset.Body.Close()
	body, err := io.ReadAll(asset.Body)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(body))
	assert.Equal(t, int64(9), asset.Size)

	_, err = assets.Open(context.Background(), "img/missing.png")
	assert.ErrorIs(t, err, ErrAssetNotFound)

	_, err = assets.Open(context.Background(), "img")
	assert.ErrorIs(t, err, ErrAssetNotFound)

	_, err = assets.Open(context.Background(), "../a.png")
	assert.ErrorIs(t, err, ErrInvalidAssetPath)
}

type fakeS3 struct {
	objects map[string]string
	lastKey string
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.lastKey = aws.ToString(in.Key)
	body, ok := f.objects[f.lastKey]
	if !ok {
		return nil, &types.NoSuchKey{Message: aws.String("no such key")}
	}
	return &s3.GetObjectOutput{
		Body:          io.NopCloser(strings.NewReader(body)),
		ContentLength: aws.Int64(int64(len(body))),
	}, nil
}

func TestS3Assets_Open(t *testing.T) {
	client := &fakeS3{objects: map[string]string{"assets/logo.svg": "<svg/>"}}
	assets := NewS3Assets(client, "bucket", "assets")

	asset, err := assets.Open(context.Background(), "logo.svg")
	require.NoError(t, err)
	body, _ := io.ReadAll(asset.Body)
	assert.Equal(t, "<svg/>", string(body))
	assert.Equal(t, int64(6), asset.Size)
	assert.Equal(t, "assets/logo.svg", client.lastKey)

	_, err = assets.Open(context.Background(), "nope.svg")
	assert.ErrorIs(t, err, ErrAssetNotFound)
}
