package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedGetters(t *testing.T) {
	c := map[string]string{
		"PORT":             "4000",
		"BAD_INT":          "four",
		"RUN_MIGRATIONS":   "true",
		"CACHE_TTL":        "90m",
		"ACCEPTED_ORIGINS": " http://a.test, ,http://b.test ",
		"EMPTY":            "",
	}

	assert.Equal(t, 4000, GetInt(c, "PORT", 3001))
	assert.Equal(t, 3001, GetInt(c, "BAD_INT", 3001))
	assert.Equal(t, 3001, GetInt(nil, "PORT", 3001))
	assert.True(t, GetBool(c, "RUN_MIGRATIONS", false))
	assert.False(t, GetBool(c, "MISSING", false))
	assert.Equal(t, 90*time.Minute, GetDuration(c, "CACHE_TTL", time.Hour))
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, GetStringSlice(c, "ACCEPTED_ORIGINS", nil))
	assert.Equal(t, []string{"x"}, GetStringSlice(c, "EMPTY", []string{"x"}))
	assert.Equal(t, "fallback", GetString(c, "EMPTY", "fallback"))
}

func TestIsProduction(t *testing.T) {
	assert.True(t, IsProduction(map[string]string{"ENVIRONMENT": "Production"}))
	assert.False(t, IsProduction(map[string]string{}))
}

func TestLoad_ReadsDotEnvWithoutOverriding(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("CHAMELEON_TEST_FROM_FILE=file\nCHAMELEON_TEST_PRESET=file\n"), 0o600))

	t.Setenv("CHAMELEON_TEST_PRESET", "env")
	t.Cleanup(func() { os.Unsetenv("CHAMELEON_TEST_FROM_FILE") })

	c, err := Load(envFile, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "file", c["CHAMELEON_TEST_FROM_FILE"])
	assert.Equal(t, "env", c["CHAMELEON_TEST_PRESET"])
}

type fakeParameterGetter struct {
	value string
	err   error
	asked string
}

func (f *fakeParameterGetter) GetParameter(_ context.Context, in *ssm.GetParameterInput, _ ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
	f.asked = *in.Name
	if f.err != nil {
		return nil, f.err
	}
	return &ssm.GetParameterOutput{Parameter: &types.Parameter{Value: &f.value}}, nil
}

func TestResolveDatabaseURL(t *testing.T) {
	ctx := context.Background()

	url, err := ResolveDatabaseURL(ctx, map[string]string{"DATABASE_URL": "postgres://direct"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "postgres://direct", url)

	getter := &fakeParameterGetter{value: "postgres://from-ssm"}
	url, err = ResolveDatabaseURL(ctx, map[string]string{"DATABASE_URL_SSM_PARAM": "/site/db"}, getter)
	require.NoError(t, err)
	assert.Equal(t, "postgres://from-ssm", url)
	assert.Equal(t, "/site/db", getter.asked)

	_, err = ResolveDatabaseURL(ctx, map[string]string{"DATABASE_URL_SSM_PARAM": "/site/db"}, &fakeParameterGetter{err: errors.New("denied")})
	assert.Error(t, err)

	_, err = ResolveDatabaseURL(ctx, map[string]string{"DATABASE_URL_SSM_PARAM": "/site/db"}, nil)
	assert.Error(t, err)
}
