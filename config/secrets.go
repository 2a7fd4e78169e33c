package config

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/rs/zerolog/log"
)

// ParameterGetter is the subset of the SSM client used to resolve secrets
type ParameterGetter interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// NewParameterGetter builds an SSM client from the default AWS credential chain
func NewParameterGetter(ctx context.Context) (ParameterGetter, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return ssm.NewFromConfig(awsCfg), nil
}

// ResolveDatabaseURL returns DATABASE_URL, or the decrypted value of the SSM
// parameter named by DATABASE_URL_SSM_PARAM when that is set.
func ResolveDatabaseURL(ctx context.Context, c map[string]string, getter ParameterGetter) (string, error) {
	paramName := GetString(c, "DATABASE_URL_SSM_PARAM", "")
	if paramName == "" {
		return GetString(c, "DATABASE_URL", "postgresql://localhost:5432/chameleon_os"), nil
	}
	if getter == nil {
		return "", fmt.Errorf("DATABASE_URL_SSM_PARAM is set but no parameter store client is configured")
	}

	withDecryption := true
	out, err := getter.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           &paramName,
		WithDecryption: &withDecryption,
	})
	if err != nil {
		return "", fmt.Errorf("get ssm parameter %s: %w", paramName, err)
	}
	if out.Parameter == nil || out.Parameter.Value == nil || *out.Parameter.Value == "" {
		return "", fmt.Errorf("ssm parameter %s is empty", paramName)
	}

	log.Info().Str("parameter", paramName).Msg("resolved database URL from parameter store")
	return *out.Parameter.Value, nil
}
