package internal

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// NewConfig resolves an aws.Config from the selected credential variant.
func NewConfig(ctx context.Context, auth *AuthConfig) (aws.Config, error) {
	var (
		opts []func(*config.LoadOptions) error
		cfg  aws.Config
		err  error
	)

	if ctx == nil || auth == nil {
		return aws.Config{}, WrapError(ErrInvalidParam)
	}

	if auth.Region != "" {
		opts = append(opts, config.WithRegion(auth.Region))
	}

	switch auth.Method {
	case AuthMethodSso:
		opts = append(opts, config.WithSharedConfigProfile(auth.Profile))
	case AuthMethodAccessKey:
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(auth.AccessKeyId, auth.SecretAccessKey, auth.SecretSessionToken)))
	}

	cfg, err = config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, WrapError(err)
	}

	if auth.RoleArn != "" {
		stsClient := sts.NewFromConfig(cfg)
		cfg.Credentials = aws.NewCredentialsCache(stscreds.NewAssumeRoleProvider(stsClient, auth.RoleArn))
	}

	return cfg, nil
}
