package internal

import (
	"errors"
)

type AuthMethod string

const (
	AuthMethodSso       AuthMethod = "sso"       // shared config profile
	AuthMethodAccessKey AuthMethod = "accessKey" // static key/secret/session triple
)

const DefaultRegion = "ap-southeast-2"

var ErrNoCredentials = errors.New("no usable credentials: set --profile, or accessKeyId, secretAccessKey and secretSessionToken together")

// AuthConfig is the credential selection for a single invocation. It is
// never mutated after NewAuthConfig returns it.
type AuthConfig struct {
	Method             AuthMethod
	Region             string
	Profile            string
	AccessKeyId        string
	SecretAccessKey    string
	SecretSessionToken string
	RoleArn            string
}

// NewAuthConfig validates and builds the credential selection. Exactly one
// variant must hold: a non-empty profile, or the complete static triple.
func NewAuthConfig(profile, region, accessKeyId, secretAccessKey, secretSessionToken, roleArn string) (*AuthConfig, error) {
	if region == "" {
		region = DefaultRegion
	}

	switch {
	case profile != "":
		return &AuthConfig{
			Method:  AuthMethodSso,
			Region:  region,
			Profile: profile,
			RoleArn: roleArn,
		}, nil
	case accessKeyId != "" && secretAccessKey != "" && secretSessionToken != "":
		return &AuthConfig{
			Method:             AuthMethodAccessKey,
			Region:             region,
			AccessKeyId:        accessKeyId,
			SecretAccessKey:    secretAccessKey,
			SecretSessionToken: secretSessionToken,
			RoleArn:            roleArn,
		}, nil
	default:
		return nil, ErrNoCredentials
	}
}
