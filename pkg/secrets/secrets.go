// Package secrets resolves database credentials from AWS Secrets Manager
package secrets

import (
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
)

// DefaultUsername is assumed when the secret carries only a password
const DefaultUsername = "admin"

// Credentials holds the resolved database login
type Credentials struct {
	Username string
	Password string
}

// secretsManagerAPI is the subset of the Secrets Manager client used by the resolver
type secretsManagerAPI interface {
	GetSecretValue(input *secretsmanager.GetSecretValueInput) (*secretsmanager.GetSecretValueOutput, error)
}

// Resolver fetches secret values from AWS Secrets Manager
type Resolver struct {
	client secretsManagerAPI
}

// NewResolver creates a resolver backed by a real Secrets Manager client for the region
func NewResolver(region string) (*Resolver, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &Resolver{
		client: secretsmanager.New(sess),
	}, nil
}

// NewResolverWithClient creates a resolver with a caller-supplied client
func NewResolverWithClient(client secretsManagerAPI) *Resolver {
	return &Resolver{
		client: client,
	}
}

// Resolve fetches the secret and parses it into database credentials
// The secret payload may be either a JSON document
// {"username": "...", "password": "..."} (with "user"/"pass" accepted as
// aliases and the username defaulting to "admin") or a plain string,
// which is treated as a password-only secret
func (r *Resolver) Resolve(secretID string) (*Credentials, error) {
	out, err := r.client.GetSecretValue(&secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretID),
	})
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok {
			switch aerr.Code() {
			case secretsmanager.ErrCodeResourceNotFoundException:
				return nil, fmt.Errorf("secret %q not found: %w", secretID, err)
			case secretsmanager.ErrCodeDecryptionFailure:
				return nil, fmt.Errorf("secret %q could not be decrypted: %w", secretID, err)
			}
		}
		return nil, fmt.Errorf("failed to get secret %q: %w", secretID, err)
	}

	if out.SecretString == nil || *out.SecretString == "" {
		return nil, fmt.Errorf("secret %q has an empty string value", secretID)
	}

	return parseSecret(*out.SecretString), nil
}

// parseSecret interprets the secret payload as JSON credentials or a bare password
func parseSecret(raw string) *Credentials {
	var payload map[string]string
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		// Plain text secret, treat as password only
		return &Credentials{
			Username: DefaultUsername,
			Password: raw,
		}
	}

	username := payload["username"]
	if username == "" {
		username = payload["user"]
	}
	if username == "" {
		username = DefaultUsername
	}

	password := payload["password"]
	if password == "" {
		password = payload["pass"]
	}

	return &Credentials{
		Username: username,
		Password: password,
	}
}
