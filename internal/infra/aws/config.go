package aws

import (
	"context"
	"fmt"

	"weather-watchlist/pkg/resource"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

// LoadConfig builds the AWS configuration from app.cloud.*. Without static keys the default
// credential chain applies (environment variables, shared profile, IAM role).
func LoadConfig(ctx context.Context) (aws.Config, error) {
	options := []func(*config.LoadOptions) error{
		config.WithRegion(resource.GetString("app.cloud.aws-region")),
	}

	accessKey := resource.GetString("app.cloud.aws-access-key-id")
	secretKey := resource.GetString("app.cloud.aws-secret-access-key")
	if accessKey != "" && secretKey != "" {
		options = append(options, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")))
	}

	cfg, err := config.LoadDefaultConfig(ctx, options...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("load aws config: %w", err)
	}
	return cfg, nil
}
