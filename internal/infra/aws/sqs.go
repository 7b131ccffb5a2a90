package aws

import (
	"weather-watchlist/pkg/resource"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// NewSqsClient creates an SQS client. app.cloud.aws-endpoint points it at LocalStack.
func NewSqsClient(cfg aws.Config) *sqs.Client {
	return sqs.NewFromConfig(cfg, func(o *sqs.Options) {
		if endpoint := resource.GetString("app.cloud.aws-endpoint"); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}
