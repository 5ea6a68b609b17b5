// Package awsx builds the AWS SDK clients shared by both deployment forms.
// Inside Lambda the default chain picks everything up from the execution
// role; for local development an explicit endpoint plus static credentials
// point the clients at LocalStack or MinIO.
package awsx

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// Options selects the target environment for the SDK clients.
type Options struct {
	Region      string
	EndpointURL string
	AccessKey   string
	SecretKey   string
}

// Load resolves the base aws.Config. With an endpoint URL set, static
// credentials replace the default chain so local stacks need no profile.
func Load(ctx context.Context, opts Options) (aws.Config, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(opts.Region),
	}
	if opts.EndpointURL != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("load aws config: %w", err)
	}
	return cfg, nil
}

// NewDynamoClient returns a DynamoDB client, pointed at the custom endpoint
// when one is configured.
func NewDynamoClient(cfg aws.Config, endpointURL string) *dynamodb.Client {
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpointURL != "" {
			o.BaseEndpoint = aws.String(endpointURL)
		}
	})
}

// NewS3Client returns an S3 client. Custom endpoints switch to path-style
// addressing, which local S3 implementations require.
func NewS3Client(cfg aws.Config, endpointURL string) *s3.Client {
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpointURL != "" {
			o.BaseEndpoint = aws.String(endpointURL)
			o.UsePathStyle = true
		}
	})
}

// NewSNSClient returns an SNS client, pointed at the custom endpoint when one
// is configured.
func NewSNSClient(cfg aws.Config, endpointURL string) *sns.Client {
	return sns.NewFromConfig(cfg, func(o *sns.Options) {
		if endpointURL != "" {
			o.BaseEndpoint = aws.String(endpointURL)
		}
	})
}
