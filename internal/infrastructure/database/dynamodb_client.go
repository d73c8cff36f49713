package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kalakruti_api/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// EstimatesKindIndex is the GSI used to list estimates of one kind newest
// first.
const EstimatesKindIndex = "kind-created_at-index"

// NewDynamoDBClient builds a client from config. Static credentials are always
// set because DynamoDB Local does not validate them but the SDK requires some.
func NewDynamoDBClient(ctx context.Context, cfg *config.Config) (*dynamodb.Client, error) {
	creds := credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, "")

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithCredentialsProvider(creds),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.DynamoDBEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
		}
	}), nil
}

// TableAPI is the subset of the DynamoDB client used to provision tables.
type TableAPI interface {
	DescribeTable(ctx context.Context, in *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, in *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// EstimatesTableInput describes the estimates table: PK id plus a GSI on
// (kind, created_at).
func EstimatesTableInput(name string) *dynamodb.CreateTableInput {
	return &dynamodb.CreateTableInput{
		TableName:   aws.String(name),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("kind"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("created_at"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
		GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
			{
				IndexName: aws.String(EstimatesKindIndex),
				KeySchema: []types.KeySchemaElement{
					{AttributeName: aws.String("kind"), KeyType: types.KeyTypeHash},
					{AttributeName: aws.String("created_at"), KeyType: types.KeyTypeRange},
				},
				Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
			},
		},
	}
}

func ContactsTableInput(name string) *dynamodb.CreateTableInput {
	return &dynamodb.CreateTableInput{
		TableName:   aws.String(name),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
	}
}

// EnsureTables creates missing tables and waits until they are ACTIVE.
// Transient failures, such as DynamoDB Local still starting, are retried with
// exponential backoff.
func EnsureTables(ctx context.Context, api TableAPI, logger *zap.Logger, tables ...*dynamodb.CreateTableInput) error {
	for _, in := range tables {
		name := aws.ToString(in.TableName)

		policy := backoff.NewExponentialBackOff()
		policy.InitialInterval = 200 * time.Millisecond
		policy.MaxInterval = 5 * time.Second
		policy.MaxElapsedTime = time.Minute

		err := backoff.RetryNotify(
			func() error { return ensureTable(ctx, api, in) },
			backoff.WithContext(policy, ctx),
			func(err error, next time.Duration) {
				logger.Warn("[dynamodb][infra] table not ready, retrying",
					zap.String("table", name), zap.Error(err), zap.Duration("next_attempt_in", next))
			},
		)
		if err != nil {
			return fmt.Errorf("ensure table %s: %w", name, err)
		}
		logger.Info("[dynamodb][infra] table ready", zap.String("table", name))
	}
	return nil
}

var errTableNotActive = errors.New("table not active yet")

func ensureTable(ctx context.Context, api TableAPI, in *dynamodb.CreateTableInput) error {
	out, err := api.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: in.TableName})
	if err == nil {
		if out.Table != nil && out.Table.TableStatus == types.TableStatusActive {
			return nil
		}
		return errTableNotActive
	}

	var notFound *types.ResourceNotFoundException
	if !errors.As(err, &notFound) {
		return err
	}

	if _, err := api.CreateTable(ctx, in); err != nil {
		var inUse *types.ResourceInUseException
		if errors.As(err, &inUse) {
			return errTableNotActive
		}
		return err
	}
	return errTableNotActive
}
