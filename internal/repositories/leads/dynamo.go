// Package leads provides storage repositories for contact-form leads over
// the shared single-table layout: leads key on "LEAD#<id>" with a fixed
// "METADATA" sort key and a "LEAD" discriminant.
package leads

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/dmitrijs2005/blogcrm/internal/models"
)

const (
	keyPrefix  = "LEAD#"
	skMetadata = "METADATA"
	typeLead   = "LEAD"
)

// DynamoAPI is the subset of the DynamoDB client used by this repository.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

type leadRecord struct {
	PK   string `dynamodbav:"pk"`
	SK   string `dynamodbav:"sk"`
	Type string `dynamodbav:"type"`
	models.Lead
}

// DynamoRepository implements Repository over a DynamoDB table.
type DynamoRepository struct {
	client DynamoAPI
	table  string
}

// NewDynamoRepository constructs a repository bound to the given client and
// table name.
func NewDynamoRepository(client DynamoAPI, table string) *DynamoRepository {
	return &DynamoRepository{client: client, table: table}
}

func pk(id string) string {
	return keyPrefix + id
}

func (r *DynamoRepository) Create(ctx context.Context, lead *models.Lead) error {
	rec := leadRecord{PK: pk(lead.ID), SK: skMetadata, Type: typeLead, Lead: *lead}
	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return fmt.Errorf("marshal lead: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put lead: %w", err)
	}
	return nil
}

func (r *DynamoRepository) List(ctx context.Context) ([]*models.Lead, error) {
	expr, err := expression.NewBuilder().
		WithFilter(expression.BeginsWith(expression.Name("pk"), keyPrefix)).
		Build()
	if err != nil {
		return nil, fmt.Errorf("build scan expression: %w", err)
	}

	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName:                 aws.String(r.table),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})

	var result []*models.Lead
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan leads: %w", err)
		}
		for _, item := range page.Items {
			var rec leadRecord
			if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
				return nil, fmt.Errorf("unmarshal lead: %w", err)
			}
			l := rec.Lead
			result = append(result, &l)
		}
	}
	return result, nil
}
