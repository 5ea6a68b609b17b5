// Package posts provides storage repositories for blog posts over the shared
// single-table layout: posts key on "POST#<slug>" with a fixed "METADATA"
// sort key and a "POST" discriminant.
package posts

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/dmitrijs2005/blogcrm/internal/common"
	"github.com/dmitrijs2005/blogcrm/internal/models"
)

const (
	keyPrefix  = "POST#"
	skMetadata = "METADATA"
	typePost   = "POST"
)

// DynamoAPI is the subset of the DynamoDB client used by this repository.
// *dynamodb.Client satisfies it; tests supply fakes.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// postRecord is the stored shape: the post attributes plus the table keys
// and the discriminant separating posts from leads.
type postRecord struct {
	PK   string `dynamodbav:"pk"`
	SK   string `dynamodbav:"sk"`
	Type string `dynamodbav:"type"`
	models.Post
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

func pk(slug string) string {
	return keyPrefix + slug
}

func (r *DynamoRepository) key(slug string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"pk": &types.AttributeValueMemberS{Value: pk(slug)},
		"sk": &types.AttributeValueMemberS{Value: skMetadata},
	}
}

func marshalRecord(post *models.Post) (map[string]types.AttributeValue, error) {
	rec := postRecord{PK: pk(post.Slug), SK: skMetadata, Type: typePost, Post: *post}
	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return nil, fmt.Errorf("marshal post: %w", err)
	}
	return item, nil
}

func (r *DynamoRepository) Create(ctx context.Context, post *models.Post) error {
	item, err := marshalRecord(post)
	if err != nil {
		return err
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(pk)"),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return common.ErrAlreadyExists
		}
		return fmt.Errorf("put post: %w", err)
	}
	return nil
}

func (r *DynamoRepository) Get(ctx context.Context, slug string) (*models.Post, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       r.key(slug),
	})
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, common.ErrNotFound
	}

	var rec postRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal post: %w", err)
	}
	return &rec.Post, nil
}

func (r *DynamoRepository) Put(ctx context.Context, post *models.Post) error {
	item, err := marshalRecord(post)
	if err != nil {
		return err
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put post: %w", err)
	}
	return nil
}

func (r *DynamoRepository) ListPublished(ctx context.Context) ([]*models.Post, error) {
	filter := expression.BeginsWith(expression.Name("pk"), keyPrefix).
		And(expression.Equal(expression.Name("status"), expression.Value(models.StatusPublished)))
	return r.scan(ctx, filter)
}

func (r *DynamoRepository) ListAll(ctx context.Context) ([]*models.Post, error) {
	return r.scan(ctx, expression.BeginsWith(expression.Name("pk"), keyPrefix))
}

// scan walks every page of a filtered table scan and materializes the whole
// matching set. The table holds one site's posts, so the set is small.
func (r *DynamoRepository) scan(ctx context.Context, filter expression.ConditionBuilder) ([]*models.Post, error) {
	expr, err := expression.NewBuilder().WithFilter(filter).Build()
	if err != nil {
		return nil, fmt.Errorf("build scan expression: %w", err)
	}

	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName:                 aws.String(r.table),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})

	var result []*models.Post
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan posts: %w", err)
		}
		for _, item := range page.Items {
			var rec postRecord
			if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
				return nil, fmt.Errorf("unmarshal post: %w", err)
			}
			p := rec.Post
			result = append(result, &p)
		}
	}
	return result, nil
}
