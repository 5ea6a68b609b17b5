package posts

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/blogcrm/internal/common"
	"github.com/dmitrijs2005/blogcrm/internal/models"
)

type fakeDynamo struct {
	putInput  *dynamodb.PutItemInput
	putErr    error
	getOutput *dynamodb.GetItemOutput
	getErr    error
	scanPages []*dynamodb.ScanOutput
	scanCalls int
}

func (f *fakeDynamo) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.putInput = params
	if f.putErr != nil {
		return nil, f.putErr
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOutput, nil
}

func (f *fakeDynamo) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	out := f.scanPages[f.scanCalls]
	f.scanCalls++
	return out, nil
}

func testPost(slug string) *models.Post {
	return &models.Post{
		Slug:      slug,
		Title:     "Title",
		Status:    models.StatusDraft,
		Tags:      []string{},
		CreatedAt: "2024-01-01T00:00:00.000Z",
		UpdatedAt: "2024-01-01T00:00:00.000Z",
	}
}

func TestDynamoCreate_SetsKeysAndCondition(t *testing.T) {
	fake := &fakeDynamo{}
	repo := NewDynamoRepository(fake, "blog")

	require.NoError(t, repo.Create(context.Background(), testPost("hello")))

	require.NotNil(t, fake.putInput)
	assert.Equal(t, "blog", *fake.putInput.TableName)
	assert.Equal(t, "attribute_not_exists(pk)", *fake.putInput.ConditionExpression)

	pk := fake.putInput.Item["pk"].(*types.AttributeValueMemberS)
	sk := fake.putInput.Item["sk"].(*types.AttributeValueMemberS)
	typ := fake.putInput.Item["type"].(*types.AttributeValueMemberS)
	assert.Equal(t, "POST#hello", pk.Value)
	assert.Equal(t, "METADATA", sk.Value)
	assert.Equal(t, "POST", typ.Value)
}

func TestDynamoCreate_ConditionalFailureMapsToAlreadyExists(t *testing.T) {
	fake := &fakeDynamo{putErr: &types.ConditionalCheckFailedException{}}
	repo := NewDynamoRepository(fake, "blog")

	err := repo.Create(context.Background(), testPost("hello"))
	assert.ErrorIs(t, err, common.ErrAlreadyExists)
}

func TestDynamoCreate_OtherErrorsPassThrough(t *testing.T) {
	fake := &fakeDynamo{putErr: errors.New("throttled")}
	repo := NewDynamoRepository(fake, "blog")

	err := repo.Create(context.Background(), testPost("hello"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrAlreadyExists)
}

func TestDynamoGet_NotFound(t *testing.T) {
	fake := &fakeDynamo{getOutput: &dynamodb.GetItemOutput{}}
	repo := NewDynamoRepository(fake, "blog")

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDynamoGet_RoundTrip(t *testing.T) {
	rec := postRecord{PK: "POST#hello", SK: "METADATA", Type: "POST", Post: *testPost("hello")}
	item, err := attributevalue.MarshalMap(rec)
	require.NoError(t, err)

	fake := &fakeDynamo{getOutput: &dynamodb.GetItemOutput{Item: item}}
	repo := NewDynamoRepository(fake, "blog")

	got, err := repo.Get(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Slug)
	assert.Equal(t, "Title", got.Title)
}

func TestDynamoListAll_WalksAllPages(t *testing.T) {
	mk := func(slug string) map[string]types.AttributeValue {
		rec := postRecord{PK: "POST#" + slug, SK: "METADATA", Type: "POST", Post: *testPost(slug)}
		item, err := attributevalue.MarshalMap(rec)
		require.NoError(t, err)
		return item
	}

	lastKey := map[string]types.AttributeValue{
		"pk": &types.AttributeValueMemberS{Value: "POST#a"},
	}
	fake := &fakeDynamo{scanPages: []*dynamodb.ScanOutput{
		{Items: []map[string]types.AttributeValue{mk("a")}, LastEvaluatedKey: lastKey},
		{Items: []map[string]types.AttributeValue{mk("b")}},
	}}
	repo := NewDynamoRepository(fake, "blog")

	got, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Slug)
	assert.Equal(t, "b", got[1].Slug)
	assert.Equal(t, 2, fake.scanCalls)
}
