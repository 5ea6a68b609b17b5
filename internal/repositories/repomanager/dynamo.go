package repomanager

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/dmitrijs2005/blogcrm/internal/repositories/leads"
	"github.com/dmitrijs2005/blogcrm/internal/repositories/posts"
)

// DynamoRepositoryManager vends DynamoDB-backed repositories sharing one
// single-table client.
type DynamoRepositoryManager struct {
	client *dynamodb.Client
	table  string
}

// NewDynamoRepositoryManager constructs a manager bound to the given client
// and table.
func NewDynamoRepositoryManager(client *dynamodb.Client, table string) *DynamoRepositoryManager {
	return &DynamoRepositoryManager{client: client, table: table}
}

// Posts returns a posts.Repository over the shared table.
func (m *DynamoRepositoryManager) Posts() posts.Repository {
	return posts.NewDynamoRepository(m.client, m.table)
}

// Leads returns a leads.Repository over the shared table.
func (m *DynamoRepositoryManager) Leads() leads.Repository {
	return leads.NewDynamoRepository(m.client, m.table)
}
