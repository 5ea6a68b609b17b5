// Package repomanager selects and wires a storage driver, vending the
// per-entity repositories the services are built on.
package repomanager

import (
	"github.com/dmitrijs2005/blogcrm/internal/repositories/leads"
	"github.com/dmitrijs2005/blogcrm/internal/repositories/posts"
)

// RepositoryManager vends repository implementations for one storage driver.
type RepositoryManager interface {
	Posts() posts.Repository
	Leads() leads.Repository
}
