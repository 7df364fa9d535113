// Package repomanager vends the repositories of one storage backend and
// owns its lifecycle (migrations, readiness, close).
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/gqlblog/internal/server/repositories/posts"
	"github.com/dmitrijs2005/gqlblog/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Ping(ctx context.Context) error
	Users() users.Repository
	Posts() posts.Repository
	Close() error
}
