package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/timeline/internal/dbx"
	"github.com/dmitrijs2005/timeline/internal/server/repositories/events"
	"github.com/dmitrijs2005/timeline/internal/server/repositories/references"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Events(db dbx.DBTX) events.Repository
	References(db dbx.DBTX) references.Repository
}
