package repo

import (
	"context"
	"errors"
	"time"

	"github.com/axiomhq/nhuff"
)

var ErrNotFound = errors.New("not found")

// Record is a named code table.
type Record struct {
	Name      string
	Table     *nhuff.Table
	UpdatedAt time.Time
}

// TableRepo stores code tables by name.
type TableRepo interface {
	Save(ctx context.Context, rec *Record) error
	FindByName(ctx context.Context, name string) (*Record, error)
	List(ctx context.Context) ([]string, error)
}
