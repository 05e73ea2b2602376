package notes

import (
	"context"
	"time"
)

// Repository is the interface for note persistence.
type Repository interface {
	List(ctx context.Context) ([]Note, error)
	Save(ctx context.Context, notes []Note) error
}

// UseCase is the interface for note operations. Every method returns a
// non-raising result; failures are reported in the result body.
type UseCase interface {
	Add(ctx context.Context, loc *time.Location, name, content string) AddResult
	Get(ctx context.Context, name string) GetResult
	GetAll(ctx context.Context) ListResult
	Delete(ctx context.Context, name string) DeleteResult
}
