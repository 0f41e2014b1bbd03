package catalog

import (
	"context"
	"time"

	"codeberg.org/bookhub/server/bookhub/catalog"
)

// persistence used by the handlers; satisfied by *catalog.Repository[T]
type Store[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, doc T) (string, error)
	Update(ctx context.Context, id string, fields catalog.Fields) error
	Delete(ctx context.Context, id string) error
}

// a bound create body that can check itself and build the stored document
type CreateRequest[T any] interface {
	Validate(now time.Time) error
	Document(now time.Time) T
}

// a bound partial update body
type UpdateRequest interface {
	Validate(now time.Time) error
	Fields() catalog.Fields
}

// MessageResponse for simple success messages
type MessageResponse struct {
	Message string `json:"message"`
}
