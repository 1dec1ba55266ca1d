package repository

import "context"

type GenericRepository[T any] interface {
	Create(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id string) (*T, error)
	Update(ctx context.Context, entity *T) error
	DeleteByID(ctx context.Context, id string) (bool, error)
}
