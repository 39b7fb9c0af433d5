package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/user/movie-api/internal/model"
)

// MovieStore 电影存储能力，所有实现共享同一套错误约定：
// ErrNotFound / ErrInvalidInput / ErrUnimplemented / *StorageError
type MovieStore interface {
	ListAll(ctx context.Context) ([]model.ResponseMovie, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.ResponseMovie, error)
	GetByTitle(ctx context.Context, title string) ([]model.ResponseMovie, error)
	GetByGenre(ctx context.Context, genre string) ([]model.ResponseMovie, error)
	GetByDirector(ctx context.Context, director string) ([]model.ResponseMovie, error)
	GetByYear(ctx context.Context, year int) ([]model.ResponseMovie, error)
	Create(ctx context.Context, payload model.NewMovie) (*model.Movie, error)
	Update(ctx context.Context, id uuid.UUID, payload model.EditMovie) (*model.Movie, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

var (
	_ MovieStore = (*MovieRepository)(nil)
	_ MovieStore = (*SQLiteMovieStore)(nil)
)
