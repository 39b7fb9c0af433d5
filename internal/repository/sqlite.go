package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/user/movie-api/internal/model"
	"gorm.io/gorm"
)

// SQLiteMovieStore 预留的 SQLite 后端：连接池照常建立，但所有操作直接失败
type SQLiteMovieStore struct {
	db *gorm.DB
}

func NewSQLiteMovieStore(db *gorm.DB) *SQLiteMovieStore {
	return &SQLiteMovieStore{db: db}
}

func unimplemented(op string) error {
	return fmt.Errorf("sqlite %s: %w", op, ErrUnimplemented)
}

func (s *SQLiteMovieStore) ListAll(context.Context) ([]model.ResponseMovie, error) {
	return nil, unimplemented("list")
}

func (s *SQLiteMovieStore) GetByID(context.Context, uuid.UUID) (*model.ResponseMovie, error) {
	return nil, unimplemented("get_by_id")
}

func (s *SQLiteMovieStore) GetByTitle(context.Context, string) ([]model.ResponseMovie, error) {
	return nil, unimplemented("get_by_title")
}

func (s *SQLiteMovieStore) GetByGenre(context.Context, string) ([]model.ResponseMovie, error) {
	return nil, unimplemented("get_by_genre")
}

func (s *SQLiteMovieStore) GetByDirector(context.Context, string) ([]model.ResponseMovie, error) {
	return nil, unimplemented("get_by_director")
}

func (s *SQLiteMovieStore) GetByYear(context.Context, int) ([]model.ResponseMovie, error) {
	return nil, unimplemented("get_by_year")
}

func (s *SQLiteMovieStore) Create(context.Context, model.NewMovie) (*model.Movie, error) {
	return nil, unimplemented("create")
}

func (s *SQLiteMovieStore) Update(context.Context, uuid.UUID, model.EditMovie) (*model.Movie, error) {
	return nil, unimplemented("update")
}

func (s *SQLiteMovieStore) Delete(context.Context, uuid.UUID) error {
	return unimplemented("delete")
}
