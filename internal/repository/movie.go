package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/user/movie-api/internal/model"
	"gorm.io/gorm"
)

const (
	selectResponseMovies = `
SELECT m.id, m.title, m.year, m.director, m.poster, m.duration_in_seconds, m.rate,
	COALESCE(array_agg(g.name ORDER BY g.name) FILTER (WHERE g.name IS NOT NULL), '{}') AS genres
FROM movie m
LEFT JOIN movie_genres mg ON m.id = mg.movie_id
LEFT JOIN genre g ON mg.genre_id = g.id`

	genreExistsClause = `EXISTS (
	SELECT 1
	FROM movie_genres mg2
	JOIN genre g2 ON mg2.genre_id = g2.id
	WHERE mg2.movie_id = m.id
	AND LOWER(g2.name) LIKE ?
)`

	insertMovieSQL = `
INSERT INTO movie (id, title, year, director, poster, duration_in_seconds, rate)
VALUES (?, ?, ?, ?, ?, ?, ?)
RETURNING id, title, year, director, poster, duration_in_seconds, rate`

	updateMovieSQL = `
UPDATE movie
SET title = ?, year = ?, director = ?, poster = ?, duration_in_seconds = ?, rate = ?
WHERE id = ?
RETURNING id, title, year, director, poster, duration_in_seconds, rate`

	lockMovieSQL        = `SELECT 1 FROM movie WHERE id = ? FOR UPDATE`
	insertMovieGenreSQL = `INSERT INTO movie_genres (movie_id, genre_id) VALUES (?, ?)`
	deleteMovieGenreSQL = `DELETE FROM movie_genres WHERE movie_id = ?`
	deleteMovieSQL      = `DELETE FROM movie WHERE id = ?`
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// MovieRepository PostgreSQL 电影仓库
type MovieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// ListAll 获取所有电影（含类型）
func (r *MovieRepository) ListAll(ctx context.Context) ([]model.ResponseMovie, error) {
	return queryMovies(r.db.WithContext(ctx), "list", "")
}

// GetByID 根据 ID 查找电影
func (r *MovieRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ResponseMovie, error) {
	return findByID(r.db.WithContext(ctx), id)
}

// GetByTitle 标题模糊匹配（忽略大小写）
func (r *MovieRepository) GetByTitle(ctx context.Context, title string) ([]model.ResponseMovie, error) {
	return queryMovies(r.db.WithContext(ctx), "get_by_title", "LOWER(m.title) LIKE ?", containsPattern(title))
}

// GetByGenre 类型模糊匹配，返回的电影仍带完整类型列表
func (r *MovieRepository) GetByGenre(ctx context.Context, genre string) ([]model.ResponseMovie, error) {
	return queryMovies(r.db.WithContext(ctx), "get_by_genre", genreExistsClause, containsPattern(genre))
}

// GetByDirector 导演模糊匹配（忽略大小写）
func (r *MovieRepository) GetByDirector(ctx context.Context, director string) ([]model.ResponseMovie, error) {
	return queryMovies(r.db.WithContext(ctx), "get_by_director", "LOWER(m.director) LIKE ?", containsPattern(director))
}

// GetByYear 按年份精确匹配
func (r *MovieRepository) GetByYear(ctx context.Context, year int) ([]model.ResponseMovie, error) {
	return queryMovies(r.db.WithContext(ctx), "get_by_year", "m.year = ?", year)
}

// Create 在同一事务中插入电影及其类型关联，任一类型不存在则整体回滚
func (r *MovieRepository) Create(ctx context.Context, payload model.NewMovie) (*model.Movie, error) {
	var created model.Movie
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		genreIDs, err := resolveGenreIDs(tx, payload.Genres)
		if err != nil {
			return err
		}

		movie := payload.Movie(uuid.New())
		row := tx.Raw(insertMovieSQL,
			movie.ID, movie.Title, movie.Year, movie.Director,
			movie.Poster, movie.DurationInSeconds, movie.Rate).Row()
		if err := scanMovie(row, &created); err != nil {
			return err
		}

		return linkGenres(tx, created.ID, genreIDs)
	})
	if err != nil {
		return nil, wrapErr("create", err)
	}
	return &created, nil
}

// Update 读取当前记录、合并、整体写回；携带 genres 时替换关联
func (r *MovieRepository) Update(ctx context.Context, id uuid.UUID, payload model.EditMovie) (*model.Movie, error) {
	var updated model.Movie
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 聚合查询无法 FOR UPDATE，先单独锁住这一行
		if err := tx.Exec(lockMovieSQL, id).Error; err != nil {
			return err
		}
		current, err := findByID(tx, id)
		if err != nil {
			return err
		}

		var genreIDs []int
		if payload.ReplacesGenres() {
			if genreIDs, err = resolveGenreIDs(tx, payload.Genres); err != nil {
				return err
			}
		}

		merged := payload.ApplyTo(current.Movie())
		row := tx.Raw(updateMovieSQL,
			merged.Title, merged.Year, merged.Director,
			merged.Poster, merged.DurationInSeconds, merged.Rate, id).Row()
		if err := scanMovie(row, &updated); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}

		if !payload.ReplacesGenres() {
			return nil
		}
		if err := tx.Exec(deleteMovieGenreSQL, id).Error; err != nil {
			return err
		}
		return linkGenres(tx, id, genreIDs)
	})
	if err != nil {
		return nil, wrapErr("update", err)
	}
	return &updated, nil
}

// Delete 先删关联再删电影；记录不存在时同样视为成功
func (r *MovieRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(deleteMovieGenreSQL, id).Error; err != nil {
			return err
		}
		return tx.Exec(deleteMovieSQL, id).Error
	})
	return wrapErr("delete", err)
}

func findByID(db *gorm.DB, id uuid.UUID) (*model.ResponseMovie, error) {
	movies, err := queryMovies(db, "get_by_id", "m.id = ?", id)
	if err != nil {
		return nil, err
	}
	if len(movies) == 0 {
		return nil, ErrNotFound
	}
	return &movies[0], nil
}

func queryMovies(db *gorm.DB, op, where string, args ...interface{}) ([]model.ResponseMovie, error) {
	query := selectResponseMovies
	if where != "" {
		query += "\nWHERE " + where
	}
	query += "\nGROUP BY m.id"

	rows, err := db.Raw(query, args...).Rows()
	if err != nil {
		return nil, wrapErr(op, err)
	}
	defer rows.Close()

	movies := make([]model.ResponseMovie, 0)
	for rows.Next() {
		var m model.ResponseMovie
		if err := rows.Scan(
			&m.ID, &m.Title, &m.Year, &m.Director,
			&m.Poster, &m.DurationInSeconds, &m.Rate,
			pq.Array(&m.Genres),
		); err != nil {
			return nil, wrapErr(op, err)
		}
		if m.Genres == nil {
			m.Genres = []string{}
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(op, err)
	}
	return movies, nil
}

func scanMovie(row *sql.Row, m *model.Movie) error {
	return row.Scan(&m.ID, &m.Title, &m.Year, &m.Director, &m.Poster, &m.DurationInSeconds, &m.Rate)
}

// resolveGenreIDs 按名称精确查找类型 ID，重复名称只保留一次
func resolveGenreIDs(tx *gorm.DB, names []string) ([]int, error) {
	names = uniqueNames(names)
	if len(names) == 0 {
		return nil, nil
	}

	var genres []model.Genre
	if err := tx.Where("name IN ?", names).Find(&genres).Error; err != nil {
		return nil, err
	}

	byName := make(map[string]int, len(genres))
	for _, g := range genres {
		byName[g.Name] = g.ID
	}

	ids := make([]int, 0, len(names))
	for _, name := range names {
		id, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownGenre, name)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func linkGenres(tx *gorm.DB, movieID uuid.UUID, genreIDs []int) error {
	for _, genreID := range genreIDs {
		if err := tx.Exec(insertMovieGenreSQL, movieID, genreID).Error; err != nil {
			return err
		}
	}
	return nil
}

func uniqueNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// containsPattern 小写并转义 LIKE 通配符后两侧加 %
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}
