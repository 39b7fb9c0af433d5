package model

import (
	"github.com/google/uuid"
)

// Movie 电影（movie 表的一行）
type Movie struct {
	ID                uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	Title             string    `json:"title" db:"title"`
	Year              int       `json:"year" db:"year" gorm:"index"`
	Director          string    `json:"director" db:"director"`
	Poster            string    `json:"poster" db:"poster"`
	DurationInSeconds int       `json:"duration_in_seconds" db:"duration_in_seconds"`
	Rate              float64   `json:"rate" db:"rate"`
}

func (Movie) TableName() string { return "movie" }

// Genre 类型，由存储分配 ID，名称唯一
type Genre struct {
	ID   int    `json:"id" db:"id" gorm:"primaryKey"`
	Name string `json:"name" db:"name" gorm:"unique;not null"`
}

func (Genre) TableName() string { return "genre" }

// MovieGenre 电影与类型的多对多关联
type MovieGenre struct {
	MovieID uuid.UUID `json:"movie_id" db:"movie_id" gorm:"type:uuid;primaryKey"`
	GenreID int       `json:"genre_id" db:"genre_id" gorm:"primaryKey;autoIncrement:false"`
}

func (MovieGenre) TableName() string { return "movie_genres" }

// ResponseMovie 查询时聚合了类型名称的电影
type ResponseMovie struct {
	ID                uuid.UUID `json:"id"`
	Title             string    `json:"title"`
	Year              int       `json:"year"`
	Director          string    `json:"director"`
	Genres            []string  `json:"genres"`
	Poster            string    `json:"poster"`
	DurationInSeconds int       `json:"duration_in_seconds"`
	Rate              float64   `json:"rate"`
}

// Movie 去掉聚合字段，得到基础记录
func (m ResponseMovie) Movie() Movie {
	return Movie{
		ID:                m.ID,
		Title:             m.Title,
		Year:              m.Year,
		Director:          m.Director,
		Poster:            m.Poster,
		DurationInSeconds: m.DurationInSeconds,
		Rate:              m.Rate,
	}
}

// NewMovie 创建电影的请求体，genres 为已存在的类型名称
type NewMovie struct {
	Title             string   `json:"title" binding:"required"`
	Year              int      `json:"year" binding:"required,gt=0"`
	Director          string   `json:"director" binding:"required"`
	Genres            []string `json:"genres" binding:"omitempty,dive,required"`
	Poster            string   `json:"poster"`
	DurationInSeconds int      `json:"duration_in_seconds" binding:"gte=0"`
	Rate              float64  `json:"rate" binding:"gte=0"`
}

// Movie 用给定 ID 构造待插入的记录
func (n NewMovie) Movie(id uuid.UUID) Movie {
	return Movie{
		ID:                id,
		Title:             n.Title,
		Year:              n.Year,
		Director:          n.Director,
		Poster:            n.Poster,
		DurationInSeconds: n.DurationInSeconds,
		Rate:              n.Rate,
	}
}

// EditMovie 部分更新的请求体，nil 字段表示保持不变。
// Genres 为 nil 时不修改关联；非 nil（包括空数组）时整体替换。
type EditMovie struct {
	Title             *string  `json:"title" binding:"omitempty,min=1"`
	Year              *int     `json:"year" binding:"omitempty,gt=0"`
	Director          *string  `json:"director" binding:"omitempty,min=1"`
	Genres            []string `json:"genres" binding:"omitempty,dive,required"`
	Poster            *string  `json:"poster"`
	DurationInSeconds *int     `json:"duration_in_seconds" binding:"omitempty,gte=0"`
	Rate              *float64 `json:"rate" binding:"omitempty,gte=0"`
}

// ApplyTo 把已提供的字段覆盖到 current 上，ID 不会改变
func (e EditMovie) ApplyTo(current Movie) Movie {
	merged := current
	if e.Title != nil {
		merged.Title = *e.Title
	}
	if e.Year != nil {
		merged.Year = *e.Year
	}
	if e.Director != nil {
		merged.Director = *e.Director
	}
	if e.Poster != nil {
		merged.Poster = *e.Poster
	}
	if e.DurationInSeconds != nil {
		merged.DurationInSeconds = *e.DurationInSeconds
	}
	if e.Rate != nil {
		merged.Rate = *e.Rate
	}
	return merged
}

// ReplacesGenres 请求是否携带了 genres 字段
func (e EditMovie) ReplacesGenres() bool {
	return e.Genres != nil
}
