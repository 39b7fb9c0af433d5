package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/user/movie-api/internal/model"
	"github.com/user/movie-api/internal/utils"
)

// ListMovies 全部电影
func (h *Handler) ListMovies(c *gin.Context) {
	movies, err := h.Store.ListAll(c.Request.Context())
	if err != nil {
		h.fail(c, "list", err, msgNotFound)
		return
	}
	utils.Success(c, movies)
}

// GetMovie 电影详情
func (h *Handler) GetMovie(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	movie, err := h.Store.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "get_by_id", err, msgNotFound)
		return
	}
	utils.Success(c, movie)
}

// GetMoviesByTitle 按标题搜索
func (h *Handler) GetMoviesByTitle(c *gin.Context) {
	movies, err := h.Store.GetByTitle(c.Request.Context(), c.Param("title"))
	if err != nil {
		h.fail(c, "get_by_title", err, msgNotFound)
		return
	}
	utils.Success(c, movies)
}

// GetMoviesByGenre 按类型搜索
func (h *Handler) GetMoviesByGenre(c *gin.Context) {
	movies, err := h.Store.GetByGenre(c.Request.Context(), c.Param("genre"))
	if err != nil {
		h.fail(c, "get_by_genre", err, msgNotFound)
		return
	}
	utils.Success(c, movies)
}

// GetMoviesByDirector 按导演搜索
func (h *Handler) GetMoviesByDirector(c *gin.Context) {
	movies, err := h.Store.GetByDirector(c.Request.Context(), c.Param("director"))
	if err != nil {
		h.fail(c, "get_by_director", err, msgNotFound)
		return
	}
	utils.Success(c, movies)
}

// GetMoviesByYear 按年份筛选
func (h *Handler) GetMoviesByYear(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		utils.BadRequest(c, msgInvalidYear)
		return
	}
	movies, err := h.Store.GetByYear(c.Request.Context(), year)
	if err != nil {
		h.fail(c, "get_by_year", err, msgNotFound)
		return
	}
	utils.Success(c, movies)
}

// CreateMovie 新建电影
func (h *Handler) CreateMovie(c *gin.Context) {
	var req model.NewMovie
	if !h.bindJSON(c, "create", &req, msgNotCreated) {
		return
	}

	movie, err := h.Store.Create(c.Request.Context(), req)
	if err != nil {
		h.fail(c, "create", err, msgNotCreated)
		return
	}
	h.Log.Info("电影已创建", "id", movie.ID, "genres", len(req.Genres))
	utils.Success(c, movie)
}

// UpdateMovie 部分更新
func (h *Handler) UpdateMovie(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req model.EditMovie
	if !h.bindJSON(c, "update", &req, msgNotUpdated) {
		return
	}

	movie, err := h.Store.Update(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, "update", err, msgNotUpdated)
		return
	}
	utils.Success(c, movie)
}

// DeleteMovie 删除电影
func (h *Handler) DeleteMovie(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Store.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, "delete", err, msgNotDeleted)
		return
	}
	utils.SuccessWithMessage(c, msgDeleted)
}
