package rest

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"

	"github.com/otabekov/blog-portal/internal/blog"
	"github.com/otabekov/blog-portal/internal/db"
	"github.com/otabekov/blog-portal/internal/weather"
)

type PostHandler struct {
	blog    *blog.Manager
	weather *weather.Client
	log     *slog.Logger
}

func NewPostHandler(manager *blog.Manager, weatherClient *weather.Client, log *slog.Logger) *PostHandler {
	return &PostHandler{
		blog:    manager,
		weather: weatherClient,
		log:     log,
	}
}

func (h *PostHandler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

// mapError translates domain errors into transport status codes.
func (h *PostHandler) mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, blog.ErrPostNotFound):
		return h.handleError(c, err, http.StatusNotFound, "post not found")
	case errors.Is(err, blog.ErrSlugTaken):
		return h.handleError(c, err, http.StatusConflict, "slug already in use")
	case errors.Is(err, blog.ErrInvalidInput):
		return h.handleError(c, err, http.StatusBadRequest, err.Error())
	case errors.Is(err, weather.ErrUpstreamUnavailable):
		return h.handleError(c, err, http.StatusBadGateway, "weather provider unavailable")
	default:
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
}

// Posts handles GET /posts/
// @Summary List posts
// @Description Retrieves posts with optional is_active, category_id and tag_id filters, de-duplicated by post id and sorted by created_at DESC
// @Tags posts
// @Produce json
// @Param is_active query bool false "Filter by active flag"
// @Param category_id query int false "Filter by category ID"
// @Param tag_id query int false "Filter by tag ID"
// @Success 200 {array} rest.PostSummary
// @Failure 400,500 {object} map[string]string
// @Router /posts/ [get]
func (h *PostHandler) Posts(c echo.Context) error {
	var filter db.PostFilter
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &filter); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	posts, err := h.blog.PostsByFilter(c.Request().Context(), filter)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, Map(posts, NewPostSummary))
}

// PostBySlug handles GET /posts/:slug/
// @Summary Get post by slug
// @Description Retrieves a single post by slug with category and tags, optionally restricted by is_active
// @Tags posts
// @Produce json
// @Param slug path string true "Post slug"
// @Param is_active query bool false "Filter by active flag"
// @Success 200 {object} rest.Post
// @Failure 400,404,500 {object} map[string]string
// @Router /posts/{slug}/ [get]
func (h *PostHandler) PostBySlug(c echo.Context) error {
	slug := c.Param("slug")

	isActive, err := optionalBool(c, "is_active")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid is_active")
	}

	post, err := h.blog.PostBySlug(c.Request().Context(), slug, isActive)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, NewPost(*post))
}

// CreatePost handles POST /posts/create/
// @Summary Create post
// @Description Creates a post with a caller-supplied slug; is_active defaults to true
// @Tags posts
// @Accept json
// @Produce json
// @Param post body rest.PostCreateRequest true "Post fields"
// @Success 201 {object} rest.Post
// @Failure 400,409,500 {object} map[string]string
// @Router /posts/create/ [post]
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req PostCreateRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	post, err := h.blog.CreatePost(c.Request().Context(), blog.CreatePostInput{
		Title:    req.Title,
		Slug:     req.Slug,
		Content:  req.Content,
		Body:     req.Body,
		IsActive: req.IsActive,
	})
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusCreated, NewPost(*post))
}

// UpdatePost handles PUT and PATCH /posts/:id/
// @Summary Update post
// @Description Applies the present fields; a non-empty title also regenerates the slug
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param post body rest.PostUpdateRequest true "Patch fields"
// @Success 200 {object} rest.Post
// @Failure 400,404,409,500 {object} map[string]string
// @Router /posts/{id}/ [put]
func (h *PostHandler) UpdatePost(c echo.Context) error {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	var req PostUpdateRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	post, err := h.blog.UpdatePost(c.Request().Context(), postID, blog.PostPatch{
		Title:    req.Title,
		Body:     req.Body,
		IsActive: req.IsActive,
	})
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, NewPost(*post))
}

// DeletePost handles DELETE /posts/:id/
// @Summary Delete post
// @Description Removes the post row; comments and likes are not cascaded
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} rest.DeleteResponse
// @Failure 400,404,500 {object} map[string]string
// @Router /posts/{id}/ [delete]
func (h *PostHandler) DeletePost(c echo.Context) error {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	if err := h.blog.DeletePost(c.Request().Context(), postID); err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, DeleteResponse{
		Message: fmt.Sprintf("ID %d successfully deleted", postID),
	})
}

// Comments handles GET /posts/:slug/comments/
// @Summary List comments of a post
// @Tags posts
// @Produce json
// @Param slug path string true "Post slug"
// @Param is_active query bool false "Filter by active flag"
// @Success 200 {array} rest.Comment
// @Failure 400,404,500 {object} map[string]string
// @Router /posts/{slug}/comments/ [get]
func (h *PostHandler) Comments(c echo.Context) error {
	slug := c.Param("slug")

	isActive, err := optionalBool(c, "is_active")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid is_active")
	}

	comments, err := h.blog.CommentsBySlug(c.Request().Context(), slug, isActive)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, Map(comments, NewComment))
}

// Tags handles GET /tags/
// @Summary Get all tags
// @Tags tags
// @Produce json
// @Success 200 {array} rest.Tag
// @Failure 500 {object} map[string]string
// @Router /tags/ [get]
func (h *PostHandler) Tags(c echo.Context) error {
	tags, err := h.blog.Tags(c.Request().Context())
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, Map(tags, NewTag))
}

// Categories handles GET /categories/
// @Summary Get all categories
// @Tags categories
// @Produce json
// @Success 200 {array} rest.Category
// @Failure 500 {object} map[string]string
// @Router /categories/ [get]
func (h *PostHandler) Categories(c echo.Context) error {
	categories, err := h.blog.Categories(c.Request().Context())
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, Map(categories, NewCategory))
}

// Weather handles GET /info/weather/ and GET /posts/weather/
// @Summary Current weather for a coordinate pair
// @Description Proxies a single current-conditions lookup to the forecast provider
// @Tags weather
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Success 200 {object} rest.Weather
// @Failure 400,502 {object} map[string]string
// @Router /info/weather/ [get]
func (h *PostHandler) Weather(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid lat")
	}

	lon, err := strconv.ParseFloat(c.QueryParam("lon"), 64)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid lon")
	}

	report, err := h.weather.Current(c.Request().Context(), lat, lon)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, Weather{
		Coordinates:     report.Coordinates,
		Temperature:     report.Temperature,
		Windspeed:       report.Windspeed,
		ObservationTime: report.ObservationTime,
	})
}

func optionalBool(c echo.Context, name string) (*bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, err
	}

	return &value, nil
}
