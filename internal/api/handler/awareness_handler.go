package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloodlink/coordination-api/internal/api/middleware"
	"github.com/bloodlink/coordination-api/internal/core/domain"
	"github.com/bloodlink/coordination-api/internal/core/ports"
)

// AwarenessHandler serves the awareness feed. Reading is public;
// writing requires a token. The account service resolves the author's
// display name on create.
type AwarenessHandler struct {
	posts    ports.AwarenessService
	accounts ports.AccountService
}

func NewAwarenessHandler(posts ports.AwarenessService, accounts ports.AccountService) *AwarenessHandler {
	return &AwarenessHandler{posts: posts, accounts: accounts}
}

type createPostRequest struct {
	Title     string `json:"title"   validate:"required"`
	Content   string `json:"content" validate:"required"`
	MediaURL  string `json:"mediaUrl"`
	MediaType string `json:"mediaType" validate:"omitempty,oneof=image video"`
}

type updatePostRequest struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	MediaURL  *string `json:"mediaUrl"`
	MediaType *string `json:"mediaType"`
}

// List returns the awareness feed, newest first.
//
// @Summary      List awareness posts
// @Tags         awareness
// @Produce      json
// @Success      200  {array}  domain.AwarenessPost
// @Router       /awareness [get]
func (h *AwarenessHandler) List(c echo.Context) error {
	posts, err := h.posts.List(c.Request().Context())
	if err != nil {
		return err
	}
	if posts == nil {
		posts = []*domain.AwarenessPost{}
	}
	return c.JSON(http.StatusOK, posts)
}

// Get returns one post by id.
//
// @Summary      Get an awareness post
// @Tags         awareness
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  domain.AwarenessPost
// @Failure      404  {object}  map[string]string
// @Router       /awareness/{id} [get]
func (h *AwarenessHandler) Get(c echo.Context) error {
	post, err := h.posts.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Create publishes a post authored by the caller.
//
// @Summary      Create an awareness post
// @Tags         awareness
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post content"
// @Success      201   {object}  domain.AwarenessPost
// @Failure      400   {object}  map[string]string
// @Router       /awareness [post]
func (h *AwarenessHandler) Create(c echo.Context) error {
	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	identity := middleware.Identity(c)
	author, err := h.accounts.GetProfile(c.Request().Context(), identity, identity.ID)
	if err != nil {
		return err
	}

	post, err := h.posts.Create(c.Request().Context(), identity, author.Name, ports.CreatePostInput{
		Title:     req.Title,
		Content:   req.Content,
		MediaURL:  req.MediaURL,
		MediaType: req.MediaType,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, post)
}

// Update patches a post, author or admin only.
//
// @Summary      Update an awareness post
// @Tags         awareness
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Post id"
// @Param        body  body      updatePostRequest  true  "Fields to update"
// @Success      200   {object}  domain.AwarenessPost
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /awareness/{id} [put]
func (h *AwarenessHandler) Update(c echo.Context) error {
	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
	}

	post, err := h.posts.Update(c.Request().Context(), middleware.Identity(c), c.Param("id"), ports.UpdatePostInput{
		Title:     req.Title,
		Content:   req.Content,
		MediaURL:  req.MediaURL,
		MediaType: req.MediaType,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Delete removes a post, author or admin only.
//
// @Summary      Delete an awareness post
// @Tags         awareness
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /awareness/{id} [delete]
func (h *AwarenessHandler) Delete(c echo.Context) error {
	if err := h.posts.Delete(c.Request().Context(), middleware.Identity(c), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Post deleted"})
}

// ToggleLike flips the caller's like on a post.
//
// @Summary      Like or unlike a post
// @Tags         awareness
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  domain.AwarenessPost
// @Failure      404  {object}  map[string]string
// @Router       /awareness/{id}/like [put]
func (h *AwarenessHandler) ToggleLike(c echo.Context) error {
	post, err := h.posts.ToggleLike(c.Request().Context(), middleware.Identity(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}
