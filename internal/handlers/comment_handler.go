package handlers

import (
	"net/http"
	"strconv"

	"github.com/campusmkt/marketplace/internal/flash"
	"github.com/campusmkt/marketplace/internal/forms"
	"github.com/campusmkt/marketplace/internal/middleware"
	"github.com/campusmkt/marketplace/internal/models"
	"github.com/campusmkt/marketplace/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// CommentHandler handles comment submission on posts
type CommentHandler struct {
	commentRepository repositories.CommentRepository
	postRepository    repositories.PostRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(
	commentRepo repositories.CommentRepository,
	postRepo repositories.PostRepository,
) *CommentHandler {
	return &CommentHandler{
		commentRepository: commentRepo,
		postRepository:    postRepo,
	}
}

// RegisterCommentRoutes registers the comment routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.GET("/post/:post_id/comment", h.Comment)
	g.POST("/post/:post_id/comment", h.Comment)
}

// Comment creates a comment on a post from a valid POST. The caller is
// redirected to the feed afterwards, not back to the post.
func (h *CommentHandler) Comment(c echo.Context) error {
	viewer := middleware.CurrentUser(c)

	id, err := strconv.ParseUint(c.Param("post_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	post, err := h.postRepository.GetPostByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if c.Request().Method == http.MethodPost {
		var form forms.CommentForm
		if err := c.Bind(&form); err == nil && c.Validate(&form) == nil {
			comment := &models.Comment{
				Text:   form.Text,
				UserID: viewer.ID,
				PostID: post.ID,
			}
			if err := h.commentRepository.CreateComment(comment); err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
			}
			flash.Set(c, "success", "Your comment has been added to the post!")
		}
	}
	return c.Redirect(http.StatusFound, "/index")
}
