package handlers

import (
	"net/http"
	"strconv"

	"github.com/campusmkt/marketplace/internal/flash"
	"github.com/campusmkt/marketplace/internal/middleware"
	"github.com/campusmkt/marketplace/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// PostHandler renders post detail pages and handles deletion
type PostHandler struct {
	postRepository       repositories.PostRepository
	userRepository       repositories.UserRepository
	interestedRepository repositories.InterestedRepository
	commentRepository    repositories.CommentRepository
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	interestedRepo repositories.InterestedRepository,
	commentRepo repositories.CommentRepository,
) *PostHandler {
	return &PostHandler{
		postRepository:       postRepo,
		userRepository:       userRepo,
		interestedRepository: interestedRepo,
		commentRepository:    commentRepo,
	}
}

// RegisterPostRoutes registers the post detail and delete routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.GET("/post/:post_id", h.Show)
	g.GET("/delete/:post_id", h.Delete)
	g.POST("/delete/:post_id", h.Delete)
}

// Show renders a single post with its comments and a comment form
func (h *PostHandler) Show(c echo.Context) error {
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

	viewer := middleware.CurrentUser(c)
	view := buildPostView(*post, viewer,
		h.userRepository, h.interestedRepository, h.commentRepository)

	comments, err := h.commentRepository.GetCommentsByPostID(post.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	type commentView struct {
		Text     string
		Username string
	}
	commentViews := make([]commentView, len(comments))
	for i, comment := range comments {
		commentViews[i] = commentView{Text: comment.Text}
		if author, err := h.userRepository.GetUserByID(comment.UserID); err == nil {
			commentViews[i].Username = author.Username
		}
	}

	return c.Render(http.StatusOK, "individual_post.html", templateData(c, echo.Map{
		"Title":    "Post",
		"Post":     view,
		"Comments": commentViews,
	}))
}

// Delete removes a post. Unlike the rest of the routes this one historically
// enforced nothing; it now requires both authentication and ownership.
func (h *PostHandler) Delete(c echo.Context) error {
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
	if post.UserID != viewer.ID {
		return echo.NewHTTPError(http.StatusForbidden, "You can only delete your own posts")
	}

	if err := h.postRepository.DeletePost(post.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	flash.Set(c, "success", "Post deleted!")
	return c.Redirect(http.StatusFound, "/user/"+viewer.Username)
}
