package handlers

import (
	"net/http"

	"github.com/campusmkt/marketplace/internal/middleware"
	"github.com/campusmkt/marketplace/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// UserHandler renders user profile pages
type UserHandler struct {
	userRepository       repositories.UserRepository
	postRepository       repositories.PostRepository
	interestedRepository repositories.InterestedRepository
	commentRepository    repositories.CommentRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(
	userRepo repositories.UserRepository,
	postRepo repositories.PostRepository,
	interestedRepo repositories.InterestedRepository,
	commentRepo repositories.CommentRepository,
) *UserHandler {
	return &UserHandler{
		userRepository:       userRepo,
		postRepository:       postRepo,
		interestedRepository: interestedRepo,
		commentRepository:    commentRepo,
	}
}

// RegisterUserRoutes registers the profile route
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.GET("/user/:username", h.Profile)
}

// Profile renders a user's posts together with the viewer's own interested
// posts.
func (h *UserHandler) Profile(c echo.Context) error {
	viewer := middleware.CurrentUser(c)

	user, err := h.userRepository.GetUserByUsername(c.Param("username"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	posts, err := h.postRepository.GetPostsByUserID(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	postViews := make([]PostView, len(posts))
	for i, post := range posts {
		postViews[i] = buildPostView(post, viewer,
			h.userRepository, h.interestedRepository, h.commentRepository)
	}

	interests, err := h.interestedRepository.InterestedPosts(viewer.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	interestViews := make([]PostView, len(interests))
	for i, post := range interests {
		interestViews[i] = buildPostView(post, viewer,
			h.userRepository, h.interestedRepository, h.commentRepository)
	}

	return c.Render(http.StatusOK, "user.html", templateData(c, echo.Map{
		"Title":     "User Profile",
		"User":      user,
		"Posts":     postViews,
		"Interests": interestViews,
	}))
}
