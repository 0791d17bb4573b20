package handlers

import (
	"net/http"
	"strings"

	"github.com/campusmkt/marketplace/internal/flash"
	"github.com/campusmkt/marketplace/internal/forms"
	"github.com/campusmkt/marketplace/internal/middleware"
	"github.com/campusmkt/marketplace/internal/models"
	"github.com/campusmkt/marketplace/internal/repositories"
	"github.com/campusmkt/marketplace/internal/uploads"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// FeedHandler renders the shared feed and handles new listings
type FeedHandler struct {
	postRepository       repositories.PostRepository
	userRepository       repositories.UserRepository
	interestedRepository repositories.InterestedRepository
	commentRepository    repositories.CommentRepository
	store                *uploads.Store
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	interestedRepo repositories.InterestedRepository,
	commentRepo repositories.CommentRepository,
	store *uploads.Store,
) *FeedHandler {
	return &FeedHandler{
		postRepository:       postRepo,
		userRepository:       userRepo,
		interestedRepository: interestedRepo,
		commentRepository:    commentRepo,
		store:                store,
	}
}

// RegisterFeedRoutes registers the feed routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/", h.Index)
	g.GET("/index", h.Index)
	g.POST("/", h.CreatePost)
	g.POST("/index", h.CreatePost)
}

// Index renders every post. The whole table is rendered; the configured page
// size is intentionally unused.
func (h *FeedHandler) Index(c echo.Context) error {
	viewer := middleware.CurrentUser(c)

	posts, err := h.postRepository.GetAllPosts()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	views := make([]PostView, len(posts))
	for i, post := range posts {
		views[i] = buildPostView(post, viewer,
			h.userRepository, h.interestedRepository, h.commentRepository)
	}

	return c.Render(http.StatusOK, "index.html", templateData(c, echo.Map{
		"Title": "Home",
		"Posts": views,
	}))
}

// CreatePost handles a new listing submission with image uploads. Files with
// an extension outside {png, jpg, jpeg} are not stored, but still occupy a
// slot in the semicolon-joined filename and path lists so the two lists stay
// index-aligned.
func (h *FeedHandler) CreatePost(c echo.Context) error {
	viewer := middleware.CurrentUser(c)

	var form forms.PostForm
	if err := c.Bind(&form); err != nil {
		flash.Set(c, "error", "Invalid form submission.")
		return c.Redirect(http.StatusFound, "/index")
	}
	if err := c.Validate(&form); err != nil {
		flash.Set(c, "error", "Please fill out all required fields.")
		return c.Redirect(http.StatusFound, "/index")
	}

	multipart, err := c.MultipartForm()
	if err != nil {
		flash.Set(c, "error", "No image provided!")
		return c.Redirect(http.StatusFound, "/index")
	}
	files, ok := multipart.File["images"]
	if !ok || len(files) == 0 {
		flash.Set(c, "error", "No image provided!")
		return c.Redirect(http.StatusFound, "/index")
	}

	var filenames, paths []string
	for _, file := range files {
		if file.Filename == "" {
			flash.Set(c, "error", "No selected file.")
			return c.Redirect(http.StatusFound, "/index")
		}
		if file.Size == 0 {
			flash.Set(c, "error", "File is empty!")
			return c.Redirect(http.StatusFound, "/index")
		}

		if uploads.Allowed(file.Filename) {
			src, err := file.Open()
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
			}
			path, err := h.store.Save(src, file.Filename)
			src.Close()
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
			}
			filenames = append(filenames, uploads.Sanitize(file.Filename))
			paths = append(paths, path)
		} else {
			filenames = append(filenames, "")
			paths = append(paths, "")
		}
	}

	post := &models.Post{
		Title:          form.Title,
		Text:           form.Text,
		Price:          form.Price,
		UserID:         viewer.ID,
		ImageFilenames: strings.Join(filenames, ";"),
		ImagePaths:     strings.Join(paths, ";"),
	}
	if err := h.postRepository.CreatePost(post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	log.Info().Uint("post_id", post.ID).Uint("user_id", viewer.ID).Msg("post created")
	flash.Set(c, "success", "Item posted!")
	return c.Redirect(http.StatusFound, "/index")
}
