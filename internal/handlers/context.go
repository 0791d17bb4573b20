package handlers

import (
	"net/http"

	"github.com/campusmkt/marketplace/internal/flash"
	"github.com/campusmkt/marketplace/internal/middleware"
	"github.com/campusmkt/marketplace/internal/models"
	"github.com/campusmkt/marketplace/internal/repositories"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// templateData decorates page data with the fields every template expects.
func templateData(c echo.Context, data echo.Map) echo.Map {
	if data == nil {
		data = echo.Map{}
	}
	data["CurrentUser"] = middleware.CurrentUser(c)
	data["Flash"] = flash.Pop(c)
	data["Locale"] = c.Get("locale")
	return data
}

// PostView is a post decorated with everything the templates render:
// author, interest and comment summaries, and the viewer's own interest flag.
type PostView struct {
	models.Post
	Author            *models.User
	InterestedCount   int64
	InterestedMembers string
	CommentCount      int64
	ViewerInterested  bool
}

// buildPostView assembles the render model for one post. Lookups that fail
// are logged and leave zero values; the page still renders.
func buildPostView(
	post models.Post,
	viewer *models.User,
	users repositories.UserRepository,
	interests repositories.InterestedRepository,
	comments repositories.CommentRepository,
) PostView {
	view := PostView{Post: post}

	author, err := users.GetUserByID(post.UserID)
	if err == nil {
		view.Author = author
	}
	if view.InterestedCount, err = interests.CountByPost(post.ID); err != nil {
		log.Error().Err(err).Uint("post_id", post.ID).Msg("counting interested users")
	}
	if view.InterestedMembers, err = interests.InterestedMembers(post.ID); err != nil {
		log.Error().Err(err).Uint("post_id", post.ID).Msg("listing interested users")
	}
	if view.CommentCount, err = comments.CountByPost(post.ID); err != nil {
		log.Error().Err(err).Uint("post_id", post.ID).Msg("counting comments")
	}
	if viewer != nil {
		if view.ViewerInterested, err = interests.HasInterest(viewer.ID, post.ID); err != nil {
			log.Error().Err(err).Uint("post_id", post.ID).Msg("checking viewer interest")
		}
	}
	return view
}

// HasComment reports whether the post has at least one comment.
func (v PostView) HasComment() bool {
	return v.CommentCount > 0
}

// redirectBack sends the caller to the referring page, falling back to the
// feed when no referrer is present.
func redirectBack(c echo.Context) error {
	target := c.Request().Referer()
	if target == "" {
		target = "/index"
	}
	return c.Redirect(http.StatusFound, target)
}
