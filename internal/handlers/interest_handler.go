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

// InterestHandler handles the interest and sold toggles
type InterestHandler struct {
	postRepository       repositories.PostRepository
	interestedRepository repositories.InterestedRepository
}

// NewInterestHandler creates a new InterestHandler
func NewInterestHandler(
	postRepo repositories.PostRepository,
	interestedRepo repositories.InterestedRepository,
) *InterestHandler {
	return &InterestHandler{
		postRepository:       postRepo,
		interestedRepository: interestedRepo,
	}
}

// RegisterInterestRoutes registers the toggle routes
func (h *InterestHandler) RegisterInterestRoutes(g *echo.Group) {
	g.GET("/post/:post_id/:action", h.ToggleInterest)
	g.POST("/post/:post_id/:action", h.ToggleInterest)
	g.GET("/soldpost/:post_id/:action", h.ToggleSold)
	g.POST("/soldpost/:post_id/:action", h.ToggleSold)
}

func (h *InterestHandler) lookupPost(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("post_id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	if _, err := h.postRepository.GetPostByID(uint(id)); err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return 0, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return uint(id), nil
}

// ToggleInterest shows or revokes the viewer's interest in a post. Unknown
// actions flash an error and redirect back; the same policy applies to the
// sold toggle.
func (h *InterestHandler) ToggleInterest(c echo.Context) error {
	viewer := middleware.CurrentUser(c)

	postID, err := h.lookupPost(c)
	if err != nil {
		return err
	}

	switch c.Param("action") {
	case "show_interest":
		if err := h.interestedRepository.ShowInterest(viewer.ID, postID); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	case "unshow_interest":
		if err := h.interestedRepository.UnshowInterest(viewer.ID, postID); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	default:
		flash.Set(c, "error", "Unknown action.")
	}
	return redirectBack(c)
}

// ToggleSold marks a post sold or unsold. Both states stay reachable from
// each other; repeated identical calls are no-ops.
func (h *InterestHandler) ToggleSold(c echo.Context) error {
	postID, err := h.lookupPost(c)
	if err != nil {
		return err
	}

	switch c.Param("action") {
	case "mark_sold":
		if err := h.postRepository.SetSold(postID, true); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	case "unmark_sold":
		if err := h.postRepository.SetSold(postID, false); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	default:
		flash.Set(c, "error", "Unknown action.")
	}
	return redirectBack(c)
}
