package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Fahiz07/Travel-Tracker/internal/domain"
	"github.com/Fahiz07/Travel-Tracker/internal/service"
	"github.com/Fahiz07/Travel-Tracker/internal/session"
)

const (
	sessionCookie = "travel_user"
	// defaultUserID is assumed when a request carries no valid session cookie.
	defaultUserID = 1
)

// The two business-rule messages rendered by /add. Anything else the storage
// layer throws at us is logged and shown as the generic message.
const (
	msgStateNotFound     = "State name does not exist, try again."
	msgStateAlreadyAdded = "State has already been added, try again."
	msgAddFailed         = "Something went wrong, try again."
	msgNewUserInvalid    = "Name and color are both required."
	msgNewUserFailed     = "Could not create the member, try again."
)

// Handler wires HTTP routes to the travel service.
type Handler struct {
	travel   service.TravelService
	sessions *session.Manager
	logger   *logrus.Logger
}

func NewHandler(travel service.TravelService, sessions *session.Manager, logger *logrus.Logger) *Handler {
	return &Handler{
		travel:   travel,
		sessions: sessions,
		logger:   logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.index)
	router.POST("/add", h.addState)
	router.POST("/user", h.selectUser)
	router.POST("/new", h.createUser)
}

type addStateForm struct {
	State string `form:"state"`
}

type selectUserForm struct {
	Add  string `form:"add"`
	User string `form:"user"`
}

type newUserForm struct {
	Name  string `form:"name" binding:"required"`
	Color string `form:"color" binding:"required"`
}

// mainView is the model rendered by index.html.
type mainView struct {
	States []string
	Total  int
	Users  []domain.User
	Color  string
	Error  string
}

// newUserView is the model rendered by new.html. Name and Color echo the
// submitted values back into the form after a failure.
type newUserView struct {
	Name  string
	Color string
	Error string
}

func (h *Handler) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", h.mainView(c, ""))
}

func (h *Handler) addState(c *gin.Context) {
	var form addStateForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "index.html", h.mainView(c, msgStateNotFound))
		return
	}

	err := h.travel.AddVisit(c.Request.Context(), h.currentUserID(c), form.State)
	switch {
	case err == nil:
		c.Redirect(http.StatusFound, "/")
	case errors.Is(err, service.ErrStateNotFound):
		c.HTML(http.StatusOK, "index.html", h.mainView(c, msgStateNotFound))
	case errors.Is(err, service.ErrAlreadyVisited):
		c.HTML(http.StatusOK, "index.html", h.mainView(c, msgStateAlreadyAdded))
	default:
		h.logger.WithError(err).Error("add visit")
		c.HTML(http.StatusOK, "index.html", h.mainView(c, msgAddFailed))
	}
}

func (h *Handler) selectUser(c *gin.Context) {
	var form selectUserForm
	if err := c.ShouldBind(&form); err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	if form.Add == "new" {
		c.HTML(http.StatusOK, "new.html", newUserView{})
		return
	}

	// The id is accepted unchecked; the main view degrades to a default
	// color when it points at nobody.
	if id, err := strconv.ParseInt(form.User, 10, 64); err == nil {
		h.setCurrentUser(c, id)
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) createUser(c *gin.Context) {
	var form newUserForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "new.html", newUserView{
			Name:  form.Name,
			Color: form.Color,
			Error: msgNewUserInvalid,
		})
		return
	}

	user, err := h.travel.CreateUser(c.Request.Context(), form.Name, form.Color)
	if err != nil {
		h.logger.WithError(err).Error("create user")
		c.HTML(http.StatusOK, "new.html", newUserView{
			Name:  form.Name,
			Color: form.Color,
			Error: msgNewUserFailed,
		})
		return
	}

	h.setCurrentUser(c, user.ID)
	c.Redirect(http.StatusFound, "/")
}

// mainView assembles the index model for the request's active user. Storage
// failures degrade to an empty list / default color rather than a 500.
func (h *Handler) mainView(c *gin.Context, errMsg string) mainView {
	ctx := c.Request.Context()
	userID := h.currentUserID(c)

	states, err := h.travel.VisitedStates(ctx, userID)
	if err != nil {
		h.logger.WithError(err).Error("list visited states")
		states = nil
	}

	users, err := h.travel.Users(ctx)
	if err != nil {
		h.logger.WithError(err).Error("list users")
		users = nil
	}

	var color string
	user, err := h.travel.User(ctx, userID)
	switch {
	case err == nil:
		color = user.Color
	case errors.Is(err, service.ErrUserNotFound):
		// stale or fabricated id, leave the color empty
	default:
		h.logger.WithError(err).Error("resolve current user")
	}

	return mainView{
		States: states,
		Total:  len(states),
		Users:  users,
		Color:  color,
		Error:  errMsg,
	}
}

func (h *Handler) currentUserID(c *gin.Context) int64 {
	raw, err := c.Cookie(sessionCookie)
	if err != nil {
		return defaultUserID
	}
	id, err := h.sessions.Parse(raw)
	if err != nil {
		return defaultUserID
	}
	return id
}

func (h *Handler) setCurrentUser(c *gin.Context, id int64) {
	token, err := h.sessions.Issue(id)
	if err != nil {
		h.logger.WithError(err).Error("issue session token")
		return
	}
	c.SetCookie(sessionCookie, token, int(h.sessions.TTL().Seconds()), "/", "", false, true)
}
