package resthandler

import (
	"net/http"

	"github.com/golangid/nearchat/candihelper"
	"github.com/golangid/nearchat/codebase/factory/dependency"
	"github.com/golangid/nearchat/codebase/interfaces"
	"github.com/golangid/nearchat/internal/modules/channel/domain"
	"github.com/golangid/nearchat/internal/modules/channel/usecase"
	"github.com/golangid/nearchat/tracer"
	"github.com/golangid/nearchat/wrapper"
	"github.com/labstack/echo"
)

// RestHandler administrative handler of durable channel
type RestHandler struct {
	mw        interfaces.Middleware
	uc        usecase.ChannelManager
	validator interfaces.Validator
}

// NewRestHandler create new rest handler
func NewRestHandler(uc usecase.ChannelManager, deps dependency.Dependency) *RestHandler {
	return &RestHandler{
		uc: uc, mw: deps.GetMiddleware(), validator: deps.GetValidator(),
	}
}

// Mount handler with root "/"
// handling version in here
func (h *RestHandler) Mount(root *echo.Group) {
	v1Root := root.Group(candihelper.V1)

	channels := v1Root.Group("/channels", h.mw.HTTPBasicAuth())
	channels.GET("/queues", h.listQueues)
	channels.POST("/queues", h.createQueue)
	channels.DELETE("/queues/:name", h.deleteQueue)
	channels.GET("/queues/:name/count", h.countQueue)
	channels.GET("/topics", h.listTopics)
	channels.POST("/topics", h.createTopic)
	channels.DELETE("/topics/:name", h.deleteTopic)
}

func (h *RestHandler) listQueues(c echo.Context) error {
	return wrapper.NewHTTPResponse(http.StatusOK, "Success", h.uc.ListQueues()).JSON(c.Response())
}

func (h *RestHandler) listTopics(c echo.Context) error {
	return wrapper.NewHTTPResponse(http.StatusOK, "Success", h.uc.ListTopics()).JSON(c.Response())
}

func (h *RestHandler) createQueue(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "ChannelDeliveryREST:CreateQueue")
	defer trace.Finish()

	var payload domain.CreateChannelRequest
	if err := c.Bind(&payload); err != nil {
		return wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed parse request body", err).JSON(c.Response())
	}
	if err := h.validator.ValidateStruct(&payload); err != nil {
		return wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed validate payload", err).JSON(c.Response())
	}

	if !h.uc.EnsureQueue(ctx, payload.Name) {
		return wrapper.NewHTTPResponse(http.StatusServiceUnavailable, "Failed declare queue "+payload.Name).JSON(c.Response())
	}
	return wrapper.NewHTTPResponse(http.StatusCreated, "Queue declared", payload).JSON(c.Response())
}

func (h *RestHandler) createTopic(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "ChannelDeliveryREST:CreateTopic")
	defer trace.Finish()

	var payload domain.CreateChannelRequest
	if err := c.Bind(&payload); err != nil {
		return wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed parse request body", err).JSON(c.Response())
	}
	if err := h.validator.ValidateStruct(&payload); err != nil {
		return wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed validate payload", err).JSON(c.Response())
	}

	if !h.uc.EnsureTopic(ctx, payload.Name) {
		return wrapper.NewHTTPResponse(http.StatusServiceUnavailable, "Failed declare topic "+payload.Name).JSON(c.Response())
	}
	return wrapper.NewHTTPResponse(http.StatusCreated, "Topic declared", payload).JSON(c.Response())
}

func (h *RestHandler) deleteQueue(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "ChannelDeliveryREST:DeleteQueue")
	defer trace.Finish()

	if !h.uc.DeleteQueue(ctx, c.Param("name")) {
		return wrapper.NewHTTPResponse(http.StatusNotFound, "Queue "+c.Param("name")+" not deleted").JSON(c.Response())
	}
	return wrapper.NewHTTPResponse(http.StatusOK, "Queue deleted").JSON(c.Response())
}

func (h *RestHandler) deleteTopic(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "ChannelDeliveryREST:DeleteTopic")
	defer trace.Finish()

	if !h.uc.DeleteTopic(ctx, c.Param("name")) {
		return wrapper.NewHTTPResponse(http.StatusNotFound, "Topic "+c.Param("name")+" not deleted").JSON(c.Response())
	}
	return wrapper.NewHTTPResponse(http.StatusOK, "Topic deleted").JSON(c.Response())
}

func (h *RestHandler) countQueue(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "ChannelDeliveryREST:CountQueue")
	defer trace.Finish()

	count := h.uc.MessageCount(ctx, c.Param("name"))
	if count < 0 {
		return wrapper.NewHTTPResponse(http.StatusServiceUnavailable, "Failed inspect queue "+c.Param("name")).JSON(c.Response())
	}
	return wrapper.NewHTTPResponse(http.StatusOK, "Success", map[string]int{"count": count}).JSON(c.Response())
}
