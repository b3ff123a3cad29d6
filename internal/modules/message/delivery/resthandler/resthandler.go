package resthandler

import (
	"errors"
	"net/http"

	"github.com/golangid/nearchat/candihelper"
	"github.com/golangid/nearchat/codebase/factory/dependency"
	"github.com/golangid/nearchat/codebase/interfaces"
	channeldomain "github.com/golangid/nearchat/internal/modules/channel/domain"
	"github.com/golangid/nearchat/internal/modules/message/delivery/workerhandler"
	"github.com/golangid/nearchat/internal/modules/message/domain"
	"github.com/golangid/nearchat/internal/modules/message/usecase"
	"github.com/golangid/nearchat/tracer"
	"github.com/golangid/nearchat/wrapper"
	"github.com/labstack/echo"
)

// RestHandler handler
type RestHandler struct {
	router    usecase.RouterUsecase
	inbox     usecase.InboxUsecase
	poller    *workerhandler.InboxPoller
	validator interfaces.Validator
}

// NewRestHandler create new rest handler
func NewRestHandler(router usecase.RouterUsecase, inbox usecase.InboxUsecase, poller *workerhandler.InboxPoller, deps dependency.Dependency) *RestHandler {
	return &RestHandler{
		router: router, inbox: inbox, poller: poller, validator: deps.GetValidator(),
	}
}

// Mount handler with root "/"
// handling version in here
func (h *RestHandler) Mount(root *echo.Group) {
	v1Root := root.Group(candihelper.V1)

	v1Root.POST("/messages", h.send)
	v1Root.POST("/topics/:topic/messages", h.broadcast)

	inbox := v1Root.Group("/participants/:id")
	inbox.GET("/inbox/sync", h.checkSync)
	inbox.GET("/inbox/async", h.checkAsync)
	inbox.GET("/inbox/count", h.pendingCount)
	inbox.GET("/stream", h.stream)
}

func (h *RestHandler) send(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "MessageDeliveryREST:Send")
	defer trace.Finish()

	var payload domain.SendRequest
	if err := c.Bind(&payload); err != nil {
		return wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed parse request body", err).JSON(c.Response())
	}
	if err := h.validator.ValidateStruct(&payload); err != nil {
		return wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed validate payload", err).JSON(c.Response())
	}

	result, err := h.router.Route(ctx, payload.From, payload.To, payload.Message)
	if err != nil {
		trace.SetError(err)
		return wrapper.NewHTTPResponse(errorCode(err), err.Error()).JSON(c.Response())
	}

	return wrapper.NewHTTPResponse(http.StatusOK, "Message sent ("+string(result.Mode)+")", result).JSON(c.Response())
}

func (h *RestHandler) broadcast(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "MessageDeliveryREST:Broadcast")
	defer trace.Finish()

	var payload domain.BroadcastRequest
	if err := c.Bind(&payload); err != nil {
		return wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed parse request body", err).JSON(c.Response())
	}
	if err := h.validator.ValidateStruct(&payload); err != nil {
		return wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed validate payload", err).JSON(c.Response())
	}

	if err := h.router.Broadcast(ctx, payload.From, c.Param("topic"), payload.Message); err != nil {
		trace.SetError(err)
		return wrapper.NewHTTPResponse(errorCode(err), err.Error()).JSON(c.Response())
	}

	return wrapper.NewHTTPResponse(http.StatusOK, "Message broadcast to "+c.Param("topic")).JSON(c.Response())
}

func (h *RestHandler) checkSync(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "MessageDeliveryREST:CheckSync")
	defer trace.Finish()

	return wrapper.NewHTTPResponse(http.StatusOK, "Success", h.inbox.CheckSync(ctx, c.Param("id"))).JSON(c.Response())
}

func (h *RestHandler) checkAsync(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "MessageDeliveryREST:CheckAsync")
	defer trace.Finish()

	envelopes, err := h.inbox.CheckAsync(ctx, c.Param("id"))
	if err != nil {
		trace.SetError(err)
		if len(envelopes) == 0 {
			return wrapper.NewHTTPResponse(http.StatusServiceUnavailable, err.Error()).JSON(c.Response())
		}
		// envelopes already popped from broker are returned together with the failure
		return wrapper.NewHTTPResponse(http.StatusOK, "Partial drain", envelopes, err).JSON(c.Response())
	}

	return wrapper.NewHTTPResponse(http.StatusOK, "Success", envelopes).JSON(c.Response())
}

func (h *RestHandler) pendingCount(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "MessageDeliveryREST:PendingCount")
	defer trace.Finish()

	count := h.inbox.PendingCount(ctx, c.Param("id"))
	if count < 0 {
		return wrapper.NewHTTPResponse(http.StatusServiceUnavailable, "Failed inspect durable queue").JSON(c.Response())
	}
	return wrapper.NewHTTPResponse(http.StatusOK, "Success", map[string]int{"count": count}).JSON(c.Response())
}

func errorCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnknownRecipient), errors.Is(err, domain.ErrUnknownSender), errors.Is(err, domain.ErrUnknownTopic):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDirectDeliveryFailed), errors.Is(err, domain.ErrPublishFailed):
		return http.StatusBadGateway
	case errors.Is(err, channeldomain.ErrDurableChannelUnavailable):
		return http.StatusServiceUnavailable
	}
	return http.StatusBadRequest
}
