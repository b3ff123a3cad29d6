package resthandler

import (
	"errors"
	"net/http"

	"github.com/golangid/nearchat/candihelper"
	"github.com/golangid/nearchat/codebase/factory/dependency"
	"github.com/golangid/nearchat/codebase/interfaces"
	"github.com/golangid/nearchat/internal/modules/mailbox/domain"
	"github.com/golangid/nearchat/internal/modules/mailbox/usecase"
	"github.com/golangid/nearchat/tracer"
	"github.com/golangid/nearchat/wrapper"
	"github.com/labstack/echo"
)

// RestHandler handler, receive direct delivery pushed by other node
type RestHandler struct {
	uc        usecase.MailboxUsecase
	validator interfaces.Validator
}

// NewRestHandler create new rest handler
func NewRestHandler(uc usecase.MailboxUsecase, deps dependency.Dependency) *RestHandler {
	return &RestHandler{
		uc: uc, validator: deps.GetValidator(),
	}
}

// Mount handler with root "/"
// handling version in here
func (h *RestHandler) Mount(root *echo.Group) {
	v1Root := root.Group(candihelper.V1)

	mailbox := v1Root.Group("/mailbox")
	mailbox.POST("/:id/deliver", h.deliver)
}

func (h *RestHandler) deliver(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "MailboxDeliveryREST:Deliver")
	defer trace.Finish()

	var payload domain.DeliverRequest
	if err := c.Bind(&payload); err != nil {
		return wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed parse request body", err).JSON(c.Response())
	}
	if err := h.validator.ValidateStruct(&payload); err != nil {
		return wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed validate payload", err).JSON(c.Response())
	}

	if err := h.uc.Deliver(ctx, c.Param("id"), payload.Sender, payload.Message); err != nil {
		code := http.StatusBadRequest
		if errors.Is(err, domain.ErrEndpointUnreachable) {
			code = http.StatusNotFound
		}
		return wrapper.NewHTTPResponse(code, err.Error()).JSON(c.Response())
	}

	return wrapper.NewHTTPResponse(http.StatusOK, "Delivered").JSON(c.Response())
}
