package resthandler

import (
	"errors"
	"net/http"

	"github.com/golangid/nearchat/candihelper"
	"github.com/golangid/nearchat/codebase/factory/dependency"
	"github.com/golangid/nearchat/codebase/interfaces"
	channeldomain "github.com/golangid/nearchat/internal/modules/channel/domain"
	"github.com/golangid/nearchat/internal/modules/participant/domain"
	"github.com/golangid/nearchat/internal/modules/participant/usecase"
	"github.com/golangid/nearchat/tracer"
	"github.com/golangid/nearchat/wrapper"
	"github.com/labstack/echo"
)

// RestHandler handler
type RestHandler struct {
	mw        interfaces.Middleware
	uc        usecase.ParticipantUsecase
	validator interfaces.Validator
}

// NewRestHandler create new rest handler
func NewRestHandler(uc usecase.ParticipantUsecase, deps dependency.Dependency) *RestHandler {
	return &RestHandler{
		uc: uc, mw: deps.GetMiddleware(), validator: deps.GetValidator(),
	}
}

// Mount handler with root "/"
// handling version in here
func (h *RestHandler) Mount(root *echo.Group) {
	v1Root := root.Group(candihelper.V1)

	participants := v1Root.Group("/participants")
	participants.POST("", h.register)
	participants.GET("", h.list)
	participants.GET("/:id", h.info)
	participants.PATCH("/:id", h.update)
	participants.DELETE("/:id", h.remove, h.mw.HTTPBasicAuth())
	participants.GET("/:id/nearby", h.nearby)
	participants.POST("/:id/logout", h.logout)
	participants.GET("/:id/topics", h.topics)
	participants.POST("/:id/topics/:topic", h.subscribe)
	participants.DELETE("/:id/topics/:topic", h.unsubscribe)
}

func (h *RestHandler) register(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "ParticipantDeliveryREST:Register")
	defer trace.Finish()

	var payload domain.RegisterRequest
	if err := c.Bind(&payload); err != nil {
		return wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed parse request body", err).JSON(c.Response())
	}
	if err := h.validator.ValidateStruct(&payload); err != nil {
		return wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed validate payload", err).JSON(c.Response())
	}

	data, err := h.uc.Register(ctx, &payload)
	if err != nil {
		trace.SetError(err)
		return wrapper.NewHTTPResponse(errorCode(err), err.Error()).JSON(c.Response())
	}

	return wrapper.NewHTTPResponse(http.StatusCreated, "Participant registered", data).JSON(c.Response())
}

func (h *RestHandler) list(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "ParticipantDeliveryREST:List")
	defer trace.Finish()

	return wrapper.NewHTTPResponse(http.StatusOK, "Success", h.uc.List(ctx)).JSON(c.Response())
}

func (h *RestHandler) info(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "ParticipantDeliveryREST:Info")
	defer trace.Finish()

	data, err := h.uc.Info(ctx, c.Param("id"))
	if err != nil {
		return wrapper.NewHTTPResponse(errorCode(err), err.Error()).JSON(c.Response())
	}

	return wrapper.NewHTTPResponse(http.StatusOK, "Success", data).JSON(c.Response())
}

func (h *RestHandler) update(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "ParticipantDeliveryREST:Update")
	defer trace.Finish()

	var payload domain.UpdateRequest
	if err := c.Bind(&payload); err != nil {
		return wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed parse request body", err).JSON(c.Response())
	}
	if payload.IsEmpty() {
		return wrapper.NewHTTPResponse(http.StatusBadRequest, "Nothing to update").JSON(c.Response())
	}
	if err := h.validator.ValidateStruct(&payload); err != nil {
		return wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed validate payload", err).JSON(c.Response())
	}

	data, err := h.uc.Update(ctx, c.Param("id"), &payload)
	if err != nil {
		return wrapper.NewHTTPResponse(errorCode(err), err.Error()).JSON(c.Response())
	}

	return wrapper.NewHTTPResponse(http.StatusOK, "Participant updated", data).JSON(c.Response())
}

func (h *RestHandler) remove(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "ParticipantDeliveryREST:Remove")
	defer trace.Finish()

	if err := h.uc.Remove(ctx, c.Param("id")); err != nil {
		return wrapper.NewHTTPResponse(errorCode(err), err.Error()).JSON(c.Response())
	}

	return wrapper.NewHTTPResponse(http.StatusOK, "Participant removed").JSON(c.Response())
}

func (h *RestHandler) nearby(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "ParticipantDeliveryREST:Nearby")
	defer trace.Finish()

	results := h.uc.Nearby(ctx, c.Param("id"))
	data := make([]domain.NearbyResult, 0, len(results))
	for _, res := range results {
		res.DistanceKm = res.RoundedDistanceKm()
		data = append(data, res)
	}
	return wrapper.NewHTTPResponse(http.StatusOK, "Success", data).JSON(c.Response())
}

func (h *RestHandler) logout(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "ParticipantDeliveryREST:Logout")
	defer trace.Finish()

	if err := h.uc.SetStatus(ctx, c.Param("id"), domain.StatusOffline); err != nil {
		return wrapper.NewHTTPResponse(errorCode(err), err.Error()).JSON(c.Response())
	}

	return wrapper.NewHTTPResponse(http.StatusOK, "Participant is offline").JSON(c.Response())
}

func (h *RestHandler) topics(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "ParticipantDeliveryREST:Topics")
	defer trace.Finish()

	data, err := h.uc.Topics(ctx, c.Param("id"))
	if err != nil {
		return wrapper.NewHTTPResponse(errorCode(err), err.Error()).JSON(c.Response())
	}

	return wrapper.NewHTTPResponse(http.StatusOK, "Success", data).JSON(c.Response())
}

func (h *RestHandler) subscribe(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "ParticipantDeliveryREST:Subscribe")
	defer trace.Finish()

	if err := h.uc.Subscribe(ctx, c.Param("id"), c.Param("topic")); err != nil {
		trace.SetError(err)
		return wrapper.NewHTTPResponse(errorCode(err), err.Error()).JSON(c.Response())
	}

	return wrapper.NewHTTPResponse(http.StatusOK, "Subscribed to "+c.Param("topic")).JSON(c.Response())
}

func (h *RestHandler) unsubscribe(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "ParticipantDeliveryREST:Unsubscribe")
	defer trace.Finish()

	if err := h.uc.Unsubscribe(ctx, c.Param("id"), c.Param("topic")); err != nil {
		trace.SetError(err)
		return wrapper.NewHTTPResponse(errorCode(err), err.Error()).JSON(c.Response())
	}

	return wrapper.NewHTTPResponse(http.StatusOK, "Unsubscribed from "+c.Param("topic")).JSON(c.Response())
}

func errorCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrParticipantNotFound), errors.Is(err, domain.ErrTopicNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrParticipantExists):
		return http.StatusConflict
	case errors.Is(err, channeldomain.ErrDurableChannelUnavailable):
		return http.StatusServiceUnavailable
	}
	return http.StatusBadRequest
}
