package resthandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golangid/nearchat/codebase/factory/dependency"
	channeldomain "github.com/golangid/nearchat/internal/modules/channel/domain"
	"github.com/golangid/nearchat/internal/modules/participant/domain"
	mockinterfaces "github.com/golangid/nearchat/pkg/mocks/codebase/interfaces"
	mockusecase "github.com/golangid/nearchat/pkg/mocks/modules/participant/usecase"
	"github.com/golangid/nearchat/wrapper"
	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name, reqBody                       string
	wantValidateError, wantUsecaseError error
	wantRespCode                        int
}

var (
	errFoo = errors.New("Something error")
)

func newContext(method, body string, paramNames []string, paramValues []string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Add(echo.HeaderContentType, echo.MIMEApplicationJSON)
	res := httptest.NewRecorder()
	echoContext := echo.New().NewContext(req, res)
	echoContext.SetParamNames(paramNames...)
	echoContext.SetParamValues(paramValues...)
	return echoContext, res
}

func TestNewRestHandler(t *testing.T) {
	mockMiddleware := &mockinterfaces.Middleware{}
	mockMiddleware.On("HTTPBasicAuth").Return(echo.MiddlewareFunc(func(next echo.HandlerFunc) echo.HandlerFunc { return next }))
	mockValidator := &mockinterfaces.Validator{}

	deps := dependency.InitDependency(dependency.SetMiddleware(mockMiddleware), dependency.SetValidator(mockValidator))

	handler := NewRestHandler(nil, deps)
	assert.NotNil(t, handler)

	e := echo.New()
	handler.Mount(e.Group("/"))
	mockMiddleware.AssertCalled(t, "HTTPBasicAuth")
}

func TestRestHandler_register(t *testing.T) {
	tests := []testCase{
		{
			name: "Testcase #1: Positive", reqBody: `{"id":"alice","latitude":-6.2,"longitude":106.8,"status":"online","radiusKm":5}`,
			wantRespCode: http.StatusCreated,
		},
		{
			name: "Testcase #2: Negative, invalid json", reqBody: `{"id": alice}`, wantRespCode: http.StatusBadRequest,
		},
		{
			name: "Testcase #3: Negative, validation", reqBody: `{"id":"alice"}`, wantValidateError: errFoo, wantRespCode: http.StatusBadRequest,
		},
		{
			name: "Testcase #4: Negative, already registered", reqBody: `{"id":"alice","status":"online"}`,
			wantUsecaseError: fmt.Errorf("%w: alice", domain.ErrParticipantExists), wantRespCode: http.StatusConflict,
		},
		{
			name: "Testcase #5: Negative, durable queue unavailable", reqBody: `{"id":"alice","status":"online"}`,
			wantUsecaseError: channeldomain.ErrDurableChannelUnavailable, wantRespCode: http.StatusServiceUnavailable,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			participantUsecase := &mockusecase.ParticipantUsecase{}
			participantUsecase.On("Register", mock.Anything, mock.Anything).Return(domain.Participant{ID: "alice"}, tt.wantUsecaseError)
			mockValidator := &mockinterfaces.Validator{}
			mockValidator.On("ValidateStruct", mock.Anything).Return(tt.wantValidateError)

			handler := RestHandler{uc: participantUsecase, validator: mockValidator}

			echoContext, res := newContext(http.MethodPost, tt.reqBody, nil, nil)
			err := handler.register(echoContext)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantRespCode, res.Code)
		})
	}
}

func TestRestHandler_list(t *testing.T) {
	participantUsecase := &mockusecase.ParticipantUsecase{}
	participantUsecase.On("List", mock.Anything).Return([]domain.Participant{{ID: "alice"}, {ID: "bob"}})

	handler := RestHandler{uc: participantUsecase}
	echoContext, res := newContext(http.MethodGet, "", nil, nil)
	assert.NoError(t, handler.list(echoContext))
	assert.Equal(t, http.StatusOK, res.Code)

	var resp struct {
		Data []domain.Participant `json:"data"`
	}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
}

func TestRestHandler_info(t *testing.T) {
	tests := []testCase{
		{name: "Testcase #1: Positive", wantRespCode: http.StatusOK},
		{name: "Testcase #2: Negative", wantUsecaseError: domain.ErrParticipantNotFound, wantRespCode: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			participantUsecase := &mockusecase.ParticipantUsecase{}
			participantUsecase.On("Info", mock.Anything, "alice").Return(domain.Participant{ID: "alice"}, tt.wantUsecaseError)

			handler := RestHandler{uc: participantUsecase}
			echoContext, res := newContext(http.MethodGet, "", []string{"id"}, []string{"alice"})
			assert.NoError(t, handler.info(echoContext))
			assert.Equal(t, tt.wantRespCode, res.Code)
		})
	}
}

func TestRestHandler_update(t *testing.T) {
	tests := []testCase{
		{name: "Testcase #1: Positive", reqBody: `{"status":"offline"}`, wantRespCode: http.StatusOK},
		{name: "Testcase #2: Negative, invalid json", reqBody: `{"status": offline}`, wantRespCode: http.StatusBadRequest},
		{name: "Testcase #3: Negative, nothing to update", reqBody: `{}`, wantRespCode: http.StatusBadRequest},
		{name: "Testcase #4: Negative, validation", reqBody: `{"radiusKm":-1}`, wantValidateError: errFoo, wantRespCode: http.StatusBadRequest},
		{name: "Testcase #5: Negative, unknown", reqBody: `{"radiusKm":1}`, wantUsecaseError: domain.ErrParticipantNotFound, wantRespCode: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			participantUsecase := &mockusecase.ParticipantUsecase{}
			participantUsecase.On("Update", mock.Anything, "alice", mock.Anything).Return(domain.Participant{ID: "alice"}, tt.wantUsecaseError)
			mockValidator := &mockinterfaces.Validator{}
			mockValidator.On("ValidateStruct", mock.Anything).Return(tt.wantValidateError)

			handler := RestHandler{uc: participantUsecase, validator: mockValidator}
			echoContext, res := newContext(http.MethodPatch, tt.reqBody, []string{"id"}, []string{"alice"})
			assert.NoError(t, handler.update(echoContext))
			assert.Equal(t, tt.wantRespCode, res.Code)
		})
	}
}

func TestRestHandler_remove(t *testing.T) {
	tests := []testCase{
		{name: "Testcase #1: Positive", wantRespCode: http.StatusOK},
		{name: "Testcase #2: Negative", wantUsecaseError: domain.ErrParticipantNotFound, wantRespCode: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			participantUsecase := &mockusecase.ParticipantUsecase{}
			participantUsecase.On("Remove", mock.Anything, "alice").Return(tt.wantUsecaseError)

			handler := RestHandler{uc: participantUsecase}
			echoContext, res := newContext(http.MethodDelete, "", []string{"id"}, []string{"alice"})
			assert.NoError(t, handler.remove(echoContext))
			assert.Equal(t, tt.wantRespCode, res.Code)
		})
	}
}

func TestRestHandler_nearby(t *testing.T) {
	t.Run("Testcase #1: Positive, distance rounded for presentation", func(t *testing.T) {
		participantUsecase := &mockusecase.ParticipantUsecase{}
		participantUsecase.On("Nearby", mock.Anything, "alice").Return([]domain.NearbyResult{
			{PeerID: "bob", PeerStatus: domain.StatusOnline, DistanceKm: 1.23456},
		})

		handler := RestHandler{uc: participantUsecase}
		echoContext, res := newContext(http.MethodGet, "", []string{"id"}, []string{"alice"})
		assert.NoError(t, handler.nearby(echoContext))
		assert.Equal(t, http.StatusOK, res.Code)

		var resp struct {
			Data []domain.NearbyResult `json:"data"`
		}
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &resp))
		require.Len(t, resp.Data, 1)
		assert.Equal(t, 1.23, resp.Data[0].DistanceKm)
	})

	t.Run("Testcase #2: Positive, unknown participant has empty result", func(t *testing.T) {
		participantUsecase := &mockusecase.ParticipantUsecase{}
		participantUsecase.On("Nearby", mock.Anything, "ghost").Return([]domain.NearbyResult{})

		handler := RestHandler{uc: participantUsecase}
		echoContext, res := newContext(http.MethodGet, "", []string{"id"}, []string{"ghost"})
		assert.NoError(t, handler.nearby(echoContext))
		assert.Equal(t, http.StatusOK, res.Code)
		assert.Contains(t, res.Body.String(), `"data":[]`)
	})
}

func TestRestHandler_logout(t *testing.T) {
	tests := []testCase{
		{name: "Testcase #1: Positive", wantRespCode: http.StatusOK},
		{name: "Testcase #2: Negative", wantUsecaseError: domain.ErrParticipantNotFound, wantRespCode: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			participantUsecase := &mockusecase.ParticipantUsecase{}
			participantUsecase.On("SetStatus", mock.Anything, "alice", domain.StatusOffline).Return(tt.wantUsecaseError)

			handler := RestHandler{uc: participantUsecase}
			echoContext, res := newContext(http.MethodPost, "", []string{"id"}, []string{"alice"})
			assert.NoError(t, handler.logout(echoContext))
			assert.Equal(t, tt.wantRespCode, res.Code)
			participantUsecase.AssertExpectations(t)
		})
	}
}

func TestRestHandler_topics(t *testing.T) {
	participantUsecase := &mockusecase.ParticipantUsecase{}
	participantUsecase.On("Topics", mock.Anything, "alice").Return([]string{"news"}, nil)
	participantUsecase.On("Topics", mock.Anything, "ghost").Return([]string{}, domain.ErrParticipantNotFound)
	handler := RestHandler{uc: participantUsecase}

	echoContext, res := newContext(http.MethodGet, "", []string{"id"}, []string{"alice"})
	assert.NoError(t, handler.topics(echoContext))
	assert.Equal(t, http.StatusOK, res.Code)

	echoContext, res = newContext(http.MethodGet, "", []string{"id"}, []string{"ghost"})
	assert.NoError(t, handler.topics(echoContext))
	assert.Equal(t, http.StatusNotFound, res.Code)
}

func TestRestHandler_subscribe(t *testing.T) {
	tests := []testCase{
		{name: "Testcase #1: Positive", wantRespCode: http.StatusOK},
		{name: "Testcase #2: Negative, unknown topic", wantUsecaseError: fmt.Errorf("%w: news", domain.ErrTopicNotFound), wantRespCode: http.StatusNotFound},
		{name: "Testcase #3: Negative, broker down", wantUsecaseError: channeldomain.ErrDurableChannelUnavailable, wantRespCode: http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			participantUsecase := &mockusecase.ParticipantUsecase{}
			participantUsecase.On("Subscribe", mock.Anything, "alice", "news").Return(tt.wantUsecaseError)

			handler := RestHandler{uc: participantUsecase}
			echoContext, res := newContext(http.MethodPost, "", []string{"id", "topic"}, []string{"alice", "news"})
			assert.NoError(t, handler.subscribe(echoContext))
			assert.Equal(t, tt.wantRespCode, res.Code)
		})
	}
}

func TestRestHandler_unsubscribe(t *testing.T) {
	tests := []testCase{
		{name: "Testcase #1: Positive", wantRespCode: http.StatusOK},
		{name: "Testcase #2: Negative", wantUsecaseError: errFoo, wantRespCode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			participantUsecase := &mockusecase.ParticipantUsecase{}
			participantUsecase.On("Unsubscribe", mock.Anything, "alice", "news").Return(tt.wantUsecaseError)

			handler := RestHandler{uc: participantUsecase}
			echoContext, res := newContext(http.MethodDelete, "", []string{"id", "topic"}, []string{"alice", "news"})
			assert.NoError(t, handler.unsubscribe(echoContext))
			assert.Equal(t, tt.wantRespCode, res.Code)
		})
	}
}

func TestErrorResponseFormat(t *testing.T) {
	participantUsecase := &mockusecase.ParticipantUsecase{}
	participantUsecase.On("Info", mock.Anything, "ghost").Return(domain.Participant{}, domain.ErrParticipantNotFound)

	handler := RestHandler{uc: participantUsecase}
	echoContext, res := newContext(http.MethodGet, "", []string{"id"}, []string{"ghost"})
	assert.NoError(t, handler.info(echoContext))

	var resp wrapper.HTTPResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, domain.ErrParticipantNotFound.Error(), resp.Message)
}
