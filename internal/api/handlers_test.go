package api_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/gorilla/websocket"
	"github.com/limbo/sketchstreak/internal/api"
	errorvalues "github.com/limbo/sketchstreak/internal/error_values"
	"github.com/limbo/sketchstreak/internal/notify"
	"github.com/limbo/sketchstreak/internal/service"
	"github.com/limbo/sketchstreak/internal/service/mocks"
	"github.com/limbo/sketchstreak/pkg/entity"
	jwtservice "github.com/limbo/sketchstreak/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Variables for tests
var (
	userID      = "tg_100500"
	displayName = "Anna"
	jwtSecret   = "test_secret"
	today       = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	testStats   = &entity.UserStats{
		UserID:           userID,
		CurrentStreak:    2,
		LongestStreak:    5,
		TotalUploads:     9,
		HasUploadedToday: true,
		RecentHistory: []entity.DailyCount{
			{Date: today, Count: 1},
			{Date: today.AddDate(0, 0, -1), Count: 3},
		},
	}
)

type testServer struct {
	srv     *api.Server
	session *mocks.MockSessionServiceI
	hub     *notify.Hub
	token   string
}

func setupServer(t *testing.T) *testServer {
	t.Helper()
	ctrl := gomock.NewController(t)
	jwtService := jwtservice.New(jwtSecret, time.Hour)
	token, err := jwtService.GenerateToken(userID, displayName)
	require.NoError(t, err)
	ts := &testServer{
		session: mocks.NewMockSessionServiceI(ctrl),
		hub:     notify.NewHub(nil),
		token:   token,
	}
	ts.srv = api.New(&api.ServicesList{
		SessionService: ts.session,
		JwtService:     jwtService,
		Hub:            ts.hub,
	})
	t.Cleanup(func() {
		ts.hub.Close()
	})
	return ts
}

func (ts *testServer) do(method, path string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("Authorization", "Bearer "+ts.token)
	rr := httptest.NewRecorder()
	ts.srv.ServeHTTP(rr, req)
	return rr
}

func TestHealth(t *testing.T) {
	ts := setupServer(t)
	rr := httptest.NewRecorder()
	ts.srv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestAuthMiddleware(t *testing.T) {
	ts := setupServer(t)
	expired, err := jwtservice.New(jwtSecret, time.Nanosecond).GenerateToken(userID, displayName)
	require.NoError(t, err)
	time.Sleep(time.Millisecond)

	testCases := []struct {
		Desc   string
		Header string
	}{
		{Desc: "no header", Header: ""},
		{Desc: "not bearer", Header: "Basic " + ts.token},
		{Desc: "garbage token", Header: "Bearer garbage"},
		{Desc: "expired token", Header: "Bearer " + expired},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
			if tc.Header != "" {
				req.Header.Set("Authorization", tc.Header)
			}
			rr := httptest.NewRecorder()
			ts.srv.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestGetStats(t *testing.T) {
	ts := setupServer(t)
	t.Run("provided", func(t *testing.T) {
		ts.session.EXPECT().GetStats(gomock.Any(), userID).Return(testStats, nil)
		rr := ts.do(http.MethodGet, "/api/v1/stats", nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp api.StatsResponse
		require.NoError(t, sonic.ConfigDefault.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, api.StatsResponse{
			UserID:           userID,
			CurrentStreak:    2,
			LongestStreak:    5,
			TotalUploads:     9,
			HasUploadedToday: true,
			RecentHistory: []api.HistoryItem{
				{Date: "2024-06-15", Count: 1},
				{Date: "2024-06-14", Count: 3},
			},
		}, resp)
	})
	t.Run("service error", func(t *testing.T) {
		ts.session.EXPECT().GetStats(gomock.Any(), userID).Return(nil, errors.New("uploads repository error: db error"))
		rr := ts.do(http.MethodGet, "/api/v1/stats", nil)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestStartTimer(t *testing.T) {
	ts := setupServer(t)
	start := time.Date(2024, 6, 15, 18, 0, 0, 0, time.UTC)
	testCases := []struct {
		Desc         string
		Body         []byte
		Status       int
		MockPrepFunc func()
	}{
		{
			Desc:   "started",
			Body:   []byte(`{"duration_minutes":25}`),
			Status: http.StatusCreated,
			MockPrepFunc: func() {
				ts.session.EXPECT().StartTimer(gomock.Any(), userID, service.StartTimerRequest{DurationMinutes: 25}).
					Return(&entity.TimerState{
						UserID:          userID,
						DurationMinutes: 25,
						StartTime:       start,
						EndTime:         start.Add(25 * time.Minute),
					}, nil)
			},
		},
		{
			Desc:   "invalid duration",
			Body:   []byte(`{"duration_minutes":0}`),
			Status: http.StatusBadRequest,
			MockPrepFunc: func() {
				ts.session.EXPECT().StartTimer(gomock.Any(), userID, service.StartTimerRequest{DurationMinutes: 0}).
					Return(nil, errors.Join(errorvalues.ErrValidation, errors.New("duration must be positive")))
			},
		},
		{
			Desc:         "invalid body",
			Body:         []byte(`{"duration_minutes":`),
			Status:       http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
		{
			Desc:   "shutting down",
			Body:   []byte(`{"duration_minutes":10}`),
			Status: http.StatusServiceUnavailable,
			MockPrepFunc: func() {
				ts.session.EXPECT().StartTimer(gomock.Any(), userID, service.StartTimerRequest{DurationMinutes: 10}).
					Return(nil, errorvalues.ErrRegistryClosed)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := ts.do(http.MethodPost, "/api/v1/timer", tc.Body)
			assert.Equal(t, tc.Status, rr.Code)
			if tc.Status != http.StatusCreated {
				return
			}
			var resp api.TimerResponse
			require.NoError(t, sonic.ConfigDefault.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, start.UnixMilli(), resp.StartTime)
			assert.Equal(t, int64(25*60000), resp.EndTime-resp.StartTime)
		})
	}
}

func TestGetTimer(t *testing.T) {
	ts := setupServer(t)
	start := time.Date(2024, 6, 15, 18, 0, 0, 0, time.UTC)
	t.Run("running", func(t *testing.T) {
		ts.session.EXPECT().GetTimer(gomock.Any(), userID).Return(&entity.TimerSnapshot{
			TimerState: entity.TimerState{
				UserID:          userID,
				DurationMinutes: 25,
				StartTime:       start,
				EndTime:         start.Add(25 * time.Minute),
			},
			Remaining: 90 * time.Second,
		}, nil)
		rr := ts.do(http.MethodGet, "/api/v1/timer", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		var resp api.TimerResponse
		require.NoError(t, sonic.ConfigDefault.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, api.TimerResponse{
			DurationMinutes: 25,
			StartTime:       start.UnixMilli(),
			EndTime:         start.Add(25 * time.Minute).UnixMilli(),
			RemainingMs:     90000,
		}, resp)
	})
	t.Run("absent", func(t *testing.T) {
		ts.session.EXPECT().GetTimer(gomock.Any(), userID).Return(nil, errorvalues.ErrTimerNotFound)
		rr := ts.do(http.MethodGet, "/api/v1/timer", nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestCancelTimer(t *testing.T) {
	ts := setupServer(t)
	t.Run("cancelled", func(t *testing.T) {
		ts.session.EXPECT().CancelTimer(gomock.Any(), userID).Return(nil)
		rr := ts.do(http.MethodDelete, "/api/v1/timer", nil)
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
	t.Run("completion failed", func(t *testing.T) {
		ts.session.EXPECT().CancelTimer(gomock.Any(), userID).Return(errors.New("sessions repository error: db error"))
		rr := ts.do(http.MethodDelete, "/api/v1/timer", nil)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestRecordUpload(t *testing.T) {
	ts := setupServer(t)
	testCases := []struct {
		Desc         string
		Body         []byte
		Status       int
		MockPrepFunc func()
	}{
		{
			Desc:   "recorded with name from token",
			Body:   []byte(`{"media_ref":"photos/1.jpg"}`),
			Status: http.StatusCreated,
			MockPrepFunc: func() {
				ts.session.EXPECT().RecordUploadAndComplete(gomock.Any(), userID, &service.UploadRequest{
					DisplayName: displayName,
					MediaRef:    "photos/1.jpg",
				}).Return(testStats, nil)
			},
		},
		{
			Desc:   "recorded with explicit name",
			Body:   []byte(`{"media_ref":"photos/2.jpg","display_name":"anna_draws"}`),
			Status: http.StatusCreated,
			MockPrepFunc: func() {
				ts.session.EXPECT().RecordUploadAndComplete(gomock.Any(), userID, &service.UploadRequest{
					DisplayName: "anna_draws",
					MediaRef:    "photos/2.jpg",
				}).Return(testStats, nil)
			},
		},
		{
			Desc:   "missing media",
			Body:   []byte(`{}`),
			Status: http.StatusBadRequest,
			MockPrepFunc: func() {
				ts.session.EXPECT().RecordUploadAndComplete(gomock.Any(), userID, gomock.Any()).
					Return(nil, errorvalues.ErrValidation)
			},
		},
		{
			Desc:   "duplicate",
			Body:   []byte(`{"media_ref":"photos/1.jpg"}`),
			Status: http.StatusConflict,
			MockPrepFunc: func() {
				ts.session.EXPECT().RecordUploadAndComplete(gomock.Any(), userID, gomock.Any()).
					Return(nil, errorvalues.ErrUploadExists)
			},
		},
		{
			Desc:         "invalid body",
			Body:         []byte(`not json`),
			Status:       http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := ts.do(http.MethodPost, "/api/v1/uploads", tc.Body)
			assert.Equal(t, tc.Status, rr.Code)
		})
	}
}

func TestMarkDone(t *testing.T) {
	ts := setupServer(t)
	t.Run("done", func(t *testing.T) {
		ts.session.EXPECT().MarkDone(gomock.Any(), userID).Return(testStats, nil)
		rr := ts.do(http.MethodPost, "/api/v1/sessions/done", nil)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
	t.Run("no upload yet", func(t *testing.T) {
		ts.session.EXPECT().MarkDone(gomock.Any(), userID).Return(nil, errorvalues.ErrNoUploadYet)
		rr := ts.do(http.MethodPost, "/api/v1/sessions/done", nil)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestSubscribe(t *testing.T) {
	ts := setupServer(t)
	httpSrv := httptest.NewServer(ts.srv)
	defer httpSrv.Close()
	wsURL := "ws" + strings.TrimPrefix(httpSrv.URL, "http") + "/api/v1/ws"

	t.Run("no token", func(t *testing.T) {
		_, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
	t.Run("subscribed", func(t *testing.T) {
		conn, _, err := websocket.DefaultDialer.Dial(wsURL+"?token="+ts.token, nil)
		require.NoError(t, err)
		defer conn.Close()
		require.Eventually(t, func() bool {
			return ts.hub.Subscribers(userID) == 1
		}, 2*time.Second, 10*time.Millisecond)
	})
}
