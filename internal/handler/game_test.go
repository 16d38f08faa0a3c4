package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CookieClicker_Go/internal/domain"
	"github.com/osse101/CookieClicker_Go/internal/progression"
)

func richState() domain.GameState {
	state := domain.NewGameState(domain.DefaultCatalog())
	state.Currency = 1234.9
	state.TotalClicks = 42
	state.Producers[1].Owned = 3
	state.Producers[1].CurrentCost = 152
	return state
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestHandleGetState(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		game := &MockGame{}
		game.On("State").Return(richState(), nil)
		game.On("User").Return(domain.User{ID: "demo", Username: "demo user"})

		req := httptest.NewRequest(http.MethodGet, "/state", nil)
		w := httptest.NewRecorder()
		NewGameHandler(game).HandleGetState(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decode[StateResponse](t, w)
		assert.Equal(t, "Demo User", resp.Player)
		assert.Equal(t, "1,234", resp.CurrencyDisplay)
		assert.Equal(t, 3.0, resp.ProductionRate)
		assert.Equal(t, "3.0", resp.RateDisplay)
		assert.Equal(t, 10.0, resp.ClickUpgradeCost)
		require.Len(t, resp.Producers, 5)
		assert.Equal(t, int64(152), resp.Producers[1].Cost)
		assert.True(t, resp.Producers[1].Affordable)
		assert.False(t, resp.Producers[3].Affordable)
		assert.Equal(t, "1,100", resp.Producers[2].CostDisplay)
		game.AssertExpectations(t)
	})

	t.Run("German Grouping", func(t *testing.T) {
		game := &MockGame{}
		game.On("State").Return(richState(), nil)
		game.On("User").Return(domain.User{ID: "demo", Username: "demo"})

		req := httptest.NewRequest(http.MethodGet, "/state", nil)
		req.Header.Set("Accept-Language", "de-DE,de;q=0.9")
		w := httptest.NewRecorder()
		NewGameHandler(game).HandleGetState(w, req)

		resp := decode[StateResponse](t, w)
		assert.Equal(t, "1.234", resp.CurrencyDisplay)
	})

	t.Run("Not Ready", func(t *testing.T) {
		game := &MockGame{}
		game.On("State").Return(domain.GameState{}, domain.ErrNotReady)

		req := httptest.NewRequest(http.MethodGet, "/state", nil)
		w := httptest.NewRecorder()
		NewGameHandler(game).HandleGetState(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, ErrMsgNotReadyError, decode[ErrorResponse](t, w).Error)
	})
}

func TestHandleClick(t *testing.T) {
	game := &MockGame{}
	game.On("Click", mock.Anything).Return(progression.ClickResult{Currency: 100, TotalClicks: 100, Milestone: true}, nil)

	req := httptest.NewRequest(http.MethodPost, "/click", nil)
	w := httptest.NewRecorder()
	NewGameHandler(game).HandleClick(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, ClickResponse{Currency: 100, TotalClicks: 100, Milestone: true}, decode[ClickResponse](t, w))
}

func TestHandlePurchase(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(*MockGame)
		wantStatus int
		wantError  string
	}{
		{
			name: "Success",
			body: `{"producer_id":"cursor"}`,
			setup: func(g *MockGame) {
				p := domain.DefaultCatalog()[0]
				p.Owned = 1
				p.CurrentCost = 17
				g.On("Purchase", mock.Anything, "cursor").Return(p, nil)
				g.On("State").Return(domain.GameState{Currency: 0}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Invalid JSON",
			body:       `{"producer_id":`,
			setup:      func(*MockGame) {},
			wantStatus: http.StatusBadRequest,
			wantError:  ErrMsgInvalidRequest,
		},
		{
			name:       "Missing Producer",
			body:       `{}`,
			setup:      func(*MockGame) {},
			wantStatus: http.StatusBadRequest,
			wantError:  ErrMsgInvalidRequestSummary,
		},
		{
			name:       "Separator In Id",
			body:       `{"producer_id":"a:b"}`,
			setup:      func(*MockGame) {},
			wantStatus: http.StatusBadRequest,
			wantError:  ErrMsgInvalidRequestSummary,
		},
		{
			name: "Insufficient Funds",
			body: `{"producer_id":"farm"}`,
			setup: func(g *MockGame) {
				g.On("Purchase", mock.Anything, "farm").Return(domain.Producer{}, domain.ErrInsufficientFunds)
			},
			wantStatus: http.StatusConflict,
			wantError:  ErrMsgNotEnoughCookies,
		},
		{
			name: "Unknown Producer",
			body: `{"producer_id":"rocket"}`,
			setup: func(g *MockGame) {
				g.On("Purchase", mock.Anything, "rocket").Return(domain.Producer{}, domain.ErrUnknownProducer)
			},
			wantStatus: http.StatusNotFound,
			wantError:  ErrMsgUnknownProducerErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := &MockGame{}
			tt.setup(game)

			req := httptest.NewRequest(http.MethodPost, "/purchase", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			NewGameHandler(game).HandlePurchase(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decode[ErrorResponse](t, w).Error)
			} else {
				view := decode[ProducerView](t, w)
				assert.Equal(t, int64(17), view.Cost)
				assert.Equal(t, int64(1), view.Owned)
				assert.False(t, view.Affordable)
			}
			game.AssertExpectations(t)
		})
	}
}

func TestHandleUpgradeClick(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		game := &MockGame{}
		game.On("UpgradeClick", mock.Anything).Return(2.0, nil)

		w := httptest.NewRecorder()
		NewGameHandler(game).HandleUpgradeClick(w, httptest.NewRequest(http.MethodPost, "/upgrade-click", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 2.0, decode[UpgradeResponse](t, w).ClickYield)
	})

	t.Run("Insufficient Funds", func(t *testing.T) {
		game := &MockGame{}
		game.On("UpgradeClick", mock.Anything).Return(1.0, domain.ErrInsufficientFunds)

		w := httptest.NewRecorder()
		NewGameHandler(game).HandleUpgradeClick(w, httptest.NewRequest(http.MethodPost, "/upgrade-click", nil))

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestHandleReset(t *testing.T) {
	game := &MockGame{}
	game.On("Reset", mock.Anything).Return(nil)

	w := httptest.NewRecorder()
	NewGameHandler(game).HandleReset(w, httptest.NewRequest(http.MethodPost, "/reset", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, MsgProgressResetSuccess, decode[SuccessResponse](t, w).Message)
	game.AssertExpectations(t)
}

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{nil, http.StatusInternalServerError},
		{domain.ErrNotReady, http.StatusServiceUnavailable},
		{domain.ErrUnknownProducer, http.StatusNotFound},
		{domain.ErrInsufficientFunds, http.StatusConflict},
		{domain.ErrInvalidInput, http.StatusBadRequest},
		{domain.ErrStorageUnavailable, http.StatusServiceUnavailable},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		status, msg := mapServiceErrorToUserMessage(tt.err)
		assert.Equal(t, tt.wantStatus, status)
		assert.NotEmpty(t, msg)
	}
}
