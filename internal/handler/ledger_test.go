package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/quinfall/companion/internal/ledger"
)

// MockOperationLog mocks the OperationLog interface
type MockOperationLog struct {
	mock.Mock
}

func (m *MockOperationLog) RecentOperations(ctx context.Context, limit, offset int) ([]ledger.Operation, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.Operation), args.Error(1)
}

func TestHandleGetOperations(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		setupMock      func(*MockOperationLog)
		expectedStatus int
		verifyBody     func(*testing.T, string)
	}{
		{
			name: "Defaults",
			url:  "/ledger/operations",
			setupMock: func(m *MockOperationLog) {
				m.On("RecentOperations", mock.Anything, 50, 0).Return([]ledger.Operation{
					{ID: 2, Kind: "item.crafted", PlayerID: "default", Material: "iron_ingot", Quantity: 3},
					{ID: 1, Kind: "storage.moved", PlayerID: "default", Material: "iron_ore", Quantity: 20,
						FromLocation: "player_inventory", ToLocation: "meadow_bank"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			verifyBody: func(t *testing.T, body string) {
				var ops []ledger.Operation
				require.NoError(t, json.Unmarshal([]byte(body), &ops))
				require.Len(t, ops, 2)
				assert.Equal(t, int64(2), ops[0].ID)
				assert.Equal(t, "storage.moved", ops[1].Kind)
				assert.Equal(t, "meadow_bank", ops[1].ToLocation)
			},
		},
		{
			name: "Explicit Paging",
			url:  "/ledger/operations?limit=10&offset=30",
			setupMock: func(m *MockOperationLog) {
				m.On("RecentOperations", mock.Anything, 10, 30).Return([]ledger.Operation{}, nil)
			},
			expectedStatus: http.StatusOK,
			verifyBody:     func(t *testing.T, body string) {},
		},
		{
			name:           "Limit Over Maximum",
			url:            "/ledger/operations?limit=501",
			setupMock:      func(m *MockOperationLog) {},
			expectedStatus: http.StatusBadRequest,
			verifyBody: func(t *testing.T, body string) {
				assert.Contains(t, body, ErrMsgInvalidLimit)
			},
		},
		{
			name:           "Non-Numeric Limit",
			url:            "/ledger/operations?limit=many",
			setupMock:      func(m *MockOperationLog) {},
			expectedStatus: http.StatusBadRequest,
			verifyBody: func(t *testing.T, body string) {
				assert.Contains(t, body, ErrMsgInvalidLimit)
			},
		},
		{
			name:           "Negative Offset",
			url:            "/ledger/operations?offset=-1",
			setupMock:      func(m *MockOperationLog) {},
			expectedStatus: http.StatusBadRequest,
			verifyBody: func(t *testing.T, body string) {
				assert.Contains(t, body, ErrMsgInvalidOffset)
			},
		},
		{
			name: "Store Failure",
			url:  "/ledger/operations",
			setupMock: func(m *MockOperationLog) {
				m.On("RecentOperations", mock.Anything, 50, 0).Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			verifyBody:     func(t *testing.T, body string) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockLog := &MockOperationLog{}
			tt.setupMock(mockLog)

			req := httptest.NewRequest("GET", tt.url, nil)
			rec := httptest.NewRecorder()

			HandleGetOperations(mockLog)(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			tt.verifyBody(t, rec.Body.String())
			mockLog.AssertExpectations(t)
		})
	}
}
