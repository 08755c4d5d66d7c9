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

	"github.com/quinfall/companion/internal/domain"
	"github.com/quinfall/companion/internal/gamesync"
)

// MockSyncService mocks the gamesync.Service interface
type MockSyncService struct {
	mock.Mock
}

func (m *MockSyncService) Sync(ctx context.Context, trigger string) (domain.SyncReport, error) {
	args := m.Called(ctx, trigger)
	return args.Get(0).(domain.SyncReport), args.Error(1)
}

func (m *MockSyncService) Status() gamesync.Status {
	args := m.Called()
	return args.Get(0).(gamesync.Status)
}

func TestHandleSyncNow(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(*MockSyncService)
		expectedStatus int
		verifyBody     func(*testing.T, string)
	}{
		{
			name: "Success",
			setupMock: func(m *MockSyncService) {
				report := domain.SyncReport{
					PlayerID:          "default",
					ItemsUpdated:      12,
					ConflictsResolved: 2,
					StartedAt:         1700000000,
					FinishedAt:        1700000003,
				}
				m.On("Sync", mock.Anything, gamesync.TriggerManual).Return(report, nil)
			},
			expectedStatus: http.StatusOK,
			verifyBody: func(t *testing.T, body string) {
				var report domain.SyncReport
				require.NoError(t, json.Unmarshal([]byte(body), &report))
				assert.Equal(t, 12, report.ItemsUpdated)
				assert.Equal(t, 2, report.ConflictsResolved)
			},
		},
		{
			name: "Not Configured",
			setupMock: func(m *MockSyncService) {
				m.On("Sync", mock.Anything, gamesync.TriggerManual).
					Return(domain.SyncReport{}, domain.ErrNotConfigured)
			},
			expectedStatus: http.StatusConflict,
			verifyBody: func(t *testing.T, body string) {
				assert.Contains(t, body, ErrMsgNotConfiguredError)
			},
		},
		{
			name: "Game API Unreachable",
			setupMock: func(m *MockSyncService) {
				m.On("Sync", mock.Anything, gamesync.TriggerManual).
					Return(domain.SyncReport{}, domain.ErrSyncUnavailable)
			},
			expectedStatus: http.StatusBadGateway,
			verifyBody: func(t *testing.T, body string) {
				assert.Contains(t, body, ErrMsgUnavailableError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := &MockSyncService{}
			tt.setupMock(mockSvc)

			req := httptest.NewRequest("POST", "/sync", nil)
			rec := httptest.NewRecorder()

			HandleSyncNow(mockSvc)(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			tt.verifyBody(t, rec.Body.String())
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestHandleSyncStatus(t *testing.T) {
	t.Run("Configured With Last Report", func(t *testing.T) {
		mockSvc := &MockSyncService{}
		mockSvc.On("Status").Return(gamesync.Status{
			Configured: true,
			LastReport: &domain.SyncReport{PlayerID: "default", ItemsUpdated: 4},
		})

		req := httptest.NewRequest("GET", "/sync/status", nil)
		rec := httptest.NewRecorder()

		HandleSyncStatus(mockSvc)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got gamesync.Status
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.True(t, got.Configured)
		require.NotNil(t, got.LastReport)
		assert.Equal(t, 4, got.LastReport.ItemsUpdated)
	})

	t.Run("Unconfigured With Last Error", func(t *testing.T) {
		mockSvc := &MockSyncService{}
		mockSvc.On("Status").Return(gamesync.Status{
			Configured: false,
			LastError:  "sync not configured: no game API credentials",
		})

		req := httptest.NewRequest("GET", "/sync/status", nil)
		rec := httptest.NewRecorder()

		HandleSyncStatus(mockSvc)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got gamesync.Status
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.False(t, got.Configured)
		assert.Nil(t, got.LastReport)
		assert.Contains(t, got.LastError, "no game API credentials")
	})
}
