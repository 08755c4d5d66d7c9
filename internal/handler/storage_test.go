package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/quinfall/companion/internal/domain"
)

// MockStorageService mocks the storage.Service interface
type MockStorageService struct {
	mock.Mock
}

func (m *MockStorageService) Summary(ctx context.Context) []domain.LocationSummary {
	args := m.Called(ctx)
	return args.Get(0).([]domain.LocationSummary)
}

func (m *MockStorageService) Location(ctx context.Context, loc domain.Location) (domain.LocationDetail, error) {
	args := m.Called(ctx, loc)
	return args.Get(0).(domain.LocationDetail), args.Error(1)
}

func (m *MockStorageService) Move(ctx context.Context, materialID string, quantity int, from, to domain.Location) error {
	args := m.Called(ctx, materialID, quantity, from, to)
	return args.Error(0)
}

func (m *MockStorageService) UnlockSlots(ctx context.Context, loc domain.Location, slots int) (domain.SlotInfo, error) {
	args := m.Called(ctx, loc, slots)
	return args.Get(0).(domain.SlotInfo), args.Error(1)
}

func (m *MockStorageService) Reset(ctx context.Context, inventoryValue, storageValue int) error {
	args := m.Called(ctx, inventoryValue, storageValue)
	return args.Error(0)
}

func (m *MockStorageService) FindMaterial(ctx context.Context, materialID string) ([]domain.MaterialLocation, error) {
	args := m.Called(ctx, materialID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MaterialLocation), args.Error(1)
}

func TestHandleGetStorage(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := &MockStorageService{}
		summaries := []domain.LocationSummary{
			{Location: domain.LocPlayerInventory, Kind: domain.KindInventory, TotalItems: 12},
			{Location: domain.LocMeadowBank, Kind: domain.KindBank, TotalItems: 40},
		}
		mockSvc.On("Summary", mock.Anything).Return(summaries)

		req := httptest.NewRequest("GET", "/storage", nil)
		rec := httptest.NewRecorder()

		HandleGetStorage(mockSvc)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got []domain.LocationSummary
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Len(t, got, 2)
		assert.Equal(t, domain.LocMeadowBank, got[1].Location)
		mockSvc.AssertExpectations(t)
	})
}

func TestHandleGetLocation(t *testing.T) {
	newRouter := func(svc *MockStorageService) *chi.Mux {
		r := chi.NewRouter()
		r.Get("/storage/{location}", HandleGetLocation(svc))
		return r
	}

	t.Run("Success", func(t *testing.T) {
		mockSvc := &MockStorageService{}
		detail := domain.LocationDetail{
			Summary: domain.LocationSummary{Location: domain.LocMeadowBank, Kind: domain.KindBank},
			Slots:   domain.SlotInfo{Unlocked: 200, Max: 1000, Used: 2, Free: 198, Unlockable: 800},
			Items:   map[string]int{"iron_ore": 40},
		}
		mockSvc.On("Location", mock.Anything, domain.LocMeadowBank).Return(detail, nil)

		req := httptest.NewRequest("GET", "/storage/meadow_bank", nil)
		rec := httptest.NewRecorder()

		newRouter(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got domain.LocationDetail
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, 40, got.Items["iron_ore"])
		assert.Equal(t, 198, got.Slots.Free)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Unknown Location String", func(t *testing.T) {
		mockSvc := &MockStorageService{}

		req := httptest.NewRequest("GET", "/storage/moon_base", nil)
		rec := httptest.NewRecorder()

		newRouter(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgUnknownLocationError)
		mockSvc.AssertNotCalled(t, "Location")
	})

	t.Run("Unprovisioned Location", func(t *testing.T) {
		mockSvc := &MockStorageService{}
		mockSvc.On("Location", mock.Anything, domain.LocCaravanStorage).
			Return(domain.LocationDetail{}, domain.ErrUnknownLocation)

		req := httptest.NewRequest("GET", "/storage/caravan_storage", nil)
		rec := httptest.NewRecorder()

		newRouter(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestHandleMoveItem(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockStorageService)
		expectedStatus int
		verifyBody     func(*testing.T, string)
	}{
		{
			name: "Success",
			body: `{"material":"iron_ore","quantity":20,"from":"player_inventory","to":"meadow_bank"}`,
			setupMock: func(m *MockStorageService) {
				m.On("Move", mock.Anything, "iron_ore", 20, domain.LocPlayerInventory, domain.LocMeadowBank).Return(nil)
			},
			expectedStatus: http.StatusOK,
			verifyBody: func(t *testing.T, body string) {
				assert.Contains(t, body, MsgMoveSuccess)
			},
		},
		{
			name: "Insufficient Items",
			body: `{"material":"iron_ore","quantity":999,"from":"player_inventory","to":"meadow_bank"}`,
			setupMock: func(m *MockStorageService) {
				m.On("Move", mock.Anything, "iron_ore", 999, domain.LocPlayerInventory, domain.LocMeadowBank).
					Return(domain.ErrInsufficientItems)
			},
			expectedStatus: http.StatusBadRequest,
			verifyBody: func(t *testing.T, body string) {
				assert.Contains(t, body, ErrMsgInsufficientItemsError)
			},
		},
		{
			name:           "Invalid Location In Body",
			body:           `{"material":"iron_ore","quantity":5,"from":"moon_base","to":"meadow_bank"}`,
			setupMock:      func(m *MockStorageService) {},
			expectedStatus: http.StatusBadRequest,
			verifyBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Unknown storage location")
			},
		},
		{
			name:           "Zero Quantity",
			body:           `{"material":"iron_ore","quantity":0,"from":"player_inventory","to":"meadow_bank"}`,
			setupMock:      func(m *MockStorageService) {},
			expectedStatus: http.StatusBadRequest,
			verifyBody:     func(t *testing.T, body string) {},
		},
		{
			name:           "Malformed JSON",
			body:           `{"material":`,
			setupMock:      func(m *MockStorageService) {},
			expectedStatus: http.StatusBadRequest,
			verifyBody:     func(t *testing.T, body string) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := &MockStorageService{}
			tt.setupMock(mockSvc)

			req := httptest.NewRequest("POST", "/storage/move", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			HandleMoveItem(mockSvc)(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			tt.verifyBody(t, rec.Body.String())
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestHandleUnlockSlots(t *testing.T) {
	newRouter := func(svc *MockStorageService) *chi.Mux {
		r := chi.NewRouter()
		r.Post("/storage/{location}/unlock", HandleUnlockSlots(svc))
		return r
	}

	t.Run("Success", func(t *testing.T) {
		mockSvc := &MockStorageService{}
		info := domain.SlotInfo{Unlocked: 300, Max: 1000, Used: 0, Free: 300, Unlockable: 700}
		mockSvc.On("UnlockSlots", mock.Anything, domain.LocMeadowBank, 100).Return(info, nil)

		req := httptest.NewRequest("POST", "/storage/meadow_bank/unlock", strings.NewReader(`{"slots":100}`))
		rec := httptest.NewRecorder()

		newRouter(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got domain.SlotInfo
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, 300, got.Unlocked)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Exceeds Maximum", func(t *testing.T) {
		mockSvc := &MockStorageService{}
		mockSvc.On("UnlockSlots", mock.Anything, domain.LocMeadowBank, 900).
			Return(domain.SlotInfo{}, domain.ErrInvalidInput)

		req := httptest.NewRequest("POST", "/storage/meadow_bank/unlock", strings.NewReader(`{"slots":900}`))
		rec := httptest.NewRecorder()

		newRouter(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Zero Slots Rejected By Validation", func(t *testing.T) {
		mockSvc := &MockStorageService{}

		req := httptest.NewRequest("POST", "/storage/meadow_bank/unlock", strings.NewReader(`{"slots":0}`))
		rec := httptest.NewRecorder()

		newRouter(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockSvc.AssertNotCalled(t, "UnlockSlots")
	})
}

func TestHandleResetStorage(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := &MockStorageService{}
		mockSvc.On("Reset", mock.Anything, 100, 1000).Return(nil)

		req := httptest.NewRequest("POST", "/storage/reset", strings.NewReader(`{"inventory_value":100,"storage_value":1000}`))
		rec := httptest.NewRecorder()

		HandleResetStorage(mockSvc)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), MsgResetSuccess)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Negative Value Rejected By Validation", func(t *testing.T) {
		mockSvc := &MockStorageService{}

		req := httptest.NewRequest("POST", "/storage/reset", strings.NewReader(`{"inventory_value":-1,"storage_value":1000}`))
		rec := httptest.NewRecorder()

		HandleResetStorage(mockSvc)(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockSvc.AssertNotCalled(t, "Reset")
	})

	t.Run("Zero Values Allowed", func(t *testing.T) {
		mockSvc := &MockStorageService{}
		mockSvc.On("Reset", mock.Anything, 0, 0).Return(nil)

		req := httptest.NewRequest("POST", "/storage/reset", strings.NewReader(`{"inventory_value":0,"storage_value":0}`))
		rec := httptest.NewRecorder()

		HandleResetStorage(mockSvc)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestHandleFindMaterial(t *testing.T) {
	newRouter := func(svc *MockStorageService) *chi.Mux {
		r := chi.NewRouter()
		r.Get("/storage/find/{material}", HandleFindMaterial(svc))
		return r
	}

	t.Run("Success", func(t *testing.T) {
		mockSvc := &MockStorageService{}
		locations := []domain.MaterialLocation{
			{Location: domain.LocPlayerInventory, Quantity: 10},
			{Location: domain.LocMeadowBank, Quantity: 25},
		}
		mockSvc.On("FindMaterial", mock.Anything, "iron_ore").Return(locations, nil)

		req := httptest.NewRequest("GET", "/storage/find/iron_ore", nil)
		rec := httptest.NewRecorder()

		newRouter(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got []domain.MaterialLocation
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Len(t, got, 2)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Unknown Material", func(t *testing.T) {
		mockSvc := &MockStorageService{}
		mockSvc.On("FindMaterial", mock.Anything, "mithril_ore").Return(nil, domain.ErrUnknownMaterial)

		req := httptest.NewRequest("GET", "/storage/find/mithril_ore", nil)
		rec := httptest.NewRecorder()

		newRouter(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgUnknownMaterialError)
		mockSvc.AssertExpectations(t)
	})
}
