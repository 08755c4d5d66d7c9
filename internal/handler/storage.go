package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quinfall/companion/internal/domain"
	"github.com/quinfall/companion/internal/logger"
	"github.com/quinfall/companion/internal/storage"
)

// HandleGetStorage handles getting the full storage summary
// @Summary Get storage summary
// @Description Get the per-location overview of every provisioned container
// @Tags storage
// @Produce json
// @Success 200 {array} domain.LocationSummary
// @Router /storage [get]
func HandleGetStorage(svc storage.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summaries := svc.Summary(r.Context())

		logger.FromContext(r.Context()).Info("Storage summary retrieved", "locations", len(summaries))

		respondJSON(w, http.StatusOK, summaries)
	}
}

// HandleGetLocation handles getting one container's detail
// @Summary Get one storage location
// @Description Get slot usage and item contents of a single container
// @Tags storage
// @Produce json
// @Param location path string true "Storage location"
// @Success 200 {object} domain.LocationDetail
// @Failure 400 {object} ErrorResponse
// @Router /storage/{location} [get]
func HandleGetLocation(svc storage.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "location")
		loc, ok := domain.ParseLocation(raw)
		if !ok {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidLocation, raw))
			return
		}

		detail, err := svc.Location(r.Context(), loc)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetStorageFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, detail)
	}
}

// MoveRequest is the body of a storage move
type MoveRequest struct {
	Material string `json:"material" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
	From     string `json:"from" validate:"required,location"`
	To       string `json:"to" validate:"required,location"`
}

// HandleMoveItem handles moving material between containers
// @Summary Move material
// @Description Move a quantity of one material between two storage locations
// @Tags storage
// @Accept json
// @Produce json
// @Param request body MoveRequest true "Move request"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /storage/move [post]
func HandleMoveItem(svc storage.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MoveRequest
		if err := decodeRequest(w, r, &req, "Move material"); err != nil {
			return
		}

		from, _ := domain.ParseLocation(req.From)
		to, _ := domain.ParseLocation(req.To)

		if err := svc.Move(r.Context(), req.Material, req.Quantity, from, to); err != nil {
			respondServiceError(w, r, ErrMsgMoveItemFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgMoveSuccess})
	}
}

// UnlockSlotsRequest is the body of a slot unlock
type UnlockSlotsRequest struct {
	Slots int `json:"slots" validate:"required,gt=0"`
}

// HandleUnlockSlots handles unlocking additional container slots
// @Summary Unlock slots
// @Description Unlock additional slots at a storage location
// @Tags storage
// @Accept json
// @Produce json
// @Param location path string true "Storage location"
// @Param request body UnlockSlotsRequest true "Unlock request"
// @Success 200 {object} domain.SlotInfo
// @Failure 400 {object} ErrorResponse
// @Router /storage/{location}/unlock [post]
func HandleUnlockSlots(svc storage.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "location")
		loc, ok := domain.ParseLocation(raw)
		if !ok {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidLocation, raw))
			return
		}

		var req UnlockSlotsRequest
		if err := decodeRequest(w, r, &req, "Unlock slots"); err != nil {
			return
		}

		info, err := svc.UnlockSlots(r.Context(), loc, req.Slots)
		if err != nil {
			respondServiceError(w, r, ErrMsgUnlockSlotsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, info)
	}
}

// ResetStorageRequest is the body of a storage reset
type ResetStorageRequest struct {
	InventoryValue int `json:"inventory_value" validate:"gte=0"`
	StorageValue   int `json:"storage_value" validate:"gte=0"`
}

// HandleResetStorage handles re-seeding every container
// @Summary Reset storage
// @Description Overwrite every container: the inventory to inventory_value per material, everything else to storage_value
// @Tags storage
// @Accept json
// @Produce json
// @Param request body ResetStorageRequest true "Reset request"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /storage/reset [post]
func HandleResetStorage(svc storage.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetStorageRequest
		if err := decodeRequest(w, r, &req, "Reset storage"); err != nil {
			return
		}

		if err := svc.Reset(r.Context(), req.InventoryValue, req.StorageValue); err != nil {
			respondServiceError(w, r, ErrMsgResetStorageFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgResetSuccess})
	}
}

// HandleFindMaterial handles locating a material across containers
// @Summary Find material
// @Description List every storage location holding the material, with quantities
// @Tags storage
// @Produce json
// @Param material path string true "Material id"
// @Success 200 {array} domain.MaterialLocation
// @Failure 400 {object} ErrorResponse
// @Router /storage/find/{material} [get]
func HandleFindMaterial(svc storage.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		materialID := chi.URLParam(r, "material")

		locations, err := svc.FindMaterial(r.Context(), materialID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetStorageFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info("Material located", "material", materialID, "locations", len(locations))

		respondJSON(w, http.StatusOK, locations)
	}
}
