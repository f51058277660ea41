package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"libtrack-backend/internal/domain"
	"libtrack-backend/internal/service"

	"github.com/gorilla/mux"
)

// AdminHandler serves the staff console. Every route is behind the staff
// auth middleware.
type AdminHandler struct {
	catalog     service.CatalogService
	lending     service.LendingService
	circulation service.CirculationService
}

func NewAdminHandler(catalog service.CatalogService, lending service.LendingService, circulation service.CirculationService) *AdminHandler {
	return &AdminHandler{catalog: catalog, lending: lending, circulation: circulation}
}

type addAssetRequest struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Code     string `json:"code"`
}

func (h *AdminHandler) AddAsset(w http.ResponseWriter, r *http.Request) {
	var req addAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Kind: string(domain.KindValidationFailed), Message: "malformed request body"})
		return
	}

	asset, err := h.catalog.AddAsset(r.Context(), req.Title, req.Category, req.Code)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, asset)
}

func (h *AdminHandler) ListAssets(w http.ResponseWriter, r *http.Request) {
	var (
		assets []domain.Asset
		err    error
	)
	if category := r.URL.Query().Get("category"); category != "" {
		assets, err = h.catalog.ListAssetsByCategory(r.Context(), category)
	} else {
		assets, err = h.catalog.ListAssets(r.Context())
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, assets)
}

func (h *AdminHandler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Kind: string(domain.KindValidationFailed), Message: "invalid asset id"})
		return
	}

	if err := h.catalog.DeleteAsset(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *AdminHandler) ListLoans(w http.ResponseWriter, r *http.Request) {
	loans, err := h.circulation.ListLoans(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loans)
}

func (h *AdminHandler) ListPendingReturns(w http.ResponseWriter, r *http.Request) {
	pending, err := h.circulation.ListPendingReturns(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pending)
}

type approveReturnRequest struct {
	AssetID int32 `json:"asset_id"`
}

func (h *AdminHandler) ApproveReturn(w http.ResponseWriter, r *http.Request) {
	loanID, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Kind: string(domain.KindValidationFailed), Message: "invalid loan id"})
		return
	}

	var req approveReturnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Kind: string(domain.KindValidationFailed), Message: "malformed request body"})
		return
	}

	loan, err := h.lending.ApproveReturn(r.Context(), loanID, req.AssetID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loan)
}

func (h *AdminHandler) ListOverdue(w http.ResponseWriter, r *http.Request) {
	overdue, err := h.circulation.ListOverdue(r.Context(), time.Now().UTC())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, overdue)
}

func (h *AdminHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.circulation.Summary(r.Context(), time.Now().UTC())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func pathID(r *http.Request, name string) (int32, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(id), nil
}
