package http

import (
	"encoding/json"
	"net/http"

	"libtrack-backend/internal/domain"
	"libtrack-backend/internal/service"

	"github.com/gorilla/mux"
)

// KioskHandler serves the self-service terminal: asset lookup, issue, and
// return request. No authentication; the kiosk is an open terminal.
type KioskHandler struct {
	lending service.LendingService
}

func NewKioskHandler(lending service.LendingService) *KioskHandler {
	return &KioskHandler{lending: lending}
}

func (h *KioskHandler) LookupAsset(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	asset, err := h.lending.LookupAsset(r.Context(), code)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, asset)
}

type issueRequest struct {
	AssetCode    string               `json:"asset_code"`
	BorrowerCode string               `json:"borrower_code"`
	Registration *domain.Registration `json:"registration,omitempty"`
}

type issueResponse struct {
	Loan     *domain.Loan     `json:"loan"`
	Borrower *domain.Borrower `json:"borrower"`
}

func (h *KioskHandler) IssueAsset(w http.ResponseWriter, r *http.Request) {
	var req issueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Kind: string(domain.KindValidationFailed), Message: "malformed request body"})
		return
	}

	loan, borrower, err := h.lending.Issue(r.Context(), req.AssetCode, req.BorrowerCode, req.Registration)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, issueResponse{Loan: loan, Borrower: borrower})
}

type returnRequest struct {
	AssetCode string `json:"asset_code"`
}

type returnResponse struct {
	BorrowerName string `json:"borrower_name"`
}

func (h *KioskHandler) RequestReturn(w http.ResponseWriter, r *http.Request) {
	var req returnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Kind: string(domain.KindValidationFailed), Message: "malformed request body"})
		return
	}

	name, err := h.lending.RequestReturn(r.Context(), req.AssetCode)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, returnResponse{BorrowerName: name})
}
