package http

import (
	"encoding/json"
	"net/http"

	"github.com/officetrack/attendance-tracker-go/internal/handler/http/response"
	"github.com/officetrack/attendance-tracker-go/internal/store"
)

type DataHandler interface {
	Export(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
	RemoveAll(w http.ResponseWriter, r *http.Request)
}

type dataHandlerImpl struct {
	store *store.Store
}

func NewDataHandler(st *store.Store) DataHandler {
	return &dataHandlerImpl{store: st}
}

// Export implements DataHandler
func (h *dataHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	snap, err := h.store.Export()
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, snap)
}

// Import implements DataHandler
func (h *dataHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	var snap store.Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		response.BadRequest(w, "Invalid snapshot body", nil)
		return
	}

	if err := h.store.Import(snap); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Data imported", nil)
}

// RemoveAll implements DataHandler
func (h *dataHandlerImpl) RemoveAll(w http.ResponseWriter, r *http.Request) {
	if err := h.store.RemoveAll(); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "All data removed", nil)
}
