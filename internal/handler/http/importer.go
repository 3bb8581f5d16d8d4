package http

import (
	"io"
	"net/http"

	"github.com/officetrack/attendance-tracker-go/internal/domain/importer"
	"github.com/officetrack/attendance-tracker-go/internal/handler/http/response"
)

type ImportHandler interface {
	ImportTravel(w http.ResponseWriter, r *http.Request)
	ImportLeave(w http.ResponseWriter, r *http.Request)
	SampleTravel(w http.ResponseWriter, r *http.Request)
	SampleLeave(w http.ResponseWriter, r *http.Request)
}

type importHandlerImpl struct {
	importerService importer.ImporterService
}

func NewImportHandler(importerService importer.ImporterService) ImportHandler {
	return &importHandlerImpl{importerService: importerService}
}

const maxImportSize = 10 << 20

// readImportRequest pulls the CSV payload and scope out of a multipart
// form. The file goes in the "file" field; scope defaults to all.
func readImportRequest(r *http.Request) (content string, scope importer.Scope, scopeValue string, err error) {
	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		return "", "", "", err
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		return "", "", "", err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImportSize))
	if err != nil {
		return "", "", "", err
	}

	scope = importer.Scope(r.FormValue("scope"))
	if scope == "" {
		scope = importer.ScopeAll
	}
	return string(data), scope, r.FormValue("scopeValue"), nil
}

// ImportTravel implements ImportHandler
func (h *importHandlerImpl) ImportTravel(w http.ResponseWriter, r *http.Request) {
	content, scope, scopeValue, err := readImportRequest(r)
	if err != nil {
		response.BadRequest(w, "A CSV file is required in the file field", nil)
		return
	}
	if !scope.Valid() {
		response.BadRequest(w, "Scope must be all, location or employee", nil)
		return
	}
	if scope != importer.ScopeAll && scopeValue == "" {
		response.BadRequest(w, "scopeValue is required for this scope", nil)
		return
	}

	response.Success(w, h.importerService.ImportTravel(r.Context(), content, scope, scopeValue))
}

// ImportLeave implements ImportHandler
func (h *importHandlerImpl) ImportLeave(w http.ResponseWriter, r *http.Request) {
	content, scope, scopeValue, err := readImportRequest(r)
	if err != nil {
		response.BadRequest(w, "A CSV file is required in the file field", nil)
		return
	}
	if !scope.Valid() {
		response.BadRequest(w, "Scope must be all, location or employee", nil)
		return
	}
	if scope != importer.ScopeAll && scopeValue == "" {
		response.BadRequest(w, "scopeValue is required for this scope", nil)
		return
	}

	response.Success(w, h.importerService.ImportLeave(r.Context(), content, scope, scopeValue))
}

func writeCSV(w http.ResponseWriter, filename, content string) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	_, _ = w.Write([]byte(content))
}

// SampleTravel implements ImportHandler
func (h *importHandlerImpl) SampleTravel(w http.ResponseWriter, r *http.Request) {
	writeCSV(w, "sample-travel.csv", h.importerService.SampleTravelCSV())
}

// SampleLeave implements ImportHandler
func (h *importHandlerImpl) SampleLeave(w http.ResponseWriter, r *http.Request) {
	writeCSV(w, "sample-leave.csv", h.importerService.SampleLeaveCSV())
}
