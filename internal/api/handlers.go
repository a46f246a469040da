package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/VoidMesh/polymap/internal/atlas"
	"github.com/VoidMesh/polymap/internal/logging"
	"github.com/VoidMesh/polymap/internal/polymap"
)

const maxRequestBody = 1 << 20

type Handler struct {
	mapManager *atlas.Manager
	logger     *log.Logger
}

func NewHandler(mapManager *atlas.Manager) *Handler {
	return &Handler{
		mapManager: mapManager,
		logger:     logging.WithComponent("api"),
	}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
		"service":   "polymap",
		"version":   "1.0.0",
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, response)
}

func (h *Handler) ListBiomes(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, map[string]interface{}{
		"biomes": atlas.BiomeTable(),
	})
}

// CreateMap generates and stores a map. An empty body uses every default.
func (h *Handler) CreateMap(w http.ResponseWriter, r *http.Request) {
	var req atlas.GenerateRequest
	body := http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := render.DecodeJSON(body, &req); err != nil && !errors.Is(err, io.EOF) {
		h.renderError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}

	summary, err := h.mapManager.Generate(r.Context(), req)
	if err != nil {
		h.renderManagerError(w, r, "failed to generate map", err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, summary)
}

func (h *Handler) ListMaps(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid limit", err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid offset", err)
		return
	}

	list, err := h.mapManager.List(r.Context(), limit, offset)
	if err != nil {
		h.renderManagerError(w, r, "failed to list maps", err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, list)
}

func (h *Handler) GetMap(w http.ResponseWriter, r *http.Request) {
	id, ok := h.mapID(w, r)
	if !ok {
		return
	}

	summary, err := h.mapManager.Get(r.Context(), id)
	if err != nil {
		h.renderManagerError(w, r, "failed to load map", err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, summary)
}

func (h *Handler) GetMapCells(w http.ResponseWriter, r *http.Request) {
	id, ok := h.mapID(w, r)
	if !ok {
		return
	}

	cells, err := h.mapManager.Cells(r.Context(), id)
	if err != nil {
		h.renderManagerError(w, r, "failed to load map cells", err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, map[string]interface{}{
		"map_id": id,
		"cells":  cells,
	})
}

func (h *Handler) GetMapImage(w http.ResponseWriter, r *http.Request) {
	id, ok := h.mapID(w, r)
	if !ok {
		return
	}

	png, err := h.mapManager.Image(r.Context(), id)
	if err != nil {
		h.renderManagerError(w, r, "failed to load map image", err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.Header().Set("Cache-Control", "public, max-age=86400, immutable")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		h.logger.Warn("failed to write map image", "error", err, "map_id", id)
	}
}

func (h *Handler) DeleteMap(w http.ResponseWriter, r *http.Request) {
	id, ok := h.mapID(w, r)
	if !ok {
		return
	}

	if err := h.mapManager.Delete(r.Context(), id); err != nil {
		h.renderManagerError(w, r, "failed to delete map", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// mapID reads the {id} URL parameter and rejects anything that is not a UUID.
func (h *Handler) mapID(w http.ResponseWriter, r *http.Request) (string, bool) {
	raw := chi.URLParam(r, "id")
	parsed, err := uuid.Parse(raw)
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid map id", err)
		return "", false
	}
	return parsed.String(), true
}

func queryInt(r *http.Request, key string) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func (h *Handler) renderManagerError(w http.ResponseWriter, r *http.Request, message string, err error) {
	// The timeout middleware answers requests whose context has ended.
	if ctxErr := r.Context().Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		h.logger.Warn("Request ended before the response", "error", err, "message", message)
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, atlas.ErrInvalidRequest):
		status = http.StatusBadRequest
	case errors.Is(err, atlas.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, polymap.ErrGeometry):
		status = http.StatusUnprocessableEntity
	}
	h.renderError(w, r, status, message, err)
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	errorResponse := atlas.ErrorResponse{
		Error:   message,
		Code:    status,
		Message: message,
	}

	if err != nil {
		if status >= 500 {
			h.logger.Error("API error", "error", err, "message", message, "status", status)
			// Don't expose internal errors to the client
			errorResponse.Error = "Internal server error"
		} else {
			h.logger.Debug("API client error", "error", err, "message", message, "status", status)
			errorResponse.Message = err.Error()
		}
	}

	render.Status(r, status)
	render.JSON(w, r, errorResponse)
}
