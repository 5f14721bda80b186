package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/oshokin/tzalign"
	"github.com/oshokin/tzalign/internal/logger"
	"github.com/oshokin/tzalign/internal/timeparse"
)

// maxRangeElements bounds how many elements a single range or weeks request
// may produce, so a tiny step over a huge span cannot pin the server.
const maxRangeElements = 10000

// Handler wires the alignment endpoints to the library.
type Handler struct {
	provider    tzalign.Provider
	defaultZone *tzalign.Zone
}

// NewHandler constructs a handler resolving timezones through the given
// provider and assuming defaultZone for requests that name none.
func NewHandler(provider tzalign.Provider, defaultZone *tzalign.Zone) *Handler {
	return &Handler{
		provider:    provider,
		defaultZone: defaultZone,
	}
}

// Register mounts the API endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/v1/align", h.handleAlign)
	r.Post("/v1/convert", h.handleConvert)
	r.Post("/v1/standardize", h.handleStandardize)
	r.Post("/v1/range", h.handleRange)
	r.Post("/v1/weeks", h.handleWeeks)
	r.Get("/v1/now", h.handleNow)
	r.Get("/healthz", h.handleHealth)
}

// handleAlign handles POST /v1/align requests.
func (h *Handler) handleAlign(w http.ResponseWriter, r *http.Request) {
	var req alignRequest
	if !decode(w, r, &req) {
		return
	}

	zone, err := h.zoneFor(req.Timezone)
	if err != nil {
		writeError(r, w, err)
		return
	}

	moment, err := timeparse.Parse(req.Time, zone, req.Policy.toPolicy())
	if err != nil {
		writeError(r, w, err)
		return
	}

	direction, err := parseDirection(req.Direction)
	if err != nil {
		writeError(r, w, err)
		return
	}

	var aligned tzalign.Zoned

	switch req.Unit {
	case "day", "":
		aligned, err = tzalign.AlignToDay(moment, zone, direction)
	case "week":
		aligned, err = tzalign.AlignToWeek(moment, zone, direction)
	case "month":
		aligned, err = tzalign.AlignToMonth(moment, zone, direction)
	default:
		err = invalidArgumentf("unknown unit %q", req.Unit)
	}

	if err != nil {
		writeError(r, w, err)
		return
	}

	logger.DebugKV(r.Context(), "aligned moment",
		"input", req.Time, "unit", req.Unit, "direction", direction.String())

	writeJSON(w, http.StatusOK, momentResponse{Result: timeparse.Format(aligned)})
}

// handleConvert handles POST /v1/convert requests.
func (h *Handler) handleConvert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if !decode(w, r, &req) {
		return
	}

	source, err := h.zoneFor(req.FromTimezone)
	if err != nil {
		writeError(r, w, err)
		return
	}

	target, err := h.resolve(req.Timezone)
	if err != nil {
		writeError(r, w, err)
		return
	}

	moment, err := timeparse.Parse(req.Time, source, req.Policy.toPolicy())
	if err != nil {
		writeError(r, w, err)
		return
	}

	converted, err := tzalign.Convert(moment, target)
	if err != nil {
		writeError(r, w, err)
		return
	}

	writeJSON(w, http.StatusOK, momentResponse{Result: timeparse.Format(converted)})
}

// handleStandardize handles POST /v1/standardize requests.
func (h *Handler) handleStandardize(w http.ResponseWriter, r *http.Request) {
	var req standardizeRequest
	if !decode(w, r, &req) {
		return
	}

	zone, err := h.zoneFor(req.Timezone)
	if err != nil {
		writeError(r, w, err)
		return
	}

	moment, err := timeparse.Parse(req.Time, zone, req.Policy.toPolicy())
	if err != nil {
		writeError(r, w, err)
		return
	}

	standardized, err := tzalign.Standardize(moment, zone)
	if err != nil {
		writeError(r, w, err)
		return
	}

	writeJSON(w, http.StatusOK, momentResponse{Result: timeparse.Format(standardized)})
}

// handleRange handles POST /v1/range requests.
func (h *Handler) handleRange(w http.ResponseWriter, r *http.Request) {
	var req rangeRequest
	if !decode(w, r, &req) {
		return
	}

	zone, err := h.zoneFor(req.Timezone)
	if err != nil {
		writeError(r, w, err)
		return
	}

	step, err := time.ParseDuration(req.Step)
	if err != nil {
		writeError(r, w, invalidArgumentf("cannot parse step %q", req.Step))
		return
	}

	start, err := timeparse.Parse(req.Start, zone, tzalign.Policy{})
	if err != nil {
		writeError(r, w, err)
		return
	}

	end, err := timeparse.Parse(req.End, zone, tzalign.Policy{})
	if err != nil {
		writeError(r, w, err)
		return
	}

	seq, err := tzalign.Range(start, end, step, tzalign.RangeOptions{SkipMissing: req.SkipMissing})
	if err != nil {
		writeError(r, w, err)
		return
	}

	results := make([]string, 0)

	for moment := range seq {
		if len(results) == maxRangeElements {
			writeError(r, w, invalidArgumentf("range produces more than %d elements", maxRangeElements))
			return
		}

		results = append(results, timeparse.Format(moment))
	}

	writeJSON(w, http.StatusOK, rangeResponse{Results: results})
}

// handleWeeks handles POST /v1/weeks requests.
func (h *Handler) handleWeeks(w http.ResponseWriter, r *http.Request) {
	var req weeksRequest
	if !decode(w, r, &req) {
		return
	}

	zone, err := h.zoneFor(req.Timezone)
	if err != nil {
		writeError(r, w, err)
		return
	}

	start, err := timeparse.Parse(req.Start, zone, tzalign.Policy{})
	if err != nil {
		writeError(r, w, err)
		return
	}

	end, err := timeparse.Parse(req.End, zone, tzalign.Policy{})
	if err != nil {
		writeError(r, w, err)
		return
	}

	seq, err := tzalign.Weeks(start, end)
	if err != nil {
		writeError(r, w, err)
		return
	}

	partitions := make([]spanResponse, 0)

	for partStart, partEnd := range seq {
		if len(partitions) == maxRangeElements {
			writeError(r, w, invalidArgumentf("span produces more than %d partitions", maxRangeElements))
			return
		}

		partitions = append(partitions, spanResponse{
			Start: timeparse.Format(partStart),
			End:   timeparse.Format(partEnd),
		})
	}

	writeJSON(w, http.StatusOK, weeksResponse{Partitions: partitions})
}

// handleNow handles GET /v1/now requests.
func (h *Handler) handleNow(w http.ResponseWriter, r *http.Request) {
	zone, err := h.zoneFor(r.URL.Query().Get("timezone"))
	if err != nil {
		writeError(r, w, err)
		return
	}

	now, err := tzalign.Convert(tzalign.Now(), zone)
	if err != nil {
		writeError(r, w, err)
		return
	}

	writeJSON(w, http.StatusOK, momentResponse{Result: timeparse.Format(now)})
}

// handleHealth handles GET /healthz requests.
func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// zoneFor resolves the named timezone, falling back to the handler's default
// when the name is empty.
func (h *Handler) zoneFor(name string) (*tzalign.Zone, error) {
	if name == "" {
		return h.defaultZone, nil
	}

	return h.resolve(name)
}

// resolve requires an explicit timezone name.
func (h *Handler) resolve(name string) (*tzalign.Zone, error) {
	return h.provider.Resolve(name)
}

// decode reads the request body into dst and answers a 400 on malformed JSON.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(r, w, invalidArgumentf("malformed request body: %v", err))
		return false
	}

	return true
}

// writeJSON serializes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	//nolint:errcheck // The response is already committed at this point.
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps library errors onto HTTP statuses: bad input is a 400,
// wall clocks that exist but cannot be honored under the request's policy
// are a 422, and everything else is a 500.
func writeError(r *http.Request, w http.ResponseWriter, err error) {
	var (
		nonExistent *tzalign.NonExistentTimeError
		ambiguous   *tzalign.AmbiguousTimeError
	)

	status := http.StatusInternalServerError

	switch {
	case errors.As(err, &nonExistent), errors.As(err, &ambiguous):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, tzalign.ErrInvalidArgument),
		errors.Is(err, tzalign.ErrInvalidRange),
		errors.Is(err, tzalign.ErrUnknownTimezone),
		errors.Is(err, tzalign.ErrNotTimezoneAware):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		logger.ErrorKV(r.Context(), "request failed", "error", err)
	} else {
		logger.DebugKV(r.Context(), "request rejected", "status", status, "error", err)
	}

	writeJSON(w, status, errorResponse{Error: err.Error()})
}
