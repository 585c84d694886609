package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/sky/skycoord/internal/angle"
	"github.com/sky/skycoord/internal/frame"
	"github.com/sky/skycoord/internal/metrics"
	"github.com/sky/skycoord/internal/sphere"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// parseUnit resolves the unit query parameter. Degrees are the default,
// matching the library's use_degrees convention.
func parseUnit(r *http.Request) (string, error) {
	unit := r.URL.Query().Get("unit")
	switch unit {
	case "", "deg":
		return "deg", nil
	case "rad":
		return "rad", nil
	default:
		return "", fmt.Errorf("unit %q: want deg or rad", unit)
	}
}

func queryFloat(r *http.Request, key string) (float64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, fmt.Errorf("missing required parameter %q", key)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parameter %q: %q is not a number", key, raw)
	}
	return v, nil
}

// handleListTransforms returns the six recognized transformation names.
func handleListTransforms(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0, 6)
	for _, tr := range []frame.Transformation{
		frame.GalacticToICRS, frame.ICRSToGalactic,
		frame.EclipticToICRS, frame.ICRSToEcliptic,
		frame.GalacticToEcliptic, frame.EclipticToGalactic,
	} {
		names = append(names, tr.String())
	}
	writeJSON(w, http.StatusOK, map[string]any{"transformations": names})
}

// handleTransform applies a named frame transformation to a direction.
//
//	GET /api/v1/transform?name=ICRS2GAL&phi=266.4&theta=-28.9&unit=deg
func handleTransform(w http.ResponseWriter, r *http.Request) {
	tr, err := frame.ParseTransformation(r.URL.Query().Get("name"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	phi, err := queryFloat(r, "phi")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	theta, err := queryFloat(r, "theta")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	unit, err := parseUnit(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	a, b, err := tr.Apply(phi, theta, unit == "deg")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	metrics.ObserveTransform(tr.String())

	writeJSON(w, http.StatusOK, map[string]any{
		"name":  tr.String(),
		"phi":   a,
		"theta": b,
		"unit":  unit,
	})
}

// handleSeparation returns the great-circle separation of two directions.
//
//	GET /api/v1/separation?lon1=0&lat1=0&lon2=90&lat2=0&unit=deg
func handleSeparation(w http.ResponseWriter, r *http.Request) {
	var coords [4]float64
	for i, key := range []string{"lon1", "lat1", "lon2", "lat2"} {
		v, err := queryFloat(r, key)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		coords[i] = v
	}
	unit, err := parseUnit(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var sep float64
	if unit == "deg" {
		sep = sphere.SeparationDeg(coords[0], coords[1], coords[2], coords[3])
	} else {
		sep = sphere.SeparationRad(coords[0], coords[1], coords[2], coords[3])
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"separation": sep,
		"unit":       unit,
	})
}

// handleParse converts a sexagesimal angle string to decimal degrees.
//
//	GET /api/v1/parse?value=10:30:00&format=dms&delim=:
func handleParse(w http.ResponseWriter, r *http.Request) {
	value := r.URL.Query().Get("value")
	if value == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("missing required parameter %q", "value"))
		return
	}
	delim := r.URL.Query().Get("delim")

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "dms"
	}

	var (
		deg float64
		err error
	)
	switch format {
	case "dms":
		deg, err = angle.ParseDMS(value, delim)
	case "hms":
		deg, err = angle.ParseHMS(value, delim)
	default:
		writeError(w, http.StatusBadRequest, fmt.Errorf("format %q: want dms or hms", format))
		return
	}
	if err != nil {
		metrics.IncParseError(format)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"degrees": deg})
}
