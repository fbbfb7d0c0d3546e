// backend/src/utils/utils.go
package utils

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"
)

// SendJSONError writes a JSON-encoded error body with the given status.
func SendJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// RoundFloat rounds to the given number of decimal places.
func RoundFloat(val float64, precision uint) float64 {
	ratio := math.Pow(10, float64(precision))
	return math.Round(val*ratio) / ratio
}

// ParseBalance coerces raw balance input to a non-negative amount. Grouping
// commas and surrounding whitespace are stripped; anything that still fails
// to parse, and any negative or non-finite value, becomes zero.
func ParseBalance(raw string) float64 {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if cleaned == "" {
		return 0
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || value < 0 || math.IsInf(value, 0) || math.IsNaN(value) {
		return 0
	}
	return value
}
