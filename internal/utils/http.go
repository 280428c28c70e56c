// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it with statusCode and a
// "Content-Type: application/json" header.
//
// Data is marshaled before anything is written, so a marshaling failure
// still leaves the response untouched and it is answered with
// 500 Internal Server Error instead.
//
// Parameters:
//
//	w          - response writer the body is written to
//	data       - value to serialize, usually one of the models response envelopes
//	statusCode - HTTP status sent before the body
//
// Returns:
//
//	int   - number of body bytes written, 0 when marshaling failed
//	error - wrapped marshaling error, or the error returned by w.Write
//
// Example usage:
//
//	_, err := utils.WriteJSON(w, models.Response{Status: models.StatusSuccess}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
