// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-store-keeper/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := responseMessage(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, message)
	case http.StatusUnsupportedMediaType:
		return fmt.Errorf("%w: %s", ErrUnsupportedMedia, message)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, message)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), message)
	}
}

// responseMessage extracts the message of a {status, message} envelope and
// falls back to the raw body or the status text.
func responseMessage(resp *resty.Response) string {
	var envelope models.Response
	if err := json.Unmarshal(resp.Body(), &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		return http.StatusText(resp.StatusCode())
	}
	return body
}
