// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-store-keeper/internal/config"
	"github.com/MKhiriev/go-store-keeper/internal/logger"
	"github.com/MKhiriev/go-store-keeper/internal/utils"
	"github.com/MKhiriev/go-store-keeper/models"
)

const (
	versionPath       = "/v1/version"
	registerPath      = "/v1/auth/register"
	loginPath         = "/v1/auth/login"
	logoutPath        = "/v1/auth/logout"
	resetPasswordPath = "/v1/auth/reset/password"
	storesPath        = "/v1/storelists"
	storePath         = "/v1/storelists/{storeID}"
	itemsPath         = "/v1/storelists/{storeID}/items"
	itemPath          = "/v1/storelists/{storeID}/items/{itemID}"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// A bare "host:port" address is treated as plain HTTP.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidServerAddress, err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var vr models.VersionResponse
	if err = json.Unmarshal(resp.Body(), &vr); err != nil {
		return "", fmt.Errorf("decode version response: %w", err)
	}
	return vr.Version, nil
}

// Register POSTs the credentials and keeps the token the server issued.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (string, error) {
	return h.authenticate(ctx, registerPath, user)
}

// Login POSTs the credentials and keeps the token the server issued.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (string, error) {
	return h.authenticate(ctx, loginPath, user)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, user models.User) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.User{Email: user.Email, Password: user.Password}).
		Post(path)
	if err != nil {
		return "", fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		// the body carries the same token
		var ar models.AuthResponse
		if jsonErr := json.Unmarshal(resp.Body(), &ar); jsonErr != nil || ar.AuthToken == "" {
			return "", fmt.Errorf("parse bearer token: %w", err)
		}
		token = ar.AuthToken
	}

	h.SetToken(token)
	h.logger.Debug().Str("path", path).Msg("token received")
	return token, nil
}

func (h *httpServerAdapter) Logout(ctx context.Context) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.Post(logoutPath)
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpServerAdapter) ResetPassword(ctx context.Context, body models.ResetPasswordRequest) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(resetPasswordPath)
	if err != nil {
		return fmt.Errorf("reset password request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListStores(ctx context.Context, query string, page int) (models.StoreListResponse, error) {
	var list models.StoreListResponse

	req, err := h.authedRequest(ctx)
	if err != nil {
		return list, err
	}

	resp, err := withPageQuery(req, query, page).Get(storesPath)
	if err != nil {
		return list, fmt.Errorf("list stores request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return list, err
	}

	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return list, fmt.Errorf("decode store list: %w", err)
	}
	return list, nil
}

func (h *httpServerAdapter) CreateStore(ctx context.Context, name string) (models.Store, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Store{}, err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(models.StoreRequest{Name: name}).
		Post(storesPath)
	if err != nil {
		return models.Store{}, fmt.Errorf("create store request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Store{}, err
	}

	var created models.CreatedStoreResponse
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.Store{}, fmt.Errorf("decode created store: %w", err)
	}
	return created.Store, nil
}

func (h *httpServerAdapter) DeleteStore(ctx context.Context, storeID int64) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParam("storeID", strconv.FormatInt(storeID, 10)).
		Delete(storePath)
	if err != nil {
		return fmt.Errorf("delete store request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListItems(ctx context.Context, storeID int64, query string, page int) (models.StoreItemListResponse, error) {
	var list models.StoreItemListResponse

	req, err := h.authedRequest(ctx)
	if err != nil {
		return list, err
	}

	resp, err := withPageQuery(req, query, page).
		SetPathParam("storeID", strconv.FormatInt(storeID, 10)).
		Get(itemsPath)
	if err != nil {
		return list, fmt.Errorf("list items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return list, err
	}

	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return list, fmt.Errorf("decode item list: %w", err)
	}
	return list, nil
}

func (h *httpServerAdapter) CreateItem(ctx context.Context, storeID int64, body models.StoreItemRequest) (models.StoreItem, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.StoreItem{}, err
	}

	resp, err := req.
		SetPathParam("storeID", strconv.FormatInt(storeID, 10)).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(itemsPath)
	if err != nil {
		return models.StoreItem{}, fmt.Errorf("create item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StoreItem{}, err
	}

	var created models.StoreItemResponse
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.StoreItem{}, fmt.Errorf("decode created item: %w", err)
	}
	return created.Item, nil
}

func (h *httpServerAdapter) DeleteItem(ctx context.Context, storeID, itemID int64) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParams(map[string]string{
			"storeID": strconv.FormatInt(storeID, 10),
			"itemID":  strconv.FormatInt(itemID, 10),
		}).
		Delete(itemPath)
	if err != nil {
		return fmt.Errorf("delete item request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNotLoggedIn
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}

func withPageQuery(req *resty.Request, query string, page int) *resty.Request {
	if query != "" {
		req.SetQueryParam("q", query)
	}
	if page > 0 {
		req.SetQueryParam("page", strconv.Itoa(page))
	}
	return req
}
