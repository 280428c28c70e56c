// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-store-keeper/internal/adapter"
	"github.com/MKhiriev/go-store-keeper/internal/logger"
	"github.com/MKhiriev/go-store-keeper/internal/mock"
	"github.com/MKhiriev/go-store-keeper/models"
)

const savedToken = "saved.jwt.token"

type testApp struct {
	*App
	adapter *mock.MockServerAdapter
	session Session
	out     *bytes.Buffer
	copied  []string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	ta := &testApp{
		adapter: mock.NewMockServerAdapter(gomock.NewController(t)),
		session: NewFileSession(t.TempDir()),
		out:     &bytes.Buffer{},
	}
	ta.App = NewApp(ta.adapter, ta.session, ta.out, logger.Nop())
	ta.copyToClipboard = func(s string) error {
		ta.copied = append(ta.copied, s)
		return nil
	}
	return ta
}

func (ta *testApp) signedIn(t *testing.T) {
	t.Helper()
	require.NoError(t, ta.session.Save(savedToken))
	ta.adapter.EXPECT().SetToken(savedToken)
}

func TestRun_UsageAndUnknownCommand(t *testing.T) {
	ta := newTestApp(t)

	require.NoError(t, ta.Run(nil))
	assert.Contains(t, ta.out.String(), "create-store")

	err := ta.Run([]string{"explode"})
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestRun_AuthedCommandWithoutSession(t *testing.T) {
	ta := newTestApp(t)

	err := ta.Run([]string{"stores"})
	assert.ErrorIs(t, err, adapter.ErrNotLoggedIn)
}

func TestLogin_SavesSessionAndCopies(t *testing.T) {
	ta := newTestApp(t)
	ta.adapter.EXPECT().
		Login(gomock.Any(), models.User{Email: "alice@example.com", Password: "secret-pass"}).
		Return("fresh.jwt.token", nil)

	err := ta.Run([]string{"login", "-email", "alice@example.com", "-password", "secret-pass", "-copy"})
	require.NoError(t, err)

	token, err := ta.session.Load()
	require.NoError(t, err)
	assert.Equal(t, "fresh.jwt.token", token)
	assert.Equal(t, []string{"fresh.jwt.token"}, ta.copied)
	assert.Contains(t, ta.out.String(), "Successfully logged in as alice@example.com")
}

func TestRegister_RequiresCredentials(t *testing.T) {
	ta := newTestApp(t)

	err := ta.Run([]string{"register", "-email", "alice@example.com"})
	assert.ErrorIs(t, err, ErrMissingArgument)
}

func TestLogin_FailureKeepsSessionEmpty(t *testing.T) {
	ta := newTestApp(t)
	ta.adapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return("", adapter.ErrUnauthorized)

	err := ta.Run([]string{"login", "-email", "alice@example.com", "-password", "wrong"})
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)

	token, err := ta.session.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Empty(t, ta.copied)
}

func TestLogout_ClearsSession(t *testing.T) {
	ta := newTestApp(t)
	ta.signedIn(t)
	ta.adapter.EXPECT().Logout(gomock.Any()).Return(nil)

	require.NoError(t, ta.Run([]string{"logout"}))

	token, err := ta.session.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestResetPassword_ConfirmsNewPassword(t *testing.T) {
	ta := newTestApp(t)
	ta.signedIn(t)
	ta.adapter.EXPECT().ResetPassword(gomock.Any(), models.ResetPasswordRequest{
		OldPassword: "old-pass", NewPassword: "new-pass", PasswordConfirmation: "new-pass",
	}).Return(nil)

	require.NoError(t, ta.Run([]string{"reset-password", "-old", "old-pass", "-new", "new-pass"}))
	assert.Contains(t, ta.out.String(), "Password reset successfully")
}

func TestStores_RendersPage(t *testing.T) {
	ta := newTestApp(t)
	ta.signedIn(t)

	next := "http://localhost:8080/v1/storelists?page=2&q=T"
	ta.adapter.EXPECT().ListStores(gomock.Any(), "T", 1).Return(models.StoreListResponse{
		Status: models.StatusSuccess,
		Next:   &next,
		Count:  6,
		Stores: []models.Store{{ID: 1, Name: "Travel"}, {ID: 2, Name: "Tral"}},
	}, nil)

	require.NoError(t, ta.Run([]string{"stores", "-q", "T", "-page", "1"}))

	out := ta.out.String()
	assert.Contains(t, out, "Stores (6)")
	assert.Contains(t, out, "Travel")
	assert.Contains(t, out, "Tral")
	assert.Contains(t, out, "next: "+next)
	assert.NotContains(t, out, "prev:")
}

func TestCreateStore(t *testing.T) {
	ta := newTestApp(t)
	ta.signedIn(t)
	ta.adapter.EXPECT().CreateStore(gomock.Any(), "Groceries").Return(models.Store{ID: 4, Name: "Groceries"}, nil)

	require.NoError(t, ta.Run([]string{"create-store", "-name", "Groceries"}))
	assert.Contains(t, ta.out.String(), `Created store "Groceries" with id 4`)
}

func TestDeleteStore_PropagatesNotFound(t *testing.T) {
	ta := newTestApp(t)
	ta.signedIn(t)
	ta.adapter.EXPECT().DeleteStore(gomock.Any(), int64(42)).Return(adapter.ErrNotFound)

	err := ta.Run([]string{"delete-store", "-id", "42"})
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestItems_RendersDescriptions(t *testing.T) {
	ta := newTestApp(t)
	ta.signedIn(t)

	description := "2 litres"
	ta.adapter.EXPECT().ListItems(gomock.Any(), int64(4), "", 0).Return(models.StoreItemListResponse{
		Status: models.StatusSuccess,
		Count:  1,
		Items:  []models.StoreItem{{ID: 9, StoreID: 4, Name: "Milk", Description: &description}},
	}, nil)

	require.NoError(t, ta.Run([]string{"items", "-store", "4"}))

	out := ta.out.String()
	assert.Contains(t, out, "Items of store 4 (1)")
	assert.Contains(t, out, "Milk")
	assert.Contains(t, out, description)
}

func TestAddItem_OmitsEmptyDescription(t *testing.T) {
	ta := newTestApp(t)
	ta.signedIn(t)
	ta.adapter.EXPECT().
		CreateItem(gomock.Any(), int64(4), models.StoreItemRequest{Name: "Bread"}).
		Return(models.StoreItem{ID: 10, StoreID: 4, Name: "Bread"}, nil)

	require.NoError(t, ta.Run([]string{"add-item", "-store", "4", "-name", "Bread"}))
	assert.Contains(t, ta.out.String(), `Added "Bread" to store 4 with id 10`)
}

func TestDeleteItem_RequiresIDs(t *testing.T) {
	ta := newTestApp(t)
	ta.signedIn(t)

	err := ta.Run([]string{"delete-item", "-store", "4"})
	assert.ErrorIs(t, err, ErrMissingArgument)
}

func TestVersion(t *testing.T) {
	ta := newTestApp(t)
	ta.adapter.EXPECT().Version(gomock.Any()).Return("1.4.0", nil)

	require.NoError(t, ta.RunContext(context.Background(), []string{"version"}))
	assert.Equal(t, "1.4.0\n", ta.out.String())
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, errors.New("store not found"))
	assert.Contains(t, buf.String(), "error: store not found")
}
