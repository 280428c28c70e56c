// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"flag"
	"fmt"

	"github.com/MKhiriev/go-store-keeper/models"
)

func (a *App) version(ctx context.Context, fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}

	version, err := a.adapter.Version(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, version)
	return nil
}

func (a *App) register(ctx context.Context, fs *flag.FlagSet, args []string) error {
	return a.authenticate(ctx, fs, args, a.adapter.Register, "registered")
}

func (a *App) login(ctx context.Context, fs *flag.FlagSet, args []string) error {
	return a.authenticate(ctx, fs, args, a.adapter.Login, "logged in")
}

func (a *App) authenticate(
	ctx context.Context,
	fs *flag.FlagSet,
	args []string,
	call func(context.Context, models.User) (string, error),
	done string,
) error {
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	copyToken := fs.Bool("copy", false, "copy the token to the clipboard")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return fmt.Errorf("%w: -email and -password are required", ErrMissingArgument)
	}

	token, err := call(ctx, models.User{Email: *email, Password: *password})
	if err != nil {
		return err
	}

	if err = a.session.Save(token); err != nil {
		return err
	}

	a.success("Successfully %s as %s", done, *email)

	if *copyToken {
		if err = a.copyToClipboard(token); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintln(a.out, helpStyle.Render("token copied to clipboard"))
	}

	return nil
}

func (a *App) logout(ctx context.Context, fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.adapter.Logout(ctx); err != nil {
		return err
	}
	if err := a.session.Clear(); err != nil {
		return err
	}

	a.success("Successfully logged out")
	return nil
}

func (a *App) resetPassword(ctx context.Context, fs *flag.FlagSet, args []string) error {
	oldPassword := fs.String("old", "", "current password")
	newPassword := fs.String("new", "", "new password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *oldPassword == "" || *newPassword == "" {
		return fmt.Errorf("%w: -old and -new are required", ErrMissingArgument)
	}

	err := a.adapter.ResetPassword(ctx, models.ResetPasswordRequest{
		OldPassword:          *oldPassword,
		NewPassword:          *newPassword,
		PasswordConfirmation: *newPassword,
	})
	if err != nil {
		return err
	}

	a.success("Password reset successfully")
	return nil
}

func (a *App) listStores(ctx context.Context, fs *flag.FlagSet, args []string) error {
	query := fs.String("q", "", "name filter")
	page := fs.Int("page", 0, "page number")
	if err := fs.Parse(args); err != nil {
		return err
	}

	list, err := a.adapter.ListStores(ctx, *query, *page)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, renderStores(list))
	return nil
}

func (a *App) createStore(ctx context.Context, fs *flag.FlagSet, args []string) error {
	name := fs.String("name", "", "store name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" {
		return fmt.Errorf("%w: -name is required", ErrMissingArgument)
	}

	created, err := a.adapter.CreateStore(ctx, *name)
	if err != nil {
		return err
	}

	a.success("Created store %q with id %d", created.Name, created.ID)
	return nil
}

func (a *App) deleteStore(ctx context.Context, fs *flag.FlagSet, args []string) error {
	id := fs.Int64("id", 0, "store id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return fmt.Errorf("%w: -id is required", ErrMissingArgument)
	}

	if err := a.adapter.DeleteStore(ctx, *id); err != nil {
		return err
	}

	a.success("Store deleted successfully")
	return nil
}

func (a *App) listItems(ctx context.Context, fs *flag.FlagSet, args []string) error {
	storeID := fs.Int64("store", 0, "store id")
	query := fs.String("q", "", "name filter")
	page := fs.Int("page", 0, "page number")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *storeID <= 0 {
		return fmt.Errorf("%w: -store is required", ErrMissingArgument)
	}

	list, err := a.adapter.ListItems(ctx, *storeID, *query, *page)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, renderItems(*storeID, list))
	return nil
}

func (a *App) addItem(ctx context.Context, fs *flag.FlagSet, args []string) error {
	storeID := fs.Int64("store", 0, "store id")
	name := fs.String("name", "", "item name")
	description := fs.String("description", "", "item description")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *storeID <= 0 || *name == "" {
		return fmt.Errorf("%w: -store and -name are required", ErrMissingArgument)
	}

	req := models.StoreItemRequest{Name: *name}
	if *description != "" {
		req.Description = description
	}

	item, err := a.adapter.CreateItem(ctx, *storeID, req)
	if err != nil {
		return err
	}

	a.success("Added %q to store %d with id %d", item.Name, item.StoreID, item.ID)
	return nil
}

func (a *App) deleteItem(ctx context.Context, fs *flag.FlagSet, args []string) error {
	storeID := fs.Int64("store", 0, "store id")
	itemID := fs.Int64("id", 0, "item id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *storeID <= 0 || *itemID <= 0 {
		return fmt.Errorf("%w: -store and -id are required", ErrMissingArgument)
	}

	if err := a.adapter.DeleteItem(ctx, *storeID, *itemID); err != nil {
		return err
	}

	a.success("Successfully deleted the item from store with id %d", *storeID)
	return nil
}
