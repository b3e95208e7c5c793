package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) Register(ctx context.Context) {
	username, err := GetSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		a.fail(err)
		return
	}

	password, err := GetPassword(a.out, "Enter password")
	if err != nil {
		a.fail(err)
		return
	}

	confirm, err := GetPassword(a.out, "Confirm password")
	if err != nil {
		a.fail(err)
		return
	}

	if err := a.client.Register(ctx, username, password, confirm); err != nil {
		a.fail(err)
		return
	}

	fmt.Fprintln(a.out, "Success!")
}

func (a *App) Login(ctx context.Context) {
	username, err := GetSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		a.fail(err)
		return
	}

	password, err := GetPassword(a.out, "Enter password")
	if err != nil {
		a.fail(err)
		return
	}

	token, err := a.client.Login(ctx, username, password)
	if err != nil {
		a.fail(err)
		return
	}

	a.token = token
	a.username = username
	fmt.Fprintf(a.out, "Logged in as %s\n", username)
}

func (a *App) ChangePassword(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please login first")
		return
	}

	oldPassword, err := GetPassword(a.out, "Enter current password")
	if err != nil {
		a.fail(err)
		return
	}

	newPassword, err := GetPassword(a.out, "Enter new password")
	if err != nil {
		a.fail(err)
		return
	}

	if err := a.client.ChangePassword(ctx, a.token, oldPassword, newPassword); err != nil {
		a.fail(err)
		return
	}

	fmt.Fprintln(a.out, "Password changed")
}

func (a *App) Upload(ctx context.Context) {
	content, err := GetMultiline(a.reader, "Enter paste content", a.out)
	if err != nil {
		a.fail(err)
		return
	}

	url, err := a.client.Upload(ctx, strings.NewReader(content), a.token)
	if err != nil {
		a.fail(err)
		return
	}

	fmt.Fprintln(a.out, url)
}

func (a *App) Get(ctx context.Context) {
	id, err := GetSimpleText(a.reader, "Enter paste id", a.out)
	if err != nil {
		a.fail(err)
		return
	}

	owner, err := GetSimpleText(a.reader, "Enter owner (empty for anonymous)", a.out)
	if err != nil {
		a.fail(err)
		return
	}

	content, err := a.client.Get(ctx, id, owner)
	if err != nil {
		a.fail(err)
		return
	}

	fmt.Fprintln(a.out, string(content))
}

func (a *App) Delete(ctx context.Context) {
	id, err := GetSimpleText(a.reader, "Enter paste id", a.out)
	if err != nil {
		a.fail(err)
		return
	}

	// Logged-in users delete from their own namespace; everyone else from
	// the anonymous one.
	if err := a.client.Delete(ctx, id, a.isLoggedIn(), a.token); err != nil {
		a.fail(err)
		return
	}

	fmt.Fprintln(a.out, "Deleted")
}
