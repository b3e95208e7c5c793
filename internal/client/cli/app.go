// Package cli implements the interactive PasteKeeper client: a small
// command loop over the HTTP API with no-echo password prompts.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/pastekeeper/internal/client/client"
	"github.com/dmitrijs2005/pastekeeper/internal/client/config"
)

type App struct {
	config *config.Config
	client client.Client
	reader *bufio.Reader
	out    io.Writer

	// session state after a successful login
	token    string
	username string
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		client: client.NewHTTPClient(c.ServerURL),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

const menu = `Commands:
  register  create an account
  login     log in and keep the token for this session
  passwd    change password (login first)
  upload    paste text and print its URL
  get       fetch a paste by id
  delete    delete a paste by id
  help      show this message
  quit      exit
`

func (a *App) Run(ctx context.Context) {
	fmt.Fprintf(a.out, "PasteKeeper client, server %s\n%s", a.config.ServerURL, menu)

	for {
		cmd, err := GetSimpleText(a.reader, "Enter command", a.out)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			fmt.Fprintln(a.out, err.Error())
			return
		}

		switch strings.ToLower(cmd) {
		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "passwd":
			a.ChangePassword(ctx)
		case "upload":
			a.Upload(ctx)
		case "get":
			a.Get(ctx)
		case "delete":
			a.Delete(ctx)
		case "help":
			fmt.Fprint(a.out, menu)
		case "quit", "exit":
			return
		case "":
		default:
			fmt.Fprintf(a.out, "unknown command %q\n", cmd)
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.token != ""
}

// fail prints a command failure without aborting the session.
func (a *App) fail(err error) {
	fmt.Fprintln(a.out, "Error:", err.Error())
}
