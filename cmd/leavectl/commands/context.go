package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/Vijaykarthik1/tnstc-leave/internal/config"
	"github.com/Vijaykarthik1/tnstc-leave/internal/pkg/leaveapi"
	"github.com/Vijaykarthik1/tnstc-leave/internal/portal/guard"
	"github.com/Vijaykarthik1/tnstc-leave/internal/portal/session"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg    *config.ClientConfig
	Store  *session.Store
	API    *leaveapi.Client
	Logger *zap.Logger
	Ctx    context.Context
	In     io.Reader
	Out    io.Writer
}

var (
	errSignedOut    = errors.New("not signed in, run: leavectl login")
	errUnauthorized = errors.New("your role cannot open this view")
)

// open loads the session and checks it against the roles of view.
func (app *AppContext) open(view guard.View) (session.Session, error) {
	sess, ok := app.Store.Load()
	decision := guard.Open(view, sess, ok)
	switch decision.Redirect {
	case "":
		app.Logger.Debug("view opened", zap.String("view", string(view)), zap.String("user_id", sess.User.ID))
		return sess, nil
	case guard.ViewLogin:
		return session.Session{}, errSignedOut
	default:
		app.Logger.Warn("view refused", zap.String("view", string(view)), zap.String("role", string(sess.User.Role)))
		return session.Session{}, fmt.Errorf("%w (%s)", errUnauthorized, view)
	}
}

func (app *AppContext) printf(format string, args ...any) {
	fmt.Fprintf(app.Out, format, args...)
}
