package cmd

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	"github.com/Dooooug/QuimiDocs-Deploy/internal/api"
	"github.com/Dooooug/QuimiDocs-Deploy/internal/config"
	"github.com/Dooooug/QuimiDocs-Deploy/internal/domain"
	"github.com/Dooooug/QuimiDocs-Deploy/internal/errors"
	"github.com/Dooooug/QuimiDocs-Deploy/internal/log"
	"github.com/Dooooug/QuimiDocs-Deploy/internal/rbac"
	"github.com/Dooooug/QuimiDocs-Deploy/internal/session"
	"github.com/Dooooug/QuimiDocs-Deploy/internal/tui"
)

// app holds the shared wiring for a single command run: the config,
// the session store and the API client, built once on first use.
type app struct {
	cfg     *config.Config
	store   *session.Store
	client  *api.Client
	styles  tui.Styles
	confirm func(what string) (bool, error)
}

var (
	appOnce   sync.Once
	appShared *app
	appErr    error
)

// getApp builds (once) the store and client from the config and the
// persisted session, applying root-level flag overrides.
func getApp(cmd *cobra.Command) (*app, error) {
	appOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			appErr = err
			return
		}
		if v, _ := cmd.Root().PersistentFlags().GetString("api-url"); v != "" {
			cfg.APIURL = v
		}
		if v, _ := cmd.Root().PersistentFlags().GetString("log-level"); v != "" {
			cfg.LogLevel = v
		}

		logCfg := log.DefaultConfig()
		if cfg.LogLevel != "" {
			logCfg.Level = log.ParseLevel(cfg.LogLevel)
		}
		log.SetDefaultLogger(log.New(logCfg))

		appShared = newApp(cfg)
	})
	return appShared, appErr
}

// newApp wires the store and client together. A session that failed to
// rehydrate has already been cleared from disk; the console simply
// starts logged out.
func newApp(cfg *config.Config) *app {
	store := session.NewStore(cfg.StateDir())
	if err := store.Initialize(); err != nil {
		log.DefaultLogger().WithError(err).Warn("stored session discarded")
	}

	client := api.NewClient(cfg.APIURL)
	if token := store.Token(); token != "" {
		client.SetToken(token)
	}
	store.Subscribe(func(sess *session.Session) {
		if sess == nil {
			client.SetToken("")
			return
		}
		client.SetToken(sess.Token)
	})

	return &app{
		cfg:     cfg,
		store:   store,
		client:  client,
		styles:  tui.DefaultStyles(),
		confirm: tui.ConfirmDeletion,
	}
}

// requireSession is the route guard: commands needing a signed-in user
// call it first and fail with an auth error when there is none.
func (a *app) requireSession() (*session.Session, error) {
	sess := a.store.Current()
	if rbac.Decide(sess) == rbac.RedirectLogin {
		return nil, errors.NewNotLoggedInError()
	}
	return sess, nil
}

// requireRole is the role guard: it needs a session and the session's
// role on the allow-list.
func (a *app) requireRole(action string, allowed ...domain.Role) (*session.Session, error) {
	sess := a.store.Current()
	switch rbac.Decide(sess, allowed...) {
	case rbac.Allow:
		return sess, nil
	case rbac.RedirectLogin:
		return nil, errors.NewNotLoggedInError()
	default:
		log.DefaultLogger().Warn("access denied",
			"action", action,
			"role", string(sess.User.Role))
		return nil, errors.NewRoleDeniedError(action)
	}
}

// confirmDelete prompts for consent (unless skip is set) and runs del
// only when the user accepts. It reports whether the deletion ran.
func (a *app) confirmDelete(skip bool, what string, del func() error) (bool, error) {
	if !skip {
		ok, err := a.confirm(what)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	if err := del(); err != nil {
		return false, err
	}
	return true, nil
}

// printSuccess writes a green confirmation line.
func (a *app) printSuccess(format string, args ...any) {
	fmt.Println(a.styles.Success.Render("✓ " + fmt.Sprintf(format, args...)))
}

// printNotice writes a muted informational line.
func (a *app) printNotice(format string, args ...any) {
	fmt.Println(a.styles.Muted.Render(fmt.Sprintf(format, args...)))
}
