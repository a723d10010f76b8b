// Package activity records user-visible actions (logins, entity mutations)
// as structured log events. It is injected into services and handlers so
// tests can swap in a no-op.
package activity

import (
	"io"

	"github.com/rs/zerolog"
)

type Logger interface {
	LogLogin(username string, success bool, ip, detail string)
	LogUserAction(username, action, detail, ip string)
	LogArticleAction(username, action string, articleID uint, detail string)
	LogCommentAction(username, action string, commentID uint, detail string)
	LogError(message string, err error, username string)
}

type zerologLogger struct {
	log zerolog.Logger
}

// New builds a Logger writing structured events to w.
func New(w io.Writer) Logger {
	return &zerologLogger{
		log: zerolog.New(w).With().Timestamp().Str("component", "activity").Logger(),
	}
}

// Nop discards every event; used in tests.
func Nop() Logger {
	return &zerologLogger{log: zerolog.Nop()}
}

func (l *zerologLogger) LogLogin(username string, success bool, ip, detail string) {
	l.log.Info().
		Str("event", "login").
		Str("username", username).
		Bool("success", success).
		Str("ip", ip).
		Str("detail", detail).
		Send()
}

func (l *zerologLogger) LogUserAction(username, action, detail, ip string) {
	l.log.Info().
		Str("event", "user_action").
		Str("username", username).
		Str("action", action).
		Str("detail", detail).
		Str("ip", ip).
		Send()
}

func (l *zerologLogger) LogArticleAction(username, action string, articleID uint, detail string) {
	l.log.Info().
		Str("event", "article_action").
		Str("username", username).
		Str("action", action).
		Uint("article_id", articleID).
		Str("detail", detail).
		Send()
}

func (l *zerologLogger) LogCommentAction(username, action string, commentID uint, detail string) {
	l.log.Info().
		Str("event", "comment_action").
		Str("username", username).
		Str("action", action).
		Uint("comment_id", commentID).
		Str("detail", detail).
		Send()
}

func (l *zerologLogger) LogError(message string, err error, username string) {
	l.log.Error().
		Str("event", "error").
		Err(err).
		Str("username", username).
		Msg(message)
}
