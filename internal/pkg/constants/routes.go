package constants

import (
	"net/url"
	"strings"
)

const (
	PublicRoute = "/"

	LoginRoute    = "/auth/login/"
	LogoutRoute   = "/auth/logout/"
	SignupRoute   = "/auth/signup/"
	ProviderRoute = "/auth/:provider"

	HealthRoute  = "/health"
	MetricsRoute = "/metrics"
	MonitorRoute = "/monitor"

	NewsDetailRoute    = "/news/:id/"
	CommentEditRoute   = "/edit_comment/:id/"
	CommentDeleteRoute = "/delete_comment/:id/"

	NotesListRoute   = "/notes/"
	NoteAddRoute     = "/add/"
	NoteDoneRoute    = "/done/"
	NoteDetailRoute  = "/note/:slug/"
	NoteEditRoute    = "/edit/:slug/"
	NoteDeleteRoute  = "/delete/:slug/"
	NextParam        = "next"
	CommentsFragment = "#comments"
)

// LoginRedirect builds the login URL carrying next. Slashes in next stay
// readable: /auth/login/?next=/news/1/.
func LoginRedirect(loginPath, next string) string {
	if next == "" {
		return loginPath
	}
	return loginPath + "?" + NextParam + "=" + strings.ReplaceAll(url.QueryEscape(next), "%2F", "/")
}

// SafeNext returns next when it points into this site, otherwise fallback.
func SafeNext(next, fallback string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return fallback
	}
	return next
}
