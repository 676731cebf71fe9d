package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	h "devevents/internal/delivery/http/helpers"
	"devevents/internal/domain"
)

type contextKey string

const organizerKey contextKey = "organizer"

// SetOrganizer returns a context carrying the authenticated organizer subject.
func SetOrganizer(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, organizerKey, subject)
}

// OrganizerFromContext returns the organizer subject, if the request was authenticated.
func OrganizerFromContext(ctx context.Context) (string, bool) {
	sub, ok := ctx.Value(organizerKey).(string)
	return sub, ok
}

// RequireOrganizer guards a handler with organizer Bearer tokens. Rejected requests
// get a 401 and never reach next. A nil verifier leaves the handler unguarded.
func RequireOrganizer(verifier domain.TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		if verifier == nil {
			return next
		}
		return func(w http.ResponseWriter, r *http.Request) {
			token, problem := bearerToken(r.Header.Get("Authorization"))
			if problem != "" {
				unauthorized(w, problem)
				return
			}
			subject, err := verifier.Verify(token)
			if err != nil {
				logger.WarnContext(r.Context(), "organizer token rejected", "path", r.URL.Path, "err", err)
				unauthorized(w, "invalid or expired token")
				return
			}
			next(w, r.WithContext(SetOrganizer(r.Context(), subject)))
		}
	}
}

// bearerToken extracts the credentials of a Bearer Authorization header. The
// scheme is matched case-insensitively. problem is non-empty when no usable
// token is present.
func bearerToken(header string) (token, problem string) {
	if header == "" {
		return "", "missing authorization header"
	}
	scheme, rest, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", "invalid authorization format"
	}
	if token = strings.TrimSpace(rest); token == "" {
		return "", "missing token"
	}
	return token, ""
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="devevents"`)
	h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, message)
}
