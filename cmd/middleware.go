package main

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"
	"time"
)

func secureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Frame-Options", "deny")
		next.ServeHTTP(w, r)
	})
}

func makeResponseJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func (app *application) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.infoLog.Printf("%s - %s %s %s", r.RemoteAddr, r.Proto, r.Method, r.URL.RequestURI())
		next.ServeHTTP(w, r)
	})
}

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				app.serverError(w, fmt.Errorf("%s", err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (app *application) serverError(w http.ResponseWriter, err error) {
	trace := fmt.Sprintf("%s\n%s", err.Error(), debug.Stack())
	app.errorLog.Output(2, trace)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// requireAuth validates the bearer access token and stashes the resolved
// identity on the request context. When the access token is expired a valid
// Refresh-Token header lets the request proceed with a reissued token in
// the New-Access-Token response header.
func (app *application) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accessToken := bearerToken(r)
		if accessToken == "" {
			http.Error(w, "Authorization header is missing", http.StatusUnauthorized)
			return
		}

		claims, err := app.tokenManager.ParseAccessToken(accessToken)
		if err == nil {
			next.ServeHTTP(w, r.WithContext(contextWithIdentity(r.Context(), int(claims.UserID), claims.Role)))
			return
		}

		refreshToken := r.Header.Get("Refresh-Token")
		if refreshToken == "" {
			http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
			return
		}

		session, err := app.userRepo.GetSessionByToken(r.Context(), refreshToken)
		if err != nil || session.ExpiresAt.Before(time.Now()) {
			http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
			return
		}

		newAccessToken, err := app.tokenManager.NewAccessToken(session.UserID, session.Role)
		if err != nil {
			app.serverError(w, err)
			return
		}
		w.Header().Set("New-Access-Token", newAccessToken)

		next.ServeHTTP(w, r.WithContext(contextWithIdentity(r.Context(), session.UserID, session.Role)))
	})
}

// optionalAuth resolves the identity when a valid token is present and
// passes the request through as anonymous otherwise.
func (app *application) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accessToken := bearerToken(r)
		if accessToken != "" {
			if claims, err := app.tokenManager.ParseAccessToken(accessToken); err == nil {
				r = r.WithContext(contextWithIdentity(r.Context(), int(claims.UserID), claims.Role))
			}
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

func contextWithIdentity(ctx context.Context, userID int, role string) context.Context {
	ctx = context.WithValue(ctx, "user_id", userID)
	return context.WithValue(ctx, "role", role)
}
