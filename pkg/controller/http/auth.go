package http

import (
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/riskdesk/riskdesk/pkg/domain/model/auth"
	"github.com/riskdesk/riskdesk/pkg/domain/types"
)

type loginRequest struct {
	UserID string `json:"userId"`
}

type userMeResponse struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Email   string       `json:"email"`
	Role    string       `json:"role"`
	Session *sessionInfo `json:"session,omitempty"`
}

type sessionInfo struct {
	ExpiresAt        time.Time `json:"expiresAt"`
	RemainingMinutes int       `json:"remainingMinutes"`
}

// authLoginHandler issues a session for a known user and sets the
// session cookies
func authLoginHandler(authUC AuthUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := decodeJSON(r, &req); err != nil {
			handleBadRequest(r.Context(), w, err)
			return
		}
		if req.UserID == "" {
			handleBadRequest(r.Context(), w, goerr.New("userId is required"))
			return
		}

		token, err := authUC.Login(r.Context(), types.UserID(req.UserID))
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}

		setSessionCookies(w, r, token)
		writeJSON(r.Context(), w, http.StatusOK, token)
	}
}

// authLogoutHandler handles user logout
func authLogoutHandler(authUC AuthUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Get token ID from cookie
		tokenIDCookie, err := r.Cookie("token_id")
		if err == nil {
			tokenID := auth.TokenID(tokenIDCookie.Value)
			if err := authUC.Logout(r.Context(), tokenID); err != nil {
				handleError(r.Context(), w, goerr.Wrap(err, "failed to logout"))
				return
			}
		}

		clearSessionCookies(w, r)
		writeJSON(r.Context(), w, http.StatusOK, successResponse{Success: true})
	}
}

// authMeHandler returns current user information
func authMeHandler(authUC AuthUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var session *sessionInfo
		if !authUC.IsNoAuthn() {
			tokenIDCookie, err := r.Cookie("token_id")
			if err != nil {
				writeJSON(ctx, w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
				return
			}
			tokenSecretCookie, err := r.Cookie("token_secret")
			if err != nil {
				writeJSON(ctx, w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
				return
			}

			token, err := authUC.ValidateToken(ctx,
				auth.TokenID(tokenIDCookie.Value),
				auth.TokenSecret(tokenSecretCookie.Value))
			if err != nil {
				handleError(ctx, w, err)
				return
			}
			ctx = auth.ContextWithToken(ctx, token)
			session = &sessionInfo{
				ExpiresAt:        token.ExpiresAt,
				RemainingMinutes: int(token.Remaining(time.Now()).Minutes()),
			}
		}

		user, err := authUC.CurrentUser(ctx)
		if err != nil {
			handleError(ctx, w, err)
			return
		}

		writeJSON(ctx, w, http.StatusOK, userMeResponse{
			ID:      user.ID.String(),
			Name:    user.Name,
			Email:   user.Email,
			Role:    user.Role.String(),
			Session: session,
		})
	}
}

func setSessionCookies(w http.ResponseWriter, r *http.Request, token *auth.Token) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token_id",
		Value:    token.ID.String(),
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
		Expires:  token.ExpiresAt,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     "token_secret",
		Value:    token.Secret.String(),
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
		Expires:  token.ExpiresAt,
	})
}

func clearSessionCookies(w http.ResponseWriter, r *http.Request) {
	for _, name := range []string{"token_id", "token_secret"} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			Secure:   r.TLS != nil,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   -1,
		})
	}
}
