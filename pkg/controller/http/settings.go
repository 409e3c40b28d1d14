package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/riskdesk/riskdesk/pkg/domain/model"
	"github.com/riskdesk/riskdesk/pkg/domain/types"
	"github.com/riskdesk/riskdesk/pkg/usecase"
	"github.com/riskdesk/riskdesk/pkg/utils/errutil"
)

func getSettingsHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := uc.Settings.GetSettings(r.Context())
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		writeJSON(r.Context(), w, http.StatusOK, settings)
	}
}

func updateSettingsHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch model.SettingsPatch
		if err := decodeJSON(r, &patch); err != nil {
			handleBadRequest(r.Context(), w, err)
			return
		}

		settings, err := uc.Settings.UpdateSettings(r.Context(), patch)
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		writeJSON(r.Context(), w, http.StatusOK, settings)
	}
}

func listUsersHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := uc.User.ListUsers(r.Context())
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		writeJSON(r.Context(), w, http.StatusOK, users)
	}
}

func getUserHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := types.UserID(chi.URLParam(r, "userID"))

		user, err := uc.User.GetUser(r.Context(), id)
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		writeJSON(r.Context(), w, http.StatusOK, user)
	}
}

func exportHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filename := fmt.Sprintf("risk-register-export-%s.json", time.Now().UTC().Format("2006-01-02"))

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

		if err := uc.Export.Write(r.Context(), w); err != nil {
			// Headers are already committed; log and abandon the response
			errutil.Handle(r.Context(), err, "failed to write export")
		}
	}
}
