package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/riskdesk/riskdesk/pkg/domain/model"
	"github.com/riskdesk/riskdesk/pkg/domain/types"
	"github.com/riskdesk/riskdesk/pkg/usecase"
)

func listRisksHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := types.ProjectID(r.URL.Query().Get("project"))

		var (
			risks []*model.Risk
			err   error
		)
		if projectID != "" {
			risks, err = uc.Risk.ListRisksByProject(r.Context(), projectID)
		} else {
			risks, err = uc.Risk.ListRisks(r.Context())
		}
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		writeJSON(r.Context(), w, http.StatusOK, risks)
	}
}

func createRiskHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var risk model.Risk
		if err := decodeJSON(r, &risk); err != nil {
			handleBadRequest(r.Context(), w, err)
			return
		}

		created, err := uc.Risk.CreateRisk(r.Context(), &risk)
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		writeJSON(r.Context(), w, http.StatusCreated, created)
	}
}

func getRiskHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := types.RiskID(chi.URLParam(r, "riskID"))

		risk, err := uc.Risk.GetRisk(r.Context(), id)
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		writeJSON(r.Context(), w, http.StatusOK, risk)
	}
}

func updateRiskHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := types.RiskID(chi.URLParam(r, "riskID"))

		var patch model.RiskPatch
		if err := decodeJSON(r, &patch); err != nil {
			handleBadRequest(r.Context(), w, err)
			return
		}

		updated, err := uc.Risk.UpdateRisk(r.Context(), id, patch)
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		writeJSON(r.Context(), w, http.StatusOK, updated)
	}
}

func deleteRiskHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := types.RiskID(chi.URLParam(r, "riskID"))

		if err := uc.Risk.DeleteRisk(r.Context(), id); err != nil {
			handleError(r.Context(), w, err)
			return
		}
		writeJSON(r.Context(), w, http.StatusOK, successResponse{Success: true})
	}
}

type addCommentRequest struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

func addCommentHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := types.RiskID(chi.URLParam(r, "riskID"))

		var req addCommentRequest
		if err := decodeJSON(r, &req); err != nil {
			handleBadRequest(r.Context(), w, err)
			return
		}
		if req.Text == "" {
			handleBadRequest(r.Context(), w, goerr.New("comment text is required"))
			return
		}

		updated, err := uc.Risk.AddComment(r.Context(), id, req.Text, req.Author)
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		writeJSON(r.Context(), w, http.StatusCreated, updated)
	}
}
