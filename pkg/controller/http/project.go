package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/riskdesk/riskdesk/pkg/domain/model"
	"github.com/riskdesk/riskdesk/pkg/domain/types"
	"github.com/riskdesk/riskdesk/pkg/usecase"
)

func listProjectsHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := uc.Project.ListProjects(r.Context())
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		writeJSON(r.Context(), w, http.StatusOK, projects)
	}
}

func createProjectHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var project model.Project
		if err := decodeJSON(r, &project); err != nil {
			handleBadRequest(r.Context(), w, err)
			return
		}

		created, err := uc.Project.CreateProject(r.Context(), &project)
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		writeJSON(r.Context(), w, http.StatusCreated, created)
	}
}

func getProjectHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := types.ProjectID(chi.URLParam(r, "projectID"))

		project, err := uc.Project.GetProject(r.Context(), id)
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		writeJSON(r.Context(), w, http.StatusOK, project)
	}
}

func updateProjectHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := types.ProjectID(chi.URLParam(r, "projectID"))

		var patch model.ProjectPatch
		if err := decodeJSON(r, &patch); err != nil {
			handleBadRequest(r.Context(), w, err)
			return
		}

		updated, err := uc.Project.UpdateProject(r.Context(), id, patch)
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		writeJSON(r.Context(), w, http.StatusOK, updated)
	}
}

func deleteProjectHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := types.ProjectID(chi.URLParam(r, "projectID"))

		if err := uc.Project.DeleteProject(r.Context(), id); err != nil {
			handleError(r.Context(), w, err)
			return
		}
		writeJSON(r.Context(), w, http.StatusOK, successResponse{Success: true})
	}
}

func listProjectRisksHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := types.ProjectID(chi.URLParam(r, "projectID"))

		risks, err := uc.Risk.ListRisksByProject(r.Context(), id)
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		writeJSON(r.Context(), w, http.StatusOK, risks)
	}
}
