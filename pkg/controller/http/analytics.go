package http

import (
	"net/http"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/riskdesk/riskdesk/pkg/domain/types"
	"github.com/riskdesk/riskdesk/pkg/usecase"
)

// projectFilter extracts the optional ?project= query parameter. An
// empty value means the analytics cover all projects.
func projectFilter(r *http.Request) types.ProjectID {
	return types.ProjectID(r.URL.Query().Get("project"))
}

func distributionHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dist, err := uc.Analytics.Distribution(r.Context(), projectFilter(r))
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		writeJSON(r.Context(), w, http.StatusOK, dist)
	}
}

func topRisksHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := usecase.DefaultTopRisksLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 {
				handleBadRequest(r.Context(), w, goerr.New("limit must be a positive integer", goerr.V("limit", raw)))
				return
			}
			limit = n
		}

		risks, err := uc.Analytics.TopRisks(r.Context(), projectFilter(r), limit)
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		writeJSON(r.Context(), w, http.StatusOK, risks)
	}
}

func byCategoryHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		breakdown, err := uc.Analytics.ByCategory(r.Context(), projectFilter(r))
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		writeJSON(r.Context(), w, http.StatusOK, breakdown)
	}
}

func byTypeHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		breakdown, err := uc.Analytics.ByType(r.Context(), projectFilter(r))
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		writeJSON(r.Context(), w, http.StatusOK, breakdown)
	}
}

func mitigationProgressHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		progress, err := uc.Analytics.MitigationProgress(r.Context(), projectFilter(r))
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		writeJSON(r.Context(), w, http.StatusOK, progress)
	}
}

func trendsHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days := usecase.DefaultTrendDays
		if raw := r.URL.Query().Get("days"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 {
				handleBadRequest(r.Context(), w, goerr.New("days must be a positive integer", goerr.V("days", raw)))
				return
			}
			days = n
		}

		points, err := uc.Analytics.Trends(r.Context(), projectFilter(r), days)
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		writeJSON(r.Context(), w, http.StatusOK, points)
	}
}

func heatmapHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		heatmap, err := uc.Analytics.Heatmap(r.Context(), projectFilter(r))
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		writeJSON(r.Context(), w, http.StatusOK, heatmap)
	}
}

func insightsHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		insights, err := uc.Analytics.Insights(r.Context(), projectFilter(r))
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		writeJSON(r.Context(), w, http.StatusOK, insights)
	}
}
