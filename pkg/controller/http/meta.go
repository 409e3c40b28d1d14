package http

import (
	"net/http"

	"github.com/riskdesk/riskdesk/pkg/domain/model/config"
	"github.com/riskdesk/riskdesk/pkg/service/scoring"
	"github.com/riskdesk/riskdesk/pkg/usecase"
)

type metaResponse struct {
	Categories       *config.Categories `json:"categories"`
	ImpactScale      []config.ScaleStep `json:"impactScale"`
	ProbabilityScale []config.ScaleStep `json:"probabilityScale"`
	Levels           []scoring.Level    `json:"levels"`
}

// metaHandler serves the static vocabulary clients need to render
// forms: category lists, scale labels and level bands.
func metaHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(r.Context(), w, http.StatusOK, metaResponse{
			Categories:       uc.Categories(),
			ImpactScale:      config.ImpactScale(),
			ProbabilityScale: config.ProbabilityScale(),
			Levels: []scoring.Level{
				scoring.LevelLow,
				scoring.LevelMedium,
				scoring.LevelHigh,
				scoring.LevelCritical,
			},
		})
	}
}
