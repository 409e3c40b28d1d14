package usecase

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/riskdesk/riskdesk/pkg/domain/interfaces"
	"github.com/riskdesk/riskdesk/pkg/domain/model"
)

// ExportUseCase serializes the full register to a JSON document. There
// is no import counterpart.
type ExportUseCase struct {
	repo interfaces.Repository
}

func NewExportUseCase(repo interfaces.Repository) *ExportUseCase {
	return &ExportUseCase{repo: repo}
}

// Document assembles the export document from the current snapshot
func (uc *ExportUseCase) Document(ctx context.Context) (*model.ExportDocument, error) {
	projects, err := uc.repo.Project().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list projects for export")
	}
	risks, err := uc.repo.Risk().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list risks for export")
	}

	return &model.ExportDocument{
		Projects:   projects,
		Risks:      risks,
		ExportedAt: time.Now().UTC(),
	}, nil
}

// Write streams the export document as indented JSON
func (uc *ExportUseCase) Write(ctx context.Context, w io.Writer) error {
	doc, err := uc.Document(ctx)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return goerr.Wrap(err, "failed to encode export document")
	}
	return nil
}
