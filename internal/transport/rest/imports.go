package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/czytanka/backend/internal/domain"
	"github.com/czytanka/backend/internal/service/importer"
)

type importService interface {
	Propose(ctx context.Context, input importer.ProposeInput) (*importer.Proposal, error)
	Commit(ctx context.Context, cards []domain.ProposedCard) (*importer.CommitResult, error)
}

// ImportHandler serves the two-phase bulk import endpoints.
type ImportHandler struct {
	imports importService
	log     *slog.Logger
}

func NewImportHandler(log *slog.Logger, imports importService) *ImportHandler {
	return &ImportHandler{imports: imports, log: log}
}

type proposeRequest struct {
	Mode  string `json:"mode"`
	Input string `json:"input"`
}

// ProposedCardPayload is the JSON shape of one proposed card. The same shape
// is returned by propose and accepted back by commit.
type ProposedCardPayload struct {
	Polish       string `json:"polish"`
	Russian      string `json:"russian"`
	BaseForm     string `json:"baseForm"`
	Example      string `json:"example,omitempty"`
	OriginalText string `json:"originalText,omitempty"`
}

// UnrecognizedPayload is the JSON shape of one unrecognized token in a
// proposal.
type UnrecognizedPayload struct {
	Text string `json:"text"`
	Note string `json:"note,omitempty"`
}

// ProposeResponse is the review-stage snapshot returned to the client.
type ProposeResponse struct {
	Cards        []ProposedCardPayload `json:"cards"`
	Duplicates   []string              `json:"duplicates"`
	Unrecognized []UnrecognizedPayload `json:"unrecognized"`
	Warnings     []string              `json:"warnings"`
}

// Propose handles POST /api/import/propose.
func (h *ImportHandler) Propose(w http.ResponseWriter, r *http.Request) {
	var req proposeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	proposal, err := h.imports.Propose(r.Context(), importer.ProposeInput{
		Mode:  importer.Mode(req.Mode),
		Input: req.Input,
	})
	if err != nil {
		logError(h.log, r, err)
		writeError(w, err)
		return
	}

	resp := ProposeResponse{
		Cards:        make([]ProposedCardPayload, len(proposal.Cards)),
		Duplicates:   proposal.Duplicates,
		Unrecognized: make([]UnrecognizedPayload, len(proposal.Unrecognized)),
		Warnings:     proposal.Warnings,
	}
	if resp.Duplicates == nil {
		resp.Duplicates = []string{}
	}
	if resp.Warnings == nil {
		resp.Warnings = []string{}
	}
	for i, c := range proposal.Cards {
		resp.Cards[i] = ProposedCardPayload{
			Polish:       c.Polish,
			Russian:      c.Russian,
			BaseForm:     c.BaseForm,
			Example:      c.Example,
			OriginalText: c.OriginalText,
		}
	}
	for i, u := range proposal.Unrecognized {
		resp.Unrecognized[i] = UnrecognizedPayload{Text: u.Text, Note: u.Note}
	}
	writeJSON(w, http.StatusOK, resp)
}

type commitRequest struct {
	Cards []ProposedCardPayload `json:"cards"`
}

// CommitResponse summarizes a finished commit.
type CommitResponse struct {
	Added        []CardResponse `json:"added"`
	SkippedCount int            `json:"skippedCount"`
}

// Commit handles POST /api/import/commit.
func (h *ImportHandler) Commit(w http.ResponseWriter, r *http.Request) {
	var req commitRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	selected := make([]domain.ProposedCard, len(req.Cards))
	for i, c := range req.Cards {
		selected[i] = domain.NewProposedCard(c.Polish, c.Russian, c.BaseForm, c.Example)
	}

	result, err := h.imports.Commit(r.Context(), selected)
	if err != nil {
		logError(h.log, r, err)
		writeError(w, err)
		return
	}

	resp := CommitResponse{
		Added:        toCardResponses(result.Added),
		SkippedCount: result.SkippedCount,
	}
	writeJSON(w, http.StatusOK, resp)
}
