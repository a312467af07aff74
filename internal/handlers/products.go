package handlers

import (
	"net/http"

	"github.com/Totarae/EazyBank/internal/correlation"
	"github.com/Totarae/EazyBank/internal/model"
	"github.com/Totarae/EazyBank/internal/service"
	"github.com/Totarae/EazyBank/internal/validation"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// LoansHandler — HTTP API сервиса loans.
type LoansHandler struct {
	Loans  *service.LoansService
	Logger *zap.Logger
}

func NewLoansHandler(loans *service.LoansService, logger *zap.Logger) *LoansHandler {
	return &LoansHandler{Loans: loans, Logger: logger}
}

func (h *LoansHandler) Register(r chi.Router) {
	r.Post("/create", h.CreateLoan)
	r.Get("/fetch", h.FetchLoan)
	r.Put("/update", h.UpdateLoan)
	r.Delete("/delete", h.DeleteLoan)
}

func (h *LoansHandler) CreateLoan(w http.ResponseWriter, r *http.Request) {
	mobileNumber, err := mobileParam(r)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	if err := h.Loans.CreateLoan(r.Context(), mobileNumber); err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	writeStatus(w, http.StatusCreated, status201, "Loan created successfully")
}

func (h *LoansHandler) FetchLoan(w http.ResponseWriter, r *http.Request) {
	mobileNumber, err := mobileParam(r)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}

	loan, err := h.Loans.FetchLoan(r.Context(), mobileNumber)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	h.Logger.Info("Fetching Loan Details", zap.String("correlation_id", correlation.FromContext(r.Context())))
	writeJSON(w, http.StatusOK, loan)
}

func (h *LoansHandler) UpdateLoan(w http.ResponseWriter, r *http.Request) {
	var dto model.Loan
	if err := decodeBody(r, validation.LoanSchema, &dto); err != nil {
		writeError(w, r, h.Logger, err)
		return
	}

	updated, err := h.Loans.UpdateLoan(r.Context(), dto)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	if !updated {
		writeStatus(w, http.StatusExpectationFailed, status417, message417Update)
		return
	}
	writeStatus(w, http.StatusOK, status200, message200)
}

func (h *LoansHandler) DeleteLoan(w http.ResponseWriter, r *http.Request) {
	mobileNumber, err := mobileParam(r)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}

	deleted, err := h.Loans.DeleteLoan(r.Context(), mobileNumber)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	if !deleted {
		writeStatus(w, http.StatusExpectationFailed, status417, message417Delete)
		return
	}
	writeStatus(w, http.StatusOK, status200, message200)
}

// CardsHandler — HTTP API сервиса cards.
type CardsHandler struct {
	Cards  *service.CardsService
	Logger *zap.Logger
}

func NewCardsHandler(cards *service.CardsService, logger *zap.Logger) *CardsHandler {
	return &CardsHandler{Cards: cards, Logger: logger}
}

func (h *CardsHandler) Register(r chi.Router) {
	r.Post("/create", h.CreateCard)
	r.Get("/fetch", h.FetchCard)
	r.Put("/update", h.UpdateCard)
	r.Delete("/delete", h.DeleteCard)
}

func (h *CardsHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	mobileNumber, err := mobileParam(r)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	if err := h.Cards.CreateCard(r.Context(), mobileNumber); err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	writeStatus(w, http.StatusCreated, status201, "Card created successfully")
}

func (h *CardsHandler) FetchCard(w http.ResponseWriter, r *http.Request) {
	mobileNumber, err := mobileParam(r)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}

	card, err := h.Cards.FetchCard(r.Context(), mobileNumber)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	h.Logger.Info("Fetching Card Details", zap.String("correlation_id", correlation.FromContext(r.Context())))
	writeJSON(w, http.StatusOK, card)
}

func (h *CardsHandler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	var dto model.Card
	if err := decodeBody(r, validation.CardSchema, &dto); err != nil {
		writeError(w, r, h.Logger, err)
		return
	}

	updated, err := h.Cards.UpdateCard(r.Context(), dto)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	if !updated {
		writeStatus(w, http.StatusExpectationFailed, status417, message417Update)
		return
	}
	writeStatus(w, http.StatusOK, status200, message200)
}

func (h *CardsHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	mobileNumber, err := mobileParam(r)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}

	deleted, err := h.Cards.DeleteCard(r.Context(), mobileNumber)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	if !deleted {
		writeStatus(w, http.StatusExpectationFailed, status417, message417Delete)
		return
	}
	writeStatus(w, http.StatusOK, status200, message200)
}
