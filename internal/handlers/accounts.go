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

// AccountsHandler — HTTP API сервиса accounts.
type AccountsHandler struct {
	Accounts  *service.AccountsService
	Customers *service.CustomerService
	Logger    *zap.Logger
}

func NewAccountsHandler(accounts *service.AccountsService, customers *service.CustomerService, logger *zap.Logger) *AccountsHandler {
	return &AccountsHandler{Accounts: accounts, Customers: customers, Logger: logger}
}

// Register вешает маршруты на /api
func (h *AccountsHandler) Register(r chi.Router) {
	r.Post("/create", h.CreateAccount)
	r.Get("/fetch", h.FetchAccount)
	r.Put("/update", h.UpdateAccount)
	r.Delete("/delete", h.DeleteAccount)
	r.Get("/fetchCustomerDetails", h.FetchCustomerDetails)
}

func (h *AccountsHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var dto model.CustomerDto
	if err := decodeBody(r, validation.CustomerSchema, &dto); err != nil {
		writeError(w, r, h.Logger, err)
		return
	}

	if err := h.Accounts.CreateAccount(r.Context(), dto); err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	writeStatus(w, http.StatusCreated, status201, "Account created successfully")
}

func (h *AccountsHandler) FetchAccount(w http.ResponseWriter, r *http.Request) {
	mobileNumber, err := mobileParam(r)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}

	dto, err := h.Accounts.FetchAccount(r.Context(), mobileNumber)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

func (h *AccountsHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	var dto model.CustomerDto
	if err := decodeBody(r, validation.CustomerSchema, &dto); err != nil {
		writeError(w, r, h.Logger, err)
		return
	}

	updated, err := h.Accounts.UpdateAccount(r.Context(), dto)
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

func (h *AccountsHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	mobileNumber, err := mobileParam(r)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}

	deleted, err := h.Accounts.DeleteAccount(r.Context(), mobileNumber)
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

// FetchCustomerDetails отдаёт клиента со счётом и, если получилось, с кредитом и картой.
func (h *AccountsHandler) FetchCustomerDetails(w http.ResponseWriter, r *http.Request) {
	correlationID := correlation.FromContext(r.Context())

	mobileNumber, err := mobileParam(r)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	h.Logger.Debug("fetchCustomerDetails started", zap.String("correlation_id", correlationID))

	details, err := h.Customers.FetchCustomerDetails(r.Context(), correlationID, mobileNumber)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}

	h.Logger.Debug("fetchCustomerDetails completed",
		zap.String("correlation_id", correlationID),
		zap.Bool("loans", details.Loans != nil),
		zap.Bool("cards", details.Cards != nil))
	writeJSON(w, http.StatusOK, details)
}
