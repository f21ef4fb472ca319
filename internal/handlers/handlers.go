package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	logger "github.com/sirupsen/logrus"

	"github.com/gastonduartem/MILAN/internal/auth"
	"github.com/gastonduartem/MILAN/internal/db"
	"github.com/gastonduartem/MILAN/internal/export"
	"github.com/gastonduartem/MILAN/internal/types"
	"github.com/gastonduartem/MILAN/internal/validate"
)

// OrderService is what the HTTP surface needs from the domain.
type OrderService interface {
	ListOrders(ctx context.Context) ([]types.Order, error)
	CreateOrder(ctx context.Context, input types.OrderInput) (types.Order, error)
	UpdateOrder(ctx context.Context, id int, input types.OrderInput) (types.Order, error)
	DeleteOrder(ctx context.Context, id int) error
}

type HandlerSet struct {
	secret               []byte
	cookieExpiresSeconds int
	admin                auth.Admin
	orders               OrderService
}

func NewHandlerSet(secret []byte, cookieExpiresSecs int, admin auth.Admin, orders OrderService) *HandlerSet {
	return &HandlerSet{
		secret:               secret,
		cookieExpiresSeconds: cookieExpiresSecs,
		admin:                admin,
		orders:               orders,
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		writeError(w, "Could not serialize result", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(response)
	if err != nil {
		logger.Error(err)
	}
}

func writeError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(map[string]string{"error": message})
	if err != nil {
		logger.Error(err)
	}
}

func writeOK(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// handleOrderErrors maps domain errors to responses. Infrastructure
// detail is logged, never returned to the caller.
func handleOrderErrors(err error, w http.ResponseWriter) {

	var validationErr *validate.OrderError
	if errors.As(err, &validationErr) {
		writeError(w, validationErr.Error(), http.StatusBadRequest)
		return
	}
	var numberTaken *db.NumberTakenError
	if errors.As(err, &numberTaken) {
		writeError(w, "That number is already taken", http.StatusConflict)
		return
	}
	var notFound *db.OrderNotFoundError
	if errors.As(err, &notFound) {
		writeError(w, "Not found", http.StatusNotFound)
		return
	}
	logger.Error(err)
	writeError(w, "Database error", http.StatusInternalServerError)
}

func parseOrderInput(req *http.Request) (types.OrderInput, error) {
	var input types.OrderInput
	err := json.NewDecoder(req.Body).Decode(&input)
	return input, err
}

func (h *HandlerSet) HandleGetOrders(w http.ResponseWriter, req *http.Request) {

	orders, err := h.orders.ListOrders(req.Context())
	if err != nil {
		logger.Error(err)
		writeError(w, "Database error", http.StatusInternalServerError)
		return
	}

	if orders == nil {
		orders = []types.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *HandlerSet) HandleCreateOrder(w http.ResponseWriter, req *http.Request) {

	input, err := parseOrderInput(req)
	if err != nil {
		writeError(w, "Could not parse body", http.StatusBadRequest)
		return
	}

	order, err := h.orders.CreateOrder(req.Context(), input)
	if err != nil {
		handleOrderErrors(err, w)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *HandlerSet) HandleUpdateOrder(w http.ResponseWriter, req *http.Request) {

	id, err := strconv.Atoi(chi.URLParam(req, "id"))
	if err != nil {
		writeError(w, "Not found", http.StatusNotFound)
		return
	}

	input, err := parseOrderInput(req)
	if err != nil {
		writeError(w, "Could not parse body", http.StatusBadRequest)
		return
	}

	order, err := h.orders.UpdateOrder(req.Context(), id, input)
	if err != nil {
		handleOrderErrors(err, w)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *HandlerSet) HandleDeleteOrder(w http.ResponseWriter, req *http.Request) {

	id, err := strconv.Atoi(chi.URLParam(req, "id"))
	if err != nil {
		writeError(w, "Not found", http.StatusNotFound)
		return
	}

	err = h.orders.DeleteOrder(req.Context(), id)
	if err != nil {
		handleOrderErrors(err, w)
		return
	}
	writeOK(w)
}

func (h *HandlerSet) HandleLogin(w http.ResponseWriter, req *http.Request) {

	var data struct {
		User string `json:"user"`
		Pass string `json:"pass"`
	}

	err := json.NewDecoder(req.Body).Decode(&data)
	if err != nil {
		writeError(w, "Could not parse body", http.StatusBadRequest)
		return
	}

	// one failure message for any mismatch, which field failed is not
	// revealed
	if !h.admin.Check(data.User, data.Pass) {
		writeError(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	err = auth.SetAdminCookie(w, h.secret, h.cookieExpiresSeconds)
	if err != nil {
		logger.Error(err)
		writeError(w, "Something went wrong", http.StatusInternalServerError)
		return
	}
	writeOK(w)
}

func (h *HandlerSet) HandleLogout(w http.ResponseWriter, req *http.Request) {
	auth.ClearAdminCookie(w)
	writeOK(w)
}

func (h *HandlerSet) HandleExportOrders(w http.ResponseWriter, req *http.Request) {

	orders, err := h.orders.ListOrders(req.Context())
	if err != nil {
		logger.Error(err)
		writeError(w, "Database error", http.StatusInternalServerError)
		return
	}

	workbook, err := export.Orders(orders)
	if err != nil {
		logger.Error(err)
		writeError(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="milan_pedidos.xlsx"`)

	_, err = workbook.WriteTo(w)
	if err != nil {
		logger.Error(err)
	}
}
