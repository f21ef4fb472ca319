package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/gastonduartem/MILAN/internal/auth"
	"github.com/gastonduartem/MILAN/internal/db"
	"github.com/gastonduartem/MILAN/internal/orders"
	"github.com/gastonduartem/MILAN/internal/orders/mocks"
	"github.com/gastonduartem/MILAN/internal/types"
)

func withURLParam(r *http.Request, key string, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func newHandlerSet(t *testing.T) (*HandlerSet, *mocks.Database) {
	t.Helper()

	database := mocks.NewDatabase(t)

	hash, err := auth.HashPassword("s3cret")
	assert.NoError(t, err)

	admin := auth.Admin{User: "gaston", PassHash: hash}

	return NewHandlerSet([]byte("secret"), 60, admin, orders.NewService(database)), database
}

func TestHandleCreateOrder(t *testing.T) {

	created := time.Date(2024, 6, 12, 15, 13, 29, 0, time.UTC)
	stored := types.Order{ID: 1, RealName: "Ana Diaz", Number: 10, BackText: "DIAZ", Size: types.SizeM, CreatedAt: created}

	testCases := []struct {
		name         string
		body         string
		storeErr     error
		expectStore  bool
		expectedCode int
		expectedBody string
	}{
		{name: "created", body: `{"real_name":"Ana Diaz","number":10,"back_text":"DIAZ","size":"m"}`,
			expectStore: true, expectedCode: http.StatusCreated,
			expectedBody: `{"id":1,"real_name":"Ana Diaz","number":10,"back_text":"DIAZ","size":"M","created_at":"2024-06-12T15:13:29Z"}`},
		{name: "unparseable body", body: "smth",
			expectedCode: http.StatusBadRequest, expectedBody: `{"error":"Could not parse body"}`},
		{name: "missing name", body: `{"number":10,"back_text":"DIAZ","size":"M"}`,
			expectedCode: http.StatusBadRequest, expectedBody: `{"error":"Name required"}`},
		{name: "bad number", body: `{"real_name":"Ana","number":"x","back_text":"DIAZ","size":"M"}`,
			expectedCode: http.StatusBadRequest, expectedBody: `{"error":"Invalid number (1-99)"}`},
		{name: "number out of range", body: `{"real_name":"Ana","number":100,"back_text":"DIAZ","size":"M"}`,
			expectedCode: http.StatusBadRequest, expectedBody: `{"error":"Invalid number (1-99)"}`},
		{name: "bad size", body: `{"real_name":"Ana","number":10,"back_text":"DIAZ","size":"M1"}`,
			expectedCode: http.StatusBadRequest, expectedBody: `{"error":"Invalid size"}`},
		{name: "number taken", body: `{"real_name":"Ana Diaz","number":10,"back_text":"DIAZ","size":"m"}`,
			storeErr: &db.NumberTakenError{Number: 10}, expectStore: true,
			expectedCode: http.StatusConflict, expectedBody: `{"error":"That number is already taken"}`},
		{name: "store down", body: `{"real_name":"Ana Diaz","number":10,"back_text":"DIAZ","size":"m"}`,
			storeErr: fmt.Errorf("connection refused"), expectStore: true,
			expectedCode: http.StatusInternalServerError, expectedBody: `{"error":"Database error"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, database := newHandlerSet(t)

			if tc.expectStore {
				if tc.storeErr != nil {
					database.EXPECT().InsertOrder(mock.Anything, mock.Anything).Return(types.Order{}, fmt.Errorf("%w", tc.storeErr)).Once()
				} else {
					database.EXPECT().InsertOrder(mock.Anything, mock.Anything).Return(stored, nil).Once()
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(tc.body))
			w := httptest.NewRecorder()

			h.HandleCreateOrder(w, req)

			assert.Equal(t, tc.expectedCode, w.Code)
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
			if !tc.expectStore {
				database.AssertNotCalled(t, "InsertOrder", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestHandleGetOrders(t *testing.T) {

	t.Run("empty list serializes as empty array", func(t *testing.T) {
		h, database := newHandlerSet(t)
		database.EXPECT().GetOrders(mock.Anything).Return(nil, nil).Once()

		w := httptest.NewRecorder()
		h.HandleGetOrders(w, httptest.NewRequest(http.MethodGet, "/api/orders", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("store outage reported generically", func(t *testing.T) {
		h, database := newHandlerSet(t)
		database.EXPECT().GetOrders(mock.Anything).Return(nil, fmt.Errorf("dial tcp: refused")).Once()

		w := httptest.NewRecorder()
		h.HandleGetOrders(w, httptest.NewRequest(http.MethodGet, "/api/orders", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Database error"}`, w.Body.String())
	})
}

func TestHandleLogin(t *testing.T) {

	testCases := []struct {
		name         string
		body         string
		expectedCode int
		expectedBody string
		wantCookie   bool
	}{
		{"good credentials", `{"user":"gaston","pass":"s3cret"}`, http.StatusOK, `{"ok":true}`, true},
		{"wrong user", `{"user":"other","pass":"s3cret"}`, http.StatusUnauthorized, `{"error":"Invalid credentials"}`, false},
		{"wrong password", `{"user":"gaston","pass":"nope"}`, http.StatusUnauthorized, `{"error":"Invalid credentials"}`, false},
		{"unparseable body", `smth`, http.StatusBadRequest, `{"error":"Could not parse body"}`, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, _ := newHandlerSet(t)

			req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(tc.body))
			w := httptest.NewRecorder()

			h.HandleLogin(w, req)

			assert.Equal(t, tc.expectedCode, w.Code)
			assert.JSONEq(t, tc.expectedBody, w.Body.String())

			if tc.wantCookie {
				cookies := w.Result().Cookies()
				assert.Equal(t, 1, len(cookies))

				verify := httptest.NewRequest(http.MethodGet, "/", nil)
				verify.AddCookie(cookies[0])
				session, err := auth.VerifySession(verify, []byte("secret"))
				assert.NoError(t, err)
				assert.True(t, session.IsAdmin)
			} else {
				assert.Empty(t, w.Result().Cookies())
			}
		})
	}
}

func TestHandleLogout(t *testing.T) {

	h, _ := newHandlerSet(t)

	w := httptest.NewRecorder()
	h.HandleLogout(w, httptest.NewRequest(http.MethodPost, "/api/admin/logout", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())

	cookies := w.Result().Cookies()
	assert.Equal(t, 1, len(cookies))
	assert.True(t, cookies[0].MaxAge < 0)
}

func TestHandleDeleteOrder(t *testing.T) {

	t.Run("not found", func(t *testing.T) {
		h, database := newHandlerSet(t)
		database.EXPECT().DeleteOrder(mock.Anything, 42).Return(fmt.Errorf("%w", &db.OrderNotFoundError{ID: 42})).Once()

		req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/admin/orders/42", nil), "id", "42")
		w := httptest.NewRecorder()

		h.HandleDeleteOrder(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())
	})

	t.Run("deleted", func(t *testing.T) {
		h, database := newHandlerSet(t)
		database.EXPECT().DeleteOrder(mock.Anything, 5).Return(nil).Once()

		req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/admin/orders/5", nil), "id", "5")
		w := httptest.NewRecorder()

		h.HandleDeleteOrder(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	})

	t.Run("non-numeric id never reaches the store", func(t *testing.T) {
		h, database := newHandlerSet(t)

		req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/admin/orders/abc", nil), "id", "abc")
		w := httptest.NewRecorder()

		h.HandleDeleteOrder(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		database.AssertNotCalled(t, "DeleteOrder", mock.Anything, mock.Anything)
	})
}

func TestHandleUpdateOrder(t *testing.T) {

	updated := types.Order{ID: 5, RealName: "Ana Diaz", Number: 11, BackText: "DIAZ", Size: types.SizeM,
		CreatedAt: time.Date(2024, 6, 12, 15, 13, 29, 0, time.UTC)}

	t.Run("updated", func(t *testing.T) {
		h, database := newHandlerSet(t)
		database.EXPECT().
			UpdateOrder(mock.Anything, 5, types.OrderParams{RealName: "Ana Diaz", Number: 11, BackText: "DIAZ", Size: types.SizeM}).
			Return(updated, nil).
			Once()

		body := `{"real_name":"Ana Diaz","number":11,"back_text":"DIAZ","size":"m"}`
		req := withURLParam(httptest.NewRequest(http.MethodPut, "/api/admin/orders/5", strings.NewReader(body)), "id", "5")
		w := httptest.NewRecorder()

		h.HandleUpdateOrder(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":5,"real_name":"Ana Diaz","number":11,"back_text":"DIAZ","size":"M","created_at":"2024-06-12T15:13:29Z"}`, w.Body.String())
	})

	t.Run("conflicting number", func(t *testing.T) {
		h, database := newHandlerSet(t)
		database.EXPECT().
			UpdateOrder(mock.Anything, 5, mock.Anything).
			Return(types.Order{}, fmt.Errorf("%w", &db.NumberTakenError{Number: 11})).
			Once()

		body := `{"real_name":"Ana Diaz","number":11,"back_text":"DIAZ","size":"m"}`
		req := withURLParam(httptest.NewRequest(http.MethodPut, "/api/admin/orders/5", strings.NewReader(body)), "id", "5")
		w := httptest.NewRecorder()

		h.HandleUpdateOrder(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, `{"error":"That number is already taken"}`, w.Body.String())
	})

	t.Run("invalid input never reaches the store", func(t *testing.T) {
		h, database := newHandlerSet(t)

		body := `{"real_name":"","number":11,"back_text":"DIAZ","size":"m"}`
		req := withURLParam(httptest.NewRequest(http.MethodPut, "/api/admin/orders/5", strings.NewReader(body)), "id", "5")
		w := httptest.NewRecorder()

		h.HandleUpdateOrder(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		database.AssertNotCalled(t, "UpdateOrder", mock.Anything, mock.Anything, mock.Anything)
	})
}
