package transaction

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHandlerTest(t *testing.T) *Handler {
	repo := NewStubRepository()
	t.Cleanup(repo.Cleanup)
	return NewHandler(NewService(repo))
}

func createRequest(t *testing.T, body any) *http.Request {
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/transactions", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCreate_Success(t *testing.T) {
	handler := setupHandlerTest(t)

	dto := TransactionDTO{Amount: 12.34, Category: "food", Label: "groceries", TxDate: "2024-03-15"}
	w := httptest.NewRecorder()
	handler.Create(w, createRequest(t, dto))

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]bool
	err := json.NewDecoder(w.Body).Decode(&response)
	assert.NoError(t, err)
	assert.True(t, response["ok"])
}

func TestCreate_InvalidAmount(t *testing.T) {
	handler := setupHandlerTest(t)

	dto := TransactionDTO{Amount: -3, Category: "food", TxDate: "2024-03-15"}
	w := httptest.NewRecorder()
	handler.Create(w, createRequest(t, dto))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreate_MissingCategory(t *testing.T) {
	handler := setupHandlerTest(t)

	dto := TransactionDTO{Amount: 10, TxDate: "2024-03-15"}
	w := httptest.NewRecorder()
	handler.Create(w, createRequest(t, dto))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreate_InvalidDate(t *testing.T) {
	handler := setupHandlerTest(t)

	dto := TransactionDTO{Amount: 10, Category: "food", TxDate: "15-03-2024"}
	w := httptest.NewRecorder()
	handler.Create(w, createRequest(t, dto))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestList_ByMonth(t *testing.T) {
	handler := setupHandlerTest(t)

	for _, dto := range []TransactionDTO{
		{Amount: 30, Category: "food", TxDate: "2024-03-20"},
		{Amount: 10, Category: "food", TxDate: "2024-03-05"},
		{Amount: 99, Category: "food", TxDate: "2024-04-01"},
	} {
		w := httptest.NewRecorder()
		handler.Create(w, createRequest(t, dto))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/transactions?month=2024-03", nil)
	w := httptest.NewRecorder()
	handler.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var listed []TransactionDTO
	err := json.NewDecoder(w.Body).Decode(&listed)
	assert.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "2024-03-05", listed[0].TxDate)
	assert.Equal(t, "2024-03-20", listed[1].TxDate)
	assert.NotEmpty(t, listed[0].ID)
}

func TestList_InvalidMonth(t *testing.T) {
	handler := setupHandlerTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/transactions?month=March", nil)
	w := httptest.NewRecorder()
	handler.List(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestList_Empty(t *testing.T) {
	handler := setupHandlerTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	w := httptest.NewRecorder()
	handler.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}
