package transaction

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/spendlens/spendlens/internal/auth"
	"github.com/spendlens/spendlens/internal/transaction"
)

const testUserID = "user-1"

// newTestRouter mounts the handler behind a stub that stamps the user id
// the way the bearer middleware does in production.
func newTestRouter(t *testing.T) (http.Handler, *transaction.MockRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := transaction.NewMockRepository(ctrl)
	handler := NewHandler(transaction.NewService(repo))

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(auth.ContextWithUserID(r.Context(), testUserID)))
		})
	})
	router.Route("/transactions", handler.Routes)

	return router, repo
}

func TestHandler_Create(t *testing.T) {
	router, repo := newTestRouter(t)

	repo.EXPECT().
		CreateTransaction(gomock.Any(), testUserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, tx *transaction.Transaction) error {
			assert.NotEmpty(t, tx.ID)
			assert.Equal(t, "Groceries", tx.Title)
			assert.True(t, tx.Amount.Equal(decimal.RequireFromString("42.50")))
			assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), tx.Date)
			return nil
		})

	body := `{"expenseType":"expense","title":"Groceries","amount":"42.50","category":"Food","date":"2024-03-05"}`

	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["id"])
	assert.Equal(t, "Groceries", resp["title"])
}

func TestHandler_Create_Invalid(t *testing.T) {
	router, _ := newTestRouter(t)

	body := `{"expenseType":"expense","title":"","amount":"1"}`

	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "message")
}

func TestHandler_Get_NotFound(t *testing.T) {
	router, repo := newTestRouter(t)

	repo.EXPECT().
		GetTransaction(gomock.Any(), testUserID, "missing").
		Return(nil, transaction.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/transactions/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "transaction not found")
}

func TestHandler_List(t *testing.T) {
	router, repo := newTestRouter(t)

	repo.EXPECT().
		ListTransactions(gomock.Any(), testUserID).
		Return([]*transaction.Transaction{
			{ID: "1", Type: transaction.TypeIncome, Title: "Salary", Amount: decimal.NewFromInt(1000)},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Salary", resp[0]["title"])
	assert.Equal(t, "income", resp[0]["expenseType"])
}

func TestHandler_Delete(t *testing.T) {
	router, repo := newTestRouter(t)

	repo.EXPECT().
		DeleteTransaction(gomock.Any(), testUserID, "tx-1").
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/transactions/tx-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
