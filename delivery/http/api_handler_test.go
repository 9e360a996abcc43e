package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/lDirtyl/goit-final-aws-email-db/domain"
	"github.com/lDirtyl/goit-final-aws-email-db/pkg/api"
	"github.com/lDirtyl/goit-final-aws-email-db/pkg/logger"
)

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) api.Response {
	t.Helper()
	var response api.Response
	err := json.NewDecoder(w.Body).Decode(&response)
	require.NoError(t, err, "Failed to decode response envelope")
	return response
}

func postJSON(t *testing.T, handler http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestAPICreateContact(t *testing.T) {
	uc := newStubUseCase()
	handler := newTestRouter(uc)

	w := postJSON(t, handler, "/api/v1/contacts", `{"name":"Jane Doe","email":"jane@example.com"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	response := decodeEnvelope(t, w)
	assert.Equal(t, api.StatusSuccess, response.Status)
	assert.NotEmpty(t, response.RequestID, "Envelope must carry the request id")

	data, ok := response.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), data["id"])
	assert.Equal(t, "Jane Doe", data["name"])
}

func TestAPICreateContact_InvalidBody(t *testing.T) {
	handler := newTestRouter(newStubUseCase())

	w := postJSON(t, handler, "/api/v1/contacts", `{not json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeEnvelope(t, w)
	require.NotNil(t, response.Error)
	assert.Equal(t, "BAD_REQUEST", response.Error.Code)
}

func TestAPICreateContact_ValidationFailure(t *testing.T) {
	uc := newStubUseCase()
	handler := newTestRouter(uc)

	w := postJSON(t, handler, "/api/v1/contacts", `{"name":"","email":"not-an-email"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeEnvelope(t, w)
	require.NotNil(t, response.Error)
	assert.Equal(t, "VALIDATION_ERROR", response.Error.Code)
	assert.NotEmpty(t, response.Error.Details)
	assert.Empty(t, uc.contacts, "Validation failure must not create a row")
}

func TestAPIListContacts(t *testing.T) {
	uc := newStubUseCase()
	handler := newTestRouter(uc)

	postJSON(t, handler, "/api/v1/contacts", `{"name":"andrii","email":"andrii@example.com"}`)
	postJSON(t, handler, "/api/v1/contacts", `{"name":"olena","email":"olena@example.com"}`)

	w := getPage(t, handler, "/api/v1/contacts")

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeEnvelope(t, w)
	data, ok := response.Data.([]any)
	require.True(t, ok)
	require.Len(t, data, 2)

	first, ok := data[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), first["id"])
	assert.Equal(t, "andrii", first["name"])
}

func TestAPIListContacts_Empty(t *testing.T) {
	handler := newTestRouter(newStubUseCase())

	w := getPage(t, handler, "/api/v1/contacts")

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeEnvelope(t, w)
	assert.Equal(t, api.StatusSuccess, response.Status)
}

func TestAPIListContacts_StorageError(t *testing.T) {
	uc := newStubUseCase()
	uc.listErr = errors.New("connection lost")
	handler := newTestRouter(uc)

	w := getPage(t, handler, "/api/v1/contacts")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	response := decodeEnvelope(t, w)
	require.NotNil(t, response.Error)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", response.Error.Code)
}

func TestAPISearchContacts(t *testing.T) {
	uc := newStubUseCase()
	handler := newTestRouter(uc)

	postJSON(t, handler, "/api/v1/contacts", `{"name":"olena","email":"olena@example.com"}`)

	w := getPage(t, handler, "/api/v1/contacts/search?keyword=len")

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeEnvelope(t, w)
	data, ok := response.Data.([]any)
	require.True(t, ok)
	assert.Len(t, data, 1)
}

func TestAPICreateContact_ClientErrorLogsAtWarn(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithOptions(logger.WithOutput(&buf))

	uc := newStubUseCase()
	uc.addErr = domain.ErrContactAlreadyExists
	apiHandler := NewAPIHandler(uc, log)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contacts",
		strings.NewReader(`{"name":"Jane","email":"jane@example.com"}`))
	apiHandler.CreateContactHandler(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.NotContains(t, buf.String(), `"level":"ERROR"`, "A client error is not a server fault")
}

func TestAPICreateContact_StorageErrorLogsAtError(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithOptions(logger.WithOutput(&buf))

	uc := newStubUseCase()
	uc.addErr = errors.New("connection lost")
	apiHandler := NewAPIHandler(uc, log)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contacts",
		strings.NewReader(`{"name":"Jane","email":"jane@example.com"}`))
	apiHandler.CreateContactHandler(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
}

func TestDBHealthCheck(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)

	mock.ExpectQuery("SELECT 1").WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	healthHandler := NewHealthHandler(gormDB, logger.NoOpLogger())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/db", nil)

	healthHandler.DBHealthCheckHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBHealthCheck_Unavailable(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)

	mock.ExpectQuery("SELECT 1").WillReturnError(errors.New("connection refused"))

	healthHandler := NewHealthHandler(gormDB, logger.NoOpLogger())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/db", nil)

	healthHandler.DBHealthCheckHandler(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
