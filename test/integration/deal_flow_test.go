package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/clustereddata/fx-deal-warehouse/internal/config"
	"github.com/clustereddata/fx-deal-warehouse/internal/eventbus"
	"github.com/clustereddata/fx-deal-warehouse/internal/handler"
	"github.com/clustereddata/fx-deal-warehouse/internal/server"
	"github.com/clustereddata/fx-deal-warehouse/internal/service"
	"github.com/clustereddata/fx-deal-warehouse/internal/storage"
	"github.com/clustereddata/fx-deal-warehouse/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const csvHeader = "id,fromCurrency,toCurrency,timestamp,amount\n"

func setupTestServer(t *testing.T) (*httptest.Server, eventbus.EventBus) {
	log := logger.NewNop()
	repo := storage.NewMemoryStore()

	eventBusCfg := &eventbus.Config{
		ChannelBuffer: 100,
		MaxRetries:    3,
	}
	bus := eventbus.New(log, eventBusCfg)

	auditConsumer := eventbus.NewAuditConsumer(repo, log, 2)
	err := bus.Subscribe(eventbus.EventTypeRowOutcome, auditConsumer)
	require.NoError(t, err)

	err = bus.Start(context.Background())
	require.NoError(t, err)

	importer := service.NewImporter(repo, bus, log, false)
	dealService := service.NewDealService(repo, importer, log)

	dealHandler := handler.NewDealHandler(dealService, log)
	healthHandler := handler.NewHealthHandler()

	cfg := &config.Config{
		Server: config.ServerConfig{
			Port: "8080",
			Host: "0.0.0.0",
		},
	}

	srv := server.New(cfg, log, dealHandler, healthHandler)

	testServer := httptest.NewServer(srv.Handler())

	return testServer, bus
}

func TestDealImportFlow(t *testing.T) {
	srv, bus := setupTestServer(t)
	defer srv.Close()
	defer bus.Shutdown(context.Background())

	csvContent := csvHeader +
		"DEAL001,USD,EUR,2024-01-15T10:30:00,1000.00\n" +
		"DEAL002,GBP,JPY,2024-01-15T11:00:00,2000.00\n" +
		"DEAL001,CHF,SEK,2024-01-15T11:30:00,3000.00\n" +
		"DEAL003,USD,EUR,2024-01-15T12:00:00,-5.00\n"

	result := uploadCSV(t, srv.URL, csvContent, http.StatusOK)

	batchID := result["batch_id"].(string)
	assert.NotEmpty(t, batchID)
	assert.Equal(t, float64(4), result["total_rows"])
	assert.Equal(t, float64(2), result["accepted_count"])
	assert.Equal(t, float64(1), result["rejected_count"])
	assert.Equal(t, float64(1), result["skipped_count"])

	accepted := result["accepted"].([]interface{})
	require.Len(t, accepted, 2)

	// Listing returns both persisted deals.
	deals := listDeals(t, srv.URL)
	assert.Len(t, deals, 2)

	// Field round-trip for the first accepted deal.
	deal := getDeal(t, srv.URL, "DEAL001", http.StatusOK)
	assert.Equal(t, "DEAL001", deal["dealUniqueId"])
	assert.Equal(t, "USD", deal["fromCurrencyIsoCode"])
	assert.Equal(t, "EUR", deal["toCurrencyIsoCode"])

	gotAmount, err := decimal.NewFromString(deal["dealAmount"].(string))
	require.NoError(t, err)
	assert.True(t, gotAmount.Equal(decimal.RequireFromString("1000.00")))

	gotTimestamp, err := time.Parse(time.RFC3339, deal["dealTimestamp"].(string))
	require.NoError(t, err)
	assert.True(t, gotTimestamp.Equal(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)))

	// Batch summary reflects the counts.
	batch := getJSON(t, srv.URL+"/api/v1/imports/"+batchID, http.StatusOK)
	assert.Equal(t, "completed", batch["status"])
	assert.Equal(t, float64(4), batch["total_rows"])

	// The audit log is written asynchronously.
	time.Sleep(500 * time.Millisecond)

	rows := getJSON(t, srv.URL+"/api/v1/imports/"+batchID+"/rows?page=1&per_page=10", http.StatusOK)
	assert.Equal(t, float64(4), rows["total"])

	skipped := getJSON(t, srv.URL+"/api/v1/imports/"+batchID+"/rows?status=skipped_duplicate", http.StatusOK)
	assert.Equal(t, float64(1), skipped["total"])
	items := skipped["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "DEAL001", items[0].(map[string]interface{})["deal_id"])
}

func TestCrossBatchDuplicates(t *testing.T) {
	srv, bus := setupTestServer(t)
	defer srv.Close()
	defer bus.Shutdown(context.Background())

	csvContent := csvHeader + "DEAL001,USD,EUR,2024-01-15T10:30:00,1000.00\n"

	first := uploadCSV(t, srv.URL, csvContent, http.StatusOK)
	assert.Equal(t, float64(1), first["accepted_count"])

	// Same file again: the store already holds DEAL001.
	second := uploadCSV(t, srv.URL, csvContent, http.StatusOK)
	assert.Equal(t, float64(0), second["accepted_count"])
	assert.Equal(t, float64(1), second["skipped_count"])

	deals := listDeals(t, srv.URL)
	assert.Len(t, deals, 1)
}

func TestImportMalformedFile(t *testing.T) {
	srv, bus := setupTestServer(t)
	defer srv.Close()
	defer bus.Shutdown(context.Background())

	csvContent := csvHeader +
		"DEAL001,USD,EUR,2024-01-15T10:30:00,1000.00\n" +
		"DEAL002,USD,EUR\n"

	result := uploadCSV(t, srv.URL, csvContent, http.StatusBadRequest)
	assert.Contains(t, result["error"], "malformed row")
	assert.Equal(t, float64(2), result["line"])

	// Rows accepted before the abort stay persisted.
	deals := listDeals(t, srv.URL)
	assert.Len(t, deals, 1)
}

func TestImportMissingFile(t *testing.T) {
	srv, bus := setupTestServer(t)
	defer srv.Close()
	defer bus.Shutdown(context.Background())

	resp, err := http.Post(srv.URL+"/api/v1/deals/import", "application/json", bytes.NewReader(nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetDealNotFound(t *testing.T) {
	srv, bus := setupTestServer(t)
	defer srv.Close()
	defer bus.Shutdown(context.Background())

	getDeal(t, srv.URL, "nonexistent", http.StatusNotFound)
}

func TestGetImportNotFound(t *testing.T) {
	srv, bus := setupTestServer(t)
	defer srv.Close()
	defer bus.Shutdown(context.Background())

	getJSON(t, srv.URL+"/api/v1/imports/nonexistent", http.StatusNotFound)
}

func TestGetImportRows_InvalidStatus(t *testing.T) {
	srv, bus := setupTestServer(t)
	defer srv.Close()
	defer bus.Shutdown(context.Background())

	result := uploadCSV(t, srv.URL, csvHeader, http.StatusOK)
	batchID := result["batch_id"].(string)

	getJSON(t, srv.URL+"/api/v1/imports/"+batchID+"/rows?status=bogus", http.StatusBadRequest)
}

func TestHealthCheck(t *testing.T) {
	srv, bus := setupTestServer(t)
	defer srv.Close()
	defer bus.Shutdown(context.Background())

	result := getJSON(t, srv.URL+"/health", http.StatusOK)
	assert.Equal(t, "ok", result["status"])
	assert.NotEmpty(t, result["timestamp"])
}

func uploadCSV(t *testing.T, baseURL, csvContent string, wantStatus int) map[string]interface{} {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", "deals.csv")
	require.NoError(t, err)

	_, err = io.WriteString(part, csvContent)
	require.NoError(t, err)

	err = writer.Close()
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/v1/deals/import", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	client := &http.Client{}
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, wantStatus, resp.StatusCode)

	var result map[string]interface{}
	err = json.NewDecoder(resp.Body).Decode(&result)
	require.NoError(t, err)

	return result
}

func listDeals(t *testing.T, baseURL string) []interface{} {
	result := getJSON(t, baseURL+"/api/v1/deals", http.StatusOK)

	total := result["total"].(float64)
	if total == 0 {
		return nil
	}

	deals, ok := result["deals"].([]interface{})
	require.True(t, ok)
	require.Len(t, deals, int(total))

	return deals
}

func getDeal(t *testing.T, baseURL, dealID string, wantStatus int) map[string]interface{} {
	return getJSON(t, fmt.Sprintf("%s/api/v1/deals/%s", baseURL, dealID), wantStatus)
}

func getJSON(t *testing.T, url string, wantStatus int) map[string]interface{} {
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, wantStatus, resp.StatusCode)

	var result map[string]interface{}
	err = json.NewDecoder(resp.Body).Decode(&result)
	require.NoError(t, err)

	return result
}

func TestMain(m *testing.M) {
	code := m.Run()
	os.Exit(code)
}
