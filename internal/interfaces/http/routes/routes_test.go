package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PavaniTiago/nr01-risk-api/internal/config"
	"github.com/PavaniTiago/nr01-risk-api/internal/domain/risk"
	"github.com/PavaniTiago/nr01-risk-api/internal/infrastructure/cache"
	"github.com/PavaniTiago/nr01-risk-api/internal/infrastructure/database"
	"github.com/PavaniTiago/nr01-risk-api/internal/infrastructure/logger"
	"github.com/PavaniTiago/nr01-risk-api/internal/interfaces/http/middleware"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	log := logger.NewNop()
	require.NoError(t, database.Prepare(db, log))

	state := cache.NewMemoryProbabilityState(time.Hour)
	t.Cleanup(func() {
		_ = state.Close()
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	cfg := &config.Config{
		CORSAllowOrigins: "*",
		CompanyCacheTTL:  time.Minute,
	}

	app := fiber.New()
	middleware.SetupMiddlewares(app, cfg, log)
	SetupRoutes(app, db, cfg, state, log)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}, headers ...string) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()

	var decoded map[string]interface{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func highRiskAnswers() map[string]int {
	answers := make(map[string]int, len(risk.Questions))
	for _, q := range risk.Questions {
		v := risk.MaxAnswer
		if q.Inverted {
			v = 0
		}
		answers[fmt.Sprint(q.ID)] = v
	}
	return answers
}

// createCompany cadastra uma empresa com um setor e retorna (companyID, sectorID, accessCode)
func createCompany(t *testing.T, app *fiber.App) (string, string, string) {
	t.Helper()

	resp, body := doRequest(t, app, http.MethodPost, "/companies", map[string]interface{}{
		"razao_social":    "Acme Indústria LTDA",
		"nome_fantasia":   "Acme",
		"uf":              "SP",
		"cidade":          "Campinas",
		"total_employees": 4,
		"sectors":         []string{"Produção"},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	sectors := body["sectors"].([]interface{})
	require.Len(t, sectors, 1)
	sectorID := sectors[0].(map[string]interface{})["id"].(string)
	return body["id"].(string), sectorID, body["access_code"].(string)
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	resp, body := doRequest(t, app, http.MethodGet, "/health", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", body["status"])
}

func TestCompanyRoutes(t *testing.T) {
	app := newTestApp(t)
	companyID, _, code := createCompany(t, app)
	assert.Regexp(t, `^#Emp-[0-9A-Z]{6}$`, code)

	resp, body := doRequest(t, app, http.MethodGet, "/companies/"+companyID, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Acme", body["nome_fantasia"])
	assert.Equal(t, "Aberto", body["status"])

	resp, body = doRequest(t, app, http.MethodGet, "/companies?access_code="+url.QueryEscape(code), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, companyID, body["id"])

	resp, body = doRequest(t, app, http.MethodPut, "/companies/"+companyID+"/sectors", map[string]interface{}{
		"sectors": []map[string]string{{"name": "Produção"}, {"name": "Logística"}},
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, body["sectors"], 2)

	resp, _ = doRequest(t, app, http.MethodGet, "/companies/missing", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, body = doRequest(t, app, http.MethodPost, "/companies", map[string]interface{}{"uf": "SPX"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["fields"], "razao_social: required")
}

func TestCompanyStatusRoute(t *testing.T) {
	app := newTestApp(t)
	companyID, sectorID, _ := createCompany(t, app)

	resp, body := doRequest(t, app, http.MethodPut, "/companies/"+companyID+"/status", map[string]string{"status": "Fechado"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Fechado", body["status"])

	resp, _ = doRequest(t, app, http.MethodPost, "/responses", map[string]interface{}{
		"company_id": companyID,
		"sector_id":  sectorID,
		"answers":    highRiskAnswers(),
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp, body = doRequest(t, app, http.MethodPut, "/companies/"+companyID+"/status", map[string]string{"status": "Pausado"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["fields"], "status: oneof")

	resp, _ = doRequest(t, app, http.MethodPut, "/companies/missing/status", map[string]string{"status": "Aberto"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestResponseAndDiagnosticRoutes(t *testing.T) {
	app := newTestApp(t)
	companyID, sectorID, _ := createCompany(t, app)

	resp, body := doRequest(t, app, http.MethodPost, "/responses", map[string]interface{}{
		"company_id": companyID,
		"sector_id":  sectorID,
		"answers":    map[string]int{"91": 2},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.NotEmpty(t, body["fields"])

	resp, _ = doRequest(t, app, http.MethodPost, "/responses", map[string]interface{}{
		"company_id":   companyID,
		"sector_id":    sectorID,
		"job_function": "Operador",
		"answers":      highRiskAnswers(),
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, body = doRequest(t, app, http.MethodGet, "/companies/"+companyID+"/responses?sector_id="+sectorID, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, body["total"])

	resp, _ = doRequest(t, app, http.MethodGet, "/companies/"+companyID+"/responses?from=nope", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, body = doRequest(t, app, http.MethodGet, "/companies/"+companyID+"/diagnostic?sector_id="+sectorID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	themes := body["themes"].([]interface{})
	require.Len(t, themes, risk.ThemeCount)
	first := themes[0].(map[string]interface{})
	assert.EqualValues(t, 3, first["probability"])
	assert.Equal(t, "Crítico", first["risk_level"])

	resp, body = doRequest(t, app, http.MethodGet, "/companies/"+companyID+"/diagnostic", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "all", body["sector_id"])

	sectorPath := "/companies/" + companyID + "/sectors/" + sectorID

	resp, body = doRequest(t, app, http.MethodPost, sectorPath+"/reconcile", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["written"])

	resp, _ = doRequest(t, app, http.MethodPost, "/companies/"+companyID+"/sectors/unknown/reconcile", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestProbabilityRoutes(t *testing.T) {
	app := newTestApp(t)
	companyID, sectorID, _ := createCompany(t, app)
	sectorPath := "/companies/" + companyID + "/sectors/" + sectorID

	resp, body := doRequest(t, app, http.MethodPut, sectorPath+"/probabilities/0", map[string]int{"value": 4})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	rows := body["data"].([]interface{})
	require.NotEmpty(t, rows)
	first := rows[0].(map[string]interface{})
	assert.EqualValues(t, 4, first["value"])
	assert.Equal(t, "manual", first["source"])

	resp, _ = doRequest(t, app, http.MethodPut, sectorPath+"/probabilities/0", map[string]int{"value": 5})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodPut, sectorPath+"/probabilities/9", map[string]int{"value": 2})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodPut, sectorPath+"/probabilities/x", map[string]int{"value": 2})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodPut, "/companies/"+companyID+"/sectors/all/probabilities/0", map[string]int{"value": 2})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	resp, body = doRequest(t, app, http.MethodDelete, sectorPath+"/probabilities/0", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	rows = body["data"].([]interface{})
	require.NotEmpty(t, rows)
	assert.Equal(t, "auto", rows[0].(map[string]interface{})["source"])
	assert.EqualValues(t, 2, rows[0].(map[string]interface{})["value"])
}

func TestReportRoutes(t *testing.T) {
	app := newTestApp(t)
	companyID, sectorID, _ := createCompany(t, app)
	sectorPath := "/companies/" + companyID + "/sectors/" + sectorID

	resp, _ := doRequest(t, app, http.MethodGet, sectorPath+"/reports/current", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodPost, "/companies/"+companyID+"/sectors/all/reports", map[string]interface{}{})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	resp, body := doRequest(t, app, http.MethodPost, sectorPath+"/reports", map[string]interface{}{
		"author": "Ana Souza",
		"annotations": map[string]interface{}{
			"1": map[string]string{"fonte_geradora": "Metas", "agravos_saude": "Estresse", "medidas_controle": "Revisar metas"},
		},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Ana Souza", body["author"])
	assert.Equal(t, "Estresse", body["agravos_saude"])
	assert.Equal(t, true, body["is_main"])

	resp, body = doRequest(t, app, http.MethodGet, sectorPath+"/reports/current", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Revisar metas", body["medidas_controle"])

	resp, body = doRequest(t, app, http.MethodGet, sectorPath+"/reports", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, body["total"])

	resp, body = doRequest(t, app, http.MethodGet, sectorPath+"/reports/current/view", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	themes := body["themes"].([]interface{})
	require.Len(t, themes, risk.ThemeCount)
	assert.Equal(t, "Metas", themes[1].(map[string]interface{})["fonte_geradora"])
	assert.Equal(t, "Exposição rotineira ao ambiente de trabalho.", themes[0].(map[string]interface{})["fonte_geradora"])

	resp, _ = doRequest(t, app, http.MethodPost, sectorPath+"/reports", map[string]interface{}{
		"annotations": map[string]interface{}{"9": map[string]string{"agravos_saude": "x"}},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDashboardRoute(t *testing.T) {
	app := newTestApp(t)
	companyID, sectorID, _ := createCompany(t, app)

	resp, _ := doRequest(t, app, http.MethodPost, "/responses", map[string]interface{}{
		"company_id": companyID,
		"sector_id":  sectorID,
		"answers":    highRiskAnswers(),
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, body := doRequest(t, app, http.MethodGet, "/companies/"+companyID+"/dashboard", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	assert.EqualValues(t, 1, data["total_responses"])
	assert.EqualValues(t, 25, data["participation"])

	etag := resp.Header.Get(fiber.HeaderETag)
	require.NotEmpty(t, etag)

	resp, _ = doRequest(t, app, http.MethodGet, "/companies/"+companyID+"/dashboard", nil, fiber.HeaderIfNoneMatch, etag)
	assert.Equal(t, fiber.StatusNotModified, resp.StatusCode)
}

func TestReviewerRoutes(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doRequest(t, app, http.MethodPut, "/reviewer", map[string]string{"nome_completo": "Ana", "email": "invalido"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, body := doRequest(t, app, http.MethodPut, "/reviewer", map[string]string{"nome_completo": "Ana Souza", "crp": "06/12345"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Ana Souza", body["nome_completo"])

	resp, body = doRequest(t, app, http.MethodGet, "/reviewer", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "06/12345", body["crp"])
}

func TestMetricsRoute(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "nr01_responses_submitted_total")
}
