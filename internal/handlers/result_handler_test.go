package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airecruiter/resume-screener/internal/models"
)

func newResultTestEnv() (*fiber.App, *fakeEvalRepo) {
	app := fiber.New()
	evalRepo := &fakeEvalRepo{}

	h := NewResultHandler(evalRepo, 70)
	app.Get("/api/v1/evaluations", h.HandleListResults)
	app.Get("/api/v1/evaluations/:id", h.HandleGetResult)
	app.Get("/api/v1/shortlist", h.HandleShortlist)

	return app, evalRepo
}

func seedCompletedEval(t *testing.T, repo *fakeEvalRepo, fileName string, score float64, verdict string) uint {
	t.Helper()

	eval := &models.Evaluation{
		ScreeningID:      uuid.New(),
		ResumeDocumentID: uuid.New(),
		FileName:         fileName,
		Status:           models.StatusCompleted,
		Score:            &score,
		Verdict:          &verdict,
	}
	require.NoError(t, repo.Create(eval))
	return eval.ID
}

func getJSON(t *testing.T, app *fiber.App, path string, out interface{}) int {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode == fiber.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestGetResult(t *testing.T) {
	app, repo := newResultTestEnv()
	id := seedCompletedEval(t, repo, "alice.pdf", 81.5, "High")

	var body models.EvaluationResponse
	status := getJSON(t, app, fmt.Sprintf("/api/v1/evaluations/%d", id), &body)

	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, id, body.ID)
	assert.Equal(t, "alice.pdf", body.FileName)
	require.NotNil(t, body.Score)
	assert.Equal(t, 81.5, *body.Score)
	require.NotNil(t, body.Verdict)
	assert.Equal(t, "High", *body.Verdict)
}

func TestGetResultErrors(t *testing.T) {
	app, _ := newResultTestEnv()

	assert.Equal(t, fiber.StatusNotFound, getJSON(t, app, "/api/v1/evaluations/42", nil))
	assert.Equal(t, fiber.StatusBadRequest, getJSON(t, app, "/api/v1/evaluations/abc", nil))
}

func TestListResults(t *testing.T) {
	app, repo := newResultTestEnv()
	seedCompletedEval(t, repo, "alice.pdf", 81.5, "High")
	seedCompletedEval(t, repo, "bob.pdf", 44.2, "Low")

	var body struct {
		Evaluations []models.EvaluationResponse `json:"evaluations"`
	}
	status := getJSON(t, app, "/api/v1/evaluations", &body)

	require.Equal(t, fiber.StatusOK, status)
	require.Len(t, body.Evaluations, 2)
	// Most recent first.
	assert.Equal(t, "bob.pdf", body.Evaluations[0].FileName)
	assert.Equal(t, "alice.pdf", body.Evaluations[1].FileName)
}

func TestShortlist(t *testing.T) {
	app, repo := newResultTestEnv()
	seedCompletedEval(t, repo, "alice.pdf", 92.1, "High")
	seedCompletedEval(t, repo, "bob.pdf", 71.4, "Medium")
	seedCompletedEval(t, repo, "carol.pdf", 40.0, "Low")

	var body struct {
		MinScore   float64                     `json:"min_score"`
		Candidates []models.EvaluationResponse `json:"candidates"`
	}

	status := getJSON(t, app, "/api/v1/shortlist", &body)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 70.0, body.MinScore)
	require.Len(t, body.Candidates, 2)

	status = getJSON(t, app, "/api/v1/shortlist?min_score=90", &body)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 90.0, body.MinScore)
	require.Len(t, body.Candidates, 1)
	assert.Equal(t, "alice.pdf", body.Candidates[0].FileName)

	assert.Equal(t, fiber.StatusBadRequest, getJSON(t, app, "/api/v1/shortlist?min_score=high", nil))
}
