package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikh-saqib/gpa-calculator/internal/ledger"
	"github.com/sheikh-saqib/gpa-calculator/internal/models/events"
)

type envelope struct {
	Code    int             `json:"code"`
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  json.RawMessage `json:"errors"`
}

type capturePublisher struct {
	topics []string
	err    error
}

func (p *capturePublisher) Publish(ctx context.Context, topic string, event any) error {
	p.topics = append(p.topics, topic)
	return p.err
}

func newTestApp(t *testing.T, pub *capturePublisher) *fiber.App {
	t.Helper()
	l := ledger.NewLedger(nil, ledger.WithIDGenerator(ledger.NewSequence("s")))
	var server *Server
	if pub != nil {
		server = NewServer(l, pub, nil)
	} else {
		server = NewServer(l, nil, nil)
	}
	return server.App()
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestHealth(t *testing.T) {
	app := newTestApp(t, nil)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSubjectLifecycle(t *testing.T) {
	app := newTestApp(t, nil)

	code, env := do(t, app, http.MethodPost, "/subjects", `{"name":"Kalkulus","credit":4,"grade_value":4}`)
	require.Equal(t, http.StatusCreated, code)
	var added struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		LetterGrade string `json:"letter_grade"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &added))
	assert.Equal(t, "s-1", added.ID)
	assert.Equal(t, "A", added.LetterGrade)

	code, _ = do(t, app, http.MethodPost, "/subjects", `{"name":"Fisika","credit":3,"grade_value":3.7}`)
	require.Equal(t, http.StatusCreated, code)
	code, _ = do(t, app, http.MethodPost, "/subjects", `{"name":"Kimia","credit":3,"grade_value":3.3}`)
	require.Equal(t, http.StatusCreated, code)

	code, env = do(t, app, http.MethodGet, "/subjects", "")
	require.Equal(t, http.StatusOK, code)
	var list struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, 3, list.Count)

	code, env = do(t, app, http.MethodGet, "/gpa", "")
	require.Equal(t, http.StatusOK, code)
	var result struct {
		GPAText      string `json:"gpa_text"`
		TotalCredits int    `json:"total_credits"`
		QPText       string `json:"total_quality_points_text"`
		SubjectCount int    `json:"subject_count"`
		Status       string `json:"status"`
		Class        struct {
			Label string `json:"label"`
			Color string `json:"color"`
		} `json:"classification"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, "3.70", result.GPAText)
	assert.Equal(t, 10, result.TotalCredits)
	assert.Equal(t, "37.00", result.QPText)
	assert.Equal(t, 3, result.SubjectCount)
	assert.Equal(t, "MAGNA CUM LAUDE", result.Class.Label)
	assert.Equal(t, "🎖️ MAGNA CUM LAUDE", result.Status)

	code, _ = do(t, app, http.MethodDelete, "/subjects/s-1", "")
	assert.Equal(t, http.StatusOK, code)
	code, env = do(t, app, http.MethodDelete, "/subjects/s-1", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "error", env.Status)
}

func TestAddSubjectErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		code   int
		reason string
	}{
		{"malformed json", `{"name":`, http.StatusBadRequest, ""},
		{"missing credit", `{"name":"Kimia","grade_value":3}`, http.StatusBadRequest, ""},
		{"missing grade", `{"name":"Kimia","credit":3}`, http.StatusBadRequest, ""},
		{"blank name", `{"name":"   ","credit":3,"grade_value":3}`, http.StatusUnprocessableEntity, "EmptyName"},
		{"zero credit", `{"name":"Kimia","credit":0,"grade_value":3}`, http.StatusUnprocessableEntity, "CreditOutOfRange"},
		{"nine credits", `{"name":"Kimia","credit":9,"grade_value":3}`, http.StatusUnprocessableEntity, "CreditOutOfRange"},
		{"grade too high", `{"name":"Kimia","credit":3,"grade_value":5}`, http.StatusUnprocessableEntity, "GradeOutOfRange"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, nil)
			code, env := do(t, app, http.MethodPost, "/subjects", tt.body)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, "error", env.Status)

			if tt.reason != "" {
				var details struct {
					Reason string `json:"reason"`
				}
				require.NoError(t, json.Unmarshal(env.Errors, &details))
				assert.Equal(t, tt.reason, details.Reason)
			}

			_, env = do(t, app, http.MethodGet, "/subjects", "")
			assert.Contains(t, string(env.Data), `"count":0`)
		})
	}
}

func TestComputeOnEmptyLedger(t *testing.T) {
	pub := &capturePublisher{}
	app := newTestApp(t, pub)

	code, env := do(t, app, http.MethodGet, "/gpa", "")
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "add at least one subject first", env.Message)
	assert.Empty(t, pub.topics)
}

func TestComputePublishesEvent(t *testing.T) {
	pub := &capturePublisher{err: errors.New("broker down")}
	app := newTestApp(t, pub)

	code, _ := do(t, app, http.MethodPost, "/subjects", `{"name":"Kimia","credit":1,"grade_value":0}`)
	require.Equal(t, http.StatusCreated, code)

	code, env := do(t, app, http.MethodGet, "/gpa", "")
	require.Equal(t, http.StatusOK, code, "publish failures must not fail the request")
	assert.Contains(t, string(env.Data), "GAGAL")
	assert.Equal(t, []string{events.TopicGPAComputed}, pub.topics)
}

func TestReferenceTables(t *testing.T) {
	app := newTestApp(t, nil)

	code, env := do(t, app, http.MethodGet, "/grades", "")
	require.Equal(t, http.StatusOK, code)
	var scale []struct {
		Letter string `json:"letter"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &scale))
	require.Len(t, scale, 11)
	assert.Equal(t, "A", scale[0].Letter)
	assert.Equal(t, "E", scale[10].Letter)

	code, env = do(t, app, http.MethodGet, "/bands", "")
	require.Equal(t, http.StatusOK, code)
	var bands []struct {
		Label string `json:"label"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &bands))
	require.Len(t, bands, 11)
	assert.Equal(t, "SUMMA CUM LAUDE", bands[0].Label)
}

func TestUnknownRoute(t *testing.T) {
	app := newTestApp(t, nil)
	code, env := do(t, app, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "error", env.Status)
}
