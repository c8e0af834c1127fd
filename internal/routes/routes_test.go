package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zaqqye/smart_timetable/internal/config"
	"github.com/zaqqye/smart_timetable/internal/logger"
	"github.com/zaqqye/smart_timetable/internal/planner"
	"github.com/zaqqye/smart_timetable/internal/store"
	"github.com/zaqqye/smart_timetable/internal/tracker"
)

func clock() time.Time { return time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC) }

type testServer struct {
	r     *gin.Engine
	paths store.Paths
	cfg   *config.Config
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	cfg := &config.Config{
		StoreBackend:      config.BackendFile,
		ExamStorePath:     filepath.Join(dir, "exams.json"),
		ProgressStorePath: filepath.Join(dir, "progress.json"),
		ExportDir:         filepath.Join(dir, "exports"),
	}
	exams, progress, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	exams.Now = clock
	progress.Now = clock
	svc := planner.New(exams, progress, tracker.AllOrNothing, logger.NewNop())
	svc.Now = clock

	r := gin.New()
	Register(r, svc, nil, cfg)
	return &testServer{r: r, paths: store.Paths{ExamStorePath: cfg.ExamStorePath, ProgressStorePath: cfg.ProgressStorePath}, cfg: cfg}
}

func (s *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
}

func (s *testServer) createExam(t *testing.T, body string) string {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/v1/exams", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", w.Code, w.Body.String())
	}
	var exam struct {
		ID string `json:"id"`
	}
	decode(t, w, &exam)
	return exam.ID
}

func TestCreateAndListExams(t *testing.T) {
	s := newTestServer(t)
	id := s.createExam(t, `{"subject":"Physics","examDate":"2025-03-20","dailyHours":"2.5","totalUnits":10}`)

	w := s.do(t, http.MethodGet, "/api/v1/exams", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list: %d", w.Code)
	}
	var resp struct {
		Data []struct {
			ID         string  `json:"id"`
			Subject    string  `json:"subject"`
			ExamDate   string  `json:"examDate"`
			DailyHours float64 `json:"dailyHours"`
			TotalUnits int     `json:"totalUnits"`
			CreatedAt  string  `json:"createdAt"`
		} `json:"data"`
	}
	decode(t, w, &resp)
	if len(resp.Data) != 1 {
		t.Fatalf("expected 1 exam, got %d", len(resp.Data))
	}
	e := resp.Data[0]
	if e.ID != id || e.Subject != "Physics" || e.ExamDate != "2025-03-20" || e.DailyHours != 2.5 || e.TotalUnits != 10 || e.CreatedAt != "2025-03-10" {
		t.Fatalf("unexpected exam %+v", e)
	}
}

func TestCreateExamValidation(t *testing.T) {
	s := newTestServer(t)
	bodies := []string{
		`{"subject":"X","examDate":"2025-02-30","dailyHours":1,"totalUnits":1}`,
		`{"subject":"X","examDate":"2025-03-20","dailyHours":0,"totalUnits":1}`,
		`{"subject":"X","examDate":"2025-03-20","dailyHours":1,"totalUnits":"many"}`,
		`{"subject":"X","examDate":"2025-03-20"}`,
		`{"subject":"X","examDate":"2025-03-20","dailyHours":1,"totalUnits":1000000000000}`,
		`not json`,
	}
	for _, body := range bodies {
		if w := s.do(t, http.MethodPost, "/api/v1/exams", body); w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d %s", body, w.Code, w.Body.String())
		}
	}
}

func TestProgressFlow(t *testing.T) {
	s := newTestServer(t)
	id := s.createExam(t, `{"subject":"Chemistry","examDate":"2025-03-15","dailyHours":3,"totalUnits":10}`)

	w := s.do(t, http.MethodGet, "/api/v1/exams/"+id+"/progress", "")
	if w.Code != http.StatusOK {
		t.Fatalf("get progress: %d", w.Code)
	}
	var empty struct {
		CompletedUnits []int   `json:"completedUnits"`
		LastUpdated    *string `json:"lastUpdated"`
	}
	decode(t, w, &empty)
	if len(empty.CompletedUnits) != 0 || empty.LastUpdated != nil {
		t.Fatalf("expected empty progress, got %+v", empty)
	}

	w = s.do(t, http.MethodPost, "/api/v1/exams/"+id+"/progress", `{"units":[1,2]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("track: %d %s", w.Code, w.Body.String())
	}
	var tracked struct {
		CompletedUnits []int `json:"completedUnits"`
		Invalid        bool  `json:"invalid"`
		Summary        struct {
			Percentage float64 `json:"percentage"`
		} `json:"summary"`
	}
	decode(t, w, &tracked)
	if len(tracked.CompletedUnits) != 2 || tracked.Summary.Percentage != 20 || tracked.Invalid {
		t.Fatalf("unexpected tracked %+v", tracked)
	}

	w = s.do(t, http.MethodPost, "/api/v1/exams/"+id+"/progress", `{"units":"3,x"}`)
	decode(t, w, &tracked)
	if !tracked.Invalid || len(tracked.CompletedUnits) != 2 {
		t.Fatalf("expected rejected input, got %+v", tracked)
	}

	w = s.do(t, http.MethodGet, "/api/v1/suggestions", "")
	var plan struct {
		Data []struct {
			NextUnit   int `json:"nextUnit"`
			ReviewUnit int `json:"reviewUnit"`
		} `json:"data"`
	}
	decode(t, w, &plan)
	if len(plan.Data) != 1 || plan.Data[0].NextUnit != 3 || plan.Data[0].ReviewUnit != 2 {
		t.Fatalf("unexpected plan %s", w.Body.String())
	}
}

func TestUnknownExamIs404(t *testing.T) {
	s := newTestServer(t)
	if w := s.do(t, http.MethodGet, "/api/v1/exams/nope/progress", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if w := s.do(t, http.MethodPost, "/api/v1/exams/nope/progress", `{"units":"all"}`); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestCountdown(t *testing.T) {
	s := newTestServer(t)
	s.createExam(t, `{"subject":"Past","examDate":"2025-03-01","dailyHours":1,"totalUnits":2}`)

	w := s.do(t, http.MethodGet, "/api/v1/countdown", "")
	var resp struct {
		Data []struct {
			DaysLeft int  `json:"daysLeft"`
			Passed   bool `json:"passed"`
		} `json:"data"`
	}
	decode(t, w, &resp)
	if len(resp.Data) != 1 || resp.Data[0].DaysLeft != -9 || !resp.Data[0].Passed {
		t.Fatalf("unexpected countdown %s", w.Body.String())
	}

	w = s.do(t, http.MethodGet, "/api/v1/suggestions", "")
	var plan struct {
		Data     []any `json:"data"`
		Excluded []any `json:"excluded"`
	}
	decode(t, w, &plan)
	if len(plan.Data) != 0 || len(plan.Excluded) != 1 {
		t.Fatalf("unexpected plan %s", w.Body.String())
	}
}

func TestReportDownloadAndExport(t *testing.T) {
	s := newTestServer(t)
	s.createExam(t, `{"subject":"Physics","examDate":"2025-03-20","dailyHours":2.5,"totalUnits":10}`)

	w := s.do(t, http.MethodGet, "/api/v1/report", "")
	if w.Code != http.StatusOK {
		t.Fatalf("report: %d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "study_plan_2025-03-10.csv") {
		t.Fatalf("unexpected disposition %q", cd)
	}
	if !strings.HasPrefix(w.Body.String(), "Subject,Exam_Date,Days_Left,Total_Units,Completed_Units,Progress_%,Daily_Hours\r\n") {
		t.Fatalf("unexpected csv %q", w.Body.String())
	}

	w = s.do(t, http.MethodPost, "/api/v1/report/export", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("export: %d %s", w.Code, w.Body.String())
	}
	if _, err := os.Stat(filepath.Join(s.cfg.ExportDir, "study_plan_2025-03-10.csv")); err != nil {
		t.Fatalf("expected exported file: %v", err)
	}
}

func TestCorruptStoreIs500(t *testing.T) {
	s := newTestServer(t)
	if err := os.WriteFile(s.paths.ExamStorePath, []byte("[oops"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	w := s.do(t, http.MethodGet, "/api/v1/exams", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var body struct {
		Kind string `json:"kind"`
	}
	decode(t, w, &body)
	if body.Kind != "storage_corrupt" {
		t.Fatalf("unexpected kind %q", body.Kind)
	}
}

func TestWebsocketUnavailableWithoutHub(t *testing.T) {
	s := newTestServer(t)
	if w := s.do(t, http.MethodGet, "/ws/progress", ""); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}
