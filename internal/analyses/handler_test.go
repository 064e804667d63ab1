package analyses_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-match/internal/bootstrap"
	"resume-match/internal/shared/config"
)

const sampleResume = `Jane Doe
jane@example.com

Summary
Led backend teams of 10 engineers.

Experience
- Increased sales by 20% using Python and SQL

Education
B.S. Computer Science, State University, 2019

Skills
Python, SQL
`

func buildTestApp(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		LocalStoreDir:   t.TempDir(),
		Env:             "dev",
		ObjectStoreType: "local",
	}
	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func postAnalysis(t *testing.T, router *gin.Engine, guestID, fileName, contents, jobDescription string) *httptest.ResponseRecorder {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fw, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte(contents)); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if jobDescription != "" {
		if err := writer.WriteField("job_description", jobDescription); err != nil {
			t.Fatalf("write job description: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-Guest-Id", guestID)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestAnalyzeUploadReturnsReport(t *testing.T) {
	router := buildTestApp(t)

	resp := postAnalysis(t, router, "guest-1", "resume.txt", sampleResume, "Python, SQL and Java")
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created struct {
		AnalysisID string `json:"analysisId"`
		DocumentID string `json:"documentId"`
		Status     string `json:"status"`
		Report     *struct {
			Overall         int      `json:"overall"`
			Grade           string   `json:"grade"`
			ProfileField    string   `json:"profile_field"`
			MissingKeywords []string `json:"missing_keywords"`
		} `json:"report"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.AnalysisID == "" || created.DocumentID == "" {
		t.Fatalf("expected analysis and document IDs, got %+v", created)
	}
	if created.Status != "completed" {
		t.Fatalf("expected status completed, got %s", created.Status)
	}
	if created.Report == nil {
		t.Fatalf("expected embedded report")
	}
	if created.Report.ProfileField != "custom" {
		t.Fatalf("expected custom profile, got %s", created.Report.ProfileField)
	}
	if created.Report.Grade == "" || created.Report.Overall <= 0 {
		t.Fatalf("expected a graded report, got %+v", created.Report)
	}
	if len(created.Report.MissingKeywords) != 1 || created.Report.MissingKeywords[0] != "java" {
		t.Fatalf("expected missing keyword java, got %v", created.Report.MissingKeywords)
	}

	// The full report is retrievable afterwards.
	reqGet := httptest.NewRequest(http.MethodGet, "/api/v1/analyses/"+created.AnalysisID, nil)
	reqGet.Header.Set("X-Guest-Id", "guest-1")
	respGet := httptest.NewRecorder()
	router.ServeHTTP(respGet, reqGet)
	if respGet.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respGet.Code)
	}
}

func TestAnalyzeUploadFailedExtraction(t *testing.T) {
	router := buildTestApp(t)

	// Starts with the PDF magic bytes so it is stored as application/pdf,
	// but the body is unreadable.
	resp := postAnalysis(t, router, "guest-1", "resume.pdf", "%PDF-1.7\ngarbage", "")
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d: %s", resp.Code, resp.Body.String())
	}

	var failed struct {
		Error struct {
			Code    string `json:"code"`
			Details struct {
				AnalysisID string `json:"analysisId"`
			} `json:"details"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&failed); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if failed.Error.Code != "extraction_failed" {
		t.Fatalf("expected extraction_failed, got %s", failed.Error.Code)
	}
	if failed.Error.Details.AnalysisID == "" {
		t.Fatalf("expected persisted analysis id in details")
	}

	// The failed attempt shows up in history.
	reqList := httptest.NewRequest(http.MethodGet, "/api/v1/analyses", nil)
	reqList.Header.Set("X-Guest-Id", "guest-1")
	respList := httptest.NewRecorder()
	router.ServeHTTP(respList, reqList)
	if respList.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respList.Code)
	}
	var items []struct {
		AnalysisID string `json:"analysisId"`
		Status     string `json:"status"`
	}
	if err := json.NewDecoder(respList.Body).Decode(&items); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(items) != 1 || items[0].Status != "failed" {
		t.Fatalf("expected one failed analysis, got %+v", items)
	}
}

func TestAnalyzeExistingDocument(t *testing.T) {
	router := buildTestApp(t)

	resp := postAnalysis(t, router, "guest-1", "resume.txt", sampleResume, "")
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	var created struct {
		DocumentID string `json:"documentId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	body := bytes.NewBufferString(`{"jobDescription":"Go and Kubernetes"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/"+created.DocumentID+"/analyze", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Guest-Id", "guest-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var rescored struct {
		Report *struct {
			ProfileField    string   `json:"profile_field"`
			MissingKeywords []string `json:"missing_keywords"`
		} `json:"report"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&rescored); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if rescored.Report == nil || rescored.Report.ProfileField != "custom" {
		t.Fatalf("expected custom profile rescore, got %+v", rescored.Report)
	}
	if len(rescored.Report.MissingKeywords) != 2 {
		t.Fatalf("expected go and kubernetes missing, got %v", rescored.Report.MissingKeywords)
	}
}

func TestAnalyzeMissingDocumentIs404(t *testing.T) {
	router := buildTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/does-not-exist/analyze", nil)
	req.Header.Set("X-Guest-Id", "guest-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}
