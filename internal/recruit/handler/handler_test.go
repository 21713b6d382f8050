package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/lifewood/careers-backend/internal/mailer"
	"github.com/lifewood/careers-backend/internal/recruit"
	"github.com/lifewood/careers-backend/internal/recruit/repository"
	"github.com/lifewood/careers-backend/internal/recruit/service"
)

type fakeResumeStore struct {
	keys    []string
	failPut bool
}

func (f *fakeResumeStore) UploadFile(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	if f.failPut {
		return fmt.Errorf("bucket unavailable")
	}
	f.keys = append(f.keys, key)
	return nil
}

func (f *fakeResumeStore) PublicURL(key string) string {
	return "http://storage.test/resumes-bucket/" + key
}

type fakeNotifier struct {
	sent    []mailer.Notification
	outcome mailer.Outcome
}

func (f *fakeNotifier) Send(ctx context.Context, n mailer.Notification) mailer.Outcome {
	f.sent = append(f.sent, n)
	return f.outcome
}

type testEnv struct {
	router   *gin.Engine
	apps     *repository.MemoryApplicationRepo
	resumes  *fakeResumeStore
	notifier *fakeNotifier
	svc      *service.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	apps := repository.NewMemoryApplicationRepo()
	inquiries := repository.NewMemoryInquiryRepo()
	positions := repository.NewMemoryPositionRepo()
	svc := service.New(apps, inquiries, positions)

	resumes := &fakeResumeStore{}
	notifier := &fakeNotifier{outcome: mailer.Outcome{Sent: true, Message: "Status updated and email sent."}}

	h := New(svc, resumes, notifier, nil)
	router := gin.New()
	h.RegisterPublic(router)
	// pass-through guard, the middleware itself is tested separately
	h.RegisterAdmin(router, func(c *gin.Context) {
		c.Set("claims", map[string]interface{}{"sub": "staff-1", "email": "hr@lifewood.com"})
		c.Next()
	})

	return &testEnv{router: router, apps: apps, resumes: resumes, notifier: notifier, svc: svc}
}

func (e *testEnv) do(t *testing.T, method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) doJSON(t *testing.T, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(payload)
	require.NoError(t, err)
	return e.do(t, method, path, bytes.NewReader(b), "application/json")
}

func applyBody(t *testing.T, fields map[string]string, resumeName string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if resumeName != "" {
		fw, err := w.CreateFormFile("resumeFile", resumeName)
		require.NoError(t, err)
		_, err = fw.Write([]byte("%PDF-1.4 test resume"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func validApplyFields() map[string]string {
	return map[string]string{
		"firstName": "Maria",
		"lastName":  "Santos",
		"email":     "maria@example.com",
		"position":  "Data Annotator",
		"age":       "27",
		"degree":    "BS Information Technology",
	}
}

func TestApplyMissingRequiredField(t *testing.T) {
	env := newTestEnv(t)

	fields := validApplyFields()
	delete(fields, "email")
	body, ct := applyBody(t, fields, "")

	rec := env.do(t, http.MethodPost, "/api/apply", body, ct)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Missing required fields.")

	// nothing persisted, nothing mailed
	apps, err := env.apps.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, apps)
	require.Empty(t, env.notifier.sent)
}

func TestApplyBlankFieldRejected(t *testing.T) {
	env := newTestEnv(t)

	fields := validApplyFields()
	fields["firstName"] = "   "
	body, ct := applyBody(t, fields, "")

	rec := env.do(t, http.MethodPost, "/api/apply", body, ct)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestApplyWithResumeAndExtras(t *testing.T) {
	env := newTestEnv(t)

	fields := validApplyFields()
	fields["portfolioUrl"] = "https://maria.dev"
	body, ct := applyBody(t, fields, "resume.pdf")

	rec := env.do(t, http.MethodPost, "/api/apply", body, ct)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), "Application submitted successfully.")

	apps, err := env.apps.List(context.Background())
	require.NoError(t, err)
	require.Len(t, apps, 1)
	app := apps[0]
	require.Equal(t, "Maria", app.FirstName)
	require.False(t, app.Viewed)
	require.False(t, app.SubmittedAt.IsZero())
	require.Equal(t, "https://maria.dev", app.Extra["portfolioUrl"])

	require.Len(t, env.resumes.keys, 1)
	key := env.resumes.keys[0]
	require.True(t, strings.HasPrefix(key, "resumes/Santos_Maria_"), "key %q", key)
	require.True(t, strings.HasSuffix(key, "_resume.pdf"), "key %q", key)
	require.Equal(t, env.resumes.PublicURL(key), app.UploadedResumeURL)

	// intake confirmation goes out once
	require.Len(t, env.notifier.sent, 1)
	require.Equal(t, recruit.StatusReceived, env.notifier.sent[0].Status)
	require.Equal(t, "maria@example.com", env.notifier.sent[0].Recipient)
}

func TestApplyWithoutResume(t *testing.T) {
	env := newTestEnv(t)

	body, ct := applyBody(t, validApplyFields(), "")
	rec := env.do(t, http.MethodPost, "/api/apply", body, ct)
	require.Equal(t, http.StatusCreated, rec.Code)

	apps, err := env.apps.List(context.Background())
	require.NoError(t, err)
	require.Len(t, apps, 1)
	require.Empty(t, apps[0].UploadedResumeURL)
	require.Empty(t, env.resumes.keys)
}

func TestApplyUploadFailureRejectsIntake(t *testing.T) {
	env := newTestEnv(t)
	env.resumes.failPut = true

	body, ct := applyBody(t, validApplyFields(), "resume.pdf")
	rec := env.do(t, http.MethodPost, "/api/apply", body, ct)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	apps, err := env.apps.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, apps)
}

func TestSubmitInquiry(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(t, http.MethodPost, "/api/inquiries", gin.H{
		"name": "Jun", "email": "jun@example.com", "message": "Are remote roles open?",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), "Inquiry submitted successfully!")

	rec = env.doJSON(t, http.MethodPost, "/api/inquiries", gin.H{"name": "Jun"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListPositionsPublic(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.AddPosition(context.Background(), map[string]any{"title": "QA Lead", "location": "Manila"})
	require.NoError(t, err)

	rec := env.do(t, http.MethodGet, "/api/positions", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []recruit.Position
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, "QA Lead", got[0].Title)
}

func seedApplication(t *testing.T, env *testEnv) string {
	t.Helper()
	id, err := env.svc.SubmitApplication(context.Background(), &recruit.Application{
		FirstName: "Maria", LastName: "Santos",
		Email: "maria@example.com", Position: "Data Annotator",
		Age: "27", Degree: "BS Information Technology",
	})
	require.NoError(t, err)
	return id
}

func TestUpdateApplicationDropsUnknownFields(t *testing.T) {
	env := newTestEnv(t)
	id := seedApplication(t, env)

	rec := env.doJSON(t, http.MethodPut, "/api/application/"+id, gin.H{
		"notes": "strong portfolio",
		"email": "attacker@example.com",
		"_id":   "000000000000000000000000",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Application updated successfully.")

	app, err := env.svc.GetApplication(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, "strong portfolio", app.Notes)
	require.Equal(t, "maria@example.com", app.Email)
	require.Empty(t, env.notifier.sent)
}

func TestUpdateApplicationNoValidFields(t *testing.T) {
	env := newTestEnv(t)
	id := seedApplication(t, env)

	rec := env.doJSON(t, http.MethodPut, "/api/application/"+id, gin.H{"email": "x@y.z"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "No valid fields provided.")
}

func TestUpdateApplicationNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(t, http.MethodPut, "/api/application/aaaaaaaaaaaaaaaaaaaaaaaa", gin.H{"notes": "x"})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateStatusSendsOneEmail(t *testing.T) {
	env := newTestEnv(t)
	id := seedApplication(t, env)

	rec := env.doJSON(t, http.MethodPut, "/api/application/"+id, gin.H{
		"status":             recruit.StatusInterviewScheduled,
		"interviewStartTime": "2026-09-03T14:00",
		"interviewEndTime":   "2026-09-03T15:00",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, env.notifier.sent, 1)
	n := env.notifier.sent[0]
	require.Equal(t, recruit.StatusInterviewScheduled, n.Status)
	require.Equal(t, "maria@example.com", n.Recipient)
	require.Equal(t, "Maria", n.ApplicantName)
	require.Equal(t, "2026-09-03T14:00", n.InterviewStart)

	app, err := env.svc.GetApplication(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, recruit.StatusInterviewScheduled, app.Status)
}

func TestUpdateStatusWithoutRecipientStage(t *testing.T) {
	env := newTestEnv(t)
	id := seedApplication(t, env)

	// resetting back to Received never mails the applicant
	rec := env.doJSON(t, http.MethodPut, "/api/application/"+id, gin.H{"status": recruit.StatusReceived})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Status updated to 'Received'.")
	require.Empty(t, env.notifier.sent)
}

func TestUpdateStatusEmailFailureKeepsWrite(t *testing.T) {
	env := newTestEnv(t)
	env.notifier.outcome = mailer.Outcome{Sent: false, Message: "Status updated, but email failed. Email provider error: timeout"}
	id := seedApplication(t, env)

	rec := env.doJSON(t, http.MethodPut, "/api/application/"+id, gin.H{"status": recruit.StatusHired})
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "email failed")

	// the status change is already committed even though the email was not
	app, err := env.svc.GetApplication(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, recruit.StatusHired, app.Status)
}

func TestGetApplication(t *testing.T) {
	env := newTestEnv(t)
	id := seedApplication(t, env)

	rec := env.do(t, http.MethodGet, "/api/application/"+id, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/application/aaaaaaaaaaaaaaaaaaaaaaaa", nil, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "Application not found.")
}

func TestDeleteApplicationIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	id := seedApplication(t, env)

	rec := env.do(t, http.MethodDelete, "/api/application/"+id, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	// deleting a record that is already gone still succeeds
	rec = env.do(t, http.MethodDelete, "/api/application/"+id, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Application deleted.")
}

func TestMarkApplicationsReadIdempotent(t *testing.T) {
	env := newTestEnv(t)
	seedApplication(t, env)
	seedApplication(t, env)

	rec := env.do(t, http.MethodPost, "/api/applications/mark-as-read", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	apps, err := env.apps.List(context.Background())
	require.NoError(t, err)
	for _, a := range apps {
		require.True(t, a.Viewed)
	}

	// second pass is a no-op but still reports success
	rec = env.do(t, http.MethodPost, "/api/applications/mark-as-read", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "All new applications marked as read.")
}

func TestApplicationTrendsShape(t *testing.T) {
	env := newTestEnv(t)
	seedApplication(t, env)

	rec := env.do(t, http.MethodGet, "/api/analytics/application-trends", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var report service.TrendReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	require.Len(t, report.Labels, 7)
	require.Len(t, report.Datasets, 4)
	for _, ds := range report.Datasets {
		require.Len(t, ds.Data, 7)
	}
}

func TestPositionLifecycle(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(t, http.MethodPost, "/api/positions", gin.H{"title": "ML Engineer", "type": "Full-time"})
	require.Equal(t, http.StatusCreated, rec.Code)

	positions, err := env.svc.ListPositions(context.Background())
	require.NoError(t, err)
	require.Len(t, positions, 1)

	rec = env.do(t, http.MethodDelete, "/api/positions/"+positions[0].ID.Hex(), nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	positions, err = env.svc.ListPositions(context.Background())
	require.NoError(t, err)
	require.Empty(t, positions)
}

func TestInquiryAdminFlow(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.SubmitInquiry(context.Background(), &recruit.Inquiry{
		Name: "Jun", Email: "jun@example.com", Message: "hello",
	})
	require.NoError(t, err)

	rec := env.do(t, http.MethodGet, "/api/inquiries", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var inquiries []recruit.Inquiry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &inquiries))
	require.Len(t, inquiries, 1)

	rec = env.do(t, http.MethodPost, "/api/inquiries/mark-as-read", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/inquiries/"+inquiries[0].ID.Hex(), nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Inquiry deleted.")
}

func TestMeReturnsClaimsWithoutStaffStore(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/me", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "staff-1", body["claims"]["sub"])
}
