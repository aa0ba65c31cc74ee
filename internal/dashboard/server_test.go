package dashboard

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func newTestDashboard(t *testing.T) http.Handler {
	t.Helper()
	return NewServer(newTestClient(t), zerolog.Nop()).Routes()
}

func getPage(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func postForm(t *testing.T, h http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestPagesRender(t *testing.T) {
	h := newTestDashboard(t)

	for _, path := range []string{"/", "/patient", "/doctor", "/nurse", "/admin"} {
		rec := getPage(t, h, path)
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s: status %d", path, rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
			t.Errorf("GET %s: content type %q", path, ct)
		}
		if rec.Body.Len() == 0 {
			t.Errorf("GET %s: empty body", path)
		}
	}
}

func TestPatientRegisterForm(t *testing.T) {
	h := newTestDashboard(t)

	rec := postForm(t, h, "/patient/register", url.Values{
		"name":  {"Asha Rao"},
		"email": {"asha@example.com"},
		"age":   {"34"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Patient registered successfully.") {
		t.Fatalf("flash not shown:\n%s", body)
	}
	if !strings.Contains(body, "Patient ID:") {
		t.Fatalf("registered patient id not shown:\n%s", body)
	}

	// The same email again surfaces the backend error on the page.
	rec = postForm(t, h, "/patient/register", url.Values{
		"name":  {"Asha Rao"},
		"email": {"asha@example.com"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "email_taken") {
		t.Fatal("backend error not surfaced")
	}
}

func TestPatientSymptomForm(t *testing.T) {
	h := newTestDashboard(t)

	rec := postForm(t, h, "/patient/symptoms", url.Values{
		"symptoms": {"I have a fever and a cough"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "respiratory infection") {
		t.Fatalf("conditions not rendered:\n%s", rec.Body.String())
	}
}

func TestIntakeChatKeepsTranscript(t *testing.T) {
	h := newTestDashboard(t)

	rec := postForm(t, h, "/patient/chat", url.Values{"message": {"I have had a fever"}})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status %d, want 303", rec.Code)
	}

	var session *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookie {
			session = c
		}
	}
	if session == nil {
		t.Fatal("no session cookie set")
	}

	req := httptest.NewRequest(http.MethodGet, "/patient", nil)
	req.AddCookie(session)
	rec2 := httptest.NewRecorder()
	h.ServeHTTP(rec2, req)

	body := rec2.Body.String()
	if !strings.Contains(body, "I have had a fever") {
		t.Fatalf("transcript missing the user message:\n%s", body)
	}
	if !strings.Contains(body, "How long have you had the fever") {
		t.Fatalf("transcript missing the bot reply:\n%s", body)
	}
}
