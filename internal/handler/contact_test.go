package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pixelsmith/contactrelay/internal/config"
	"github.com/pixelsmith/contactrelay/internal/email"
	"github.com/pixelsmith/contactrelay/internal/handler"
	"github.com/pixelsmith/contactrelay/internal/logger"
	"github.com/pixelsmith/contactrelay/internal/middleware"
	"github.com/pixelsmith/contactrelay/internal/router"
	"github.com/pixelsmith/contactrelay/internal/service"
)

const ownerInbox = "hello@pixelsmith.dev"

type senderMock struct {
	VerifyFunc func(ctx context.Context) error
	SendFunc   func(ctx context.Context, msg email.Message) error

	sent []email.Message
}

func (m *senderMock) Verify(ctx context.Context) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx)
	}
	return nil
}

func (m *senderMock) Send(ctx context.Context, msg email.Message) error {
	m.sent = append(m.sent, msg)
	if m.SendFunc != nil {
		return m.SendFunc(ctx, msg)
	}
	return nil
}

func testConfig(environment string) *config.Config {
	return &config.Config{
		Environment: environment,
		Contact: config.ContactConfig{
			OwnerEmail: ownerInbox,
			AppName:    "Pixelsmith",
		},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"http://localhost:3000"},
		},
	}
}

func newTestServer(sender email.Sender, cfg *config.Config) http.Handler {
	log := logger.New("error", "json")
	svc := service.NewContactService(nil, sender, cfg, log)
	h := handler.New(nil, log, cfg, svc)
	mw := middleware.New(nil, log, cfg)
	return router.New(h, mw, cfg)
}

func postContact(t *testing.T, srv http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)
	return rr
}

func TestSubmitContactValidation(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantStatus  int
		wantErrText string
	}{
		{
			name:        "missing name",
			body:        `{"fullName":"","email":"jane@example.com","message":"hi"}`,
			wantStatus:  http.StatusBadRequest,
			wantErrText: "Full name is required",
		},
		{
			name:        "missing email",
			body:        `{"fullName":"Jane","email":"","message":"hi"}`,
			wantStatus:  http.StatusBadRequest,
			wantErrText: "Email is required",
		},
		{
			name:        "missing message",
			body:        `{"fullName":"Jane","email":"jane@example.com","message":""}`,
			wantStatus:  http.StatusBadRequest,
			wantErrText: "Message is required",
		},
		{
			name:        "invalid email format",
			body:        `{"fullName":"Jane","email":"not-an-email","message":"hi"}`,
			wantStatus:  http.StatusBadRequest,
			wantErrText: "valid email address",
		},
		{
			name:        "malformed body",
			body:        `{"fullName":`,
			wantStatus:  http.StatusBadRequest,
			wantErrText: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &senderMock{}
			srv := newTestServer(sender, testConfig("development"))

			rr := postContact(t, srv, tt.body)

			if rr.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d, body %s", rr.Code, tt.wantStatus, rr.Body.String())
			}
			var resp struct {
				Error string `json:"error"`
			}
			if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid error JSON: %v", err)
			}
			if !strings.Contains(resp.Error, tt.wantErrText) {
				t.Errorf("error = %q, want it to contain %q", resp.Error, tt.wantErrText)
			}
			if len(sender.sent) != 0 {
				t.Errorf("expected zero emails, got %d", len(sender.sent))
			}
		})
	}
}

func TestSubmitContactSuccess(t *testing.T) {
	sender := &senderMock{}
	srv := newTestServer(sender, testConfig("development"))

	rr := postContact(t, srv, `{"fullName":"Jane Doe","email":"jane@example.com","companyName":"Acme","contactNumber":"555-1234","message":"Need a quote"}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rr.Code, rr.Body.String())
	}
	if got := strings.TrimSpace(rr.Body.String()); got != `{"message":"Email sent successfully!"}` {
		t.Errorf("body = %s, want the literal success message", got)
	}

	if len(sender.sent) != 2 {
		t.Fatalf("expected 2 emails, got %d", len(sender.sent))
	}

	owner := sender.sent[0]
	if owner.To != ownerInbox {
		t.Errorf("owner email To = %q, want %q", owner.To, ownerInbox)
	}
	for _, want := range []string{"Jane Doe", "jane@example.com", "Acme", "555-1234", "Need a quote"} {
		if !strings.Contains(owner.HTMLBody, want) {
			t.Errorf("owner HTML body missing %q", want)
		}
	}

	reply := sender.sent[1]
	if reply.To != "jane@example.com" {
		t.Errorf("auto-reply To = %q, want submitter address", reply.To)
	}
	if !strings.Contains(reply.HTMLBody, "Jane Doe") {
		t.Errorf("auto-reply HTML body missing submitter name")
	}
}

func TestSubmitContactTransportFailures(t *testing.T) {
	tests := []struct {
		name        string
		sender      *senderMock
		wantErrText string
		wantSends   int
	}{
		{
			name: "verify auth failure",
			sender: &senderMock{
				VerifyFunc: func(ctx context.Context) error { return email.ErrAuthFailed },
			},
			wantErrText: "authentication failed",
			wantSends:   0,
		},
		{
			name: "verify network failure",
			sender: &senderMock{
				VerifyFunc: func(ctx context.Context) error { return email.ErrUnreachable },
			},
			wantErrText: "unreachable",
			wantSends:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(tt.sender, testConfig("development"))

			rr := postContact(t, srv, `{"fullName":"Jane","email":"jane@example.com","message":"hi"}`)

			if rr.Code != http.StatusInternalServerError {
				t.Fatalf("status = %d, want 500", rr.Code)
			}
			var resp struct {
				Error string `json:"error"`
			}
			if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid error JSON: %v", err)
			}
			if !strings.Contains(resp.Error, tt.wantErrText) {
				t.Errorf("error = %q, want it to contain %q", resp.Error, tt.wantErrText)
			}
			// Transport errors must read differently from validation errors
			if strings.Contains(resp.Error, "required") {
				t.Errorf("transport error %q reads like a validation error", resp.Error)
			}
			if len(tt.sender.sent) != tt.wantSends {
				t.Errorf("expected %d sends, got %d", tt.wantSends, len(tt.sender.sent))
			}
		})
	}
}

func TestSubmitContactOwnerSendFailureStopsAutoReply(t *testing.T) {
	sender := &senderMock{}
	sender.SendFunc = func(ctx context.Context, msg email.Message) error {
		if len(sender.sent) == 1 {
			return email.ErrUnreachable
		}
		return nil
	}
	srv := newTestServer(sender, testConfig("development"))

	rr := postContact(t, srv, `{"fullName":"Jane","email":"jane@example.com","message":"hi"}`)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("auto-reply must not be attempted, got %d sends", len(sender.sent))
	}
}

func TestErrorDetailsHiddenInProduction(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		wantDetails bool
	}{
		{name: "development exposes details", environment: "development", wantDetails: true},
		{name: "production hides details", environment: "production", wantDetails: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &senderMock{
				VerifyFunc: func(ctx context.Context) error { return email.ErrUnreachable },
			}
			srv := newTestServer(sender, testConfig(tt.environment))

			rr := postContact(t, srv, `{"fullName":"Jane","email":"jane@example.com","message":"hi"}`)

			var resp map[string]interface{}
			if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid error JSON: %v", err)
			}
			_, hasDetails := resp["details"]
			if hasDetails != tt.wantDetails {
				t.Errorf("details present = %v, want %v", hasDetails, tt.wantDetails)
			}
		})
	}
}

func TestSubmitContactDuplicateSubmissions(t *testing.T) {
	sender := &senderMock{}
	srv := newTestServer(sender, testConfig("development"))

	body := `{"fullName":"Jane","email":"jane@example.com","message":"hi"}`
	for i := 0; i < 2; i++ {
		rr := postContact(t, srv, body)
		if rr.Code != http.StatusOK {
			t.Fatalf("submit %d: status = %d, want 200", i+1, rr.Code)
		}
	}

	// No dedup layer configured, so duplicates produce duplicate emails
	if len(sender.sent) != 4 {
		t.Fatalf("expected 4 emails for two identical submissions, got %d", len(sender.sent))
	}
}
