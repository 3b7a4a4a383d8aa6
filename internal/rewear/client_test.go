package rewear

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDoAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	if _, err := c.WithToken("tok-123").Status(context.Background()); err != nil {
		t.Fatalf("Status: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok-123")
	}

	if _, err := c.Status(context.Background()); err != nil {
		t.Fatalf("Status (anonymous): %v", err)
	}
	if gotAuth != "" {
		t.Errorf("anonymous client sent Authorization = %q", gotAuth)
	}
}

func TestLoginSendsOAuth2Form(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/auth/login" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("Content-Type = %q", ct)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm: %v", err)
		}
		if r.PostForm.Get("username") != "alice" || r.PostForm.Get("password") != "secret123" {
			t.Errorf("credentials = %q/%q", r.PostForm.Get("username"), r.PostForm.Get("password"))
		}
		if r.PostForm.Get("grant_type") != "password" {
			t.Errorf("grant_type = %q", r.PostForm.Get("grant_type"))
		}
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "jwt-abc",
			"token_type":   "bearer",
		})
	}))
	defer srv.Close()

	tok, err := New(srv.URL).Login(context.Background(), "alice", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if tok.AccessToken != "jwt-abc" {
		t.Errorf("AccessToken = %q", tok.AccessToken)
	}
}

func TestParseAPIErrorStringDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "Incorrect username or password"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Login(context.Background(), "alice", "wrong")
	var herr *HTTPError
	if !errors.As(err, &herr) {
		t.Fatalf("err = %T, want *HTTPError", err)
	}
	if herr.Status != http.StatusUnauthorized {
		t.Errorf("Status = %d", herr.Status)
	}
	if herr.Message != "Incorrect username or password" {
		t.Errorf("Message = %q", herr.Message)
	}
}

func TestParseAPIErrorValidationList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail": [
			{"loc": ["body", "email"], "msg": "value is not a valid email address"},
			{"loc": ["body", "profile", "city"], "msg": "field required"}
		]}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Register(context.Background(), RegisterRequest{})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %T, want *ValidationError", err)
	}
	if len(verr.Fields) != 2 {
		t.Fatalf("Fields = %v", verr.Fields)
	}
	// Ведущий сегмент body отбрасывается, вложенность склеивается точкой
	if verr.Fields[0].Field != "email" {
		t.Errorf("Fields[0].Field = %q", verr.Fields[0].Field)
	}
	if verr.Fields[1].Field != "profile.city" {
		t.Errorf("Fields[1].Field = %q", verr.Fields[1].Field)
	}
	want := "email: value is not a valid email address, profile.city: field required"
	if verr.Error() != want {
		t.Errorf("Error() = %q, want %q", verr.Error(), want)
	}
}

func TestParseAPIErrorUnreadableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).GetItem(context.Background(), 42)
	var herr *HTTPError
	if !errors.As(err, &herr) {
		t.Fatalf("err = %T, want *HTTPError", err)
	}
	if herr.Message != "404 Not Found" {
		t.Errorf("Message = %q", herr.Message)
	}
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // соединение будет отклонено

	_, err := New(srv.URL).Status(context.Background())
	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("err = %T, want *TransportError", err)
	}
	if terr.Unwrap() == nil {
		t.Error("Unwrap() = nil")
	}
}

func TestRawMessagePassthrough(t *testing.T) {
	const body = `{"status":"ok","uptime":123,"nested":{"a":[1,2,3]}}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer srv.Close()

	raw, err := New(srv.URL).Status(context.Background())
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if string(raw) != body {
		t.Errorf("raw = %s, want %s", raw, body)
	}
}

func TestUploadRejectsTooManyFiles(t *testing.T) {
	files := make([]File, MaxUploadFiles+1)
	_, err := New("http://127.0.0.1:1").UploadImages(context.Background(), files)
	if !errors.Is(err, ErrTooManyFiles) {
		t.Fatalf("err = %v, want ErrTooManyFiles", err)
	}
}
