package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestPushoverSendsFormFields(t *testing.T) {
	var got map[string]string
	var contentType, method string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		contentType = r.Header.Get("Content-Type")
		if err := r.ParseForm(); err != nil {
			t.Errorf("failed to parse form: %v", err)
		}
		got = map[string]string{
			"token":   r.PostForm.Get("token"),
			"user":    r.PostForm.Get("user"),
			"title":   r.PostForm.Get("title"),
			"message": r.PostForm.Get("message"),
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":1,"request":"abc"}`))
	}))
	defer server.Close()

	p := NewPushover("app-token", "user-key", WithEndpoint(server.URL))
	ok, err := p.Send(context.Background(), UpdateMessage("foo", "2.0"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected success on 200")
	}

	if method != http.MethodPost {
		t.Errorf("expected POST, got %s", method)
	}
	if contentType != "application/x-www-form-urlencoded" {
		t.Errorf("unexpected content type %q", contentType)
	}
	want := map[string]string{
		"token":   "app-token",
		"user":    "user-key",
		"title":   "foo Update Available!",
		"message": "Version 2.0 of FreeBSD package foo is available.",
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("field %s: expected %q, got %q", k, v, got[k])
		}
	}
}

func TestPushoverSuccessIsExactly200(t *testing.T) {
	tests := []struct {
		status int
		want   bool
	}{
		{http.StatusOK, true},
		{http.StatusCreated, false},
		{http.StatusAccepted, false},
		{http.StatusNoContent, false},
		{http.StatusBadRequest, false},
		{http.StatusTooManyRequests, false},
		{http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			p := NewPushover("t", "u", WithEndpoint(server.URL))
			ok, err := p.Send(context.Background(), Message{Title: "x", Body: "y"})
			if err != nil {
				t.Fatalf("non-200 must not be an error, got %v", err)
			}
			if ok != tt.want {
				t.Errorf("status %d: expected %v, got %v", tt.status, tt.want, ok)
			}
		})
	}
}

func TestPushoverTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := server.URL
	server.Close()

	p := NewPushover("t", "u", WithEndpoint(endpoint), WithHTTPClient(&http.Client{}))
	ok, err := p.Send(context.Background(), Message{Title: "x", Body: "y"})
	if err == nil {
		t.Fatal("expected transport error")
	}
	if ok {
		t.Error("transport failure must not report success")
	}
	if !strings.Contains(err.Error(), "pushover") {
		t.Errorf("error should mention pushover: %v", err)
	}
}

func TestUpdateMessage(t *testing.T) {
	msg := UpdateMessage("nginx", "1.26.1")
	if msg.Title != "nginx Update Available!" {
		t.Errorf("unexpected title %q", msg.Title)
	}
	if !strings.Contains(msg.Body, "Version 1.26.1") || !strings.Contains(msg.Body, "nginx") {
		t.Errorf("unexpected body %q", msg.Body)
	}
}

func TestFailFirst(t *testing.T) {
	m := &MockSender{SendFunc: FailFirst(2)}
	var results []bool
	for i := 0; i < 4; i++ {
		ok, _ := m.Send(context.Background(), Message{})
		results = append(results, ok)
	}
	want := []bool{false, false, true, true}
	for i := range want {
		if results[i] != want[i] {
			t.Errorf("call %d: expected %v, got %v", i+1, want[i], results[i])
		}
	}
	if len(m.Sent) != 4 {
		t.Errorf("expected 4 recorded messages, got %d", len(m.Sent))
	}
}
