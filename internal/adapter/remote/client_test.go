package remote

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"crefinso-portal/internal/domain/payment"
	"crefinso-portal/pkg/dateonly"
)

// staticTokens is a TokenSource that always returns the same token.
type staticTokens string

func (s staticTokens) Token(ctx context.Context) (string, error) { return string(s), nil }

type failingTokens struct{ err error }

func (f failingTokens) Token(ctx context.Context) (string, error) { return "", f.err }

func newTestClient(t *testing.T, handler http.Handler, tokens TokenSource) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, tokens), srv
}

func TestGetJSON_AttachesBearerPerRequest(t *testing.T) {
	var gotAuth atomic.Value
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth.Store(r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}), staticTokens("tok-123"))

	var out []payment.Payment
	if err := c.getJSON(context.Background(), "/api/pagos", &out); err != nil {
		t.Fatalf("getJSON err: %v", err)
	}
	if got := gotAuth.Load(); got != "Bearer tok-123" {
		t.Fatalf("Authorization = %q, want %q", got, "Bearer tok-123")
	}
}

func TestGetJSON_MissingToken_NoNetworkCall(t *testing.T) {
	var calls atomic.Int64
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}), staticTokens(""))

	err := c.getJSON(context.Background(), "/api/pagos", &[]payment.Payment{})
	if !IsUnauthenticated(err) {
		t.Fatalf("kind = %v, want unauthenticated (err=%v)", KindOf(err), err)
	}
	if n := calls.Load(); n != 0 {
		t.Fatalf("server saw %d calls, want 0", n)
	}
}

func TestGetJSON_TokenSourceError_IsUnauthenticated(t *testing.T) {
	cause := errors.New("session store down")
	c, _ := newTestClient(t, http.NotFoundHandler(), failingTokens{err: cause})

	err := c.getJSON(context.Background(), "/api/pagos", &[]payment.Payment{})
	if !IsUnauthenticated(err) {
		t.Fatalf("kind = %v, want unauthenticated", KindOf(err))
	}
	if !errors.Is(err, cause) {
		t.Fatalf("cause not preserved: %v", err)
	}
}

func TestGetJSON_NonSuccess_IsRemoteRejectedWithStatusAndBody(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}), staticTokens("tok"))

	err := c.getJSON(context.Background(), "/api/prestamos", &struct{}{})
	var re *Error
	if !errors.As(err, &re) || re.Kind != KindRemoteRejected {
		t.Fatalf("err = %v, want remote rejected", err)
	}
	if re.Status != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", re.Status)
	}
	if re.Body != "boom\n" {
		t.Fatalf("body = %q", re.Body)
	}
}

func TestGetJSON_MalformedBody_IsDeserialization(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"pagoId": "not-a-number"`))
	}), staticTokens("tok"))

	err := c.getJSON(context.Background(), "/api/pagos/1", &payment.Payment{})
	if KindOf(err) != KindDeserialization {
		t.Fatalf("kind = %v, want deserialization (err=%v)", KindOf(err), err)
	}
}

func TestSend_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close() // connection refused from here on

	c := New(url, 2*time.Second, staticTokens("tok"))
	err := c.send(context.Background(), http.MethodPost, "/api/pagos/procesar-automaticos", nil)
	if KindOf(err) != KindTransport {
		t.Fatalf("kind = %v, want transport (err=%v)", KindOf(err), err)
	}
}

func TestGetJSON_DeadlineExceeded_IsTimeout(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}), staticTokens("tok"))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := c.getJSON(ctx, "/api/pagos", &[]payment.Payment{})
	if !IsTimeout(err) {
		t.Fatalf("kind = %v, want timeout (err=%v)", KindOf(err), err)
	}
}

func TestListByDateRange_QueryParams(t *testing.T) {
	var gotQuery atomic.Value
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery.Store(r.URL.RawQuery)
		_, _ = w.Write([]byte(`[]`))
	}), staticTokens("tok"))

	svc := NewPaymentService(c)
	start := dateonly.New(2024, time.January, 1)
	end := dateonly.New(2024, time.January, 7)
	if _, err := svc.ListByDateRange(context.Background(), start, end); err != nil {
		t.Fatalf("ListByDateRange err: %v", err)
	}
	if q := gotQuery.Load(); q != "endDate=2024-01-07&startDate=2024-01-01" {
		t.Fatalf("query = %q", q)
	}
}

func TestLogin_DoesNotRequireToken(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/users/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected call %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "" {
			t.Errorf("login must not carry Authorization")
		}
		_, _ = w.Write([]byte(`{"token":"t","username":"ana","role":"Administrador","name":"Ana"}`))
	}), staticTokens(""))

	res, err := NewAuthService(c).Login(context.Background(), Credentials{UserName: "ana", UserPassword: "pw"})
	if err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if res.Token != "t" || res.Role != "Administrador" {
		t.Fatalf("unexpected result: %+v", res)
	}
}
