package suggest_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/calbers/startpage/internal/suggest"
)

func TestParse(t *testing.T) {
	body := []byte(`["go tut",["go tutorial","go tutorial for beginners","go tui"],[],{}]`)

	got, err := suggest.Parse(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"go tutorial", "go tutorial for beginners", "go tui"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestParse_NoSuggestions(t *testing.T) {
	got, err := suggest.Parse([]byte(`["zzqqx",[]]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no suggestions, got %v", got)
	}
}

func TestParse_BadShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `<html>nope</html>`},
		{"not an array", `{"q":"x"}`},
		{"too short", `["only query"]`},
		{"second element not strings", `["q", 42]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := suggest.Parse([]byte(tt.body)); err == nil {
				t.Error("expected parse error")
			}
		})
	}
}

func TestClient_Fetch(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Write([]byte(`["go",["golang","go playground"]]`))
	}))
	defer srv.Close()

	c := suggest.NewClient(srv.URL + "/?client=firefox&q=")
	got, err := c.Fetch(context.Background(), "go routines")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotQuery != "go routines" {
		t.Errorf("expected query passed url-encoded, got %q", gotQuery)
	}
	want := []string{"golang", "go playground"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestClient_FetchEmptyQuery(t *testing.T) {
	c := suggest.NewClient("http://unused.test/?q=")

	_, err := c.Fetch(context.Background(), "")
	if !errors.Is(err, suggest.ErrEmptyQuery) {
		t.Errorf("expected ErrEmptyQuery, got %v", err)
	}
}

func TestClient_FetchUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := suggest.NewClient(srv.URL + "/?q=")
	if _, err := c.Fetch(context.Background(), "go"); err == nil {
		t.Error("expected error for non-200 response")
	}
}

func TestClient_FetchCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := suggest.NewClient(srv.URL + "/?q=")
	if _, err := c.Fetch(ctx, "go"); err == nil {
		t.Error("expected error for cancelled context")
	}
}
