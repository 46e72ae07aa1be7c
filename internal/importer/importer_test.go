package importer

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRawURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{
			in:   "https://github.com/kovidgoyal/kitty/blob/master/kitty.conf",
			want: "https://raw.githubusercontent.com/kovidgoyal/kitty/master/kitty.conf",
		},
		{
			in:   "https://github.com/u/dotfiles/blob/main/.config/kitty/kitty.conf",
			want: "https://raw.githubusercontent.com/u/dotfiles/main/.config/kitty/kitty.conf",
		},
		{
			in:   "https://raw.githubusercontent.com/u/r/main/kitty.conf",
			want: "https://raw.githubusercontent.com/u/r/main/kitty.conf",
		},
		{in: "https://github.com/u/r", wantErr: true},
		{in: "https://github.com/u/r/tree/main/kitty.conf", wantErr: true},
		{in: "https://gitlab.com/u/r/-/blob/main/kitty.conf", wantErr: true},
		{in: "ftp://github.com/u/r/blob/main/kitty.conf", wantErr: true},
		{in: "not a url", wantErr: true},
	}

	for _, tt := range tests {
		got, err := RawURL(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnsupportedURL) {
				t.Errorf("RawURL(%q) error = %v, want ErrUnsupportedURL", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("RawURL(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("RawURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestClient_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != "kittyconf-test" {
			t.Errorf("User-Agent = %q", ua)
		}
		switch r.URL.Path {
		case "/ok":
			_, _ = w.Write([]byte("font_size 14\n"))
		case "/big":
			_, _ = w.Write([]byte(strings.Repeat("#", maxConfigBytes+1)))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := New(WithHTTPClient(srv.Client()), WithUserAgent("kittyconf-test"), WithoutRewrite())
	ctx := context.Background()

	text, err := c.Fetch(ctx, srv.URL+"/ok")
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if text != "font_size 14\n" {
		t.Errorf("Fetch = %q", text)
	}

	_, err = c.Fetch(ctx, srv.URL+"/missing")
	var serr *StatusError
	if !errors.As(err, &serr) || serr.StatusCode != http.StatusNotFound {
		t.Errorf("Fetch(missing) error = %v, want 404 StatusError", err)
	}

	if _, err := c.Fetch(ctx, srv.URL+"/big"); !errors.Is(err, ErrTooLarge) {
		t.Errorf("Fetch(big) error = %v, want ErrTooLarge", err)
	}
}

func TestClient_FetchRejectsNonGitHub(t *testing.T) {
	c := New()
	if _, err := c.Fetch(context.Background(), "https://example.com/kitty.conf"); !errors.Is(err, ErrUnsupportedURL) {
		t.Errorf("Fetch error = %v, want ErrUnsupportedURL", err)
	}
}
