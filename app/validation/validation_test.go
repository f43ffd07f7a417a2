package validation

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoolean(t *testing.T) {
	truthy := []any{true, 1, float64(1), "true", "True", "t", "T"}
	for _, v := range truthy {
		got, err := Boolean(v)
		assert.NoError(t, err)
		assert.True(t, got, "expected %v to be truthy", v)
	}

	falsy := []any{false, 0, float64(0), "false", "False", "f", "F"}
	for _, v := range falsy {
		got, err := Boolean(v)
		assert.NoError(t, err)
		assert.False(t, got, "expected %v to be falsy", v)
	}

	// Membership is exact: "1" the string is not the number 1, "TRUE" is
	// not in the token set, 2 is not a bool.
	invalid := []any{"maybe", "TRUE", "FALSE", "yes", "no", "1", "0", 2, float64(0.5), nil, []string{"t"}}
	for _, v := range invalid {
		_, err := Boolean(v)
		assert.ErrorIs(t, err, ErrInvalidArgument, "expected %v to be rejected", v)
	}
}

func TestEmail(t *testing.T) {
	valid := []string{
		"a@b.co",
		"jane.doe+tag@example.com",
		"USER_99%x@sub.domain.org",
	}
	for _, addr := range valid {
		assert.Equal(t, addr, Email(addr))
	}

	invalid := []string{
		"not-an-email",
		"a@b@c.co",
		"a@b.c",          // tld too short
		"a@b.abcdefgh",   // tld too long
		"a@b.co extra",   // full match required, not search
		"prefix a@b.co",  // ditto
		"@b.co",
		"a@",
		"",
	}
	for _, addr := range invalid {
		assert.Equal(t, "", Email(addr), "expected %q to be rejected", addr)
	}
}

func TestImageURL(t *testing.T) {
	pngHeader := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13, 'I', 'H', 'D', 'R'}
	gifHeader := []byte("GIF89a")

	mux := http.NewServeMux()
	mux.HandleFunc("/img.png", func(w http.ResponseWriter, r *http.Request) {
		w.Write(pngHeader)
	})
	mux.HandleFunc("/img.gif", func(w http.ResponseWriter, r *http.Request) {
		w.Write(gifHeader)
	})
	mux.HandleFunc("/page.html", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>not an image</body></html>"))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	ctx := context.Background()

	t.Run("detects png by signature", func(t *testing.T) {
		got, err := ImageURL(ctx, srv.URL+"/img.png")
		require.NoError(t, err)
		assert.Equal(t, "png", got)
	})

	t.Run("detects gif by signature", func(t *testing.T) {
		got, err := ImageURL(ctx, srv.URL+"/img.gif")
		require.NoError(t, err)
		assert.Equal(t, "gif", got)
	})

	t.Run("non-image content yields empty type", func(t *testing.T) {
		got, err := ImageURL(ctx, srv.URL+"/page.html")
		require.NoError(t, err)
		assert.Equal(t, "", got)
	})

	t.Run("extension does not matter", func(t *testing.T) {
		// Served as .html path but carrying PNG bytes.
		mux.HandleFunc("/fake.txt", func(w http.ResponseWriter, r *http.Request) {
			w.Write(pngHeader)
		})
		got, err := ImageURL(ctx, srv.URL+"/fake.txt")
		require.NoError(t, err)
		assert.Equal(t, "png", got)
	})

	t.Run("malformed urls", func(t *testing.T) {
		for _, raw := range []string{"", "not a url", "example.com/img.png", "ftp://example.com/x"} {
			_, err := ImageURL(ctx, raw)
			assert.ErrorIs(t, err, ErrMalformedURL, "expected %q to be malformed", raw)
		}
	})

	t.Run("unreachable host returns an error", func(t *testing.T) {
		_, err := ImageURL(ctx, "http://127.0.0.1:1/img.png")
		assert.Error(t, err)
		assert.False(t, errors.Is(err, ErrMalformedURL))
	})
}
