package share

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/klauspost/compress/flate"

	"github.com/dshills/kittyconf/internal/catalog"
	"github.com/dshills/kittyconf/internal/keymap"
	"github.com/dshills/kittyconf/internal/store"
)

const (
	// MaxURLLength is the longest share link that is handed out without a
	// warning. Longer links are still produced.
	MaxURLLength = 2000

	// MaxDecodedSize bounds the inflated size of a token.
	MaxDecodedSize = 1 << 20

	// FragmentParam is the fragment parameter carrying the token.
	FragmentParam = "c"
)

var base64Normalizer = strings.NewReplacer("+", "-", "/", "_", "=", "", "\n", "", "\r", "")

// Compress raw-deflates s and encodes the result as unpadded base64url.
func Compress(s string) (string, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return "", fmt.Errorf("creating compressor: %w", err)
	}
	if _, err := io.WriteString(w, s); err != nil {
		return "", fmt.Errorf("compressing: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("compressing: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf.Bytes()), nil
}

// Decompress reverses Compress. Both base64 alphabets are accepted, with or
// without padding.
func Decompress(token string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(base64Normalizer.Replace(token))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}

	r := flate.NewReader(bytes.NewReader(raw))
	defer r.Close()

	out, err := io.ReadAll(io.LimitReader(r, MaxDecodedSize+1))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if len(out) > MaxDecodedSize {
		return "", ErrTooLarge
	}
	return string(out), nil
}

// Encode returns the token for entries and mappings, or "" when there is
// nothing to share.
func Encode(cat *catalog.Catalog, entries []store.Entry, mappings keymap.List) (string, error) {
	compact := EncodeCompact(cat, entries, mappings)
	if compact == "" {
		return "", nil
	}
	return Compress(compact)
}

// Decode returns the payload carried by token.
func Decode(cat *catalog.Catalog, token string) (Payload, error) {
	compact, err := Decompress(token)
	if err != nil {
		return Payload{}, err
	}
	return DecodeCompact(cat, compact), nil
}

// BuildURL returns base with its fragment replaced by "#c=<token>". An
// empty token yields base without any fragment.
func BuildURL(base, token string) string {
	base = StripFragment(base)
	if token == "" {
		return base
	}
	return base + "#" + FragmentParam + "=" + token
}

// StripFragment removes the fragment from rawURL.
func StripFragment(rawURL string) string {
	base, _, _ := strings.Cut(rawURL, "#")
	return base
}

// TokenFromURL returns the "c" parameter of the fragment of rawURL, or "".
// A bare fragment such as "c=<token>" is also accepted.
func TokenFromURL(rawURL string) string {
	fragment := rawURL
	if i := strings.IndexByte(rawURL, '#'); i >= 0 {
		fragment = rawURL[i+1:]
	} else if strings.Contains(rawURL, "://") {
		return ""
	}

	// url.ParseQuery would turn a standard-alphabet "+" into a space.
	for _, part := range strings.Split(fragment, "&") {
		name, value, ok := strings.Cut(part, "=")
		if !ok || name != FragmentParam {
			continue
		}
		if unescaped, err := url.PathUnescape(value); err == nil {
			value = unescaped
		}
		return value
	}
	return ""
}

// TooLong reports whether a share link exceeds MaxURLLength.
func TooLong(link string) bool {
	return len(link) > MaxURLLength
}
