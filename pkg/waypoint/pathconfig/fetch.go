package pathconfig

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"

)

// maxDocumentSize caps the size of a fetched configuration document.
const maxDocumentSize = 1 << 20

// Fetch downloads a configuration document. Documents over 1 MiB are rejected
// with ErrDocumentTooLarge. The format comes from the response's
// Content-Type, then from the URL's extension, and defaults to JSON.
// A nil client uses http.DefaultClient.
func Fetch(ctx context.Context, client *http.Client, rawURL string) (*Configuration, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, NewConfigError("fetch", err)
	}
	req.Header.Set("Accept", "application/json, application/toml, application/yaml")

	resp, err := client.Do(req)
	if err != nil {
		return nil, NewConfigError("fetch", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, NewConfigError("fetch", fmt.Errorf("unexpected status %s", resp.Status))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize+1))
	if err != nil {
		return nil, NewConfigError("fetch", err)
	}
	if len(data) > maxDocumentSize {
		return nil, NewConfigError("fetch", fmt.Errorf("%w: more than %d bytes", ErrDocumentTooLarge, maxDocumentSize))
	}

	return Parse(data, responseFormat(resp.Header.Get("Content-Type"), rawURL))
}

func responseFormat(contentType, rawURL string) Format {
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		switch mediaType {
		case "application/toml":
			return FormatTOML
		case "application/yaml", "application/x-yaml", "text/yaml":
			return FormatYAML
		case "application/json":
			return FormatJSON
		}
	}
	if u, err := url.Parse(rawURL); err == nil {
		if format, err := FormatFromPath(u.Path); err == nil {
			return format
		}
	}
	return FormatJSON
}
