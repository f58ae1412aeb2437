package busroutes

import "context"

// Fetcher retrieves page text from URLs.
type Fetcher interface {
	// Fetch returns the full page body with line breaks removed, so that
	// tags spanning several source lines can be matched as one string.
	// Failures are reported as *FetchError.
	Fetch(ctx context.Context, url string) (text string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
