package fetch

// Package fetch retrieves the current image bytes from the configured URL.
// It deliberately implements no retry, caching, or connection reuse policy:
// the refresh loop calls Fetch once per tick and treats every failure as
// transient.
