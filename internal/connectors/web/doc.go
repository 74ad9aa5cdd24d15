// Package web fetches pages over HTTP using a colly collector.
//
// The builder needs exactly one page per run, so the fetcher performs a
// single synchronous visit with no link following and no retries.
// Transport errors and non-2xx responses are returned as
// *domain.FetchError.
package web
