// Package reddit provides the moderation client for a single subreddit.
//
// # Overview
//
// Client authenticates as a reddit script app with the OAuth2 password grant
// and exposes the four calls the queue browser needs:
//
//   - FetchQueue: GET /r/<sub>/about/modqueue, all pages
//   - Remove: POST /api/remove (spam=false)
//   - Approve: POST /api/approve
//   - Ban: POST /r/<sub>/api/friend (type=banned, empty reason)
//
// # Client Usage
//
//	settings, err := config.Load("")
//	if err != nil {
//		log.Fatalf("load settings: %v", err)
//	}
//	client, err := reddit.NewClient(settings, "golang")
//	if err != nil {
//		log.Fatalf("init reddit client: %v", err)
//	}
//	items, err := client.FetchQueue(ctx)
//
// NewClient does not contact reddit. The access token is requested on the
// first call and re-requested whenever it expires.
//
// # Errors
//
// Calls are synchronous and never retried. Failures come back as wrapped
// errors:
//
//   - "reddit auth: ..." when the token request fails
//   - "api <path> returned status <code>" for HTTP status >= 400
//   - "api <path>: <messages>" when a write endpoint reports JSON errors
//   - "decode response: ..." for malformed payloads
//
// # Testing
//
// Moderator is the interface the UI depends on; tests substitute a fake.
// WithAPIBase and WithTokenURL point a real Client at an httptest server.
package reddit
