// Package curseforge provides a typed client for the CurseForge Core API.
//
// The client covers games, mods, files, categories and fingerprint
// matching. Every operation is a single stateless round trip: the client
// builds an authenticated request, issues it, and maps the response to a
// typed value or a typed error. Pagination, sorting and filtering are
// passed through to the remote API verbatim, never applied locally.
//
// # Usage
//
// Create a client with your API key:
//
//	client, err := curseforge.NewClient(
//		os.Getenv("CURSEFORGE_API_KEY"),
//		curseforge.WithLogger(logger),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	mods, _, err := client.SearchMods(ctx, &curseforge.SearchModsOptions{
//		GameID:       432,
//		SearchFilter: "jei",
//		PageSize:     20,
//	})
//
// Every method returns the parsed payload together with a *Response that
// wraps the raw *http.Response, so callers can inspect headers, status or
// the pagination descriptor.
//
// # Error Handling
//
// Failures with a known meaning (400, 404, 503 and other 5xx statuses)
// are returned as *APIError carrying an ErrorKind discriminant; each kind
// unwraps to a package sentinel:
//
//	_, _, err := client.GetMod(ctx, 12345)
//	if errors.Is(err, curseforge.ErrNotFound) {
//		// mod is absent or private
//	}
//
// Any other non-2xx status and plain network failures are not wrapped in
// an APIError; the underlying error propagates to the caller. The client
// never retries: each call is exactly one attempt, and retry policy
// belongs to the caller.
//
// # Concurrency
//
// A Client holds only immutable configuration, so a single instance is
// safe for concurrent use. Timeouts and cancellation belong to the
// supplied http.Client and the per-call context.
package curseforge
