// Package reactenv rewrites build-time placeholder tokens in static front-end
// assets with values taken from the runtime environment.
//
// A single production build of a client-side application ships with
// configuration slots baked in as placeholder strings. Before the asset
// server starts, one injection pass patches those placeholders in place:
//
//	result, err := reactenv.Inject(ctx, "/usr/share/nginx/html", os.Environ(), reactenv.Options{
//	    Prefix: "MY_APP_",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("patched %d of %d files\n", result.FilesModified, result.FilesScanned)
//
// # Placeholder tokens
//
// Every environment key starting with Options.Prefix contributes one
// substitution. The placeholder token searched for in the assets is the key
// wrapped in Options.Delimiter on both sides, "__" by default, so the key
// MY_APP_TITLE matches the baked-in token __MY_APP_TITLE__. An empty
// delimiter makes the token the key itself.
//
// Replacement is literal and global; no escaping or interpretation of values
// is performed. Keys in one substitution set must not be substrings of one
// another; Inject rejects such sets before touching any file.
//
// # Idempotence
//
// Running Inject twice against the same tree is a no-op the second time: the
// placeholders are gone, so nothing is rewritten. This does not hold for the
// pathological case of a replacement value that itself contains a placeholder
// token; that is a configuration error on the caller's side, not something
// Inject detects.
//
// # Deployment
//
// The intended call site is a container entrypoint that runs the injection
// pass to completion before launching the asset server, so clients can never
// observe a half-patched tree. The cmd/react-env command packages this as a
// standalone binary.
package reactenv
