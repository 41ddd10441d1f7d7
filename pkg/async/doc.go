// Package async runs functions in goroutines and collects their results
// through a generic Future.
//
// Async starts a single call. Map fans a function out over a slice with a
// bound on the number of concurrent calls; the returned futures keep the
// order of the input, so callers can report results deterministically:
//
//	futures := async.Map(ctx, paths, 4, func(ctx context.Context, path string) ([]document.Report, error) {
//	    f, err := os.Open(path)
//	    if err != nil {
//	        return nil, err
//	    }
//	    defer f.Close()
//	    return document.ValidateStream(document.KindCustomer, f)
//	})
//	for i, f := range futures {
//	    reports, err := f.Await()
//	    // report paths[i]
//	}
//
// A context canceled before a call starts completes its Future with the
// context error without running the function.
package async
