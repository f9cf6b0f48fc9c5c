// Package rest is the request core shared by the actions, sheets and
// sendgrid clients.
//
// Every endpoint function in those packages has the same shape:
//
//  1. build a path with Path, escaping caller-supplied identifiers
//  2. collect optional arguments with a Query, which drops zero values
//  3. hand an optional JSON body to one of the verb helpers on Client
//  4. decode the response or return the error as-is
//
// # Usage
//
//	c, err := rest.New("https://api.example.com",
//		rest.WithBearerToken(token),
//		rest.WithLogger(logger),
//		rest.WithRateLimit(rate.Limit(10), 5),
//	)
//	if err != nil {
//		return err
//	}
//
//	p, err := rest.Path("/users/{id}", id)
//	if err != nil {
//		return err
//	}
//	var user User
//	err = c.Get(ctx, p, rest.NewQuery().Bool("verbose", verbose), &user)
//
// # Pagination
//
// GetAllPages follows RFC 5988 Link headers (rel="next") until the last
// page. GetAllOffsetPages walks limit/offset APIs until a short page comes
// back. Pages returns a lazy PageIterator for callers that want to stop
// early.
//
// # Errors
//
// Non-2xx responses are returned as *APIError. Its Is method maps status
// codes onto ErrNotFound, ErrUnauthorized and ErrRateLimited so callers can
// use errors.Is. Nothing is retried.
package rest
