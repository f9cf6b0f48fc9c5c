// Package sheets provides a client for the Google Sheets API v4.
//
// It covers spreadsheets (create, get, batch update, copy a sheet), cell
// values (single and batch reads, writes, appends and clears, by A1 range
// or data filter) and developer metadata.
//
// # Authentication
//
// Service accounts sign a JWT and exchange it for an access token:
//
//	key, err := os.ReadFile(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
//	ts, err := sheets.ServiceAccountTokenSource(ctx, key)
//	client, err := sheets.NewClient(logger, rest.WithTokenSource(ts))
//
// Public spreadsheets can be read with an API key:
//
//	client, err := sheets.NewClient(logger, rest.WithAPIKeyParam("key", apiKey))
//
// # Ranges
//
// Ranges use A1 notation. A1Range quotes sheet names where needed:
//
//	vr, err := client.GetValues(ctx, id, sheets.A1Range("Q1 Results", "A1", "D20"), nil)
//
// Writes default to the RAW input option. Set ValueInputUserEntered to
// have formulas and dates parsed as if typed into the UI.
package sheets
