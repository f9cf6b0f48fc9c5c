// Package sendgrid provides a client for the SendGrid v3 Web API.
//
// It covers mail send, batches and scheduled sends, stats, suppressions
// (bounces, blocks, spam reports, invalid emails, global and group
// unsubscribes), transactional templates, API keys and subusers.
//
//	client, err := sendgrid.NewClient(os.Getenv("SENDGRID_API_KEY"), logger)
//	msg := sendgrid.NewMessage(
//		sendgrid.Email("Ops", "ops@example.com"),
//		"Deploy finished",
//		sendgrid.Email("", "team@example.com"),
//		"All green.", "",
//	)
//	id, err := client.Send(ctx, msg)
//
// Subuser impersonation sets the on-behalf-of header on every request:
//
//	client, err := sendgrid.NewClient(key, logger, sendgrid.WithOnBehalfOf("marketing"))
//
// Suppression lists page by limit and offset; the ListAll variants walk
// every page. Templates page by cursor and ListAllTemplates follows
// _metadata.next.
package sendgrid
