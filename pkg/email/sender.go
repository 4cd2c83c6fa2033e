package email

import "context"

// Sender delivers one email to a recipient list. Delivery is
// fire-and-forget: implementations make a single synchronous attempt and
// consume no delivery receipt.
type Sender interface {
	Send(ctx context.Context, to []string, subject, plainTextContent, htmlContent string) error
}
