package ports

import "context"

// Mailer delivers the account-lifecycle emails. Implementations must honour
// the context deadline; delivery failures are surfaced as errors and the
// caller decides whether they are fatal.
type Mailer interface {
	// SendActivation mails a link of the form
	// <frontend>/auth/activate-account/<userID>/<code>.
	SendActivation(ctx context.Context, to, userID, code string) error
	// SendPasswordReset mails a link of the form
	// <frontend>/auth/reset-password/<userID>/<code>.
	SendPasswordReset(ctx context.Context, to, userID, code string) error
}
