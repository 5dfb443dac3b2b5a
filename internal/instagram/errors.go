package instagram

import "errors"

// Sentinel errors for the capability's authentication-phase failures.
// Adapters wrap their upstream errors with these so handlers can match
// without importing the upstream library.
var (
	ErrLoginRequired     = errors.New("login required")
	ErrChallengeRequired = errors.New("challenge required")
	ErrPleaseWait        = errors.New("please wait a few minutes")
)

// Kind classifies a capability error for status-code mapping.
type Kind int

const (
	KindUpstream Kind = iota // any other capability failure
	KindLoginRequired
	KindChallengeRequired
	KindRateLimited
)

// Classify maps an error to its Kind. Unrecognized errors are KindUpstream.
func Classify(err error) Kind {
	switch {
	case errors.Is(err, ErrLoginRequired):
		return KindLoginRequired
	case errors.Is(err, ErrChallengeRequired):
		return KindChallengeRequired
	case errors.Is(err, ErrPleaseWait):
		return KindRateLimited
	default:
		return KindUpstream
	}
}
