package payback

import (
	"github.com/riverqueue/river"

	"mca/pkg/domain"
)

// NotifyFailedArgs asks a worker to alert the collections team about a
// failed payback. A payback fails at most once, so the job is unique per
// payback across every job state.
type NotifyFailedArgs struct {
	PaybackID domain.PaybackID `json:"paybackId" river:"unique"`

	maxAttempts int
}

func (NotifyFailedArgs) Kind() string { return "NotifyPaybackFailedJob" }

func (args NotifyFailedArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts:  river.UniqueOpts{ByArgs: true},
	}
}
