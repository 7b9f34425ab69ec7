package uploaders

import (
	"time"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/docker/go-units"
)

// TransferDetails ...
type TransferDetails struct {
	Hostname string
	Duration time.Duration
	Size     int64
}

type tracker struct {
	logger log.Logger
}

func newTracker(logger log.Logger) tracker {
	return tracker{logger: logger}
}

func (t tracker) logFileTransfer(details TransferDetails, err error) {
	if err != nil {
		t.logger.Debugf("transfer to %s failed after %s: %s", details.Hostname, details.Duration.Round(time.Millisecond), err)
		return
	}

	t.logger.Donef("uploaded %s to %s in %s", units.HumanSize(float64(details.Size)), details.Hostname, details.Duration.Round(time.Millisecond))
}
