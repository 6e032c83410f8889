package report

import (
	"fmt"
	"time"

	"github.com/hamed0406/apphealth/internal/domain"
)

// TimeLayout is the timestamp format of every health log line (local time).
const TimeLayout = "2006-01-02 15:04:05"

func Classify(out domain.Outcome) domain.Status {
	switch o := out.(type) {
	case domain.Success:
		if o.InRange() {
			return domain.StatusUp
		}
		return domain.StatusDegraded
	case domain.Failure:
		return domain.StatusDown
	}
	panic(fmt.Sprintf("report: unknown outcome %T", out))
}

// Format renders one health log line, including the trailing newline.
// Field spacing differs per label and is part of the file format.
func Format(url string, out domain.Outcome, ts time.Time) string {
	stamp := ts.Format(TimeLayout)
	switch o := out.(type) {
	case domain.Failure:
		return fmt.Sprintf("[%s] DOWN  %s  error=%s\n", stamp, url, o.Description)
	case domain.Success:
		if o.InRange() {
			return fmt.Sprintf("[%s] UP    %s  status=%d bytes=%d\n", stamp, url, o.StatusCode, o.Bytes)
		}
		return fmt.Sprintf("[%s] DEGRADED %s status=%d bytes=%d\n", stamp, url, o.StatusCode, o.Bytes)
	}
	panic(fmt.Sprintf("report: unknown outcome %T", out))
}
