package exporter

import (
	"fmt"
	"time"
)

// OutputFilename computes the dated output name `<base>_<YYYYMMDD>.<ext>`.
// The date is the run date, not anything derived from the data, so re-runs
// on a later day produce a new file instead of clobbering history.
func OutputFilename(base string, runDate time.Time, ext string) string {
	return fmt.Sprintf("%s_%s%s", base, runDate.Format("20060102"), ext)
}
