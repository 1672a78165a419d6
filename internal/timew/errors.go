package timew

import "errors"

// Input errors. Every failure the parser reports wraps exactly one of these.
var (
	ErrNoProjectsConfigured    = errors.New("no projects configured")
	ErrMalformedProjectsConfig = errors.New("malformed timesheet.projects value")
	ErrMalformedConfigLine     = errors.New("malformed config line")
	ErrMalformedIntervalRecord = errors.New("malformed interval record")
	ErrMalformedTimestamp      = errors.New("malformed timestamp")
	ErrNoProjectMatched        = errors.New("interval has no project tag")
	ErrAmbiguousProject        = errors.New("interval has more than one project tag")
)

var inputErrors = []error{
	ErrNoProjectsConfigured,
	ErrMalformedProjectsConfig,
	ErrMalformedConfigLine,
	ErrMalformedIntervalRecord,
	ErrMalformedTimestamp,
	ErrNoProjectMatched,
	ErrAmbiguousProject,
}

// IsInputError reports whether err was caused by bad input rather than I/O.
func IsInputError(err error) bool {
	for _, target := range inputErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
