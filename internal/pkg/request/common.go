package request

import "time"

// ByIDRequest is a common struct for endpoints that require an ID path parameter.
type ByIDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// DateFormat is the wire format for day-granular query parameters.
const DateFormat = "2006-01-02"

// ParseDate parses a YYYY-MM-DD query value in the given location,
// returning midnight of that day.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateFormat, value, loc)
}
