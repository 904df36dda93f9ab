package render

const (
	Ok           = 0
	Failed       = 1000
	NotFound     = 1001
	ErrParams    = 1002
	ErrSign      = 1004
	ErrForbidden = 1009

	ServiceUnavailable = 2001
	ServiceError       = 5001
	UnKnowError        = 6000
)

var statusMsg = map[int]string{
	Ok:                 "Success",
	Failed:             "Failed",
	NotFound:           "Not Found",
	ErrParams:          "Params Error",
	ErrSign:            "Sign Failed",
	ErrForbidden:       "Forbidden Address",
	ServiceUnavailable: "Service Unavailable",
	ServiceError:       "Service Error",
	UnKnowError:        "Unknown Error",
}
