package service

// NotFoundError signals that a requested resource does not exist. The HTTP
// layer maps it to a 404 response; the message names the missing key.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// CommonError wraps any unexpected failure from the data layer, carrying the
// underlying message. The HTTP layer maps it to a 500 response.
type CommonError struct {
	Message string
}

func (e *CommonError) Error() string { return e.Message }
