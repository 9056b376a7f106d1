package application

import "errors"

var ErrBadRequest = errors.New("bad request")
