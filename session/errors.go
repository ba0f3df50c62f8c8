package session

import "errors"

var ErrInvalidCreator = errors.New("poll creator is not a registered presenter")
var ErrInvalidPollSpec = errors.New("invalid poll spec")
