package storage

import "errors"

var ErrIdentityNotFound = errors.New("identity not found in storage")
var ErrPollNotFound = errors.New("poll not found in storage")
var ErrAnswerExists = errors.New("answer already exists for poll and respondent")
