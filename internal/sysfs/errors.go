package sysfs

import "errors"

var errUnknownChannel = errors.New("unknown LED channel")
