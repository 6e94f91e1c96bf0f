package main

import "github.com/shuldan/errorhandler/pkg/errors"

var newCmdCode = errors.WithPrefix("ERRGUARD")

var errFailRequested = newCmdCode().New("failure requested by client")
