/**
 * Filename: log.go
 * Path: github.com/glennhickey/contigSim
 *
 * Copyright (c) 2024 Glenn Hickey
 */

package contigsim

import (
	"os"

	logging "github.com/op/go-logging"
)

var log = logging.MustGetLogger("contigsim")

// BackendFormatter is the package-wide log backend, exported so cmd/
// can install it before the app runs.
var BackendFormatter logging.Backend

func init() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	format := logging.MustStringFormatter(
		`%{color}%{time:15:04:05} %{shortfunc} ▶ %{level:.4s}%{color:reset} %{message}`,
	)
	BackendFormatter = logging.NewBackendFormatter(backend, format)
	logging.SetBackend(BackendFormatter)
}
