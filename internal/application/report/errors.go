package report

import "errors"

// ErrSuperseded reports that a load finished after a newer load had
// already started; its result was discarded.
var ErrSuperseded = errors.New("load superseded by a newer fetch")

// ErrNoRows reports an export attempt over an empty row set.
var ErrNoRows = errors.New("no hay datos para exportar")
