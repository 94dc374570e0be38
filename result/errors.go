package result

import "errors"

// ErrUnsuccessfulExport is returned by ExportMetrics and ExportAnimation
// when asked to export a search.Result whose Success field is false: there
// is no path to report a cost, length, or animation trace for.
var ErrUnsuccessfulExport = errors.New("result: cannot export an unsuccessful search")
