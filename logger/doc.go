// Package logger is the public API of RSLog. Most users only need to
// import this package.
//
// A Logger holds a sink (a log file or the console), the path of the log
// file and a minimum severity. Messages less urgent than the minimum are
// dropped before any argument is rendered. Every other message becomes a
// single line:
//
//	2024-03-01 12:00:00.1234000000 [warn]: low memory
//
// Arguments are rendered by kind and concatenated without separators:
// strings verbatim, booleans as "true"/"false", maps and structs as a
// multi-line dump, nil as "(null)".
//
// The package-level functions Error, Warning, Info and Debug delegate to a
// shared Logger created on first use. Configure sets it up and, when no
// file is given, picks a per-program default:
//
//	logger.Configure(logger.WithMinSeverity(core.DebugSeverity))
//	logger.Warning("low memory")
//
// Settings can also come from a map or the environment (RSLOG_TYPE,
// RSLOG_LOG, RSLOG_LEVEL):
//
//	opts, err := logger.OptionsFromEnv("")
//	if err != nil {
//	    return err
//	}
//	log := logger.New(opts...)
//
// The file is opened, appended to and closed for every line, so external
// log rotation needs no cooperation. Sink write failures never reach the
// caller; they are counted in Stats.
package logger
