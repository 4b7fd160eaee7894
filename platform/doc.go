// Package platform models the platform-native logging facility that
// platform sinks forward to.
//
// The facility has its own severity scale (Level), ordered by verbosity
// the way ESP-IDF's esp_log_level_t is: LevelNone emits nothing and
// LevelVerbose emits everything. A Backend accepts one already rendered
// record per Write call together with a tag (the source name) and decides
// on its own whether and where to emit it. Backends filter internally
// through a Filter holding a default level and per-tag overrides.
//
// Write has no error result. A backend that cannot emit (full buffer,
// closed writer, missing hardware) drops the record silently.
//
// Console is the reference backend writing ESP-IDF style lines. The
// zapbackend, zerologbackend and logrusbackend subpackages forward to the
// corresponding structured loggers instead.
package platform
