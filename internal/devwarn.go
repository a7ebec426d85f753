package internal

// DevWarn is called for the two "succeed but warn" error kinds spec section 7 names:
// writing a readonly proxy, and wrapping a non-object-like or frozen/skip-marked
// target. The public package installs a slog-backed implementation; internal packages
// never import a logger directly so this stays usable from tests without any logging
// side effects by default.
var DevWarn = func(format string, args ...any) {}
