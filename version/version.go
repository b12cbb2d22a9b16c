package version

// Version is set at build time via -ldflags "-X vigil/version.Version=...".
var Version = "0.3.0-dev"
