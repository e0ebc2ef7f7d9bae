package version

// AppVersion is overridden at build time with
// -ldflags "-X swim/internal/version.AppVersion=v0.1.0".
var AppVersion = "dev"
