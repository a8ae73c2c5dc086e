package cli

// Version is the build version. Release builds override it via
// -ldflags "-X github.com/Fepozopo/phold/pkg/cli.Version=v1.2.3".
var Version = "dev"
