package installer

// Pinned versions for the tools that `devctl setup` installs. Tools not listed
// here resolve their version from the project's go.mod instead (ginkgo), or
// track "latest" (setup-envtest).
const (
	controllerGenVersion = "0.16.1"
	golangciLintVersion  = "1.61.0"
	kustomizeVersion     = "5.4.3"
	mockgenVersion       = "0.4.0"
	operatorSDKVersion   = "1.36.1"
	opmVersion           = "1.47.0"
	spectralVersion      = "6.11.1"
)

// Digest of the golangci-lint release tarball for the development platform.
// Updated together with golangciLintVersion.
const golangciLintDigest = "ca21c961a33be3bc15e4292dc40c98c8dcc5463a7b6768a3afc123761630c09c"
