package introspect

// ImageFacts is everything learned about one image.
type ImageFacts struct {
	ImageReference string
	ImageID        string
	// Architecture is the image architecture, "unknown" when undeclared.
	Architecture string
	OSName       string
	OSVersionID  string
	OSID         string
	// EnvironmentLines are the KEY=value lines printed by env.
	EnvironmentLines []string
	// PackageLines are the installed packages as listed by apk or apt.
	PackageLines []string
	// LocalBinaries are the entries of /usr/local/bin.
	LocalBinaries []string
	// Platforms are the os/arch[/variant] entries published for the image.
	Platforms []string
}

// Auth holds the registry credentials used while introspecting. The zero
// value pulls anonymously.
type Auth struct {
	// Encoded is the docker registry auth header value.
	Encoded  string
	Username string
	Password string
}
