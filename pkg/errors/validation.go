package errors

import (
	"net/url"
	"regexp"
)

// maxPackageNameLength caps names taken from the command line or an API
// path before they are sent to the AUR.
const maxPackageNameLength = 256

// pkgnamePattern is the pkgname character set accepted by makepkg:
// lowercase alphanumerics and @ . _ + -, not starting with a hyphen or a dot.
var pkgnamePattern = regexp.MustCompile(`^[a-z0-9@_+][a-z0-9@._+-]*$`)

// ValidateAURPackageName reports an INVALID_PACKAGE error for names that
// cannot be AUR package names. Names carrying a version constraint such as
// "foo>=1.0" are rejected too.
func ValidateAURPackageName(name string) error {
	switch {
	case name == "":
		return New(ErrCodeInvalidPackage, "package name cannot be empty")
	case len(name) > maxPackageNameLength:
		return New(ErrCodeInvalidPackage, "package name too long (max %d characters)", maxPackageNameLength)
	case !pkgnamePattern.MatchString(name):
		return New(ErrCodeInvalidPackage, "invalid AUR package name: %q", name)
	}
	return nil
}

// ValidateURL checks that rawURL is an absolute http or https URL.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return Wrap(ErrCodeInvalidInput, err, "invalid URL %q", rawURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}
	if u.Host == "" {
		return New(ErrCodeInvalidInput, "URL %q has no host", rawURL)
	}
	return nil
}
