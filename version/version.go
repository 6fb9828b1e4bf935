package version

import "fmt"

// Name is the program name reported in --version and the User-Agent header.
const Name = "webreq"

// Version represents a version of webreq
type Version struct {
	major int
	minor int
	patch int
}

func (v *Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.major, v.minor, v.patch)
}

// UserAgent returns the default value of the User-Agent header.
func (v *Version) UserAgent() string {
	return Name + "/" + v.String()
}

// Current returns current version of webreq
func Current() *Version {
	return &Version{major: 0, minor: 1, patch: 0}
}
