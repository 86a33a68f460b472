package recon

import "recond/pkg/hostname"

// hostnameValidator is the default HostnameValidator backed by pkg/hostname.
type hostnameValidator struct{}

// NewHostnameValidator returns the default syntactic hostname validator.
func NewHostnameValidator() HostnameValidator {
	return hostnameValidator{}
}

func (hostnameValidator) IsValidHostname(name string) bool {
	return hostname.IsValid(name)
}
