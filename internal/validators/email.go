package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid faz uma checagem barata de DNS no domínio do e-mail:
// basta existir registro MX ou A/AAAA. O formato em si já passou pelo binding.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := strings.ToLower(strings.TrimSpace(email[at+1:]))
	if !strings.Contains(domain, ".") {
		return false
	}

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	ips, err := net.LookupIP(domain)
	return err == nil && len(ips) > 0
}
