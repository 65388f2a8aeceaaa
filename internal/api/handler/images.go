package handler

import (
	"net/url"
	"strings"
)

// ImagePolicy decides which avatar and photo URLs are allowed to reach
// the browser. Anything pointing outside the allowlisted hosts is
// stripped rather than rejected, so a bad upload never breaks a page.
type ImagePolicy struct {
	hosts map[string]struct{}
}

func NewImagePolicy(allowedHosts []string) *ImagePolicy {
	hosts := make(map[string]struct{}, len(allowedHosts))
	for _, h := range allowedHosts {
		h = strings.ToLower(strings.TrimSpace(h))
		if h != "" {
			hosts[h] = struct{}{}
		}
	}
	return &ImagePolicy{hosts: hosts}
}

// Sanitize returns the URL unchanged when it is an https link to an
// allowlisted host, and the empty string otherwise.
func (p *ImagePolicy) Sanitize(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "https" {
		return ""
	}
	if _, ok := p.hosts[strings.ToLower(u.Hostname())]; !ok {
		return ""
	}
	return raw
}
