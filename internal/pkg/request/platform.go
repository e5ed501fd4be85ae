package request

import "strings"

type ClientType string

const (
	ClientWeb    ClientType = "web"
	ClientMobile ClientType = "mobile"
)

// ResolveClientType trusts an explicit X-Client-Type header and otherwise
// guesses from the user agent. Browsers keep the token in a cookie, other
// clients get it in the response body.
func ResolveClientType(header, userAgent string) ClientType {
	switch strings.ToLower(strings.TrimSpace(header)) {
	case string(ClientWeb):
		return ClientWeb
	case string(ClientMobile), "android", "ios":
		return ClientMobile
	}

	ua := strings.ToLower(userAgent)
	if strings.Contains(ua, "okhttp") || strings.Contains(ua, "dart") || strings.Contains(ua, "cfnetwork") {
		return ClientMobile
	}
	return ClientWeb
}

func IsWebClient(t ClientType) bool {
	return t == ClientWeb
}
