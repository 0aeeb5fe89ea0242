package domain

import "time"

// AccessTokenTTL is how long a granted access token is trusted before the
// user is sent back through consent: 50 minutes, a conservative margin
// under the one hour Google grants.
const AccessTokenTTL = 50 * time.Minute

// Settings are the credentials the app keeps in local storage. The access
// token itself is never echoed back, only whether a live one is cached.
type Settings struct {
	GeminiAPIKey   string
	GoogleClientID string
	HasAccessToken bool
}

// SettingsUpdate carries the fields being changed; nil means untouched.
// Saving an access token also stamps its cache expiry.
type SettingsUpdate struct {
	GeminiAPIKey   *string
	GoogleClientID *string
	AccessToken    *string
}
