package domain

// Session identifies the local participant. Admin is granted at login by
// comparing the supplied password against the configured constant; there is
// no stronger auth model in this system.
type Session struct {
	Nickname string `json:"nickname"`
	Admin    bool   `json:"admin"`
}
