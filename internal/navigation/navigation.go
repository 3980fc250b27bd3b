// Package navigation implements the portal's page/URL selection state
// machine: which view occupies the main content region, and what side
// effect (new tab, logout redirect) a link click produces. Pure state and
// dispatch; the SPA holds the returned selection and posts it back with the
// next action.
package navigation

// Selection is the navigation state: the selected page name and, when a
// link was embedded, its target URL. URL empty means no embed target.
type Selection struct {
	Page string `json:"page"`
	URL  string `json:"url,omitempty"`
}

// The named views with dedicated renderers. A matching page name always
// wins over an embed URL.
const (
	PageHome        = "Home"
	PageSchedule    = "My Observing Schedule"
	PageLogs        = "My Observation Logs"
	PageRequests    = "My Requests"
	PageCoverSheets = "My Cover Sheets"
)

// View identifies which renderer the main content region mounts.
type View string

const (
	ViewHome        View = "home"
	ViewSchedule    View = "schedule"
	ViewLogs        View = "logs"
	ViewRequests    View = "requests"
	ViewCoverSheets View = "coversheets"
	ViewEmbed       View = "embed"
)

// EffectKind labels the side effect of a dispatch.
type EffectKind string

const (
	EffectNone     EffectKind = "none"
	EffectOpenTab  EffectKind = "open_tab"
	EffectRedirect EffectKind = "redirect"
)

// Effect is a side effect the client must perform. Effects never change the
// selection; a new-tab link leaves the main view exactly as it was.
type Effect struct {
	Kind EffectKind `json:"kind"`
	URL  string     `json:"url,omitempty"`
}

// Link is one navigable target: either embedded in the main region or
// opened in a new browsing context.
type Link struct {
	Text   string `json:"text"`
	URL    string `json:"url"`
	NewTab bool   `json:"newtab"`
}

// MenuItem is one sidebar group: a plain view when Links is empty,
// otherwise a collapsible group of links.
type MenuItem struct {
	Text  string `json:"text"`
	Links []Link `json:"links,omitempty"`
}

// Default returns the initial selection when the portal opens.
func Default() Selection {
	return Selection{Page: PageHome}
}

// SelectView selects a named view with no embed target.
func SelectView(name string) Selection {
	return Selection{Page: name}
}

// Open dispatches a link click against the current selection.
//   - embed link: page becomes the link's text, URL its target, no effect
//   - new-tab link: selection unchanged, open_tab effect
func Open(current Selection, link Link) (Selection, Effect) {
	if link.NewTab {
		return current, Effect{Kind: EffectOpenTab, URL: link.URL}
	}
	return Selection{Page: link.Text, URL: link.URL}, Effect{Kind: EffectNone}
}

// Logout is the terminal transition: a full-session redirect away from the
// portal. The selection is irrelevant afterwards.
func Logout(logoutURL string) Effect {
	return Effect{Kind: EffectRedirect, URL: logoutURL}
}

// Resolve decides which view the main content region mounts.
// Precedence, highest first:
//  1. a special page name renders its dedicated view, ignoring any URL
//  2. a non-empty URL renders the generic embed view
//  3. the default landing view
//
// The ordering is load-bearing: an embed URL left over from earlier
// navigation must not shadow a dedicated view.
func Resolve(sel Selection) (View, string) {
	switch sel.Page {
	case PageSchedule:
		return ViewSchedule, ""
	case PageLogs:
		return ViewLogs, ""
	case PageRequests:
		return ViewRequests, ""
	case PageCoverSheets:
		return ViewCoverSheets, ""
	}
	if sel.URL != "" {
		return ViewEmbed, sel.URL
	}
	return ViewHome, ""
}
