package navigation

import "observer-portal/backend/config"

// Menu is the sidebar definition served to the SPA: a top section of
// observing workflows and a bottom section of account actions.
type Menu struct {
	Top    []MenuItem `json:"top"`
	Bottom []MenuItem `json:"bottom"`
}

// BuildMenu assembles the sidebar from configured link targets. Links with
// an empty URL select a dedicated in-portal view; NewTab marks targets that
// must leave the portal state untouched.
func BuildMenu(links *config.LinksConfig) Menu {
	return Menu{
		Top: []MenuItem{
			{Text: PageHome},
			{
				Text: "Pre-Observing",
				Links: []Link{
					{Text: "Telescope Time Application"},
					{Text: PageRequests},
					{Text: PageCoverSheets},
					{Text: "Cover Sheet", URL: links.PILogin + links.CoverSheet, NewTab: true},
					{Text: "Cover Sheet Submission", URL: links.PILogin + links.CoverSheetSubmit, NewTab: true},
					{Text: "Observing Request", URL: links.PILogin + links.ObservingRequest},
					{Text: "Remote Observing Request", URL: links.PILogin + links.RemoteObsRequest},
					{Text: "KPF Community Cadence", URL: links.KPFCommunity, NewTab: true},
					{Text: "Planning Tool", URL: links.PlanningTool, NewTab: true},
					{Text: "LRIS Configuration", URL: links.LRISConfig},
					{Text: "DEIMOS Configuration", URL: links.DEIMOSConfig},
					{Text: "Slit Mask Tool", URL: links.SlitMaskTool},
					{Text: "ToO Request", URL: links.PILogin + links.TooRequest},
					{Text: "Target List", URL: links.TargetList},
					{Text: "VSQ Reservations", URL: links.VSQReservations},
				},
			},
			{
				Text: "Observing",
				Links: []Link{
					{Text: "Instrument Status (SIAS)", URL: links.SIAS},
					{Text: PageSchedule},
					{Text: PageLogs},
					{Text: "KPF OB GUI", URL: links.KPFObsBlock, NewTab: true},
					{Text: "Observers' Data Access Portal", URL: links.DataAccessPortal, NewTab: true},
				},
			},
			{
				Text: "Post-Observing",
				Links: []Link{
					{Text: "Post Observing Comments", URL: links.PILogin + links.PostObsComments},
					{Text: "ToO Report", URL: links.PILogin + links.TooReport},
				},
			},
			{
				Text: "Resources",
				Links: []Link{
					{Text: "Full Telescope Schedule", URL: links.FullTelSchedule},
					{Text: "KOA", URL: links.ArchiveKOA, NewTab: true},
					{Text: "Instruments Home", URL: links.InstrumentsHome},
					{Text: "Instrument Info", URL: links.InstrumentInfo},
					{Text: "Maunakea Weather Center (MKWC)", URL: links.WeatherCenter, NewTab: true},
					{Text: "Keck Publications", URL: links.Publications, NewTab: true},
				},
			},
		},
		Bottom: []MenuItem{
			{
				Text: "Settings",
				Links: []Link{
					{Text: "Update Information", URL: links.PILogin + links.UpdateInfo},
					{Text: "Update SSH Key", URL: links.PILogin + links.UpdateSSHKey},
				},
			},
			{Text: "Logout"},
		},
	}
}
