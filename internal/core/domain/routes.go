package domain

// Route strings pushed onto the navigation stack. These mirror the app's
// screen registry and are fixed per flow.
const (
	RouteIntro        = "/intro"
	RouteLogin        = "/login"
	RouteSplashScreen = "/splashscreen"

	RouteDashboard       = "/dashboard"
	RouteVendorDashboard = "/vendordashboard"

	RouteMyEvents           = "/myevents"
	RouteVendorMyEvents     = "/vendormyevents"
	RouteVendorMessages     = "/vendormessages"
	RouteVendorOrderSummary = "/vendorordersummary"
	RouteVendorAccount      = "/vendoraccount"
	RouteAccount            = "/account"
	RouteNotifications      = "/bottomnotification"

	RouteCategoryVendorListing = "/categoryvendorlisting"
	RouteAISuggestedPlan       = "/aisuggestedplan"
	RouteCustomizePlan         = "/customizeyourown"
)
