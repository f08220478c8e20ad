package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// assets
	RouteAssets      = RouteApiV1 + "/assets"
	RouteAssetUpload = RouteAssets + "/upload"
	RouteAsset       = RouteAssets + "/:asset_id"

	// asset groups
	RouteAssetGroups         = RouteApiV1 + "/asset-groups"
	RouteAssetGroupReconcile = RouteAssetGroups + "/reconcile"
	RouteAssetGroup          = RouteAssetGroups + "/:group_id"

	// families
	RouteFamilies = RouteApiV1 + "/families"
	RouteFamily   = RouteFamilies + "/:family_id"

	RouteNotifications  = RouteApiV1 + "/notifications"
	RouteSupportTickets = RouteApiV1 + "/support/tickets"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
