// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

// Route identifies one of the fixed endpoints. The zero value is
// RouteNotFound, so an unknown path can never resolve to a real handler.
type Route int

const (
	RouteNotFound Route = iota
	RouteHome
	RouteConfigDump
	RouteStatus
)

// Paths of the served routes.
const (
	PathHome   = "/"
	PathConfig = "/api/config"
	PathStatus = "/api/status"
)

var servedRoutes = []Route{RouteHome, RouteConfigDump, RouteStatus}

var routeTable = map[string]Route{
	PathHome:   RouteHome,
	PathConfig: RouteConfigDump,
	PathStatus: RouteStatus,
}

// ResolveRoute maps a URL path to its route. Matching is exact: a trailing
// slash or any extra segment yields RouteNotFound.
func ResolveRoute(path string) Route {
	return routeTable[path]
}

// Path returns the path serving r, or "" for RouteNotFound.
func (r Route) Path() string {
	for path, route := range routeTable {
		if route == r {
			return path
		}
	}
	return ""
}

func (r Route) String() string {
	switch r {
	case RouteHome:
		return "home"
	case RouteConfigDump:
		return "config"
	case RouteStatus:
		return "status"
	default:
		return "not_found"
	}
}
