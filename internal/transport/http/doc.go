// Package http implements the HTTP request handlers of the dashboard API.
// Handlers stay thin: they parse the filter selection from the request,
// delegate to the services layer and render JSON with go-chi/render.
//
// # Routes
//
//	GET  /api/health, /api/health/ready, /api/health/live, /api/version
//	GET  /api/dashboard?team=A&team=B&position=G
//	POST /api/dashboard                 {"teams": [...], "positions": [...]}
//	GET  /api/dashboard/filters
//	GET  /api/dashboard/views/{view}
//	GET  /metrics, /metrics/runtime
//
// # Selections
//
// An absent team or position parameter (or JSON field) selects every value.
// A parameter that is present but empty (team=) or an empty JSON array
// selects nothing, and every view comes back empty.
//
// # Error Handling
//
// All errors follow RFC 7807 Problem Details:
//
//	{
//	    "type": "/errors/dashboard/view-not-found",
//	    "title": "Not Found",
//	    "status": 404,
//	    "detail": "view \"payroll\" not found",
//	    "instance": "/api/dashboard/views/payroll"
//	}
package http
