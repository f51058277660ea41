package http

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes mounts the kiosk and admin endpoints on the router.
func RegisterRoutes(router *mux.Router, kiosk *KioskHandler, admin *AdminHandler, auth *StaffAuthMiddleware) {
	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(RequestIDMiddleware)

	// Kiosk terminal
	api.HandleFunc("/assets/{code}", kiosk.LookupAsset).Methods("GET")
	api.HandleFunc("/loans", kiosk.IssueAsset).Methods("POST")
	api.HandleFunc("/returns", kiosk.RequestReturn).Methods("POST")

	// Admin console
	adminAPI := api.PathPrefix("/admin").Subrouter()
	adminAPI.Use(auth.Middleware)
	adminAPI.HandleFunc("/assets", admin.AddAsset).Methods("POST")
	adminAPI.HandleFunc("/assets", admin.ListAssets).Methods("GET")
	adminAPI.HandleFunc("/assets/{id}", admin.DeleteAsset).Methods("DELETE")
	adminAPI.HandleFunc("/loans", admin.ListLoans).Methods("GET")
	adminAPI.HandleFunc("/loans/{id}/approve", admin.ApproveReturn).Methods("POST")
	adminAPI.HandleFunc("/returns/pending", admin.ListPendingReturns).Methods("GET")
	adminAPI.HandleFunc("/circulation/overdue", admin.ListOverdue).Methods("GET")
	adminAPI.HandleFunc("/circulation/summary", admin.Summary).Methods("GET")
}
