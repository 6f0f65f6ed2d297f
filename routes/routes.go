package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Suhas-098/onboardai-backend/handlers"
	"github.com/Suhas-098/onboardai-backend/middleware"
	"github.com/Suhas-098/onboardai-backend/models"
	"github.com/Suhas-098/onboardai-backend/websocket"
)

// HTTP method constants for better maintainability
var (
	MethodsGetOnly    = []string{"GET", "OPTIONS"}
	MethodsPostOnly   = []string{"POST", "OPTIONS"}
	MethodsPutOnly    = []string{"PUT", "OPTIONS"}
	MethodsDeleteOnly = []string{"DELETE", "OPTIONS"}
)

const (
	PathAPI    = "/api"
	PathHealth = "/health"
)

// staffOnly restricts a handler to HR and admin callers.
func staffOnly(h http.HandlerFunc) http.HandlerFunc {
	return middleware.RequireRole(h, models.RoleAdmin, models.RoleHR)
}

func RegisterRoutes(r *mux.Router) {
	// ====================
	// HEALTH CHECK (Public)
	// ====================
	r.HandleFunc(PathHealth, handlers.HealthCheck).Methods(MethodsGetOnly...)

	// ====================
	// AUTHENTICATION ROUTES (Public - No auth required)
	// ====================
	r.HandleFunc("/api/auth/login", handlers.Login).Methods(MethodsPostOnly...)
	r.HandleFunc("/api/auth/validate", handlers.ValidateToken).Methods(MethodsGetOnly...)

	// ====================
	// WEBSOCKET (auth skipped on upgrade)
	// ====================
	r.HandleFunc("/ws/alerts", websocket.ServeAlerts)

	// ====================
	// PROTECTED API ROUTES (Require authentication)
	// ====================
	apiRouter := r.PathPrefix(PathAPI).Subrouter()
	apiRouter.Use(middleware.AuthMiddleware)

	// ====================
	// USER MANAGEMENT
	// ====================
	apiRouter.HandleFunc("/users", staffOnly(handlers.CreateUser)).Methods(MethodsPostOnly...)
	apiRouter.HandleFunc("/users", staffOnly(handlers.ListUsers)).Methods(MethodsGetOnly...)
	apiRouter.HandleFunc("/users/{id}", handlers.GetUser).Methods(MethodsGetOnly...)
	apiRouter.HandleFunc("/users/{id}", staffOnly(handlers.UpdateUser)).Methods(MethodsPutOnly...)

	// ====================
	// EMPLOYEES (risk-annotated views)
	// ====================
	apiRouter.HandleFunc("/employees", staffOnly(handlers.ListEmployees)).Methods(MethodsGetOnly...)
	apiRouter.HandleFunc("/employees/{id}", handlers.GetEmployee).Methods(MethodsGetOnly...)
	apiRouter.HandleFunc("/employees/{id}/assign-template/{templateId}", staffOnly(handlers.AssignTemplate)).Methods(MethodsPostOnly...)

	// ====================
	// TASKS
	// ====================
	apiRouter.HandleFunc("/tasks", staffOnly(handlers.CreateTask)).Methods(MethodsPostOnly...)
	apiRouter.HandleFunc("/tasks", handlers.ListTasks).Methods(MethodsGetOnly...)
	apiRouter.HandleFunc("/tasks/{id}", handlers.GetTask).Methods(MethodsGetOnly...)
	apiRouter.HandleFunc("/tasks/{id}", staffOnly(handlers.UpdateTask)).Methods(MethodsPutOnly...)
	apiRouter.HandleFunc("/tasks/{id}/complete", handlers.CompleteTask).Methods(MethodsPostOnly...)

	// ====================
	// PROGRESS
	// ====================
	apiRouter.HandleFunc("/progress", handlers.RecordProgress).Methods(MethodsPostOnly...)
	apiRouter.HandleFunc("/progress", handlers.ListProgress).Methods(MethodsGetOnly...)

	// ====================
	// ONBOARDING TEMPLATES
	// ====================
	apiRouter.HandleFunc("/templates", staffOnly(handlers.CreateTemplate)).Methods(MethodsPostOnly...)
	apiRouter.HandleFunc("/templates", staffOnly(handlers.ListTemplates)).Methods(MethodsGetOnly...)
	apiRouter.HandleFunc("/templates/{id}", staffOnly(handlers.GetTemplate)).Methods(MethodsGetOnly...)
	apiRouter.HandleFunc("/templates/{id}", staffOnly(handlers.UpdateTemplate)).Methods(MethodsPutOnly...)
	apiRouter.HandleFunc("/templates/{id}", staffOnly(handlers.DeleteTemplate)).Methods(MethodsDeleteOnly...)

	// ====================
	// ALERTS & NOTIFICATIONS
	// ====================
	apiRouter.HandleFunc("/alerts", handlers.ListAlerts).Methods(MethodsGetOnly...)
	apiRouter.HandleFunc("/alerts", staffOnly(handlers.CreateAlert)).Methods(MethodsPostOnly...)
	apiRouter.HandleFunc("/notifications", handlers.ListNotifications).Methods(MethodsGetOnly...)
	apiRouter.HandleFunc("/notifications", staffOnly(handlers.CreateNotification)).Methods(MethodsPostOnly...)
	apiRouter.HandleFunc("/notifications/{id}/read", handlers.MarkNotificationRead).Methods(MethodsPutOnly...)

	// ====================
	// RISKS
	// ====================
	apiRouter.HandleFunc("/risks", staffOnly(handlers.ListRisks)).Methods(MethodsGetOnly...)
	apiRouter.HandleFunc("/risks/stats", staffOnly(handlers.GetRiskStats)).Methods(MethodsGetOnly...)
	apiRouter.HandleFunc("/predict-risk", staffOnly(handlers.PredictRisk)).Methods(MethodsPostOnly...)

	// ====================
	// SEARCH (role-scoped)
	// ====================
	apiRouter.HandleFunc("/search", handlers.Search).Methods(MethodsGetOnly...)

	// ====================
	// DASHBOARD
	// ====================
	apiRouter.HandleFunc("/dashboard/summary", staffOnly(handlers.GetDashboardSummary)).Methods(MethodsGetOnly...)
	apiRouter.HandleFunc("/dashboard/heatmap", staffOnly(handlers.GetDepartmentHeatmap)).Methods(MethodsGetOnly...)
	apiRouter.HandleFunc("/dashboard/ai-risk", staffOnly(handlers.GetAIRiskDashboard)).Methods(MethodsGetOnly...)
	apiRouter.HandleFunc("/dashboard/ai-explanations", staffOnly(handlers.GetAIExplanations)).Methods(MethodsGetOnly...)
	apiRouter.HandleFunc("/ai/alerts", staffOnly(handlers.GetAINudges)).Methods(MethodsGetOnly...)

	// ====================
	// ADMIN ACTIVITY & AUDIT
	// ====================
	apiRouter.HandleFunc("/admin/activity", staffOnly(handlers.GetAdminActivity)).Methods(MethodsGetOnly...)
	apiRouter.HandleFunc("/admin/audit-logs", staffOnly(handlers.GetAuditLogs)).Methods(MethodsGetOnly...)

	// ====================
	// REPORTS & EXPORTS
	// ====================
	apiRouter.HandleFunc("/reports/summary", staffOnly(handlers.GetReportsSummary)).Methods(MethodsGetOnly...)
	apiRouter.HandleFunc("/reports/weekly-risk-trend", staffOnly(handlers.GetWeeklyRiskTrend)).Methods(MethodsGetOnly...)
	apiRouter.HandleFunc("/reports/download/csv", staffOnly(handlers.DownloadCSV)).Methods(MethodsGetOnly...)
	apiRouter.HandleFunc("/reports/download/excel", staffOnly(handlers.DownloadExcel)).Methods(MethodsGetOnly...)
	apiRouter.HandleFunc("/reports/download/pdf", staffOnly(handlers.DownloadPDF)).Methods(MethodsGetOnly...)
}
