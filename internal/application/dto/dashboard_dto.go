package dto

// EmployeeMatrixRowDTO fila de la matriz empleado × categoría del
// dashboard de administración.
type EmployeeMatrixRowDTO struct {
	EmployeeID   int64          `json:"employeeId"`
	EmployeeName string         `json:"employeeName"`
	Counts       map[string]int `json:"counts"`
	Total        int            `json:"total"`
}

// AdminDashboardSummaryDTO totales del día o rango consultado.
type AdminDashboardSummaryDTO struct {
	TotalCalls          int `json:"totalCalls"`
	UniqueCustomerCalls int `json:"uniqueCustomerCalls"`
	PendingFollowups    int `json:"pendingFollowups"`
}

// AdminDashboardDTO vista de administración para un día o rango.
type AdminDashboardDTO struct {
	Summary               AdminDashboardSummaryDTO `json:"summary"`
	EmployeePriorityStats []EmployeeMatrixRowDTO   `json:"employeePriorityStats"`
	EmployeePurposeStats  []EmployeeMatrixRowDTO   `json:"employeeCallPurposeStats"`
}

// EmployeeDashboardSummaryDTO contadores propios del empleado.
type EmployeeDashboardSummaryDTO struct {
	CallsToday       int `json:"callsToday"`
	CallsThisWeek    int `json:"callsThisWeek"`
	CallsThisMonth   int `json:"callsThisMonth"`
	PendingFollowups int `json:"pendingFollowups"`
}

// EmployeeDashboardDTO vista propia del empleado autenticado.
type EmployeeDashboardDTO struct {
	Summary              EmployeeDashboardSummaryDTO `json:"summary"`
	RecentCalls          []CallLogResponse           `json:"recentCalls"`
	TodayFollowups       []CallLogResponse           `json:"todayFollowups"`
	PerformanceThisMonth []PurposeCountDTO           `json:"performanceThisMonth"`
}
