package dto

import "github.com/shopspring/decimal"

// EmployeePerformanceDTO desempeño de uno o todos los empleados en un rango.
type EmployeePerformanceDTO struct {
	TotalCalls          int             `json:"totalCalls"`
	ConnectedCalls      int             `json:"connectedCalls"`
	NotAnsweredCalls    int             `json:"notAnsweredCalls"`
	MissedCalls         int             `json:"missedCalls"`
	ByPurpose           map[string]int  `json:"byPurpose"`
	ConnectedPercentage decimal.Decimal `json:"connectedPercentage"`
	MissedPercentage    decimal.Decimal `json:"missedPercentage"`
}

// EmployeeBreakdownDTO desempeño detallado de un empleado concreto.
type EmployeeBreakdownDTO struct {
	TotalCalls          int             `json:"totalCalls"`
	ByType              map[string]int  `json:"byType"`
	ByPriority          map[string]int  `json:"byPriority"`
	ByPurpose           map[string]int  `json:"byPurpose"`
	ConnectedPercentage decimal.Decimal `json:"connectedPercentage"`
}

// PurposeSummaryItemDTO conteo y porcentaje de un motivo de llamada.
type PurposeSummaryItemDTO struct {
	Purpose    string          `json:"purpose"`
	Count      int             `json:"count"`
	Percentage decimal.Decimal `json:"percentage"`
}

// PurposeCountDTO conteo simple por motivo (sin porcentaje).
type PurposeCountDTO struct {
	Purpose string `json:"purpose"`
	Count   int    `json:"count"`
}

// TrendPointDTO un punto de la serie de tendencias.
type TrendPointDTO struct {
	Period string `json:"period"`
	Count  int    `json:"count"`
}

// MissedCallsDTO llamadas perdidas del rango y el subconjunto sin atender.
type MissedCallsDTO struct {
	MissedCalls []CallLogResponse `json:"missedCalls"`
	Unaddressed []CallLogResponse `json:"unaddressed"`
}

// FollowupBucketsDTO los cuatro cubos de seguimientos pendientes.
type FollowupBucketsDTO struct {
	Overdue  []CallLogResponse `json:"overdue"`
	Today    []CallLogResponse `json:"today"`
	Tomorrow []CallLogResponse `json:"tomorrow"`
	ThisWeek []CallLogResponse `json:"thisWeek"`
}

// TopContactedDTO cliente más contactado del mes.
type TopContactedDTO struct {
	CustomerID   int64  `json:"customerId"`
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
	Portfolio    string `json:"portfolio,omitempty"`
	CallCount    int    `json:"callCount"`
}

// CustomerEngagementDTO métricas de frecuencia/recencia de contacto.
type CustomerEngagementDTO struct {
	TopContacted        []TopContactedDTO  `json:"topContacted"`
	InactiveCustomers   []CustomerResponse `json:"inactiveCustomers"`
	StatusDistribution  map[string]int     `json:"statusDistribution"`
	AvgCallsPerCustomer decimal.Decimal    `json:"avgCallsPerCustomer"`
}
