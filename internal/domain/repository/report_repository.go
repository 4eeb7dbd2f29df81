package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/callcrm-api/internal/domain/entity"
)

// PerformanceCounts totales de llamadas por resultado para un rango.
type PerformanceCounts struct {
	Total       int
	Connected   int
	NotAnswered int
	Missed      int
}

// LabelCount conteo agrupado genérico (purpose, priority, type, status).
type LabelCount struct {
	Label string
	Count int
}

// CustomerCallCount cliente con su número de llamadas en un rango.
type CustomerCallCount struct {
	CustomerID   int64
	CustomerName string
	Phone        string
	Portfolio    string
	Count        int
}

// EmployeeBucketCount una celda de la matriz empleado × categoría.
// Bucket vacío representa un empleado sin llamadas en el rango
// (producto del LEFT JOIN).
type EmployeeBucketCount struct {
	EmployeeID     int64
	EmployeeName   string
	EmployeeStatus string
	Bucket         string
	Count          int
}

// ReportRepository consultas de solo lectura para reportes y dashboards.
// employeeID == 0 y extremos nil del rango significan "sin filtro".
type ReportRepository interface {
	PerformanceCounts(ctx context.Context, employeeID int64, from, to *time.Time) (PerformanceCounts, error)
	PurposeCounts(ctx context.Context, employeeID int64, from, to *time.Time) ([]LabelCount, error)
	PriorityCounts(ctx context.Context, employeeID int64, from, to *time.Time) ([]LabelCount, error)
	TypeCounts(ctx context.Context, employeeID int64, from, to *time.Time) ([]LabelCount, error)
	// CallDatetimes devuelve las fechas de llamada del rango; la agrupación
	// por período se hace en Go para evitar funciones de fecha no portables.
	CallDatetimes(ctx context.Context, from, to *time.Time) ([]time.Time, error)
	// MissedCalls registros con call_type = 'Missed' en el rango,
	// ordenados por call_datetime descendente.
	MissedCalls(ctx context.Context, from, to *time.Time) ([]*entity.CallLogDetail, error)
	CountCalls(ctx context.Context, employeeID int64, from, to *time.Time) (int, error)
	CountUniqueCustomers(ctx context.Context, from, to time.Time) (int, error)
	TopContactedCustomers(ctx context.Context, from, to time.Time, limit int) ([]CustomerCallCount, error)
	// InactiveCustomers clientes Active con last_contact_date anterior a
	// before o nula, ordenados por last_contact_date descendente.
	InactiveCustomers(ctx context.Context, before time.Time) ([]*entity.Customer, error)
	CustomerStatusDistribution(ctx context.Context) ([]LabelCount, error)
	// AvgCallsPerCustomer promedio de llamadas por cliente (media de los
	// conteos por cliente); cero si no hay llamadas.
	AvgCallsPerCustomer(ctx context.Context) (decimal.Decimal, error)
	// EmployeePriorityMatrix / EmployeePurposeMatrix: LEFT JOIN de empleados
	// contra llamadas del rango; los empleados sin llamadas aparecen con
	// Bucket vacío y Count 0.
	EmployeePriorityMatrix(ctx context.Context, from, to time.Time) ([]EmployeeBucketCount, error)
	EmployeePurposeMatrix(ctx context.Context, from, to time.Time) ([]EmployeeBucketCount, error)
}
