package entity

import "time"

// CallType clasifica el resultado técnico de la llamada.
type CallType string

// Tipos de llamada.
const (
	CallIncoming            CallType = "Incoming"
	CallOutgoing            CallType = "Outgoing"
	CallMissed              CallType = "Missed"
	CallIncomingMissed      CallType = "Incoming (Missed Call)"
	CallOutgoingBusy        CallType = "Outgoing (Busy)"
	CallOutgoingUnreachable CallType = "Outgoing (Not Reachable)"
)

// Valid verifica pertenencia al enum.
func (t CallType) Valid() bool {
	switch t {
	case CallIncoming, CallOutgoing, CallMissed, CallIncomingMissed, CallOutgoingBusy, CallOutgoingUnreachable:
		return true
	}
	return false
}

// CallPurpose clasifica el motivo de negocio de la llamada.
type CallPurpose string

// Motivos de llamada.
const (
	PurposePaymentRefund    CallPurpose = "Payment Refund"
	PurposeKYCUpdate        CallPurpose = "KYC Update"
	PurposePayout2025       CallPurpose = "Payout 2025"
	PurposePayout2024       CallPurpose = "Payout 2024"
	PurposeChequeIssued     CallPurpose = "Cheque Issued (Refund Date)"
	PurposeChequeRenewal    CallPurpose = "New Cheque Issued for Renewal"
	PurposeChequeAltered    CallPurpose = "New Cheque for Refund (Altered Date)"
	PurposeNCDDocument      CallPurpose = "NCD Document"
	PurposeNCDPayout        CallPurpose = "NCD Payout"
	PurposeAppointments     CallPurpose = "Appointments"
	PurposeOthers           CallPurpose = "Others"
)

// AllPurposes en el orden en que se reportan.
var AllPurposes = []CallPurpose{
	PurposePaymentRefund, PurposeKYCUpdate, PurposePayout2025, PurposePayout2024,
	PurposeChequeIssued, PurposeChequeRenewal, PurposeChequeAltered,
	PurposeNCDDocument, PurposeNCDPayout, PurposeAppointments, PurposeOthers,
}

// Valid verifica pertenencia al enum.
func (p CallPurpose) Valid() bool {
	for _, v := range AllPurposes {
		if p == v {
			return true
		}
	}
	return false
}

// Priority clasifica la urgencia de la llamada, independiente del motivo.
type Priority string

// Prioridades.
const (
	PriorityEmergency    Priority = "Emergency"
	PriorityImportant    Priority = "Important"
	PriorityManageable   Priority = "Manageable"
	PriorityAppointments Priority = "Appointments"
)

// AllPriorities en el orden en que se reportan.
var AllPriorities = []Priority{PriorityEmergency, PriorityImportant, PriorityManageable, PriorityAppointments}

// Valid verifica pertenencia al enum.
func (p Priority) Valid() bool {
	switch p {
	case PriorityEmergency, PriorityImportant, PriorityManageable, PriorityAppointments:
		return true
	}
	return false
}

// CallStatus indica si la llamada conectó.
type CallStatus string

// Estados de llamada.
const (
	StatusConnected   CallStatus = "Connected"
	StatusNotAnswered CallStatus = "Not Answered"
	StatusBusy        CallStatus = "Busy"
)

// Valid verifica pertenencia al enum.
func (s CallStatus) Valid() bool {
	switch s {
	case StatusConnected, StatusNotAnswered, StatusBusy:
		return true
	}
	return false
}

// CallLog es el registro autoritativo de una llamada: referencia siempre
// a un Customer y un Employee existentes.
type CallLog struct {
	ID           int64
	CustomerID   int64
	EmployeeID   int64
	CallDatetime time.Time
	CallType     CallType
	CallPurpose  CallPurpose
	CallStatus   CallStatus
	Priority     Priority
	Duration     *int // segundos
	Notes        string
	NextFollowup *time.Time // solo fecha, sin componente horario
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CallLogDetail es un CallLog unido con los nombres de cliente y empleado
// (la forma en que se expone hacia arriba).
type CallLogDetail struct {
	CallLog
	CustomerName  string
	CustomerPhone string
	EmployeeName  string
}
