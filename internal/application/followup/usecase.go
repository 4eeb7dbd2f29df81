// Package followup deriva los cubos de seguimientos pendientes a partir
// de next_followup_date. No hay agenda persistida: los cubos se
// recalculan en cada consulta con rangos de fecha explícitos, nunca con
// comparación lexicográfica de strings.
package followup

import (
	"time"

	"github.com/jhoicas/callcrm-api/internal/application/dto"
	"github.com/jhoicas/callcrm-api/internal/domain/policy"
	"github.com/jhoicas/callcrm-api/internal/domain/repository"
)

// Bucket clasificación de un seguimiento respecto a "hoy".
type Bucket string

// Cubos posibles. None aplica a fechas más allá de una semana.
const (
	BucketOverdue  Bucket = "overdue"
	BucketToday    Bucket = "today"
	BucketTomorrow Bucket = "tomorrow"
	BucketThisWeek Bucket = "thisWeek"
	BucketNone     Bucket = "none"
)

// Day trunca un instante a su fecha (00:00 en la zona del instante).
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// For clasifica una fecha de seguimiento. Cada fecha cae exactamente en
// un cubo: vencido, hoy, mañana, resto de la semana (hoy+2 .. hoy+7) o
// ninguno.
func For(next, today time.Time) Bucket {
	n, d := Day(next), Day(today)
	switch {
	case n.Before(d):
		return BucketOverdue
	case n.Equal(d):
		return BucketToday
	case n.Equal(d.AddDate(0, 0, 1)):
		return BucketTomorrow
	case !n.After(d.AddDate(0, 0, 7)):
		return BucketThisWeek
	}
	return BucketNone
}

// Range devuelve el rango semiabierto [From, To) de fechas de un cubo.
func Range(b Bucket, today time.Time) repository.FollowupRange {
	d := Day(today)
	day := func(offset int) *time.Time {
		t := d.AddDate(0, 0, offset)
		return &t
	}
	switch b {
	case BucketOverdue:
		return repository.FollowupRange{To: day(0)}
	case BucketToday:
		return repository.FollowupRange{From: day(0), To: day(1)}
	case BucketTomorrow:
		return repository.FollowupRange{From: day(1), To: day(2)}
	case BucketThisWeek:
		return repository.FollowupRange{From: day(2), To: day(8)}
	}
	return repository.FollowupRange{}
}

// UseCase consultas de seguimientos pendientes.
type UseCase struct {
	logs repository.CallLogRepository
	now  func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(logs repository.CallLogRepository) *UseCase {
	return &UseCase{logs: logs, now: time.Now}
}

// WithClock fija el reloj (tests).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// Buckets devuelve los cuatro cubos para el actor: un Agent ve solo sus
// registros, un Admin todos.
func (uc *UseCase) Buckets(actor policy.Actor) (*dto.FollowupBucketsDTO, error) {
	return uc.bucketsFor(policy.ScopeEmployee(actor, 0))
}

// AllBuckets versión sin scoping (reporte de administración).
func (uc *UseCase) AllBuckets() (*dto.FollowupBucketsDTO, error) {
	return uc.bucketsFor(0)
}

func (uc *UseCase) bucketsFor(employeeID int64) (*dto.FollowupBucketsDTO, error) {
	today := uc.now()

	out := &dto.FollowupBucketsDTO{}
	for _, b := range []struct {
		bucket Bucket
		dst    *[]dto.CallLogResponse
	}{
		{BucketOverdue, &out.Overdue},
		{BucketToday, &out.Today},
		{BucketTomorrow, &out.Tomorrow},
		{BucketThisWeek, &out.ThisWeek},
	} {
		list, err := uc.logs.ListFollowups(employeeID, Range(b.bucket, today))
		if err != nil {
			return nil, err
		}
		*b.dst = dto.NewCallLogResponses(list)
	}
	return out, nil
}
