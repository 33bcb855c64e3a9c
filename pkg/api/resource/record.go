package resource

import (
	"math"
	"time"

	"github.com/bokol-ooch/temporizadores/pkg/model"
	"github.com/bokol-ooch/temporizadores/pkg/timestamp"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// ErrIncompleteData is returned when a required field of a record is missing
var ErrIncompleteData = errors.New("incomplete data")

var validate = validator.New()

// RecordResource is the representation returned by GET /registros. The
// field names follow the columns of the registros table.
type RecordResource struct {
	ID             int64  `json:"id"`
	Name           string `json:"nombre"`
	Shelf          string `json:"estante"`
	StartTime      string `json:"hora_inicio"`
	EndTime        string `json:"hora_fin"`
	ElapsedSeconds int64  `json:"tiempo_transcurrido"`
}

// SaveRecordRequest is the body accepted by POST /guardar
type SaveRecordRequest struct {
	Name           string   `json:"nombre" validate:"required"`
	Shelf          string   `json:"estante" validate:"required"`
	StartTime      string   `json:"horaInicio" validate:"required"`
	EndTime        string   `json:"horaFin" validate:"required"`
	ElapsedSeconds *float64 `json:"tiempoTranscurrido" validate:"required"`
}

// SaveRecordResponse is the body returned by POST /guardar
type SaveRecordResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      int64  `json:"id,omitempty"`
}

func NewRecord(m *model.Record) *RecordResource {
	return &RecordResource{
		ID:             m.ID,
		Name:           m.Name,
		Shelf:          m.Shelf,
		StartTime:      timestamp.Format(m.StartTime),
		EndTime:        timestamp.Format(m.EndTime),
		ElapsedSeconds: m.ElapsedSeconds,
	}
}

// NewRecordList keeps the order of m
func NewRecordList(m []model.Record) []*RecordResource {
	out := make([]*RecordResource, 0, len(m))
	for i := range m {
		out = append(out, NewRecord(&m[i]))
	}
	return out
}

// ValidateRecord checks r for presence of every field before reading the
// timestamps. Date-times without an offset are read in loc. An elapsed time
// that does not fit an int64 counts as incomplete data.
func ValidateRecord(r *SaveRecordRequest, loc *time.Location) (*model.Record, error) {
	if err := validate.Struct(r); err != nil {
		return nil, errors.Wrap(ErrIncompleteData, err.Error())
	}

	rounded := math.Round(*r.ElapsedSeconds)
	if math.IsNaN(rounded) || rounded < math.MinInt64 || rounded >= math.MaxInt64 {
		return nil, errors.Wrapf(ErrIncompleteData, "tiempoTranscurrido %v out of range", *r.ElapsedSeconds)
	}

	startTime, err := timestamp.Parse(r.StartTime, loc)
	if err != nil {
		return nil, errors.Wrap(err, "horaInicio")
	}
	endTime, err := timestamp.Parse(r.EndTime, loc)
	if err != nil {
		return nil, errors.Wrap(err, "horaFin")
	}

	m := &model.Record{
		Name:           r.Name,
		Shelf:          r.Shelf,
		StartTime:      startTime,
		EndTime:        endTime,
		ElapsedSeconds: int64(rounded),
	}

	return m, nil
}
