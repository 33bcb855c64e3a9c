// Package export renders session records as a CSV document for download.
package export

import (
	"bytes"
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/bokol-ooch/temporizadores/pkg/model"
	"github.com/bokol-ooch/temporizadores/pkg/timestamp"
	"github.com/pkg/errors"
)

// FileName is the attachment name offered to the browser
const FileName = "registros_filtrados.csv"

// ContentType of the rendered document
const ContentType = "text/csv; charset=utf-8"

// Header is the first row of every export, one column per record field
var Header = []string{"ID", "Nombre", "Estante", "Hora Inicio", "Hora Fin", "Tiempo (seg)"}

// Row returns the CSV fields of m with timestamps rendered in loc
func Row(m *model.Record, loc *time.Location) []string {
	return []string{
		strconv.FormatInt(m.ID, 10),
		m.Name,
		m.Shelf,
		timestamp.FormatLocal(m.StartTime, loc),
		timestamp.FormatLocal(m.EndTime, loc),
		strconv.FormatInt(m.ElapsedSeconds, 10),
	}
}

// Write encodes the header followed by one row per record
func Write(w io.Writer, records []model.Record, loc *time.Location) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return errors.Wrap(err, "failed to write csv header")
	}
	for i := range records {
		if err := cw.Write(Row(&records[i], loc)); err != nil {
			return errors.Wrapf(err, "failed to write csv row for record %d", records[i].ID)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Wrap(err, "failed to flush csv")
	}

	return nil
}

// Render returns the complete document, nothing is emitted on failure
func Render(records []model.Record, loc *time.Location) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, records, loc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
