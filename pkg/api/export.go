package api

import (
	"net/http"
	"time"

	"github.com/bokol-ooch/temporizadores/pkg/export"
	"github.com/bokol-ooch/temporizadores/pkg/metrics"
	"github.com/bokol-ooch/temporizadores/pkg/storage"
	"github.com/bokol-ooch/temporizadores/pkg/timestamp"
	"github.com/labstack/echo"
	log "github.com/sirupsen/logrus"
)

// exportFilter reads the optional nombre, fechaInicio and fechaFin query
// parameters. Dates are calendar days: fechaInicio starts at its midnight,
// fechaFin includes the whole day by bounding at the following midnight.
// Date-times without an offset are read in loc, as POST /guardar does.
func exportFilter(c echo.Context, loc *time.Location) (storage.Filter, error) {
	f := storage.Filter{
		Name: c.QueryParam("nombre"),
	}

	if v := c.QueryParam("fechaInicio"); v != "" {
		from, err := timestamp.ParseDate(v, loc)
		if err != nil {
			return f, err
		}
		f.From = from
	}

	if v := c.QueryParam("fechaFin"); v != "" {
		to, err := timestamp.ParseDate(v, loc)
		if err != nil {
			return f, err
		}
		f.To = timestamp.NextDay(to)
	}

	return f, nil
}

func (h *Handler) handleExportCSV(c echo.Context) error {
	f, err := exportFilter(c, h.location)
	if err != nil {
		log.WithField("error", err).Debug("api: rejected export filter")
		metrics.Exports.WithLabelValues(metrics.ResultMalformed).Inc()
		return c.String(http.StatusBadRequest, msgInvalidDate)
	}

	m, err := h.store.Records().FetchFiltered(f)
	if err != nil {
		log.Error("api: failed to read records for export: ", err)
		metrics.Exports.WithLabelValues(metrics.ResultError).Inc()
		return c.String(http.StatusInternalServerError, msgExportFailed)
	}

	data, err := export.Render(m, h.location)
	if err != nil {
		log.Error("api: failed to render export: ", err)
		metrics.Exports.WithLabelValues(metrics.ResultError).Inc()
		return c.String(http.StatusInternalServerError, msgExportFailed)
	}

	metrics.Exports.WithLabelValues(metrics.ResultOK).Inc()
	metrics.ExportedRows.Add(float64(len(m)))

	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+export.FileName)
	return c.Blob(http.StatusOK, export.ContentType, data)
}
