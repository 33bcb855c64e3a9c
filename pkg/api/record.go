package api

import (
	"net/http"

	"github.com/bokol-ooch/temporizadores/pkg/api/resource"
	"github.com/bokol-ooch/temporizadores/pkg/metrics"
	"github.com/bokol-ooch/temporizadores/pkg/timestamp"
	"github.com/labstack/echo"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	msgSaved          = "Datos guardados correctamente."
	msgIncompleteData = "Datos incompletos"
	msgInvalidDate    = "Fecha inválida"
	msgSaveFailed     = "Error al guardar datos"
	msgFetchFailed    = "Error al consultar datos"
	msgExportFailed   = "Error al generar CSV"
)

func (h *Handler) handleSaveRecord(c echo.Context) error {
	r := &resource.SaveRecordRequest{}
	if err := c.Bind(r); err != nil {
		log.WithField("error", err).Debug("api: failed to bind record")
		metrics.RecordsSaved.WithLabelValues(metrics.ResultIncomplete).Inc()
		return c.JSON(http.StatusBadRequest, failure(msgIncompleteData))
	}

	m, err := resource.ValidateRecord(r, h.location)
	if err != nil {
		log.WithField("error", err).Debug("api: rejected record")
		switch errors.Cause(err) {
		case resource.ErrIncompleteData:
			metrics.RecordsSaved.WithLabelValues(metrics.ResultIncomplete).Inc()
			return c.JSON(http.StatusBadRequest, failure(msgIncompleteData))
		case timestamp.ErrMalformed:
			metrics.RecordsSaved.WithLabelValues(metrics.ResultMalformed).Inc()
			return c.JSON(http.StatusBadRequest, failure(msgInvalidDate))
		default:
			metrics.RecordsSaved.WithLabelValues(metrics.ResultError).Inc()
			return c.JSON(http.StatusInternalServerError, failure(msgSaveFailed))
		}
	}

	if err := h.store.Records().Create(m); err != nil {
		log.Error("api: failed to insert record: ", err)
		metrics.RecordsSaved.WithLabelValues(metrics.ResultError).Inc()
		return c.JSON(http.StatusInternalServerError, failure(msgSaveFailed))
	}
	metrics.RecordsSaved.WithLabelValues(metrics.ResultOK).Inc()

	log.WithFields(log.Fields{
		"id":      m.ID,
		"nombre":  m.Name,
		"estante": m.Shelf,
	}).Info("Record saved")

	if err := h.publisher.Publish(m); err != nil {
		log.Warn("api: failed to publish record event: ", err)
		metrics.EventPublishFailures.Inc()
	}

	return c.JSON(http.StatusOK, &resource.SaveRecordResponse{
		Success: true,
		Message: msgSaved,
		ID:      m.ID,
	})
}

func (h *Handler) handleFetchRecords(c echo.Context) error {
	m, err := h.store.Records().FetchAll()
	if err != nil {
		log.Error("api: failed to fetch records: ", err)
		return c.String(http.StatusInternalServerError, msgFetchFailed)
	}

	return c.JSON(http.StatusOK, resource.NewRecordList(m))
}

func failure(message string) *resource.SaveRecordResponse {
	return &resource.SaveRecordResponse{
		Success: false,
		Message: message,
	}
}
