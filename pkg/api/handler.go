package api

import (
	"time"

	"github.com/bokol-ooch/temporizadores/pkg/events"
	"github.com/bokol-ooch/temporizadores/pkg/storage"
	"github.com/labstack/echo"
	log "github.com/sirupsen/logrus"
)

// Handler contains all properties to serve the API
type Handler struct {
	store      storage.Interface
	publisher  events.Publisher
	subscriber events.Subscriber
	location   *time.Location
}

// NewHandler create a new API handler. Saved records are announced on
// publisher, a nil subscriber disables the realtime events endpoint.
// Timestamps are displayed and, when they lack an offset, read in location.
func NewHandler(store storage.Interface, publisher events.Publisher, subscriber events.Subscriber, location *time.Location) *Handler {
	if publisher == nil {
		publisher = events.Nop{}
	}
	if location == nil {
		location = time.UTC
	}

	return &Handler{
		store:      store,
		publisher:  publisher,
		subscriber: subscriber,
		location:   location,
	}
}

// RegisterRoutes attaches the handlers to the echo web server
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	log.Debug("Register API routes")
	e.POST("/guardar", h.handleSaveRecord)
	e.GET("/registros", h.handleFetchRecords)
	e.GET("/exportar-csv", h.handleExportCSV)

	if h.subscriber != nil {
		e.GET("/eventos", h.realtimeEventsHandler())
	}
}
