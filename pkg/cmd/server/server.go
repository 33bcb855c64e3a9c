package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/bokol-ooch/temporizadores/config"
	"github.com/bokol-ooch/temporizadores/pkg/api"
	"github.com/bokol-ooch/temporizadores/pkg/events"
	"github.com/bokol-ooch/temporizadores/pkg/events/natsio"
	"github.com/bokol-ooch/temporizadores/pkg/logging"
	"github.com/bokol-ooch/temporizadores/pkg/storage"
	"github.com/bokol-ooch/temporizadores/pkg/storage/memory"
	"github.com/bokol-ooch/temporizadores/pkg/storage/sqlite"
	"github.com/bokol-ooch/temporizadores/pkg/timestamp"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type recordServer struct {
	c *config.Config

	quitCh chan bool
	doneCh chan bool
	errCh  chan error

	store   storage.Interface
	nc      *natsio.Client
	logFile io.Closer
	e       *echo.Echo
}

func newRecordServer(c *config.Config) (*recordServer, error) {
	logFile, err := logging.Configure(logging.Options{
		Level: c.LogLevel,
		File:  c.LogFile,
	})
	if err != nil {
		return nil, err
	}

	s := &recordServer{
		c:       c,
		quitCh:  make(chan bool),
		doneCh:  make(chan bool),
		errCh:   make(chan error, 1),
		logFile: logFile,
	}

	location, err := timestamp.LoadLocation(c.DisplayTimezone)
	if err != nil {
		s.Close()
		return nil, err
	}

	s.store, err = openStore(c)
	if err != nil {
		s.Close()
		return nil, err
	}

	var (
		publisher  events.Publisher = events.Nop{}
		subscriber events.Subscriber
	)
	if c.NATSEnabled() {
		s.nc, err = natsio.New(c.NATSServerURL, c.NATSSubject)
		if err != nil {
			s.Close()
			return nil, err
		}
		publisher, subscriber = s.nc, s.nc
	}

	s.e = newEcho(api.NewHandler(s.store, publisher, subscriber, location), c.StaticDir)

	return s, nil
}

func openStore(c *config.Config) (storage.Interface, error) {
	if c.UseMemoryStore() {
		log.Warn("Using in-memory store, records are lost on exit")
		return memory.NewStore(), nil
	}

	db, err := sqlite.Open(c.DatabaseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open database %q", c.DatabaseURL)
	}
	log.WithField("path", c.DatabaseURL).Info("Connected to SQLite")

	return sqlite.NewStore(db), nil
}

// newEcho builds the web server: the API routes, the metrics endpoint and
// the static front end for every other path.
func newEcho(h *api.Handler, staticDir string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(logger())

	h.RegisterRoutes(e)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	if staticDir != "" {
		e.Static("/", staticDir)
	}

	return e
}

func (s *recordServer) Serve() {
	go func() {
		log.WithFields(log.Fields{
			"host": s.c.BindHost,
			"port": s.c.BindPort,
		}).Info("Starting server")

		err := s.e.Start(fmt.Sprintf("%s:%d", s.c.BindHost, s.c.BindPort))
		if err != nil && err != http.ErrServerClosed {
			log.Error("failed to start server: ", err)
			s.errCh <- err
		}
	}()

	// Wait until receiving the quit signal
	<-s.quitCh
	log.Info("Shutdown signal received")

	// Create a 10 second timeout context
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown the echo web server
	if err := s.e.Shutdown(ctx); err != nil {
		s.e.Logger.Error(err)
	}

	// We've done!
	s.doneCh <- true
}

// logger returns a middleware that logs HTTP requests.
func logger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()
			start := time.Now()

			errMsg := ""
			if err := next(c); err != nil {
				c.Error(err)
				errMsg = err.Error()
			}
			stop := time.Now()

			log.WithFields(log.Fields{
				"remote_ip":     c.RealIP(),
				"host":          req.Host,
				"method":        req.Method,
				"uri":           req.RequestURI,
				"protocol":      req.Proto,
				"user_agent":    req.UserAgent(),
				"status":        res.Status,
				"status_text":   http.StatusText(res.Status),
				"referer":       req.Referer(),
				"error":         errMsg,
				"bytes_out":     res.Size,
				"latency":       stop.Sub(start).Nanoseconds(),
				"latency_human": stop.Sub(start).String(),
			}).Infof("%s %s %s %d %s", req.Method, req.RequestURI, req.Proto,
				res.Status, strconv.FormatInt(res.Size, 10))

			return nil
		}
	}
}

func (s *recordServer) Shutdown() {
	// Send the quit signal to the Serve() routine
	s.quitCh <- true

	// Wait up to 10 seconds
	select {
	case <-s.doneCh:
		log.Info("Shutdown server successful")
	case <-time.After(10 * time.Second):
		log.Error("Shutdown server failed")
	}
}

// Close releases the event connection, the store and the log file
func (s *recordServer) Close() {
	if s.nc != nil {
		if err := s.nc.Close(); err != nil {
			log.Warn("failed to close NATS connection: ", err)
		}
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Warn("failed to close store: ", err)
		}
	}
	if s.logFile != nil {
		s.logFile.Close()
	}
}

func RunServe(c *config.Config) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		s, err := newRecordServer(c)
		if err != nil {
			log.Error("failed to create new server instance: ", err)
			os.Exit(1)
		}
		defer s.Close()

		go s.Serve()

		// Wait for interrupt signal to gracefully shutdown the server
		quitCh := make(chan os.Signal, 1)
		signal.Notify(quitCh, os.Interrupt, syscall.SIGTERM)

		select {
		case <-quitCh:
			s.Shutdown()
		case <-s.errCh:
			s.Shutdown()
			s.Close()
			os.Exit(1)
		}
	}
}
