package sqlite

import (
	"fmt"
	"strings"

	"github.com/bokol-ooch/temporizadores/pkg/model"
	"github.com/bokol-ooch/temporizadores/pkg/storage"
	"github.com/bokol-ooch/temporizadores/pkg/timestamp"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

func newRecordStore(db *sqlx.DB) *recordStore {
	return &recordStore{
		db: db,
	}
}

type recordStore struct {
	db *sqlx.DB
}

type sqlDataRecord struct {
	ID             int64  `db:"id"`
	Name           string `db:"nombre"`
	Shelf          string `db:"estante"`
	StartTime      string `db:"hora_inicio"`
	EndTime        string `db:"hora_fin"`
	ElapsedSeconds int64  `db:"tiempo_transcurrido"`
}

var sqlParamsRecord = []string{
	"id",
	"nombre",
	"estante",
	"hora_inicio",
	"hora_fin",
	"tiempo_transcurrido",
}

func (d *sqlDataRecord) Scan(m *model.Record) error {
	if m.StartTime.IsZero() || m.EndTime.IsZero() {
		return errors.New("record timestamps must be set")
	}

	d.ID = m.ID
	d.Name = m.Name
	d.Shelf = m.Shelf
	d.StartTime = timestamp.Format(m.StartTime)
	d.EndTime = timestamp.Format(m.EndTime)
	d.ElapsedSeconds = m.ElapsedSeconds

	return nil
}

func (d *sqlDataRecord) Model() (*model.Record, error) {
	startTime, err := timestamp.Parse(d.StartTime, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "record %d has an invalid hora_inicio", d.ID)
	}
	endTime, err := timestamp.Parse(d.EndTime, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "record %d has an invalid hora_fin", d.ID)
	}

	m := &model.Record{
		ID:             d.ID,
		Name:           d.Name,
		Shelf:          d.Shelf,
		StartTime:      startTime,
		EndTime:        endTime,
		ElapsedSeconds: d.ElapsedSeconds,
	}

	return m, nil
}

func (s *recordStore) FetchAll() ([]model.Record, error) {
	return fetchAllRecords(s.db)
}

func (s *recordStore) FetchFiltered(f storage.Filter) ([]model.Record, error) {
	return fetchFilteredRecords(s.db, f)
}

func (s *recordStore) Create(m *model.Record) error {
	return createRecord(s.db, m)
}

func selectRecords(db *sqlx.DB, query string, args ...interface{}) ([]model.Record, error) {
	rows := make([]sqlDataRecord, 0)
	if err := db.Select(&rows, query, args...); err != nil {
		return nil, err
	}

	models := make([]model.Record, 0, len(rows))
	for _, d := range rows {
		m, err := d.Model()
		if err != nil {
			return nil, errors.Wrap(err, "failed to convert SQL data to record model")
		}
		models = append(models, *m)
	}

	return models, nil
}

func fetchAllRecords(db *sqlx.DB) ([]model.Record, error) {
	query := fmt.Sprintf("SELECT %s FROM registros ORDER BY id DESC",
		strings.Join(sqlParamsRecord, ", "))

	models, err := selectRecords(db, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch all records")
	}

	return models, nil
}

func fetchFilteredRecords(db *sqlx.DB, f storage.Filter) ([]model.Record, error) {
	var (
		where []string
		args  []interface{}
	)

	if f.Name != "" {
		where = append(where, "nombre = ?")
		args = append(args, f.Name)
	}
	if !f.From.IsZero() {
		where = append(where, "datetime(hora_inicio) >= datetime(?)")
		args = append(args, timestamp.Format(f.From))
	}
	if !f.To.IsZero() {
		where = append(where, "datetime(hora_fin) < datetime(?)")
		args = append(args, timestamp.Format(f.To))
	}

	query := fmt.Sprintf("SELECT %s FROM registros", strings.Join(sqlParamsRecord, ", "))
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY id ASC"

	models, err := selectRecords(db, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch filtered records")
	}

	return models, nil
}

func createRecord(db *sqlx.DB, m *model.Record) error {
	d := sqlDataRecord{}
	if err := d.Scan(m); err != nil {
		return errors.Wrap(err, "failed to convert record model to SQL data")
	}

	// Remove the id column because it's assigned by AUTOINCREMENT
	sqlParamsWithoutID := make([]string, 0)
	for _, s := range sqlParamsRecord {
		if s != "id" {
			sqlParamsWithoutID = append(sqlParamsWithoutID, s)
		}
	}

	query := fmt.Sprintf(
		"INSERT INTO registros (%s) VALUES (%s)",
		strings.Join(sqlParamsWithoutID, ", "),
		":"+strings.Join(sqlParamsWithoutID, ", :"),
	)
	res, err := db.NamedExec(query, d)
	if err != nil {
		return errors.Wrap(err, "failed to create record")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return errors.Wrap(err, "failed to read record id")
	}
	m.ID = id
	m.StartTime = timestamp.Normalize(m.StartTime)
	m.EndTime = timestamp.Normalize(m.EndTime)

	return nil
}
