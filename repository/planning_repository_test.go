package repository

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockDB returns a GORM handle over a sqlmock connection.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}
	return db, mock
}

func TestListBySyncIDNormalizesTime(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPlanningRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`TIME_FORMAT(Heure, "%H:%i") as Heure`)).
		WithArgs("SYNC01").
		WillReturnRows(sqlmock.NewRows([]string{"IDSynchro", "Jour", "Heure", "Ordre"}).
			AddRow("SYNC01", "2", "06:15", "C").
			AddRow("SYNC01", "8", "22:00", "R"))

	rows, err := repo.ListBySyncID(nil, "SYNC01")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Time != "06:15" || rows[0].Day != "2" || rows[0].Kind != "C" {
		t.Errorf("row 0 = %+v", rows[0])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestCountsBySyncID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPlanningRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("Ordre, COUNT(*) as total")).
		WithArgs("SYNC01").
		WillReturnRows(sqlmock.NewRows([]string{"Ordre", "total"}).
			AddRow("C", 3).
			AddRow("I", 1))

	counts, err := repo.CountsBySyncID(nil, "SYNC01")
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if counts.Full != 3 || counts.Incremental != 0 || counts.Import != 1 {
		t.Errorf("counts = %+v", counts)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
