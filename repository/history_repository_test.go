package repository

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestHistoryListAppliesFilters(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHistoryRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `syncsav`")).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(120))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY IDSyncNuxiDev DESC")).
		WillReturnRows(sqlmock.NewRows([]string{"IDSyncNuxiDev", "IDSynchro", "TypeEnreg", "DateHeure", "RefDoc", "Etat"}).
			AddRow(12, "SYNC01", "ART", time.Now(), "FA-1", -1))

	filter := HistoryFilter{
		IDSynchro:  "SYNC01",
		ErrorsOnly: true,
		Date:       "2026-08-27",
		Search:     "FA",
		Limit:      50,
	}
	entries, total, err := repo.List(nil, filter)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 120 {
		t.Errorf("total = %d", total)
	}
	if len(entries) != 1 || entries[0].IDSyncNuxiDev != 12 || entries[0].Status != -1 {
		t.Errorf("entries = %+v", entries)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestHistoryGetLog(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHistoryRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("Log FROM `syncsav`")).
		WillReturnRows(sqlmock.NewRows([]string{"Log"}).AddRow("import ok"))

	log, err := repo.GetLog(nil, 12, "SYNC01")
	if err != nil {
		t.Fatalf("get log: %v", err)
	}
	if log != "import ok" {
		t.Errorf("log = %q", log)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestHistoryUpdateStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHistoryRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `syncsav` SET `Etat`=?")).
		WithArgs(-1, "INT-1", "SYNC01").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.UpdateStatus(nil, "INT-1", "SYNC01", -1); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestQueueDeleteOneIsLimited(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewQueueRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM syncnuxidev WHERE IDInterne = ? AND IDSynchro = ? LIMIT 1")).
		WithArgs("INT-1", "SYNC01").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteOne(nil, "INT-1", "SYNC01"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestQueueLatestEndpointMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewQueueRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY DateHeure DESC")).
		WillReturnRows(sqlmock.NewRows([]string{"IDSynchro", "IP_NuxiAutomate", "Port", "DateHeure"}))

	endpoint, err := repo.LatestEndpoint(nil, "SYNC01")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if endpoint != nil {
		t.Errorf("expected nil endpoint, got %+v", endpoint)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
