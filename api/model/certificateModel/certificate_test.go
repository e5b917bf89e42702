package certificatemodel

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunthewhat/easy-cert-claim/test/helpers"
	"github.com/sunthewhat/easy-cert-claim/type/shared/model"
)

// TestCertificateRepository_Reserve tests that a reservation gets a fresh id and no number
func TestCertificateRepository_Reserve(t *testing.T) {
	container := helpers.SetupTestDatabase(t)
	db := helpers.GetTestDB(t, container)
	repo := NewCertificateRepository(db)
	event := helpers.SeedEvent(t, db, "Go Workshop", "WS/2026", "Jane Doe")

	first, err := repo.Reserve(event.ID, "Jane Doe")
	require.NoError(t, err)
	second, err := repo.Reserve(event.ID, "Jane Doe")
	require.NoError(t, err)

	assert.NotZero(t, first.ID)
	assert.Greater(t, second.ID, first.ID)
	assert.Nil(t, first.CertNo)
	assert.False(t, first.IsCompleted())
	assert.False(t, first.IssuedAt.IsZero())
}

// TestCertificateRepository_SetCertificateNumber tests number persistence
func TestCertificateRepository_SetCertificateNumber(t *testing.T) {
	container := helpers.SetupTestDatabase(t)
	db := helpers.GetTestDB(t, container)
	repo := NewCertificateRepository(db)
	event := helpers.SeedEvent(t, db, "Go Workshop", "WS/2026")

	cert, err := repo.Reserve(event.ID, "Jane Doe")
	require.NoError(t, err)

	require.NoError(t, repo.SetCertificateNumber(cert.ID, "042/WS/2026"))

	found, err := repo.GetById(cert.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.True(t, found.IsCompleted())
	assert.Equal(t, "042/WS/2026", *found.CertNo)

	err = repo.SetCertificateNumber(cert.ID+1000, "999/WS/2026")
	assert.True(t, errors.Is(err, ErrCertificateNotFound))
}

// TestCertificateRepository_Delete tests that a released reservation is gone
func TestCertificateRepository_Delete(t *testing.T) {
	container := helpers.SetupTestDatabase(t)
	db := helpers.GetTestDB(t, container)
	repo := NewCertificateRepository(db)
	event := helpers.SeedEvent(t, db, "Go Workshop", "WS/2026")

	cert, err := repo.Reserve(event.ID, "Jane Doe")
	require.NoError(t, err)

	require.NoError(t, repo.Delete(cert.ID))
	helpers.AssertRecordNotExists(t, db, &model.Certificate{}, "id = ?", cert.ID)

	found, err := repo.GetById(cert.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	assert.NoError(t, repo.Delete(cert.ID), "deleting twice is harmless")
}

// TestCertificateRepository_ListByEvent tests per-event listing
func TestCertificateRepository_ListByEvent(t *testing.T) {
	container := helpers.SetupTestDatabase(t)
	db := helpers.GetTestDB(t, container)
	repo := NewCertificateRepository(db)
	workshop := helpers.SeedEvent(t, db, "Go Workshop", "WS")
	meetup := helpers.SeedEvent(t, db, "Meetup", "MU")

	for _, name := range []string{"Jane Doe", "Budi Santoso"} {
		_, err := repo.Reserve(workshop.ID, name)
		require.NoError(t, err)
	}
	_, err := repo.Reserve(meetup.ID, "Jane Doe")
	require.NoError(t, err)

	certs, err := repo.ListByEvent(workshop.ID)
	require.NoError(t, err)
	assert.Len(t, certs, 2)
	for _, cert := range certs {
		assert.Equal(t, workshop.ID, cert.EventID)
	}
}

// TestCertificateRepository_DuplicateNumberRejected tests the unique index on cert_no
func TestCertificateRepository_DuplicateNumberRejected(t *testing.T) {
	container := helpers.SetupTestDatabase(t)
	repo := NewCertificateRepository(container.DB)
	event := helpers.SeedEvent(t, container.DB, "Go Workshop", "WS")

	first, err := repo.Reserve(event.ID, "Jane Doe")
	require.NoError(t, err)
	second, err := repo.Reserve(event.ID, "Jane Doe")
	require.NoError(t, err)

	require.NoError(t, repo.SetCertificateNumber(first.ID, "001/WS"))
	assert.Error(t, repo.SetCertificateNumber(second.ID, "001/WS"))
}

// TestCertificateRepository_Concurrency tests that concurrent reservations never share an id
func TestCertificateRepository_Concurrency(t *testing.T) {
	container := helpers.SetupTestDatabase(t)
	repo := NewCertificateRepository(container.DB)
	event := helpers.SeedEvent(t, container.DB, "Go Workshop", "WS")

	const workers = 20
	ids := make(chan uint, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cert, err := repo.Reserve(event.ID, "Jane Doe")
			if assert.NoError(t, err) {
				ids <- cert.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[uint]bool{}
	for id := range ids {
		assert.False(t, seen[id], "id %d handed out twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers)
}
