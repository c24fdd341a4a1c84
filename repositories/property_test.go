package repositories

import (
	"fmt"
	"testing"

	"estate-hub/errors"

	"github.com/stretchr/testify/require"
)

func TestPropertyRepository_Create_And_Get(t *testing.T) {
	req := require.New(t)
	repo := NewPropertyRepository(openDB(t), testLog)
	repo.now = ticker()

	created, err := repo.Create(newProperty("Lekki duplex"))
	req.NoError(err)
	req.NotEmpty(created.ID)
	req.Equal("2024-05-01T10:01:00.000Z", created.CreatedAt)
	req.Equal(created.CreatedAt, created.UpdatedAt)

	fetched, err := repo.Get(created.ID)
	req.NoError(err)
	req.Equal(created, fetched)
}

func TestPropertyRepository_Create_Rejects_Invalid_Listing(t *testing.T) {
	req := require.New(t)
	repo := NewPropertyRepository(openDB(t), testLog)

	property := newProperty("Lekki duplex")
	property.Area = 0
	_, err := repo.Create(property)
	req.ErrorIs(err, errors.ErrValidation)

	page, err := repo.List(1, 10)
	req.NoError(err)
	req.Empty(page.Data)
}

func TestPropertyRepository_Get_Missing(t *testing.T) {
	req := require.New(t)
	repo := NewPropertyRepository(openDB(t), testLog)

	_, err := repo.Get("nope")
	req.ErrorIs(err, errors.ErrNotFound)
}

func TestPropertyRepository_Get_Corrupted_Record(t *testing.T) {
	req := require.New(t)
	db := openDB(t)
	repo := NewPropertyRepository(db, testLog)
	corrupt(t, db, propertyKey("bad"), `{"id":"bad"}`)

	_, err := repo.Get("bad")
	req.ErrorIs(err, errors.ErrCorruptedRecord)
	req.ErrorIs(err, errors.ErrValidation)

	corrupt(t, db, propertyKey("broken"), `{"id":`)
	_, err = repo.Get("broken")
	req.ErrorIs(err, errors.ErrCorruptedRecord)
	req.ErrorIs(err, errors.ErrParse)
}

func TestPropertyRepository_List(t *testing.T) {
	req := require.New(t)
	repo := NewPropertyRepository(openDB(t), testLog)
	repo.now = ticker()

	var ids []string
	for i := 1; i <= 5; i++ {
		created, err := repo.Create(newProperty(fmt.Sprintf("Listing %d", i)))
		req.NoError(err)
		ids = append(ids, created.ID)
	}

	tests := []struct {
		name    string
		page    int
		perPage int
		want    []string
	}{
		{"First page is newest first", 1, 2, []string{ids[4], ids[3]}},
		{"Middle page", 2, 2, []string{ids[2], ids[1]}},
		{"Last page is partial", 3, 2, []string{ids[0]}},
		{"Everything fits", 1, 20, []string{ids[4], ids[3], ids[2], ids[1], ids[0]}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			page, err := repo.List(tt.page, tt.perPage)
			req.NoError(err)
			req.Equal(5, page.TotalCount)
			req.Equal(tt.page, page.CurrentPage)
			req.Equal(tt.perPage, page.ItemsPerPage)
			got := make([]string, 0, len(page.Data))
			for _, p := range page.Data {
				got = append(got, p.ID)
			}
			req.Equal(tt.want, got)
		})
	}

	page, err := repo.List(1, 2)
	req.NoError(err)
	req.Equal(3, page.TotalPages)
}

func TestPropertyRepository_List_Invalid_Pages(t *testing.T) {
	repo := NewPropertyRepository(openDB(t), testLog)
	_, err := repo.Create(newProperty("Only one"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		page    int
		perPage int
	}{
		{"Page zero", 0, 10},
		{"No item per page", 1, 0},
		{"Past the last page", 2, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.List(tt.page, tt.perPage)
			require.ErrorIs(t, err, errors.ErrValidation)
		})
	}
}

func TestPropertyRepository_List_Empty(t *testing.T) {
	req := require.New(t)
	repo := NewPropertyRepository(openDB(t), testLog)

	page, err := repo.List(1, 20)
	req.NoError(err)
	req.NotNil(page.Data)
	req.Empty(page.Data)
	req.Equal(0, page.TotalCount)
	req.Equal(0, page.TotalPages)
}
