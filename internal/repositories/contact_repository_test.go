package repository_test

import (
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tokoretail/retail-platform/internal/models"
	repository "github.com/tokoretail/retail-platform/internal/repositories"
)

func TestCustomerRepository(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewCustomerRepo(db)
	ctx := t.Context()

	cols := []string{"id", "name", "address", "phone", "created_at"}

	t.Run("Success - Create", func(t *testing.T) {
		phone := "0812000111"
		customer := &models.Customer{Name: "Budi", Phone: &phone}

		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO customers (name, address, phone) VALUES ($1, $2, $3) RETURNING id, created_at`)).
			WithArgs("Budi", nil, phone).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(5, time.Now()))

		require.NoError(t, repo.CreateCustomer(ctx, customer))
		assert.Equal(t, int64(5), customer.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Update address only", func(t *testing.T) {
		address := "Jl. Sudirman 10"

		mock.ExpectQuery(regexp.QuoteMeta(`UPDATE customers SET address = $1 WHERE id = $2 RETURNING id, name, address, phone, created_at`)).
			WithArgs(address, int64(5)).
			WillReturnRows(sqlmock.NewRows(cols).AddRow(5, "Budi", address, "0812000111", time.Now()))

		customer, err := repo.UpdateCustomer(ctx, 5, &models.UpdateContactRequest{Address: &address})

		require.NoError(t, err)
		require.NotNil(t, customer.Address)
		assert.Equal(t, address, *customer.Address)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Get missing customer", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM customers WHERE id = $1`)).WithArgs(int64(50)).WillReturnError(sql.ErrNoRows)

		customer, err := repo.GetCustomerByID(ctx, 50)

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, customer)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDistributorRepository(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewDistributorRepo(db)
	ctx := t.Context()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, address, phone, created_at FROM distributors ORDER BY name`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "address", "phone", "created_at"}).
			AddRow(1, "PT Sumber Pangan", "Surabaya", nil, time.Now()))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM distributors WHERE id = $1`)).
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	distributors, err := repo.ListDistributors(ctx)
	require.NoError(t, err)
	require.Len(t, distributors, 1)
	assert.Nil(t, distributors[0].Phone)

	err = repo.DeleteDistributor(ctx, 2)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	_, err = repo.UpdateDistributor(ctx, 1, &models.UpdateContactRequest{})
	assert.ErrorIs(t, err, repository.ErrNoFieldsToUpdate)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCourierRepository(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewCourierRepo(db)
	ctx := t.Context()

	name := "JNE Express"

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO couriers (name, phone) VALUES ($1, $2) RETURNING id, created_at`)).
		WithArgs(name, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(4, time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE couriers SET name = $1 WHERE id = $2 RETURNING id, name, phone, created_at`)).
		WithArgs("JNE", int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "created_at"}).AddRow(4, "JNE", nil, time.Now()))

	courier := &models.Courier{Name: name}
	require.NoError(t, repo.CreateCourier(ctx, courier))
	assert.Equal(t, int64(4), courier.ID)

	renamed := "JNE"
	updated, err := repo.UpdateCourier(ctx, 4, &models.UpdateCourierRequest{Name: &renamed})
	require.NoError(t, err)
	assert.Equal(t, "JNE", updated.Name)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleRepository(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewSaleRepo(db)
	ctx := t.Context()

	saleCols := []string{"id", "customer_id", "user_id", "courier_id", "sale_date", "total", "customer_name", "username", "courier_name"}

	t.Run("Success - List with joined names", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY s.sale_date DESC NULLS LAST, s.id DESC`)).
			WillReturnRows(sqlmock.NewRows(saleCols).
				AddRow(1, 5, 3, nil, time.Now(), "150000", "Budi", "kasir1", nil))

		sales, err := repo.ListSales(ctx)

		require.NoError(t, err)
		require.Len(t, sales, 1)
		require.NotNil(t, sales[0].CustomerName)
		assert.Equal(t, "Budi", *sales[0].CustomerName)
		assert.Nil(t, sales[0].CourierID)
		require.NotNil(t, sales[0].Total)
		assert.Equal(t, "150000", sales[0].Total.String())
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Create item", func(t *testing.T) {
		qty := 2
		item := &models.SaleItem{SaleID: 1, ProductID: 7, Quantity: &qty}

		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO sale_items (sale_id, product_id, quantity, price) VALUES ($1, $2, $3, $4) RETURNING id`)).
			WithArgs(int64(1), int64(7), 2, nil).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))

		require.NoError(t, repo.CreateSaleItem(ctx, item))
		assert.Equal(t, int64(10), item.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStatsRepository(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewStatsRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT (SELECT COUNT(*) FROM products)`)).
		WillReturnRows(sqlmock.NewRows([]string{"products", "distributors", "customers", "couriers", "sales"}).AddRow(12, 2, 30, 3, 45))

	stats, err := repo.GetDashboardStats(t.Context())

	require.NoError(t, err)
	assert.Equal(t, &models.DashboardStats{Products: 12, Distributors: 2, Customers: 30, Couriers: 3, Sales: 45}, stats)
	require.NoError(t, mock.ExpectationsWereMet())
}
