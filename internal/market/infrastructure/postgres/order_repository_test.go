package postgres

import (
	"testing"
	"time"

	"github.com/TranushReddy/crop-market/internal/market/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository_GetOrdersByBuyer(t *testing.T) {
	t.Parallel()

	orderedAt := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	type testCase struct {
		name    string
		buyerId int

		expectedRes []domain.BuyerOrder
		expectedErr error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	tests := []testCase{
		{
			name:    "orders returned",
			buyerId: 1,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows([]string{"id", "crop_name", "unit", "quantity_purchased", "total_price", "ordered_at"}).
					AddRow(7, "Tomatoes", "kg", 4.0, 10.0, orderedAt)
				mock.ExpectQuery("SELECT").WithArgs(1).WillReturnRows(rows)
			},
			expectedRes: []domain.BuyerOrder{
				{OrderId: 7, CropName: "Tomatoes", Unit: "kg", QuantityPurchased: 4.0, TotalPrice: 10.0, OrderedAt: orderedAt},
			},
			expectedErr: nil,
		},
		{
			name:    "no orders",
			buyerId: 2,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows([]string{"id", "crop_name", "unit", "quantity_purchased", "total_price", "ordered_at"})
				mock.ExpectQuery("SELECT").WithArgs(2).WillReturnRows(rows)
			},
			expectedRes: []domain.BuyerOrder{},
			expectedErr: nil,
		},
		{
			name:    "failed to select orders",
			buyerId: 1,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT").WithArgs(1).WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			repository := NewOrderRepository(mock)
			res, err := repository.GetOrdersByBuyer(t.Context(), tt.buyerId)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRes, res)
			}
		})
	}
}

func TestOrderRepository_GetAllOrders(t *testing.T) {
	t.Parallel()

	orderedAt := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	type testCase struct {
		name string

		expectedRes []domain.OrderSummary
		expectedErr error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	tests := []testCase{
		{
			name: "orders returned",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows([]string{"id", "name", "crop_name", "quantity_purchased", "total_price", "ordered_at"}).
					AddRow(7, "Priya", "Tomatoes", 4.0, 10.0, orderedAt).
					AddRow(8, "Ravi", "Onions", 2.0, 2.40, orderedAt)
				mock.ExpectQuery("SELECT").WillReturnRows(rows)
			},
			expectedRes: []domain.OrderSummary{
				{OrderId: 7, BuyerName: "Priya", CropName: "Tomatoes", QuantityPurchased: 4.0, TotalPrice: 10.0, OrderedAt: orderedAt},
				{OrderId: 8, BuyerName: "Ravi", CropName: "Onions", QuantityPurchased: 2.0, TotalPrice: 2.40, OrderedAt: orderedAt},
			},
			expectedErr: nil,
		},
		{
			name: "failed to select orders",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT").WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			repository := NewOrderRepository(mock)
			res, err := repository.GetAllOrders(t.Context())

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRes, res)
			}
		})
	}
}
