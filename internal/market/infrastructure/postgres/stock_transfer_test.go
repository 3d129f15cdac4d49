package postgres

import (
	"testing"
	"time"

	"github.com/TranushReddy/crop-market/internal/market/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockTransferrer_TransferStock(t *testing.T) {
	t.Parallel()

	orderedAt := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	type testCase struct {
		name       string
		request    domain.PurchaseRequest
		totalPrice float64

		expectedRes domain.Order
		expectedErr error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	tests := []testCase{
		{
			name:       "successful transfer",
			request:    domain.PurchaseRequest{BuyerId: 1, CropId: 1, Quantity: 4.0, UnitPrice: 2.50},
			totalPrice: 10.0,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("UPDATE").
					WithArgs(4.0, 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				rows := pgxmock.NewRows([]string{"id", "ordered_at"}).
					AddRow(7, orderedAt)
				mock.ExpectQuery("INSERT").
					WithArgs(1, 1, 4.0, 10.0).
					WillReturnRows(rows)
			},
			expectedRes: domain.Order{Id: 7, BuyerId: 1, CropId: 1, QuantityPurchased: 4.0, TotalPrice: 10.0, OrderedAt: orderedAt},
			expectedErr: nil,
		},
		{
			name:       "failed to decrement stock",
			request:    domain.PurchaseRequest{BuyerId: 1, CropId: 1, Quantity: 4.0, UnitPrice: 2.50},
			totalPrice: 10.0,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("UPDATE").
					WithArgs(4.0, 1).
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
		{
			name:       "unknown buyer on order insert",
			request:    domain.PurchaseRequest{BuyerId: 999, CropId: 1, Quantity: 4.0, UnitPrice: 2.50},
			totalPrice: 10.0,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("UPDATE").
					WithArgs(4.0, 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectQuery("INSERT").
					WithArgs(999, 1, 4.0, 10.0).
					WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "orders_buyer_id_fkey"})
			},
			expectedErr: &domain.BuyerNotFoundError{},
		},
		{
			name:       "failed to insert order",
			request:    domain.PurchaseRequest{BuyerId: 1, CropId: 1, Quantity: 4.0, UnitPrice: 2.50},
			totalPrice: 10.0,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("UPDATE").
					WithArgs(4.0, 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectQuery("INSERT").
					WithArgs(1, 1, 4.0, 10.0).
					WillReturnError(assert.AnError)
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

			transferrer := NewStockTransferrer()
			res, err := transferrer.TransferStock(t.Context(), mock, tt.request, tt.totalPrice)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRes, res)
			}
		})
	}
}
