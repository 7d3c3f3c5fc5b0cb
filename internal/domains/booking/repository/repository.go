package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"trimly/infras/otel"
	"trimly/infras/postgres"
	"trimly/internal/domains/booking/model"
	"trimly/shared/constant"
	gDto "trimly/shared/dto"
	"trimly/shared/logger"
	gRepo "trimly/shared/repository"
	"trimly/shared/timezone"

	"github.com/jmoiron/sqlx"
)

// ErrSlotFull is returned when a write would push the seat total of a
// slot past the shop capacity.
var ErrSlotFull = errors.New("slot capacity exceeded")

// Totals carries the summed financial columns of a booking set.
type Totals struct {
	TotalAmount   float64 `db:"total_amount"`
	PlatformFee   float64 `db:"platform_fee"`
	BarberEarning float64 `db:"barber_earning"`
}

type Booking interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	InsertWithCapacity(ctx context.Context, booking model.Booking, capacity int) error
	UpdateWithCapacity(ctx context.Context, bookingID string, fields map[string]any, shopID, date, slotTime string, seats, capacity int) error
	CompleteWithShopTotals(ctx context.Context, bookingID string, fields map[string]any, shopID string, amount float64) error
	RateAndRecalcShop(ctx context.Context, bookingID string, fields map[string]any, shopID string) error
	SeatsUsedByDate(ctx context.Context, shopID, date string) (map[string]int, error)
	SumTotals(ctx context.Context, filter gDto.FilterGroup) (Totals, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ExceedsCapacity reports whether adding requested seats on top of the
// seats already taken would overflow the slot.
func ExceedsCapacity(used, requested, capacity int) bool {
	return used+requested > capacity
}

// lockSlot serializes writers of one (shop, date, time) slot for the
// lifetime of the transaction. Readers never take the lock.
func (repo *repositoryImpl) lockSlot(ctx context.Context, tx *sqlx.Tx, shopID, date, slotTime string) error {
	key := fmt.Sprintf("slot:%s:%s:%s", shopID, date, slotTime)

	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, key); err != nil {
		return fmt.Errorf("failed to acquire slot lock: %w", err)
	}

	return nil
}

// seatsAtSlot sums the seats of every booking still holding the slot.
// Rejected and cancelled bookings release their seats; excludeID keeps
// a rescheduling booking from counting against itself.
func (repo *repositoryImpl) seatsAtSlot(ctx context.Context, tx *sqlx.Tx, shopID, date, slotTime, excludeID string) (int, error) {
	query := `SELECT COALESCE(SUM(seats), 0) FROM bookings
		WHERE shop_id = $1 AND booking_date = $2 AND slot_time = $3
		AND status NOT IN ($4, $5) AND id != $6`

	var used int

	err := tx.GetContext(ctx, &used, query, shopID, date, slotTime,
		constant.BookingStatusRejected, constant.BookingStatusCancelled, excludeID)
	if err != nil {
		return 0, fmt.Errorf("failed to count seats at slot: %w", err)
	}

	return used, nil
}

func (repo *repositoryImpl) InsertWithCapacity(ctx context.Context, booking model.Booking, capacity int) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.InsertWithCapacity")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if err = repo.lockSlot(ctx, tx, booking.ShopID, booking.BookingDate, booking.SlotTime); err != nil {
		logger.ErrorWithStack(err)

		return err
	}

	used, err := repo.seatsAtSlot(ctx, tx, booking.ShopID, booking.BookingDate, booking.SlotTime, constant.Empty)
	if err != nil {
		logger.ErrorWithStack(err)

		return err
	}

	if ExceedsCapacity(used, booking.Seats, capacity) {
		return ErrSlotFull
	}

	if err = repo.InsertTx(ctx, tx, booking); err != nil {
		return err //nolint:wrapcheck
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit booking insert: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) UpdateWithCapacity(ctx context.Context, bookingID string, fields map[string]any, shopID, date, slotTime string, seats, capacity int) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.UpdateWithCapacity")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if err = repo.lockSlot(ctx, tx, shopID, date, slotTime); err != nil {
		logger.ErrorWithStack(err)

		return err
	}

	used, err := repo.seatsAtSlot(ctx, tx, shopID, date, slotTime, bookingID)
	if err != nil {
		logger.ErrorWithStack(err)

		return err
	}

	if ExceedsCapacity(used, seats, capacity) {
		return ErrSlotFull
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Value:    bookingID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	if err = repo.UpdateTx(ctx, tx, fields, filter); err != nil {
		return err //nolint:wrapcheck
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit booking update: %w", err)
	}

	return nil
}

// CompleteWithShopTotals couples the completion of a booking with the
// shop lifetime counters so both land or neither does.
func (repo *repositoryImpl) CompleteWithShopTotals(ctx context.Context, bookingID string, fields map[string]any, shopID string, amount float64) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CompleteWithShopTotals")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Value:    bookingID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	if err = repo.UpdateTx(ctx, tx, fields, filter); err != nil {
		return err //nolint:wrapcheck
	}

	query := `UPDATE shops SET total_bookings = total_bookings + 1,
		monthly_revenue = monthly_revenue + $1, modified_at = $2 WHERE id = $3`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = tx.ExecContext(ctx, query, amount, timezone.Now(), shopID); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to update shop totals: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit booking completion: %w", err)
	}

	return nil
}

// RateAndRecalcShop stores the rating and recomputes the shop aggregate
// from the rated completed bookings inside the same transaction. A
// per-shop advisory lock serializes concurrent ratings.
func (repo *repositoryImpl) RateAndRecalcShop(ctx context.Context, bookingID string, fields map[string]any, shopID string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.RateAndRecalcShop")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	lockKey := "rating:" + shopID
	if _, err = tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, lockKey); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to acquire rating lock: %w", err)
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Value:    bookingID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	if err = repo.UpdateTx(ctx, tx, fields, filter); err != nil {
		return err //nolint:wrapcheck
	}

	aggregate := struct {
		AvgRating    float64 `db:"avg_rating"`
		TotalReviews int     `db:"total_reviews"`
	}{}

	query := `SELECT COALESCE(ROUND(AVG(rating)::numeric, 2), 0) AS avg_rating, COUNT(rating) AS total_reviews
		FROM bookings WHERE shop_id = $1 AND status = $2 AND rating IS NOT NULL`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = tx.GetContext(ctx, &aggregate, query, shopID, constant.BookingStatusCompleted); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to recompute shop rating: %w", err)
	}

	updateQuery := `UPDATE shops SET avg_rating = $1, total_reviews = $2, modified_at = $3 WHERE id = $4`

	if _, err = tx.ExecContext(ctx, updateQuery, aggregate.AvgRating, aggregate.TotalReviews, timezone.Now(), shopID); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to update shop rating: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit rating: %w", err)
	}

	return nil
}

// SeatsUsedByDate returns slot time -> seats taken for one shop day.
func (repo *repositoryImpl) SeatsUsedByDate(ctx context.Context, shopID, date string) (map[string]int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.SeatsUsedByDate")
	defer scope.End()

	query := `SELECT slot_time, COALESCE(SUM(seats), 0) AS seats FROM bookings
		WHERE shop_id = $1 AND booking_date = $2 AND status NOT IN ($3, $4)
		GROUP BY slot_time`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	rows := []struct {
		SlotTime string `db:"slot_time"`
		Seats    int    `db:"seats"`
	}{}

	err := repo.db.Read.SelectContext(ctx, &rows, query, shopID, date,
		constant.BookingStatusRejected, constant.BookingStatusCancelled)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get seats used by date: %w", err)
	}

	used := make(map[string]int, len(rows))
	for _, row := range rows {
		used[row.SlotTime] = row.Seats
	}

	return used, nil
}

func (repo *repositoryImpl) SumTotals(ctx context.Context, filter gDto.FilterGroup) (Totals, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.SumTotals")
	defer scope.End()

	var totals Totals

	where, args := repo.BuildWhereClause(ctx, filter)
	query := fmt.Sprintf(`SELECT COALESCE(SUM(total_amount), 0) AS total_amount,
		COALESCE(SUM(platform_fee), 0) AS platform_fee,
		COALESCE(SUM(barber_earning), 0) AS barber_earning FROM bookings %s`, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return totals, fmt.Errorf("failed to prepare statement (booking totals): %w", err)
	}
	defer prepare.Close()

	if err = prepare.GetContext(ctx, &totals, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return totals, fmt.Errorf("failed to sum booking totals: %w", err)
	}

	return totals, nil
}
