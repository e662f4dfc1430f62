package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/customer/model"
	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/logger"
	gRepo "frontdesk/shared/repository"

	"github.com/rs/zerolog/log"
)

// ErrRoomUnavailable reports that the requested room does not exist or is already booked.
var ErrRoomUnavailable = errors.New("room unavailable")

type Customer interface {
	Insert(ctx context.Context, model model.Customer) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Customer, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Customer, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	BookRoom(ctx context.Context, customer model.Customer) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Customer]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Customer {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Customer](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// BookRoom flips the room to booked and records the customer in one transaction.
// The conditional update on the room status keeps concurrent bookings from
// double-booking the same room: whichever transaction loses the race sees zero
// affected rows and fails with ErrRoomUnavailable.
func (repo *repositoryImpl) BookRoom(ctx context.Context, customer model.Customer) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".BookRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback booking transaction")
			}
		}
	}()

	query := fmt.Sprintf(
		"UPDATE %s SET %s = $1, %s = $2, %s = $3 WHERE %s = $4 AND %s = $5",
		roomModel.TableName,
		roomModel.FieldStatus,
		constant.FieldModifiedAt,
		constant.FieldModifiedBy,
		roomModel.FieldRoomNo,
		roomModel.FieldStatus,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := tx.ExecContext(ctx, query,
		roomModel.StatusBooked,
		customer.ModifiedAt,
		customer.ModifiedBy,
		customer.RoomNo,
		roomModel.StatusAvailable,
	)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to update room status (%s): %w", model.EntityName, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to read affected rows (%s): %w", model.EntityName, err)
	}

	if affected == 0 {
		err = ErrRoomUnavailable

		return err
	}

	if err = repo.InsertTx(ctx, tx, customer); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit booking transaction (%s): %w", model.EntityName, err)
	}

	return nil
}
