package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/customer/model"
	"frontdesk/internal/domains/customer/model/dto"
	"frontdesk/internal/domains/customer/repository"
	roomModel "frontdesk/internal/domains/room/model"
	roomRepository "frontdesk/internal/domains/room/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllCustomer = "customer:gets"
	cacheCountCustomer  = "customer:count"

	cacheGetAllRoom  = "room:gets"
	cacheGetRoom     = "room:get"
	cacheCountRoom   = "room:count"
	cacheSummaryRoom = "room:summary"
)

type Customer interface {
	Book(ctx context.Context, req dto.BookRoomRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCustomersResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
}

type serviceImpl struct {
	repo     repository.Customer
	roomRepo roomRepository.Room
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	kafka    kafka.Client
}

func New(repo repository.Customer, roomRepo roomRepository.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, kafka kafka.Client) Customer {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		kafka:    kafka,
	}
}

func (s *serviceImpl) Book(ctx context.Context, req dto.BookRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Book")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)

	checkinDate := timezone.Now()
	if req.CheckinDate != "" {
		checkinDate, err = timezone.Parse(constant.CheckinDateFormat, req.CheckinDate)
		if err != nil {
			return failure.BadRequestFromString("check-in date must use the YYYY-MM-DD format") //nolint:wrapcheck
		}
	}

	exists, err := s.roomRepo.Exist(ctx, shared.FilterByID(req.RoomNo, roomModel.FieldRoomNo, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	// A missing room and an occupied room fail the same way so callers
	// cannot probe the inventory through booking errors.
	if !exists {
		return failure.Conflict("room is not available") //nolint:wrapcheck
	}

	customer := req.ToModel(user, checkinDate)

	if err = s.repo.BookRoom(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrRoomUnavailable) {
			return failure.Conflict("room is not available") //nolint:wrapcheck
		}

		log.Error().Err(err).Int("room_no", req.RoomNo).Msg("failed to book room")

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.publishBookingCreated(c, customer)

		shared.InvalidateCaches(c, s.cache, cacheGetAllCustomer)
		shared.InvalidateCaches(c, s.cache, cacheCountCustomer)
		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
		shared.InvalidateCaches(c, s.cache, cacheSummaryRoom)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, strconv.Itoa(customer.RoomNo))); err != nil {
			log.Error().Err(err).Msg("failed to delete room cache")
		}
	}()

	return nil
}

func (s *serviceImpl) publishBookingCreated(ctx context.Context, customer model.Customer) {
	var event dto.BookingCreatedEvent
	event.FromModel(customer)

	message := kafka.Message{
		Key:   strconv.Itoa(customer.RoomNo),
		Value: event,
	}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.BookingCreated, message); err != nil {
		log.Error().Err(err).Int("room_no", customer.RoomNo).Msg("failed to publish booking created event")
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCustomersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCustomer, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for customers")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count customers")

		return res, fmt.Errorf("failed to count customers: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get customers")

		return res, fmt.Errorf("failed to get customers: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save customers to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountCustomer, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for customer count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count customers")

		return res, fmt.Errorf("failed to count customers: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save customer count to cache")
		}
	}()

	return res, nil
}
