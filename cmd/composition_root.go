package cmd

import (
	"log/slog"

	"aftersales/internal/adapters/out/notifier"
	"aftersales/internal/adapters/out/postgres"
	"aftersales/internal/core/application/usecases/commands"
	"aftersales/internal/core/application/usecases/queries"
	"aftersales/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateFileComplaintCommandHandler() commands.FileComplaintCommandHandler {
	var f commands.ComplaintUoWFactory = FuncComplaintUoWFactory(func() commands.ComplaintUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFileComplaintCommandHandler(f)
}

func (c *CompositionRoot) CreateApproveComplaintCommandHandler() commands.ApproveComplaintCommandHandler {
	var f commands.ResolutionUoWFactory = FuncResolutionUoWFactory(func() commands.ResolutionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveComplaintCommandHandler(f)
}

func (c *CompositionRoot) CreateRejectComplaintCommandHandler() commands.RejectComplaintCommandHandler {
	var f commands.ComplaintUoWFactory = FuncComplaintUoWFactory(func() commands.ComplaintUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectComplaintCommandHandler(f)
}

func (c *CompositionRoot) CreateSchedulePickupCommandHandler() commands.SchedulePickupCommandHandler {
	var f commands.ComplaintUoWFactory = FuncComplaintUoWFactory(func() commands.ComplaintUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSchedulePickupCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkPickedUpCommandHandler() commands.MarkPickedUpCommandHandler {
	var f commands.ComplaintUoWFactory = FuncComplaintUoWFactory(func() commands.ComplaintUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkPickedUpCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateReplacementOrderCommandHandler() commands.CreateReplacementOrderCommandHandler {
	var f commands.ResolutionUoWFactory = FuncResolutionUoWFactory(func() commands.ResolutionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateReplacementOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateProcessRefundCommandHandler() commands.ProcessRefundCommandHandler {
	var f commands.ResolutionUoWFactory = FuncResolutionUoWFactory(func() commands.ResolutionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessRefundCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordDeliveryAttemptCommandHandler() commands.RecordDeliveryAttemptCommandHandler {
	var f commands.AttemptUoWFactory = FuncAttemptUoWFactory(func() commands.AttemptUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordDeliveryAttemptCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkAttemptOutcomeCommandHandler() commands.MarkAttemptOutcomeCommandHandler {
	var f commands.AttemptUoWFactory = FuncAttemptUoWFactory(func() commands.AttemptUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkAttemptOutcomeCommandHandler(f)
}

func (c *CompositionRoot) CreateDispatchNotificationsCommandHandler() commands.DispatchNotificationsCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	dispatcher := notifier.NewSlogNotificationDispatcher(c.logger)
	return commands.NewDispatchNotificationsCommandHandler(f, dispatcher)
}

func (c *CompositionRoot) CreateGetComplaintQueryHandler() queries.GetComplaintQueryHandler {
	return queries.NewGetComplaintQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetComplaintsUnderInvestigationQueryHandler() queries.GetComplaintsUnderInvestigationQueryHandler {
	return queries.NewGetComplaintsUnderInvestigationQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatusQueryHandler() queries.GetOrderStatusQueryHandler {
	return queries.NewGetOrderStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateDispatchNotificationsCommandHandler(),
		c.config.OutboxBatchSize,
		c.config.OutboxMaxAttempts,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAttemptUoWFactory func() commands.AttemptUoW

func (f FuncAttemptUoWFactory) Create() commands.AttemptUoW {
	return f()
}

type FuncComplaintUoWFactory func() commands.ComplaintUoW

func (f FuncComplaintUoWFactory) Create() commands.ComplaintUoW {
	return f()
}

type FuncResolutionUoWFactory func() commands.ResolutionUoW

func (f FuncResolutionUoWFactory) Create() commands.ResolutionUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
