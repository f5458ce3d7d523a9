package main

import (
	"context"
	"fmt"
	"log"
	"time"

	common_api "github.com/nicolassnider/TKD-Hub-API-sub000/internal/common/api"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/common/apperr"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/config"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/database"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/features/auth"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/features/blog"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/features/class"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/features/coach"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/features/dashboard"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/features/dojaang"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/features/payment"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/features/promotion"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/features/stats"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/features/student"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/logger"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/middleware"
	"github.com/nicolassnider/TKD-Hub-API-sub000/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates a new Fiber app instance
func NewFiberServer(cfg *config.Config) *fiber.App {
	utils.SetSecret(cfg.JWTSecret)

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          apperr.ErrorHandler,
	})

	app.Use(middleware.CORSMiddleware())

	return app
}

// NewWidgetDispatcher builds the dashboard dispatcher with the configured
// fan-out cap.
func NewWidgetDispatcher(registry *dashboard.Registry, cfg *config.Config, log *zap.Logger) *dashboard.Dispatcher {
	return dashboard.NewDispatcher(registry, cfg.WidgetFanout, log)
}

// AsRoute is a helper function to reduce boilerplate.
// It tags the constructor so Fx knows to add it to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),
		fx.ResultTags(`group:"routes"`),
	)
}

// RegisterAllRoutes takes the group "routes" (slice of interfaces)
// and calls Setup() on each one.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route) {
	for _, route := range routes {
		route.Setup(app)
	}
	log.Printf("Registered %d routes\n", len(routes))
}

// RegisterAllRoutesWithAnnotation wraps RegisterAllRoutes with fx annotations
var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// StartServer creates a lifecycle hook to start Fiber in a goroutine
// and shut it down when the app exits.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				if err := app.Listen(port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

// InitializeIndexes ensures that necessary database indexes are created
func InitializeIndexes(
	lc fx.Lifecycle,
	layoutRepo dashboard.LayoutRepository,
	userRepo auth.UserRepository,
	paymentRepo payment.PaymentRepository,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := layoutRepo.EnsureIndexes(ctx); err != nil {
					log.Printf("Failed to ensure layout indexes: %v", err)
				}
				if err := userRepo.EnsureIndexes(ctx); err != nil {
					log.Printf("Failed to ensure user indexes: %v", err)
				}
				if err := paymentRepo.EnsureIndexes(ctx); err != nil {
					log.Printf("Failed to ensure payment indexes: %v", err)
				}
			}()
			return nil
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			// Load Config
			config.LoadConfig,

			// Initialize Logger
			logger.NewLogger,

			// Initialize Fiber Server
			NewFiberServer,

			// Initialize Database
			database.NewDatabase,

			// Initialize Repository
			auth.NewUserRepository,
			dashboard.NewLayoutRepository,
			student.NewStudentRepository,
			coach.NewCoachRepository,
			dojaang.NewDojaangRepository,
			class.NewClassRepository,
			promotion.NewPromotionRepository,
			blog.NewPostRepository,
			payment.NewPaymentRepository,

			// Widget data plumbing
			stats.NewProvider,
			stats.NewRegistry,
			NewWidgetDispatcher,
			dashboard.NewSelector,

			auth.NewAuthService,
			dashboard.NewDashboardService,
			student.NewStudentService,
			coach.NewCoachService,
			dojaang.NewDojaangService,
			class.NewClassService,
			promotion.NewPromotionService,
			blog.NewPostService,
			payment.NewPaymentService,
			payment.NewSweeper,

			// Initialize Controller
			auth.NewAuthController,
			dashboard.NewDashboardController,
			student.NewStudentController,
			coach.NewCoachController,
			dojaang.NewDojaangController,
			class.NewClassController,
			promotion.NewPromotionController,
			blog.NewPostController,
			payment.NewPaymentController,

			// Initialize API Routes
			AsRoute(auth.NewAuthApi),
			AsRoute(dashboard.NewDashboardApi),
			AsRoute(student.NewStudentApi),
			AsRoute(coach.NewCoachApi),
			AsRoute(dojaang.NewDojaangApi),
			AsRoute(class.NewClassApi),
			AsRoute(promotion.NewPromotionApi),
			AsRoute(blog.NewBlogApi),
			AsRoute(payment.NewPaymentApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			// Register Routes & Start
			RegisterAllRoutesWithAnnotation,
			StartServer,
			func(lc fx.Lifecycle, sweeper *payment.Sweeper) {
				lc.Append(fx.Hook{
					OnStart: func(ctx context.Context) error {
						return sweeper.Start(ctx)
					},
					OnStop: func(ctx context.Context) error {
						return sweeper.Stop()
					},
				})
			},
			InitializeIndexes,
		),
	)

	app.Run()
}
