package registry

import (
	"fmt"
	"sort"

	"social_feed/internal/pkg/authctx"
	"social_feed/internal/pkg/config"
	"social_feed/internal/pkg/middleware"
	"social_feed/pkg/cache"
	"social_feed/pkg/database"
	"social_feed/pkg/logger"
	"social_feed/pkg/metrics"
	"social_feed/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ModuleContext 模块初始化所需的上下文
type ModuleContext struct {
	Config     *config.Config
	DB         *gorm.DB
	Redis      *redis.Client
	Procedures database.ProcedureCaller
	Router     *gin.Engine
	Guard      authctx.Guard
	Auth       *middleware.Authenticator
	Tokens     *utils.TokenManager
	Blacklist  cache.TokenBlacklist
	Metrics    *metrics.MetricsCollector
}

// Module 模块接口
type Module interface {
	// Name 返回模块名称
	Name() string

	// Init 初始化模块（依赖注入、路由注册等）
	Init(ctx *ModuleContext) error

	// Priority 返回初始化优先级（数字越小越先初始化）
	Priority() int
}

// moduleRegistry 全局模块注册表
var moduleRegistry = make(map[string]Module)

// Register 注册模块
func Register(module Module) {
	moduleRegistry[module.Name()] = module
}

// GetModules 按初始化顺序返回已注册模块：优先级升序，相同时按名称
func GetModules() []Module {
	modules := make([]Module, 0, len(moduleRegistry))
	for _, m := range moduleRegistry {
		modules = append(modules, m)
	}

	sort.Slice(modules, func(i, j int) bool {
		if modules[i].Priority() != modules[j].Priority() {
			return modules[i].Priority() < modules[j].Priority()
		}
		return modules[i].Name() < modules[j].Name()
	})
	return modules
}

// InitModules 按 GetModules 的顺序初始化，遇错即停
func InitModules(ctx *ModuleContext) error {
	log := logger.Named("registry")
	for _, module := range GetModules() {
		if err := module.Init(ctx); err != nil {
			return fmt.Errorf("init module %s: %w", module.Name(), err)
		}
		log.Info("module initialized", zap.String("module", module.Name()), zap.Int("priority", module.Priority()))
	}

	return nil
}
