package config

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/durgadao/anjoli-custody/common"
	anjoliconfig "github.com/durgadao/anjoli-custody/modules/anjoli/config"
	"github.com/durgadao/anjoli-custody/pkg/logger"
	"github.com/durgadao/anjoli-custody/pkg/logger/slogx"
	"github.com/durgadao/anjoli-custody/pkg/middleware/requestcontext"
	"github.com/durgadao/anjoli-custody/pkg/middleware/requestlogger"
	"github.com/durgadao/anjoli-custody/pkg/reportingclient"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	isInit bool
	mu     sync.Mutex
	config = &Config{
		Logger: logger.Config{
			Output: "TEXT",
		},
		Network: common.NetworkLocalnet,
		HTTPServer: HTTPServerConfig{
			Port: 8080,
			Logger: requestlogger.Config{
				SkipPaths: []string{"/", "/metrics"},
			},
		},
		Reporting: reportingclient.Config{
			Disabled: true,
		},
		EnableModules: []string{common.ModuleAnjoli.String()},
		Modules: Modules{
			Anjoli: anjoliconfig.Config{
				Datastore:   anjoliconfig.DatastorePostgres,
				APIHandlers: []string{"http"},
			},
		},
	}
)

type Config struct {
	Logger        logger.Config          `mapstructure:"logger"`
	Network       common.Network         `mapstructure:"network"`
	HTTPServer    HTTPServerConfig       `mapstructure:"http_server"`
	Reporting     reportingclient.Config `mapstructure:"reporting"`
	APIOnly       bool                   `mapstructure:"api_only"`
	EnableModules []string               `mapstructure:"enable_modules"`
	Modules       Modules                `mapstructure:"modules"`
}

type Modules struct {
	Anjoli anjoliconfig.Config `mapstructure:"anjoli"`
}

type HTTPServerConfig struct {
	Port      int                               `mapstructure:"port"`
	Logger    requestlogger.Config              `mapstructure:"logger"`
	RequestIP requestcontext.WithClientIPConfig `mapstructure:"request_ip"`
}

// Parse parse the configuration from environment variables and the optional config file.
// Subsequent calls return the already parsed configuration.
func Parse(configFile ...string) Config {
	mu.Lock()
	defer mu.Unlock()
	return parse(configFile...)
}

// Load returns the loaded configuration
func Load() Config {
	mu.Lock()
	defer mu.Unlock()
	if isInit {
		return *config
	}
	return parse()
}

// BindPFlag binds a specific key to a pflag (as used by cobra).
// Example (where serverCmd is a Cobra instance):
//
//	serverCmd.Flags().Int("port", 1138, "Port to run Application server on")
//	Viper.BindPFlag("port", serverCmd.Flags().Lookup("port"))
func BindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		logger.Panic("Something went wrong, failed to bind flag for config", slog.String("package", "config"), slogx.Error(err))
	}
}

func parse(configFile ...string) Config {
	ctx := logger.WithContext(context.Background(), slog.String("package", "config"))

	if len(configFile) > 0 && configFile[0] != "" {
		viper.SetConfigFile(configFile[0])
	} else {
		viper.AddConfigPath("./")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		var errNotfound viper.ConfigFileNotFoundError
		if errors.As(err, &errNotfound) {
			logger.WarnContext(ctx, "Config file not found, use default config value", slogx.Error(err))
		} else {
			logger.PanicContext(ctx, "Invalid config file", slogx.Error(err))
		}
	}

	if err := viper.Unmarshal(&config); err != nil {
		logger.PanicContext(ctx, "Something went wrong, failed to unmarshal config", slogx.Error(err))
	}

	isInit = true
	return *config
}
