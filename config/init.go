package config

import (
	"sync"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

var (
	instance *Config
	once     sync.Once
)

// Init loads configuration: defaults first, then an optional config.yaml,
// then SWS_* environment variables override everything.
func Init() {
	once.Do(func() {
		v := viper.New()
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")

		v.SetDefault("host", "0.0.0.0")
		v.SetDefault("port", "8080")
		v.SetDefault("prefix", "api")
		v.SetDefault("mode", string(ModeDebug))
		v.SetDefault("jwt.accessexpire", int64(7200))
		v.SetDefault("jwt.confirmexpire", int64(86400))
		v.SetDefault("log.level", "info")

		cfg := &Config{}
		if err := v.ReadInConfig(); err == nil {
			if err := v.Unmarshal(cfg); err != nil {
				panic(err)
			}
		} else {
			cfg.Host = v.GetString("host")
			cfg.Port = v.GetString("port")
			cfg.Prefix = v.GetString("prefix")
			cfg.Mode = Mode(v.GetString("mode"))
			cfg.JWT.AccessExpire = v.GetInt64("jwt.accessexpire")
			cfg.JWT.ConfirmExpire = v.GetInt64("jwt.confirmexpire")
			cfg.Log.Level = v.GetString("log.level")
		}

		if err := envconfig.Process("SWS", cfg); err != nil {
			panic(err)
		}

		if cfg.Mode != ModeRelease {
			cfg.Mode = ModeDebug
		}
		instance = cfg
	})
}

func Get() *Config {
	if instance == nil {
		Init()
	}
	return instance
}

// Set replaces the loaded configuration. Test use only.
func Set(cfg *Config) {
	instance = cfg
}
