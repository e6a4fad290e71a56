package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// LoadConfig 从文件加载配置并填充到 Cfg
func LoadConfig() error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")

	// INKWELL_DATABASE_DSN 覆盖 database.dsn
	v.SetEnvPrefix("inkwell")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	Cfg = &cfg

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.templates_dir", "./web/templates")
	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.max_idle", 10)
	v.SetDefault("database.max_open", 50)
	v.SetDefault("database.max_lifetime", 30)
	v.SetDefault("redis.pool_size", 20)
	v.SetDefault("minio.image_bucket", "inkwell-images")
	v.SetDefault("mail.port", 25)
	v.SetDefault("mail.from", "admin@inkwell.local")
	v.SetDefault("logstash.index", "logstash-inkwell")
	v.SetDefault("logstash.level", "info")
	v.SetDefault("site.base_url", "http://127.0.0.1:8080")
	v.SetDefault("jwt.secret", "inkwell")
	v.SetDefault("jwt.expiration_hours", 24)
	v.SetDefault("pagination.page_size", 3)
	v.SetDefault("pagination.api_page_size", 20)
}
