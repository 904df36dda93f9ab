package config

import (
	"sync"
	"time"

	"github.com/jinzhu/configor"
)

var (
	Cfg Configuration
	mu  sync.RWMutex
)

type (
	Configuration struct {
		App    AppConfig    `json:"app"`
		Server ServerConfig `json:"server"`
		Mysql  MysqlConfig  `json:"mysql"`
		Logger LoggerConfig `json:"logger"`
		Chain  ChainConfig  `json:"chain"`
		Signer SignerConfig `json:"signer"`
		S3     S3Config     `json:"s3"`
		//Redis  RedisConfig  `json:"redis"`
	}

	ServerConfig struct {
		RunMode         string        `json:"run_mode"`
		ListenAddr      string        `json:"listen_addr"`
		LimitConnection int           `json:"limit_connection"`
		ReadTimeout     time.Duration `json:"read_timeout"`
		WriteTimeout    time.Duration `json:"write_timeout"`
		IdleTimeout     time.Duration `json:"idle_timeout"`
		MaxHeaderBytes  int           `json:"max_header_bytes"`
	}

	LoggerConfig struct {
		Level          string        `json:"level"`
		Formatter      string        `json:"formatter"`
		DisableConsole bool          `json:"disable_console"`
		Write          bool          `json:"write"`
		Path           string        `json:"path"`
		FileName       string        `json:"file_name"`
		MaxAge         time.Duration `json:"max_age"`
		RotationTime   time.Duration `json:"rotation_time"`
		Debug          bool          `json:"debug"`
		ReportCaller   bool          `json:"report_caller"`
	}

	MysqlConfig struct {
		Driver   string `json:"driver"`
		Host     string `json:"host"`
		Port     string `json:"port"`
		User     string `json:"user"`
		Password string `json:"password"`
		DbName   string `json:"db_name"`
	}

	// ChainConfig 链 ID 用于签名域，rpc 只做诊断
	ChainConfig struct {
		RpcUrl  string `json:"rpc_url"`
		ChainId int64  `json:"chain_id"`
	}

	SignerConfig struct {
		PrivateKey string `json:"private_key" env:"DEPLOYER_PRIVATE_KEY"`
	}

	S3Config struct {
		AccessKey string `json:"access_key"`
		SecretKey string `json:"secret_key"`
		Bucket    string `json:"bucket"`
		BaseUrl   string `json:"base_url"`
	}

	AppConfig struct {
		Secret string `json:"secret" default:"secret."`
		Env    string `json:"env" default:""`
	}

	RedisConfig struct {
		Host      string `json:"host" env:"REDIS_HOST"`
		Port      int    `json:"port" env:"REDIS_PORT"`
		Auth      string `json:"auth" env:"REDIS_AUTH"`
		MaxIdle   int    `json:"max_idle" env:"REDIS_MAX_IDLE"`
		MaxActive int    `json:"max_active" env:"REDIS_MAX_ACTIVE"`
		Db        int    `json:"db" env:"REDIS_DB"`
	}
)

func Init(file *string) (Configuration, error) {
	mu.Lock()
	defer mu.Unlock()

	err := configor.Load(&Cfg, *file)
	if err != nil {
		return Configuration{}, err
	}
	return Cfg, err
}

func GetConfig() Configuration {
	mu.RLock()
	defer mu.RUnlock()
	return Cfg
}
